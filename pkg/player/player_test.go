package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayer_FollowsVisibility(t *testing.T) {
	vp := NewViewport(0)
	el := NewHeadless("a.mp4")
	p := New(vp)
	require.NoError(t, p.Attach(el))
	assert.False(t, el.State().Playing, "not visible initially")

	vp.Update(el, 0.59)
	assert.False(t, el.State().Playing)

	vp.Update(el, 0.6)
	assert.True(t, el.State().Playing)
	assert.Equal(t, 1, el.State().Plays)

	// redundant updates above the threshold don't restart playback
	vp.Update(el, 0.8)
	vp.Update(el, 1)
	assert.Equal(t, 1, el.State().Plays)

	vp.Update(el, 0.3)
	assert.False(t, el.State().Playing)
}

func TestPlayer_InitialVisible(t *testing.T) {
	vp := NewViewport(0.6)
	el := NewHeadless("a.mp4")
	vp.Update(el, 1)

	p := New(vp)
	require.NoError(t, p.Attach(el))
	assert.True(t, el.State().Playing)
}

func TestPlayer_RejectedPlayIsIgnored(t *testing.T) {
	vp := NewViewport(0.6)
	el := NewHeadless("a.mp4")
	el.RejectPlay(true)
	p := New(vp)
	require.NoError(t, p.Attach(el))

	vp.Update(el, 1)
	assert.False(t, el.State().Playing)

	// still works once the policy allows playback
	el.RejectPlay(false)
	vp.Update(el, 0)
	vp.Update(el, 1)
	assert.True(t, el.State().Playing)
}

func TestPlayer_Detach(t *testing.T) {
	vp := NewViewport(0.6)
	el := NewHeadless("a.mp4")
	p := New(vp)
	require.NoError(t, p.Attach(el))
	p.Detach()

	vp.Update(el, 1)
	assert.False(t, el.State().Playing, "no callbacks after detach")

	// detach twice is fine and the player can be reused
	p.Detach()
	other := NewHeadless("b.mp4")
	require.NoError(t, p.Attach(other))
	vp.Update(other, 1)
	assert.True(t, other.State().Playing)
}

func TestPlayer_AttachTwice(t *testing.T) {
	p := New(NewViewport(0.6))
	require.NoError(t, p.Attach(NewHeadless("a.mp4")))
	assert.ErrorIs(t, p.Attach(NewHeadless("b.mp4")), ErrAttached)
}

func TestPlayer_Rate(t *testing.T) {
	vp := NewViewport(0.6)
	el := NewHeadless("a.mp4")
	p := New(vp)
	require.NoError(t, p.Attach(el))
	assert.InDelta(t, 1.0, p.Rate(), 0.001)

	assert.InDelta(t, 1.5, p.CycleRate(), 0.001)
	assert.InDelta(t, 1.5, el.State().Rate, 0.001)
	assert.InDelta(t, 2.0, p.CycleRate(), 0.001)
	assert.InDelta(t, 1.0, p.CycleRate(), 0.001)
	assert.InDelta(t, 1.5, p.CycleRate(), 0.001)

	// new resource resets the element rate, player puts it back
	p.SetSource("b.mp4")
	st := el.State()
	assert.Equal(t, "b.mp4", st.Source)
	assert.InDelta(t, 1.5, st.Rate, 0.001)
}

func TestPlayer_Replay(t *testing.T) {
	el := NewHeadless("a.mp4")
	p := New(NewViewport(0.6))
	p.Replay() // detached, nothing happens
	require.NoError(t, p.Attach(el))
	el.Seek(12345)
	p.Replay()
	assert.Zero(t, el.State().Position)
}

func TestViewport_MultipleSubscribers(t *testing.T) {
	vp := NewViewport(0.6)
	el := NewHeadless("a.mp4")
	var enters, exits int
	unsub1 := vp.Observe(el, func() { enters++ }, func() { exits++ })
	unsub2 := vp.Observe(el, func() { enters++ }, func() { exits++ })
	assert.Equal(t, 2, exits, "initial callbacks")

	vp.Update(el, 0.9)
	assert.Equal(t, 2, enters)

	unsub1()
	unsub1()
	vp.Update(el, 0.1)
	assert.Equal(t, 3, exits)

	unsub2()
	vp.Update(el, 0.9)
	assert.Equal(t, 2, enters)
	assert.InDelta(t, 0.9, vp.Fraction(el), 0.001)

	vp.Forget(el)
	assert.Zero(t, vp.Fraction(el))
}

func TestViewport_Clamp(t *testing.T) {
	vp := NewViewport(2) // invalid, falls back to default
	el := NewHeadless("a.mp4")
	vp.Update(el, 1.7)
	assert.InDelta(t, 1.0, vp.Fraction(el), 0.001)
	vp.Update(el, -3)
	assert.Zero(t, vp.Fraction(el))
}
