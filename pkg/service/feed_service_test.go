package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/eduflow/pkg/assistant"
	"github.com/umputun/eduflow/pkg/assistant/mocks"
	"github.com/umputun/eduflow/pkg/caption"
	"github.com/umputun/eduflow/pkg/domain"
	"github.com/umputun/eduflow/pkg/feed"
	"github.com/umputun/eduflow/pkg/interaction"
	"github.com/umputun/eduflow/pkg/repository"
)

func newTestService(t *testing.T, items []domain.FeedItem) *FeedService {
	t.Helper()
	repos, err := repository.NewRepositories(context.Background(), repository.Config{
		DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1, ConnMaxLifetime: time.Minute,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	answerer := &mocks.AnswererMock{AnswerFunc: func(_ context.Context, question, subject string) domain.Answer {
		return domain.Answer{Text: question + " / " + subject, Sources: []domain.Citation{}}
	}}
	svc, err := New(Params{
		Items:        items,
		Transition:   feed.Options{Animator: feed.StepAnimator{Steps: 10}},
		KV:           repos.KV,
		DefaultTheme: domain.ThemeLight,
		Answerer:     answerer,
	})
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

// playing returns ids of items currently playing
func playing(t *testing.T, svc *FeedService) []string {
	t.Helper()
	var res []string
	for _, item := range svc.Items() {
		st, err := svc.Playback(item.ID)
		require.NoError(t, err)
		if st.Playing {
			res = append(res, item.ID)
		}
	}
	return res
}

func TestFeedService_SampleFeed(t *testing.T) {
	svc := newTestService(t, nil)
	items := svc.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "v1", items[0].ID)
	assert.Equal(t, "Physics", items[0].Subject)
	assert.Equal(t, 0, svc.State().ActiveIndex)
	assert.Equal(t, []string{"v1"}, playing(t, svc), "first item autoplays")
}

func TestFeedService_OnlyActivePlays(t *testing.T) {
	svc := newTestService(t, nil)

	require.True(t, svc.Activate(2))
	svc.Wait()
	assert.Equal(t, 2, svc.State().ActiveIndex)
	assert.Equal(t, []string{"v3"}, playing(t, svc))

	require.True(t, svc.Prev())
	svc.Wait()
	assert.Equal(t, 1, svc.State().ActiveIndex)
	assert.Equal(t, []string{"v2"}, playing(t, svc))

	st, err := svc.Playback("v3")
	require.NoError(t, err)
	assert.False(t, st.Playing)
	assert.Equal(t, 1, st.Plays)
}

func TestFeedService_Boundaries(t *testing.T) {
	svc := newTestService(t, nil)
	assert.False(t, svc.Prev(), "no prev on first item")
	assert.False(t, svc.Activate(0), "already active")
	assert.False(t, svc.Activate(5), "out of range")

	require.True(t, svc.Activate(2))
	svc.Wait()
	assert.False(t, svc.Next(), "no next on last item")
	assert.Equal(t, []string{"v3"}, playing(t, svc))
}

func TestFeedService_Gesture(t *testing.T) {
	svc := newTestService(t, nil)

	intent, moved := svc.Gesture(feed.Gesture{Kind: feed.GestureTouch, DeltaY: -5})
	assert.Equal(t, feed.IntentNone, intent)
	assert.False(t, moved)

	intent, moved = svc.Gesture(feed.Gesture{Kind: feed.GestureTouch, DeltaY: -30})
	assert.Equal(t, feed.IntentNext, intent)
	assert.True(t, moved)
	svc.Wait()
	assert.Equal(t, 1, svc.State().ActiveIndex)

	// wheel down is scaled by negative speed and moves forward too
	intent, moved = svc.Gesture(feed.Gesture{Kind: feed.GestureWheel, DeltaY: 15})
	assert.Equal(t, feed.IntentNext, intent)
	assert.True(t, moved)
	svc.Wait()
	assert.Equal(t, 2, svc.State().ActiveIndex)
	assert.Equal(t, []string{"v3"}, playing(t, svc))
}

func TestFeedService_RateAndReplay(t *testing.T) {
	svc := newTestService(t, nil)

	for _, want := range []float64{1.5, 2, 1} {
		rate, err := svc.CycleRate("v1")
		require.NoError(t, err)
		assert.InDelta(t, want, rate, 0.001)
	}
	rate, err := svc.CycleRate("v1")
	require.NoError(t, err)
	st, err := svc.Playback("v1")
	require.NoError(t, err)
	assert.InDelta(t, rate, st.Rate, 0.001)

	require.NoError(t, svc.Replay("v1"))
	st, err = svc.Playback("v1")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), st.Position)

	_, err = svc.CycleRate("nope")
	require.ErrorIs(t, err, ErrUnknownItem)
	require.ErrorIs(t, svc.Replay("nope"), ErrUnknownItem)
}

func TestFeedService_Captions(t *testing.T) {
	custom := "00:00.000 --> 00:02.000\nHola"
	svc := newTestService(t, []domain.FeedItem{
		{ID: "a", VideoURL: "http://x/a.mp4", Subject: "Languages", Captions: custom},
		{ID: "b", VideoURL: "http://x/b.mp4", Subject: "Physics"},
	})

	track, err := svc.Captions("a")
	require.NoError(t, err)
	doc, err := caption.Decode(track.Resource)
	require.NoError(t, err)
	assert.Equal(t, "WEBVTT\n\n"+custom, doc)

	track, err = svc.Captions("b")
	require.NoError(t, err)
	assert.Equal(t, caption.DefaultCues, track.Cues)

	st, err := svc.Playback("b")
	require.NoError(t, err)
	assert.Equal(t, track.Resource, st.Captions)

	_, err = svc.Captions("nope")
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestFeedService_Interactions(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	rec, err := svc.ToggleLike(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, domain.InteractionRecord{Liked: true}, rec)
	assert.Empty(t, svc.Notifications())

	rec, err = svc.ToggleSave(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, domain.InteractionRecord{Liked: true, Saved: true}, rec)
	assert.Equal(t, []string{interaction.SavedMessage}, svc.Notifications())
	assert.Empty(t, svc.Notifications(), "drained")

	rec, err = svc.ToggleSave(ctx, "v1")
	require.NoError(t, err)
	assert.False(t, rec.Saved)
	assert.Empty(t, svc.Notifications(), "unsave does not notify")

	rec, err = svc.Interaction(ctx, "v2")
	require.NoError(t, err)
	assert.Equal(t, domain.InteractionRecord{}, rec)

	_, err = svc.ToggleLike(ctx, "nope")
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestFeedService_Theme(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)

	theme, err = svc.Theme(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeDark, theme)
}

func TestFeedService_Chat(t *testing.T) {
	svc := newTestService(t, nil)

	sess, err := svc.OpenChat("v3")
	require.NoError(t, err)
	assert.Equal(t, "Computer Science", sess.Subject)
	assert.Equal(t, assistant.Greeting("Computer Science"), sess.Messages()[0].Text)

	reply, err := sess.Send(context.Background(), "how fast is it")
	require.NoError(t, err)
	assert.Equal(t, "how fast is it / Computer Science", reply.Text)

	got, err := svc.Chat(sess.ID)
	require.NoError(t, err)
	assert.Same(t, sess, got)

	require.NoError(t, svc.CloseChat(sess.ID))
	_, err = svc.Chat(sess.ID)
	require.ErrorIs(t, err, assistant.ErrNotFound)

	_, err = svc.OpenChat("nope")
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestNew_DuplicateIDs(t *testing.T) {
	_, err := New(Params{Items: []domain.FeedItem{{ID: "a"}, {ID: "a"}}, Answerer: &mocks.AnswererMock{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}
