package player

import (
	"errors"
	"sync"
	"time"
)

// ErrPlayRejected mimics a media element refusing to start, e.g. under an autoplay policy
var ErrPlayRejected = errors.New("play rejected")

// ElementState is a snapshot of a Headless element
type ElementState struct {
	Source   string        `json:"source"`
	Playing  bool          `json:"playing"`
	Position time.Duration `json:"position"`
	Rate     float64       `json:"rate"`
	Plays    int           `json:"plays"`
}

// Headless is an in-memory media element. It records commanded state for clients
// rendering the actual video and for tests.
type Headless struct {
	mu         sync.Mutex
	state      ElementState
	rejectPlay bool
}

// NewHeadless makes a paused element for src at 1x
func NewHeadless(src string) *Headless {
	return &Headless{state: ElementState{Source: src, Rate: 1}}
}

// RejectPlay makes subsequent Play calls fail while on is true
func (h *Headless) RejectPlay(on bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.rejectPlay = on
}

// Play starts playback, already playing is fine
func (h *Headless) Play() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rejectPlay {
		return ErrPlayRejected
	}
	if !h.state.Playing {
		h.state.Playing = true
		h.state.Plays++
	}
	return nil
}

// Pause stops playback, already paused is fine
func (h *Headless) Pause() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Playing = false
}

// Seek moves the playback position
func (h *Headless) Seek(pos time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Position = max(pos, 0)
}

// SetPlaybackRate sets the rate
func (h *Headless) SetPlaybackRate(rate float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Rate = rate
}

// SetSource loads a new resource, which resets position and rate like a real element does
func (h *Headless) SetSource(src string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state.Source = src
	h.state.Position = 0
	h.state.Rate = 1
}

// State returns a snapshot
func (h *Headless) State() ElementState {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}
