// Package player drives playback of externally rendered media elements.
//
// Player follows viewport presence: it subscribes its element to a
// VisibilityObserver and plays when the element enters the viewport, pauses
// when it leaves. Viewport is the observer implementation fed with visibility
// fractions by whoever knows the geometry, the feed controller in this app.
package player

import (
	"errors"
	"log"
	"sync"
	"time"
)

// DefaultThreshold is the visible fraction at which an element counts as on-screen
const DefaultThreshold = 0.6

// Rates is the playback rate cycle
var Rates = []float64{1, 1.5, 2}

// ErrAttached is returned when attaching a player that already has an element
var ErrAttached = errors.New("player already attached")

// MediaElement is the media surface commanded by the player.
// Play may fail (autoplay policy and such), such failures are not fatal.
type MediaElement interface {
	Play() error
	Pause()
	Seek(pos time.Duration)
	SetPlaybackRate(rate float64)
	SetSource(src string)
}

// VisibilityObserver calls onEnter/onExit as el crosses the visibility threshold.
// The returned func stops observation.
type VisibilityObserver interface {
	Observe(el MediaElement, onEnter, onExit func()) (unsubscribe func())
}

// Player binds one media element to a visibility observer
type Player struct {
	observer VisibilityObserver

	mu          sync.Mutex
	el          MediaElement
	unsubscribe func()
	rateIdx     int
}

// New makes a detached player
func New(observer VisibilityObserver) *Player {
	return &Player{observer: observer}
}

// Attach starts observing el. A player handles exactly one element at a time.
func (p *Player) Attach(el MediaElement) error {
	p.mu.Lock()
	if p.el != nil {
		p.mu.Unlock()
		return ErrAttached
	}
	p.el = el
	el.SetPlaybackRate(Rates[p.rateIdx])
	p.mu.Unlock()

	// observer may fire the initial callback synchronously, so subscribe without the lock
	unsubscribe := p.observer.Observe(el, p.onEnter, p.onExit)

	p.mu.Lock()
	p.unsubscribe = unsubscribe
	p.mu.Unlock()
	return nil
}

// Detach stops observation, no callbacks reach the element afterwards
func (p *Player) Detach() {
	p.mu.Lock()
	unsubscribe := p.unsubscribe
	p.el, p.unsubscribe = nil, nil
	p.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Rate returns the current playback rate
func (p *Player) Rate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Rates[p.rateIdx]
}

// CycleRate advances 1x -> 1.5x -> 2x -> 1x and applies the new rate
func (p *Player) CycleRate() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rateIdx = (p.rateIdx + 1) % len(Rates)
	if p.el != nil {
		p.el.SetPlaybackRate(Rates[p.rateIdx])
	}
	return Rates[p.rateIdx]
}

// SetSource switches the media resource. Elements reset their rate on load, so the rate is reapplied.
func (p *Player) SetSource(src string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.el == nil {
		return
	}
	p.el.SetSource(src)
	p.el.SetPlaybackRate(Rates[p.rateIdx])
}

// Replay rewinds the element to the beginning
func (p *Player) Replay() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.el != nil {
		p.el.Seek(0)
	}
}

func (p *Player) onEnter() {
	p.mu.Lock()
	el := p.el
	p.mu.Unlock()
	if el == nil {
		return
	}
	if err := el.Play(); err != nil {
		log.Printf("[DEBUG] play rejected: %v", err)
	}
}

func (p *Player) onExit() {
	p.mu.Lock()
	el := p.el
	p.mu.Unlock()
	if el != nil {
		el.Pause()
	}
}
