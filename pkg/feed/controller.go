// Package feed owns the ordered feed and its active-index state machine.
//
// Controller moves between items with an animated slide transition: the
// outgoing slide leaves toward the direction of travel while the incoming one
// enters from the opposite edge. Only one transition runs at a time, requests
// arriving meanwhile are dropped, not queued. The active index changes when
// the transition completes.
//
// The package also loads the fixed item sequence from RSS/Atom/Media RSS
// catalogs (see CatalogLoader) and interprets raw wheel/touch/pointer deltas
// into navigation intents (see GestureInterpreter).
package feed

import (
	"context"
	"errors"
	"log"
	"math"
	"sync"
	"time"

	"github.com/umputun/eduflow/pkg/domain"
)

// DefaultTransition is the slide animation duration
const DefaultTransition = 600 * time.Millisecond

// SlideSink receives slide positions as the animation progresses.
// yPercent is the vertical offset in percents of the viewport height, 0 means fully in view.
type SlideSink interface {
	MoveSlide(index int, yPercent float64)
}

// State is a snapshot of the controller
type State struct {
	ActiveIndex   int       `json:"active_index"`
	Transitioning bool      `json:"transitioning"`
	Offsets       []float64 `json:"offsets"`
}

// Transition describes a handoff between two items
type Transition struct {
	From      int
	To        int
	Direction int // +1 moving forward, -1 moving back
}

// Options configure a Controller
type Options struct {
	Duration time.Duration // transition duration, DefaultTransition if zero
	Animator Animator      // TickerAnimator if nil
	Sink     SlideSink     // optional
}

// Controller is the feed navigation state machine, Idle <-> Transitioning
type Controller struct {
	items    []domain.FeedItem
	duration time.Duration
	animator Animator
	sink     SlideSink

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	active        int
	transitioning bool
	offsets       []float64
	listeners     map[int]func(State)
	lastListener  int
	inFlight      int        // transitions started and not yet done, guarded by mu
	idle          *sync.Cond // signaled when inFlight drops to zero
}

// NewController makes a controller positioned at the first item
func NewController(items []domain.FeedItem, opts Options) (*Controller, error) {
	if len(items) == 0 {
		return nil, errors.New("feed has no items")
	}
	if opts.Duration <= 0 {
		opts.Duration = DefaultTransition
	}
	if opts.Animator == nil {
		opts.Animator = TickerAnimator{}
	}

	ctx, cancel := context.WithCancel(context.Background())
	c := &Controller{
		items:     append([]domain.FeedItem(nil), items...),
		duration:  opts.Duration,
		animator:  opts.Animator,
		sink:      opts.Sink,
		ctx:       ctx,
		cancel:    cancel,
		offsets:   make([]float64, len(items)),
		listeners: map[int]func(State){},
	}
	c.idle = sync.NewCond(&c.mu)
	// items after the active one wait below the viewport
	for i := 1; i < len(items); i++ {
		c.offsets[i] = 100
	}
	return c, nil
}

// Start pushes the initial slide positions to the sink
func (c *Controller) Start() {
	c.mu.Lock()
	offsets := append([]float64(nil), c.offsets...)
	c.mu.Unlock()
	for i, y := range offsets {
		c.move(i, y)
	}
}

// Items returns the feed items
func (c *Controller) Items() []domain.FeedItem {
	return append([]domain.FeedItem(nil), c.items...)
}

// Len returns the number of items
func (c *Controller) Len() int { return len(c.items) }

// Activate starts a transition to index. It returns false, changing nothing, when index is out
// of range, already active, or another transition is in flight.
func (c *Controller) Activate(index int) bool {
	c.mu.Lock()
	if index < 0 || index >= len(c.items) || index == c.active || c.transitioning || c.ctx.Err() != nil {
		active, transitioning := c.active, c.transitioning
		c.mu.Unlock()
		log.Printf("[DEBUG] activate %d ignored, active %d, transitioning %v", index, active, transitioning)
		return false
	}
	tr := Transition{From: c.active, To: index, Direction: direction(c.active, index)}
	c.transitioning = true
	c.inFlight++
	c.mu.Unlock()

	go c.run(tr)
	return true
}

// Next activates the following item, no-op on the last one
func (c *Controller) Next() bool {
	return c.Activate(c.State().ActiveIndex + 1)
}

// Prev activates the preceding item, no-op on the first one
func (c *Controller) Prev() bool {
	return c.Activate(c.State().ActiveIndex - 1)
}

// Handle applies a navigation intent
func (c *Controller) Handle(intent Intent) bool {
	switch intent {
	case IntentNext:
		return c.Next()
	case IntentPrev:
		return c.Prev()
	default:
		return false
	}
}

// State returns a snapshot
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

// Wait blocks until no transition is in flight
func (c *Controller) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inFlight > 0 {
		c.idle.Wait()
	}
}

// Subscribe registers fn for committed index changes. The returned func unsubscribes.
func (c *Controller) Subscribe(fn func(State)) func() {
	c.mu.Lock()
	c.lastListener++
	id := c.lastListener
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// Close stops a running animation and rejects further transitions
func (c *Controller) Close() {
	// canceled under the lock, so no Activate can start a transition after this point
	c.mu.Lock()
	c.cancel()
	c.mu.Unlock()
	c.Wait()
}

func (c *Controller) run(tr Transition) {
	defer c.done()
	from, to := float64(-100*tr.Direction), float64(100*tr.Direction)

	c.animator.Animate(c.ctx, c.duration, func(progress float64) {
		eased := EaseInOut(progress)
		c.setOffset(tr.From, from*eased)
		c.setOffset(tr.To, to*(1-eased))
	})
	// a canceled animation still lands on its final positions
	c.setOffset(tr.From, from)
	c.setOffset(tr.To, 0)

	c.mu.Lock()
	c.active = tr.To
	c.transitioning = false
	st := c.snapshot()
	listeners := make([]func(State), 0, len(c.listeners))
	for _, fn := range c.listeners {
		listeners = append(listeners, fn)
	}
	c.mu.Unlock()

	log.Printf("[DEBUG] feed moved %d -> %d", tr.From, tr.To)
	for _, fn := range listeners {
		fn(st)
	}
}

func (c *Controller) done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight--
	if c.inFlight == 0 {
		c.idle.Broadcast()
	}
}

func (c *Controller) setOffset(index int, y float64) {
	c.mu.Lock()
	changed := c.offsets[index] != y
	c.offsets[index] = y
	c.mu.Unlock()
	if changed {
		c.move(index, y)
	}
}

func (c *Controller) move(index int, y float64) {
	if c.sink != nil {
		c.sink.MoveSlide(index, y)
	}
}

func (c *Controller) snapshot() State {
	return State{
		ActiveIndex:   c.active,
		Transitioning: c.transitioning,
		Offsets:       append([]float64(nil), c.offsets...),
	}
}

func direction(from, to int) int {
	if to > from {
		return 1
	}
	return -1
}

// EaseInOut is the quadratic ease-in-out curve (power2.inOut), t is clamped to [0,1]
func EaseInOut(t float64) float64 {
	t = math.Max(0, math.Min(1, t))
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}
