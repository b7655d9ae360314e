package player

import (
	"sync"
	"sync/atomic"
)

// Viewport is a VisibilityObserver driven by explicit visibility fractions.
// Elements must be comparable (pointer types) since they are used as keys.
type Viewport struct {
	threshold float64

	mu        sync.Mutex
	fractions map[MediaElement]float64
	subs      map[MediaElement][]*subscription
}

type subscription struct {
	onEnter, onExit func()
	visible         bool
	closed          atomic.Bool
}

// NewViewport makes a viewport with the given threshold, non-positive or above 1 means DefaultThreshold
func NewViewport(threshold float64) *Viewport {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Viewport{
		threshold: threshold,
		fractions: map[MediaElement]float64{},
		subs:      map[MediaElement][]*subscription{},
	}
}

// Observe subscribes to threshold crossings of el. The current state is reported right away,
// like an intersection observer's first callback.
func (v *Viewport) Observe(el MediaElement, onEnter, onExit func()) func() {
	sub := &subscription{onEnter: onEnter, onExit: onExit}

	v.mu.Lock()
	sub.visible = v.fractions[el] >= v.threshold
	v.subs[el] = append(v.subs[el], sub)
	v.mu.Unlock()

	sub.fire(sub.visible)

	var once sync.Once
	return func() {
		once.Do(func() {
			sub.closed.Store(true)
			v.mu.Lock()
			defer v.mu.Unlock()
			list := v.subs[el]
			for i, s := range list {
				if s == sub {
					v.subs[el] = append(list[:i:i], list[i+1:]...)
					break
				}
			}
			if len(v.subs[el]) == 0 {
				delete(v.subs, el)
			}
		})
	}
}

// Update sets the visible fraction of el and notifies subscribers that crossed the threshold.
// Repeating the same fraction is a no-op.
func (v *Viewport) Update(el MediaElement, fraction float64) {
	fraction = clamp(fraction)

	type event struct {
		sub     *subscription
		visible bool
	}
	var events []event

	v.mu.Lock()
	v.fractions[el] = fraction
	visible := fraction >= v.threshold
	for _, sub := range v.subs[el] {
		if sub.visible != visible {
			sub.visible = visible
			events = append(events, event{sub: sub, visible: visible})
		}
	}
	v.mu.Unlock()

	for _, e := range events {
		e.sub.fire(e.visible)
	}
}

// Fraction returns the last reported fraction of el
func (v *Viewport) Fraction(el MediaElement) float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.fractions[el]
}

// Forget drops the stored fraction of el
func (v *Viewport) Forget(el MediaElement) {
	v.mu.Lock()
	defer v.mu.Unlock()
	delete(v.fractions, el)
}

func (s *subscription) fire(visible bool) {
	if s.closed.Load() {
		return
	}
	if visible {
		s.onEnter()
		return
	}
	s.onExit()
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	return f
}
