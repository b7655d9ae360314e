package feed

import (
	"math"
	"sync"
)

// GestureKind is the input device of a gesture
type GestureKind string

const (
	GestureWheel   GestureKind = "wheel"
	GestureTouch   GestureKind = "touch"
	GesturePointer GestureKind = "pointer"
)

// Intent is a navigation request derived from gestures
type Intent int

const (
	IntentNone Intent = iota
	IntentNext
	IntentPrev
)

func (i Intent) String() string {
	switch i {
	case IntentNext:
		return "next"
	case IntentPrev:
		return "prev"
	default:
		return "none"
	}
}

const (
	// DefaultTolerance is the movement needed before a gesture counts
	DefaultTolerance = 20
	// DefaultWheelSpeed scales wheel deltas, negative so that scrolling down moves forward
	DefaultWheelSpeed = -2
)

// Gesture is a raw vertical movement, negative DeltaY moves up
type Gesture struct {
	Kind   GestureKind `json:"kind"`
	DeltaY float64     `json:"delta_y"`
}

// GestureInterpreter turns wheel, touch and pointer deltas into intents.
// Movement accumulates until it reaches the tolerance, smaller jitter is suppressed.
type GestureInterpreter struct {
	tolerance  float64
	wheelSpeed float64

	mu  sync.Mutex
	acc float64
}

// NewGestureInterpreter makes an interpreter, zero values mean defaults
func NewGestureInterpreter(tolerance, wheelSpeed float64) *GestureInterpreter {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	if wheelSpeed == 0 {
		wheelSpeed = DefaultWheelSpeed
	}
	return &GestureInterpreter{tolerance: tolerance, wheelSpeed: wheelSpeed}
}

// Feed consumes a gesture. Upward movement means next, downward means prev.
func (g *GestureInterpreter) Feed(ev Gesture) Intent {
	delta := ev.DeltaY
	if ev.Kind == GestureWheel {
		delta *= g.wheelSpeed
	}
	if delta == 0 {
		return IntentNone
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	// direction change drops the movement collected so far
	if g.acc != 0 && math.Signbit(g.acc) != math.Signbit(delta) {
		g.acc = 0
	}
	g.acc += delta
	if math.Abs(g.acc) < g.tolerance {
		return IntentNone
	}
	up := g.acc < 0
	g.acc = 0
	if up {
		return IntentNext
	}
	return IntentPrev
}

// Reset drops accumulated movement
func (g *GestureInterpreter) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.acc = 0
}
