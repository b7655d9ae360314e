package feed

import (
	"context"
	"time"
)

// DefaultFrameInterval is the tick of TickerAnimator, about 60 frames per second
const DefaultFrameInterval = 16 * time.Millisecond

// Animator runs step with progress going from 0 to 1 over duration.
// It returns after the final step or once ctx is canceled.
type Animator interface {
	Animate(ctx context.Context, duration time.Duration, step func(progress float64))
}

// TickerAnimator animates in real time
type TickerAnimator struct {
	FrameInterval time.Duration
}

// Animate steps on every tick until duration elapses
func (a TickerAnimator) Animate(ctx context.Context, duration time.Duration, step func(progress float64)) {
	interval := a.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	start := time.Now()
	step(0)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			progress := float64(now.Sub(start)) / float64(duration)
			if progress >= 1 {
				step(1)
				return
			}
			step(progress)
		}
	}
}

// StepAnimator runs a fixed number of evenly spaced steps without waiting
type StepAnimator struct {
	Steps int
}

// Animate calls step Steps+1 times, ending with progress 1
func (a StepAnimator) Animate(ctx context.Context, _ time.Duration, step func(progress float64)) {
	steps := max(a.Steps, 1)
	for i := 0; i <= steps; i++ {
		if ctx.Err() != nil {
			return
		}
		step(float64(i) / float64(steps))
	}
}
