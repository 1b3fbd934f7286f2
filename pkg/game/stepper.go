package game

import "time"

// Stepper turns a free-running frame clock into fixed-period ticks.
// Missed ticks are replayed up to maxSteps per call and the rest are
// dropped, the way a coalescing UI timer behaves under load.
type Stepper struct {
	interval time.Duration
	maxSteps int
	started  bool
	last     time.Time
	pending  time.Duration
}

// NewStepper creates a stepper firing every interval
func NewStepper(interval time.Duration, maxSteps int) *Stepper {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &Stepper{
		interval: interval,
		maxSteps: maxSteps,
	}
}

// Interval returns the tick period
func (s *Stepper) Interval() time.Duration {
	return s.interval
}

// Advance reports how many ticks are due at now. The first call only starts the clock.
func (s *Stepper) Advance(now time.Time) int {
	if !s.started {
		s.started = true
		s.last = now
		return 0
	}

	elapsed := now.Sub(s.last)
	s.last = now
	if elapsed <= 0 {
		return 0
	}

	s.pending += elapsed
	steps := int(s.pending / s.interval)
	s.pending -= time.Duration(steps) * s.interval

	if steps > s.maxSteps {
		steps = s.maxSteps
		s.pending = 0
	}
	return steps
}

// Reset forgets the clock; the next Advance starts over
func (s *Stepper) Reset() {
	s.started = false
	s.pending = 0
}
