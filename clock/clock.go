// Package clock turns wall-clock ticks into a bounded simulation step.
package clock

import (
	"math"
	"time"
)

const (
	// DefaultNominal is used whenever the measured step is not positive.
	DefaultNominal = 1.0 / 60.0
	// DefaultCeiling caps a single step so a long stall cannot tunnel bodies.
	DefaultCeiling = 1.0 / 30.0
)

// FrameClock produces a positive, capped dt in seconds from monotonic ticks.
type FrameClock struct {
	nominal float64
	ceiling float64

	last    time.Duration
	started bool
}

// New creates a clock. Non-positive arguments fall back to the defaults and
// a nominal step above the ceiling is lowered to it.
func New(nominal, ceiling float64) *FrameClock {
	if ceiling <= 0 {
		ceiling = DefaultCeiling
	}
	if nominal <= 0 {
		nominal = DefaultNominal
	}
	if nominal > ceiling {
		nominal = ceiling
	}
	return &FrameClock{nominal: nominal, ceiling: ceiling}
}

// Tick records now and returns the step since the previous tick.
func (c *FrameClock) Tick(now time.Duration) float64 {
	if c == nil {
		return DefaultNominal
	}
	dt := 0.0
	if c.started {
		dt = (now - c.last).Seconds()
	}
	c.last = now
	c.started = true

	if dt <= 0 {
		dt = c.nominal
	}
	return math.Min(dt, c.ceiling)
}

// Reset forgets the previous tick; the next Tick returns the nominal step.
func (c *FrameClock) Reset() {
	if c == nil {
		return
	}
	c.started = false
	c.last = 0
}

// Nominal returns the fallback step.
func (c *FrameClock) Nominal() float64 {
	if c == nil {
		return DefaultNominal
	}
	return c.nominal
}

// Ceiling returns the largest step Tick will return.
func (c *FrameClock) Ceiling() float64 {
	if c == nil {
		return DefaultCeiling
	}
	return c.ceiling
}
