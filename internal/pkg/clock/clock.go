// Package clock provides time utilities for the application
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/dice-delve/internal/pkg/clock Clock

// Clock provides time functionality
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Stepped is a deterministic clock. Every call to Now advances it by Step.
type Stepped struct {
	Current time.Time
	Step    time.Duration
}

// NewStepped returns a clock starting at start
func NewStepped(start time.Time, step time.Duration) *Stepped {
	return &Stepped{Current: start, Step: step}
}

// Now returns the current instant and moves the clock forward
func (c *Stepped) Now() time.Time {
	now := c.Current
	c.Current = c.Current.Add(c.Step)
	return now
}
