// Package clock abstracts wall-clock time so TTL and timestamp logic can be
// tested without sleeping.
package clock

import "time"

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// System is the real wall clock.
type System struct{}

// Now returns time.Now().
func (System) Now() time.Time { return time.Now() }

// Fixed is a manually controlled clock for tests.
type Fixed struct {
	Current time.Time
}

// NewFixed creates a Fixed clock starting at t.
func NewFixed(t time.Time) *Fixed { return &Fixed{Current: t} }

// Now returns the clock's current time.
func (f *Fixed) Now() time.Time { return f.Current }

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) { f.Current = f.Current.Add(d) }
