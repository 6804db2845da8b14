package testutil

import "time"

// TestClock is a settable clock for use cases that read the current time.
type TestClock struct {
	now time.Time
}

func NewTestClockAt(now time.Time) *TestClock {
	return &TestClock{now: now}
}

func (c *TestClock) Now() time.Time { return c.now }

// Advance moves the clock forward by d and returns the new time.
func (c *TestClock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Set moves the clock to t.
func (c *TestClock) Set(t time.Time) { c.now = t }
