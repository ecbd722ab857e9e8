package clock

import "time"

// FakeClock is a manually driven Clock. Entitlement windows are pure
// functions of Now, so tests steer expiry by moving this clock instead of
// sleeping.
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a clock pinned to t, normalized to UTC.
func NewFakeClock(t time.Time) *FakeClock {
	return &FakeClock{now: t.UTC()}
}

func (c *FakeClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set pins the clock to an absolute instant, normalized to UTC.
func (c *FakeClock) Set(t time.Time) {
	c.now = t.UTC()
}
