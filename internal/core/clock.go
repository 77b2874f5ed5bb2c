package core

import "time"

// FrameClock measures delta-time between frames.
// Deltas are not clamped: a long stall yields one large step.
type FrameClock struct {
	now  func() time.Time
	last time.Time
}

// NewFrameClock starts a clock on the wall clock's monotonic reading.
func NewFrameClock() *FrameClock {
	return NewFrameClockWith(time.Now)
}

// NewFrameClockWith starts a clock on a custom time source.
func NewFrameClockWith(now func() time.Time) *FrameClock {
	return &FrameClock{now: now, last: now()}
}

// Tick returns seconds elapsed since the previous Tick (or construction).
func (c *FrameClock) Tick() float64 {
	t := c.now()
	dt := t.Sub(c.last).Seconds()
	c.last = t
	if dt < 0 {
		return 0
	}
	return dt
}

// Restart makes the next Tick measure from now.
func (c *FrameClock) Restart() {
	c.last = c.now()
}
