package core

import "time"

// FixedStep helps run simulation updates at a steady ticks-per-second rate
// independent of the render loop.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep always fires.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. It is safe to call from the main loop.
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = 60
	}
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// Reset drops the accumulated time so the next tick is a full step after
// the next call to ShouldStep or Advance.
func (f *FixedStep) Reset() {
	f.accumulator = 0
	f.last = time.Time{}
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	return f.Advance(f.now())
}

// Advance feeds an explicit timestamp into the accumulator. At most one tick
// is released per call and the backlog is capped at one step so a stalled
// frame does not cause a burst of catch-up ticks.
func (f *FixedStep) Advance(now time.Time) bool {
	if f.last.IsZero() {
		f.last = now
	}
	delta := now.Sub(f.last)
	f.last = now
	f.accumulator += delta
	if f.accumulator < f.step {
		return false
	}
	f.accumulator -= f.step
	if f.accumulator > f.step {
		f.accumulator = f.step
	}
	return true
}
