package core

import "time"

const (
	// MinTPS and MaxTPS bound the tick rate accepted by FixedStep.
	MinTPS = 1
	MaxTPS = 240

	defaultTPS = 10
	// maxBacklog caps how many steps a stalled loop may owe.
	maxBacklog = 4
)

// FixedStep helps run simulation updates at a steady ticks-per-second rate.
type FixedStep struct {
	tps         int
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given TPS.
// The first call to ShouldStep fires immediately.
func NewFixedStep(tps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetTPS(tps)
	fs.accumulator = fs.step
	return fs
}

// SetTPS changes the tick rate. Non-positive values select the default and
// the result is clamped to [MinTPS, MaxTPS].
func (f *FixedStep) SetTPS(tps int) {
	if tps <= 0 {
		tps = defaultTPS
	}
	tps = max(MinTPS, min(MaxTPS, tps))
	f.tps = tps
	f.step = time.Second / time.Duration(tps)
}

// TPS returns the current tick rate.
func (f *FixedStep) TPS() int { return f.tps }

// Interval returns the duration of one tick.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether the simulation should advance by one tick.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if limit := maxBacklog * f.step; f.accumulator > limit {
		f.accumulator = limit
	}
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		return true
	}
	return false
}
