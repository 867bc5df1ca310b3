package window

import "time"

// Clock is the part of a Window a pacer needs.
type Clock interface {
	Ticks() time.Duration
	Delay(d time.Duration)
}

// FixedPacer sleeps the same duration after every frame.
type FixedPacer struct {
	clock Clock
	delay time.Duration
}

func NewFixedPacer(clock Clock, delay time.Duration) *FixedPacer {
	return &FixedPacer{clock: clock, delay: delay}
}

func (p *FixedPacer) MaySleep() {
	if p.delay > 0 {
		p.clock.Delay(p.delay)
	}
}

// TimeSynchronizer sleeps only for what is left of the frame period.
type TimeSynchronizer struct {
	prevTicks, perFrame time.Duration
	clock               Clock
}

func NewTimeSynchronizer(clock Clock, targetFPS float64) *TimeSynchronizer {
	return &TimeSynchronizer{
		prevTicks: clock.Ticks(),
		perFrame:  time.Duration(float64(time.Second) / targetFPS),
		clock:     clock,
	}
}

func (ts *TimeSynchronizer) MaySleep() {
	cur := ts.clock.Ticks()
	if cur < ts.prevTicks {
		return
	}
	diff := ts.perFrame - (cur - ts.prevTicks)
	if diff >= time.Millisecond {
		ts.clock.Delay(diff)
	}
	ts.prevTicks += ts.perFrame
	if ts.prevTicks < cur-ts.perFrame { // Fell too far behind; don't try to catch up
		ts.prevTicks = cur
	}
}
