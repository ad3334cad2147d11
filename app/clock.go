package app

import "time"

// tickClock follows the host's millisecond tick stream, so headless runs
// advance simulated time at exactly the frame rate.
type tickClock struct {
	start time.Time
	ms    uint64
}

func newTickClock(start time.Time) *tickClock {
	return &tickClock{start: start}
}

func (c *tickClock) Now() time.Time {
	return c.start.Add(time.Duration(c.ms) * time.Millisecond)
}

// set records the latest tick sequence number. Ticks may be dropped by the
// host, so the clock jumps to the newest value instead of counting.
func (c *tickClock) set(seq uint64) {
	if seq > c.ms {
		c.ms = seq
	}
}
