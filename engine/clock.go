package engine

import (
	"time"

	"voxport/sim"
)

// Clock is the time source for rebuild delays.
type Clock = sim.Clock

// Ticker is implemented by clocks that advance once per frame. The engine
// ticks them at the start of every frame, before stepping the simulation.
type Ticker interface {
	Tick()
}

// SystemClock reads the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// StepClock advances a fixed Step per frame. Tests and headless runs use it
// to make rebuild timing reproducible.
type StepClock struct {
	Step time.Duration
	now  time.Time
}

// NewStepClock returns a clock at start advancing step per Tick.
func NewStepClock(start time.Time, step time.Duration) *StepClock {
	return &StepClock{Step: step, now: start}
}

func (c *StepClock) Now() time.Time { return c.now }

func (c *StepClock) Tick() { c.now = c.now.Add(c.Step) }

func (c *StepClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
