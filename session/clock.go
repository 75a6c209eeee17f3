package session

// maxFrameTime caps how much wall time one frame may feed the clock, so a
// stall runs a bounded number of catch-up ticks.
const maxFrameTime = 0.25

// FixedClock turns variable frame times into whole fixed steps.
type FixedClock struct {
	Step float64

	accumulator float64
	ticks       uint64
}

func NewFixedClock(step float64) FixedClock {
	return FixedClock{Step: step}
}

// Advance adds one frame's time and returns how many steps are due.
func (c *FixedClock) Advance(frameDt float64) int {
	if c.Step <= 0 || !(frameDt > 0) {
		return 0
	}
	if frameDt > maxFrameTime {
		frameDt = maxFrameTime
	}
	c.accumulator += frameDt

	n := 0
	for c.accumulator >= c.Step {
		c.accumulator -= c.Step
		n++
	}
	c.ticks += uint64(n)
	return n
}

// Overstep is the fraction of a step accumulated past the last tick, in
// [0, 1). Presentation lerps previous to current position by it.
func (c *FixedClock) Overstep() float64 {
	if c.Step <= 0 {
		return 0
	}
	return c.accumulator / c.Step
}

// Ticks is the number of steps run since the last Reset.
func (c *FixedClock) Ticks() uint64 {
	return c.ticks
}

func (c *FixedClock) Reset() {
	c.accumulator = 0
	c.ticks = 0
}
