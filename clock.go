package marquee

// Clock tracks elapsed time since the first frame and the most recent frame
// delta, in seconds. Only the frame driver advances it.
type Clock struct {
	elapsed float64
	delta   float64
	frames  uint64
}

// advance moves the clock forward by dt seconds. Negative deltas are treated
// as zero so elapsed time stays monotonic.
func (c *Clock) advance(dt float64) {
	if dt < 0 {
		dt = 0
	}
	c.delta = dt
	c.elapsed += dt
	c.frames++
}

// Elapsed returns the total time since the clock started.
func (c *Clock) Elapsed() float64 { return c.elapsed }

// Delta returns the duration of the last frame.
func (c *Clock) Delta() float64 { return c.delta }

// Frames returns the number of frames advanced so far.
func (c *Clock) Frames() uint64 { return c.frames }
