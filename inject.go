package marquee

// InjectWheel queues a wheel event with the given delta in scroll units
// (positive scrolls forward). It is processed on the next Tick exactly like
// real wheel input, including the intro gate.
func (s *Scene) InjectWheel(delta float64) {
	s.enqueue(InputWheel, delta)
}

// InjectTouchDrag queues a vertical touch drag of dy pixels (positive is an
// upward swipe). The configured touch scale is applied.
func (s *Scene) InjectTouchDrag(dy float64) {
	s.enqueue(InputTouch, dy*s.cfg.Scroll.TouchScale)
}

// InjectOrbitDrag queues a horizontal mouse drag of dx pixels for the orbit
// controls.
func (s *Scene) InjectOrbitDrag(dx float64) {
	s.enqueue(InputDrag, dx)
}

// InjectScrollSweep queues a wheel sweep of total delta spread evenly over
// steps events, all processed on the next Tick.
func (s *Scene) InjectScrollSweep(total float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	step := total / float64(steps)
	for i := 0; i < steps; i++ {
		s.InjectWheel(step)
	}
}

// PendingInput returns the number of queued, unprocessed input events.
func (s *Scene) PendingInput() int {
	return len(s.inputQueue)
}
