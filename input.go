package marquee

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// InputKind identifies a kind of input event.
type InputKind uint8

const (
	InputWheel InputKind = iota // vertical wheel delta, in scroll units
	InputTouch                  // vertical touch drag delta, already scaled
	InputDrag                   // horizontal mouse drag delta, in pixels
)

// String returns the kind name.
func (k InputKind) String() string {
	switch k {
	case InputWheel:
		return "wheel"
	case InputTouch:
		return "touch"
	case InputDrag:
		return "drag"
	default:
		return "unknown"
	}
}

// InputEvent is one processed input. Accepted is false when the scene ignored
// the event (scroll input before the intro has finished).
type InputEvent struct {
	Kind     InputKind
	Delta    float64
	Accepted bool
	// Frame is the clock frame the event was processed on.
	Frame uint64
}

const defaultDragDeadZone = 4.0

// pointerState tracks the mouse for orbit dragging.
type pointerState struct {
	down     bool
	dragging bool
	startX   float64
	lastX    float64
	deadZone float64
}

// touchTracker follows the first active touch, like a page's touchmove.
type touchTracker struct {
	ids     []ebiten.TouchID
	primary ebiten.TouchID
	active  bool
	lastY   float64
}

// enqueue appends an event to be processed on the next Tick.
func (s *Scene) enqueue(kind InputKind, delta float64) {
	s.inputQueue = append(s.inputQueue, InputEvent{Kind: kind, Delta: delta})
}

// readInput polls ebiten's wheel, touch and mouse state and queues events.
// Called from Scene.Update before Tick.
func (s *Scene) readInput() {
	if _, wy := ebiten.Wheel(); wy != 0 {
		// Wheel up scrolls back, matching a page's deltaY sign.
		s.enqueue(InputWheel, -wy*s.cfg.Scroll.WheelStep)
	}
	s.readTouch()
	s.readMouse()
}

// readTouch turns vertical movement of the primary touch into scroll deltas.
func (s *Scene) readTouch() {
	t := &s.touches
	t.ids = ebiten.AppendTouchIDs(t.ids[:0])
	if len(t.ids) == 0 {
		t.active = false
		return
	}

	found := false
	for _, id := range t.ids {
		if t.active && id == t.primary {
			found = true
			break
		}
	}
	if !found {
		t.primary = t.ids[0]
		_, y := ebiten.TouchPosition(t.primary)
		t.lastY = float64(y)
		t.active = true
		return
	}

	_, y := ebiten.TouchPosition(t.primary)
	dy := t.lastY - float64(y)
	t.lastY = float64(y)
	if dy != 0 {
		s.enqueue(InputTouch, dy*s.cfg.Scroll.TouchScale)
	}
}

// readMouse turns left-button drags past the dead zone into orbit deltas.
func (s *Scene) readMouse() {
	p := &s.pointer
	mx, _ := ebiten.CursorPosition()
	x := float64(mx)

	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.down = false
		p.dragging = false
		return
	}
	if !p.down {
		p.down = true
		p.startX = x
		p.lastX = x
		return
	}
	if !p.dragging && math.Abs(x-p.startX) < p.deadZone {
		return
	}
	p.dragging = true
	if dx := x - p.lastX; dx != 0 {
		s.enqueue(InputDrag, dx)
	}
	p.lastX = x
}

// SetDragDeadZone sets the minimum mouse movement in pixels before a press
// becomes an orbit drag.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.pointer.deadZone = pixels
}

// processInput drains the input queue. Scroll input is accepted only once the
// intro has completed; drags always rotate the orbit controls.
func (s *Scene) processInput() {
	if len(s.inputQueue) == 0 {
		return
	}
	for i := range s.inputQueue {
		ev := s.inputQueue[i]
		ev.Frame = s.clock.Frames()
		switch ev.Kind {
		case InputWheel, InputTouch:
			if s.intro.Done() {
				s.scroll.Feed(ev.Delta)
				ev.Accepted = true
			}
		case InputDrag:
			s.controls.Rotate(ev.Delta, s.camera.Height)
			ev.Accepted = true
		}
		if s.sink != nil {
			s.sink.EmitInput(ev)
		}
	}
	s.inputQueue = s.inputQueue[:0]
}
