package ecs

import (
	"github.com/phanxgames/marquee"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for marquee input events.
var InputEventType = events.NewEventType[marquee.InputEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Input events
// are published to InputEventType.
func NewDonburiSink(world donburi.World) marquee.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitInput(event marquee.InputEvent) {
	InputEventType.Publish(s.world, event)
}

// ScrollTally counts accepted and rejected scroll input. Attach it with
// Subscribe; it is a minimal consumer of InputEventType.
type ScrollTally struct {
	Accepted int
	Rejected int
	Distance float64
	Drags    int
}

// Subscribe registers the tally on world.
func (t *ScrollTally) Subscribe(world donburi.World) {
	InputEventType.Subscribe(world, t.handle)
}

func (t *ScrollTally) handle(_ donburi.World, e marquee.InputEvent) {
	switch e.Kind {
	case marquee.InputDrag:
		t.Drags++
	default:
		if e.Accepted {
			t.Accepted++
			t.Distance += e.Delta
		} else {
			t.Rejected++
		}
	}
}
