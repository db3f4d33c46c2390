// Package ecs bridges marquee input events into a [Donburi] world.
//
// [NewDonburiSink] publishes every processed wheel, touch and drag event as a
// typed Donburi event. Subscribe to [InputEventType] in your ECS systems to
// receive them:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//	ecs.InputEventType.Subscribe(world, func(w donburi.World, e marquee.InputEvent) {
//		// ...
//	})
//
// Events are queued until ProcessEvents (or events.ProcessAllEvents) runs.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
