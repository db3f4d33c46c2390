// Package marquee renders an animated 3D word for [Ebitengine].
//
// A scene is a word of extruded glyphs that flies in from scattered poses,
// settles into a gentle idle motion, and reflows as the user scrolls to make
// room for one extra glyph that spins into its slot. Around it orbit a cluster
// of small label glyphs in four radial bands, lit by a rig of moving lights,
// inside a slowly turning particle field.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	scene, err := marquee.NewScene(marquee.DefaultConfig(), marquee.SceneOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	marquee.Run(scene, marquee.RunConfig{
//		Title: "Marquee", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Scene.Update] and [Scene.Draw] directly.
//
// # Frame order
//
// [Scene.Tick] advances everything by one frame in a fixed order: the clock,
// queued input, the scroll tween, the camera dolly, the letters, the
// ornaments, the lights, the particle field and finally the orbit controls.
// Tick never reads ebiten input, so a scene can be driven headlessly:
//
//	scene.InjectWheel(100)
//	scene.Tick(1.0 / 60)
//
// # Scroll
//
// Wheel and vertical touch deltas accumulate into a value clamped to
// [0, ScrollConfig.Range]. A [ScrollMapper] eases the insertion progress
// toward accumulated/Range with a single tween that is replaced on every new
// input. Scroll input is ignored until the intro has finished.
//
// # Configuration
//
// Every tunable lives in [Config]. [LoadConfig] reads YAML and merges it onto
// [DefaultConfig], so a file only needs the fields it changes:
//
//	text:
//	  word: HELLO
//	  insert: "!"
//	  insertAt: 5
//	fog:
//	  color: "#101018"
//
// # Automation
//
// [LoadTestScript] parses a JSON script of injected input, waits and
// screenshots. Attach it with [Scene.SetTestRunner]; see cmd/marquee's
// -script flag.
//
// # ECS
//
// The ecs subpackage publishes processed input events into a [Donburi]
// world through [Scene.SetEventSink].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package marquee
