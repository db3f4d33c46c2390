// Marquee renders the animated word scene in a window.
//
// Scroll the wheel (or drag a touch) to slide the inserted letter into the
// word. Drag with the left mouse button to orbit the camera.
//
// Flags:
//
//	-config path   YAML file overriding the default scene configuration
//	-debug         log per-frame stats to stderr and draw the FPS overlay
//	-script path   JSON test script of injected input and screenshots
//	-seed n        random seed for entity parameters (0 picks one)
package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/marquee"
)

const (
	windowTitle = "Marquee"
	screenW     = 1280
	screenH     = 720
)

func main() {
	configPath := flag.String("config", "", "YAML scene configuration")
	debug := flag.Bool("debug", false, "log frame stats and draw the FPS overlay")
	scriptPath := flag.String("script", "", "JSON test script")
	seed := flag.Uint64("seed", 0, "random seed (0 picks one)")
	flag.Parse()

	cfg := marquee.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = marquee.LoadConfig(*configPath); err != nil {
			log.Fatalf("marquee: %v", err)
		}
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}

	scene, err := marquee.NewScene(cfg, marquee.SceneOptions{})
	if err != nil {
		log.Fatalf("marquee: %v", err)
	}
	scene.SetDebugMode(*debug)

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("marquee: read script: %v", err)
		}
		runner, err := marquee.LoadTestScript(data)
		if err != nil {
			log.Fatalf("marquee: %v", err)
		}
		scene.SetTestRunner(runner)
		// Quit one frame after the script ends so its last screenshot is drawn.
		finished := false
		scene.SetUpdateFunc(func() error {
			if finished {
				return ebiten.Termination
			}
			finished = runner.Done()
			return nil
		})
	}

	if err := marquee.Run(scene, marquee.RunConfig{
		Title:     windowTitle,
		Width:     screenW,
		Height:    screenH,
		Resizable: true,
	}); err != nil {
		log.Fatal(err)
	}
}
