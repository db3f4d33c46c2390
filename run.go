package marquee

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// ShowFPS draws the debug overlay without enabling stderr stats.
	ShowFPS bool
	// Resizable lets the user resize the window; the scene re-projects to
	// the new aspect ratio.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene   *Scene
	showFPS bool
}

func (g *game) Update() error { return g.scene.Update() }

func (g *game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
	if g.showFPS && !g.scene.debug {
		drawOverlay(screen, g.scene)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.camera.SetViewport(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// Run opens a window and runs scene until the window closes or an update
// callback returns an error.
func Run(scene *Scene, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("run: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.camera.SetViewport(float64(cfg.Width), float64(cfg.Height))
	if err := ebiten.RunGame(&game{scene: scene, showFPS: cfg.ShowFPS}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
