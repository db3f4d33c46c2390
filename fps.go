package marquee

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// overlay is the debug readout drawn in the top-left corner. Its text is
// refreshed about every half second.
type overlay struct {
	img        *ebiten.Image
	lastUpdate float64
	op         ebiten.DrawImageOptions
}

var debugOverlay overlay

// drawOverlay draws FPS, TPS and animation state over screen.
func drawOverlay(screen *ebiten.Image, s *Scene) {
	o := &debugOverlay
	if o.img == nil {
		// 180x64 fits four DebugPrint lines.
		o.img = ebiten.NewImage(180, 64)
		o.lastUpdate = -1
	}

	if o.lastUpdate < 0 || s.clock.Elapsed()-o.lastUpdate >= 0.5 {
		o.lastUpdate = s.clock.Elapsed()
		o.img.Clear()
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nintro: %s\nscroll: %.3f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), s.intro.State(), s.scroll.Smoothed()))
	}

	o.op.GeoM.Reset()
	o.op.GeoM.Translate(4, 4)
	screen.DrawImage(o.img, &o.op)
}
