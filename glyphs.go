package marquee

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// glyphPixelSize is the font size glyph textures are rasterized at.
const glyphPixelSize = 128

// GlyphFont wraps Ebitengine's text/v2 to measure glyphs and rasterize them
// into white alpha textures that the renderer tints per quad.
type GlyphFont struct {
	face      *text.GoTextFace
	source    *text.GoTextFaceSource
	capHeight float64
	textures  map[string]*ebiten.Image
}

// LoadGlyphFont parses TTF/OTF data. Nil data loads the bundled Go Bold face.
func LoadGlyphFont(ttfData []byte) (*GlyphFont, error) {
	if ttfData == nil {
		ttfData = gobold.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("parse glyph font: %w", err)
	}
	return &GlyphFont{
		face:      &text.GoTextFace{Source: source, Size: glyphPixelSize},
		source:    source,
		capHeight: DefaultConfig().Text.CapHeight,
		textures:  make(map[string]*ebiten.Image),
	}, nil
}

// Advance returns the advance of r as a fraction of the font size.
func (f *GlyphFont) Advance(r rune) float64 {
	return f.AdvanceString(string(r))
}

// AdvanceString returns the advance of s as a fraction of the font size.
func (f *GlyphFont) AdvanceString(s string) float64 {
	return text.Advance(s, f.face) / glyphPixelSize
}

// SetCapHeight sets the glyph height, as a fraction of the font size, that
// textures are cropped to. Cached textures are dropped.
func (f *GlyphFont) SetCapHeight(ratio float64) {
	if ratio <= 0 || ratio == f.capHeight {
		return
	}
	f.capHeight = ratio
	for k, img := range f.textures {
		img.Deallocate()
		delete(f.textures, k)
	}
}

// Texture returns the cached texture for s, rasterizing it on first use. The
// texture spans from the baseline to the cap height.
func (f *GlyphFont) Texture(s string) *ebiten.Image {
	if img, ok := f.textures[s]; ok {
		return img
	}
	w := int(math.Ceil(text.Advance(s, f.face))) + 1
	capPx := f.capHeight * glyphPixelSize
	h := int(math.Ceil(capPx)) + 1

	img := ebiten.NewImage(max(w, 1), max(h, 1))
	m := f.face.Metrics()
	op := &text.DrawOptions{}
	// Shift so the cap line sits at the top edge and the baseline at capPx.
	op.GeoM.Translate(0, capPx-m.HAscent)
	text.Draw(img, s, f.face, op)

	f.textures[s] = img
	return img
}
