package marquee

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// thresholdShaderSrc keeps only pixels whose luminance exceeds Threshold,
// scaled by how far they exceed it.
const thresholdShaderSrc = `//kage:unit pixels
package main

var Threshold float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a == 0 {
		return vec4(0)
	}
	rgb := c.rgb / c.a
	l := dot(rgb, vec3(0.2126, 0.7152, 0.0722))
	k := clamp((l - Threshold) / max(1.0 - Threshold, 0.0001), 0.0, 1.0)
	return vec4(rgb*k, 1.0) * c.a
}
`

var thresholdShader *ebiten.Shader

func ensureThresholdShader() *ebiten.Shader {
	if thresholdShader == nil {
		s, err := ebiten.NewShader([]byte(thresholdShaderSrc))
		if err != nil {
			panic(fmt.Sprintf("marquee: failed to compile threshold shader: %v", err))
		}
		thresholdShader = s
	}
	return thresholdShader
}

// bloomPass extracts bright pixels, blurs them with a Kawase chain and adds
// them back over the scene.
type bloomPass struct {
	Strength  float64
	Threshold float64
	Radius    int

	bright   *ebiten.Image
	blurred  *ebiten.Image
	temps    []*ebiten.Image
	imgOp    ebiten.DrawImageOptions
	shaderOp ebiten.DrawRectShaderOptions
}

func newBloomPass(cfg BloomConfig) *bloomPass {
	return &bloomPass{
		Strength:  cfg.Strength,
		Threshold: cfg.Threshold,
		Radius:    max(cfg.Radius, 0),
	}
}

// passes returns the number of halving steps for the radius: log2(radius),
// minimum 1.
func (b *bloomPass) passes() int {
	if b.Radius <= 1 {
		return 1
	}
	return max(int(math.Ceil(math.Log2(float64(b.Radius)))), 1)
}

// apply draws src onto dst with bloom added. src and dst must differ.
func (b *bloomPass) apply(src, dst *ebiten.Image) {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	op := &b.imgOp
	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.Blend = ebiten.BlendCopy
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(src, op)

	if b.Strength <= 0 {
		return
	}

	b.bright = resizeTarget(b.bright, w, h)
	b.blurred = resizeTarget(b.blurred, w, h)

	b.shaderOp.Images[0] = src
	if b.shaderOp.Uniforms == nil {
		b.shaderOp.Uniforms = make(map[string]any, 1)
	}
	b.shaderOp.Uniforms["Threshold"] = float32(b.Threshold)
	b.bright.DrawRectShader(w, h, ensureThresholdShader(), &b.shaderOp)

	b.blur(b.bright, b.blurred)

	op.GeoM.Reset()
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(float32(b.Strength))
	op.Blend = ebiten.BlendLighter
	op.Filter = ebiten.FilterNearest
	dst.DrawImage(b.blurred, op)
}

// blur renders a Kawase blur from src into dst by repeated bilinear halving
// and doubling.
func (b *bloomPass) blur(src, dst *ebiten.Image) {
	passes := b.passes()
	for len(b.temps) < passes {
		b.temps = append(b.temps, nil)
	}
	for i := passes; i < len(b.temps); i++ {
		if b.temps[i] != nil {
			b.temps[i].Deallocate()
			b.temps[i] = nil
		}
	}
	b.temps = b.temps[:passes]

	op := &b.imgOp
	op.Blend = ebiten.BlendSourceOver
	op.Filter = ebiten.FilterLinear

	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	current := src
	for i := 0; i < passes; i++ {
		w, h = max(w/2, 1), max(h/2, 1)
		b.temps[i] = resizeTarget(b.temps[i], w, h)
		drawScaled(b.temps[i], current, op)
		current = b.temps[i]
	}
	for i := passes - 2; i >= 0; i-- {
		b.temps[i].Clear()
		drawScaled(b.temps[i], current, op)
		current = b.temps[i]
	}
	dst.Clear()
	drawScaled(dst, current, op)
}

// drawScaled stretches src over the whole of dst.
func drawScaled(dst, src *ebiten.Image, op *ebiten.DrawImageOptions) {
	op.GeoM.Reset()
	op.ColorScale.Reset()
	sb, db := src.Bounds(), dst.Bounds()
	op.GeoM.Scale(float64(db.Dx())/float64(sb.Dx()), float64(db.Dy())/float64(sb.Dy()))
	dst.DrawImage(src, op)
}

// resizeTarget returns img cleared when it already has size w×h, otherwise a
// fresh image of that size.
func resizeTarget(img *ebiten.Image, w, h int) *ebiten.Image {
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			img.Clear()
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}
