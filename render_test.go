package marquee

import (
	"math"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestPoseTransformSingleAxis(t *testing.T) {
	tests := []struct {
		name string
		v, r Vec3
		want Vec3
	}{
		{"identity", math3d.V3(1, 2, 3), Vec3{}, math3d.V3(1, 2, 3)},
		{"z quarter", math3d.V3(1, 0, 0), Vec3{Z: math.Pi / 2}, math3d.V3(0, 1, 0)},
		{"y quarter", math3d.V3(1, 0, 0), Vec3{Y: math.Pi / 2}, math3d.V3(0, 0, -1)},
		{"x quarter", math3d.V3(0, 1, 0), Vec3{X: math.Pi / 2}, math3d.V3(0, 0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Pose{Rotation: tt.r, Scale: 1}.Transform().MulVec3(tt.v)
			if got.Sub(tt.want).Len() > 1e-12 {
				t.Errorf("Transform().MulVec3 = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPoseTransformOrder(t *testing.T) {
	// XYZ order applies Z first: Z takes +X to +Y, then X takes +Y to +Z.
	got := Pose{Rotation: Vec3{X: math.Pi / 2, Z: math.Pi / 2}, Scale: 1}.Transform().MulVec3(math3d.V3(1, 0, 0))
	if got.Sub(math3d.V3(0, 0, 1)).Len() > 1e-12 {
		t.Errorf("Transform().MulVec3 = %+v, want (0,0,1)", got)
	}
}

func TestPoseTransformScalesThenTranslates(t *testing.T) {
	p := Pose{Position: math3d.V3(10, -2, 3), Rotation: Vec3{Y: math.Pi}, Scale: 2}
	got := p.Transform().MulVec3(math3d.V3(1, 1, 0))
	// Scale to (2,2,0), half turn about Y to (-2,2,0), then offset.
	if got.Sub(math3d.V3(8, 0, 3)).Len() > 1e-12 {
		t.Errorf("Transform().MulVec3 = %+v, want (8,0,3)", got)
	}
}

func TestPoseTransformPreservesLength(t *testing.T) {
	v := math3d.V3(0.3, -1.2, 2.5)
	got := Pose{Rotation: math3d.V3(0.7, -2.1, 1.3), Scale: 1}.Transform().MulVec3(v)
	if !approxEqual(got.Len(), v.Len(), 1e-12) {
		t.Errorf("length %v -> %v", v.Len(), got.Len())
	}
}

func TestFogFalloff(t *testing.T) {
	s := newTestScene(t)
	c := Color{1, 1, 1, 1}
	if got := s.fog(c, 0); got != c {
		t.Errorf("fog at depth 0 = %+v, want unchanged", got)
	}
	fc := s.cfg.Fog.Color.Color()
	far := s.fog(c, 1e6)
	if !approxEqual(far.R, fc.R, 1e-9) || !approxEqual(far.B, fc.B, 1e-9) {
		t.Errorf("fog far = %+v, want fog colour %+v", far, fc)
	}
	// density 0.006 at depth 100: 1 - e^-0.36
	mid := s.fog(c, 100)
	f := 1 - math.Exp(-0.36)
	if !approxEqual(mid.R, 1-f+fc.R*f, 1e-9) {
		t.Errorf("fog at 100 = %v, want %v", mid.R, 1-f+fc.R*f)
	}
	if mid.A != 1 {
		t.Errorf("fog changed alpha to %v", mid.A)
	}
}

func TestShadeEmissiveBrightens(t *testing.T) {
	s := newTestScene(t)
	base := Color{0.5, 0.1, 0.1, 1}
	dim := s.shade(Vec3{}, glyphMaterial(base, 0), 10)
	lit := s.shade(Vec3{}, glyphMaterial(base, 0.6), 10)
	if lit.R <= dim.R {
		t.Errorf("emissive did not brighten: %v <= %v", lit.R, dim.R)
	}
}

func TestShadeWireframeIsUnlit(t *testing.T) {
	s := newTestScene(t)
	base := Color{0.5, 0.1, 0.1, 1}
	got := s.shade(math3d.V3(0, 0, 5), FinishWireframe.Material(base), 10)
	if want := s.fog(base, 10); got != want {
		t.Errorf("wireframe shade = %+v, want %+v", got, want)
	}
}

func TestShadeGlassIsTranslucent(t *testing.T) {
	s := newTestScene(t)
	base := Color{0.5, 0.1, 0.1, 1}
	got := s.shade(Vec3{}, FinishGlass.Material(base), 0)
	if !approxEqual(got.A, 0.35, epsilon) {
		t.Errorf("glass alpha = %v, want 0.35", got.A)
	}
}

func TestEmitSlabFaces(t *testing.T) {
	base := Color{0.5, 0.5, 0.5, 1}
	tests := []struct {
		name   string
		finish OrnamentFinish
		want   int
	}{
		{"brushed", FinishBrushed, 2},
		{"glow", FinishGlow, 2},
		{"wireframe", FinishWireframe, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			s.renderer = newRenderer(nil, BloomConfig{})
			s.camera.SetViewport(800, 600)
			s.emitSlab(nil, Pose{Scale: 1}, 1, 1, 0.2, tt.finish.Material(base))
			if got := len(s.renderer.quads); got != tt.want {
				t.Errorf("faces = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBloomPasses(t *testing.T) {
	tests := []struct {
		radius, want int
	}{
		{0, 1},
		{1, 1},
		{2, 1},
		{3, 2},
		{8, 3},
		{9, 4},
	}
	for _, tt := range tests {
		b := newBloomPass(BloomConfig{Radius: tt.radius})
		if got := b.passes(); got != tt.want {
			t.Errorf("passes(radius=%d) = %d, want %d", tt.radius, got, tt.want)
		}
	}
}

func TestNewRendererBloomToggle(t *testing.T) {
	if r := newRenderer(nil, BloomConfig{Enabled: false}); r.bloom != nil {
		t.Error("bloom pass created while disabled")
	}
	r := newRenderer(nil, BloomConfig{Enabled: true, Strength: 0.4, Threshold: 0.75, Radius: 8})
	if r.bloom == nil || r.bloom.Strength != 0.4 || r.bloom.Threshold != 0.75 {
		t.Errorf("bloom = %+v", r.bloom)
	}
}
