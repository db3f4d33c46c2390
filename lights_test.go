package marquee

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/taigrr/trophy/pkg/math3d"
)

func TestLightRigStock(t *testing.T) {
	r := newLightRig()
	if len(r.Lights()) != 7 {
		t.Fatalf("rig has %d lights, want 7", len(r.Lights()))
	}
	for _, l := range r.Lights() {
		if !l.Enabled {
			t.Errorf("light %s disabled", l.Name)
		}
	}
}

func TestLightRigClosedForm(t *testing.T) {
	r := newLightRig()
	for _, e := range []float64{0, 1.5, 42, 1000} {
		r.update(e)
		if r.Orbit1.Position != OrbitLight1Position(e) {
			t.Errorf("orbit1 at e=%v = %+v", e, r.Orbit1.Position)
		}
		if r.Orbit2.Position != OrbitLight2Position(e) {
			t.Errorf("orbit2 at e=%v = %+v", e, r.Orbit2.Position)
		}
		if r.Rim.Position.X != RimLightX(e) || r.Rim.Position.Y != -2 || r.Rim.Position.Z != -10 {
			t.Errorf("rim at e=%v = %+v", e, r.Rim.Position)
		}
	}
}

func TestOrbitLightRadii(t *testing.T) {
	for e := 0.0; e < 100; e += 0.7 {
		p1 := OrbitLight1Position(e)
		if !approxEqual(math.Hypot(p1.X, p1.Z), 12, 1e-9) {
			t.Fatalf("orbit1 radius at e=%v = %v", e, math.Hypot(p1.X, p1.Z))
		}
		p2 := OrbitLight2Position(e)
		if !approxEqual(math.Hypot(p2.X, p2.Z), 14, 1e-9) {
			t.Fatalf("orbit2 radius at e=%v = %v", e, math.Hypot(p2.X, p2.Z))
		}
		if x := RimLightX(e); math.Abs(x) > 6 {
			t.Fatalf("rim X = %v", x)
		}
	}
}

func TestPointLightFalloff(t *testing.T) {
	l := Light{Kind: LightPoint, Color: Color{1, 1, 1, 1}, Intensity: 1, Range: 10, Enabled: true}
	if c := l.contribution(Vec3{}); c.R != 1 {
		t.Errorf("at source = %v, want 1", c.R)
	}
	if c := l.contribution(Vec3{X: 5}); !approxEqual(c.R, 0.25, epsilon) {
		t.Errorf("at half range = %v, want 0.25", c.R)
	}
	if c := l.contribution(Vec3{X: 20}); c.R != 0 {
		t.Errorf("beyond range = %v, want 0", c.R)
	}
	l.Enabled = false
	if c := l.contribution(Vec3{}); c != (Color{}) {
		t.Errorf("disabled light contributes %+v", c)
	}
}

func TestIlluminateOpaque(t *testing.T) {
	r := newLightRig()
	c := r.illuminate(Vec3{})
	if c.A != 1 {
		t.Errorf("alpha = %v, want 1", c.A)
	}
	if c.R <= 0 || c.G <= 0 || c.B <= 0 {
		t.Errorf("origin unlit: %+v", c)
	}
}

func TestParticleField(t *testing.T) {
	cfg := DefaultConfig().Particles
	f := newParticleField(cfg, rand.New(rand.NewPCG(5, 6)))
	if f.Len() != 1500 {
		t.Fatalf("Len = %d, want 1500", f.Len())
	}
	for i := 0; i < f.Len(); i++ {
		p := f.points[i]
		if math.Abs(p.X) > cfg.Extent.X/2 || math.Abs(p.Y) > cfg.Extent.Y/2 || math.Abs(p.Z) > cfg.Extent.Z/2 {
			t.Fatalf("point %d = %+v outside extent", i, p)
		}
	}
	if f.color.A != 0.5 {
		t.Errorf("alpha = %v, want 0.5", f.color.A)
	}
}

func TestParticleFieldRotationClosedForm(t *testing.T) {
	f := newParticleField(DefaultConfig().Particles, rand.New(rand.NewPCG(5, 6)))
	before := f.points[0]
	f.update(100)
	if !approxEqual(f.Rotation(), 0.8, epsilon) {
		t.Errorf("Rotation = %v, want 0.8", f.Rotation())
	}
	f.update(100)
	if !approxEqual(f.Rotation(), 0.8, epsilon) {
		t.Errorf("Rotation after repeat = %v, want 0.8", f.Rotation())
	}
	if f.points[0] != before {
		t.Error("stored points changed")
	}
	w := f.worldPoint(0)
	if !approxEqual(w.Len(), before.Len(), 1e-9) || !approxEqual(w.Y, before.Y, 1e-12) {
		t.Errorf("rigid rotation changed point: %+v -> %+v", before, w)
	}
	sin, cos := math.Sincos(0.8)
	want := math3d.V3(before.X*cos+before.Z*sin, before.Y, -before.X*sin+before.Z*cos)
	if w.Sub(want).Len() > 1e-9 {
		t.Errorf("worldPoint = %+v, want %+v", w, want)
	}
}
