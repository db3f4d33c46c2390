package marquee

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// LightKind distinguishes how a light contributes to shading.
type LightKind uint8

const (
	LightAmbient     LightKind = iota // uniform contribution everywhere
	LightDirectional                  // constant contribution, direction ignored by flat shading
	LightPoint                        // falls off to zero at Range
)

// Light is a light source in the scene.
type Light struct {
	Name      string
	Kind      LightKind
	Position  Vec3
	Color     Color
	Intensity float64
	// Range is the distance at which a point light's contribution reaches zero.
	Range float64
	// Enabled determines whether the light contributes to shading.
	Enabled bool
}

// contribution returns the light reaching point p.
func (l *Light) contribution(p Vec3) Color {
	if !l.Enabled {
		return Color{}
	}
	switch l.Kind {
	case LightPoint:
		if l.Range <= 0 {
			return Color{}
		}
		d := p.Sub(l.Position).Len()
		f := clamp01(1 - d/l.Range)
		return l.Color.Scale(l.Intensity * f * f)
	case LightDirectional:
		return l.Color.Scale(l.Intensity * 0.5)
	default:
		return l.Color.Scale(l.Intensity)
	}
}

// LightRig holds the scene's lights. The two accent lights and the rim light
// move as closed-form functions of elapsed time, so the rig carries no
// accumulated state and can be posed for any elapsed value.
type LightRig struct {
	Ambient *Light
	Key     *Light
	Fill    *Light
	Rim     *Light
	Top     *Light
	Orbit1  *Light
	Orbit2  *Light

	all []*Light
}

// newLightRig builds the stock lighting setup.
func newLightRig() *LightRig {
	r := &LightRig{
		Ambient: &Light{Name: "ambient", Kind: LightAmbient, Color: Hex(0x1a1a2e), Intensity: 0.4, Enabled: true},
		Key:     &Light{Name: "key", Kind: LightDirectional, Position: math3d.V3(8, 10, 15), Color: Hex(0xffeedd), Intensity: 1.8, Enabled: true},
		Fill:    &Light{Name: "fill", Kind: LightDirectional, Position: math3d.V3(-10, 4, 8), Color: Hex(0x8899cc), Intensity: 0.5, Enabled: true},
		Rim:     &Light{Name: "rim", Kind: LightPoint, Position: math3d.V3(0, -2, -10), Color: Hex(0xff5522), Intensity: 1.2, Range: 50, Enabled: true},
		Top:     &Light{Name: "top", Kind: LightPoint, Position: math3d.V3(0, 10, 0), Color: Hex(0x7799ff), Intensity: 0.6, Range: 40, Enabled: true},
		Orbit1:  &Light{Name: "orbit1", Kind: LightPoint, Color: Hex(0xff2266), Intensity: 0.8, Range: 30, Enabled: true},
		Orbit2:  &Light{Name: "orbit2", Kind: LightPoint, Color: Hex(0x2266ff), Intensity: 0.8, Range: 30, Enabled: true},
	}
	r.all = []*Light{r.Ambient, r.Key, r.Fill, r.Rim, r.Top, r.Orbit1, r.Orbit2}
	r.update(0)
	return r
}

// OrbitLight1Position is the first accent light's position at elapsed e.
func OrbitLight1Position(e float64) Vec3 {
	return math3d.V3(math.Sin(e*0.3)*12, math.Cos(e*0.2)*4+2, math.Cos(e*0.3)*12)
}

// OrbitLight2Position is the second accent light's position at elapsed e.
func OrbitLight2Position(e float64) Vec3 {
	return math3d.V3(math.Cos(e*0.25)*14, math.Sin(e*0.15)*3-1, math.Sin(e*0.25)*14)
}

// RimLightX is the rim light's horizontal coordinate at elapsed e.
func RimLightX(e float64) float64 {
	return math.Sin(e*0.35) * 6
}

// update poses the moving lights for elapsed time e.
func (r *LightRig) update(e float64) {
	r.Orbit1.Position = OrbitLight1Position(e)
	r.Orbit2.Position = OrbitLight2Position(e)
	r.Rim.Position.X = RimLightX(e)
}

// Lights returns every light in the rig. The returned slice MUST NOT be mutated.
func (r *LightRig) Lights() []*Light {
	return r.all
}

// illuminate sums the contribution of all lights at p.
func (r *LightRig) illuminate(p Vec3) Color {
	var c Color
	for _, l := range r.all {
		c = c.Add(l.contribution(p))
	}
	c.A = 1
	return c
}
