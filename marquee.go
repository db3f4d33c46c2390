package marquee

import (
	"image/color"
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// Hex builds an opaque Color from a 0xRRGGBB value.
func Hex(rgb uint32) Color {
	return Color{
		R: float64((rgb>>16)&0xff) / 255,
		G: float64((rgb>>8)&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Scale returns c with its RGB components multiplied by k. Alpha is kept.
func (c Color) Scale(k float64) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

// Add returns the component-wise sum of the RGB channels of c and o. Alpha is
// taken from c.
func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B, c.A}
}

// Mul returns the component-wise product of the RGB channels of c and o.
func (c Color) Mul(o Color) Color {
	return Color{c.R * o.R, c.G * o.G, c.B * o.B, c.A}
}

// Lerp interpolates every channel of c toward o by t.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
		A: lerp(c.A, o.A, t),
	}
}

// toRGBA converts to the premultiplied color.RGBA used by ebiten.
func (c Color) toRGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Vec3 is a 3D vector used for positions, rotations, and directions. The world
// is right-handed with Y up and the camera looking down -Z at rest.
type Vec3 = math3d.Vec3

// LerpVec3 interpolates each component of a toward b independently.
func LerpVec3(a, b Vec3, t float64) Vec3 {
	return math3d.V3(lerp(a.X, b.X, t), lerp(a.Y, b.Y, t), lerp(a.Z, b.Z, t))
}

// Pose is the per-frame output of every animated entity: where it is, how it
// is oriented (Euler XYZ, radians) and its uniform scale.
type Pose struct {
	Position Vec3
	Rotation Vec3
	Scale    float64
}

// Transform returns the local-to-world matrix T·Rx·Ry·Rz·S, so local points
// are scaled, rotated Z then Y then X, and translated.
func (p Pose) Transform() math3d.Mat4 {
	return math3d.Translate(p.Position).
		Mul(math3d.RotateX(p.Rotation.X)).
		Mul(math3d.RotateY(p.Rotation.Y)).
		Mul(math3d.RotateZ(p.Rotation.Z)).
		Mul(math3d.Scale(math3d.V3(p.Scale, p.Scale, p.Scale)))
}

// Range is a general-purpose min/max range. Used for randomized parameters.
type Range struct {
	Min, Max float64
}

// Contains reports whether v lies inside [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// randFloat is the subset of *rand.Rand used by setup code.
type randFloat interface {
	Float64() float64
}

// sample draws a uniform value from the range.
func (r Range) sample(rng randFloat) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

// lerp is exact at both t = 0 and t = 1.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}
