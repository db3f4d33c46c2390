package marquee

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/taigrr/trophy/pkg/math3d"
)

// Camera is a perspective camera looking at Target.
type Camera struct {
	// Position is the eye position in world space.
	Position Vec3
	// Target is the world-space point the camera looks at.
	Target Vec3
	// FOV is the vertical field of view in degrees.
	FOV float64
	// Near and Far bound the visible depth range.
	Near, Far float64
	// Width and Height are the viewport size in pixels.
	Width, Height float64

	right, up, forward Vec3
	focal              float64
	dirty              bool
}

// newCamera creates a camera with the given projection parameters.
func newCamera(cfg CameraConfig) *Camera {
	return &Camera{
		Position: math3d.V3(0, cfg.Height, cfg.StartDistance),
		FOV:      cfg.FOV,
		Near:     cfg.Near,
		Far:      cfg.Far,
		Width:    1,
		Height:   1,
		dirty:    true,
	}
}

// SetViewport updates the output size. Only the aspect ratio and focal length
// depend on it.
func (c *Camera) SetViewport(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	if w != c.Width || h != c.Height {
		c.Width, c.Height = w, h
		c.dirty = true
	}
}

// Aspect returns width / height.
func (c *Camera) Aspect() float64 { return c.Width / c.Height }

// MarkDirty forces a recomputation of the view basis.
func (c *Camera) MarkDirty() { c.dirty = true }

// computeBasis rebuilds the view basis if dirty.
func (c *Camera) computeBasis() {
	if !c.dirty {
		return
	}
	c.dirty = false
	view := c.Target.Sub(c.Position)
	if view.Len() < 1e-12 {
		view = math3d.V3(0, 0, -1)
	}
	c.forward = view.Normalize()
	// Looking straight up or down leaves the horizon undefined.
	right := c.forward.Cross(math3d.V3(0, 1, 0))
	if right.Len() < 1e-12 {
		right = math3d.V3(1, 0, 0)
	}
	c.right = right.Normalize()
	c.up = c.right.Cross(c.forward)
	c.focal = (c.Height / 2) / math.Tan(c.FOV*math.Pi/360)
}

// Project converts a world point to screen pixels. depth is the distance along
// the view direction; ok is false when the point is outside [Near, Far].
func (c *Camera) Project(p Vec3) (sx, sy, depth float64, ok bool) {
	c.computeBasis()
	v := p.Sub(c.Position)
	depth = v.Dot(c.forward)
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	sx = c.Width/2 + v.Dot(c.right)*c.focal/depth
	sy = c.Height/2 - v.Dot(c.up)*c.focal/depth
	return sx, sy, depth, true
}

// Dolly is a one-shot delayed tween of the camera's horizontal distance from
// its target. It runs on its own timeline, independent of the intro.
type Dolly struct {
	delay float64
	tween *gween.Tween
	value float64
	done  bool
}

// newDolly creates a dolly from start to rest that waits delay seconds and
// then eases over duration seconds.
func newDolly(start, rest, delay, duration float64) *Dolly {
	return &Dolly{
		delay: delay,
		tween: gween.New(float32(start), float32(rest), float32(duration), ease.InOutQuad),
		value: start,
	}
}

// update advances the dolly by dt seconds. Time left over after the delay
// runs out is applied to the tween in the same frame.
func (d *Dolly) update(dt float64) {
	if d.done {
		return
	}
	if d.delay > 0 {
		if dt <= d.delay {
			d.delay -= dt
			return
		}
		dt -= d.delay
		d.delay = 0
	}
	val, done := d.tween.Update(float32(dt))
	d.value = float64(val)
	d.done = done
}

// Value returns the current distance.
func (d *Dolly) Value() float64 { return d.value }

// Done reports whether the dolly has reached its resting distance.
func (d *Dolly) Done() bool { return d.done }

// OrbitControls auto-rotates the camera around its target and lets a mouse
// drag add to the rotation. The actual azimuth chases the goal azimuth through
// a critically damped spring, which gives the damped feel of orbit controls.
type OrbitControls struct {
	// AutoRotateSpeed is the rotation speed; 1.0 is one turn per minute.
	AutoRotateSpeed float64
	// MinDistance and MaxDistance clamp the eye distance from the target.
	MinDistance, MaxDistance float64
	// Height is the eye height above the target.
	Height float64

	azimuth     float64
	azimuthVel  float64
	azimuthGoal float64
	frequency   float64
	damping     float64
	spring      harmonica.Spring
	springDT    float64
}

// newOrbitControls creates controls from the camera config.
func newOrbitControls(cfg CameraConfig) *OrbitControls {
	return &OrbitControls{
		AutoRotateSpeed: cfg.AutoRotateSpeed,
		MinDistance:     cfg.MinDistance,
		MaxDistance:     cfg.MaxDistance,
		Height:          cfg.Height,
		frequency:       cfg.SpringFrequency,
		damping:         cfg.SpringDamping,
	}
}

// Rotate adds a drag of dx pixels on a viewport of the given height. A drag
// across the full height is one full turn.
func (o *OrbitControls) Rotate(dx, viewportHeight float64) {
	if viewportHeight <= 0 {
		return
	}
	o.azimuthGoal -= 2 * math.Pi * dx / viewportHeight
}

// Azimuth returns the current azimuth in radians.
func (o *OrbitControls) Azimuth() float64 { return o.azimuth }

// update advances the auto-rotation and the damping spring, then places the
// camera at the given horizontal distance.
func (o *OrbitControls) update(cam *Camera, distance, dt float64) {
	if dt > 0 {
		if dt != o.springDT {
			o.spring = harmonica.NewSpring(dt, o.frequency, o.damping)
			o.springDT = dt
		}
		o.azimuthGoal -= 2 * math.Pi / 60 * o.AutoRotateSpeed * dt
		o.azimuth, o.azimuthVel = o.spring.Update(o.azimuth, o.azimuthVel, o.azimuthGoal)
	}

	h := o.Height
	d := clamp(math.Hypot(distance, h), o.MinDistance, o.MaxDistance)
	r := math.Sqrt(math.Max(d*d-h*h, 0))

	sin, cos := math.Sincos(o.azimuth)
	cam.Position = cam.Target.Add(math3d.V3(sin*r, h, cos*r))
	cam.MarkDirty()
}
