package marquee

import "github.com/taigrr/trophy/pkg/math3d"

// ParticleField is a static point cloud rotated as one rigid body around Y.
// Point positions never change; only the field rotation does, and it is a
// closed-form function of elapsed time.
type ParticleField struct {
	points   []Vec3
	spin     float64
	rotation float64
	spinMat  math3d.Mat4
	color    Color
	size     float64
}

// newParticleField scatters count points uniformly in a box of the given
// extent centred on the origin.
func newParticleField(cfg ParticleConfig, rng randFloat) *ParticleField {
	f := &ParticleField{
		points:  make([]Vec3, cfg.Count),
		spin:    cfg.Spin,
		spinMat: math3d.RotateY(0),
		color:   cfg.Color.Color(),
		size:    cfg.Size,
	}
	f.color.A = clamp01(cfg.Alpha)
	for i := range f.points {
		f.points[i] = Vec3{
			X: (rng.Float64() - 0.5) * cfg.Extent.X,
			Y: (rng.Float64() - 0.5) * cfg.Extent.Y,
			Z: (rng.Float64() - 0.5) * cfg.Extent.Z,
		}
	}
	return f
}

// update sets the field rotation for elapsed time e.
func (f *ParticleField) update(e float64) {
	f.rotation = e * f.spin
	f.spinMat = math3d.RotateY(f.rotation)
}

// Rotation returns the current field rotation around Y in radians.
func (f *ParticleField) Rotation() float64 { return f.rotation }

// Len returns the number of points.
func (f *ParticleField) Len() int { return len(f.points) }

// worldPoint returns point i with the field rotation applied.
func (f *ParticleField) worldPoint(i int) Vec3 {
	return f.spinMat.MulVec3(f.points[i])
}
