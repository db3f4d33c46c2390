package marquee

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// OrnamentLayer identifies one of the four radial bands of the cluster.
type OrnamentLayer uint8

const (
	LayerInner OrnamentLayer = iota // tight visible ring around the word
	LayerMid
	LayerOuter
	LayerFar // scattered far shell
)

// ornamentLayerCount is the number of radial bands.
const ornamentLayerCount = 4

// layerBand describes a band's radius range and whether its polar angle is
// restricted to a ring.
type layerBand struct {
	radius Range
	ring   bool
}

var layerBands = [ornamentLayerCount]layerBand{
	LayerInner: {radius: Range{9, 12}, ring: true},
	LayerMid:   {radius: Range{14, 18}},
	LayerOuter: {radius: Range{20, 26}},
	LayerFar:   {radius: Range{28, 40}},
}

// RadiusBand returns the radius range of the layer.
func (l OrnamentLayer) RadiusBand() Range {
	return layerBands[l%ornamentLayerCount].radius
}

// OrnamentSize selects the glyph height of an ornament.
type OrnamentSize uint8

const (
	OrnamentSmall OrnamentSize = iota
	OrnamentMedium
	OrnamentLarge
)

// Height returns the glyph height in world units.
func (s OrnamentSize) Height() float64 {
	switch s {
	case OrnamentMedium:
		return 0.65
	case OrnamentLarge:
		return 1.0
	default:
		return 0.35
	}
}

// ornamentSizePool cycles sizes so small glyphs dominate.
var ornamentSizePool = [...]OrnamentSize{OrnamentSmall, OrnamentSmall, OrnamentMedium, OrnamentMedium, OrnamentLarge}

// OrnamentFinish is the surface treatment of an ornament. Ornaments cycle
// through the finishes by index.
type OrnamentFinish uint8

const (
	FinishChrome OrnamentFinish = iota
	FinishClearcoat
	FinishBrushed
	FinishIridescent
	FinishGlass
	FinishGlow
	FinishWireframe
	ornamentFinishCount
)

// Material returns the flat-shading material of the finish in colour c.
func (f OrnamentFinish) Material(c Color) Material {
	m := Material{Color: c, Env: envLight, Opacity: 1}
	switch f {
	case FinishChrome:
		m.Env = 0.6
	case FinishClearcoat:
		m.Env = 0.45
	case FinishIridescent:
		m.Env = 0.5
	case FinishGlass:
		m.Opacity = 0.35
	case FinishGlow:
		m.Emissive = 0.15
	case FinishWireframe:
		m.Wireframe = true
	}
	return m
}

// OrnamentParams is the immutable per-ornament state chosen at setup.
type OrnamentParams struct {
	Index  int
	Layer  OrnamentLayer
	Size   OrnamentSize
	Finish OrnamentFinish
	Color  Color
	Radius float64
	Phi    float64 // polar angle from +Y

	OrbitSpeed float64 // signed, radians per second
	SelfRot    Vec3    // radians per second per axis
	BobSpeed   float64
	BobAmount  float64

	PulseSpeed  float64
	PulseAmount float64
	PulsePhase  float64
}

// OrnamentState is the mutable per-ornament state.
type OrnamentState struct {
	Theta float64
	Pose  Pose
}

var (
	ornamentParams = donburi.NewComponentType[OrnamentParams]()
	ornamentState  = donburi.NewComponentType[OrnamentState]()
)

// OrnamentCluster is the arena of orbiting ornaments. Entities live in a
// donburi world and are mutually independent.
type OrnamentCluster struct {
	world donburi.World
	query *donburi.Query
	count int
}

// newOrnamentCluster creates count ornaments with randomized parameters.
func newOrnamentCluster(cfg OrnamentConfig, rng randFloat) *OrnamentCluster {
	c := &OrnamentCluster{
		world: donburi.NewWorld(),
		query: donburi.NewQuery(filter.Contains(ornamentParams, ornamentState)),
		count: cfg.Count,
	}
	for i := 0; i < cfg.Count; i++ {
		params, state := newOrnament(i, cfg, rng)
		e := c.world.Create(ornamentParams, ornamentState)
		entry := c.world.Entry(e)
		ornamentParams.SetValue(entry, params)
		ornamentState.SetValue(entry, state)
	}
	return c
}

// newOrnament picks a band by index and randomizes the rest.
func newOrnament(i int, cfg OrnamentConfig, rng randFloat) (OrnamentParams, OrnamentState) {
	layer := OrnamentLayer(i % ornamentLayerCount)
	band := layerBands[layer]

	var phi float64
	if band.ring {
		phi = math.Pi*0.4 + rng.Float64()*math.Pi*0.2
	} else {
		phi = math.Acos(2*rng.Float64() - 1)
	}

	dir := 1.0
	if rng.Float64() <= 0.5 {
		dir = -1
	}
	selfRot := Range{-0.15, 0.15}

	p := OrnamentParams{
		Index:       i,
		Layer:       layer,
		Size:        ornamentSizePool[i%len(ornamentSizePool)],
		Finish:      OrnamentFinish(i % int(ornamentFinishCount)),
		Color:       cfg.Palette[i%len(cfg.Palette)].Color(),
		Radius:      band.radius.sample(rng),
		Phi:         phi,
		OrbitSpeed:  (0.02 + rng.Float64()*0.08) * dir,
		SelfRot:     math3d.V3(selfRot.sample(rng), selfRot.sample(rng), selfRot.sample(rng)),
		BobSpeed:    0.3 + rng.Float64()*0.8,
		BobAmount:   0.05 + rng.Float64()*0.2,
		PulseSpeed:  0.5 + rng.Float64()*1.0,
		PulseAmount: 0.05 + rng.Float64()*0.1,
		PulsePhase:  rng.Float64() * 2 * math.Pi,
	}

	theta := float64(i)/float64(max(cfg.Count, 1))*2*math.Pi + rng.Float64()*0.5
	s := OrnamentState{
		Theta: theta,
		Pose: Pose{
			Position: sphericalToCartesian(p.Radius, p.Phi, theta),
			Rotation: math3d.V3(rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi, rng.Float64()*2*math.Pi),
			Scale:    1,
		},
	}
	return p, s
}

// sphericalToCartesian converts (radius, polar phi from +Y, azimuth theta):
// the +Y pole is tipped by phi toward +X, then swung by theta toward +Z.
func sphericalToCartesian(radius, phi, theta float64) Vec3 {
	return math3d.RotateY(-theta).
		Mul(math3d.RotateZ(-phi)).
		MulVec3(math3d.V3(0, radius, 0))
}

// update advances every ornament's orbit, bob, spin and pulse.
func (c *OrnamentCluster) update(dt, elapsed float64) {
	c.query.Each(c.world, func(entry *donburi.Entry) {
		p := ornamentParams.Get(entry)
		s := ornamentState.Get(entry)
		animateOrnament(p, s, dt, elapsed)
	})
}

func animateOrnament(p *OrnamentParams, s *OrnamentState, dt, elapsed float64) {
	s.Theta += dt * p.OrbitSpeed
	pos := sphericalToCartesian(p.Radius, p.Phi, s.Theta)
	pos.Y += math.Sin(elapsed*p.BobSpeed) * p.BobAmount
	s.Pose.Position = pos
	s.Pose.Rotation = s.Pose.Rotation.Add(p.SelfRot.Scale(dt))
	s.Pose.Scale = 1 + math.Sin(elapsed*p.PulseSpeed+p.PulsePhase)*p.PulseAmount
}

// Len returns the number of ornaments.
func (c *OrnamentCluster) Len() int { return c.count }

// Each calls fn for every ornament. The pointers are only valid during the call
// and must not be retained.
func (c *OrnamentCluster) Each(fn func(p *OrnamentParams, s *OrnamentState)) {
	c.query.Each(c.world, func(entry *donburi.Entry) {
		fn(ornamentParams.Get(entry), ornamentState.Get(entry))
	})
}
