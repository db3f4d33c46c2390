package marquee

import (
	"image/color"
	"math"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/taigrr/trophy/pkg/math3d"
)

// Shading constants. Flat shading stands in for the environment map and
// physically based materials of a full renderer.
const (
	envLight      = 0.35 // constant fill so dark materials stay readable
	backFaceShade = 0.4  // extrusion back face relative to the front face
	ornamentDepth = 0.2  // extrusion depth as a fraction of ornament height
)

// Material is the flat-shading response of a glyph slab.
type Material struct {
	Color    Color
	Env      float64 // constant fill standing in for the environment map
	Emissive float64
	Opacity  float64
	// Wireframe slabs are unlit and draw only their front face.
	Wireframe bool
}

// quad is one projected, shaded textured face ready for submission.
type quad struct {
	tex   *ebiten.Image
	x, y  [4]float32
	depth float64
	color Color
}

// renderer owns the per-frame draw buffers.
type renderer struct {
	font  *GlyphFont
	quads []quad
	verts []ebiten.Vertex
	inds  []uint32

	offscreen *ebiten.Image
	bloom     *bloomPass
	white     *ebiten.Image
}

func newRenderer(font *GlyphFont, cfg BloomConfig) *renderer {
	r := &renderer{font: font}
	if cfg.Enabled {
		r.bloom = newBloomPass(cfg)
	}
	return r
}

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func (r *renderer) ensureWhitePixel() *ebiten.Image {
	if r.white == nil {
		r.white = ebiten.NewImage(1, 1)
		r.white.Fill(color.White)
	}
	return r.white
}

// ensureOffscreen returns a scene-sized offscreen target for the bloom pass.
func (r *renderer) ensureOffscreen(w, h int) *ebiten.Image {
	if r.offscreen != nil {
		b := r.offscreen.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return r.offscreen
		}
		r.offscreen.Deallocate()
	}
	r.offscreen = ebiten.NewImage(w, h)
	return r.offscreen
}

// Draw renders the scene. Ebiten calls it once per displayed frame.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.renderer == nil {
		if s.font == nil {
			f, err := LoadGlyphFont(nil)
			if err != nil {
				logf("draw: %v", err)
				return
			}
			f.SetCapHeight(s.cfg.Text.CapHeight)
			s.font = f
		}
		s.renderer = newRenderer(s.font, s.cfg.Bloom)
	}
	r := s.renderer

	b := screen.Bounds()
	s.camera.SetViewport(float64(b.Dx()), float64(b.Dy()))

	target := screen
	if r.bloom != nil {
		target = r.ensureOffscreen(b.Dx(), b.Dy())
	}
	target.Fill(s.cfg.Background.Color().toRGBA())

	var t0 time.Time
	if s.debug {
		s.stats = frameStats{updateTime: s.stats.updateTime}
		t0 = time.Now()
	}

	s.drawParticles(target)
	s.buildQuads()

	if s.debug {
		s.stats.buildTime = time.Since(t0)
		t0 = time.Now()
	}

	s.submitQuads(target)

	if s.debug {
		s.stats.submitTime = time.Since(t0)
		t0 = time.Now()
	}

	if r.bloom != nil {
		r.bloom.apply(target, screen)
		if s.debug {
			s.stats.bloomTime = time.Since(t0)
		}
	}

	if s.debug {
		drawOverlay(screen, s)
		s.debugLog()
	}
	s.flushScreenshots(screen)
}

// shade lights a face centred at p with material m and fog at the given view
// depth.
func (s *Scene) shade(p Vec3, m Material, depth float64) Color {
	c := m.Color
	if !m.Wireframe {
		light := s.lights.illuminate(p)
		c = c.Mul(light).Add(c.Scale(m.Env + m.Emissive))
	}
	c.A *= m.Opacity
	return s.fog(c, depth)
}

// fog blends c toward the fog colour with exponential-squared falloff.
func (s *Scene) fog(c Color, depth float64) Color {
	d := s.cfg.Fog.Density * depth
	f := 1 - math.Exp(-d*d)
	fc := s.cfg.Fog.Color.Color()
	fc.A = c.A
	return c.Lerp(fc, clamp01(f))
}

// buildQuads projects every visible entity into r.quads, sorted far to near.
func (s *Scene) buildQuads() {
	r := s.renderer
	r.quads = r.quads[:0]
	text := s.cfg.Text
	height := text.CapHeight * text.Size
	group := Vec3{X: s.groupX}

	for i := range s.letters {
		l := &s.letters[i]
		pose := l.Pose
		pose.Position = pose.Position.Add(group)
		s.emitSlab(r.font.Texture(string(l.Params.Rune)), pose, l.Params.Width, height, text.Depth, glyphMaterial(l.Params.Color, 0))
	}

	if g := &s.inserted; g.Visible {
		pose := g.Pose
		pose.Position = pose.Position.Add(group)
		s.emitSlab(r.font.Texture(string(g.Params.Rune)), pose, g.Params.Width, height, text.Depth, glyphMaterial(g.Params.Color, g.Emissive))
	}

	label := s.cfg.Ornaments.Label
	tex := r.font.Texture(label)
	advance := r.font.AdvanceString(label)
	s.ornaments.Each(func(p *OrnamentParams, st *OrnamentState) {
		size := p.Size.Height()
		s.emitSlab(tex, st.Pose, advance*size, text.CapHeight*size, size*ornamentDepth, p.Finish.Material(p.Color))
	})

	slices.SortStableFunc(r.quads, func(a, b quad) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
}

// glyphMaterial is the material of the word letters.
func glyphMaterial(c Color, emissive float64) Material {
	return Material{Color: c, Env: envLight, Emissive: emissive, Opacity: 1}
}

// emitSlab emits the back and front faces of an extruded glyph of size w×h
// and the given depth. The glyph origin is its bottom-left corner. Wireframe
// slabs emit the front face only.
func (s *Scene) emitSlab(tex *ebiten.Image, pose Pose, w, h, depth float64, m Material) {
	xf := pose.Transform()
	front := s.emitFace(tex, xf, w, h, depth, m, 1)
	if front && !m.Wireframe {
		s.emitFace(tex, xf, w, h, 0, m, backFaceShade)
	}
}

// emitFace projects one face at local z. Returns false when the face is
// culled.
func (s *Scene) emitFace(tex *ebiten.Image, xf math3d.Mat4, w, h, z float64, m Material, shadeK float64) bool {
	local := [4]Vec3{math3d.V3(0, 0, z), math3d.V3(w, 0, z), math3d.V3(0, h, z), math3d.V3(w, h, z)}
	var q quad
	q.tex = tex
	var center Vec3
	for i, lp := range local {
		wp := xf.MulVec3(lp)
		sx, sy, d, ok := s.camera.Project(wp)
		if !ok {
			if s.debug {
				s.stats.culled++
			}
			return false
		}
		q.x[i], q.y[i] = float32(sx), float32(sy)
		q.depth += d / 4
		center = center.Add(wp.Scale(0.25))
	}
	q.color = s.shade(center, m, q.depth).Scale(shadeK)
	s.renderer.quads = append(s.renderer.quads, q)
	return true
}

// submitQuads draws the sorted quads, batching runs that share a texture into
// a single DrawTriangles32 call.
func (s *Scene) submitQuads(target *ebiten.Image) {
	r := s.renderer
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
	var cur *ebiten.Image

	for i := range r.quads {
		q := &r.quads[i]
		if q.tex != cur {
			s.flushBatch(target, cur)
			cur = q.tex
		}
		b := q.tex.Bounds()
		u0, v0 := float32(b.Min.X), float32(b.Min.Y)
		u1, v1 := float32(b.Max.X), float32(b.Max.Y)
		// Local corners are bottom-left, bottom-right, top-left, top-right;
		// texture rows run top to bottom.
		us := [4]float32{u0, u1, u0, u1}
		vs := [4]float32{v1, v1, v0, v0}
		s.appendQuad(q.x, q.y, us, vs, q.color)
		if s.debug {
			s.stats.quadCount++
		}
	}
	s.flushBatch(target, cur)
}

// appendQuad adds four premultiplied vertices and two triangles.
func (s *Scene) appendQuad(x, y, u, v [4]float32, c Color) {
	r := s.renderer
	a := float32(clamp01(c.A))
	cr := float32(clamp01(c.R)) * a
	cg := float32(clamp01(c.G)) * a
	cb := float32(clamp01(c.B)) * a

	base := uint32(len(r.verts))
	for j := 0; j < 4; j++ {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   x[j],
			DstY:   y[j],
			SrcX:   u[j],
			SrcY:   v[j],
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: a,
		})
	}
	r.inds = append(r.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// flushBatch submits accumulated vertices as a single DrawTriangles32 call.
func (s *Scene) flushBatch(target, tex *ebiten.Image) {
	r := s.renderer
	if len(r.verts) == 0 || tex == nil {
		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.Filter = ebiten.FilterLinear
	target.DrawTriangles32(r.verts, r.inds, tex, &triOp)
	if s.debug {
		s.stats.drawCalls++
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// drawParticles draws the point cloud as small additive squares in one call.
func (s *Scene) drawParticles(target *ebiten.Image) {
	f := s.particles
	if f.Len() == 0 {
		return
	}
	r := s.renderer
	white := r.ensureWhitePixel()
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	us := [4]float32{0, 1, 0, 1}
	vs := [4]float32{0, 0, 1, 1}
	focalScale := s.camera.Height / 2 / math.Tan(s.camera.FOV*math.Pi/360)
	for i := 0; i < f.Len(); i++ {
		sx, sy, d, ok := s.camera.Project(f.worldPoint(i))
		if !ok {
			continue
		}
		// Size attenuates with depth; the configured size is at 10 units.
		half := float32(math.Max(f.size*10*focalScale/(d*s.camera.Height), 0.5))
		x0, y0 := float32(sx)-half, float32(sy)-half
		x1, y1 := float32(sx)+half, float32(sy)+half
		s.appendQuad([4]float32{x0, x1, x0, x1}, [4]float32{y0, y0, y1, y1}, us, vs, s.fog(f.color, d))
		if s.debug {
			s.stats.pointCount++
		}
	}
	if len(r.verts) == 0 {
		return
	}
	var triOp ebiten.DrawTrianglesOptions
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	triOp.Blend = ebiten.BlendLighter
	target.DrawTriangles32(r.verts, r.inds, white, &triOp)
	if s.debug {
		s.stats.drawCalls++
	}
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}
