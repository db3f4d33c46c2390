package marquee

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EventSink is the optional bridge for input events. When set on a Scene,
// every processed input event is forwarded to it after the scene has acted on
// it. See the ecs package for a donburi-backed implementation.
type EventSink interface {
	EmitInput(event InputEvent)
}

// SceneOptions carries the optional collaborators of NewScene.
type SceneOptions struct {
	// Metrics measures glyph advances. Nil loads the bundled bold face.
	Metrics GlyphMetrics
	// Rand seeds every randomized entity parameter. Nil derives a generator
	// from Config.Seed.
	Rand *rand.Rand
}

// Scene is the top-level object that owns every animated entity, the camera,
// input state, and render buffers.
type Scene struct {
	cfg Config

	clock     Clock
	intro     *Intro
	scroll    *ScrollMapper
	layout    WordLayout
	letters   []Letter
	inserted  InsertedGlyph
	groupX    float64
	ornaments *OrnamentCluster
	lights    *LightRig
	particles *ParticleField

	camera   *Camera
	dolly    *Dolly
	controls *OrbitControls

	// Input state
	sink       EventSink
	inputQueue []InputEvent
	pointer    pointerState
	touches    touchTracker

	// Render state
	font     *GlyphFont
	renderer *renderer

	// Debug and automation
	debug           bool
	stats           frameStats
	testRunner      *TestRunner
	screenshotQueue []string
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	updateFunc func() error
}

// NewScene builds the scene described by cfg. All randomized parameters are
// drawn once here.
func NewScene(cfg Config, opts SceneOptions) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}

	metrics := opts.Metrics
	if metrics == nil {
		f, err := LoadGlyphFont(nil)
		if err != nil {
			return nil, fmt.Errorf("new scene: %w", err)
		}
		metrics = f
	}
	font, _ := metrics.(*GlyphFont)
	if font != nil {
		font.SetCapHeight(cfg.Text.CapHeight)
	}

	rng := opts.Rand
	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = rand.Uint64()
		}
		rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}

	s := &Scene{
		cfg:           cfg,
		font:          font,
		intro:         NewIntro(cfg.Intro.Duration),
		scroll:        NewScrollMapper(cfg.Scroll.Range, float32(cfg.Scroll.Duration)),
		camera:        newCamera(cfg.Camera),
		dolly:         newDolly(cfg.Camera.StartDistance, cfg.Camera.RestDistance, cfg.Camera.DollyDelay, cfg.Camera.DollyDuration),
		controls:      newOrbitControls(cfg.Camera),
		lights:        newLightRig(),
		pointer:       pointerState{deadZone: defaultDragDeadZone},
		ScreenshotDir: "screenshots",
	}
	s.layout = layoutWord(cfg.Text, metrics)
	s.letters = newLetters(s.layout, cfg.Text, cfg.Intro, rng)
	s.inserted = newInsertedGlyph(s.layout, cfg.Text, rng)
	s.ornaments = newOrnamentCluster(cfg.Ornaments, rng)
	s.particles = newParticleField(cfg.Particles, rng)
	return s, nil
}

// Update is the per-tick entry point for ebiten. It reads real input, advances
// the scene by one tick, and runs the user update callback.
func (s *Scene) Update() error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	dt := frameDelta(float64(ebiten.TPS()), ebiten.ActualTPS())
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.readInput()
	s.Tick(dt)

	if s.debug {
		s.stats.updateTime = time.Since(t0)
	}
	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// frameDelta returns the seconds per tick. With ebiten.SyncWithFPS the
// configured TPS is negative, so the measured rate is used instead, and 60 Hz
// until that has a sample.
func frameDelta(tps, actual float64) float64 {
	switch {
	case tps > 0:
		return 1 / tps
	case actual > 0:
		return 1 / actual
	}
	return 1.0 / 60
}

// Tick advances every animator by dt seconds in a fixed order: clock, input,
// tweens, letters, ornaments, lights, particles, camera. It never touches
// ebiten input state, so it can drive the scene headlessly.
func (s *Scene) Tick(dt float64) {
	s.clock.advance(dt)
	dt = s.clock.Delta()
	elapsed := s.clock.Elapsed()

	s.processInput()

	s.scroll.Update(dt)
	s.dolly.update(dt)

	s.updateLetters(dt, elapsed)
	s.ornaments.update(dt, elapsed)
	s.lights.update(elapsed)
	s.particles.update(elapsed)
	s.controls.update(s.camera, s.dolly.Value(), dt)
}

// updateLetters runs the intro until it completes, then the insertion and idle
// animation. On the completing frame both run, so idle motion starts at once.
func (s *Scene) updateLetters(dt, elapsed float64) {
	if !s.intro.Done() {
		poseIntro(s.letters, s.intro.Advance(dt))
	}
	if !s.intro.Done() {
		return
	}
	p := s.scroll.Smoothed()
	poseInserted(&s.inserted, p, elapsed)
	s.groupX = poseIdle(s.letters, s.layout, p, elapsed)
}

// SetUpdateFunc registers a callback run after every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEventSink sets the optional input event bridge.
func (s *Scene) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame timing
// stats are logged to stderr and an FPS overlay is drawn.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config { return s.cfg }

// Clock returns the scene clock.
func (s *Scene) Clock() *Clock { return &s.clock }

// Intro returns the intro timer.
func (s *Scene) Intro() *Intro { return s.intro }

// Scroll returns the scroll-to-progress mapper.
func (s *Scene) Scroll() *ScrollMapper { return s.scroll }

// WordLayout returns the word layout.
func (s *Scene) WordLayout() WordLayout { return s.layout }

// Letters returns the letters of the word. The returned slice MUST NOT be mutated.
func (s *Scene) Letters() []Letter { return s.letters }

// Inserted returns the inserted glyph.
func (s *Scene) Inserted() InsertedGlyph { return s.inserted }

// GroupOffset returns the word group's horizontal offset.
func (s *Scene) GroupOffset() float64 { return s.groupX }

// Ornaments returns the ornament cluster.
func (s *Scene) Ornaments() *OrnamentCluster { return s.ornaments }

// Lights returns the light rig.
func (s *Scene) Lights() *LightRig { return s.lights }

// Particles returns the particle field.
func (s *Scene) Particles() *ParticleField { return s.particles }

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.camera }

// Dolly returns the intro camera dolly.
func (s *Scene) Dolly() *Dolly { return s.dolly }

// Controls returns the orbit controls.
func (s *Scene) Controls() *OrbitControls { return s.controls }
