package marquee

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/taigrr/trophy/pkg/math3d"
	"gopkg.in/yaml.v3"
)

// HexColor is an 0xRRGGBB color that reads from YAML as "#rrggbb", "0xrrggbb"
// or a plain integer.
type HexColor uint32

// Color converts to an opaque Color.
func (h HexColor) Color() Color { return Hex(uint32(h)) }

// UnmarshalYAML implements yaml.Unmarshaler.
func (h *HexColor) UnmarshalYAML(value *yaml.Node) error {
	s := strings.TrimSpace(value.Value)
	base := 10
	switch {
	case strings.HasPrefix(s, "#"):
		s, base = s[1:], 16
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	}
	v, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return fmt.Errorf("line %d: invalid color %q: %w", value.Line, value.Value, err)
	}
	if v > 0xffffff {
		return fmt.Errorf("line %d: color %q out of range", value.Line, value.Value)
	}
	*h = HexColor(v)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (h HexColor) MarshalYAML() (any, error) {
	return fmt.Sprintf("#%06x", uint32(h)), nil
}

// Config holds every tunable of the scene. Load one with LoadConfig or start
// from DefaultConfig; every YAML field is optional and overrides the default.
type Config struct {
	// Seed drives all randomized entity parameters. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	Text       TextConfig     `yaml:"text"`
	Scroll     ScrollConfig   `yaml:"scroll"`
	Intro      IntroConfig    `yaml:"intro"`
	Camera     CameraConfig   `yaml:"camera"`
	Ornaments  OrnamentConfig `yaml:"ornaments"`
	Particles  ParticleConfig `yaml:"particles"`
	Fog        FogConfig      `yaml:"fog"`
	Bloom      BloomConfig    `yaml:"bloom"`
	Background HexColor       `yaml:"background"`
}

// TextConfig describes the word and the glyph inserted into it.
type TextConfig struct {
	Word     string  `yaml:"word"`
	Insert   string  `yaml:"insert"`
	InsertAt int     `yaml:"insertAt"` // letters at this index and after shift right
	Size     float64 `yaml:"size"`
	Depth    float64 `yaml:"depth"`
	Spacing  float64 `yaml:"spacing"`
	// CapHeight is the glyph height as a fraction of Size.
	CapHeight   float64    `yaml:"capHeight"`
	Colors      []HexColor `yaml:"colors"`
	InsertColor HexColor   `yaml:"insertColor"`
}

// ScrollConfig controls the scroll-to-progress mapper.
type ScrollConfig struct {
	Range      float64 `yaml:"range"`
	Duration   float64 `yaml:"duration"`
	WheelStep  float64 `yaml:"wheelStep"`  // units per wheel notch
	TouchScale float64 `yaml:"touchScale"` // multiplier on vertical touch drag
}

// IntroConfig controls the letter fly-in.
type IntroConfig struct {
	Duration float64 `yaml:"duration"`
	SpreadX  float64 `yaml:"spreadX"` // total lateral randomization
	SpreadY  float64 `yaml:"spreadY"` // total vertical randomization
	Depth    Range   `yaml:"depth"`   // distance behind the text plane
	Spin     float64 `yaml:"spin"`    // total rotation randomization per axis
}

// CameraConfig controls projection, the intro dolly and the orbit controls.
type CameraConfig struct {
	FOV             float64 `yaml:"fov"` // vertical, degrees
	Near            float64 `yaml:"near"`
	Far             float64 `yaml:"far"`
	Height          float64 `yaml:"height"`
	StartDistance   float64 `yaml:"startDistance"`
	RestDistance    float64 `yaml:"restDistance"`
	DollyDelay      float64 `yaml:"dollyDelay"`
	DollyDuration   float64 `yaml:"dollyDuration"`
	AutoRotateSpeed float64 `yaml:"autoRotateSpeed"`
	MinDistance     float64 `yaml:"minDistance"`
	MaxDistance     float64 `yaml:"maxDistance"`
	SpringFrequency float64 `yaml:"springFrequency"`
	SpringDamping   float64 `yaml:"springDamping"`
}

// OrnamentConfig controls the orbiting glyph cluster.
type OrnamentConfig struct {
	Count   int        `yaml:"count"`
	Label   string     `yaml:"label"`
	Palette []HexColor `yaml:"palette"`
}

// ParticleConfig controls the static point cloud.
type ParticleConfig struct {
	Count  int      `yaml:"count"`
	Extent Vec3     `yaml:"extent"`
	Spin   float64  `yaml:"spin"` // radians per second around Y
	Size   float64  `yaml:"size"` // pixels
	Color  HexColor `yaml:"color"`
	Alpha  float64  `yaml:"alpha"`
}

// FogConfig controls exponential-squared distance fog.
type FogConfig struct {
	Color   HexColor `yaml:"color"`
	Density float64  `yaml:"density"`
}

// BloomConfig controls the bloom post-pass.
type BloomConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Strength  float64 `yaml:"strength"`
	Threshold float64 `yaml:"threshold"`
	Radius    int     `yaml:"radius"`
}

// DefaultConfig returns the stock scene.
func DefaultConfig() Config {
	return Config{
		Text: TextConfig{
			Word:      "SAMUEL",
			Insert:    "C",
			InsertAt:  1,
			Size:      2.8,
			Depth:     0.9,
			Spacing:   0.3,
			CapHeight: 0.72,
			Colors: []HexColor{
				0xccccdd, // chrome
				0xdd4422, // copper
				0x1144cc, // sapphire
				0xddaa22, // gold
				0x8833cc, // amethyst
				0x11aa44, // emerald
			},
			InsertColor: 0xee1133,
		},
		Scroll: ScrollConfig{
			Range:      600,
			Duration:   1.0,
			WheelStep:  100,
			TouchScale: 2,
		},
		Intro: IntroConfig{
			Duration: 2.5,
			SpreadX:  30,
			SpreadY:  20,
			Depth:    Range{15, 35},
			Spin:     4 * math.Pi,
		},
		Camera: CameraConfig{
			FOV:             45,
			Near:            0.1,
			Far:             300,
			Height:          1,
			StartDistance:   35,
			RestDistance:    18,
			DollyDelay:      0.3,
			DollyDuration:   3.0,
			AutoRotateSpeed: 0.25,
			MinDistance:     10,
			MaxDistance:     50,
			SpringFrequency: 4,
			SpringDamping:   1,
		},
		Ornaments: OrnamentConfig{
			Count: 120,
			Label: "227",
			Palette: []HexColor{
				0xff1144, 0x11ff88, 0x2266ff, 0xffaa11, 0xff11ff,
				0x11eeff, 0xffee11, 0xff6611, 0x8811ff, 0x11ff44,
				0xff4488, 0x44ffaa, 0x8844ff, 0xff8811, 0x11aaff,
			},
		},
		Particles: ParticleConfig{
			Count:  1500,
			Extent: math3d.V3(120, 80, 120),
			Spin:   0.008,
			Size:   2,
			Color:  0x5566aa,
			Alpha:  0.5,
		},
		Fog:        FogConfig{Color: 0x040409, Density: 0.006},
		Bloom:      BloomConfig{Enabled: true, Strength: 0.4, Threshold: 0.75, Radius: 8},
		Background: 0x040409,
	}
}

// LoadConfig reads a YAML file and merges it onto DefaultConfig.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML onto DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Validate reports every out-of-range field.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	n := utf8.RuneCountInString(c.Text.Word)
	check(n > 0, "text.word must not be empty")
	check(utf8.RuneCountInString(c.Text.Insert) == 1, "text.insert must be exactly one glyph, got %q", c.Text.Insert)
	check(c.Text.InsertAt >= 1 && c.Text.InsertAt <= n, "text.insertAt must be in [1, %d], got %d", n, c.Text.InsertAt)
	check(c.Text.Size > 0, "text.size must be positive")
	check(c.Text.Spacing >= 0, "text.spacing must not be negative")
	check(c.Text.CapHeight > 0, "text.capHeight must be positive")
	check(len(c.Text.Colors) > 0, "text.colors must not be empty")

	check(c.Scroll.Range > 0, "scroll.range must be positive")
	check(c.Scroll.Duration > 0, "scroll.duration must be positive")

	check(c.Intro.Duration > 0, "intro.duration must be positive")
	check(c.Intro.Depth.Min >= 0 && c.Intro.Depth.Min <= c.Intro.Depth.Max, "intro.depth must satisfy 0 <= min <= max")

	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov must be in (0, 180)")
	check(c.Camera.Near > 0 && c.Camera.Near < c.Camera.Far, "camera.near must be in (0, far)")
	check(c.Camera.MinDistance > 0 && c.Camera.MinDistance <= c.Camera.MaxDistance, "camera distance limits must satisfy 0 < min <= max")
	check(c.Camera.DollyDuration > 0, "camera.dollyDuration must be positive")
	check(c.Camera.DollyDelay >= 0, "camera.dollyDelay must not be negative")
	check(c.Camera.SpringFrequency > 0, "camera.springFrequency must be positive")

	check(c.Ornaments.Count >= 0, "ornaments.count must not be negative")
	check(c.Ornaments.Count == 0 || len(c.Ornaments.Palette) > 0, "ornaments.palette must not be empty")
	check(c.Particles.Count >= 0, "particles.count must not be negative")
	check(c.Fog.Density >= 0, "fog.density must not be negative")
	check(c.Bloom.Radius >= 0, "bloom.radius must not be negative")

	return errors.Join(errs...)
}
