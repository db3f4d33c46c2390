package marquee

import (
	"math"

	"github.com/taigrr/trophy/pkg/math3d"
)

// Idle motion constants for the word.
const (
	floatAmplitude   = 0.05
	tiltXSpeed       = 0.2
	tiltXAmplitude   = 0.012
	tiltZSpeed       = 0.3
	tiltZAmplitude   = 0.008
	breatheSpeed     = 0.8
	breatheAmplitude = 0.008

	// insertVisibleEpsilon is the progress above which the inserted glyph is drawn.
	insertVisibleEpsilon = 0.001
	// minInsertScale keeps the inserted glyph transform invertible.
	minInsertScale = 0.001
	// insertSettle is the progress after which the emissive pulse takes over.
	insertSettle = 0.95
	// insertBobStart is the progress after which the resting bob fades in.
	insertBobStart = 0.9
)

// LetterParams is the immutable per-letter state chosen at setup.
type LetterParams struct {
	Rune  rune
	Width float64
	Color Color
	// Home is the resting pose position.
	Home Vec3
	// Start is the randomized off-screen pose the intro begins from.
	Start Pose

	FloatPhase   float64
	FloatSpeed   float64
	BreathePhase float64
}

// Letter is one glyph of the word.
type Letter struct {
	Params LetterParams
	Pose   Pose
}

// InsertParams is the immutable state of the inserted glyph.
type InsertParams struct {
	Rune  rune
	Width float64
	Color Color
	// Target is the glyph's resting position in the word.
	Target Vec3
	// FlyIn is the offset from Target at zero progress.
	FlyIn Vec3
	// Spin is the rotation at zero progress; each axis carries a random sign.
	Spin Vec3
	// Emissive intensities: at rest, extra during fly-in, and pulse amplitude.
	EmissiveRest  float64
	EmissiveFly   float64
	EmissivePulse float64
	EmissiveBase  float64
}

// InsertedGlyph is the glyph that flies into the word as the user scrolls.
type InsertedGlyph struct {
	Params   InsertParams
	Pose     Pose
	Visible  bool
	Emissive float64
}

// newLetters builds letters at their intro start poses.
func newLetters(layout WordLayout, text TextConfig, intro IntroConfig, rng randFloat) []Letter {
	letters := make([]Letter, len(layout.Runes))
	spin := Range{-intro.Spin / 2, intro.Spin / 2}
	for i, r := range layout.Runes {
		home := math3d.V3(layout.HomeX[i], layout.HomeY, 0)
		p := LetterParams{
			Rune:  r,
			Width: layout.Widths[i],
			Color: text.Colors[i%len(text.Colors)].Color(),
			Home:  home,
			Start: Pose{
				Position: Vec3{
					X: home.X + (rng.Float64()-0.5)*intro.SpreadX,
					Y: home.Y + (rng.Float64()-0.5)*intro.SpreadY,
					Z: -intro.Depth.sample(rng),
				},
				Rotation: Vec3{X: spin.sample(rng), Y: spin.sample(rng)},
				Scale:    1,
			},
			FloatPhase:   rng.Float64() * 2 * math.Pi,
			FloatSpeed:   0.4 + rng.Float64()*0.3,
			BreathePhase: rng.Float64() * 2 * math.Pi,
		}
		letters[i] = Letter{Params: p, Pose: p.Start}
	}
	return letters
}

// newInsertedGlyph places the glyph at its fly-in pose, hidden.
func newInsertedGlyph(layout WordLayout, text TextConfig, rng randFloat) InsertedGlyph {
	sign := func() float64 {
		if rng.Float64() < 0.5 {
			return -1
		}
		return 1
	}
	return InsertedGlyph{
		Params: InsertParams{
			Rune:          layout.Insert,
			Width:         layout.InsertWidth,
			Color:         text.InsertColor.Color(),
			Target:        math3d.V3(layout.InsertX, layout.HomeY, 0),
			FlyIn:         math3d.V3(6, 8, 12),
			Spin:          math3d.V3(2*math.Pi*sign(), 1.5*math.Pi*sign(), 0),
			EmissiveBase:  0.5,
			EmissiveFly:   0.6,
			EmissiveRest:  0.4,
			EmissivePulse: 0.12,
		},
		Pose: Pose{Scale: 0},
	}
}

// poseIntro interpolates every letter from its start pose to home by eased
// progress t.
func poseIntro(letters []Letter, t float64) {
	for i := range letters {
		l := &letters[i]
		l.Pose.Position = LerpVec3(l.Params.Start.Position, l.Params.Home, t)
		l.Pose.Rotation.X = lerp(l.Params.Start.Rotation.X, 0, t)
		l.Pose.Rotation.Y = lerp(l.Params.Start.Rotation.Y, 0, t)
		l.Pose.Scale = 1
	}
}

// poseIdle applies the insertion reflow and idle motion to the letters and
// returns the word group's horizontal offset.
func poseIdle(letters []Letter, layout WordLayout, s, elapsed float64) float64 {
	for i := range letters {
		l := &letters[i]
		p := &l.Params

		x := p.Home.X
		if i >= layout.InsertAt {
			x += layout.Shift * s
		}
		l.Pose.Position.X = x
		l.Pose.Position.Y = p.Home.Y + math.Sin(elapsed*p.FloatSpeed+p.FloatPhase)*floatAmplitude
		l.Pose.Position.Z = p.Home.Z
		l.Pose.Rotation.X = math.Sin(elapsed*tiltXSpeed+p.FloatPhase) * tiltXAmplitude
		l.Pose.Rotation.Y = 0
		l.Pose.Rotation.Z = math.Cos(elapsed*tiltZSpeed+p.FloatPhase) * tiltZAmplitude
		l.Pose.Scale = 1 + math.Sin(elapsed*breatheSpeed+p.BreathePhase)*breatheAmplitude
	}
	return layout.GroupShift * s
}

// poseInserted drives the inserted glyph from insertion progress s.
func poseInserted(g *InsertedGlyph, s, elapsed float64) {
	p := &g.Params
	inv := 1 - s

	g.Visible = s > insertVisibleEpsilon
	g.Pose.Position = p.Target.Add(p.FlyIn.Scale(inv))
	g.Pose.Rotation = p.Spin.Scale(inv)
	g.Pose.Scale = math.Max(s, minInsertScale)

	if s < insertSettle {
		g.Emissive = p.EmissiveBase + inv*p.EmissiveFly
	} else {
		g.Emissive = p.EmissiveRest + math.Sin(elapsed*2.5)*p.EmissivePulse
	}

	if s > insertBobStart {
		fade := (s - insertBobStart) / (1 - insertBobStart)
		g.Pose.Position.Y += math.Sin(elapsed*0.5+2.5) * floatAmplitude * fade
	}
}
