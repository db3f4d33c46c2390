package marquee

// IntroState is the phase of the intro sequence.
type IntroState uint8

const (
	IntroRunning IntroState = iota // letters flying in from their start poses
	IntroIdle                      // intro finished; idle animation owns the letters
)

// String returns the state name.
func (s IntroState) String() string {
	if s == IntroIdle {
		return "idle"
	}
	return "intro"
}

// Intro is a one-way progress timer. Progress accrues at dt/Duration per
// frame, is capped at 1, and never decreases.
type Intro struct {
	Duration float64
	progress float64
}

// NewIntro creates an intro that completes after duration seconds. A
// non-positive duration completes on the first Advance.
func NewIntro(duration float64) *Intro {
	return &Intro{Duration: duration}
}

// Advance accrues dt seconds and returns the eased progress (EaseOutExpo).
func (in *Intro) Advance(dt float64) float64 {
	if in.progress < 1 {
		if in.Duration <= 0 {
			in.progress = 1
		} else if dt > 0 {
			in.progress = min(in.progress+dt/in.Duration, 1)
		}
	}
	return EaseOutExpo(in.progress)
}

// Progress returns the linear progress in [0, 1].
func (in *Intro) Progress() float64 { return in.progress }

// Done reports whether the intro has completed.
func (in *Intro) Done() bool { return in.progress >= 1 }

// State returns IntroIdle once the intro has completed.
func (in *Intro) State() IntroState {
	if in.Done() {
		return IntroIdle
	}
	return IntroRunning
}
