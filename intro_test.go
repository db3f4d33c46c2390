package marquee

import "testing"

func TestIntroAdvance(t *testing.T) {
	in := NewIntro(2)
	if in.State() != IntroRunning {
		t.Fatalf("State = %v, want intro", in.State())
	}
	v := in.Advance(1)
	if !approxEqual(in.Progress(), 0.5, epsilon) {
		t.Errorf("Progress = %v, want 0.5", in.Progress())
	}
	if !approxEqual(v, EaseOutExpo(0.5), epsilon) {
		t.Errorf("Advance = %v, want %v", v, EaseOutExpo(0.5))
	}
	if in.Done() {
		t.Error("Done after half the duration")
	}
}

func TestIntroCompletes(t *testing.T) {
	in := NewIntro(2.5)
	var v float64
	for i := 0; i < 1000 && !in.Done(); i++ {
		v = in.Advance(1.0 / 60)
	}
	if !in.Done() || in.State() != IntroIdle {
		t.Fatal("intro never completed")
	}
	if v != 1 {
		t.Errorf("final eased value = %v, want exactly 1", v)
	}
	// Further advances hold at 1.
	if got := in.Advance(10); got != 1 || in.Progress() != 1 {
		t.Errorf("after completion: Advance = %v, Progress = %v", got, in.Progress())
	}
}

func TestIntroMonotonic(t *testing.T) {
	in := NewIntro(1)
	prev := 0.0
	for _, dt := range []float64{0.1, 0, -0.5, 0.2, 0.05, 0.9} {
		v := in.Advance(dt)
		if v < prev {
			t.Fatalf("eased progress decreased: %v -> %v (dt=%v)", prev, v, dt)
		}
		prev = v
	}
}

func TestIntroZeroDuration(t *testing.T) {
	in := NewIntro(0)
	if got := in.Advance(0); got != 1 || !in.Done() {
		t.Errorf("zero-duration intro: Advance = %v, Done = %v", got, in.Done())
	}
}

func TestIntroStateString(t *testing.T) {
	if IntroRunning.String() != "intro" || IntroIdle.String() != "idle" {
		t.Errorf("names = %q, %q", IntroRunning, IntroIdle)
	}
}
