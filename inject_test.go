package marquee

import "testing"

func TestInjectQueues(t *testing.T) {
	s := newTestScene(t)
	s.InjectWheel(100)
	s.InjectTouchDrag(10)
	s.InjectOrbitDrag(-5)
	if s.PendingInput() != 3 {
		t.Fatalf("PendingInput = %d, want 3", s.PendingInput())
	}
	want := []InputEvent{
		{Kind: InputWheel, Delta: 100},
		{Kind: InputTouch, Delta: 20},
		{Kind: InputDrag, Delta: -5},
	}
	for i, ev := range s.inputQueue {
		if ev != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, ev, want[i])
		}
	}
	s.Tick(frameDT)
	if s.PendingInput() != 0 {
		t.Errorf("PendingInput after Tick = %d, want 0", s.PendingInput())
	}
}

func TestInjectScrollSweep(t *testing.T) {
	tests := []struct {
		name      string
		total     float64
		steps     int
		wantCount int
		wantStep  float64
	}{
		{"even", 600, 6, 6, 100},
		{"single", 250, 1, 1, 250},
		{"zero steps", 300, 0, 1, 300},
		{"backward", -400, 4, 4, -100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestScene(t)
			s.InjectScrollSweep(tt.total, tt.steps)
			if s.PendingInput() != tt.wantCount {
				t.Fatalf("PendingInput = %d, want %d", s.PendingInput(), tt.wantCount)
			}
			for _, ev := range s.inputQueue {
				if ev.Kind != InputWheel || ev.Delta != tt.wantStep {
					t.Errorf("event = %+v, want wheel %v", ev, tt.wantStep)
				}
			}
		})
	}
}
