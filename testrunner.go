package marquee

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	Delta  float64 `json:"delta,omitempty"`
	Steps  int     `json:"steps,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// knownActions lists the actions a test script may use.
var knownActions = map[string]bool{
	"screenshot": true,
	"wheel":      true,
	"touch":      true,
	"orbit":      true,
	"sweep":      true,
	"wait":       true,
	"waitIntro":  true,
}

// TestRunner sequences injected input and screenshots across frames for
// automated visual checks. Attach to a Scene via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before input is read each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// step advances the test runner by one frame.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending input to drain before advancing.
	if len(s.inputQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	if st.Action == "waitIntro" {
		if !s.intro.Done() {
			return
		}
		r.cursor++
	} else {
		r.cursor++
		switch st.Action {
		case "screenshot":
			s.Screenshot(st.Label)
		case "wheel":
			s.InjectWheel(st.Delta)
		case "touch":
			s.InjectTouchDrag(st.Delta)
		case "orbit":
			s.InjectOrbitDrag(st.Delta)
		case "sweep":
			s.InjectScrollSweep(st.Delta, st.Steps)
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.inputQueue) == 0 {
		r.done = true
	}
}
