package marquee

import (
	"fmt"
	"os"
	"time"
)

// frameStats holds per-frame timing and draw metrics.
// Only populated when Scene.debug is true.
type frameStats struct {
	updateTime time.Duration
	buildTime  time.Duration
	submitTime time.Duration
	bloomTime  time.Duration
	quadCount  int
	pointCount int
	drawCalls  int
	culled     int
}

// debugLogInterval is how many frames pass between stats lines.
const debugLogInterval = 60

// logf prints a prefixed line to stderr.
func logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[marquee] "+format+"\n", args...)
}

// debugLog prints timing and draw stats to stderr once per interval.
func (s *Scene) debugLog() {
	if !s.debug || s.clock.Frames()%debugLogInterval != 0 {
		return
	}
	st := &s.stats
	logf("update: %v | build: %v | submit: %v | bloom: %v",
		st.updateTime, st.buildTime, st.submitTime, st.bloomTime)
	logf("quads: %d | points: %d | culled: %d | draw calls: %d",
		st.quadCount, st.pointCount, st.culled, st.drawCalls)
	logf("intro: %s %.3f | scroll: %.1f -> %.3f | camera z: %.2f",
		s.intro.State(), s.intro.Progress(), s.scroll.Accumulated(), s.scroll.Smoothed(), s.dolly.Value())
}
