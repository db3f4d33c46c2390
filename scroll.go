package marquee

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollMapper accumulates raw scroll and touch deltas into a bounded value and
// eases a smoothed progress toward accumulated/Range.
//
// There is only ever one active tween. Feed replaces it wholesale, starting
// from the in-flight smoothed value, so rapid input never compounds.
type ScrollMapper struct {
	// Range is the upper bound of the accumulated value.
	Range float64
	// Duration is the length of each smoothing tween in seconds.
	Duration float32
	// Ease is the smoothing curve. Defaults to ease.OutCubic.
	Ease ease.TweenFunc

	accumulated float64
	smoothed    float64
	target      float64
	tween       *gween.Tween
}

// NewScrollMapper creates a mapper bounded to [0, rng] whose tweens last
// duration seconds.
func NewScrollMapper(rng float64, duration float32) *ScrollMapper {
	if rng <= 0 {
		rng = 1
	}
	return &ScrollMapper{Range: rng, Duration: duration, Ease: ease.OutCubic}
}

// Feed adds delta to the accumulated value, clamps it to [0, Range] and
// retargets the smoothing tween. NaN deltas are ignored.
func (m *ScrollMapper) Feed(delta float64) {
	if math.IsNaN(delta) {
		return
	}
	m.accumulated = clamp(m.accumulated+delta, 0, m.Range)
	m.retarget(m.accumulated / m.Range)
}

// retarget replaces any in-flight tween with one from the current smoothed
// value toward target.
func (m *ScrollMapper) retarget(target float64) {
	m.target = clamp01(target)
	fn := m.Ease
	if fn == nil {
		fn = ease.OutCubic
	}
	m.tween = gween.New(float32(m.smoothed), float32(m.target), m.Duration, fn)
}

// Update advances the active tween by dt seconds.
func (m *ScrollMapper) Update(dt float64) {
	if m.tween == nil {
		return
	}
	val, done := m.tween.Update(float32(dt))
	m.smoothed = clamp01(float64(val))
	if done {
		m.smoothed = m.target
		m.tween = nil
	}
}

// Accumulated returns the raw accumulated scroll value in [0, Range].
func (m *ScrollMapper) Accumulated() float64 { return m.accumulated }

// Smoothed returns the eased progress in [0, 1].
func (m *ScrollMapper) Smoothed() float64 { return m.smoothed }

// Target returns accumulated/Range as of the last accepted input.
func (m *ScrollMapper) Target() float64 { return m.target }

// Animating reports whether a smoothing tween is in flight.
func (m *ScrollMapper) Animating() bool { return m.tween != nil }
