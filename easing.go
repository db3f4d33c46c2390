package marquee

import "math"

// EaseOutExpo maps normalized progress to normalized eased progress. Input is
// clamped to [0, 1]; the result is exactly 1 at x == 1 and 1 - 2^(-10x)
// otherwise.
//
// Computed in float64 rather than through gween's float32 ease.OutExpo so the
// intro lands exactly on the home pose.
func EaseOutExpo(x float64) float64 {
	x = clamp01(x)
	if x == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*x)
}

