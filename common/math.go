package common

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Lerp blends a toward b without clamping t. The endpoints are exact: t == 0
// returns a and t == 1 returns b.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}
