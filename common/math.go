package common

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Clamp01 limits t to [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
