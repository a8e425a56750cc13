package main

// clampFloat constrains v to lie within the inclusive [min, max] range.
func clampFloat(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// clamp01 constrains v to the unit interval.
func clamp01(v float64) float64 {
	return clampFloat(v, 0, 1)
}
