package main

import "math"

// sourceTerm is a per-source constant set precomputed once per frame so the
// per-pixel inner loop touches a uniform fixed-size array.
type sourceTerm struct {
	x, y  float64
	k     float64 // spatial frequency, 2π/wavelength
	omega float64 // temporal angular frequency, 2π·frequency
}

// buildTerms fills dst from the frame's source snapshot and returns the
// number of active terms.
func buildTerms(dst *[maxSources]sourceTerm, sources []WaveSource) int {
	n := len(sources)
	if n > maxSources {
		n = maxSources
	}
	for i := 0; i < n; i++ {
		dst[i] = sourceTerm{
			x:     sources[i].X,
			y:     sources[i].Y,
			k:     2 * math.Pi / sources[i].Wavelength,
			omega: 2 * math.Pi * sources[i].Frequency,
		}
	}
	return n
}

// fieldValue computes the superposed wave value at pixel (px, py) and time t:
//
//	total = Σ_i amplitude/dist_i^decay · cos(k_i·dist_i − ω_i·t)
//
// Distance is floored at minSourceDistance before the decay exponent is
// applied. A negative decay is treated as no attenuation. The function is
// pure and callable independently per pixel.
func fieldValue(px, py, t float64, terms []sourceTerm, amplitude, decay float64) float64 {
	total := 0.0
	for i := range terms {
		dx := px - terms[i].x
		dy := py - terms[i].y
		dist := math.Sqrt(dx*dx + dy*dy)
		if dist < minSourceDistance {
			dist = minSourceDistance
		}
		amp := amplitude
		if decay > 0 {
			amp /= math.Pow(dist, decay)
		}
		total += amp * math.Cos(terms[i].k*dist-terms[i].omega*t)
	}
	return total
}
