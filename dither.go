package main

import "math"

// Hash constants shared verbatim by the Go, Kage, and OpenCL renditions of
// the dither kernel so every backend produces the same stipple statistics.
const (
	hashKX    = 12.9898
	hashKY    = 78.233
	hashKT    = 37.719
	hashScale = 43758.5453
)

// pixelHash maps a pixel position and frame time to a uniform pseudo-random
// value in [0, 1). It is the fract(sin(dot(·,·))·C) construction: stable per
// (pixel, t), visually decorrelated across neighbors and frames, and cheap
// enough to run per pixel.
func pixelHash(px, py, t float64) float64 {
	v := math.Sin(px*hashKX+py*hashKY+t*hashKT) * hashScale
	f := v - math.Floor(v)
	if f >= 1 { // rounding at the upper edge
		f = 0
	}
	return f
}

// litProbability converts a field value into the probability that the pixel
// is rendered lit. With zero sources the probability is zero: no pixel is
// ever lit on an empty canvas.
func litProbability(total float64, sourceCount int, amplitude, dotDensity float64) float64 {
	if sourceCount <= 0 || amplitude <= 0 {
		return 0
	}
	maxAmp := float64(sourceCount) * amplitude
	normalized := clamp01((total + maxAmp) / (2 * maxAmp))
	return clamp01(normalized * dotDensity)
}

// litPixel reports whether the pixel at (px, py) is lit at time t given the
// superposed field value.
func litPixel(px, py, t, total float64, sourceCount int, amplitude, dotDensity float64) bool {
	p := litProbability(total, sourceCount, amplitude, dotDensity)
	if p <= 0 {
		return false
	}
	return pixelHash(px, py, t) < p
}
