package main

import "time"

// Rendering and interaction configuration constants used throughout the
// application. These values define the canvas size, source parameter domains,
// and interaction geometry for the interference visualization.
const (
	defaultCanvasW = 1000
	defaultCanvasH = 400
	windowScale    = 1

	maxSources = 8

	minWavelength = 10.0
	maxWavelength = 150.0
	minFrequency  = 0.1
	maxFrequency  = 2.0

	minDecayFactor = 0.0
	maxDecayFactor = 2.0
	minDotDensity  = 0.1
	maxDotDensity  = 3.0

	defaultAmplitude  = 1.0
	defaultDecay      = 0.0
	defaultDotDensity = 1.0

	// Distance floor applied before the decay exponent so a pixel on top of
	// a source never divides by a near-zero distance.
	minSourceDistance = 0.001

	sourceMarkerRad = 8.0
	dragRingRad     = sourceMarkerRad + 4
	hitRadiusScale  = 2.5

	wavelengthStep = 2.0
	frequencyStep  = 0.05
	decayStep      = 0.05
	densityStep    = 0.05

	orbitRadius     = 60.0
	orbitAngularVel = 0.4

	pgoRecordDuration = 15 * time.Second
)
