package main

import "image/color"

// WaveSource is a point emitting a cosine wave with its own wavelength and
// frequency. Position is in canvas pixel space; Color is a display-only tag.
type WaveSource struct {
	ID         int
	X, Y       float64
	Wavelength float64
	Frequency  float64
	Color      color.RGBA
}

// GlobalParameters holds the per-frame global controls shared by every
// source: base amplitude, distance decay exponent, and dot density.
type GlobalParameters struct {
	Amplitude        float64
	DecayFactor      float64
	DotDensityFactor float64
}

// sourcePalette assigns a distinct marker color per source slot.
var sourcePalette = [maxSources]color.RGBA{
	{239, 68, 68, 255},
	{59, 130, 246, 255},
	{34, 197, 94, 255},
	{234, 179, 8, 255},
	{168, 85, 247, 255},
	{236, 72, 153, 255},
	{20, 184, 166, 255},
	{249, 115, 22, 255},
}

// sourceStore is the mutable list of wave sources plus global parameters.
// Capacity is fixed at maxSources so the per-pixel kernel can address a
// uniform fixed-size array; additions beyond the cap are rejected.
type sourceStore struct {
	sources [maxSources]WaveSource
	count   int
	params  GlobalParameters
	width   float64
	height  float64
	nextID  int
}

// newSourceStore constructs an empty store bound to the given canvas size.
func newSourceStore(width, height int) *sourceStore {
	return &sourceStore{
		params: GlobalParameters{
			Amplitude:        defaultAmplitude,
			DecayFactor:      defaultDecay,
			DotDensityFactor: defaultDotDensity,
		},
		width:  float64(width),
		height: float64(height),
	}
}

// addSource appends a source with clamped parameters. It reports false when
// the store is at capacity and leaves the state untouched.
func (s *sourceStore) addSource(x, y, wavelength, frequency float64) bool {
	if s.count >= maxSources {
		return false
	}
	s.sources[s.count] = WaveSource{
		ID:         s.nextID,
		X:          clampFloat(x, 0, s.width),
		Y:          clampFloat(y, 0, s.height),
		Wavelength: clampFloat(wavelength, minWavelength, maxWavelength),
		Frequency:  clampFloat(frequency, minFrequency, maxFrequency),
		Color:      sourcePalette[s.nextID%maxSources],
	}
	s.count++
	s.nextID++
	return true
}

// sourceByID returns a pointer into the store for in-place mutation, or nil
// when the id is unknown.
func (s *sourceStore) sourceByID(id int) *WaveSource {
	for i := 0; i < s.count; i++ {
		if s.sources[i].ID == id {
			return &s.sources[i]
		}
	}
	return nil
}

// setPosition moves a source, clamped to canvas bounds.
func (s *sourceStore) setPosition(id int, x, y float64) {
	if src := s.sourceByID(id); src != nil {
		src.X = clampFloat(x, 0, s.width)
		src.Y = clampFloat(y, 0, s.height)
	}
}

// setWavelength updates a source's wavelength, clamped to [10, 150].
func (s *sourceStore) setWavelength(id int, v float64) {
	if src := s.sourceByID(id); src != nil {
		src.Wavelength = clampFloat(v, minWavelength, maxWavelength)
	}
}

// setFrequency updates a source's frequency, clamped to [0.1, 2.0].
func (s *sourceStore) setFrequency(id int, v float64) {
	if src := s.sourceByID(id); src != nil {
		src.Frequency = clampFloat(v, minFrequency, maxFrequency)
	}
}

// setDecayFactor updates the global decay exponent, clamped to [0, 2].
func (s *sourceStore) setDecayFactor(v float64) {
	s.params.DecayFactor = clampFloat(v, minDecayFactor, maxDecayFactor)
}

// setDotDensity updates the global dot density factor, clamped to [0.1, 3].
func (s *sourceStore) setDotDensity(v float64) {
	s.params.DotDensityFactor = clampFloat(v, minDotDensity, maxDotDensity)
}

// resize rebinds the store to a new canvas size and re-clamps positions so
// no source is stranded outside the visible area.
func (s *sourceStore) resize(width, height int) {
	s.width = float64(width)
	s.height = float64(height)
	for i := 0; i < s.count; i++ {
		s.sources[i].X = clampFloat(s.sources[i].X, 0, s.width)
		s.sources[i].Y = clampFloat(s.sources[i].Y, 0, s.height)
	}
}

// snapshot copies the current sources and parameters. Each frame evaluates
// against its own snapshot, so parallel pixel work never observes a
// mid-frame mutation from the interaction layer.
func (s *sourceStore) snapshot() ([]WaveSource, GlobalParameters) {
	out := make([]WaveSource, s.count)
	copy(out, s.sources[:s.count])
	return out, s.params
}
