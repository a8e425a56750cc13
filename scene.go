package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sceneConfig describes the initial sources and global parameters loaded at
// startup. Presets are read-only input; nothing is ever written back.
type sceneConfig struct {
	Sources          []sceneSource `yaml:"sources"`
	Amplitude        float64       `yaml:"amplitude"`
	DecayFactor      float64       `yaml:"decay_factor"`
	DotDensityFactor float64       `yaml:"dot_density_factor"`
}

type sceneSource struct {
	X          float64 `yaml:"x"`
	Y          float64 `yaml:"y"`
	Wavelength float64 `yaml:"wavelength"`
	Frequency  float64 `yaml:"frequency"`
}

// defaultScene returns the built-in two-source scene.
func defaultScene() *sceneConfig {
	return &sceneConfig{
		Sources: []sceneSource{
			{X: 300, Y: 200, Wavelength: 100, Frequency: 1.0},
			{X: 700, Y: 200, Wavelength: 100, Frequency: 1.0},
		},
		Amplitude:        defaultAmplitude,
		DecayFactor:      defaultDecay,
		DotDensityFactor: defaultDotDensity,
	}
}

// loadScene reads a YAML preset, starting from the defaults so omitted keys
// keep their built-in values.
func loadScene(path string) (*sceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := defaultScene()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing scene %q: %w", path, err)
	}
	if len(cfg.Sources) > maxSources {
		return nil, fmt.Errorf("scene %q has %d sources; the cap is %d", path, len(cfg.Sources), maxSources)
	}
	return cfg, nil
}

// buildStore populates a source store from a scene. Sources beyond the cap
// are rejected by the store itself; parameters are clamped on the way in.
func (c *sceneConfig) buildStore(width, height int) *sourceStore {
	store := newSourceStore(width, height)
	store.params.Amplitude = c.Amplitude
	store.setDecayFactor(c.DecayFactor)
	store.setDotDensity(c.DotDensityFactor)
	for _, src := range c.Sources {
		store.addSource(src.X, src.Y, src.Wavelength, src.Frequency)
	}
	return store
}
