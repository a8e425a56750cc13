package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// fieldShaderSrc is the Kage rendition of the field evaluator and dither
// renderer. It mirrors fieldValue/litPixel exactly, including the distance
// floor and the hash constants, so the GPU and CPU paths are interchangeable.
const fieldShaderSrc = `//kage:unit pixels

package main

var Time float
var SourceCount float
var Amplitude float
var DecayFactor float
var DotDensity float
var Positions [8]vec2
var Waves [8]vec2 // x: spatial frequency k, y: angular frequency omega

func hash(p vec2, t float) float {
	return fract(sin(dot(vec3(p, t), vec3(12.9898, 78.233, 37.719))) * 43758.5453)
}

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	if SourceCount < 0.5 {
		return vec4(0, 0, 0, 1)
	}
	p := dstPos.xy
	total := 0.0
	for i := 0; i < 8; i++ {
		if float(i) < SourceCount {
			d := max(distance(p, Positions[i]), 0.001)
			amp := Amplitude
			if DecayFactor > 0 {
				amp /= pow(d, DecayFactor)
			}
			total += amp * cos(Waves[i].x*d - Waves[i].y*Time)
		}
	}
	maxAmp := SourceCount * Amplitude
	norm := clamp((total+maxAmp)/(2.0*maxAmp), 0.0, 1.0)
	prob := clamp(norm*DotDensity, 0.0, 1.0)
	if hash(p, Time) < prob {
		return vec4(1, 1, 1, 1)
	}
	return vec4(0, 0, 0, 1)
}
`

// newFieldShader compiles the dither kernel. Compile failure is an
// initialization failure for the whole visualization.
func newFieldShader() (*ebiten.Shader, error) {
	shader, err := ebiten.NewShader([]byte(fieldShaderSrc))
	if err != nil {
		return nil, fmt.Errorf("compiling field shader: %w", err)
	}
	return shader, nil
}

// fieldUniforms packs the frame snapshot into the shader's uniform set. The
// fixed-size arrays are always fully populated; inactive slots are zeroed
// and masked out by SourceCount in the shader.
func fieldUniforms(t float64, sources []WaveSource, params GlobalParameters) map[string]any {
	var terms [maxSources]sourceTerm
	n := buildTerms(&terms, sources)

	positions := make([]float32, 2*maxSources)
	waves := make([]float32, 2*maxSources)
	for i := 0; i < n; i++ {
		positions[2*i] = float32(terms[i].x)
		positions[2*i+1] = float32(terms[i].y)
		waves[2*i] = float32(terms[i].k)
		waves[2*i+1] = float32(terms[i].omega)
	}
	return map[string]any{
		"Time":        float32(t),
		"SourceCount": float32(n),
		"Amplitude":   float32(params.Amplitude),
		"DecayFactor": float32(params.DecayFactor),
		"DotDensity":  float32(params.DotDensityFactor),
		"Positions":   positions,
		"Waves":       waves,
	}
}
