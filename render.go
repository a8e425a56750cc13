package main

import (
	"runtime"
	"sync"
)

// frameRenderer evaluates the field and dither stages over the whole canvas
// on the CPU, splitting rows across worker goroutines. Every frame is
// computed from scratch from (t, sources, params); no pixel state survives
// between frames.
type frameRenderer struct {
	width, height int
	pixels        []byte
	workers       int
}

// newFrameRenderer allocates a renderer for the given canvas size.
func newFrameRenderer(width, height int) *frameRenderer {
	r := &frameRenderer{workers: runtime.NumCPU()}
	r.resize(width, height)
	return r
}

// resize reallocates the pixel buffer for a new canvas size.
func (r *frameRenderer) resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == r.width && height == r.height && r.pixels != nil {
		return
	}
	r.width = width
	r.height = height
	r.pixels = make([]byte, width*height*4)
}

// render produces the RGBA frame for time t from a snapshot of sources and
// parameters. The returned buffer is owned by the renderer and valid until
// the next call.
func (r *frameRenderer) render(t float64, sources []WaveSource, params GlobalParameters) []byte {
	var terms [maxSources]sourceTerm
	n := buildTerms(&terms, sources)

	workers := r.workers
	if workers < 1 {
		workers = 1
	}
	rowsPer := (r.height + workers - 1) / workers
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		yStart := i * rowsPer
		if yStart >= r.height {
			break
		}
		yEnd := yStart + rowsPer
		if yEnd > r.height {
			yEnd = r.height
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			r.renderRows(y0, y1, t, terms[:n], params)
		}(yStart, yEnd)
	}
	wg.Wait()
	return r.pixels
}

// renderRows runs the per-pixel pipeline over [y0, y1).
func (r *frameRenderer) renderRows(y0, y1 int, t float64, terms []sourceTerm, params GlobalParameters) {
	n := len(terms)
	for y := y0; y < y1; y++ {
		base := y * r.width * 4
		py := float64(y)
		for x := 0; x < r.width; x++ {
			px := float64(x)
			total := fieldValue(px, py, t, terms, params.Amplitude, params.DecayFactor)
			var v byte
			if litPixel(px, py, t, total, n, params.Amplitude, params.DotDensityFactor) {
				v = 255
			}
			o := base + x*4
			r.pixels[o] = v
			r.pixels[o+1] = v
			r.pixels[o+2] = v
			r.pixels[o+3] = 255
		}
	}
}
