package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type gridOffset struct {
	dx int
	dy int
}

// markerFootprint precomputes the disc of offsets covered by a source
// marker, used when stamping markers directly into a pixel buffer.
var markerFootprint = precomputeMarkerFootprint(int(sourceMarkerRad))

func precomputeMarkerFootprint(radius int) []gridOffset {
	footprint := make([]gridOffset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				footprint = append(footprint, gridOffset{dx: x, dy: y})
			}
		}
	}
	return footprint
}

// stampMarkers writes filled source discs into an RGBA buffer. Used by the
// headless renderer where no screen is available.
func stampMarkers(pixels []byte, width, height int, sources []WaveSource) {
	for _, src := range sources {
		cx := int(src.X)
		cy := int(src.Y)
		for _, off := range markerFootprint {
			x := cx + off.dx
			y := cy + off.dy
			if x < 0 || x >= width || y < 0 || y >= height {
				continue
			}
			o := (y*width + x) * 4
			pixels[o] = src.Color.R
			pixels[o+1] = src.Color.G
			pixels[o+2] = src.Color.B
			pixels[o+3] = 255
		}
	}
}

// drawSourceMarkers renders the cosmetic overlay: a filled circle per
// source, a ring around the dragged source, and a thin ring around the
// keyboard-selected one.
func drawSourceMarkers(screen *ebiten.Image, store *sourceStore, draggedID int, hasDrag bool, selectedID int) {
	for i := 0; i < store.count; i++ {
		src := &store.sources[i]
		x := float32(src.X)
		y := float32(src.Y)
		vector.DrawFilledCircle(screen, x, y, sourceMarkerRad, src.Color, true)
		if hasDrag && src.ID == draggedID {
			vector.StrokeCircle(screen, x, y, dragRingRad, 2, color.RGBA{255, 255, 255, 255}, true)
		} else if src.ID == selectedID {
			vector.StrokeCircle(screen, x, y, dragRingRad, 1, color.RGBA{160, 160, 160, 200}, true)
		}
	}
}
