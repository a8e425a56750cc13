package main

import (
	"image"
	"image/png"
	"os"
)

// dumpFrame renders a single frame headlessly through the CPU renderer,
// stamps the source markers, and writes the result as a PNG.
func dumpFrame(path string, t float64, store *sourceStore, width, height int) error {
	renderer := newFrameRenderer(width, height)
	sources, params := store.snapshot()
	pixels := renderer.render(t, sources, params)
	stampMarkers(pixels, width, height, sources)

	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
