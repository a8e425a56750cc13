package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// enableOrbit starts animating every source along a slow circle around its
// current position. Used by the demo mode and while recording default.pgo.
func (g *Game) enableOrbit() {
	g.orbiting = true
	for i := 0; i < g.store.count; i++ {
		g.orbitCenters[i] = [2]float64{g.store.sources[i].X, g.store.sources[i].Y}
	}
}

// stepOrbit repositions orbiting sources for simulation time t. Dragged
// sources are left alone so interaction wins over the animation.
func (g *Game) stepOrbit(t float64) {
	if !g.orbiting {
		return
	}
	draggedID, hasDrag := g.drag.draggedID()
	for i := 0; i < g.store.count; i++ {
		src := &g.store.sources[i]
		if hasDrag && src.ID == draggedID {
			g.orbitCenters[i] = [2]float64{src.X, src.Y}
			continue
		}
		phase := orbitAngularVel*t + float64(i)*2*math.Pi/float64(maxSources)
		g.store.setPosition(src.ID,
			g.orbitCenters[i][0]+orbitRadius*math.Cos(phase),
			g.orbitCenters[i][1]+orbitRadius*math.Sin(phase))
	}
}

// handleParameterControls maps keyboard input onto the control surface:
// Tab cycles the selected source, Up/Down its wavelength, Left/Right its
// frequency, comma/period the decay factor, minus/equal the dot density.
func (g *Game) handleParameterControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && g.store.count > 0 {
		g.selected = (g.selected + 1) % g.store.count
	}
	if g.selected >= g.store.count {
		g.selected = 0
	}
	if g.store.count > 0 {
		id := g.store.sources[g.selected].ID
		src := g.store.sourceByID(id)
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			g.store.setWavelength(id, src.Wavelength+wavelengthStep)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			g.store.setWavelength(id, src.Wavelength-wavelengthStep)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			g.store.setFrequency(id, src.Frequency+frequencyStep)
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			g.store.setFrequency(id, src.Frequency-frequencyStep)
		}
	}
	if ebiten.IsKeyPressed(ebiten.KeyPeriod) {
		g.store.setDecayFactor(g.store.params.DecayFactor + decayStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyComma) {
		g.store.setDecayFactor(g.store.params.DecayFactor - decayStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyEqual) || ebiten.IsKeyPressed(ebiten.KeyKPAdd) {
		g.store.setDotDensity(g.store.params.DotDensityFactor + densityStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyMinus) || ebiten.IsKeyPressed(ebiten.KeyKPSubtract) {
		g.store.setDotDensity(g.store.params.DotDensityFactor - densityStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		if g.orbiting {
			g.orbiting = false
		} else {
			g.enableOrbit()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.clock.requestStop()
	}
}
