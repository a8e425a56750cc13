package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type renderBackend int

const (
	backendShader renderBackend = iota
	backendCPU
	backendOpenCL
)

func (b renderBackend) String() string {
	switch b {
	case backendShader:
		return "kage"
	case backendCPU:
		return "cpu"
	case backendOpenCL:
		return "opencl"
	}
	return "unknown"
}

// Game drives the frame loop: it advances simulation time each tick,
// re-evaluates the whole canvas from the current source snapshot, and draws
// the marker overlay on top.
type Game struct {
	store *sourceStore
	drag  *dragController
	clock *frameClock
	t     float64

	width  int
	height int

	backend   renderBackend
	shader    *ebiten.Shader
	cpu       *frameRenderer
	gpuSolver *openCLFieldSolver
	renderErr error

	selected     int
	orbiting     bool
	orbitCenters [maxSources][2]float64

	touchID     ebiten.TouchID
	justTouched []ebiten.TouchID

	pgoStop     func()
	pgoDeadline time.Time
}

// newGame constructs a fully initialized Game. A failure to set up the
// selected rendering backend is an initialization failure for the whole
// visualization and is returned to the caller.
func newGame(store *sourceStore, width, height int) (*Game, error) {
	g := &Game{
		store:   store,
		clock:   newFrameClock(nil),
		width:   width,
		height:  height,
		touchID: -1,
	}
	g.drag = newDragController(store)

	switch {
	case *openCLFlag:
		solver, err := newOpenCLFieldSolver(width, height)
		if err != nil {
			return nil, fmt.Errorf("OpenCL initialization failed: %w", err)
		}
		log.Printf("OpenCL solver enabled (device: %s)", solver.DeviceName())
		g.gpuSolver = solver
		g.backend = backendOpenCL
	case *cpuRenderFlag:
		g.cpu = newFrameRenderer(width, height)
		g.backend = backendCPU
	default:
		shader, err := newFieldShader()
		if err != nil {
			return nil, err
		}
		g.shader = shader
		g.backend = backendShader
	}
	return g, nil
}

// Update advances simulation time, applies input, and honors the stop
// signal.
func (g *Game) Update() error {
	if g.renderErr != nil {
		return g.renderErr
	}
	if g.clock.stopRequested() {
		if g.pgoStop != nil {
			g.pgoStop()
			g.pgoStop = nil
		}
		return ebiten.Termination
	}
	g.t = g.clock.elapsed()

	g.pollPointerInput()
	g.handleParameterControls()
	g.stepOrbit(g.t)

	if g.pgoStop != nil && time.Now().After(g.pgoDeadline) {
		g.pgoStop()
		g.pgoStop = nil
		g.clock.requestStop()
	}
	return nil
}

// Draw renders the dithered field through the active backend, then the
// source markers and optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	sources, params := g.store.snapshot()

	switch g.backend {
	case backendShader:
		op := &ebiten.DrawRectShaderOptions{}
		op.Uniforms = fieldUniforms(g.t, sources, params)
		screen.DrawRectShader(g.width, g.height, g.shader, op)
	case backendCPU:
		screen.WritePixels(g.cpu.render(g.t, sources, params))
	case backendOpenCL:
		pixels, err := g.gpuSolver.Render(g.t, sources, params)
		if err != nil {
			g.renderErr = err
			return
		}
		screen.WritePixels(pixels)
	}

	draggedID, hasDrag := g.drag.draggedID()
	selectedID := -1
	if g.store.count > 0 && g.selected < g.store.count {
		selectedID = g.store.sources[g.selected].ID
	}
	drawSourceMarkers(screen, g.store, draggedID, hasDrag, selectedID)

	if *debugFlag {
		msg := fmt.Sprintf("FPS: %.1f TPS: %.1f [%s]\nt: %.2fs sources: %d\ndecay: %.2f density: %.2f",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.backend,
			g.t, g.store.count,
			g.store.params.DecayFactor, g.store.params.DotDensityFactor)
		ebitenutil.DebugPrint(screen, msg)
	}
}

// Layout resizes the canvas with the host window. The OpenCL backend keeps
// its initial resolution because its device buffers are allocated once.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.backend != backendOpenCL && outsideWidth > 0 && outsideHeight > 0 &&
		(outsideWidth != g.width || outsideHeight != g.height) {
		g.resize(outsideWidth, outsideHeight)
	}
	return g.width, g.height
}

// resize rebinds every size-dependent part to a new canvas resolution.
func (g *Game) resize(width, height int) {
	g.width = width
	g.height = height
	g.store.resize(width, height)
	if g.cpu != nil {
		g.cpu.resize(width, height)
	}
}
