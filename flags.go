package main

import "flag"

// Command-line flags that control optional rendering, scene, and runtime
// behavior.
var (
	// widthFlag and heightFlag set the canvas backing resolution.
	widthFlag  = flag.Int("width", defaultCanvasW, "canvas width in pixels")
	heightFlag = flag.Int("height", defaultCanvasH, "canvas height in pixels")

	// sceneFlag selects a YAML scene preset for the initial sources and
	// global parameters.
	sceneFlag = flag.String("scene", "", "path to a YAML scene preset (default: built-in two-source scene)")

	// cpuRenderFlag forces the row-parallel CPU renderer instead of the
	// Kage fragment shader.
	cpuRenderFlag = flag.Bool("cpu", false, "render on the CPU instead of the GPU shader")

	// openCLFlag renders through the OpenCL kernel when built with -tags opencl.
	openCLFlag = flag.Bool("opencl", false, "render through the OpenCL kernel (requires -tags opencl build)")

	// decayFlag sets the initial distance decay exponent.
	decayFlag = flag.Float64("decay", defaultDecay, "distance decay exponent (0-2)")

	// densityFlag sets the initial dot density factor.
	densityFlag = flag.Float64("density", defaultDotDensity, "dot density factor (0.1-3)")

	// orbitFlag animates sources along slow circular orbits.
	orbitFlag = flag.Bool("orbit", false, "animate sources along circular orbits")

	// dumpFrameFlag renders a single frame headlessly to a PNG and exits.
	dumpFrameFlag = flag.String("dump-frame", "", "render one frame to the given PNG path and exit")

	// dumpTimeFlag is the simulation time used with -dump-frame.
	dumpTimeFlag = flag.Float64("dump-time", 0, "simulation time in seconds for -dump-frame")

	// recordDefaultPGO orbits the sources for 15s while capturing default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "orbit sources for 15s while capturing default.pgo")

	// debugFlag enables the FPS and parameter overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and parameter overlay")
)
