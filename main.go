package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

// fatalInit surfaces an initialization failure distinctly: a native error
// dialog plus a logged message, then a nonzero exit. The visualization never
// degrades to a silently blank canvas.
func fatalInit(err error) {
	log.Printf("fatal: %v", err)
	_ = zenity.Error(err.Error(), zenity.Title("Interference"))
	os.Exit(1)
}

func main() {
	flag.Parse()

	scene := defaultScene()
	if *sceneFlag != "" {
		loaded, err := loadScene(*sceneFlag)
		if err != nil {
			log.Fatalf("loading scene: %v", err)
		}
		scene = loaded
	}

	width := *widthFlag
	height := *heightFlag
	store := scene.buildStore(width, height)
	store.setDecayFactor(*decayFlag)
	store.setDotDensity(*densityFlag)

	if *dumpFrameFlag != "" {
		if err := dumpFrame(*dumpFrameFlag, *dumpTimeFlag, store, width, height); err != nil {
			log.Fatalf("dumping frame: %v", err)
		}
		return
	}

	g, err := newGame(store, width, height)
	if err != nil {
		fatalInit(err)
	}
	if *orbitFlag {
		g.enableOrbit()
	}
	if *recordDefaultPGO {
		stop, err := startDefaultPGORecording("default.pgo")
		if err != nil {
			log.Fatalf("starting PGO recording: %v", err)
		}
		g.pgoStop = stop
		g.pgoDeadline = time.Now().Add(pgoRecordDuration)
		g.enableOrbit()
	}

	ebiten.SetWindowSize(width*windowScale, height*windowScale)
	ebiten.SetWindowTitle("Interference")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatalInit(err)
	}
}
