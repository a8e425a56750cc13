package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// dragController implements the interaction layer: hit-testing pointer
// positions against sources and dragging one source at a time. Mouse and
// touch input both feed the same press/move/release handlers.
type dragController struct {
	store    *sourceStore
	active   bool
	sourceID int
	offsetX  float64
	offsetY  float64
}

func newDragController(store *sourceStore) *dragController {
	return &dragController{store: store, sourceID: -1}
}

// hitTest returns the topmost source within the hit radius of (x, y).
// Sources are tested in reverse creation order so the most recently listed
// one wins ties.
func (d *dragController) hitTest(x, y float64) *WaveSource {
	const hitRadius = sourceMarkerRad * hitRadiusScale
	for i := d.store.count - 1; i >= 0; i-- {
		src := &d.store.sources[i]
		dx := x - src.X
		dy := y - src.Y
		if dx*dx+dy*dy <= hitRadius*hitRadius {
			return src
		}
	}
	return nil
}

// press starts a drag when (x, y) lands on a source. The pointer-to-source
// offset is recorded so the source does not jump to the pointer on pickup.
func (d *dragController) press(x, y float64) bool {
	if d.active {
		return false
	}
	src := d.hitTest(x, y)
	if src == nil {
		return false
	}
	d.active = true
	d.sourceID = src.ID
	d.offsetX = x - src.X
	d.offsetY = y - src.Y
	return true
}

// move repositions the dragged source to pointer − offset, clamped to
// canvas bounds by the store. No-op when nothing is dragged.
func (d *dragController) move(x, y float64) {
	if !d.active {
		return
	}
	d.store.setPosition(d.sourceID, x-d.offsetX, y-d.offsetY)
}

// release ends the drag; further pointer movement no longer repositions the
// source.
func (d *dragController) release() {
	d.active = false
	d.sourceID = -1
}

// draggedID returns the id of the source currently being dragged.
func (d *dragController) draggedID() (int, bool) {
	if !d.active {
		return 0, false
	}
	return d.sourceID, true
}

// pollPointerInput feeds mouse and touch events into the drag controller.
// Only the first touch point participates; additional touches are ignored
// while it is down.
func (g *Game) pollPointerInput() {
	if g.touchID < 0 {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			g.drag.press(float64(mx), float64(my))
		}
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
			mx, my := ebiten.CursorPosition()
			g.drag.move(float64(mx), float64(my))
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			g.drag.release()
		}
	}

	if g.touchID < 0 && !g.drag.active {
		g.justTouched = inpututil.AppendJustPressedTouchIDs(g.justTouched[:0])
		if len(g.justTouched) > 0 {
			id := g.justTouched[0]
			tx, ty := ebiten.TouchPosition(id)
			if g.drag.press(float64(tx), float64(ty)) {
				g.touchID = id
			}
		}
	} else if g.touchID >= 0 {
		if inpututil.IsTouchJustReleased(g.touchID) {
			g.drag.release()
			g.touchID = -1
		} else {
			tx, ty := ebiten.TouchPosition(g.touchID)
			g.drag.move(float64(tx), float64(ty))
		}
	}
}
