package main

import "testing"

func TestHitTestReverseCreationOrder(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	s.addSource(305, 200, 100, 1) // overlapping, listed later
	d := newDragController(s)

	hit := d.hitTest(302, 200)
	if hit == nil {
		t.Fatal("hit test missed overlapping sources")
	}
	if hit.ID != s.sources[1].ID {
		t.Errorf("hit source %d, want the most recently listed %d", hit.ID, s.sources[1].ID)
	}
}

func TestHitTestRadius(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	d := newDragController(s)

	const hitRadius = sourceMarkerRad * hitRadiusScale
	if d.hitTest(300+hitRadius-0.5, 200) == nil {
		t.Error("hit test missed inside the hit radius")
	}
	if d.hitTest(300+hitRadius+1, 200) != nil {
		t.Error("hit test matched outside the hit radius")
	}
}

func TestDragPreservesPickupOffset(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	d := newDragController(s)

	if !d.press(305, 203) {
		t.Fatal("press on a source did not start a drag")
	}
	// Moving the pointer moves the source by the pointer delta; it does not
	// snap the source center to the pointer.
	d.move(405, 253)
	if s.sources[0].X != 400 || s.sources[0].Y != 250 {
		t.Errorf("position = (%v,%v), want (400,250)", s.sources[0].X, s.sources[0].Y)
	}
}

func TestDragClampsToOrigin(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	d := newDragController(s)

	if !d.press(300, 200) {
		t.Fatal("press failed")
	}
	d.move(-500, -500)
	if s.sources[0].X != 0 || s.sources[0].Y != 0 {
		t.Errorf("position = (%v,%v), want exactly (0,0)", s.sources[0].X, s.sources[0].Y)
	}
}

func TestReleaseStopsDragging(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	d := newDragController(s)

	d.press(300, 200)
	d.move(350, 250)
	d.release()
	d.move(800, 350)
	if s.sources[0].X != 350 || s.sources[0].Y != 250 {
		t.Errorf("position moved after release: (%v,%v)", s.sources[0].X, s.sources[0].Y)
	}
	if _, active := d.draggedID(); active {
		t.Error("drag still active after release")
	}
}

func TestOnlyOneDragAtATime(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	s.addSource(700, 200, 100, 1)
	d := newDragController(s)

	if !d.press(300, 200) {
		t.Fatal("first press failed")
	}
	if d.press(700, 200) {
		t.Error("second press accepted while a drag is active")
	}
	id, _ := d.draggedID()
	if id != s.sources[0].ID {
		t.Errorf("dragged id = %d, want %d", id, s.sources[0].ID)
	}
}

func TestPressOnEmptySpace(t *testing.T) {
	s := testStore()
	s.addSource(300, 200, 100, 1)
	d := newDragController(s)

	if d.press(600, 100) {
		t.Error("press on empty space started a drag")
	}
	d.move(650, 150)
	if s.sources[0].X != 300 || s.sources[0].Y != 200 {
		t.Error("move without a drag repositioned a source")
	}
}
