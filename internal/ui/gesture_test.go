package ui

import (
	"math"
	"testing"
)

func newTestController(interactive bool) *Controller {
	c := NewController(Config{Bounds: testBounds, InteractiveTrack: interactive})
	c.SetGeometry(Geometry{Span: 200, Insets: testInsets})
	return c
}

func TestTrackDragJumpsToPointer(t *testing.T) {
	c := newTestController(true)
	if !c.HandleTrack(PointerEvent{Phase: PhaseStart, Position: 100}) {
		t.Fatalf("expected track event to be consumed")
	}
	if !c.Editing() {
		t.Fatalf("expected editing during track drag")
	}
	if math.Abs(c.Value()-50) > tol {
		t.Fatalf("want 50, got %v", c.Value())
	}
	c.HandleTrack(PointerEvent{Phase: PhaseMove, Position: 500})
	if c.Value() != 100 {
		t.Fatalf("want clamp to 100, got %v", c.Value())
	}
	c.HandleTrack(PointerEvent{Phase: PhaseEnd, Position: 500})
	if c.Editing() {
		t.Fatalf("expected editing cleared on end")
	}
}

func TestTrackDisabled(t *testing.T) {
	c := newTestController(false)
	if c.HandleTrack(PointerEvent{Phase: PhaseStart, Position: 100}) {
		t.Fatalf("expected event rejected with interactive track off")
	}
	if c.Value() != 0 || c.Editing() {
		t.Fatalf("state changed despite disabled track: value=%v editing=%v", c.Value(), c.Editing())
	}
}

func TestThumbDragPreservesGrabPoint(t *testing.T) {
	c := newTestController(false)
	c.SetValue(50) // thumb center at distance 100

	// grab 10px off-center
	c.HandleThumb(PointerEvent{Phase: PhaseStart, Position: 110})
	if !c.Editing() {
		t.Fatalf("expected editing from pointer-down")
	}

	// first move at the grab point must not move the thumb
	c.HandleThumb(PointerEvent{Phase: PhaseMove, Position: 110})
	if math.Abs(c.Value()-50) > tol {
		t.Fatalf("thumb jumped on grab: %v", c.Value())
	}

	// +10px of pointer travel maps the effective position to 120
	c.HandleThumb(PointerEvent{Phase: PhaseMove, Position: 120})
	want := ValueForDistance(110, 200, testBounds, 0, testInsets, false)
	if math.Abs(c.Value()-want) > tol {
		t.Fatalf("want %v, got %v", want, c.Value())
	}

	c.HandleThumb(PointerEvent{Phase: PhaseEnd, Position: 120})
	if c.Editing() {
		t.Fatalf("expected editing cleared on end")
	}
}

func TestThumbGrabOffsetDoesNotLeak(t *testing.T) {
	c := newTestController(false)
	c.SetValue(50)

	c.HandleThumb(PointerEvent{Phase: PhaseStart, Position: 110})
	c.HandleThumb(PointerEvent{Phase: PhaseMove, Position: 150})
	c.HandleThumb(PointerEvent{Phase: PhaseEnd, Position: 150})
	v := c.Value()

	// a fresh drag captures a fresh offset: first move at its own grab
	// point leaves the value alone
	start := c.ThumbDistance() - 4
	c.HandleThumb(PointerEvent{Phase: PhaseStart, Position: start})
	c.HandleThumb(PointerEvent{Phase: PhaseMove, Position: start})
	if math.Abs(c.Value()-v) > tol {
		t.Fatalf("grab offset leaked across drags: %v -> %v", v, c.Value())
	}
}

func TestThumbCancelBehavesLikeEnd(t *testing.T) {
	c := newTestController(false)
	c.SetValue(50)
	c.HandleThumb(PointerEvent{Phase: PhaseStart, Position: 110})
	c.HandleThumb(PointerEvent{Phase: PhaseMove, Position: 130})
	c.HandleThumb(PointerEvent{Phase: PhaseCancel})
	if c.Editing() {
		t.Fatalf("expected editing cleared on cancel")
	}
	if c.grabbed || c.hasStart {
		t.Fatalf("session state leaked past cancel")
	}
}

func TestCallbacks(t *testing.T) {
	c := newTestController(true)
	var values []float64
	var edits []bool
	c.OnChange = func(v float64) { values = append(values, v) }
	c.OnEditing = func(on bool) { edits = append(edits, on) }

	c.HandleTrack(PointerEvent{Phase: PhaseStart, Position: 100})
	c.HandleTrack(PointerEvent{Phase: PhaseMove, Position: 100}) // no-op move
	c.HandleTrack(PointerEvent{Phase: PhaseMove, Position: 145})
	c.HandleTrack(PointerEvent{Phase: PhaseEnd, Position: 145})

	if len(values) != 2 {
		t.Fatalf("want 2 value updates, got %v", values)
	}
	if len(edits) != 2 || !edits[0] || edits[1] {
		t.Fatalf("want editing true,false, got %v", edits)
	}
}

func TestDegenerateSpanDragsToLower(t *testing.T) {
	c := NewController(Config{Bounds: testBounds, InteractiveTrack: true})
	c.SetGeometry(Geometry{Span: 0, Insets: testInsets})
	c.SetValue(70)
	c.HandleTrack(PointerEvent{Phase: PhaseStart, Position: 40})
	if c.Value() != testBounds.Lower {
		t.Fatalf("want lower bound, got %v", c.Value())
	}
}

func TestSetConfigReclamps(t *testing.T) {
	c := newTestController(false)
	c.SetValue(80)
	var got float64 = -1
	c.OnChange = func(v float64) { got = v }
	c.SetConfig(Config{Bounds: Bounds{Lower: 0, Upper: 50}})
	if c.Value() != 50 || got != 50 {
		t.Fatalf("want reclamped 50, got value=%v callback=%v", c.Value(), got)
	}
}

func TestSteppedTrackDrag(t *testing.T) {
	c := NewController(Config{Bounds: testBounds, Step: 25, InteractiveTrack: true})
	c.SetGeometry(Geometry{Span: 200, Insets: testInsets})
	c.HandleTrack(PointerEvent{Phase: PhaseStart, Position: 109})
	if c.Value() != 50 {
		t.Fatalf("want snap to 50, got %v", c.Value())
	}
}
