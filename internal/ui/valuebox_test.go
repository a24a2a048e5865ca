package ui

import (
	"image"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// boxHarness drives a ValueBox with synthetic mouse and typed input.
type boxHarness struct {
	cx, cy  int
	pressed bool
	chars   []rune
	restore func()
}

func newBoxHarness() *boxHarness {
	h := &boxHarness{}
	h.restore = SetInputForTest(
		func() (int, int) { return h.cx, h.cy },
		func(ebiten.MouseButton) bool { return h.pressed },
		func(ebiten.Key) bool { return false },
		func() []rune { c := h.chars; h.chars = nil; return c },
		func() (float64, float64) { return 0, 0 },
	)
	return h
}

func (h *boxHarness) typeText(box *ValueBox, s string) {
	for _, r := range s {
		h.chars = []rune{r}
		box.Update()
	}
}

func newTestBox() (*Slider, *ValueBox) {
	s := NewSlider(Config{Bounds: testBounds})
	s.SetRect(image.Rect(0, 30, 200, 50))
	s.SetValue(40)
	return s, NewValueBox(image.Rect(0, 0, 60, 20), s)
}

func TestValueBoxCommit(t *testing.T) {
	s, box := newTestBox()
	h := newBoxHarness()
	defer h.restore()

	h.cx, h.cy, h.pressed = 1, 1, true
	box.Update() // click to focus
	h.pressed = false
	if !box.Focused() {
		t.Fatalf("expected box focused after click")
	}

	h.typeText(box, "75")
	if s.Value() != 40 {
		t.Fatalf("value changed before commit: %v", s.Value())
	}

	// click outside to commit
	h.cx, h.cy, h.pressed = 150, 150, true
	box.Update()
	if s.Value() != 75 {
		t.Fatalf("want 75, got %v", s.Value())
	}
}

func TestValueBoxInvalidInputReverts(t *testing.T) {
	s, box := newTestBox()
	h := newBoxHarness()
	defer h.restore()

	h.cx, h.cy, h.pressed = 1, 1, true
	box.Update()
	h.pressed = false
	h.typeText(box, "abc")

	h.cx, h.cy, h.pressed = 150, 150, true
	box.Update()
	if s.Value() != 40 {
		t.Fatalf("want revert to 40, got %v", s.Value())
	}
	if box.errorAnim == 0 {
		t.Fatalf("expected error flash for invalid input")
	}
}

func TestValueBoxOutOfBoundsReverts(t *testing.T) {
	s, box := newTestBox()
	h := newBoxHarness()
	defer h.restore()

	h.cx, h.cy, h.pressed = 1, 1, true
	box.Update()
	h.pressed = false
	h.typeText(box, "500")

	h.cx, h.cy, h.pressed = 150, 150, true
	box.Update()
	if s.Value() != 40 {
		t.Fatalf("want revert to 40, got %v", s.Value())
	}
	if box.errorAnim == 0 {
		t.Fatalf("expected error flash for out-of-bounds input")
	}
}

func TestValueBoxEmptyRestores(t *testing.T) {
	s, box := newTestBox()
	h := newBoxHarness()
	defer h.restore()

	h.cx, h.cy, h.pressed = 1, 1, true
	box.Update() // focus clears the text
	h.pressed = false
	box.Update()

	h.cx, h.cy, h.pressed = 150, 150, true
	box.Update()
	if s.Value() != 40 {
		t.Fatalf("want 40 restored, got %v", s.Value())
	}
	if box.errorAnim != 0 {
		t.Fatalf("unexpected error flash for empty commit")
	}
}

func TestValueBoxTracksSliderWhileIdle(t *testing.T) {
	s, box := newTestBox()
	h := newBoxHarness()
	defer h.restore()

	h.cx, h.cy = 150, 150
	s.SetValue(62)
	box.Update()
	if box.text != "62" {
		t.Fatalf("want text 62, got %q", box.text)
	}
}
