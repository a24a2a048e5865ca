package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	debugCharW = 6  // width of a character drawn by DebugPrintAt
	debugCharH = 13 // height of a character drawn by DebugPrintAt
)

// drawRect draws a rectangle. It is defined as a variable so tests can
// override it to capture draw calls.
var drawRect = func(dst *ebiten.Image, r image.Rectangle, c color.Color, filled bool) {
	if filled {
		vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	} else {
		vector.StrokeRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 1, c, false)
	}
}

// drawLabel prints text with the debug font. Overridable in tests.
var drawLabel = func(dst *ebiten.Image, txt string, x, y int) {
	ebitenutil.DebugPrintAt(dst, txt, x, y)
}

var drawLine = func(dst *ebiten.Image, x1, y1, x2, y2 int, col color.Color) {
	rect := image.Rect(min(x1, x2), min(y1, y2), max(x1, x2)+1, max(y1, y2)+1)
	drawRect(dst, rect, col, true)
}
