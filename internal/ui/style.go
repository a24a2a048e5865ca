package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderable draws one visual part of a slider into its assigned
// rectangle. active is true while the user is dragging. The geometry
// core never depends on this interface; swapping implementations
// changes appearance only.
type Renderable interface {
	Draw(dst *ebiten.Image, r image.Rectangle, active bool)
}

// TrackStyle is the default rail appearance: a filled bar with a
// border, brightened while a drag is active.
type TrackStyle struct {
	Fill   color.Color
	Active color.Color
	Border color.Color
}

func (s TrackStyle) Draw(dst *ebiten.Image, r image.Rectangle, active bool) {
	fill := s.Fill
	if active && s.Active != nil {
		fill = s.Active
	}
	drawRect(dst, r, fill, true)
	drawRect(dst, r, s.Border, false)
}

// ThumbStyle is the default handle appearance.
type ThumbStyle struct {
	Fill   color.Color
	Active color.Color
	Border color.Color
}

func (s ThumbStyle) Draw(dst *ebiten.Image, r image.Rectangle, active bool) {
	fill := s.Fill
	if active && s.Active != nil {
		fill = s.Active
	}
	drawRect(dst, r, fill, true)
	drawRect(dst, r, s.Border, false)
}

// BoxStyle styles a value box.
type BoxStyle struct {
	Fill   color.Color
	Border color.Color
}

func (s BoxStyle) Draw(dst *ebiten.Image, r image.Rectangle, focused bool) {
	fill := s.Fill
	if focused {
		if c, ok := s.Fill.(color.RGBA); ok {
			fill = color.RGBA{c.R + (255-c.R)/8, c.G + (255-c.G)/8, c.B + (255-c.B)/8, c.A}
		}
	}
	drawRect(dst, r, fill, true)
	drawRect(dst, r, s.Border, false)
}

func fadeColor(c color.RGBA, a float64) color.Color {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.RGBA{c.R, c.G, c.B, uint8(float64(c.A) * a)}
}
