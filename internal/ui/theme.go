package ui

import "image/color"

var (
	colTrack       = color.RGBA{80, 80, 80, 255}
	colTrackActive = color.RGBA{95, 95, 110, 255}
	colTrackBorder = color.RGBA{60, 60, 60, 255}

	colThumb       = color.RGBA{200, 200, 200, 255}
	colThumbActive = color.RGBA{240, 240, 240, 255}
	colThumbBorder = color.RGBA{240, 240, 240, 255}

	colBoxFill   = color.RGBA{40, 40, 40, 255}
	colBoxBorder = color.RGBA{120, 120, 120, 255}
	colError     = color.RGBA{200, 40, 40, 255}
)

// Default appearances; sliders use these unless SetStyles is called.
var (
	DefaultTrack Renderable = TrackStyle{Fill: colTrack, Active: colTrackActive, Border: colTrackBorder}
	DefaultThumb Renderable = ThumbStyle{Fill: colThumb, Active: colThumbActive, Border: colThumbBorder}

	DefaultBox = BoxStyle{Fill: colBoxFill, Border: colBoxBorder}
)
