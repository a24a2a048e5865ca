package ui

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Axis selects a slider's primary direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

const (
	defaultThumbSize = 10 // thumb extent along the primary axis, px
	railThickness    = 4  // rail extent across the primary axis, px
)

type dragTarget int

const (
	dragNone dragTarget = iota
	dragTrack
	dragThumb
)

// Slider is an interactive bounded-value widget. The gesture and
// geometry work runs through its Controller; the widget only owns the
// rectangle, the axis, and the pluggable track/thumb appearance.
//
// Pressing the thumb and dragging adjusts the value while preserving
// the grab point. With Config.InteractiveTrack set, pressing anywhere
// on the track jumps the value there. Scrolling over the slider nudges
// the value by one step per tick.
type Slider struct {
	r    image.Rectangle
	axis Axis
	ctrl *Controller

	track Renderable
	thumb Renderable

	thumbSize int
	inverted  bool

	dragging dragTarget

	OnChange  func(float64)
	OnEditing func(bool)
}

func NewSlider(cfg Config) *Slider {
	s := &Slider{
		ctrl:      NewController(cfg),
		track:     DefaultTrack,
		thumb:     DefaultThumb,
		thumbSize: defaultThumbSize,
	}
	s.ctrl.OnChange = func(v float64) {
		if s.OnChange != nil {
			s.OnChange(v)
		}
	}
	s.ctrl.OnEditing = func(on bool) {
		if s.OnEditing != nil {
			s.OnEditing(on)
		}
	}
	return s
}

func (s *Slider) Rect() image.Rectangle { return s.r }
func (s *Slider) Axis() Axis            { return s.axis }
func (s *Slider) Value() float64        { return s.ctrl.Value() }
func (s *Slider) SetValue(v float64)    { s.ctrl.SetValue(v) }
func (s *Slider) Editing() bool         { return s.ctrl.Editing() }
func (s *Slider) Config() Config        { return s.ctrl.Config() }

// Controller exposes the underlying gesture controller, for callers
// that feed pointer events directly instead of using Update.
func (s *Slider) Controller() *Controller { return s.ctrl }

// SetRect installs the widget rectangle for this layout pass and
// refreshes the controller's geometry.
func (s *Slider) SetRect(r image.Rectangle) {
	s.r = r
	s.refreshGeometry()
}

// SetAxis switches between horizontal and vertical orientation.
func (s *Slider) SetAxis(a Axis) {
	s.axis = a
	s.refreshGeometry()
}

// SetInverted mirrors the axis: right-to-left for horizontal sliders,
// bottom-to-top for vertical ones.
func (s *Slider) SetInverted(inv bool) {
	s.inverted = inv
	s.refreshGeometry()
}

func (s *Slider) SetConfig(cfg Config) { s.ctrl.SetConfig(cfg) }

// SetStyles replaces the track and thumb appearance. A nil argument
// keeps the current one.
func (s *Slider) SetStyles(track, thumb Renderable) {
	if track != nil {
		s.track = track
	}
	if thumb != nil {
		s.thumb = thumb
	}
}

// SetThumbSize sets the thumb's extent along the primary axis. The
// insets follow it so the thumb's center stays on the rail.
func (s *Slider) SetThumbSize(px int) {
	if px < 2 {
		px = 2
	}
	s.thumbSize = px
	s.refreshGeometry()
}

func (s *Slider) refreshGeometry() {
	half := float64(s.thumbSize) / 2
	s.ctrl.SetGeometry(Geometry{
		Span:     float64(s.span()),
		Insets:   Insets{Leading: half, Trailing: half},
		Inverted: s.inverted,
	})
}

func (s *Slider) span() int {
	if s.axis == Vertical {
		return s.r.Dy()
	}
	return s.r.Dx()
}

// primary returns the cursor offset along the main axis, relative to
// the rect origin.
func (s *Slider) primary(mx, my int) float64 {
	if s.axis == Vertical {
		return float64(my - s.r.Min.Y)
	}
	return float64(mx - s.r.Min.X)
}

func (s *Slider) thumbRect() image.Rectangle {
	d := int(math.Round(s.ctrl.ThumbDistance()))
	half := s.thumbSize / 2
	if s.axis == Vertical {
		cy := s.r.Min.Y + d
		return image.Rect(s.r.Min.X, cy-half, s.r.Max.X, cy+s.thumbSize-half)
	}
	cx := s.r.Min.X + d
	return image.Rect(cx-half, s.r.Min.Y, cx+s.thumbSize-half, s.r.Max.Y)
}

func (s *Slider) railRect() image.Rectangle {
	if s.axis == Vertical {
		cx := s.r.Min.X + s.r.Dx()/2
		return image.Rect(cx-railThickness/2, s.r.Min.Y, cx+railThickness/2, s.r.Max.Y)
	}
	cy := s.r.Min.Y + s.r.Dy()/2
	return image.Rect(s.r.Min.X, cy-railThickness/2, s.r.Max.X, cy+railThickness/2)
}

// Handle processes one frame of mouse state and reports whether the
// slider consumed it. The thumb hit-region wins over the track region;
// a drag keeps its target until release, even when the cursor leaves
// the rectangle.
func (s *Slider) Handle(mx, my int, pressed bool) bool {
	pos := s.primary(mx, my)
	if pressed {
		switch s.dragging {
		case dragNone:
			switch {
			case pt(mx, my, s.thumbRect()):
				s.dragging = dragThumb
				s.ctrl.HandleThumb(PointerEvent{Phase: PhaseStart, Position: pos})
			case pt(mx, my, s.r) && s.ctrl.Config().InteractiveTrack:
				s.dragging = dragTrack
				s.ctrl.HandleTrack(PointerEvent{Phase: PhaseStart, Position: pos})
			default:
				return false
			}
		case dragTrack:
			s.ctrl.HandleTrack(PointerEvent{Phase: PhaseMove, Position: pos})
		case dragThumb:
			s.ctrl.HandleThumb(PointerEvent{Phase: PhaseMove, Position: pos})
		}
		return true
	}
	switch s.dragging {
	case dragTrack:
		s.ctrl.HandleTrack(PointerEvent{Phase: PhaseEnd, Position: pos})
	case dragThumb:
		s.ctrl.HandleThumb(PointerEvent{Phase: PhaseEnd, Position: pos})
	default:
		return false
	}
	s.dragging = dragNone
	return true
}

// Cancel aborts any in-flight drag as if the pointer was released.
func (s *Slider) Cancel() {
	switch s.dragging {
	case dragTrack:
		s.ctrl.HandleTrack(PointerEvent{Phase: PhaseCancel})
	case dragThumb:
		s.ctrl.HandleThumb(PointerEvent{Phase: PhaseCancel})
	}
	s.dragging = dragNone
}

// Update polls mouse state and feeds Handle, plus wheel nudges while
// the cursor hovers the slider.
func (s *Slider) Update() bool {
	mx, my := cursorPosition()
	consumed := s.Handle(mx, my, isMouseButtonPressed(ebiten.MouseButtonLeft))
	if _, dy := wheel(); dy != 0 && s.dragging == dragNone && pt(mx, my, s.r) {
		s.Nudge(int(math.Round(dy)))
		consumed = true
	}
	return consumed
}

// Nudge moves the value by ticks steps; without a configured step one
// tick is 1% of the range.
func (s *Slider) Nudge(ticks int) {
	cfg := s.ctrl.Config()
	step := cfg.Step
	if step <= 0 {
		step = cfg.Bounds.Length() / 100
	}
	s.ctrl.SetValue(s.ctrl.Value() + float64(ticks)*step)
}

// Draw renders the rail then the thumb.
func (s *Slider) Draw(dst *ebiten.Image) {
	active := s.ctrl.Editing()
	s.track.Draw(dst, s.railRect(), active)
	s.thumb.Draw(dst, s.thumbRect(), active)
}
