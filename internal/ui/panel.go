package ui

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	glog "github.com/zoltanbognar/sliders/internal/log"
)

const (
	rowHeight = 36
	rowPad    = 6
	labelW    = 90
	boxW      = 70
)

// Row pairs a labelled slider with its value box.
type Row struct {
	Label  string
	Slider *Slider
	Box    *ValueBox
}

// Panel stacks labelled slider rows in a column. Row geometry is
// recomputed from the panel bounds on every SetBounds call, so nothing
// layout-derived survives a resize.
type Panel struct {
	Bounds image.Rectangle
	rows   []*Row
	logger *glog.Logger
}

func NewPanel(logger *glog.Logger) *Panel {
	return &Panel{logger: logger.Tagged("panel")}
}

func (p *Panel) Rows() []*Row { return p.rows }

// AddRow appends a labelled slider and wires a value box plus commit
// logging to it.
func (p *Panel) AddRow(label string, s *Slider) *Row {
	row := &Row{Label: label, Slider: s, Box: NewValueBox(image.Rectangle{}, s)}
	prevEditing := s.OnEditing
	s.OnEditing = func(on bool) {
		if !on {
			p.logger.Debugf("%s committed %.4g", label, s.Value())
		}
		if prevEditing != nil {
			prevEditing(on)
		}
	}
	p.rows = append(p.rows, row)
	p.layout()
	return row
}

// SetBounds installs the panel rectangle and lays the rows out again.
func (p *Panel) SetBounds(r image.Rectangle) {
	p.Bounds = r
	p.layout()
}

func (p *Panel) layout() {
	y := p.Bounds.Min.Y + rowPad
	for _, row := range p.rows {
		sliderL := p.Bounds.Min.X + labelW
		sliderR := p.Bounds.Max.X - boxW - 2*rowPad
		if sliderR < sliderL {
			sliderR = sliderL
		}
		row.Slider.SetRect(image.Rect(sliderL, y, sliderR, y+rowHeight-rowPad))
		row.Box.Rect = image.Rect(sliderR+rowPad, y+4, p.Bounds.Max.X-rowPad, y+rowHeight-rowPad-4)
		y += rowHeight
	}
}

func (p *Panel) Update() {
	for _, row := range p.rows {
		row.Box.Update()
		row.Slider.Update()
	}
}

func (p *Panel) Draw(dst *ebiten.Image) {
	for _, row := range p.rows {
		r := row.Slider.Rect()
		drawLabel(dst, row.Label, p.Bounds.Min.X+rowPad, r.Min.Y+r.Dy()/2-debugCharH/2)
		row.Slider.Draw(dst)
		row.Box.Draw(dst)
	}
}
