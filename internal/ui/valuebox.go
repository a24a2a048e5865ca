package ui

import (
	"image"
	"strconv"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
)

// ValueBox is an editable numeric field bound to a slider. Clicking
// focuses it and clears the text; the typed value commits when focus
// is lost. Unparsable or out-of-bounds input reverts to the previous
// value with a brief error flash.
type ValueBox struct {
	Rect   image.Rectangle
	Style  BoxStyle
	slider *Slider

	text    string
	cursor  int
	focused bool
	blink   int
	repeat  map[ebiten.Key]int

	errorAnim float64
	prev      float64
}

func NewValueBox(r image.Rectangle, s *Slider) *ValueBox {
	v := &ValueBox{
		Rect:   r,
		Style:  DefaultBox,
		slider: s,
		repeat: make(map[ebiten.Key]int),
	}
	v.setText(formatValue(s.Value()))
	return v
}

func (v *ValueBox) Focused() bool { return v.focused }

func (v *ValueBox) setText(s string) {
	v.text = s
	v.cursor = utf8.RuneCountInString(s)
}

func formatValue(f float64) string {
	return strconv.FormatFloat(f, 'g', 4, 64)
}

// Update processes mouse and keyboard input. It returns true when the
// event was consumed by the box.
func (v *ValueBox) Update() bool {
	mx, my := cursorPosition()
	consumed := false

	wasFocused := v.focused
	if isMouseButtonPressed(ebiten.MouseButtonLeft) {
		if pt(mx, my, v.Rect) {
			v.focused = true
			consumed = true
		} else {
			v.focused = false
		}
	}

	switch {
	case !wasFocused && v.focused:
		v.prev = v.slider.Value()
		v.setText("")
	case wasFocused && !v.focused:
		v.commit()
	}

	if v.focused {
		v.edit()
	} else {
		// track the live value while not being edited
		v.setText(formatValue(v.slider.Value()))
	}

	v.errorAnim *= 0.85
	if v.errorAnim < 0.01 {
		v.errorAnim = 0
	}
	return consumed
}

// commit parses the text and pushes it into the slider, clamped to its
// bounds. Empty input restores the value held before focus.
func (v *ValueBox) commit() {
	txt := v.text
	if txt == "" {
		v.slider.SetValue(v.prev)
		v.setText(formatValue(v.slider.Value()))
		return
	}
	f, err := strconv.ParseFloat(txt, 64)
	b := v.slider.Config().Bounds
	if err != nil || f != b.Clamp(f) {
		v.errorAnim = 1
		v.slider.SetValue(v.prev)
	} else {
		v.slider.SetValue(f)
	}
	v.setText(formatValue(v.slider.Value()))
}

func (v *ValueBox) edit() {
	v.blink++
	if v.blink > 60 {
		v.blink = 0
	}

	if chars := inputChars(); len(chars) > 0 {
		for _, r := range chars {
			if r == '\n' || r == '\r' {
				continue
			}
			before := v.text[:byteIndex(v.text, v.cursor)]
			after := v.text[byteIndex(v.text, v.cursor):]
			v.text = before + string(r) + after
			v.cursor++
		}
	}

	if v.keyRepeat(ebiten.KeyBackspace) {
		if v.cursor > 0 {
			bi := byteIndex(v.text, v.cursor)
			prev := byteIndex(v.text, v.cursor-1)
			v.text = v.text[:prev] + v.text[bi:]
			v.cursor--
		}
	}
	if v.keyRepeat(ebiten.KeyLeft) && v.cursor > 0 {
		v.cursor--
	}
	if v.keyRepeat(ebiten.KeyRight) && v.cursor < utf8.RuneCountInString(v.text) {
		v.cursor++
	}
}

func (v *ValueBox) keyRepeat(k ebiten.Key) bool {
	if isKeyPressed(k) {
		v.repeat[k]++
		d := v.repeat[k]
		if d == 1 || d > 15 && (d-15)%3 == 0 {
			return true
		}
	} else {
		v.repeat[k] = 0
	}
	return false
}

// byteIndex returns the byte index of rune i in s.
func byteIndex(s string, i int) int {
	if i <= 0 {
		return 0
	}
	bi := 0
	for n := 0; n < i && bi < len(s); n++ {
		_, sz := utf8.DecodeRuneInString(s[bi:])
		bi += sz
	}
	return bi
}

// visibleText returns the suffix that fits in the box and the index of
// the first rune shown.
func (v *ValueBox) visibleText() (string, int) {
	pad := 4
	maxRunes := (v.Rect.Dx() - pad*2) / debugCharW
	total := utf8.RuneCountInString(v.text)
	start := 0
	if maxRunes > 0 && total > maxRunes {
		start = total - maxRunes
	}
	bi := byteIndex(v.text, start)
	return v.text[bi:], start
}

// Draw renders the box, its text, the blink cursor, and any error
// flash outline.
func (v *ValueBox) Draw(dst *ebiten.Image) {
	v.Style.Draw(dst, v.Rect, v.focused)
	txt, start := v.visibleText()
	drawLabel(dst, txt, v.Rect.Min.X+4, v.Rect.Min.Y+4)
	if v.focused && v.blink < 30 {
		cx := v.Rect.Min.X + 4 + debugCharW*(v.cursor-start)
		cy := v.Rect.Min.Y + 4
		drawLine(dst, cx, cy, cx, cy+debugCharH-2, colThumb)
	}
	if v.errorAnim > 0 {
		drawRect(dst, v.Rect, fadeColor(colError, v.errorAnim), false)
	}
}
