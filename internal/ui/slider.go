package ui

import (
	"fmt"
	"image"
)

// Slider is a horizontal slider widget with a 0..1 value.
type Slider struct {
	r        image.Rectangle
	Value    float64
	dragging bool
}

func NewSlider(v float64) *Slider { return &Slider{Value: v} }

func (s *Slider) SetRect(r image.Rectangle) { s.r = r }

func (s *Slider) Rect() image.Rectangle { return s.r }

// Handle processes pointer interaction; it reports whether the slider
// consumed the input.
func (s *Slider) Handle(mx, my int, pressed bool) bool {
	if pressed {
		if s.dragging || image.Pt(mx, my).In(s.r) {
			s.dragging = true
			s.setFromX(mx)
			return true
		}
	} else if s.dragging {
		s.dragging = false
		return true
	}
	return false
}

func (s *Slider) setFromX(mx int) {
	w := s.r.Dx() - 1
	if w <= 0 {
		s.Value = 0
		return
	}
	pos := float64(mx - s.r.Min.X)
	if pos < 0 {
		pos = 0
	}
	if pos > float64(w) {
		pos = float64(w)
	}
	s.Value = pos / float64(w)
}

// Draw renders the slider track, knob, and percentage label.
func (s *Slider) Draw(dst *Surface) {
	trackY := float64(s.r.Min.Y + s.r.Dy()/2 - 2)
	fillBox(dst, float64(s.r.Min.X), trackY, float64(s.r.Dx()), 4, colButton)

	knobX := float64(s.r.Min.X) + s.Value*float64(s.r.Dx()-1)
	fillBox(dst, knobX-3, float64(s.r.Min.Y), 6, float64(s.r.Dy()), colButtonEdge)

	txt := fmt.Sprintf("%d%%", int(s.Value*100))
	textAt(dst, txt, s.r.Min.X, s.r.Min.Y-15)
}
