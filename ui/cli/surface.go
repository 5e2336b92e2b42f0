package cli

import (
	"evilknob/src/base"
	"evilknob/src/events"
	"evilknob/src/sprite"
)

// TextSurface is a knob surface without pixels, it remembers the frame offset
// the knob asked for so the terminal can print it.
type TextSurface struct {
	target *events.Target
	w, h   int
	offset int
	drawn  bool
	draws  int
}

func NewTextSurface(name string, parent *events.Target) *TextSurface {
	t := events.NewTarget(name)
	t.SetParent(parent)
	return &TextSurface{target: t, w: 300, h: 150}
}

func (s *TextSurface) Box() base.Rect {
	return base.Rect{Width: float64(s.w), Height: float64(s.h)}
}

func (s *TextSurface) SetSize(w, h int) {
	s.w, s.h = w, h
}

func (s *TextSurface) Clear() {
	s.drawn = false
}

func (s *TextSurface) DrawSprite(_ sprite.Sheet, yOffset int) {
	s.offset = yOffset
	s.drawn = true
	s.draws++
}

func (s *TextSurface) Events() *events.Target {
	return s.target
}

// Offset is the last frame offset, ok is false when nothing is drawn
func (s *TextSurface) Offset() (offset int, ok bool) {
	return s.offset, s.drawn
}

// Draws counts DrawSprite calls
func (s *TextSurface) Draws() int {
	return s.draws
}
