package value

import (
	"evilknob/src/base"
)

// DrawFunc redraws the knob for a bound-clamped raw value
type DrawFunc func(raw int)

// State owns the displayed value of one knob.
// lastPosition is always the value last committed to the surface.
type State struct {
	bounds       base.Bounds
	position     int
	lastPosition int
}

func NewState(b base.Bounds) *State {
	return &State{bounds: b, position: base.ValueInitial, lastPosition: base.ValueInitial}
}

func (s *State) Bounds() base.Bounds {
	return s.bounds
}

func (s *State) Position() int {
	return s.position
}

func (s *State) LastPosition() int {
	return s.lastPosition
}

// Reset puts both positions at v without drawing, used once the knob is ready
func (s *State) Reset(v int) {
	s.position = v
	s.lastPosition = v
}

// Requantize maps a raw value limited to the bounds back onto the 0..100 scale
func Requantize(raw int, b base.Bounds) int {
	raw = b.Clamp(raw)
	return (raw - b.Left) * base.ValueMax / b.Span()
}

// IsJump reports whether moving from last to next is too large for a pointer drag
func IsJump(last, next int) bool {
	d := last - next
	if d < 0 {
		d = -d
	}
	return d >= base.JumpThreshold
}

// Apply feeds a candidate value into the state. Interactive candidates that
// jump too far are rejected and leave the state as it was. draw receives the
// bound-clamped raw value only when the candidate is committed.
func (s *State) Apply(raw int, interactive bool, draw DrawFunc) bool {
	clamped := s.bounds.Clamp(raw)
	s.position = Requantize(clamped, s.bounds)

	if interactive && IsJump(s.lastPosition, s.position) {
		s.position = s.lastPosition
		return false
	}

	if draw != nil {
		draw(clamped)
	}
	s.lastPosition = s.position
	return true
}
