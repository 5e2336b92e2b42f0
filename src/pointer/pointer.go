package pointer

import (
	"evilknob/src/base"
	"math"
)

type DragState int

const (
	Idle DragState = iota
	Dragging
)

func (d DragState) String() string {
	switch d {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	default:
	}
	return "invalid"
}

// Target is what a drag drives: the knob geometry and its value
type Target interface {
	Center() base.Point
	Radius() float64
	// Update gets an interactive candidate and reports whether it was committed
	Update(candidate int) bool
}

// Controller turns pointer events in page coordinates into candidate values.
// Move and Release are meant to be delivered at window scope, so a drag that
// leaves the surface keeps tracking and always ends.
type Controller struct {
	target Target
	state  DragState
	// called after every committed candidate
	onCommit func()
}

func NewController(t Target, onCommit func()) *Controller {
	return &Controller{target: t, state: Idle, onCommit: onCommit}
}

func (c *Controller) State() DragState {
	return c.state
}

func (c *Controller) IsDragging() bool {
	return c.state == Dragging
}

// Press starts a drag when p lies inside the knob circle and returns whether it did
func (c *Controller) Press(p base.Point) bool {
	center := c.target.Center()
	x := p.X - center.X
	y := -(p.Y - center.Y)
	if math.Sqrt(x*x+y*y) > c.target.Radius() {
		c.state = Idle
		return false
	}
	c.state = Dragging
	c.update(p)
	return true
}

func (c *Controller) Move(p base.Point) {
	if c.state != Dragging {
		return
	}
	c.update(p)
}

func (c *Controller) Release() {
	c.state = Idle
}

func (c *Controller) update(p base.Point) {
	v := Candidate(c.target.Center(), p)
	if c.target.Update(v) && c.onCommit != nil {
		c.onCommit()
	}
}

// Angle is the pointer angle in turns, 0 straight up, growing clockwise,
// wrapping at +-0.5 straight down
func Angle(center, p base.Point) float64 {
	x := p.X - center.X
	y := -(p.Y - center.Y)
	return math.Atan2(x, y) / math.Pi / 2
}

// Candidate maps the pointer angle onto 0..100 with 50 straight up, truncating toward zero
func Candidate(center, p base.Point) int {
	return int(101*Angle(center, p) + 50)
}
