package base

import (
	"errors"
	"fmt"
	"time"
)

// ---- Value range ----

const (
	ValueMin     int = 0
	ValueMax     int = 100
	ValueInitial int = 50

	// |lastPosition - position| at or above this is treated as pointer noise
	JumpThreshold int = 50
)

// ---- Timing ----

const (
	// wait after the sprite sheet loaded before the layout is trusted
	DefaultSettleDelay = 10 * time.Millisecond
)

// ---- Events ----

const EventValueChanged string = "potValueChanged"

// ---- Errors ----

var (
	ErrInvalidBounds = errors.New("left bound must be lower than the right bound")
	ErrNoSurface     = errors.New("surface is not set")
	ErrNoSpriteSheet = errors.New("sprite sheet is not set")
	ErrBadSpriteSize = errors.New("sprite sheet must be at least one square frame")
)

// ---- Bounds ----

// Bounds is the sub-range of the nominal 0..100 scale a knob can reach
type Bounds struct {
	Left  int
	Right int
}

func DefaultBounds() Bounds {
	return Bounds{Left: ValueMin, Right: ValueMax}
}

// NewBounds applies the defaults for unset bounds. A zero right bound means
// "unset" and becomes 100.
func NewBounds(left, right int) (Bounds, error) {
	if right == 0 {
		right = ValueMax
	}
	b := Bounds{Left: left, Right: right}
	if err := b.Validate(); err != nil {
		return Bounds{}, err
	}
	return b, nil
}

func (b Bounds) Validate() error {
	if b.Left >= b.Right {
		return fmt.Errorf("bounds [%d, %d]: %w", b.Left, b.Right, ErrInvalidBounds)
	}
	return nil
}

func (b Bounds) Clamp(v int) int {
	return Clamp(v, b.Left, b.Right)
}

func (b Bounds) Span() int {
	return b.Right - b.Left
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%d, %d]", b.Left, b.Right)
}

func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func ClampValue(v int) int {
	return Clamp(v, ValueMin, ValueMax)
}

// ---- Geometry ----

type Point struct {
	X float64
	Y float64
}

// Rect is a layout box in page (window) coordinates
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}
