package base

import (
	"errors"
	"testing"
)

func TestNewBoundsDefaults(t *testing.T) {
	b, err := NewBounds(0, 0)
	if err != nil {
		t.Fatalf("NewBounds(0, 0) error: %v", err)
	}
	if b != DefaultBounds() {
		t.Errorf("NewBounds(0, 0) = %v, want %v", b, DefaultBounds())
	}

	b, err = NewBounds(20, 0)
	if err != nil {
		t.Fatalf("NewBounds(20, 0) error: %v", err)
	}
	if b.Right != ValueMax {
		t.Errorf("unset right bound = %d, want %d", b.Right, ValueMax)
	}
}

func TestNewBoundsRejectsInverted(t *testing.T) {
	for _, tt := range []struct{ left, right int }{{60, 50}, {50, 50}, {100, 0}} {
		if _, err := NewBounds(tt.left, tt.right); !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("NewBounds(%d, %d) error = %v, want ErrInvalidBounds", tt.left, tt.right, err)
		}
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Left: 20, Right: 80}
	tests := map[int]int{-5: 20, 20: 20, 50: 50, 80: 80, 120: 80}
	for in, want := range tests {
		if got := b.Clamp(in); got != want {
			t.Errorf("Clamp(%d) = %d, want %d", in, got, want)
		}
	}
	if b.Span() != 60 {
		t.Errorf("Span() = %d, want 60", b.Span())
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{Left: 100, Top: 40, Width: 50, Height: 50}
	if c := r.Center(); c != (Point{X: 125, Y: 65}) {
		t.Errorf("Center() = %+v", c)
	}
	if !r.Contains(Point{X: 100, Y: 40}) || r.Contains(Point{X: 150, Y: 65}) {
		t.Error("Contains() edge handling is wrong")
	}
}
