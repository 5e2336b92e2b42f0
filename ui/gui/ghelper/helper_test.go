package ghelper

import (
	"testing"
)

func TestPointInRect(t *testing.T) {
	if !PointInRect(10, 10, 10, 10, 5, 5) {
		t.Error("top-left corner should be inside")
	}
	if PointInRect(15, 12, 10, 10, 5, 5) {
		t.Error("right edge should be outside")
	}
}

func TestButtonClickNeedsPressAndReleaseInside(t *testing.T) {
	b := &Button{X: 0, Y: 0, W: 100, H: 40, Scale: 1, TargetScale: 1}

	if b.HandleInput(10, 10, true, false) {
		t.Fatal("press alone reported a click")
	}
	if !b.Pressed {
		t.Fatal("press inside did not arm the button")
	}
	if !b.HandleInput(20, 20, false, true) {
		t.Error("release inside did not click")
	}

	b.HandleInput(10, 10, true, false)
	if b.HandleInput(500, 500, false, true) {
		t.Error("release outside clicked")
	}
	if b.Pressed {
		t.Error("button stays pressed after release outside")
	}

	if b.HandleInput(500, 500, true, false); b.Pressed {
		t.Error("press outside armed the button")
	}
}

func TestButtonAnimationApproachesTarget(t *testing.T) {
	b := &Button{W: 10, H: 10, Scale: 1, TargetScale: 0.96}
	for i := 0; i < 120; i++ {
		b.UpdateAnim(1.0 / 60)
	}
	if d := b.Scale - 0.96; d > 0.001 || d < -0.001 {
		t.Errorf("Scale = %v, want about 0.96", b.Scale)
	}
}
