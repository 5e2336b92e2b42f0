package gstrip

import (
	"evilknob/src/sprite"
	"image"
	"math"
	"path/filepath"
	"testing"
)

func TestRenderDimensions(t *testing.T) {
	img, err := Render(48, 101, DefaultStyle)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	sheet, err := sprite.NewSheet(img)
	if err != nil {
		t.Fatalf("NewSheet error: %v", err)
	}
	if sheet.FrameSize() != 48 || sheet.FrameCount() != 101 {
		t.Errorf("frame size/count = %d/%d", sheet.FrameSize(), sheet.FrameCount())
	}
}

func TestRenderRejectsTinyStrips(t *testing.T) {
	if _, err := Render(4, 10, DefaultStyle); err == nil {
		t.Error("4px strip accepted")
	}
	if _, err := Render(32, 0, DefaultStyle); err == nil {
		t.Error("zero frames accepted")
	}
}

func TestFrameAngle(t *testing.T) {
	if a := FrameAngle(50, 100); math.Abs(a) > 1e-9 {
		t.Errorf("middle frame angle = %v, want 0", a)
	}
	if a := FrameAngle(0, 100); a >= 0 || a < -math.Pi {
		t.Errorf("first frame angle = %v", a)
	}
	if a := FrameAngle(100, 101); a <= 0 || a > math.Pi {
		t.Errorf("last frame angle = %v", a)
	}
}

func TestIndicatorMovesBetweenFrames(t *testing.T) {
	const size = 64
	img, err := Render(size, 3, DefaultStyle)
	if err != nil {
		t.Fatal(err)
	}
	frame := func(i int) image.Image {
		return img.(interface {
			SubImage(image.Rectangle) image.Image
		}).SubImage(image.Rect(0, i*size, size, (i+1)*size))
	}
	same := true
	a, b := frame(0), frame(1)
	for y := 0; y < size && same; y++ {
		for x := 0; x < size; x++ {
			r1, g1, b1, _ := a.At(x, y).RGBA()
			r2, g2, b2, _ := b.At(x, y+size).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("frames 0 and 1 are identical")
	}
}

func TestSave(t *testing.T) {
	img, err := Render(16, 4, DefaultStyle)
	if err != nil {
		t.Fatal(err)
	}
	if err := Save(filepath.Join(t.TempDir(), "strip.png"), img); err != nil {
		t.Errorf("Save error: %v", err)
	}
}
