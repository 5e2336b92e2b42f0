package gimages

import (
	"evilknob/src/sprite"
	"image"
	"image/color"
	"testing"
)

func TestFrame(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 12))
	// mark the first pixel of every frame with its index
	for i := 0; i < 3; i++ {
		img.Set(0, i*4, color.RGBA{uint8(i + 1), 0, 0, 0xff})
	}
	sheet, err := sprite.NewSheet(img)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		i    int
		want uint8
	}{{0, 1}, {1, 2}, {2, 3}, {-5, 1}, {9, 3}}
	for _, tt := range tests {
		f := Frame(sheet, tt.i)
		if f.Bounds().Dx() != 4 || f.Bounds().Dy() != 4 {
			t.Fatalf("Frame(%d) bounds = %v", tt.i, f.Bounds())
		}
		r, _, _, _ := f.At(0, 0).RGBA()
		if uint8(r>>8) != tt.want {
			t.Errorf("Frame(%d) marker = %d, want %d", tt.i, r>>8, tt.want)
		}
	}

	if icons := WindowIcons(sheet); len(icons) != 1 {
		t.Errorf("WindowIcons = %d images", len(icons))
	}
	if Frame(sprite.Sheet{}, 0) != nil {
		t.Error("empty sheet produced a frame")
	}
}
