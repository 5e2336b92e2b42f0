package sprite

import (
	"errors"
	"evilknob/src/base"
	"image"
	"testing"
)

func TestNewSheet(t *testing.T) {
	s, err := NewSheet(image.NewRGBA(image.Rect(0, 0, 50, 500)))
	if err != nil {
		t.Fatalf("NewSheet error: %v", err)
	}
	if s.FrameSize() != 50 || s.FrameCount() != 10 {
		t.Errorf("FrameSize/FrameCount = %d/%d, want 50/10", s.FrameSize(), s.FrameCount())
	}

	if _, err := NewSheet(nil); !errors.Is(err, base.ErrNoSpriteSheet) {
		t.Errorf("NewSheet(nil) error = %v", err)
	}
	if _, err := NewSheet(image.NewRGBA(image.Rect(0, 0, 50, 20))); !errors.Is(err, base.ErrBadSpriteSize) {
		t.Errorf("NewSheet(50x20) error = %v", err)
	}
}

func TestFrameCountFloorsPartialFrames(t *testing.T) {
	s := Sheet{Width: 50, Height: 525}
	if got := s.FrameCount(); got != 10 {
		t.Errorf("FrameCount() = %d, want 10", got)
	}
}

func TestFrameOffsetQuarter(t *testing.T) {
	s := Sheet{Width: 50, Height: 500}
	if idx := FrameIndex(25, s.FrameCount()); idx != 2 {
		t.Errorf("FrameIndex(25) = %d, want 2", idx)
	}
	if off := s.Offset(25, base.DefaultBounds()); off != -100 {
		t.Errorf("Offset(25) = %d, want -100", off)
	}
}

func TestFrameOffsetTable(t *testing.T) {
	tests := []struct {
		name   string
		v      int
		bounds base.Bounds
		frames int
		size   int
		want   int
	}{
		{"zero", 0, base.DefaultBounds(), 10, 50, 0},
		{"full", 100, base.DefaultBounds(), 10, 50, -500},
		{"below left bound", 5, base.Bounds{Left: 20, Right: 80}, 10, 50, -100},
		{"above right bound", 95, base.Bounds{Left: 20, Right: 80}, 10, 50, -400},
		{"inside bounds", 55, base.Bounds{Left: 20, Right: 80}, 10, 50, -250},
		{"many frames", 99, base.DefaultBounds(), 101, 32, -99 * 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FrameOffset(tt.v, tt.bounds, tt.frames, tt.size); got != tt.want {
				t.Errorf("FrameOffset(%d) = %d, want %d", tt.v, got, tt.want)
			}
		})
	}
}

func TestBoundOffsetsAreExtremes(t *testing.T) {
	for _, frames := range []int{1, 7, 10, 64, 101} {
		for left := 0; left < 100; left += 7 {
			for right := left + 1; right <= 100; right += 9 {
				b := base.Bounds{Left: left, Right: right}
				lo := FrameOffset(b.Left, b, frames, 40)
				hi := FrameOffset(b.Right, b, frames, 40)
				for v := -10; v <= 110; v++ {
					off := FrameOffset(v, b, frames, 40)
					if off > lo || off < hi {
						t.Fatalf("frames=%d bounds=%v v=%d offset %d outside [%d, %d]", frames, b, v, off, hi, lo)
					}
				}
			}
		}
	}
}

func TestOffsetToIndex(t *testing.T) {
	if got := OffsetToIndex(-150, 50); got != 3 {
		t.Errorf("OffsetToIndex(-150, 50) = %d, want 3", got)
	}
	if got := OffsetToIndex(-150, 0); got != 0 {
		t.Errorf("OffsetToIndex with zero frame = %d, want 0", got)
	}
}
