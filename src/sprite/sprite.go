package sprite

import (
	"evilknob/src/base"
	"fmt"
	"image"
)

// Sheet is a strip of square frames stacked vertically, one frame per knob angle
type Sheet struct {
	Image  image.Image
	Width  int
	Height int
}

func NewSheet(img image.Image) (Sheet, error) {
	if img == nil {
		return Sheet{}, base.ErrNoSpriteSheet
	}
	b := img.Bounds()
	s := Sheet{Image: img, Width: b.Dx(), Height: b.Dy()}
	if s.Width <= 0 || s.Height < s.Width {
		return Sheet{}, fmt.Errorf("sprite sheet %dx%d: %w", s.Width, s.Height, base.ErrBadSpriteSize)
	}
	return s, nil
}

// FrameSize is the edge length of one square frame
func (s Sheet) FrameSize() int {
	return s.Width
}

// FrameCount floors a fractional height/width ratio, a trailing partial frame is never shown
func (s Sheet) FrameCount() int {
	if s.Width <= 0 {
		return 0
	}
	return s.Height / s.Width
}

func (s Sheet) Offset(v int, b base.Bounds) int {
	return FrameOffset(v, b, s.FrameCount(), s.FrameSize())
}

// FrameIndex truncates v/100*frameCount toward zero
func FrameIndex(v int, frameCount int) int {
	f := float64(v) / 100
	return int(f * float64(frameCount))
}

// FrameOffset maps a value to the vertical offset of its frame in the strip.
// The value is clamped to the bounds first, then the offset itself is clamped
// between the offsets of both bounds.
func FrameOffset(v int, b base.Bounds, frameCount, frameSize int) int {
	v = b.Clamp(v)
	offset := -(FrameIndex(v, frameCount) * frameSize)

	leftOffset := -(FrameIndex(b.Left, frameCount) * frameSize)
	rightOffset := -(FrameIndex(b.Right, frameCount) * frameSize)
	if offset > leftOffset {
		offset = leftOffset
	} else if offset < rightOffset {
		offset = rightOffset
	}
	return offset
}

// OffsetToIndex is the inverse of the offset step, used by renderers and logs
func OffsetToIndex(offset, frameSize int) int {
	if frameSize <= 0 {
		return 0
	}
	return -offset / frameSize
}
