package gimages

import (
	"evilknob/src/sprite"
	"image"
	"image/draw"
)

// Frame copies frame i of a sprite strip into its own image
func Frame(sheet sprite.Sheet, i int) image.Image {
	size := sheet.FrameSize()
	n := sheet.FrameCount()
	if size == 0 || n == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= n {
		i = n - 1
	}
	b := sheet.Image.Bounds()
	src := image.Pt(b.Min.X, b.Min.Y+i*size)
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), sheet.Image, src, draw.Src)
	return dst
}

// WindowIcons is the middle frame of the strip, for ebiten.SetWindowIcon
func WindowIcons(sheet sprite.Sheet) []image.Image {
	f := Frame(sheet, sheet.FrameCount()/2)
	if f == nil {
		return nil
	}
	return []image.Image{f}
}
