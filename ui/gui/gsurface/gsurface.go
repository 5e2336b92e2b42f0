package gsurface

import (
	"evilknob/src/base"
	"evilknob/src/events"
	"evilknob/src/sprite"
	"evilknob/ui/gui/gbase"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

type frameKey struct {
	src     image.Image
	yOffset int
}

// Surface is an offscreen ebiten canvas placed somewhere in the window
type Surface struct {
	target *events.Target
	x, y   float64
	w, h   int
	canvas *ebiten.Image
	// frames cut out of sprite strips, strips can exceed the texture limit
	frames map[frameKey]*ebiten.Image
}

func New(name string, parent *events.Target) *Surface {
	t := events.NewTarget(name)
	t.SetParent(parent)
	return &Surface{
		target: t,
		w:      gbase.DefaultSurfaceW,
		h:      gbase.DefaultSurfaceH,
		frames: make(map[frameKey]*ebiten.Image),
	}
}

func (s *Surface) Box() base.Rect {
	return base.Rect{Left: s.x, Top: s.y, Width: float64(s.w), Height: float64(s.h)}
}

func (s *Surface) SetPosition(x, y float64) {
	s.x, s.y = x, y
}

func (s *Surface) Size() (int, int) {
	return s.w, s.h
}

func (s *Surface) SetSize(w, h int) {
	if w == s.w && h == s.h && s.canvas != nil {
		return
	}
	s.w, s.h = w, h
	if s.canvas != nil {
		s.canvas.Deallocate()
	}
	s.canvas = ebiten.NewImage(w, h)
}

func (s *Surface) Clear() {
	if s.canvas != nil {
		s.canvas.Clear()
	}
}

// DrawSprite draws the strip shifted up by -yOffset, only the frame under the canvas is uploaded
func (s *Surface) DrawSprite(sheet sprite.Sheet, yOffset int) {
	if s.canvas == nil || sheet.Image == nil {
		return
	}
	frame := s.frame(sheet, yOffset)
	if frame == nil {
		return
	}
	s.canvas.DrawImage(frame, nil)
}

func (s *Surface) frame(sheet sprite.Sheet, yOffset int) *ebiten.Image {
	key := frameKey{src: sheet.Image, yOffset: yOffset}
	if f, ok := s.frames[key]; ok {
		return f
	}
	b := sheet.Image.Bounds()
	r := image.Rect(b.Min.X, b.Min.Y-yOffset, b.Min.X+s.w, b.Min.Y-yOffset+s.h).Intersect(b)
	if r.Empty() {
		return nil
	}
	var img image.Image = sheet.Image
	if si, ok := sheet.Image.(subImager); ok {
		img = si.SubImage(r)
	}
	f := ebiten.NewImageFromImage(img)
	s.frames[key] = f
	return f
}

func (s *Surface) Events() *events.Target {
	return s.target
}

func (s *Surface) Draw(screen *ebiten.Image) {
	if s.canvas == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(s.x, s.y)
	screen.DrawImage(s.canvas, op)
}
