package ghelper

import (
	"evilknob/ui/gui/gbase"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// ---- UI ELEMENTS ----

// ---- Button ----

type Button struct {
	Label      string
	X, Y, W, H int
	Image      *ebiten.Image // pre-rendered rounded rect with stroke

	Hover   bool // mouse over
	Pressed bool // mouse currently pressed on this button
	// animation variables
	Scale       float64 // current scale (1.0 default)
	TargetScale float64
	AnimSpeed   float64 // how fast to approach target (per second)
}

func NewButton(label string, x, y, w, h int, theme gbase.Palette) *Button {
	b := &Button{Label: label, X: x, Y: y, W: w, H: h, Scale: 1, TargetScale: 1}
	b.Restyle(theme)
	return b
}

func (b *Button) Restyle(theme gbase.Palette) {
	b.Image = RenderRoundedRect(b.W, b.H, 12, theme.ButtonFill, theme.ButtonStroke, 2)
}

func (b *Button) Contains(px, py int) bool {
	return PointInRect(px, py, b.X, b.Y, b.W, b.H)
}

// Call every Update: pass mouse info, returns true if click finished on this button
func (b *Button) HandleInput(px, py int, justClicked, justReleased bool) bool {
	inside := b.Contains(px, py)
	b.Hover = inside

	if justClicked && inside {
		b.Pressed = true
		b.TargetScale = 0.96
	}
	if justReleased {
		clicked := b.Pressed && inside
		b.Pressed = false
		b.TargetScale = 1.0
		if clicked {
			return true
		}
	}
	if inside && !b.Pressed {
		b.TargetScale = 1.02
	} else if !b.Pressed {
		b.TargetScale = 1.0
	}
	return false
}

// Call every Update with dt seconds to approach the target scale
func (b *Button) UpdateAnim(dt float64) {
	if b.AnimSpeed <= 0 {
		b.AnimSpeed = 8.0
	}
	t := 1.0 - math.Exp(-b.AnimSpeed*dt)
	b.Scale = b.Scale*(1.0-t) + b.TargetScale*t
}

func (b *Button) DrawAnimated(screen *ebiten.Image, face font.Face, theme gbase.Palette) {
	if b.Image == nil {
		return
	}
	cx := float64(b.X + b.W/2)
	cy := float64(b.Y + b.H/2)

	// scaled around center
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Image.Bounds().Dx())/2, -float64(b.Image.Bounds().Dy())/2)
	op.GeoM.Scale(b.Scale, b.Scale)
	op.GeoM.Translate(cx, cy)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(b.Image, op)

	bounds := text.BoundString(face, b.Label)
	tx := int(cx) - bounds.Dx()/2
	ty := int(cy) + bounds.Dy()/2
	text.Draw(screen, b.Label, face, tx, ty, theme.ButtonText)
}
