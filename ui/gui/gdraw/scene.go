package gdraw

import (
	"evilknob/ui/gui/gctx"

	"github.com/hajimehoshi/ebiten/v2"
)

// ---- Scene ----

type Scene interface {
	Update(ctx *gctx.GUIContext) error
	Draw(ctx *gctx.GUIContext, screen *ebiten.Image)
}
