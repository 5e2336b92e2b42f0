package gui

import (
	"errors"
	"evilknob/src/logx"
	"evilknob/src/store"
	"evilknob/ui/gui/gbase"
	"evilknob/ui/gui/gbase/gconf"
	"evilknob/ui/gui/gctx"
	"evilknob/ui/gui/gdraw"
	"evilknob/ui/gui/ghelper/gimages"
	"evilknob/ui/gui/gpanel"

	"github.com/hajimehoshi/ebiten/v2"
)

type GUIProcessing struct {
	current gdraw.Scene
	ctx     *gctx.GUIContext
}

func NewGUI(c *gconf.Config, p *gpanel.Panel, st *store.Store, l logx.Logger) (*GUIProcessing, error) {
	ctx, err := gctx.NewGUIContext(c, p, st, l)
	if err != nil {
		return nil, err
	}
	return &GUIProcessing{
		current: gdraw.NewGUIPanelDrawer(ctx),
		ctx:     ctx,
	}, nil
}

func (gp *GUIProcessing) Run() error {
	ebiten.SetWindowSize(gp.ctx.Config.WindowW, gp.ctx.Config.WindowH)
	ebiten.SetWindowTitle(gp.ctx.Panel.Title)
	ebiten.SetWindowIcon(gimages.WindowIcons(gp.ctx.Strip))
	err := ebiten.RunGame(gp)
	if errors.Is(err, gbase.ErrExit) {
		err = nil
	}
	if ferr := gp.ctx.Store.Flush(); ferr != nil {
		gp.ctx.Logx.Errorf("error save knob values: %v", ferr)
	}
	return err
}

func (gp *GUIProcessing) Update() error {
	return gp.current.Update(gp.ctx)
}

func (gp *GUIProcessing) Draw(screen *ebiten.Image) {
	gp.current.Draw(gp.ctx, screen)
}

func (gp *GUIProcessing) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return gp.ctx.Config.WindowW, gp.ctx.Config.WindowH
}
