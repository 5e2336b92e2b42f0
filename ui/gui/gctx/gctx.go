package gctx

import (
	"evilknob/src/asset"
	"evilknob/src/eventloop"
	"evilknob/src/events"
	"evilknob/src/gate"
	"evilknob/src/logx"
	"evilknob/src/sprite"
	"evilknob/src/store"
	"evilknob/ui/gui/gbase"
	"evilknob/ui/gui/gbase/gconf"
	"evilknob/ui/gui/ghelper/gfont"
	"evilknob/ui/gui/ghelper/gstrip"
	"evilknob/ui/gui/gpanel"
	"fmt"
)

// ---- GUI Context ----

type GUIContext struct {
	Config *gconf.Config
	Panel  *gpanel.Panel
	Theme  gbase.Palette
	Fonts  *gfont.Fonts
	// built-in knob strip in the current theme
	Strip sprite.Sheet

	Loop   *eventloop.Queue
	Loader *asset.AsyncLoader
	Gate   *gate.Scheduler
	// page level target, every knob surface is its child
	Window *events.Target
	Store  *store.Store

	Logx logx.Logger
}

func NewGUIContext(c *gconf.Config, p *gpanel.Panel, st *store.Store, l logx.Logger) (*GUIContext, error) {
	fonts, err := gfont.LoadFonts()
	if err != nil {
		return nil, fmt.Errorf("error load fonts: %w", err)
	}
	loop := eventloop.NewQueue()
	ctx := &GUIContext{
		Config: c,
		Panel:  p,
		Theme:  gbase.PaletteFromString(c.Theme),
		Fonts:  fonts,
		Loop:   loop,
		Loader: asset.NewAsyncLoader(loop, nil, l.Named("asset")),
		Gate:   gate.NewScheduler(),
		Window: events.NewTarget("window"),
		Store:  st,
		Logx:   l,
	}
	if err := ctx.PreloadBuiltin(); err != nil {
		return nil, err
	}

	ctx.Gate.OnTransition(func(t gate.Transition) {
		ctx.Logx.Debugf("load gate busy=%v owner=%s", t.Busy, t.Owner)
	})
	return ctx, nil
}

// PreloadBuiltin renders the built-in strip in the current theme
func (ctx *GUIContext) PreloadBuiltin() error {
	st := gstrip.DefaultStyle
	st.Body = ctx.Theme.KnobBody
	st.Rim = ctx.Theme.KnobRim
	st.Indicator = ctx.Theme.Accent
	img, err := gstrip.Render(ctx.Panel.StripSize, ctx.Panel.StripFrames, st)
	if err != nil {
		return err
	}
	sheet, err := sprite.NewSheet(img)
	if err != nil {
		return err
	}
	ctx.Strip = sheet
	ctx.Loader.Preload(gpanel.BuiltinSprite, sheet)
	return nil
}
