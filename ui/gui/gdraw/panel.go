package gdraw

import (
	"errors"
	"evilknob/src/base"
	"evilknob/src/events"
	"evilknob/src/pot"
	"evilknob/ui/gui/gbase"
	"evilknob/ui/gui/gctx"
	"evilknob/ui/gui/ghelper"
	"evilknob/ui/gui/ghelper/gclipboard"
	"evilknob/ui/gui/ghelper/gdialog"
	"evilknob/ui/gui/gpanel"
	"evilknob/ui/gui/gsurface"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type knobView struct {
	knob    gpanel.Knob
	surface *gsurface.Surface
	pot     *pot.Potentiometer
	lastBox base.Rect
}

type GUIPanelDrawer struct {
	knobs   []*knobView
	buttons []*ghelper.Button
	cards   map[[2]int]*ebiten.Image

	// index of buttons
	btnBrowseIdx int
	btnThemeIdx  int
	btnCopyIdx   int
	btnSaveIdx   int

	// internal ui state
	prevMouseDown bool
	prevX, prevY  int
	focus         int
	browseActive  bool
	status        string
	statusUntil   time.Time

	lastTick time.Time
}

func NewGUIPanelDrawer(ctx *gctx.GUIContext) *GUIPanelDrawer {
	pd := &GUIPanelDrawer{
		cards:    make(map[[2]int]*ebiten.Image),
		focus:    -1,
		lastTick: time.Now(),
	}

	labels := []string{"Browse...", "Theme", "Copy values", "Save"}
	pd.btnBrowseIdx, pd.btnThemeIdx, pd.btnCopyIdx, pd.btnSaveIdx = 0, 1, 2, 3
	x := gbase.PanelPadding
	y := ctx.Config.WindowH - gbase.PanelPadding - gbase.ButtonH
	for _, l := range labels {
		pd.buttons = append(pd.buttons, ghelper.NewButton(l, x, y, gbase.ButtonW, gbase.ButtonH, ctx.Theme))
		x += gbase.ButtonW + gbase.ButtonSpacing
	}

	// remember every value a user dialed in
	ctx.Window.AddListener(base.EventValueChanged, func(e *events.Event) {
		for _, kv := range pd.knobs {
			if kv.surface.Events() == e.Target() {
				ctx.Store.Set(kv.knob.Name, kv.pot.Raw())
			}
		}
	})

	pd.buildKnobs(ctx)
	return pd
}

// buildKnobs drops the current knobs and queues one per panel entry
func (pd *GUIPanelDrawer) buildKnobs(ctx *gctx.GUIContext) {
	for _, kv := range pd.knobs {
		kv.pot.Detach()
	}
	pd.knobs = pd.knobs[:0]
	pd.focus = -1

	for _, k := range ctx.Panel.Knobs {
		s := gsurface.New(k.Name, ctx.Window)
		p, err := pot.New(pot.Config{
			Name:        k.Name,
			Surface:     s,
			SpriteSheet: k.Sprite,
			LeftBound:   k.Left,
			RightBound:  k.Right,
		}, pot.Options{
			Loop:        ctx.Loop,
			Loader:      ctx.Loader,
			Gate:        ctx.Gate,
			Window:      ctx.Window,
			SettleDelay: ctx.Config.SettleDelay(),
			Logger:      ctx.Logx,
		})
		if err != nil {
			ctx.Logx.Errorf("error create knob %s: %v", k.Name, err)
			continue
		}
		if v, ok := ctx.Store.Get(k.Name); ok {
			p.SetValue(v)
		}
		pd.knobs = append(pd.knobs, &knobView{knob: k, surface: s, pot: p})
	}
}

// loading is true while any knob waits for or holds the load gate
func (pd *GUIPanelDrawer) loading(ctx *gctx.GUIContext) bool {
	return ctx.Gate.Busy() || ctx.Gate.Pending() > 0
}

func (pd *GUIPanelDrawer) say(msg string) {
	pd.status = msg
	pd.statusUntil = time.Now().Add(3 * time.Second)
}

// layout flows the surfaces left to right and wraps on the window edge.
// A resize event goes out whenever a box moved or changed size.
func (pd *GUIPanelDrawer) layout(ctx *gctx.GUIContext) {
	x, y := gbase.PanelPadding, gbase.PanelTop
	rowH := 0
	changed := false
	for _, kv := range pd.knobs {
		w, h := kv.surface.Size()
		if x > gbase.PanelPadding && x+w > ctx.Config.WindowW-gbase.PanelPadding {
			x = gbase.PanelPadding
			y += rowH + 2*gbase.LabelGap + gbase.PanelSpacing
			rowH = 0
		}
		kv.surface.SetPosition(float64(x), float64(y))
		if box := kv.surface.Box(); box != kv.lastBox {
			kv.lastBox = box
			changed = true
		}
		x += w + gbase.PanelSpacing
		if h > rowH {
			rowH = h
		}
	}
	if changed {
		ctx.Window.Dispatch(&events.Event{Name: events.Resize})
	}
}

func (pd *GUIPanelDrawer) hovered(mx, my int) int {
	pt := base.Point{X: float64(mx), Y: float64(my)}
	for i, kv := range pd.knobs {
		if kv.surface.Box().Contains(pt) {
			return i
		}
	}
	return -1
}

func (pd *GUIPanelDrawer) Update(ctx *gctx.GUIContext) error {
	ctx.Loop.Drain()
	pd.layout(ctx)

	// mouse handling
	mx, my := ebiten.CursorPosition()
	mouseDown := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	justClicked := mouseDown && !pd.prevMouseDown
	justReleased := !mouseDown && pd.prevMouseDown
	pd.prevMouseDown = mouseDown

	now := time.Now()
	dt := now.Sub(pd.lastTick).Seconds()
	pd.lastTick = now

	// pointer events in window coordinates
	x, y := float64(mx), float64(my)
	if justClicked {
		if i := pd.hovered(mx, my); i >= 0 {
			pd.focus = i
			pd.knobs[i].surface.Events().Dispatch(&events.Event{Name: events.PointerDown, Bubbles: true, X: x, Y: y})
		}
	}
	if mx != pd.prevX || my != pd.prevY {
		pd.prevX, pd.prevY = mx, my
		ctx.Window.Dispatch(&events.Event{Name: events.PointerMove, X: x, Y: y})
	}
	if justReleased {
		ctx.Window.Dispatch(&events.Event{Name: events.PointerUp, X: x, Y: y})
	}

	// HandleInput + UpdateAnim
	for i, b := range pd.buttons {
		clicked := b.HandleInput(mx, my, justClicked, justReleased)
		b.UpdateAnim(dt)
		if !clicked {
			continue
		}
		switch i {
		case pd.btnBrowseIdx:
			pd.browse(ctx)
		case pd.btnThemeIdx:
			pd.toggleTheme(ctx)
		case pd.btnCopyIdx:
			pd.copyValues(ctx)
		case pd.btnSaveIdx:
			pd.save(ctx)
		}
	}

	pd.handleKeys(ctx, mx, my)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !pd.browseActive {
		return gbase.ErrExit
	}
	return nil
}

func (pd *GUIPanelDrawer) handleKeys(ctx *gctx.GUIContext, mx, my int) {
	i := pd.hovered(mx, my)
	if i < 0 {
		i = pd.focus
	}
	if i < 0 || i >= len(pd.knobs) {
		return
	}
	kv := pd.knobs[i]
	if kv.pot.State() != pot.StateReady {
		return
	}

	step := 0
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp), inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		step = 1
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown), inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		step = -1
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		step = 10
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown):
		step = -10
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		step = -base.ValueMax
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		step = base.ValueMax
	}
	if step == 0 {
		return
	}
	kv.pot.SetValue(kv.pot.Raw() + step)
	ctx.Store.Set(kv.knob.Name, kv.pot.Raw())
}

func (pd *GUIPanelDrawer) browse(ctx *gctx.GUIContext) {
	if pd.browseActive {
		return
	}
	if pd.loading(ctx) {
		pd.say("knobs are still loading")
		return
	}
	pd.browseActive = true
	b := pd.buttons[pd.btnBrowseIdx]
	b.Label = "Selecting..."

	go func() {
		res, err := gdialog.OpenSpriteSheet("Select knob sprite sheet")
		ctx.Loop.Post(func() {
			pd.browseActive = false
			b.Label = "Browse..."
			if err != nil {
				if !errors.Is(err, gdialog.ErrCancelled) {
					ctx.Logx.Errorf("error dialog: %v", err)
					pd.say("dialog failed")
				}
				return
			}
			ctx.Logx.Infof("sprite sheet selected: %s", res.Path)
			ctx.Config.Sprite = res.Path
			ctx.Panel.SetSprite(res.Path, true)
			pd.buildKnobs(ctx)
			pd.say("loading " + res.Name)
		})
	}()
}

func (pd *GUIPanelDrawer) toggleTheme(ctx *gctx.GUIContext) {
	if pd.loading(ctx) {
		pd.say("knobs are still loading")
		return
	}
	if ctx.Theme == gbase.DarkPalette {
		ctx.Theme = gbase.LightPalette
	} else {
		ctx.Theme = gbase.DarkPalette
	}
	ctx.Config.Theme = ctx.Theme.String()
	for _, b := range pd.buttons {
		b.Restyle(ctx.Theme)
	}
	for k, img := range pd.cards {
		img.Deallocate()
		delete(pd.cards, k)
	}
	if err := ctx.PreloadBuiltin(); err != nil {
		ctx.Logx.Errorf("error render knob strip: %v", err)
		return
	}
	pd.buildKnobs(ctx)
}

func (pd *GUIPanelDrawer) copyValues(ctx *gctx.GUIContext) {
	values := make(map[string]int, len(pd.knobs))
	for _, kv := range pd.knobs {
		values[kv.knob.Name] = kv.pot.GetValue()
	}
	if err := gclipboard.WriteAll(gclipboard.FormatValues(values)); err != nil {
		ctx.Logx.Errorf("error write clipboard: %v", err)
		pd.say("clipboard is not available")
		return
	}
	pd.say(fmt.Sprintf("%d values copied", len(values)))
}

func (pd *GUIPanelDrawer) save(ctx *gctx.GUIContext) {
	ctx.Config.Theme = ctx.Theme.String()
	err := errors.Join(ctx.Store.Flush(), ctx.Config.Save())
	if err != nil {
		ctx.Logx.Errorf("error save: %v", err)
		pd.say("save failed")
		return
	}
	pd.say("saved")
}

func (pd *GUIPanelDrawer) card(ctx *gctx.GUIContext, w, h int) *ebiten.Image {
	key := [2]int{w, h}
	if img, ok := pd.cards[key]; ok {
		return img
	}
	img := ghelper.RenderRoundedRect(w, h, 14, ctx.Theme.PanelFill, ctx.Theme.PanelStroke, 1.5)
	pd.cards[key] = img
	return img
}

func (pd *GUIPanelDrawer) Draw(ctx *gctx.GUIContext, screen *ebiten.Image) {
	screen.Fill(ctx.Theme.Bg)
	text.Draw(screen, ctx.Panel.Title, ctx.Fonts.Bold, gbase.PanelPadding, gbase.PanelPadding+22, ctx.Theme.Text)

	pad := gbase.PanelSpacing / 2
	for i, kv := range pd.knobs {
		box := kv.surface.Box()
		w, h := int(box.Width), int(box.Height)

		// card behind the knob with room for the label
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(box.Left-float64(pad), box.Top-float64(pad))
		screen.DrawImage(pd.card(ctx, w+2*pad, h+2*pad+2*gbase.LabelGap), op)

		kv.surface.Draw(screen)

		col := ctx.Theme.Text
		if i == pd.focus {
			col = ctx.Theme.Accent
		}
		tx := int(box.Left)
		ty := int(box.Top) + h + gbase.LabelGap
		text.Draw(screen, kv.knob.Label, ctx.Fonts.Normal, tx, ty, col)

		var status string
		switch kv.pot.State() {
		case pot.StateReady:
			status = fmt.Sprintf("%d", kv.pot.GetValue())
		case pot.StateFailed:
			status = "failed"
		default:
			status = kv.pot.State().String() + "..."
		}
		text.Draw(screen, status, ctx.Fonts.Small, tx, ty+gbase.LabelGap-4, ctx.Theme.Text)
	}

	for _, b := range pd.buttons {
		b.DrawAnimated(screen, ctx.Fonts.Normal, ctx.Theme)
	}

	if pd.status != "" && time.Now().Before(pd.statusUntil) {
		x := gbase.PanelPadding + len(pd.buttons)*(gbase.ButtonW+gbase.ButtonSpacing)
		y := ctx.Config.WindowH - gbase.PanelPadding - gbase.ButtonH/2 + 5
		text.Draw(screen, pd.status, ctx.Fonts.Normal, x, y, ctx.Theme.Text)
	}

	if ctx.Config.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %.1f  gate %q  queued %d",
			ebiten.ActualTPS(), ctx.Gate.Owner(), ctx.Gate.Pending()))
	}
}
