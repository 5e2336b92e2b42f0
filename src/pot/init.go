package pot

import (
	"evilknob/src/base"
	"evilknob/src/events"
	"evilknob/src/sprite"
)

// initialize runs while the knob holds the load gate
func (p *Potentiometer) initialize(release func()) {
	p.state = StateLoading
	p.logger.Debugf("loading %s", p.src)

	p.loader.Load(p.src, func(sheet sprite.Sheet, err error) {
		if err != nil {
			p.state = StateFailed
			p.err = err
			p.logger.Errorf("error load sprite sheet: %v", err)
			release()
			return
		}
		p.sheet = sheet
		// one square frame is visible at a time
		p.surface.SetSize(sheet.FrameSize(), sheet.FrameSize())
		p.state = StateSettling

		// the layout may still move after SetSize, the center is read once it settled
		p.loop.After(p.settle, func() {
			p.recomputeCenter()
			p.value.Reset(base.ValueInitial)
			p.value.Apply(base.ValueInitial, false, p.draw)
			p.listen()
			p.state = StateReady
			if p.pending != nil {
				v := *p.pending
				p.pending = nil
				p.value.Apply(v, false, p.draw)
			}
			p.logger.Infof("ready: %d frames of %dpx, center (%.1f, %.1f)",
				sheet.FrameCount(), sheet.FrameSize(), p.center.X, p.center.Y)
			release()
		})
	})
}

func (p *Potentiometer) recomputeCenter() {
	p.center = p.surface.Box().Center()
}

// Resize recomputes the center from the current layout box
func (p *Potentiometer) Resize() {
	p.recomputeCenter()
}

func (p *Potentiometer) listen() {
	p.unsub = append(p.unsub,
		p.surface.Events().AddListener(events.PointerDown, func(e *events.Event) {
			p.drag.Press(base.Point{X: e.X, Y: e.Y})
		}),
		p.window.AddListener(events.PointerMove, func(e *events.Event) {
			p.drag.Move(base.Point{X: e.X, Y: e.Y})
		}),
		p.window.AddListener(events.PointerUp, func(*events.Event) {
			p.drag.Release()
		}),
		p.window.AddListener(events.Resize, func(*events.Event) {
			p.recomputeCenter()
		}),
	)
}

// Detach drops the knob's listeners; it stops reacting to the pointer and to resizes
func (p *Potentiometer) Detach() {
	for _, f := range p.unsub {
		f()
	}
	p.unsub = nil
	p.drag.Release()
}

func (p *Potentiometer) draw(raw int) {
	p.raw = raw
	p.offset = p.sheet.Offset(raw, p.bounds)
	p.surface.Clear()
	p.surface.DrawSprite(p.sheet, p.offset)
}

func (p *Potentiometer) emit() {
	v := p.value.Position()
	p.logger.Debugf("value changed to %d", v)
	p.surface.Events().Dispatch(&events.Event{
		Name:       base.EventValueChanged,
		Value:      v,
		Bubbles:    true,
		Cancelable: true,
	})
}
