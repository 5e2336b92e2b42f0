package pot

import (
	"evilknob/src/asset"
	"evilknob/src/base"
	"evilknob/src/eventloop"
	"evilknob/src/events"
	"evilknob/src/gate"
	"evilknob/src/logx"
	"evilknob/src/pointer"
	"evilknob/src/sprite"
	"evilknob/src/value"
	"fmt"
	"time"
)

// Surface is the drawing area a knob renders on
type Surface interface {
	// Box is the current layout box in page coordinates
	Box() base.Rect
	SetSize(w, h int)
	Clear()
	DrawSprite(sheet sprite.Sheet, yOffset int)
	// Events is where pointer presses land and value changes are dispatched
	Events() *events.Target
}

type Config struct {
	Name        string
	Surface     Surface
	SpriteSheet string
	LeftBound   int
	// zero means the default 100
	RightBound int
}

type Options struct {
	Loop   eventloop.Loop
	Loader asset.Loader
	// process-wide scheduler when nil
	Gate *gate.Scheduler
	// receives window scope pointer move/up and resize events
	Window      *events.Target
	SettleDelay time.Duration
	Logger      logx.Logger
}

type State int

const (
	StateQueued State = iota
	StateLoading
	StateSettling
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateQueued:
		return "queued"
	case StateLoading:
		return "loading"
	case StateSettling:
		return "settling"
	case StateReady:
		return "ready"
	case StateFailed:
		return "failed"
	default:
	}
	return "invalid"
}

type Potentiometer struct {
	name    string
	surface Surface
	src     string
	bounds  base.Bounds

	loop   eventloop.Loop
	loader asset.Loader
	gate   *gate.Scheduler
	window *events.Target
	settle time.Duration
	logger logx.Logger

	state   State
	err     error
	sheet   sprite.Sheet
	center  base.Point
	value   *value.State
	drag    *pointer.Controller
	offset  int
	raw     int
	pending *int
	unsub   []func()
}

// New validates the configuration and queues the knob for initialization.
// A configuration error is returned before the load gate is touched.
func New(cfg Config, opts Options) (*Potentiometer, error) {
	bounds, err := base.NewBounds(cfg.LeftBound, cfg.RightBound)
	if err != nil {
		return nil, err
	}
	if cfg.Surface == nil {
		return nil, base.ErrNoSurface
	}
	if cfg.SpriteSheet == "" {
		return nil, base.ErrNoSpriteSheet
	}
	if opts.Loop == nil || opts.Loader == nil {
		return nil, fmt.Errorf("knob %q: loop and loader are required", cfg.Name)
	}
	if opts.Gate == nil {
		opts.Gate = gate.Default()
	}
	if opts.Window == nil {
		opts.Window = events.NewTarget("window")
	}
	if opts.SettleDelay < 0 {
		opts.SettleDelay = 0
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	name := cfg.Name
	if name == "" {
		name = cfg.SpriteSheet
	}

	p := &Potentiometer{
		name:    name,
		surface: cfg.Surface,
		src:     cfg.SpriteSheet,
		bounds:  bounds,
		loop:    opts.Loop,
		loader:  opts.Loader,
		gate:    opts.Gate,
		window:  opts.Window,
		settle:  opts.SettleDelay,
		logger:  opts.Logger.Named(name),
		state:   StateQueued,
		value:   value.NewState(bounds),
	}
	p.drag = pointer.NewController(p, p.emit)

	p.logger.Debugf("queued, bounds %v", bounds)
	p.gate.Submit(name, p.initialize)
	return p, nil
}

func (p *Potentiometer) Name() string {
	return p.name
}

func (p *Potentiometer) State() State {
	return p.state
}

// Err is the load error of a failed knob
func (p *Potentiometer) Err() error {
	return p.err
}

func (p *Potentiometer) Bounds() base.Bounds {
	return p.bounds
}

func (p *Potentiometer) Sheet() sprite.Sheet {
	return p.sheet
}

func (p *Potentiometer) Surface() Surface {
	return p.surface
}

// Frame is the index and vertical offset of the frame last drawn
func (p *Potentiometer) Frame() (index, offset int) {
	return sprite.OffsetToIndex(p.offset, p.sheet.FrameSize()), p.offset
}

// Raw is the bound-clamped value of the frame last drawn, SetValue(Raw())
// leaves the knob where it is
func (p *Potentiometer) Raw() int {
	return p.raw
}

func (p *Potentiometer) DragState() pointer.DragState {
	return p.drag.State()
}

func (p *Potentiometer) GetValue() int {
	return p.value.Position()
}

// SetValue clamps v to 0..100 and redraws without the jump guard and without
// a change event. Before the knob is ready the value is kept and applied
// once initialization finishes.
func (p *Potentiometer) SetValue(v int) {
	v = base.ClampValue(v)
	if p.state != StateReady {
		p.pending = &v
		return
	}
	p.value.Apply(v, false, p.draw)
}

// Subscribe calls h with the new value after every pointer driven change
func (p *Potentiometer) Subscribe(h func(v int)) func() {
	return p.surface.Events().AddListener(base.EventValueChanged, func(e *events.Event) {
		h(e.Value)
	})
}

// ---- pointer.Target ----

func (p *Potentiometer) Center() base.Point {
	return p.center
}

func (p *Potentiometer) Radius() float64 {
	return float64(p.sheet.FrameSize()) / 2
}

func (p *Potentiometer) Update(candidate int) bool {
	return p.value.Apply(candidate, true, p.draw)
}
