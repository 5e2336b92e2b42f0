package cli

import (
	"bufio"
	"evilknob/src/asset"
	"evilknob/src/base"
	"evilknob/src/eventloop"
	"evilknob/src/events"
	"evilknob/src/gate"
	"evilknob/src/logx"
	"evilknob/src/pot"
	"evilknob/src/sprite"
	"evilknob/ui/gui/ghelper/gstrip"
	"evilknob/ui/gui/gpanel"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type Options struct {
	Sprite string // empty for the built-in strip
	Left   int
	Right  int
	Settle time.Duration
	// built-in strip geometry
	StripSize   int
	StripFrames int
}

type CLIProcessing struct {
	knob    *pot.Potentiometer
	surface *TextSurface
	window  *events.Target
	// runs the event loop once
	tick    func()
	timeout time.Duration
	in      io.Reader
	out     io.Writer
	eol     string
	logx    logx.Logger
}

// NewCLI puts one knob on a real event loop
func NewCLI(o Options, l logx.Logger) (*CLIProcessing, error) {
	q := eventloop.NewQueue()
	loader := asset.NewAsyncLoader(q, nil, l.Named("asset"))
	if o.Sprite == "" || o.Sprite == gpanel.BuiltinSprite {
		img, err := gstrip.Render(o.StripSize, o.StripFrames, gstrip.DefaultStyle)
		if err != nil {
			return nil, err
		}
		sheet, err := sprite.NewSheet(img)
		if err != nil {
			return nil, err
		}
		o.Sprite = gpanel.BuiltinSprite
		loader.Preload(o.Sprite, sheet)
	}
	tick := func() {
		if q.Drain() == 0 {
			time.Sleep(time.Millisecond)
		}
	}
	return newCLI(o, q, loader, tick, l)
}

func newCLI(o Options, loop eventloop.Loop, loader asset.Loader, tick func(), l logx.Logger) (*CLIProcessing, error) {
	window := events.NewTarget("terminal")
	s := NewTextSurface("knob", window)
	p, err := pot.New(pot.Config{
		Name:        "knob",
		Surface:     s,
		SpriteSheet: o.Sprite,
		LeftBound:   o.Left,
		RightBound:  o.Right,
	}, pot.Options{
		Loop:        loop,
		Loader:      loader,
		Gate:        gate.NewScheduler(),
		Window:      window,
		SettleDelay: o.Settle,
		Logger:      l,
	})
	if err != nil {
		return nil, err
	}
	return &CLIProcessing{
		knob:    p,
		surface: s,
		window:  window,
		tick:    tick,
		timeout: 10 * time.Second,
		in:      os.Stdin,
		out:     os.Stdout,
		eol:     "\n",
		logx:    l,
	}, nil
}

func (c *CLIProcessing) WaitReady() error {
	deadline := time.Now().Add(c.timeout)
	for {
		switch c.knob.State() {
		case pot.StateReady:
			return nil
		case pot.StateFailed:
			return c.knob.Err()
		default:
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("knob is not ready after %v", c.timeout)
		}
		c.tick()
	}
}

// raw processing
// - left/right arrow keys step by 1, up/down by 10
// - a/d drag the knob with a pointer
// - q or Ctrl+C to exit
func (c *CLIProcessing) Run() error {
	if err := c.WaitReady(); err != nil {
		return err
	}
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.RunLineMode()
	}
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	c.eol = "\r\n"
	return c.runKeys(bufio.NewReader(c.in))
}

func (c *CLIProcessing) runKeys(r io.ByteReader) error {
	fmt.Fprint(c.out, "left/right step 1, up/down step 10, a/d drag, q to quit"+c.eol)
	c.render(false)

	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			fmt.Fprint(c.out, c.eol)
			return nil
		}
		if err != nil {
			return err
		}

		switch b {
		case 3, 'q', 'Q': // Ctrl+C
			fmt.Fprint(c.out, c.eol)
			return nil
		case 0x1b: // escape sequence, possible arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil || b1 != '[' {
				continue
			}
			switch b2 {
			case 'C':
				c.step(1)
			case 'D':
				c.step(-1)
			case 'A':
				c.step(10)
			case 'B':
				c.step(-10)
			}
		case 'a':
			c.drag(-2)
		case 'd':
			c.drag(2)
		default:
			continue
		}
		c.tick()
		c.render(false)
	}
}

// RunLineMode reads one command per line: a number, +N, -N, drag N or q
func (c *CLIProcessing) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	c.render(true)
	fmt.Fprintln(c.out, "Enter a value, +N/-N to step, 'drag N' to turn, 'q' to quit.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "q" || line == "Q" || line == "quit":
			return nil
		case strings.HasPrefix(line, "drag "):
			n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(line, "drag ")))
			if err != nil {
				fmt.Fprintf(c.out, "Invalid drag: %s\n", line)
				continue
			}
			c.drag(n)
		case line[0] == '+' || line[0] == '-':
			n, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(c.out, "Invalid step: %s\n", line)
				continue
			}
			c.step(n)
		default:
			v, err := strconv.Atoi(line)
			if err != nil {
				fmt.Fprintf(c.out, "Invalid value: %s\n", line)
				continue
			}
			c.knob.SetValue(v)
		}
		c.tick()
		c.render(true)
	}
	return scanner.Err()
}

func (c *CLIProcessing) step(n int) {
	c.knob.SetValue(c.knob.Raw() + n)
}

// drag presses on the knob at its current angle and turns it by n steps
func (c *CLIProcessing) drag(n int) {
	center := c.knob.Center()
	r := c.knob.Radius() / 2
	from := turnOf(c.knob.Raw())
	to := math.Max(-0.495, math.Min(0.5, from+float64(n)/101))

	x, y := pointAt(center, r, from)
	c.surface.Events().Dispatch(&events.Event{Name: events.PointerDown, Bubbles: true, X: x, Y: y})
	x, y = pointAt(center, r, to)
	c.window.Dispatch(&events.Event{Name: events.PointerMove, X: x, Y: y})
	c.window.Dispatch(&events.Event{Name: events.PointerUp, X: x, Y: y})
}

// turnOf is the pointer angle in turns that yields raw value v
func turnOf(v int) float64 {
	return (float64(v) - 50 + 0.5) / 101
}

func pointAt(center base.Point, r, turn float64) (float64, float64) {
	a := turn * 2 * math.Pi
	return center.X + r*math.Sin(a), center.Y - r*math.Cos(a)
}

func (c *CLIProcessing) render(newline bool) {
	const (
		reset = "\033[0m"
		bold  = "\033[1m"
		dimF  = "\033[90m"
		width = 40
	)
	v := c.knob.GetValue()
	idx, offset := c.knob.Frame()
	b := c.knob.Bounds()

	var bar strings.Builder
	filled := v * width / base.ValueMax
	for i := 0; i < width; i++ {
		if i < filled {
			bar.WriteByte('#')
		} else {
			bar.WriteByte('-')
		}
	}
	line := fmt.Sprintf("%sknob%s [%s] %3d %sframe %d/%d offset %d bounds %s%s",
		bold, reset, bar.String(), v, dimF, idx+1, c.knob.Sheet().FrameCount(), offset, b, reset)
	if newline {
		fmt.Fprint(c.out, line+c.eol)
		return
	}
	fmt.Fprint(c.out, "\r\033[2K"+line)
}
