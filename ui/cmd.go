package ui

import (
	"context"
	"errors"
	"evilknob/src/logx"
	"evilknob/src/store"
	clic "evilknob/ui/cli"
	"evilknob/ui/gui"
	"evilknob/ui/gui/gbase/gconf"
	"evilknob/ui/gui/ghelper/gdialog"
	"evilknob/ui/gui/ghelper/gstrip"
	"evilknob/ui/gui/gpanel"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

const (
	logfile string = "evilknob.log"
	appName string = "evilknob"
)

func GetLogger(file *os.File, c *cli.Command) *logx.Logx {
	l := logx.NewLogx(
		logx.GetLoggerLevelByString(c.String("level")),
		c.Bool("dev"),
		c.Bool("console"),
	)
	l.InitLogger(file)
	return l
}

func RunGUI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return err
	}
	if p := c.String("panel"); p != "" {
		conf.Panel = p
	}
	if s := c.String("sprite"); s != "" {
		conf.Sprite = s
	}
	if c.Bool("browse") {
		res, err := gdialog.OpenSpriteSheet("Select knob sprite sheet")
		switch {
		case err == nil:
			conf.Sprite = res.Path
		case errors.Is(err, gdialog.ErrCancelled):
		default:
			l.Errorf("error dialog: %v", err)
		}
	}

	panel, err := gpanel.Load(conf.Panel)
	if err != nil {
		return err
	}
	if conf.Sprite != "" {
		panel.SetSprite(conf.Sprite, false)
	}
	panel.SetSprite(gpanel.BuiltinSprite, false)

	st, err := store.Open(appName, l.Named("store"))
	if err != nil {
		l.Warnf("knob values are kept in memory only: %v", err)
		st = store.New(nil, l.Named("store"))
	}

	g, err := gui.NewGUI(conf, panel, st, l)
	if err != nil {
		return err
	}
	return g.Run()
}

func RunCLI(c *cli.Command) error {
	file, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		fmt.Printf("error open logfile: %v", err)
		return nil
	}
	defer file.Close()
	l := GetLogger(file, c)
	defer l.Sync() //nolint:errcheck

	conf, err := gconf.NewGUIConfig(c.String("config"))
	if err != nil {
		return err
	}
	def := gpanel.Default()
	cl, err := clic.NewCLI(clic.Options{
		Sprite:      c.String("sprite"),
		Left:        int(c.Int("left")),
		Right:       int(c.Int("right")),
		Settle:      conf.SettleDelay(),
		StripSize:   def.StripSize,
		StripFrames: def.StripFrames,
	}, l)
	if err != nil {
		return err
	}
	clic.EnableANSI()
	return cl.Run()
}

func RunStrip(c *cli.Command) error {
	img, err := gstrip.Render(int(c.Int("size")), int(c.Int("frames")), gstrip.DefaultStyle)
	if err != nil {
		return err
	}
	out := c.String("out")
	if err := gstrip.Save(out, img); err != nil {
		return err
	}
	fmt.Printf("%s: %d frames of %dpx\n", out, c.Int("frames"), c.Int("size"))
	return nil
}

func RunEvilKnob() error {
	df := &cli.BoolFlag{
		Name:    "dev",
		Aliases: []string{"d"},
		Usage:   "development logger encoding",
	}
	lf := &cli.StringFlag{
		Name:    "level",
		Aliases: []string{"l"},
		Value:   "info",
		Usage:   "logger level: debug, info, warn, error",
	}
	cf := &cli.BoolFlag{
		Name:    "console",
		Aliases: []string{"c"},
		Usage:   "log to the console instead of " + logfile,
	}
	conff := &cli.StringFlag{
		Name:  "config",
		Value: gconf.DefaultFile,
		Usage: "path to JSON config",
	}
	sf := &cli.StringFlag{
		Name:  "sprite",
		Usage: "sprite sheet file or URL, built-in strip when empty",
	}
	pf := &cli.StringFlag{
		Name:  "panel",
		Usage: "path to YAML panel description",
	}
	bf := &cli.BoolFlag{
		Name:  "browse",
		Usage: "pick a sprite sheet with a file dialog",
	}
	leftf := &cli.IntFlag{
		Name:  "left",
		Usage: "left bound 0..100",
	}
	rightf := &cli.IntFlag{
		Name:  "right",
		Usage: "right bound 0..100, 0 means 100",
	}
	guiff := []cli.Flag{df, lf, cf, conff, sf, pf, bf}
	cliff := []cli.Flag{df, lf, cf, conff, sf, leftf, rightf}

	return (&cli.Command{
		Name:  "evilknob",
		Usage: "sprite sheet rotary knobs",
		Commands: []*cli.Command{
			{
				Name:  "gui",
				Usage: "knob panel window",
				Flags: guiff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunGUI(c); err != nil {
						fmt.Printf("error GUI: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "cli",
				Usage: "one knob in the terminal",
				Flags: cliff,
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunCLI(c); err != nil {
						fmt.Printf("error evilknob: %v\n", err)
					}
					return nil
				},
			},
			{
				Name:  "strip",
				Usage: "render a knob sprite strip to PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Value: "knob.png",
						Usage: "output PNG file",
					},
					&cli.IntFlag{
						Name:  "size",
						Value: 96,
						Usage: "frame edge in pixels",
					},
					&cli.IntFlag{
						Name:  "frames",
						Value: 101,
						Usage: "number of frames",
					},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if err := RunStrip(c); err != nil {
						fmt.Printf("error strip: %v\n", err)
					}
					return nil
				},
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := RunGUI(c); err != nil {
				fmt.Printf("error GUI: %v\n", err)
			}
			return nil
		},
	}).Run(context.Background(), os.Args)
}
