package gbase

import (
	"errors"
	"image/color"
)

// ---- Exit Call ----

var ErrExit = errors.New("exit request")

// --- UI constants ---

const (
	WindowW int = 960
	WindowH int = 540

	// size of a surface nobody has sized yet
	DefaultSurfaceW int = 300
	DefaultSurfaceH int = 150

	PanelPadding  int = 40
	PanelSpacing  int = 24
	PanelTop      int = 120
	LabelGap      int = 22
	ButtonW       int = 150
	ButtonH       int = 44
	ButtonSpacing int = 18
)

// ---- Styles (palettes) ----

type Palette struct {
	Bg           color.RGBA
	PanelFill    color.RGBA
	PanelStroke  color.RGBA
	ButtonFill   color.RGBA
	ButtonStroke color.RGBA
	ButtonText   color.RGBA
	Text         color.RGBA
	Accent       color.RGBA
	KnobBody     color.RGBA
	KnobRim      color.RGBA
}

func (p Palette) String() string {
	switch p {
	case LightPalette:
		return "light"
	case DarkPalette:
		return "dark"
	default:
	}
	return ""
}

func PaletteFromString(p string) Palette {
	switch p {
	case "dark":
		return DarkPalette
	default:
	}
	return LightPalette
}

var LightPalette = Palette{
	Bg:           color.RGBA{0xf7, 0xf7, 0xf7, 0xff},
	PanelFill:    color.RGBA{0xff, 0xff, 0xff, 0xff},
	PanelStroke:  color.RGBA{0xd0, 0xd6, 0xdb, 0xff},
	ButtonFill:   color.RGBA{0xff, 0xff, 0xff, 0xff},
	ButtonStroke: color.RGBA{0x88, 0x88, 0x88, 0xff},
	ButtonText:   color.RGBA{0x22, 0x22, 0x22, 0xff},
	Text:         color.RGBA{0x22, 0x22, 0x22, 0xff},
	Accent:       color.RGBA{0x22, 0x88, 0xcc, 0xff},
	KnobBody:     color.RGBA{0x3a, 0x3f, 0x44, 0xff},
	KnobRim:      color.RGBA{0x9a, 0xa3, 0xab, 0xff},
}

var DarkPalette = Palette{
	Bg:           color.RGBA{0x12, 0x12, 0x12, 0xff},
	PanelFill:    color.RGBA{0x1c, 0x1c, 0x1c, 0xff},
	PanelStroke:  color.RGBA{0x40, 0x40, 0x40, 0xff},
	ButtonFill:   color.RGBA{0x20, 0x20, 0x20, 0xff},
	ButtonStroke: color.RGBA{0xdd, 0xdd, 0xdd, 0xff},
	ButtonText:   color.RGBA{0xee, 0xee, 0xee, 0xff},
	Text:         color.RGBA{0xee, 0xee, 0xee, 0xff},
	Accent:       color.RGBA{0x2a, 0xa1, 0xd1, 0xff},
	KnobBody:     color.RGBA{0x55, 0x5b, 0x61, 0xff},
	KnobRim:      color.RGBA{0x22, 0x24, 0x26, 0xff},
}
