package gstrip

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

type Style struct {
	Body      color.RGBA
	Rim       color.RGBA
	Indicator color.RGBA
	Ticks     int
}

var DefaultStyle = Style{
	Body:      color.RGBA{0x3a, 0x3f, 0x44, 0xff},
	Rim:       color.RGBA{0x9a, 0xa3, 0xab, 0xff},
	Indicator: color.RGBA{0xff, 0x67, 0x00, 0xff},
	Ticks:     11,
}

// FrameAngle is the indicator angle in radians for frame i, 0 straight up,
// clockwise positive. It follows the pointer mapping, where 50 is straight up
// and the ends of the scale meet straight down.
func FrameAngle(i, frames int) float64 {
	v := float64(i) * 100 / float64(frames)
	turns := (v - 50) / 101
	return turns * 2 * math.Pi
}

// Render draws frames square knob frames of edge size stacked vertically
func Render(size, frames int, st Style) (image.Image, error) {
	if size < 8 || frames < 1 {
		return nil, fmt.Errorf("strip %dpx x %d frames is too small", size, frames)
	}
	dc := gg.NewContext(size, size*frames)
	s := float64(size)
	r := s/2 - 2

	for i := 0; i < frames; i++ {
		cx := s / 2
		cy := s/2 + float64(i)*s

		// scale ticks around the knob
		dc.SetRGBA255(int(st.Rim.R), int(st.Rim.G), int(st.Rim.B), int(st.Rim.A))
		dc.SetLineWidth(math.Max(1, s/64))
		for t := 0; t < st.Ticks; t++ {
			a := FrameAngle(t*frames/maxInt(st.Ticks-1, 1), frames)
			dc.DrawLine(cx+math.Sin(a)*r*0.86, cy-math.Cos(a)*r*0.86, cx+math.Sin(a)*r, cy-math.Cos(a)*r)
		}
		dc.Stroke()

		// body
		dc.DrawCircle(cx, cy, r*0.78)
		dc.SetRGBA255(int(st.Body.R), int(st.Body.G), int(st.Body.B), int(st.Body.A))
		dc.FillPreserve()
		dc.SetRGBA255(int(st.Rim.R), int(st.Rim.G), int(st.Rim.B), int(st.Rim.A))
		dc.SetLineWidth(math.Max(1, s/32))
		dc.Stroke()

		// indicator
		a := FrameAngle(i, frames)
		dc.SetLineCapRound()
		dc.SetLineWidth(math.Max(2, s/16))
		dc.SetRGBA255(int(st.Indicator.R), int(st.Indicator.G), int(st.Indicator.B), int(st.Indicator.A))
		dc.DrawLine(cx+math.Sin(a)*r*0.2, cy-math.Cos(a)*r*0.2, cx+math.Sin(a)*r*0.7, cy-math.Cos(a)*r*0.7)
		dc.Stroke()
	}
	return dc.Image(), nil
}

func Save(path string, img image.Image) error {
	return gg.SavePNG(path, img)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
