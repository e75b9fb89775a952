package face

import (
	"image/color"

	"github.com/san-kum/hyperclock/internal/input"
)

type TextSize int

const (
	TextBody TextSize = iota
	TextTitle
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 200, B: 0, A: 255}
)

// Canvas is the set of drawing primitives a frame needs.
type Canvas interface {
	Clear(c color.RGBA)
	CircleOutline(cx, cy, r, thickness float64, c color.RGBA)
	Circle(cx, cy, r float64, c color.RGBA)
	Line(x0, y0, x1, y1, thickness float64, c color.RGBA)
	FillRect(r input.Rect, c color.RGBA)
	RectOutline(r input.Rect, thickness float64, c color.RGBA)
	Text(s string, x, y float64, size TextSize, c color.RGBA)
	TextCentered(s string, r input.Rect, size TextSize, c color.RGBA)
	Clip(r input.Rect)
	Unclip()
}

// Backend is a Canvas plus the window's event queue and frame pacing.
type Backend interface {
	Canvas
	Poll() []input.Event
	BeginFrame()
	// EndFrame presents the frame and blocks until the next tick.
	EndFrame()
}
