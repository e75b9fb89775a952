package face

import (
	"github.com/san-kum/hyperclock/internal/config"
	"github.com/san-kum/hyperclock/internal/input"
)

const (
	faceRadius     = 200
	handReach      = 0.9
	pivotRadius    = 5
	rimThickness   = 2
	buttonW        = 130
	buttonH        = 40
	panelMargin    = 10
	panelTop       = 20
	panelTextInset = 20
)

// Layout holds the fixed geometry of the window.
type Layout struct {
	Width, Height    float64
	CenterX, CenterY float64
	Radius           float64
	Panel            input.Rect
	AddButton        input.Rect
	RemoveButton     input.Rect
	RowHeight        float64
	HeaderHeight     float64
}

// NewLayout derives the window geometry from cfg.
func NewLayout(cfg *config.Config) Layout {
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	return Layout{
		Width:   w,
		Height:  h,
		CenterX: float64(int(w) / 4),
		CenterY: float64(int(h) / 2),
		Radius:  faceRadius,
		Panel: input.Rect{
			X: float64(int(w)/2) + panelMargin,
			Y: panelTop,
			W: float64(int(w)/2) - 2*panelMargin,
			H: h - 2*panelTop,
		},
		AddButton:    input.Rect{X: 50, Y: h - 100, W: buttonW, H: buttonH},
		RemoveButton: input.Rect{X: 200, Y: h - 100, W: buttonW, H: buttonH},
		RowHeight:    cfg.Panel.RowHeight,
		HeaderHeight: cfg.Panel.HeaderHeight,
	}
}

// ContentHeight is the panel's scrollable height for n hands.
func (l Layout) ContentHeight(n int) float64 {
	return float64(n)*l.RowHeight + l.HeaderHeight
}

// HandThickness is the stroke width of the hand at index i.
func HandThickness(i int) float64 {
	t := 4 - i
	if t < 1 {
		t = 1
	}
	return float64(t)
}
