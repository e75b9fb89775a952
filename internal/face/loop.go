package face

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/san-kum/hyperclock/internal/clock"
	"github.com/san-kum/hyperclock/internal/hands"
	"github.com/san-kum/hyperclock/internal/input"
)

const (
	AddLabel    = "Button A (add)"
	RemoveLabel = "Button B (remove)"
	PanelTitle  = "Hand tip speeds"
)

// Loop owns all mutable state of the window: the hands, the scroll offset
// and the clock's start reference.
type Loop struct {
	Layout Layout
	Hands  *hands.Collection
	Clock  *clock.Clock
	Scroll *input.Scroll
	Router *input.Router

	backend Backend
	log     *slog.Logger
	frames  uint64
}

// NewLoop builds a loop over b with an empty scroll offset and a router
// bound to the layout's buttons and panel.
func NewLoop(b Backend, l Layout, coll *hands.Collection, clk *clock.Clock, scrollSpeed float64, log *slog.Logger) *Loop {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	scroll := &input.Scroll{}
	lp := &Loop{
		Layout:  l,
		Hands:   coll,
		Clock:   clk,
		Scroll:  scroll,
		backend: b,
		log:     log,
	}
	lp.Router = input.NewRouter(loggedHands{coll, log}, scroll, l.AddButton, l.RemoveButton, l.Panel, scrollSpeed)
	return lp
}

// Run ticks until the backend reports a quit event.
func (lp *Loop) Run() {
	lp.log.Debug("frame loop started", "hands", lp.Hands.Len())
	for lp.Tick() {
	}
	lp.log.Debug("frame loop stopped", "frames", lp.frames, "hands", lp.Hands.Len())
}

// Tick runs one frame and reports whether the loop should continue. A frame
// that sees a quit event is still drawn.
func (lp *Loop) Tick() bool {
	lp.Scroll.SetExtent(lp.Layout.ContentHeight(lp.Hands.Len()), lp.Layout.Panel.H)

	quit := false
	for _, ev := range lp.backend.Poll() {
		if lp.Router.Dispatch(ev) {
			quit = true
		}
	}

	lp.backend.BeginFrame()
	lp.drawFace()
	lp.drawButtons()
	lp.drawPanel()
	lp.backend.EndFrame()
	lp.frames++

	return !quit
}

func (lp *Loop) drawFace() {
	b, l := lp.backend, lp.Layout
	b.Clear(White)
	b.CircleOutline(l.CenterX, l.CenterY, l.Radius, rimThickness, Black)
	b.Circle(l.CenterX, l.CenterY, pivotRadius, Black)

	reach := l.Radius * handReach
	for i := 0; i < lp.Hands.Len(); i++ {
		h := lp.Hands.At(i)
		x, y := HandEnd(l.CenterX, l.CenterY, reach, lp.Clock.Angle(h.AngularVelocity))
		b.Line(l.CenterX, l.CenterY, x, y, HandThickness(i), h.Color)
	}
}

// HandEnd is the pixel endpoint of a hand of length reach at angle, truncated
// to whole pixels.
func HandEnd(cx, cy, reach, angle float64) (float64, float64) {
	return cx + math.Trunc(reach*math.Cos(angle)), cy + math.Trunc(reach*math.Sin(angle))
}

func (lp *Loop) drawButtons() {
	b, l := lp.backend, lp.Layout
	b.FillRect(l.AddButton, Green)
	b.TextCentered(AddLabel, l.AddButton, TextBody, Black)
	b.FillRect(l.RemoveButton, Red)
	b.TextCentered(RemoveLabel, l.RemoveButton, TextBody, Black)
}

func (lp *Loop) drawPanel() {
	b, p := lp.backend, lp.Layout.Panel
	x := p.X + panelTextInset

	b.Clip(p)
	y := p.Y + 10 + lp.Scroll.Offset
	b.Text(PanelTitle, x, y, TextTitle, Black)
	y += 50

	for i := 0; i < lp.Hands.Len(); i++ {
		h := lp.Hands.At(i)
		b.Text(fmt.Sprintf("%d. %s", i, h.Name), x, y, TextBody, h.Color)
		y += 20
		b.Text("  Period: "+hands.FormatPeriod(h.Period), x, y, TextBody, Black)
		y += 20
		b.Text("  Speed (v): "+hands.FormatSpeed(h.SpeedKMH), x, y, TextBody, Black)
		y += 20
		b.Text("  Light speed: "+hands.FormatLightRatio(h.LightRatio), x, y, TextBody, hands.RatioColor(h))
		y += 30
	}
	b.Unclip()

	b.RectOutline(p, 1, Black)
}

type loggedHands struct {
	c   *hands.Collection
	log *slog.Logger
}

func (l loggedHands) Add() {
	l.c.Add()
	last := l.c.Last()
	l.log.Debug("hand added", "name", last.Name, "period", last.Period, "tip_mps", last.TipSpeed, "superluminal", last.IsSuperluminal())
}

func (l loggedHands) Remove() {
	before := l.c.Len()
	l.c.Remove()
	if l.c.Len() == before {
		l.log.Debug("remove ignored, base hand only")
		return
	}
	l.log.Debug("hand removed", "hands", l.c.Len())
}
