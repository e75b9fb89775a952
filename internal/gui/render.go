package gui

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/hyperclock/internal/face"
	"github.com/san-kum/hyperclock/internal/input"
)

const circleSegments = 128

func vec(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x), float32(y))
}

func rect(r input.Rect) rl.Rectangle {
	return rl.NewRectangle(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func (w *Window) size(s face.TextSize) float32 {
	if s == face.TextTitle {
		return w.TitleSize
	}
	return w.BodySize
}

func (w *Window) Clear(c color.RGBA) { rl.ClearBackground(c) }

// CircleOutline draws a ring whose outer edge is at r, growing inward.
func (w *Window) CircleOutline(cx, cy, r, thickness float64, c color.RGBA) {
	rl.DrawRing(vec(cx, cy), float32(r-thickness), float32(r), 0, 360, circleSegments, c)
}

func (w *Window) Circle(cx, cy, r float64, c color.RGBA) {
	rl.DrawCircleV(vec(cx, cy), float32(r), c)
}

func (w *Window) Line(x0, y0, x1, y1, thickness float64, c color.RGBA) {
	rl.DrawLineEx(vec(x0, y0), vec(x1, y1), float32(thickness), c)
}

func (w *Window) FillRect(r input.Rect, c color.RGBA) {
	rl.DrawRectangleRec(rect(r), c)
}

func (w *Window) RectOutline(r input.Rect, thickness float64, c color.RGBA) {
	rl.DrawRectangleLinesEx(rect(r), float32(thickness), c)
}

func (w *Window) Text(s string, x, y float64, size face.TextSize, c color.RGBA) {
	rl.DrawTextEx(w.Font, s, vec(x, y), w.size(size), 1, c)
}

func (w *Window) TextCentered(s string, r input.Rect, size face.TextSize, c color.RGBA) {
	fs := w.size(size)
	m := rl.MeasureTextEx(w.Font, s, fs, 1)
	cx, cy := r.Center()
	rl.DrawTextEx(w.Font, s, rl.NewVector2(float32(cx)-m.X/2, float32(cy)-m.Y/2), fs, 1, c)
}

func (w *Window) Clip(r input.Rect) {
	rl.BeginScissorMode(int32(r.X), int32(r.Y), int32(r.W), int32(r.H))
}

func (w *Window) Unclip() { rl.EndScissorMode() }

var _ face.Backend = (*Window)(nil)
