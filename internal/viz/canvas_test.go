package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(4, 2)
	w, h := c.PixelSize()
	if w != 8 || h != 8 {
		t.Fatalf("expected 8x8 sub-pixels, got %dx%d", w, h)
	}

	c.Set(0, 0)
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2800|0x1|0x80 {
		t.Errorf("unexpected rune %U", c.Grid[0][0])
	}
	if !c.IsSet(1, 3) || c.IsSet(1, 2) {
		t.Error("IsSet disagrees with Set")
	}

	c.Set(-1, 0)
	c.Set(100, 100)

	c.Clear()
	if c.IsSet(0, 0) {
		t.Error("expected cleared canvas")
	}
}

func TestCanvasLine(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 19, 19)
	for i := 0; i < 20; i++ {
		if !c.IsSet(i, i) {
			t.Errorf("diagonal pixel (%d,%d) not set", i, i)
		}
	}
}

func TestCanvasCircle(t *testing.T) {
	c := NewCanvas(20, 10)
	c.DrawCircle(20, 20, 10)
	for _, p := range [][2]int{{30, 20}, {10, 20}, {20, 10}, {20, 30}} {
		if !c.IsSet(p[0], p[1]) {
			t.Errorf("expected circle point %v", p)
		}
	}
	if c.IsSet(20, 20) {
		t.Error("circle centre should be empty")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	lines := strings.Split(c.String(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if len([]rune(lines[0])) != 3 {
		t.Errorf("expected 3 runes per line, got %d", len([]rune(lines[0])))
	}
}
