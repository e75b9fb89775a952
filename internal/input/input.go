// Package input routes pointer presses and wheel scrolls to the hand
// collection and the info panel's scroll offset.
package input

// Rect is an axis-aligned screen rectangle in pixels.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies in r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Kind distinguishes the input classes the router handles.
type Kind int

const (
	Quit Kind = iota
	Press
	Wheel
)

// Event is one polled input. X and Y are the pointer position; Delta is the
// wheel movement for Wheel events.
type Event struct {
	Kind  Kind
	X, Y  float64
	Delta float64
}

// Scroll is the panel's vertical offset, always within [-Max, 0].
type Scroll struct {
	Offset float64
	max    float64
}

// SetExtent recomputes the scroll range from the content and visible
// heights and re-clamps the offset.
func (s *Scroll) SetExtent(content, visible float64) {
	s.max = content - visible
	if s.max < 0 {
		s.max = 0
	}
	s.clamp()
}

// Apply moves the offset by delta and clamps it.
func (s *Scroll) Apply(delta float64) {
	s.Offset += delta
	s.clamp()
}

// Max is the current scroll range.
func (s *Scroll) Max() float64 { return s.max }

func (s *Scroll) clamp() {
	if s.Offset > 0 {
		s.Offset = 0
	}
	if s.Offset < -s.max {
		s.Offset = -s.max
	}
}

// Hands is the part of the hand collection the router mutates.
type Hands interface {
	Add()
	Remove()
}

// Router dispatches polled events to the hand collection and the panel
// scroll. Presses hit-test the buttons; wheel events only count over the
// panel.
type Router struct {
	AddButton    Rect
	RemoveButton Rect
	Panel        Rect
	ScrollSpeed  float64

	hands  Hands
	scroll *Scroll
}

// NewRouter wires the button and panel rectangles to h and s.
func NewRouter(h Hands, s *Scroll, add, remove, panel Rect, scrollSpeed float64) *Router {
	return &Router{
		AddButton:    add,
		RemoveButton: remove,
		Panel:        panel,
		ScrollSpeed:  scrollSpeed,
		hands:        h,
		scroll:       s,
	}
}

// Dispatch applies ev and reports whether it asked the program to quit.
func (r *Router) Dispatch(ev Event) bool {
	switch ev.Kind {
	case Quit:
		return true
	case Press:
		if r.AddButton.Contains(ev.X, ev.Y) {
			r.hands.Add()
		} else if r.RemoveButton.Contains(ev.X, ev.Y) {
			r.hands.Remove()
		}
	case Wheel:
		if r.Panel.Contains(ev.X, ev.Y) {
			r.scroll.Apply(ev.Delta * r.ScrollSpeed)
		}
	}
	return false
}
