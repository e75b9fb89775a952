// Package clock projects elapsed time onto hand angles.
package clock

import (
	"math"
	"time"

	"github.com/jonboulle/clockwork"
)

const twoPi = 2 * math.Pi

// Source reports monotonic time in seconds. Clock never advances it.
type Source interface {
	Now() float64
}

// Func adapts a plain function, such as a frame timer, to a Source.
type Func func() float64

func (f Func) Now() float64 { return f() }

// Monotonic returns a Source backed by the runtime's monotonic clock.
func Monotonic() Source {
	return FromClock(clockwork.NewRealClock())
}

// FromClock reports seconds elapsed on c since the call. Tests pass a
// clockwork fake clock and move it with Advance.
func FromClock(c clockwork.Clock) Source {
	return wallSource{clk: c, start: c.Now()}
}

type wallSource struct {
	clk   clockwork.Clock
	start time.Time
}

func (w wallSource) Now() float64 { return w.clk.Since(w.start).Seconds() }

// Clock turns a Source into hand angles relative to a fixed start reading.
type Clock struct {
	src   Source
	start float64
}

// New captures the start reference from src.
func New(src Source) *Clock {
	return &Clock{src: src, start: src.Now()}
}

// Start is the source reading captured by New.
func (c *Clock) Start() float64 { return c.start }

// Elapsed is the time since Start in seconds.
func (c *Clock) Elapsed() float64 {
	return c.src.Now() - c.start
}

// Angle is the current angle of a hand spinning at omega rad/s.
func (c *Clock) Angle(omega float64) float64 {
	return Angle(omega, c.Elapsed())
}

// AngleAt is the angle at an externally supplied reading of the source.
func (c *Clock) AngleAt(omega, now float64) float64 {
	return Angle(omega, now-c.start)
}

// Angle returns (omega*elapsed - π/2) mod 2π in [0, 2π). An elapsed time of
// zero points the hand at 12 o'clock in screen coordinates. A hand whose
// period has underflowed to zero spins infinitely fast and is held at 0.
func Angle(omega, elapsed float64) float64 {
	a := math.Mod(omega*elapsed-math.Pi/2, twoPi)
	if math.IsNaN(a) {
		return 0
	}
	if a < 0 {
		a += twoPi
	}
	if a >= twoPi {
		a = 0
	}
	return a
}
