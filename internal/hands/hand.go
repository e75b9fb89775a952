package hands

import (
	"image/color"
	"math"
)

// SpeedOfLight in m/s.
const SpeedOfLight = 299792458.0

var (
	Superluminal = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	DefaultBlue  = color.RGBA{R: 0, G: 0, B: 150, A: 255}
)

const (
	blueStart   = 255
	blueFalloff = 40
	blueFloor   = 50
)

// Params are the physical constants shared by every hand of a collection.
type Params struct {
	LengthM float64
	Divisor float64
}

// DefaultParams is a 5 cm hand with each added hand 60 times faster.
func DefaultParams() Params {
	return Params{LengthM: 0.05, Divisor: 60}
}

// Hand is one simulated clock hand. Every field after Generation is derived
// from Period when the hand is created and never recomputed.
type Hand struct {
	Name            string
	Period          float64
	Generation      int
	AngularVelocity float64
	TipSpeed        float64
	SpeedKMH        float64
	LightRatio      float64
	Color           color.RGBA
}

// Derive computes a hand from its period. period must be positive.
func Derive(name string, period float64, generation int, p Params) Hand {
	omega := 2 * math.Pi / period
	tip := p.LengthM * omega
	h := Hand{
		Name:            name,
		Period:          period,
		Generation:      generation,
		AngularVelocity: omega,
		TipSpeed:        tip,
		SpeedKMH:        tip * 3.6,
		LightRatio:      tip / SpeedOfLight,
	}
	h.Color = handColor(tip, generation)
	return h
}

// IsSuperluminal reports whether the tip moves faster than light.
func (h Hand) IsSuperluminal() bool {
	return h.TipSpeed > SpeedOfLight
}

func handColor(tip float64, generation int) color.RGBA {
	if tip > SpeedOfLight {
		return Superluminal
	}
	b := blueStart - generation*blueFalloff
	if b < blueFloor {
		b = blueFloor
	}
	return color.RGBA{R: 0, G: 0, B: uint8(b), A: 255}
}

// RatioColor is the color used to print a hand's light-speed ratio.
func RatioColor(h Hand) color.RGBA {
	if h.LightRatio > 1 {
		return Superluminal
	}
	return DefaultBlue
}
