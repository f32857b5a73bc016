package theme

import (
	"math"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Stop anchors a gradient color at a position in [0,1].
type Stop struct {
	Pos   float64
	Color colorful.Color
}

// Gradient is an ordered list of color stops. Lookup clamps the position
// and blends linearly between the two nearest stops.
type Gradient struct {
	stops []Stop
}

// NewGradient builds a gradient from stops ordered by ascending position.
func NewGradient(stops ...Stop) Gradient {
	return Gradient{stops: stops}
}

// At resolves the gradient color at t as a terminal color. t is clamped
// into [0,1] first, so the lookup is total.
func (g Gradient) At(t float64) tcell.Color {
	c := g.at(clamp01(t))
	r, gg, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(gg), int32(b))
}

func (g Gradient) at(t float64) colorful.Color {
	if len(g.stops) == 0 {
		return colorful.Color{}
	}
	if t <= g.stops[0].Pos {
		return g.stops[0].Color
	}
	for i := 0; i < len(g.stops)-1; i++ {
		lo, hi := g.stops[i], g.stops[i+1]
		if t <= hi.Pos {
			span := hi.Pos - lo.Pos
			if span <= 0 {
				return hi.Color
			}
			return lo.Color.BlendRgb(hi.Color, (t-lo.Pos)/span)
		}
	}
	return g.stops[len(g.stops)-1].Color
}

// Slice derives a gradient covering the sub-range [from,to] of g,
// renormalized to [0,1]. Particle kinds use slices of the base gradient so
// they stay palette-coherent while remaining distinguishable.
func (g Gradient) Slice(from, to float64) Gradient {
	from = clamp01(from)
	to = clamp01(to)
	if to <= from || len(g.stops) == 0 {
		return g
	}
	span := to - from
	stops := []Stop{{Pos: 0, Color: g.at(from)}}
	for _, s := range g.stops {
		if s.Pos > from && s.Pos < to {
			stops = append(stops, Stop{Pos: (s.Pos - from) / span, Color: s.Color})
		}
	}
	stops = append(stops, Stop{Pos: 1, Color: g.at(to)})
	return Gradient{stops: stops}
}

// rgb builds a colorful color from 8-bit channels.
func rgb(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
