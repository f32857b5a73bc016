package scene

import (
	"math"

	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/metrics"
)

// Band is the animation state of one core's waveform.
type Band struct {
	// Phase is the waveform position in radians, wrapped to [0,2π)
	Phase float64

	// Amplitude follows the core's load fraction in [0,1]
	Amplitude float64
}

// ValueAt returns the waveform height at a column in [0,1]. Troughs are
// clamped to zero so only the crest renders and the wave reads as
// travelling.
func (b Band) ValueAt(col int) float64 {
	v := b.Amplitude * math.Sin(b.Phase+float64(col)*constants.BandColumnStep)
	if v < 0 {
		return 0
	}
	return v
}

// State is the complete visual state, advanced once per tick. The Engine
// owns it; renderers receive it read-only for the duration of a composite
// call.
type State struct {
	// Bands holds one waveform per detected core. The length is fixed at
	// startup and never changes afterwards.
	Bands []Band

	// WavePhase drives the memory wave background, in radians
	WavePhase float64

	// Particles is bounded by constants.MaxParticles. Ages advance
	// uniformly, so index 0 is always the oldest live particle.
	Particles []Particle

	// History retains recent per-core load fractions for the info panel
	History *History

	// Current is the snapshot consumed this tick, kept for the info panel
	Current metrics.Snapshot
}

// WaveOffsetAt returns the memory wave vertical offset at a column as a
// fraction in [-1,1], scaled by the used-memory fraction.
func (s *State) WaveOffsetAt(col int) float64 {
	return clamp01(s.Current.MemoryUsed) * math.Sin(s.WavePhase+float64(col)*constants.WaveColumnStep)
}

// History is a fixed-capacity ring of per-core load samples.
type History struct {
	rings [][]float64
	size  int
	head  int
	count int
}

// NewHistory allocates rings for the given core count and capacity.
func NewHistory(cores, capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	rings := make([][]float64, cores)
	for i := range rings {
		rings[i] = make([]float64, capacity)
	}
	return &History{rings: rings, size: capacity}
}

// Push records one load sample per core. Missing entries record as zero so
// a short probe result cannot shift older samples.
func (h *History) Push(loads []float64) {
	if h == nil || len(h.rings) == 0 {
		return
	}
	for i := range h.rings {
		v := 0.0
		if i < len(loads) {
			v = clamp01(loads[i])
		}
		h.rings[i][h.head] = v
	}
	h.head = (h.head + 1) % h.size
	if h.count < h.size {
		h.count++
	}
}

// Core returns up to n most recent samples for one core, oldest first.
func (h *History) Core(core, n int) []float64 {
	if h == nil || core < 0 || core >= len(h.rings) {
		return nil
	}
	n = h.window(n)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		out[j] = h.rings[core][h.index(n, j)]
	}
	return out
}

// Average returns up to n most recent cross-core average samples, oldest
// first.
func (h *History) Average(n int) []float64 {
	if h == nil || len(h.rings) == 0 {
		return nil
	}
	n = h.window(n)
	if n == 0 {
		return nil
	}
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		idx := h.index(n, j)
		var sum float64
		for _, ring := range h.rings {
			sum += ring[idx]
		}
		out[j] = sum / float64(len(h.rings))
	}
	return out
}

func (h *History) window(n int) int {
	if n > h.count {
		n = h.count
	}
	if n < 0 {
		n = 0
	}
	return n
}

func (h *History) index(n, j int) int {
	return (h.head + h.size - n + j) % h.size
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
