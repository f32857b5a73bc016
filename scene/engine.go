package scene

import (
	"math"
	"math/rand"
	"time"

	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/metrics"
)

const twoPi = 2 * math.Pi

// Engine owns the visual state and advances it one tick at a time.
// Randomness comes from the injected source only, so a fixed seed yields a
// reproducible run.
type Engine struct {
	state  *State
	rng    *rand.Rand
	width  int
	height int

	particles bool
}

// NewEngine builds the state for a fixed core count and viewport. Initial
// band phases are staggered so adjacent bands do not move in lockstep. A
// nil rng falls back to a time-based seed.
func NewEngine(cores, width, height int, rng *rand.Rand) *Engine {
	if cores < 1 {
		cores = 1
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	bands := make([]Band, cores)
	for i := range bands {
		bands[i].Phase = wrapPhase(float64(i) * constants.BandPhaseStagger)
	}

	e := &Engine{
		state: &State{
			Bands:     bands,
			Particles: make([]Particle, 0, constants.MaxParticles),
			History:   NewHistory(cores, constants.HistoryLen),
		},
		rng: rng,
	}
	e.SetViewport(width, height)
	return e
}

// State exposes the owned state for composition. Callers must treat it as
// read-only.
func (e *Engine) State() *State {
	return e.state
}

// ParticlesEnabled reports the particle toggle.
func (e *Engine) ParticlesEnabled() bool {
	return e.particles
}

// SetParticlesEnabled flips particle spawning. Disabling clears live
// particles immediately.
func (e *Engine) SetParticlesEnabled(on bool) {
	e.particles = on
	if !on {
		e.state.Particles = e.state.Particles[:0]
	}
}

// SetViewport tracks the drawable grid used for spawn columns and the
// out-of-bounds sweep.
func (e *Engine) SetViewport(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	e.width, e.height = width, height
}

// Advance moves the visual state forward by dt seconds using one snapshot.
// Band and wave phases advance first, then existing particles move and
// expire, then new particles spawn. A particle spawned this tick is never
// swept in the same tick.
func (e *Engine) Advance(snap metrics.Snapshot, dt float64) {
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	st := e.state

	for i := range st.Bands {
		st.Bands[i].Phase = wrapPhase(st.Bands[i].Phase + twoPi*constants.BandBaseRate*dt)
		load := 0.0
		if i < len(snap.CoreLoads) {
			load = clamp01(snap.CoreLoads[i])
		}
		st.Bands[i].Amplitude = load
	}

	st.WavePhase = wrapPhase(st.WavePhase + twoPi*constants.WaveBaseRate*dt)

	e.advanceParticles(dt)
	if e.particles {
		e.spawn(KindNetwork, snap.NetBytesPerSec,
			constants.NetSpawnThreshold, constants.NetRateFullScale, constants.NetworkParticleGlyphs)
		e.spawn(KindDisk, snap.DiskBytesPerSec,
			constants.DiskSpawnThreshold, constants.DiskRateFullScale, constants.DiskParticleGlyphs)
	}

	st.History.Push(snap.CoreLoads)
	st.Current = snap
}

// advanceParticles applies gravity and motion, then compacts away expired
// and out-of-bounds particles in place, preserving age order.
func (e *Engine) advanceParticles(dt float64) {
	live := e.state.Particles[:0]
	for _, p := range e.state.Particles {
		p.VY += constants.ParticleGravity * dt
		p.X += p.VX * dt
		p.Y += p.VY * dt
		p.Age += dt
		if p.Age >= constants.ParticleMaxAge {
			continue
		}
		if p.X < 0 || p.X >= float64(e.width) || p.Y >= float64(e.height) {
			continue
		}
		live = append(live, p)
	}
	e.state.Particles = live
}

// spawn emits a burst for one activity kind when its rate clears the
// threshold. Burst size and fall speed scale with the rate up to full
// scale; columns are chosen at random along the top row.
func (e *Engine) spawn(kind Kind, rate, threshold, fullScale float64, glyphs []rune) {
	if rate <= threshold {
		return
	}
	norm := clamp01(rate / fullScale)
	count := 1 + int(norm*float64(constants.MaxSpawnPerTick-1))
	speed := constants.ParticleMinFallSpeed +
		(constants.ParticleMaxFallSpeed-constants.ParticleMinFallSpeed)*norm

	for i := 0; i < count; i++ {
		e.push(Particle{
			X:     float64(e.rng.Intn(e.width)),
			VX:    (e.rng.Float64()*2 - 1) * constants.ParticleDriftSpeed,
			VY:    speed * (0.75 + e.rng.Float64()*0.5),
			Kind:  kind,
			Glyph: glyphs[e.rng.Intn(len(glyphs))],
		})
	}
}

// push appends a particle, dropping from the front when the cap is
// reached. The front is always the oldest because ages advance uniformly.
func (e *Engine) push(p Particle) {
	st := e.state
	if len(st.Particles) >= constants.MaxParticles {
		over := len(st.Particles) - constants.MaxParticles + 1
		n := copy(st.Particles, st.Particles[over:])
		st.Particles = st.Particles[:n]
	}
	st.Particles = append(st.Particles, p)
}

// wrapPhase keeps a phase within [0,2π) so precision holds over long runs.
func wrapPhase(p float64) float64 {
	p = math.Mod(p, twoPi)
	if p < 0 {
		p += twoPi
	}
	return p
}
