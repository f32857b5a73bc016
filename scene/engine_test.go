package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/metrics"
)

func newTestEngine(cores, width, height int) *Engine {
	return NewEngine(cores, width, height, rand.New(rand.NewSource(1)))
}

func flatSnapshot(cores int, load float64) metrics.Snapshot {
	loads := make([]float64, cores)
	for i := range loads {
		loads[i] = load
	}
	return metrics.Snapshot{CoreLoads: loads}
}

// TestBandCountFixed verifies the band count set at construction survives
// 10,000 ticks of snapshots with mismatched core lists.
func TestBandCountFixed(t *testing.T) {
	e := newTestEngine(8, 80, 24)
	lengths := []int{0, 1, 4, 8, 100}
	dts := []float64{0, 0.016, 0.5}

	for i := 0; i < 10000; i++ {
		snap := flatSnapshot(lengths[i%len(lengths)], 0.5)
		snap.NetBytesPerSec = float64(i%3) * constants.NetSpawnThreshold
		e.Advance(snap, dts[i%len(dts)])

		if got := len(e.State().Bands); got != 8 {
			t.Fatalf("Expected band count to stay 8, got %d at tick %d", got, i)
		}
	}
}

// TestBandAmplitudeTracksLoad verifies amplitudes follow the snapshot's
// clamped per-core loads.
func TestBandAmplitudeTracksLoad(t *testing.T) {
	e := newTestEngine(3, 80, 24)
	e.Advance(metrics.Snapshot{CoreLoads: []float64{0.75, -2, 9}}, 0.016)

	want := []float64{0.75, 0, 1}
	for i, b := range e.State().Bands {
		if b.Amplitude != want[i] {
			t.Errorf("Expected band %d amplitude to be %v, got %v", i, want[i], b.Amplitude)
		}
	}
}

// TestAdvanceIdempotentShape verifies that identical snapshots under a
// constant dt keep amplitudes constant while phases advance by the same
// step every tick.
func TestAdvanceIdempotentShape(t *testing.T) {
	const dt = 0.016
	e := newTestEngine(4, 80, 24)
	snap := flatSnapshot(4, 0.4)

	wantStep := twoPi * constants.BandBaseRate * dt

	for tick := 0; tick < 200; tick++ {
		before := make([]float64, 4)
		for i, b := range e.State().Bands {
			before[i] = b.Phase
		}

		e.Advance(snap, dt)

		for i, b := range e.State().Bands {
			if b.Amplitude != 0.4 {
				t.Fatalf("Expected amplitude to hold at 0.4, got %v at tick %d", b.Amplitude, tick)
			}
			step := b.Phase - before[i]
			if step < 0 {
				step += twoPi
			}
			if math.Abs(step-wantStep) > 1e-9 {
				t.Fatalf("Expected band %d phase step %v, got %v at tick %d",
					i, wantStep, step, tick)
			}
		}
	}
}

// TestBandValueAt verifies troughs clamp to zero and crests never exceed
// the amplitude.
func TestBandValueAt(t *testing.T) {
	b := Band{Phase: 0, Amplitude: 0.8}
	for col := 0; col < 200; col++ {
		v := b.ValueAt(col)
		if v < 0 {
			t.Fatalf("Expected non-negative value at column %d, got %v", col, v)
		}
		if v > 0.8 {
			t.Fatalf("Expected value at column %d to stay under the amplitude, got %v", col, v)
		}
	}
}

// TestParticleSpawnOnActivity verifies a rate above the threshold spawns
// fresh particles in the same tick, unaged and on the top row.
func TestParticleSpawnOnActivity(t *testing.T) {
	e := newTestEngine(2, 80, 24)
	e.SetParticlesEnabled(true)

	snap := flatSnapshot(2, 0.2)
	snap.NetBytesPerSec = constants.NetSpawnThreshold * 4
	e.Advance(snap, 0.016)

	fresh := 0
	for _, p := range e.State().Particles {
		if p.Kind != KindNetwork {
			t.Errorf("Expected only network particles, got %v", p.Kind)
		}
		if p.Age == 0 && p.Y == 0 {
			fresh++
		}
	}
	if fresh == 0 {
		t.Fatal("Expected at least one unaged top-row particle after an active tick")
	}
}

// TestParticleFallsNextTick verifies a spawned particle's row strictly
// increases on the following tick.
func TestParticleFallsNextTick(t *testing.T) {
	e := newTestEngine(2, 80, 24)
	e.SetParticlesEnabled(true)

	active := flatSnapshot(2, 0.2)
	active.NetBytesPerSec = constants.NetRateFullScale
	e.Advance(active, 0.016)

	if len(e.State().Particles) == 0 {
		t.Fatal("Expected particles after an active tick")
	}
	first := e.State().Particles[0]

	e.Advance(flatSnapshot(2, 0.2), 0.016)

	if len(e.State().Particles) == 0 {
		t.Fatal("Expected the particle to survive one quiet tick")
	}
	moved := e.State().Particles[0]
	if moved.Y <= first.Y {
		t.Errorf("Expected row to increase from %v, got %v", first.Y, moved.Y)
	}
	if moved.Age <= first.Age {
		t.Errorf("Expected age to increase from %v, got %v", first.Age, moved.Age)
	}
}

// TestParticleThresholdBoundary verifies a rate at or below the threshold
// spawns nothing.
func TestParticleThresholdBoundary(t *testing.T) {
	e := newTestEngine(2, 80, 24)
	e.SetParticlesEnabled(true)

	snap := flatSnapshot(2, 0.2)
	snap.NetBytesPerSec = constants.NetSpawnThreshold
	snap.DiskBytesPerSec = constants.DiskSpawnThreshold
	e.Advance(snap, 0.016)

	if got := len(e.State().Particles); got != 0 {
		t.Errorf("Expected no particles at the threshold, got %d", got)
	}
}

// TestParticleToggle verifies spawning is inert while disabled and that
// disabling clears live particles immediately.
func TestParticleToggle(t *testing.T) {
	e := newTestEngine(2, 80, 24)
	active := flatSnapshot(2, 0.2)
	active.NetBytesPerSec = constants.NetRateFullScale

	e.Advance(active, 0.016)
	if got := len(e.State().Particles); got != 0 {
		t.Fatalf("Expected no particles while disabled, got %d", got)
	}

	e.SetParticlesEnabled(true)
	e.Advance(active, 0.016)
	if len(e.State().Particles) == 0 {
		t.Fatal("Expected particles after enabling")
	}

	e.SetParticlesEnabled(false)
	if got := len(e.State().Particles); got != 0 {
		t.Errorf("Expected disabling to clear particles, got %d", got)
	}
}

// TestParticleCap verifies the particle count never exceeds the cap under
// sustained maximum activity and the slice stays ordered oldest-first.
func TestParticleCap(t *testing.T) {
	e := newTestEngine(4, 120, 40)
	e.SetParticlesEnabled(true)

	snap := flatSnapshot(4, 0.9)
	snap.NetBytesPerSec = constants.NetRateFullScale * 2
	snap.DiskBytesPerSec = constants.DiskRateFullScale * 2

	for tick := 0; tick < 400; tick++ {
		e.Advance(snap, 1.0/60)

		ps := e.State().Particles
		if len(ps) > constants.MaxParticles {
			t.Fatalf("Expected at most %d particles, got %d at tick %d",
				constants.MaxParticles, len(ps), tick)
		}
		if len(ps) > 1 && ps[0].Age < ps[len(ps)-1].Age {
			t.Fatalf("Expected the front particle to be oldest at tick %d", tick)
		}
	}

	if got := len(e.State().Particles); got != constants.MaxParticles {
		t.Errorf("Expected the cap to bind under sustained activity, got %d", got)
	}
}

// TestParticleExpiry verifies particles disappear at the end of their
// lifetime even while still inside the grid.
func TestParticleExpiry(t *testing.T) {
	e := newTestEngine(2, 80, 10000)
	e.SetParticlesEnabled(true)

	active := flatSnapshot(2, 0.2)
	active.NetBytesPerSec = constants.NetSpawnThreshold * 2
	e.Advance(active, 0.016)
	if len(e.State().Particles) == 0 {
		t.Fatal("Expected particles after an active tick")
	}

	e.Advance(flatSnapshot(2, 0.2), constants.ParticleMaxAge)
	if got := len(e.State().Particles); got != 0 {
		t.Errorf("Expected all particles to expire, got %d", got)
	}
}

// TestParticleViewportSweep verifies particles outside a shrunken viewport
// are removed on the next tick.
func TestParticleViewportSweep(t *testing.T) {
	e := newTestEngine(2, 80, 24)
	e.SetParticlesEnabled(true)

	active := flatSnapshot(2, 0.2)
	active.NetBytesPerSec = constants.NetRateFullScale
	e.Advance(active, 0.016)

	e.SetViewport(1, 24)
	e.Advance(flatSnapshot(2, 0.2), 0.016)

	for _, p := range e.State().Particles {
		if p.X >= 1 {
			t.Errorf("Expected particles beyond column 0 to be swept, found X=%v", p.X)
		}
	}
}

// TestAdvanceNegativeDt verifies a negative dt is treated as zero.
func TestAdvanceNegativeDt(t *testing.T) {
	e := newTestEngine(2, 80, 24)
	snap := flatSnapshot(2, 0.5)
	e.Advance(snap, 0.016)

	before := e.State().Bands[0].Phase
	e.Advance(snap, -1)
	if got := e.State().Bands[0].Phase; got != before {
		t.Errorf("Expected phase to hold under negative dt, got %v want %v", got, before)
	}
}

// TestWaveOffsetBounds verifies the wave offset scales with the memory
// fraction and stays within [-1,1].
func TestWaveOffsetBounds(t *testing.T) {
	e := newTestEngine(1, 80, 24)

	snap := flatSnapshot(1, 0.1)
	snap.MemoryUsed = 1
	e.Advance(snap, 0.016)
	for col := 0; col < 80; col++ {
		off := e.State().WaveOffsetAt(col)
		if off < -1 || off > 1 {
			t.Fatalf("Expected offset within [-1,1], got %v at column %d", off, col)
		}
	}

	snap.MemoryUsed = 0
	e.Advance(snap, 0.016)
	for col := 0; col < 80; col++ {
		if off := e.State().WaveOffsetAt(col); off != 0 {
			t.Fatalf("Expected zero offset with empty memory, got %v at column %d", off, col)
		}
	}
}

// TestDeterministicRuns verifies two engines with the same seed and inputs
// produce identical particle fields.
func TestDeterministicRuns(t *testing.T) {
	run := func() []Particle {
		e := NewEngine(2, 80, 24, rand.New(rand.NewSource(42)))
		e.SetParticlesEnabled(true)
		snap := flatSnapshot(2, 0.5)
		snap.NetBytesPerSec = constants.NetSpawnThreshold * 10
		snap.DiskBytesPerSec = constants.DiskSpawnThreshold * 10
		for i := 0; i < 30; i++ {
			e.Advance(snap, 0.016)
		}
		return append([]Particle(nil), e.State().Particles...)
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("Expected identical particle counts, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("Expected particle %d to match across runs, got %+v and %+v", i, a[i], b[i])
		}
	}
}

// TestHistoryRing verifies ring capacity, ordering and the average view.
func TestHistoryRing(t *testing.T) {
	h := NewHistory(2, 4)
	for i := 1; i <= 6; i++ {
		v := float64(i) / 10
		h.Push([]float64{v, v * 2})
	}

	got := h.Core(0, 10)
	want := []float64{0.3, 0.4, 0.5, 0.6}
	if len(got) != len(want) {
		t.Fatalf("Expected %d samples, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("Expected sample %d to be %v, got %v", i, want[i], got[i])
		}
	}

	avg := h.Average(2)
	wantAvg := []float64{0.75, 0.8}
	for i := range wantAvg {
		if math.Abs(avg[i]-wantAvg[i]) > 1e-9 {
			t.Errorf("Expected average %d to be %v, got %v", i, wantAvg[i], avg[i])
		}
	}

	if h.Core(5, 4) != nil {
		t.Error("Expected nil for an out-of-range core")
	}
}

// TestKindString verifies the kind labels used by the info panel.
func TestKindString(t *testing.T) {
	if KindNetwork.String() != "network" {
		t.Errorf("Expected network, got %s", KindNetwork)
	}
	if KindDisk.String() != "disk" {
		t.Errorf("Expected disk, got %s", KindDisk)
	}
}
