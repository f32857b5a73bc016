package metrics

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

// Sampler produces one Snapshot per tick. Implementations must return
// without blocking and must not fail after construction: when a source is
// unavailable the previous values are reused.
type Sampler interface {
	// Sample returns the current snapshot. Stale values are returned when
	// a probe is unavailable.
	Sample() Snapshot

	// Cores returns the logical core count detected at construction.
	Cores() int
}

// probes isolates the gopsutil entry points so sampler tests can fail them
// selectively.
type probes interface {
	cpuPercents() ([]float64, error)
	virtualMemory() (*mem.VirtualMemoryStat, error)
	netCounters() ([]net.IOCountersStat, error)
	diskCounters() (map[string]disk.IOCountersStat, error)
}

type gopsutilProbes struct{}

func (gopsutilProbes) cpuPercents() ([]float64, error) { return cpu.Percent(0, true) }

func (gopsutilProbes) virtualMemory() (*mem.VirtualMemoryStat, error) { return mem.VirtualMemory() }

func (gopsutilProbes) netCounters() ([]net.IOCountersStat, error) { return net.IOCounters(false) }

func (gopsutilProbes) diskCounters() (map[string]disk.IOCountersStat, error) {
	return disk.IOCounters()
}

// SystemSampler reads host metrics through gopsutil, differencing the byte
// counters against the previous call to produce rates. Zero-interval CPU
// reads compare against the previous invocation, so Sample never blocks.
type SystemSampler struct {
	probes probes
	cores  int
	clock  func() time.Time

	prev          Snapshot
	prevNetBytes  uint64
	prevDiskBytes uint64
	prevSampleAt  time.Time
	primed        bool
}

// NewSystemSampler detects the core count and primes the CPU counters.
// Detection failure is fatal for the caller: without a core count the band
// layout cannot be fixed.
func NewSystemSampler() (*SystemSampler, error) {
	return newSystemSampler(gopsutilProbes{}, time.Now)
}

func newSystemSampler(p probes, clock func() time.Time) (*SystemSampler, error) {
	loads, err := p.cpuPercents()
	if err != nil {
		return nil, fmt.Errorf("detecting cores: %w", err)
	}
	if len(loads) == 0 {
		return nil, errors.New("no cpu cores reported")
	}
	return &SystemSampler{
		probes: p,
		cores:  len(loads),
		clock:  clock,
		prev:   Snapshot{CoreLoads: make([]float64, len(loads))},
	}, nil
}

// Cores returns the logical core count detected at construction.
func (s *SystemSampler) Cores() int {
	return s.cores
}

// Sample reads all probes, substituting the previous value for any probe
// that fails. Failures are logged at low severity and never propagate.
func (s *SystemSampler) Sample() Snapshot {
	now := s.clock()
	var elapsed float64
	if s.primed {
		elapsed = now.Sub(s.prevSampleAt).Seconds()
	}

	snap := s.prev

	if loads, err := s.probes.cpuPercents(); err == nil && len(loads) > 0 {
		snap.CoreLoads = normalizeLoads(loads, s.cores)
	} else if err != nil {
		log.Printf("metrics: cpu probe failed, reusing previous: %v", err)
	}

	if vm, err := s.probes.virtualMemory(); err == nil {
		snap.MemoryUsed = clamp01(vm.UsedPercent / 100)
		snap.MemUsedBytes = vm.Used
		snap.MemTotalBytes = vm.Total
	} else {
		log.Printf("metrics: memory probe failed, reusing previous: %v", err)
	}

	if counters, err := s.probes.netCounters(); err == nil && len(counters) > 0 {
		total := counters[0].BytesRecv + counters[0].BytesSent
		snap.NetBytesPerSec = rateSince(total, &s.prevNetBytes, elapsed)
	} else if err != nil {
		log.Printf("metrics: net probe failed, reusing previous: %v", err)
	}

	if counters, err := s.probes.diskCounters(); err == nil {
		var total uint64
		for _, c := range counters {
			total += c.ReadBytes + c.WriteBytes
		}
		snap.DiskBytesPerSec = rateSince(total, &s.prevDiskBytes, elapsed)
	} else {
		log.Printf("metrics: disk probe failed, reusing previous: %v", err)
	}

	s.prevSampleAt = now
	s.primed = true
	s.prev = snap
	return snap
}

// rateSince converts a monotonic byte counter into bytes per second against
// the previous observation. The first observation and counter resets yield
// zero rather than a spike.
func rateSince(total uint64, prev *uint64, elapsed float64) float64 {
	last := *prev
	*prev = total
	if elapsed <= 0 || total < last {
		return 0
	}
	return float64(total-last) / elapsed
}

// normalizeLoads converts per-core percentages into clamped fractions of
// fixed length, so a probe glitch cannot change the core count downstream.
func normalizeLoads(percents []float64, cores int) []float64 {
	loads := make([]float64, cores)
	for i := 0; i < cores && i < len(percents); i++ {
		loads[i] = clamp01(percents[i] / 100)
	}
	return loads
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
