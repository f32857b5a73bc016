package metrics

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
)

var errProbe = errors.New("probe unavailable")

// fakeProbes serves canned values and can fail any subsystem on demand.
type fakeProbes struct {
	loads    []float64
	memStat  mem.VirtualMemoryStat
	netStat  net.IOCountersStat
	diskStat disk.IOCountersStat

	failCPU  bool
	failMem  bool
	failNet  bool
	failDisk bool
}

func (f *fakeProbes) cpuPercents() ([]float64, error) {
	if f.failCPU {
		return nil, errProbe
	}
	return f.loads, nil
}

func (f *fakeProbes) virtualMemory() (*mem.VirtualMemoryStat, error) {
	if f.failMem {
		return nil, errProbe
	}
	stat := f.memStat
	return &stat, nil
}

func (f *fakeProbes) netCounters() ([]net.IOCountersStat, error) {
	if f.failNet {
		return nil, errProbe
	}
	return []net.IOCountersStat{f.netStat}, nil
}

func (f *fakeProbes) diskCounters() (map[string]disk.IOCountersStat, error) {
	if f.failDisk {
		return nil, errProbe
	}
	return map[string]disk.IOCountersStat{"sda": f.diskStat}, nil
}

// testClock returns a manual clock and a function to advance it.
func testClock() (func() time.Time, func(d time.Duration)) {
	current := time.Unix(1000, 0)
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

// TestNewSamplerCores verifies the core count is fixed by the priming read.
func TestNewSamplerCores(t *testing.T) {
	probes := &fakeProbes{loads: []float64{10, 20, 30, 40}}
	clock, _ := testClock()

	s, err := newSystemSampler(probes, clock)
	if err != nil {
		t.Fatalf("Expected sampler construction to succeed, got %v", err)
	}
	if s.Cores() != 4 {
		t.Errorf("Expected 4 cores, got %d", s.Cores())
	}
}

// TestNewSamplerFailure verifies construction fails when cores cannot be
// detected.
func TestNewSamplerFailure(t *testing.T) {
	clock, _ := testClock()

	if _, err := newSystemSampler(&fakeProbes{failCPU: true}, clock); err == nil {
		t.Error("Expected construction to fail when the cpu probe is down")
	}
	if _, err := newSystemSampler(&fakeProbes{}, clock); err == nil {
		t.Error("Expected construction to fail with zero cores reported")
	}
}

// TestSampleClampsLoads verifies out-of-range percentages clamp into [0,1].
func TestSampleClampsLoads(t *testing.T) {
	probes := &fakeProbes{loads: []float64{-5, 150, math.NaN(), 50}}
	clock, _ := testClock()
	s, err := newSystemSampler(probes, clock)
	if err != nil {
		t.Fatalf("Expected sampler construction to succeed, got %v", err)
	}

	snap := s.Sample()
	want := []float64{0, 1, 0, 0.5}
	if len(snap.CoreLoads) != len(want) {
		t.Fatalf("Expected %d core loads, got %d", len(want), len(snap.CoreLoads))
	}
	for i, w := range want {
		if snap.CoreLoads[i] != w {
			t.Errorf("Expected core %d load to be %v, got %v", i, w, snap.CoreLoads[i])
		}
	}
}

// TestSampleRates verifies byte counter deltas convert to per-second rates
// and that the first sample reports zero instead of a spike.
func TestSampleRates(t *testing.T) {
	probes := &fakeProbes{
		loads:    []float64{10},
		netStat:  net.IOCountersStat{BytesRecv: 1000, BytesSent: 500},
		diskStat: disk.IOCountersStat{ReadBytes: 4000, WriteBytes: 2000},
	}
	clock, advance := testClock()
	s, err := newSystemSampler(probes, clock)
	if err != nil {
		t.Fatalf("Expected sampler construction to succeed, got %v", err)
	}

	first := s.Sample()
	if first.NetBytesPerSec != 0 || first.DiskBytesPerSec != 0 {
		t.Errorf("Expected zero rates on first sample, got net=%v disk=%v",
			first.NetBytesPerSec, first.DiskBytesPerSec)
	}

	probes.netStat.BytesRecv += 1 << 20
	probes.diskStat.WriteBytes += 2 << 20
	advance(time.Second)

	snap := s.Sample()
	if snap.NetBytesPerSec != 1<<20 {
		t.Errorf("Expected net rate to be %d B/s, got %v", 1<<20, snap.NetBytesPerSec)
	}
	if snap.DiskBytesPerSec != 2<<20 {
		t.Errorf("Expected disk rate to be %d B/s, got %v", 2<<20, snap.DiskBytesPerSec)
	}
}

// TestSampleCounterReset verifies a counter rollback yields zero rather
// than a huge unsigned delta.
func TestSampleCounterReset(t *testing.T) {
	probes := &fakeProbes{
		loads:   []float64{10},
		netStat: net.IOCountersStat{BytesRecv: 1 << 30},
	}
	clock, advance := testClock()
	s, err := newSystemSampler(probes, clock)
	if err != nil {
		t.Fatalf("Expected sampler construction to succeed, got %v", err)
	}

	s.Sample()
	probes.netStat.BytesRecv = 100
	advance(time.Second)

	if snap := s.Sample(); snap.NetBytesPerSec != 0 {
		t.Errorf("Expected zero rate after counter reset, got %v", snap.NetBytesPerSec)
	}
}

// TestSampleFailSoft verifies every probe failure reuses the previous
// snapshot values instead of erroring into the render path.
func TestSampleFailSoft(t *testing.T) {
	probes := &fakeProbes{
		loads:    []float64{40, 60},
		memStat:  mem.VirtualMemoryStat{Total: 1000, Used: 500, UsedPercent: 50},
		netStat:  net.IOCountersStat{BytesRecv: 1000},
		diskStat: disk.IOCountersStat{ReadBytes: 1000},
	}
	clock, advance := testClock()
	s, err := newSystemSampler(probes, clock)
	if err != nil {
		t.Fatalf("Expected sampler construction to succeed, got %v", err)
	}

	s.Sample()
	probes.netStat.BytesRecv += 5000
	probes.diskStat.ReadBytes += 7000
	advance(time.Second)
	baseline := s.Sample()

	probes.failCPU = true
	probes.failMem = true
	probes.failNet = true
	probes.failDisk = true
	advance(time.Second)
	degraded := s.Sample()

	if degraded.MemoryUsed != baseline.MemoryUsed {
		t.Errorf("Expected memory fraction %v to survive probe failure, got %v",
			baseline.MemoryUsed, degraded.MemoryUsed)
	}
	if degraded.MemUsedBytes != baseline.MemUsedBytes {
		t.Errorf("Expected memory bytes %d to survive probe failure, got %d",
			baseline.MemUsedBytes, degraded.MemUsedBytes)
	}
	for i := range baseline.CoreLoads {
		if degraded.CoreLoads[i] != baseline.CoreLoads[i] {
			t.Errorf("Expected core %d load %v to survive probe failure, got %v",
				i, baseline.CoreLoads[i], degraded.CoreLoads[i])
		}
	}
	if degraded.NetBytesPerSec != baseline.NetBytesPerSec {
		t.Errorf("Expected net rate %v to survive probe failure, got %v",
			baseline.NetBytesPerSec, degraded.NetBytesPerSec)
	}
	if degraded.DiskBytesPerSec != baseline.DiskBytesPerSec {
		t.Errorf("Expected disk rate %v to survive probe failure, got %v",
			baseline.DiskBytesPerSec, degraded.DiskBytesPerSec)
	}
}

// TestAverageLoad verifies the helper handles empty and populated slices.
func TestAverageLoad(t *testing.T) {
	tests := []struct {
		name  string
		loads []float64
		want  float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.5}, 0.5},
		{"mixed", []float64{0.2, 0.4, 0.6}, 0.4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := Snapshot{CoreLoads: tt.loads}
			got := snap.AverageLoad()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected average load to be %v, got %v", tt.want, got)
			}
		})
	}
}
