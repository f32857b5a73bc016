package metrics

// Snapshot is one immutable reading of host activity, produced once per
// tick and handed down the visual pipeline. Slices inside a Snapshot are
// never mutated after Sample returns.
type Snapshot struct {
	// CoreLoads holds per-core load fractions in [0,1], one entry per
	// logical core with stable indices across ticks
	CoreLoads []float64

	// MemoryUsed is the used fraction of physical memory in [0,1]
	MemoryUsed float64

	// MemUsedBytes and MemTotalBytes back the absolute figures shown in
	// the info panel
	MemUsedBytes  uint64
	MemTotalBytes uint64

	// NetBytesPerSec is the combined receive and transmit rate across all
	// interfaces, never negative
	NetBytesPerSec float64

	// DiskBytesPerSec is the combined read and write rate across all
	// devices, never negative
	DiskBytesPerSec float64
}

// AverageLoad returns the mean of the per-core load fractions.
func (s Snapshot) AverageLoad() float64 {
	if len(s.CoreLoads) == 0 {
		return 0
	}
	var sum float64
	for _, l := range s.CoreLoads {
		sum += l
	}
	return sum / float64(len(s.CoreLoads))
}
