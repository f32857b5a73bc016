package constants

import "time"

// Render Loop Timing Constants
const (
	// DefaultRefreshInterval is the default tick cadence (~60 FPS)
	DefaultRefreshInterval = 16 * time.Millisecond

	// MinRefreshInterval is the smallest accepted tick cadence
	MinRefreshInterval = 1 * time.Millisecond

	// MaxRefreshInterval is the largest accepted tick cadence
	MaxRefreshInterval = 1 * time.Second

	// LoopMaxDriftTicks is how many intervals the loop may fall behind
	// before the schedule resets instead of compressing sleeps further
	LoopMaxDriftTicks = 2
)
