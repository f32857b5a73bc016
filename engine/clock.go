package engine

import "time"

// Clock abstracts the time source and sleeping for the render loop so
// tests can drive ticks without waiting on real time.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock provides the real system time with monotonic clock readings.
type SystemClock struct{}

// NewSystemClock creates a new monotonic system clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks for the given duration.
func (c *SystemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
