package engine

import "time"

// MockClock provides a controllable time source for testing. Sleep
// advances the mocked time instead of blocking, and every requested
// sleep duration is recorded for assertions.
type MockClock struct {
	currentTime time.Time
	sleeps      []time.Duration
}

// NewMockClock creates a new mock clock with the given start time.
func NewMockClock(startTime time.Time) *MockClock {
	return &MockClock{
		currentTime: startTime,
	}
}

// Now returns the current mocked time.
func (m *MockClock) Now() time.Time {
	return m.currentTime
}

// SetTime sets the current time for the mock.
func (m *MockClock) SetTime(t time.Time) {
	m.currentTime = t
}

// Advance advances the current time by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.currentTime = m.currentTime.Add(d)
}

// Sleep records the requested duration and advances the mocked time by it.
func (m *MockClock) Sleep(d time.Duration) {
	m.sleeps = append(m.sleeps, d)
	if d > 0 {
		m.currentTime = m.currentTime.Add(d)
	}
}

// Sleeps returns every duration passed to Sleep so far.
func (m *MockClock) Sleeps() []time.Duration {
	return m.sleeps
}
