package terminal

// EventType discriminates surface events.
type EventType uint8

const (
	// EventNone is an event the visualizer does not react to
	EventNone EventType = iota

	// EventKey is a keyboard event; Rune holds the printable key or zero
	EventKey

	// EventResize carries the new terminal dimensions
	EventResize

	// EventInterrupt requests shutdown, posted for Ctrl-C
	EventInterrupt
)

// Event is one input or lifecycle event drained from the surface.
type Event struct {
	Type   EventType
	Rune   rune
	Width  int
	Height int
}
