package render

// Priority determines layer render order. Lower values render first.
type Priority int

const (
	// PriorityBackground is the memory wave layer
	PriorityBackground Priority = 100

	// PriorityBands is the per-core waveform band layer
	PriorityBands Priority = 200

	// PriorityParticles is the activity particle layer
	PriorityParticles Priority = 300

	// PriorityOverlay is the info panel layer, always on top
	PriorityOverlay Priority = 400
)
