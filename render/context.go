package render

import (
	"github.com/lixenwraith/livescope/theme"
)

// Context provides frame state for layer renderers, passed by value.
type Context struct {
	// Frame dimensions (terminal size)
	Width  int
	Height int

	// ArtRows is the number of rows above the info panel; zero on
	// terminals too small for both regions
	ArtRows int

	// Theme resolves every color drawn this frame
	Theme *theme.Theme

	// ParticlesOn mirrors the runtime particle toggle
	ParticlesOn bool
}
