package terminal

import (
	"io"
	"os"

	"github.com/lixenwraith/livescope/render"
)

// Surface provides the drawing target and input source for the render
// loop.
type Surface interface {
	// Init enters raw mode, alternate screen buffer, hides cursor.
	// Called once before the first tick; on failure no terminal mode has
	// been changed.
	Init() error

	// Fini restores terminal state. Safe to call multiple times
	Fini()

	// Size returns current terminal dimensions
	Size() (width, height int)

	// Flush pushes one complete frame to the terminal. Called exactly
	// once per tick.
	Flush(f *render.Frame)

	// Poll returns the next pending event without blocking; ok reports
	// whether one was available.
	Poll() (ev Event, ok bool)
}

// Restore sequences written by EmergencyReset, bypassing the screen
// abstraction entirely
var (
	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiSGR0          = []byte("\x1b[0m")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// EmergencyReset attempts to restore the terminal to a sane state.
// Call this from panic recovery if Fini() cannot be called normally.
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}
}
