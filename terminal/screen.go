package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/livescope/render"
)

// Screen implements Surface on a tcell screen.
type Screen struct {
	screen      tcell.Screen
	initialized bool
	finalized   bool
}

// NewScreen allocates a surface on the default terminal backend. No
// terminal mode changes happen until Init.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("allocating screen: %w", err)
	}
	return &Screen{screen: s}, nil
}

// NewScreenWith wraps an existing tcell screen. Tests pass a simulation
// screen.
func NewScreenWith(s tcell.Screen) *Screen {
	return &Screen{screen: s}
}

// Init enters raw mode, the alternate screen buffer, and hides the cursor.
func (s *Screen) Init() error {
	if s.initialized {
		return nil
	}
	if err := s.screen.Init(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	s.screen.HideCursor()
	s.screen.Clear()
	s.initialized = true
	return nil
}

// Fini restores terminal state. Safe to call multiple times.
func (s *Screen) Fini() {
	if !s.initialized || s.finalized {
		return
	}
	s.screen.Fini()
	s.finalized = true
}

// Size returns current terminal dimensions.
func (s *Screen) Size() (int, int) {
	return s.screen.Size()
}

// Flush pushes a composed frame to the terminal. Writes beyond the
// physical screen are dropped by the backend, so a frame mid-resize
// degrades instead of corrupting.
func (s *Screen) Flush(f *render.Frame) {
	if !s.initialized || s.finalized {
		return
	}

	w, h := f.Size()
	cells := f.Cells()
	for y := 0; y < h; y++ {
		row := y * w
		for x := 0; x < w; x++ {
			c := cells[row+x]
			style := tcell.StyleDefault.Foreground(c.Fg).Background(c.Bg)
			s.screen.SetContent(x, y, c.Rune, nil, style)
		}
	}
	s.screen.Show()
}

// Poll returns the next pending event without blocking. The event queue
// check keeps the render loop single-threaded: no listener goroutine is
// needed.
func (s *Screen) Poll() (Event, bool) {
	if !s.initialized || s.finalized {
		return Event{}, false
	}
	if !s.screen.HasPendingEvent() {
		return Event{}, false
	}
	return s.translate(s.screen.PollEvent())
}

func (s *Screen) translate(ev tcell.Event) (Event, bool) {
	switch tev := ev.(type) {
	case *tcell.EventKey:
		if tev.Key() == tcell.KeyCtrlC {
			return Event{Type: EventInterrupt}, true
		}
		if tev.Key() == tcell.KeyRune {
			return Event{Type: EventKey, Rune: tev.Rune()}, true
		}
		return Event{Type: EventKey}, true
	case *tcell.EventResize:
		w, h := tev.Size()
		return Event{Type: EventResize, Width: w, Height: h}, true
	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt}, true
	}
	return Event{Type: EventNone}, true
}
