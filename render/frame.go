package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one character cell of a composed frame.
type Cell struct {
	Rune rune
	Fg   tcell.Color
	Bg   tcell.Color
}

// Frame is a flat row-major cell grid, fully rebuilt every tick. Writes
// outside the grid are dropped, so layer renderers never carry their own
// bounds checks. The backing slice is exported zero-copy to the terminal
// backend, worth the coupling.
type Frame struct {
	cells  []Cell
	width  int
	height int
}

// NewFrame creates a frame with the given dimensions.
func NewFrame(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize adjusts dimensions, reallocating only when capacity is
// insufficient.
func (f *Frame) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(f.cells) < size {
		f.cells = make([]Cell, size)
	} else {
		f.cells = f.cells[:size]
	}
	f.width = width
	f.height = height
}

// Size returns the frame dimensions.
func (f *Frame) Size() (int, int) {
	return f.width, f.height
}

// Cells exposes the backing slice in row-major order for zero-copy export.
func (f *Frame) Cells() []Cell {
	return f.cells
}

// Clear fills the frame with blank cells on the given background using
// exponential copy.
func (f *Frame) Clear(bg tcell.Color) {
	if len(f.cells) == 0 {
		return
	}
	f.cells[0] = Cell{Rune: ' ', Fg: bg, Bg: bg}
	for filled := 1; filled < len(f.cells); filled *= 2 {
		copy(f.cells[filled:], f.cells[:filled])
	}
}

// Set writes one cell, keeping the current background. Out-of-bounds
// writes are dropped.
func (f *Frame) Set(x, y int, r rune, fg tcell.Color) {
	if !f.inBounds(x, y) {
		return
	}
	c := &f.cells[y*f.width+x]
	c.Rune = r
	c.Fg = fg
}

// At returns the cell at (x, y); out-of-bounds reads return a zero cell.
func (f *Frame) At(x, y int) Cell {
	if !f.inBounds(x, y) {
		return Cell{}
	}
	return f.cells[y*f.width+x]
}

func (f *Frame) inBounds(x, y int) bool {
	return x >= 0 && x < f.width && y >= 0 && y < f.height
}
