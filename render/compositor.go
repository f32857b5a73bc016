package render

import (
	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/theme"
)

type layerEntry struct {
	layer    LayerRenderer
	priority Priority
	index    int // registration order for stable sort
}

// Compositor coordinates the render pipeline: it clears a reused frame to
// the theme background and runs registered layers in priority order.
type Compositor struct {
	theme    *theme.Theme
	frame    *Frame
	layers   []layerEntry
	regCount int
}

// NewCompositor creates a compositor for the given theme and dimensions.
// Layers are registered separately so callers control the stack.
func NewCompositor(th *theme.Theme, width, height int) *Compositor {
	return &Compositor{
		theme:  th,
		frame:  NewFrame(width, height),
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order
// via insertion sort, registration order breaking ties.
func (c *Compositor) Register(l LayerRenderer, priority Priority) {
	entry := layerEntry{layer: l, priority: priority, index: c.regCount}
	c.regCount++

	pos := len(c.layers)
	for i, e := range c.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	c.layers = append(c.layers, layerEntry{})
	copy(c.layers[pos+1:], c.layers[pos:])
	c.layers[pos] = entry
}

// Resize adjusts the frame dimensions.
func (c *Compositor) Resize(width, height int) {
	c.frame.Resize(width, height)
}

// Composite rebuilds the frame from the current visual state. The returned
// frame is valid until the next Composite or Resize call.
func (c *Compositor) Composite(st *scene.State, particlesOn bool) *Frame {
	w, h := c.frame.Size()
	artRows := h - constants.InfoPanelRows
	if artRows < 0 {
		artRows = 0
	}

	ctx := Context{
		Width:       w,
		Height:      h,
		ArtRows:     artRows,
		Theme:       c.theme,
		ParticlesOn: particlesOn,
	}

	c.frame.Clear(c.theme.Background)
	for _, entry := range c.layers {
		entry.layer.Render(ctx, st, c.frame)
	}
	return c.frame
}
