package render

import (
	"github.com/lixenwraith/livescope/scene"
)

// LayerRenderer is implemented by every visual layer.
type LayerRenderer interface {
	Render(ctx Context, st *scene.State, f *Frame)
}
