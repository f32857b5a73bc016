package render

import (
	"math"

	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/theme"
)

// WaveLayer draws the memory wave background: one glyph per column,
// displaced vertically from the art region midline by the wave offset.
type WaveLayer struct{}

// NewWaveLayer creates the background wave layer.
func NewWaveLayer() *WaveLayer {
	return &WaveLayer{}
}

func (l *WaveLayer) Render(ctx Context, st *scene.State, f *Frame) {
	if ctx.ArtRows <= 0 {
		return
	}
	mid := float64(ctx.ArtRows-1) / 2
	span := float64(ctx.ArtRows-1) / 2

	for col := 0; col < ctx.Width; col++ {
		off := st.WaveOffsetAt(col)
		row := int(math.Round(mid + off*span))
		intensity := math.Abs(off)
		f.Set(col, row, constants.WaveGlyph, ctx.Theme.ColorFor(theme.CategoryMemoryWave, intensity))
	}
}
