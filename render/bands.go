package render

import (
	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/theme"
)

// BandsLayer draws one waveform band per core, stacked top to bottom over
// the art region with rows split evenly. Zero-intensity cells are left
// untouched so the wave background stays visible through quiet stretches.
type BandsLayer struct{}

// NewBandsLayer creates the core band layer.
func NewBandsLayer() *BandsLayer {
	return &BandsLayer{}
}

func (l *BandsLayer) Render(ctx Context, st *scene.State, f *Frame) {
	if ctx.ArtRows <= 0 || len(st.Bands) == 0 {
		return
	}

	for i, band := range st.Bands {
		top := i * ctx.ArtRows / len(st.Bands)
		bottom := (i + 1) * ctx.ArtRows / len(st.Bands)

		for col := 0; col < ctx.Width; col++ {
			v := band.ValueAt(col)
			idx := int(v * float64(len(constants.DensityRamp)-1))
			if idx <= 0 {
				continue
			}
			if idx >= len(constants.DensityRamp) {
				idx = len(constants.DensityRamp) - 1
			}
			glyph := constants.DensityRamp[idx]
			color := ctx.Theme.ColorFor(theme.CategoryCoreBand, v)
			for row := top; row < bottom; row++ {
				f.Set(col, row, glyph, color)
			}
		}
	}
}
