package render

import (
	"math"

	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/theme"
)

// ParticlesLayer draws live particles above the bands, clipped to the art
// region so they never overwrite the info panel. Inert while the particle
// toggle is off.
type ParticlesLayer struct{}

// NewParticlesLayer creates the foreground particle layer.
func NewParticlesLayer() *ParticlesLayer {
	return &ParticlesLayer{}
}

func (l *ParticlesLayer) Render(ctx Context, st *scene.State, f *Frame) {
	if !ctx.ParticlesOn || ctx.ArtRows <= 0 {
		return
	}

	for _, p := range st.Particles {
		row := int(math.Round(p.Y))
		if row >= ctx.ArtRows {
			continue
		}
		cat := theme.CategoryParticleNetwork
		if p.Kind == scene.KindDisk {
			cat = theme.CategoryParticleDisk
		}
		f.Set(int(math.Round(p.X)), row, p.Glyph, ctx.Theme.ColorFor(cat, p.Life()))
	}
}
