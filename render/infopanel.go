package render

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/theme"
)

// Info panel foreground colors, theme-independent for readability
var (
	panelTitleFg = tcell.NewRGBColor(230, 230, 230)
	panelLabelFg = tcell.NewRGBColor(150, 150, 150)
	panelHelpFg  = tcell.NewRGBColor(110, 110, 110)
)

// sparkRunes index from lowest to tallest bar.
var sparkRunes = []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// InfoPanelLayer draws the status rows at the bottom of the frame: title,
// live figures with a load sparkline, and the key help line.
type InfoPanelLayer struct {
	version string
}

// NewInfoPanelLayer creates the overlay panel with the build version shown
// in the title.
func NewInfoPanelLayer(version string) *InfoPanelLayer {
	return &InfoPanelLayer{version: version}
}

func (l *InfoPanelLayer) Render(ctx Context, st *scene.State, f *Frame) {
	if ctx.Height <= 0 {
		return
	}
	row := ctx.ArtRows
	if row >= ctx.Height {
		row = ctx.Height - 1
	}

	avg := st.Current.AverageLoad()
	memFrac := st.Current.MemoryUsed
	netNorm := clamp01(st.Current.NetBytesPerSec / constants.NetRateFullScale)
	diskNorm := clamp01(st.Current.DiskBytesPerSec / constants.DiskRateFullScale)

	x := drawText(f, 0, row, " LiveScope v"+l.version, panelTitleFg)
	x = drawText(f, x, row, " │ CPU ", panelLabelFg)
	x = drawText(f, x, row, fmt.Sprintf("%3.0f%% ", avg*100),
		ctx.Theme.ColorFor(theme.CategoryCoreBand, avg))
	x = drawText(f, x, row, sparkline(st.History.Average(constants.InfoSparklineWidth)),
		ctx.Theme.ColorFor(theme.CategoryCoreBand, avg))
	x = drawText(f, x, row, " │ MEM ", panelLabelFg)
	x = drawText(f, x, row, fmt.Sprintf("%3.0f%% %s/%s", memFrac*100,
		humanize.IBytes(st.Current.MemUsedBytes), humanize.IBytes(st.Current.MemTotalBytes)),
		ctx.Theme.ColorFor(theme.CategoryMemoryWave, memFrac))
	x = drawText(f, x, row, " │ NET ", panelLabelFg)
	x = drawText(f, x, row, rateString(st.Current.NetBytesPerSec),
		ctx.Theme.ColorFor(theme.CategoryParticleNetwork, netNorm))
	x = drawText(f, x, row, " │ DISK ", panelLabelFg)
	x = drawText(f, x, row, rateString(st.Current.DiskBytesPerSec),
		ctx.Theme.ColorFor(theme.CategoryParticleDisk, diskNorm))
	x = drawText(f, x, row, " │ ", panelLabelFg)

	toggle := "off"
	if ctx.ParticlesOn {
		toggle = "on"
	}
	drawText(f, x, row, fmt.Sprintf("%d particles [%s]", len(st.Particles), toggle), panelTitleFg)

	drawText(f, 0, row+1, " q quit · p particles · theme "+ctx.Theme.Name, panelHelpFg)
}

// drawText writes s starting at (x, y), clipped by the frame bounds, and
// returns the column after the last rune.
func drawText(f *Frame, x, y int, s string, fg tcell.Color) int {
	for _, r := range s {
		f.Set(x, y, r, fg)
		x++
	}
	return x
}

// sparkline renders load fractions in [0,1] as one bar rune per sample.
func sparkline(values []float64) string {
	out := make([]rune, len(values))
	for i, v := range values {
		out[i] = sparkRunes[int(clamp01(v)*float64(len(sparkRunes)-1))]
	}
	return string(out)
}

// rateString formats a bytes-per-second figure for the panel.
func rateString(bps float64) string {
	if bps < 0 {
		bps = 0
	}
	return humanize.IBytes(uint64(bps)) + "/s"
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
