package theme

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Category selects which visual element a color is resolved for.
type Category uint8

const (
	CategoryCoreBand Category = iota
	CategoryMemoryWave
	CategoryParticleNetwork
	CategoryParticleDisk
)

// DefaultName is the theme used when a requested name is unknown.
const DefaultName = "fire"

// Theme binds a background color and per-category gradients under a
// selectable name. Lookups are pure: the same category and intensity
// always resolve to the same color.
type Theme struct {
	Name       string
	Background tcell.Color

	coreBand        Gradient
	memoryWave      Gradient
	particleNetwork Gradient
	particleDisk    Gradient
}

// ColorFor resolves the color for a visual category at the given
// intensity. Intensity is clamped into [0,1] before lookup.
func (t *Theme) ColorFor(cat Category, intensity float64) tcell.Color {
	switch cat {
	case CategoryMemoryWave:
		return t.memoryWave.At(intensity)
	case CategoryParticleNetwork:
		return t.particleNetwork.At(intensity)
	case CategoryParticleDisk:
		return t.particleDisk.At(intensity)
	default:
		return t.coreBand.At(intensity)
	}
}

// newTheme derives the per-category gradients from one base gradient.
// Network particles draw from the bright end, disk particles from the low
// end, so the two kinds read differently under every theme.
func newTheme(name string, base Gradient) *Theme {
	return &Theme{
		Name:            name,
		Background:      tcell.NewRGBColor(0, 0, 0),
		coreBand:        base,
		memoryWave:      base,
		particleNetwork: base.Slice(0.55, 1.0),
		particleDisk:    base.Slice(0.10, 0.45),
	}
}

// fireStops follows the turbo colormap anchors.
var fireStops = []Stop{
	{0.0, rgb(48, 18, 59)},
	{0.1, rgb(62, 85, 190)},
	{0.2, rgb(33, 145, 237)},
	{0.3, rgb(26, 197, 199)},
	{0.4, rgb(64, 235, 136)},
	{0.5, rgb(139, 252, 74)},
	{0.6, rgb(201, 238, 52)},
	{0.7, rgb(243, 198, 48)},
	{0.8, rgb(253, 137, 36)},
	{0.9, rgb(230, 70, 15)},
	{1.0, rgb(122, 4, 3)},
}

// oceanStops follows the viridis colormap anchors.
var oceanStops = []Stop{
	{0.0, rgb(68, 1, 84)},
	{0.25, rgb(59, 82, 139)},
	{0.5, rgb(33, 145, 140)},
	{0.75, rgb(94, 201, 98)},
	{1.0, rgb(253, 231, 37)},
}

// matrixStops ramp from black to phosphor green.
var matrixStops = []Stop{
	{0.0, rgb(0, 0, 0)},
	{1.0, rgb(0, 255, 65)},
}

// rainbowStops sweep the hue circle.
var rainbowStops = []Stop{
	{0.0, colorful.Hsv(0, 1, 1)},
	{0.2, colorful.Hsv(60, 1, 1)},
	{0.4, colorful.Hsv(120, 1, 1)},
	{0.6, colorful.Hsv(180, 1, 1)},
	{0.8, colorful.Hsv(240, 1, 1)},
	{1.0, colorful.Hsv(300, 1, 1)},
}

var registry = map[string]*Theme{}

func register(t *Theme) {
	registry[t.Name] = t
}

func init() {
	register(newTheme("fire", NewGradient(fireStops...)))
	register(newTheme("ocean", NewGradient(oceanStops...)))
	register(newTheme("matrix", NewGradient(matrixStops...)))
	register(newTheme("rainbow", NewGradient(rainbowStops...)))
}

// Lookup returns the theme registered under name, ignoring case. Unknown
// names fall back to the default theme rather than failing.
func Lookup(name string) *Theme {
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry[DefaultName]
}

// Names returns the registered theme names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
