package scene

import "github.com/lixenwraith/livescope/constants"

// Kind discriminates particle sources.
type Kind uint8

const (
	KindNetwork Kind = iota
	KindDisk
)

func (k Kind) String() string {
	if k == KindDisk {
		return "disk"
	}
	return "network"
}

// Particle is one falling glyph spawned by network or disk activity.
// Positions are fractional columns and rows; the compositor rounds them to
// cells.
type Particle struct {
	X, Y   float64
	VX, VY float64

	// Age is seconds since spawn; the particle expires at
	// constants.ParticleMaxAge
	Age float64

	Kind  Kind
	Glyph rune
}

// Life returns the remaining life fraction in [0,1]. Particle color fades
// with it.
func (p Particle) Life() float64 {
	l := 1 - p.Age/constants.ParticleMaxAge
	if l < 0 {
		return 0
	}
	return l
}
