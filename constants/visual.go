package constants

// --- Core Bands ---
const (
	// BandBaseRate is the band phase advance in cycles per second
	BandBaseRate = 0.6

	// BandColumnStep is the phase offset per column in radians
	BandColumnStep = 0.25

	// BandPhaseStagger is the initial phase offset between adjacent bands
	// in radians, so bands do not start in lockstep
	BandPhaseStagger = 0.7
)

// --- Memory Wave ---
const (
	// WaveBaseRate is the wave phase advance in cycles per second
	WaveBaseRate = 0.95

	// WaveColumnStep is the wave phase offset per column in radians
	WaveColumnStep = 0.1

	// WaveGlyph is the character used to render the memory wave line
	WaveGlyph = '▓'
)

// --- Particles ---
const (
	// MaxParticles is the hard cap on live particles; the oldest are
	// dropped when a spawn burst would exceed it
	MaxParticles = 256

	// MaxSpawnPerTick is the largest particle burst a single tick may
	// spawn for one activity kind
	MaxSpawnPerTick = 6

	// ParticleMaxAge is the particle lifetime in seconds
	ParticleMaxAge = 1.0

	// ParticleGravity is the downward acceleration in rows per second squared
	ParticleGravity = 16.0

	// ParticleMinFallSpeed is the slowest initial fall in rows per second
	ParticleMinFallSpeed = 8.0

	// ParticleMaxFallSpeed is the fastest initial fall in rows per second
	ParticleMaxFallSpeed = 24.0

	// ParticleDriftSpeed is the largest initial horizontal drift in
	// columns per second, applied in either direction
	ParticleDriftSpeed = 6.0

	// NetSpawnThreshold is the network rate in bytes per second above
	// which network particles spawn
	NetSpawnThreshold = 64 * 1024.0

	// NetRateFullScale is the network rate mapped to maximum burst size
	// and fall speed
	NetRateFullScale = 8 * 1024 * 1024.0

	// DiskSpawnThreshold is the disk rate in bytes per second above
	// which disk particles spawn
	DiskSpawnThreshold = 512 * 1024.0

	// DiskRateFullScale is the disk rate mapped to maximum burst size
	// and fall speed
	DiskRateFullScale = 32 * 1024 * 1024.0
)

// --- History ---
const (
	// HistoryLen is the number of load samples retained per core
	HistoryLen = 120
)

// --- Info Panel ---
const (
	// InfoPanelRows is the number of frame rows reserved at the bottom
	// for the status panel
	InfoPanelRows = 2

	// InfoSparklineWidth is the number of history samples shown in the
	// panel sparkline
	InfoSparklineWidth = 20
)

// DensityRamp maps a 0..1 intensity onto pattern characters, lightest to
// densest
var DensityRamp = []rune{' ', '░', '▒', '▓', '█', '▀', '▄', '▌', '█'}

// NetworkParticleGlyphs are the characters used for network activity particles
var NetworkParticleGlyphs = []rune{'●', '○', '★'}

// DiskParticleGlyphs are the characters used for disk activity particles
var DiskParticleGlyphs = []rune{'◆', '◇', '☆'}
