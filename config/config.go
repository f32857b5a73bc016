// Package config resolves and validates the launch options for a
// visualizer session. Configuration comes from command-line flags only
// and is immutable after startup, except for the particle toggle which
// the render loop flips on the p key.
package config

import (
	"fmt"
	"time"

	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/theme"
)

// Config carries the resolved options for one session.
type Config struct {
	// ThemeName selects the color theme. Unknown names resolve to the
	// default theme at lookup rather than failing here.
	ThemeName string

	// Refresh is the target interval between ticks.
	Refresh time.Duration

	// Particles enables the particle layers at startup.
	Particles bool

	// Debug enables file-based logging.
	Debug bool
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		ThemeName: theme.DefaultName,
		Refresh:   constants.DefaultRefreshInterval,
	}
}

// Validate rejects options the render loop cannot run with.
func (c Config) Validate() error {
	if c.Refresh < constants.MinRefreshInterval || c.Refresh > constants.MaxRefreshInterval {
		return fmt.Errorf("refresh interval %v out of range [%v, %v]",
			c.Refresh, constants.MinRefreshInterval, constants.MaxRefreshInterval)
	}
	return nil
}
