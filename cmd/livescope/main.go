package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/lixenwraith/livescope/config"
	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/engine"
	"github.com/lixenwraith/livescope/metrics"
	"github.com/lixenwraith/livescope/render"
	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/terminal"
	"github.com/lixenwraith/livescope/theme"
)

// Version info set via ldflags at build time:
//
//	go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "0.1.0"
	commit  = "none"
	date    = "unknown"
)

var (
	themeFlag     string
	refreshFlag   int
	particlesFlag bool
	debugFlag     bool
)

const (
	logDir      = "logs"
	logFileName = "livescope.log"
)

var rootCmd = &cobra.Command{
	Use:   "livescope",
	Short: "A mesmerizing real-time system performance art visualizer",
	Long: `LiveScope turns live CPU, memory, network and disk activity into an
animated terminal scene: one pulsing band per core, a memory usage wave,
and particles riding the I/O rates.

Keys:
  q   quit
  p   toggle particles

Examples:
  livescope
  livescope --theme ocean
  livescope -t matrix -r 33 -p`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("livescope %s\n", version)
		fmt.Printf("commit: %s\n", commit)
		fmt.Printf("built: %s\n", date)
		fmt.Printf("go: %s\n", runtime.Version())
		fmt.Printf("os/arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&themeFlag, "theme", "t", theme.DefaultName, "color theme (fire, ocean, matrix, rainbow)")
	rootCmd.Flags().IntVarP(&refreshFlag, "refresh", "r", int(constants.DefaultRefreshInterval/time.Millisecond), "refresh rate in milliseconds")
	rootCmd.Flags().BoolVarP(&particlesFlag, "particles", "p", false, "enable particle effects at startup")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write debug logs to logs/livescope.log")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// Panic recovery: restore the terminal to a sane state even if the
	// visualizer crashes mid-frame.
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mLIVESCOPE CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "livescope: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Default()
	cfg.ThemeName = themeFlag
	cfg.Refresh = time.Duration(refreshFlag) * time.Millisecond
	cfg.Particles = particlesFlag
	cfg.Debug = debugFlag
	if err := cfg.Validate(); err != nil {
		return err
	}

	cleanup, err := setupLogging(cfg.Debug)
	if err != nil {
		return err
	}
	defer cleanup()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}

	sampler, err := metrics.NewSystemSampler()
	if err != nil {
		return fmt.Errorf("starting system sampler: %w", err)
	}

	surface, err := terminal.NewScreen()
	if err != nil {
		return err
	}

	th := theme.Lookup(cfg.ThemeName)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	// The loop sizes the scene and compositor from the live terminal
	// once raw mode is up.
	eng := scene.NewEngine(sampler.Cores(), 0, 0, rng)
	comp := render.NewCompositor(th, 0, 0)
	comp.Register(render.NewWaveLayer(), render.PriorityBackground)
	comp.Register(render.NewBandsLayer(), render.PriorityBands)
	comp.Register(render.NewParticlesLayer(), render.PriorityParticles)
	comp.Register(render.NewInfoPanelLayer(version), render.PriorityOverlay)

	loop := engine.NewLoop(surface, sampler, eng, comp, engine.NewSystemClock(), cfg)
	if err := loop.Run(); err != nil {
		return err
	}

	fmt.Println("LiveScope terminated. Thanks for watching the show!")
	return nil
}

// setupLogging routes the standard logger to a file in debug mode and
// discards it otherwise; stdout belongs to the drawing surface.
func setupLogging(debug bool) (func(), error) {
	if !debug {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return func() { f.Close() }, nil
}
