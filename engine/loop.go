package engine

import (
	"fmt"
	"log"

	"github.com/lixenwraith/livescope/config"
	"github.com/lixenwraith/livescope/constants"
	"github.com/lixenwraith/livescope/metrics"
	"github.com/lixenwraith/livescope/render"
	"github.com/lixenwraith/livescope/scene"
	"github.com/lixenwraith/livescope/terminal"
)

// Phase identifies where the render loop is in its lifecycle.
type Phase int

const (
	// PhaseInit means the loop has not yet entered the terminal.
	PhaseInit Phase = iota
	// PhaseRunning means the tick pipeline is active.
	PhaseRunning
	// PhaseShuttingDown means a quit was accepted and the loop is
	// unwinding toward terminal restore.
	PhaseShuttingDown
)

// Loop drives the per-tick pipeline: measure elapsed time, sample the
// system, advance the scene, composite a frame, flush it, then drain
// pending input before sleeping off the remainder of the refresh
// interval. Everything runs on the calling goroutine.
type Loop struct {
	surface terminal.Surface
	sampler metrics.Sampler
	scene   *scene.Engine
	comp    *render.Compositor
	clock   Clock

	cfg   config.Config
	phase Phase
	ticks uint64
}

// NewLoop creates a render loop over the given surface, sampler, scene
// and compositor. A nil clock falls back to the system clock, and a
// non-positive refresh interval falls back to the default.
func NewLoop(surface terminal.Surface, sampler metrics.Sampler, sc *scene.Engine, comp *render.Compositor, clock Clock, cfg config.Config) *Loop {
	if clock == nil {
		clock = NewSystemClock()
	}
	if cfg.Refresh <= 0 {
		cfg.Refresh = constants.DefaultRefreshInterval
	}
	return &Loop{
		surface: surface,
		sampler: sampler,
		scene:   sc,
		comp:    comp,
		clock:   clock,
		cfg:     cfg,
	}
}

// Phase returns the current lifecycle phase.
func (l *Loop) Phase() Phase {
	return l.phase
}

// Ticks returns how many ticks have completed so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Config returns the loop's configuration, including the live particle
// toggle state.
func (l *Loop) Config() config.Config {
	return l.cfg
}

// Run enters the terminal and ticks until the user quits. The surface
// is restored on every return path. An error is returned only when the
// terminal cannot be entered at all; once running, the loop never fails.
func (l *Loop) Run() error {
	if err := l.surface.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer l.surface.Fini()

	width, height := l.surface.Size()
	l.comp.Resize(width, height)
	l.scene.SetViewport(width, height)
	l.scene.SetParticlesEnabled(l.cfg.Particles)

	l.phase = PhaseRunning
	log.Printf("engine: loop started, interval=%v size=%dx%d", l.cfg.Refresh, width, height)

	lastTick := l.clock.Now()
	nextDeadline := lastTick

	for {
		now := l.clock.Now()
		dt := now.Sub(lastTick).Seconds()
		lastTick = now

		snap := l.sampler.Sample()
		l.scene.Advance(snap, dt)

		frame := l.comp.Composite(l.scene.State(), l.scene.ParticlesEnabled())
		l.surface.Flush(frame)
		l.ticks++

		if l.drainInput() {
			l.phase = PhaseShuttingDown
			log.Printf("engine: quit requested after %d ticks", l.ticks)
			return nil
		}

		// Advance the deadline by exactly one interval so a short
		// overrun compresses the next sleep instead of shifting the
		// whole cadence. A stall beyond the drift budget rebases the
		// deadline rather than replaying the backlog at full speed.
		nextDeadline = nextDeadline.Add(l.cfg.Refresh)
		maxBehind := l.cfg.Refresh * constants.LoopMaxDriftTicks
		if wallNow := l.clock.Now(); wallNow.Sub(nextDeadline) > maxBehind {
			nextDeadline = wallNow.Add(l.cfg.Refresh)
		}

		sleepDuration := nextDeadline.Sub(l.clock.Now())
		if sleepDuration < 0 {
			sleepDuration = 0
		}
		l.clock.Sleep(sleepDuration)
	}
}

// drainInput consumes every queued event without blocking and returns
// true when the user asked to quit. The quit is honored only after the
// frame in progress has been flushed, which is guaranteed by calling
// this after Flush in the tick pipeline.
func (l *Loop) drainInput() bool {
	quit := false
	for {
		ev, ok := l.surface.Poll()
		if !ok {
			break
		}
		switch ev.Type {
		case terminal.EventKey:
			switch ev.Rune {
			case 'q':
				quit = true
			case 'p':
				l.cfg.Particles = !l.scene.ParticlesEnabled()
				l.scene.SetParticlesEnabled(l.cfg.Particles)
			}
		case terminal.EventInterrupt:
			quit = true
		case terminal.EventResize:
			l.comp.Resize(ev.Width, ev.Height)
			l.scene.SetViewport(ev.Width, ev.Height)
		}
	}
	return quit
}
