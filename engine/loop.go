package engine

import (
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-window/model"
	"github.com/sheikhrachel/go-gol-window/utils"
)

// Loop owns the current generation and the framebuffer it is painted into
type Loop struct {
	surface        Surface
	grid           *model.Grid
	fb             *model.Framebuffer
	palette        model.Palette
	delay          time.Duration
	maxGenerations int

	generation int
	stopped    bool
	lastFrame  time.Time
	stats      *utils.Stats

	sleep func(time.Duration)
}

// NewLoop creates a loop over an already seeded grid
func NewLoop(surface Surface, grid *model.Grid, config utils.Config, stats *utils.Stats) *Loop {
	return &Loop{
		surface:        surface,
		grid:           grid,
		fb:             model.NewFramebuffer(grid.GetWidth(), grid.GetHeight()),
		palette:        model.Palette{Live: config.LiveColor, Dead: config.DeadColor},
		delay:          config.FrameDelay,
		maxGenerations: config.MaxGenerations,
		lastFrame:      time.Now(),
		stats:          stats,
		sleep:          time.Sleep,
	}
}

// Grid returns the current generation
func (l *Loop) Grid() *model.Grid {
	return l.grid
}

// Framebuffer returns the image of the current generation
func (l *Loop) Framebuffer() *model.Framebuffer {
	return l.fb
}

// Generation returns the number of steps taken so far
func (l *Loop) Generation() int {
	return l.generation
}

// Running reports whether the loop can still tick
func (l *Loop) Running() bool {
	return !l.stopped
}

// Delay returns the pause between frames
func (l *Loop) Delay() time.Duration {
	return l.delay
}

// Tick runs one frame without waiting: it checks for exit, steps the grid
// and presents the new image. It returns false once the loop has stopped.
func (l *Loop) Tick() (bool, error) {
	if l.stopped {
		return false, nil
	}
	if !l.surface.IsOpen() || l.surface.IsKeyDown(KeyEscape) {
		l.stopped = true
		return false, nil
	}

	l.grid = l.grid.NextGeneration(l.fb, l.palette)
	l.generation++

	now := time.Now()
	l.stats.Update(l.generation, l.grid.CountLivingCells(), now.Sub(l.lastFrame))
	l.lastFrame = now

	if err := l.surface.Present(l.fb.Pixels, l.fb.Width, l.fb.Height); err != nil {
		l.stopped = true
		return false, errors.Wrapf(err, "[Tick] failed to present generation %d", l.generation)
	}

	if l.maxGenerations > 0 && l.generation >= l.maxGenerations {
		l.stopped = true
		return false, nil
	}
	return true, nil
}

// Run ticks until the surface closes, the exit key is pressed or a frame
// fails to present, waiting the frame delay between ticks
func (l *Loop) Run() error {
	for {
		running, err := l.Tick()
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		l.sleep(l.delay)
	}
}

// TicksPerSecond converts the frame delay into a rate for displays that
// schedule frames themselves, at least one tick per second
func (l *Loop) TicksPerSecond() int {
	if l.delay <= 0 {
		return 1
	}
	return max(int((time.Second+l.delay/2)/l.delay), 1)
}
