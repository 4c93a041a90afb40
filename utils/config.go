package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Display modes
const (
	DisplayWindow   = "window"
	DisplayTerminal = "terminal"
)

// ErrInvalidConfig is returned by Validate for an unusable configuration
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation
type Config struct {
	Width          int           `json:"width"`
	Height         int           `json:"height"`
	WindowWidth    int           `json:"window_width"`
	WindowHeight   int           `json:"window_height"`
	Title          string        `json:"title"`
	FrameDelay     time.Duration `json:"frame_delay"`
	LiveColor      uint32        `json:"live_color"`
	DeadColor      uint32        `json:"dead_color"`
	SeedSet        string        `json:"seed_set"`
	Display        string        `json:"display"`
	MaxGenerations int           `json:"max_generations"`
}

// DefaultConfig returns the reference configuration
func DefaultConfig() Config {
	return Config{
		Width:          100,
		Height:         100,
		WindowWidth:    600,
		WindowHeight:   600,
		Title:          "Conway's Game of Life",
		FrameDelay:     100 * time.Millisecond,
		LiveColor:      0x81C14B,
		DeadColor:      0x204E4A,
		SeedSet:        "diagonals",
		Display:        DisplayWindow,
		MaxGenerations: 0, // run until the display closes
	}
}

// LoadConfig loads configuration from JSON file, on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate checks the configuration can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid size %dx%d", c.Width, c.Height)
	case c.WindowWidth <= 0 || c.WindowHeight <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] window size %dx%d", c.WindowWidth, c.WindowHeight)
	case c.FrameDelay <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame delay %v", c.FrameDelay)
	case c.LiveColor > 0xFFFFFF || c.DeadColor > 0xFFFFFF:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] colors %#x/%#x are not 0xRRGGBB", c.LiveColor, c.DeadColor)
	case c.Display != DisplayWindow && c.Display != DisplayTerminal:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] display %q", c.Display)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations %d", c.MaxGenerations)
	}
	return nil
}
