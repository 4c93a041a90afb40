package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if c.Width != 100 || c.Height != 100 {
		t.Errorf("grid = %dx%d, want 100x100", c.Width, c.Height)
	}
	if c.FrameDelay != 100*time.Millisecond {
		t.Errorf("frame delay = %v, want 100ms", c.FrameDelay)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 40, "seed_set": "scatter", "display": "terminal", "live_color": 16777215}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Width != 40 || c.Height != 100 {
		t.Errorf("grid = %dx%d, want 40x100", c.Width, c.Height)
	}
	if c.SeedSet != "scatter" || c.Display != DisplayTerminal {
		t.Errorf("seed/display = %q/%q", c.SeedSet, c.Display)
	}
	if c.LiveColor != 0xFFFFFF || c.DeadColor != 0x204E4A {
		t.Errorf("colors = %#x/%#x", c.LiveColor, c.DeadColor)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	if !os.IsNotExist(errors.Cause(err)) {
		t.Fatalf("error = %v, want not-exist", err)
	}
	if c != DefaultConfig() {
		t.Error("missing file should still return defaults")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{width:"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "zero width", modify: func(c *Config) { c.Width = 0 }},
		{name: "negative height", modify: func(c *Config) { c.Height = -1 }},
		{name: "zero window", modify: func(c *Config) { c.WindowWidth = 0 }},
		{name: "zero delay", modify: func(c *Config) { c.FrameDelay = 0 }},
		{name: "color overflow", modify: func(c *Config) { c.LiveColor = 0x1000000 }},
		{name: "unknown display", modify: func(c *Config) { c.Display = "printer" }},
		{name: "negative generations", modify: func(c *Config) { c.MaxGenerations = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			if err := c.Validate(); errors.Cause(err) != ErrInvalidConfig {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 {
		t.Errorf("first average = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("gen/sec = %v, want 10", s.GenerationsPerSecond)
	}
	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Errorf("second average = %v, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 {
		t.Errorf("generations = %d, want 2", s.TotalGenerations)
	}
}
