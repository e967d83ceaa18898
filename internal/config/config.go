// Package config loads the editor's startup configuration: window and
// surface settings, handle sizes, the selection mode and the initial quad
// layout. Values come from built-in defaults, then an optional YAML file,
// then environment variables; command-line flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/irfansharif/quads/internal/editor"
	"github.com/irfansharif/quads/internal/geom"
	"github.com/irfansharif/quads/internal/palette"
)

// DefaultSurface is the id of the drawable the editor renders into.
const DefaultSurface = "user_input"

// Config is the startup configuration.
type Config struct {
	Window     Window  `yaml:"window"`
	Surface    string  `yaml:"surface"`
	HandleSize float64 `yaml:"handle_size"`
	CursorSize float64 `yaml:"cursor_size"`
	Selection  string  `yaml:"selection"` // "shared" or "per-quad"
	Seed       int64   `yaml:"seed"`      // palette seed for quads without colours
	Quads      []Quad  `yaml:"quads"`
}

// Window holds the initial window geometry.
type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Quad is one quad of the initial layout.
type Quad struct {
	Box     []float64 `yaml:"box"`     // x, y, width, height in model space
	Colours []string  `yaml:"colours"` // four "#rrggbb" corner colours, optional
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window:     Window{Width: 1280, Height: 960, Title: "Quads"},
		Surface:    DefaultSurface,
		HandleSize: 0.1,
		CursorSize: 0.1,
		Selection:  editor.SelectionShared.String(),
		Seed:       1,
		Quads: []Quad{
			{Box: []float64{-0.5, -0.5, 1, 1}},
			{Box: []float64{-0.2, -0.2, 0.4, 0.4}},
		},
	}
}

// Load returns the default configuration overlaid with the YAML file at
// path (if non-empty) and then the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides the selection mode and palette seed from QUADS_SELECTION
// and QUADS_SEED.
func (c *Config) applyEnv() error {
	if s := os.Getenv("QUADS_SELECTION"); s != "" {
		c.Selection = s
	}
	if s := os.Getenv("QUADS_SEED"); s != "" {
		seed, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid QUADS_SEED value '%s': %w", s, err)
		}
		c.Seed = seed
	}
	return nil
}

// Validate checks that the configuration describes a usable editor.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Surface == "" {
		errs = append(errs, errors.New("surface id must not be empty"))
	}
	if c.HandleSize < 0 || c.CursorSize < 0 {
		errs = append(errs, fmt.Errorf("handle and cursor sizes must not be negative, got %v and %v", c.HandleSize, c.CursorSize))
	}
	if _, err := editor.ParseSelectionMode(c.Selection); err != nil {
		errs = append(errs, err)
	}
	for i, q := range c.Quads {
		if len(q.Box) != 4 {
			errs = append(errs, fmt.Errorf("quad %d: box needs 4 values (x, y, width, height), got %d", i, len(q.Box)))
		}
		if len(q.Colours) != 0 && len(q.Colours) != editor.VerticesPerQuad {
			errs = append(errs, fmt.Errorf("quad %d: need %d colours, got %d", i, editor.VerticesPerQuad, len(q.Colours)))
		}
		for _, hex := range q.Colours {
			if _, err := palette.Parse(hex); err != nil {
				errs = append(errs, fmt.Errorf("quad %d: %w", i, err))
			}
		}
	}
	return errors.Join(errs...)
}

// Layout converts the configuration into the editor's initial layout. Quads
// without colours are given a palette generated from the seed.
func (c *Config) Layout() (editor.Layout, error) {
	if err := c.Validate(); err != nil {
		return editor.Layout{}, err
	}
	mode, _ := editor.ParseSelectionMode(c.Selection)

	r := rand.New(rand.NewSource(c.Seed))
	l := editor.Layout{
		Quads:      make([]editor.QuadLayout, len(c.Quads)),
		HandleSize: c.HandleSize,
		CursorSize: c.CursorSize,
		Mode:       mode,
	}
	for i, q := range c.Quads {
		pal := palette.RandomPalette(r)
		for j, hex := range q.Colours {
			pal[j], _ = palette.Parse(hex)
		}
		l.Quads[i] = editor.QuadLayout{
			Box:     geom.MakeBox(q.Box[0], q.Box[1], q.Box[2], q.Box[3]),
			Palette: pal,
		}
	}
	return l, nil
}
