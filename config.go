package scenegraph

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// SizeConfig is a width/height pair as written in YAML.
type SizeConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config describes a scene and its window.
type Config struct {
	Title         string        `yaml:"title"`
	BaseSize      SizeConfig    `yaml:"base_size"`      // design-time size
	PhysicalSize  SizeConfig    `yaml:"physical_size"`  // optional screen override
	Background    string        `yaml:"background"`     // #rrggbb, #rrggbbaa or an SVG color name
	FrameInterval time.Duration `yaml:"frame_interval"` // e.g. "16ms"
	Overlay       *bool         `yaml:"overlay"`        // nil keeps the default (on)
	Debug         bool          `yaml:"debug"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Title:         "scenegraph",
		BaseSize:      SizeConfig{Width: 320, Height: 480},
		Background:    "black",
		FrameInterval: DefaultFrameInterval,
	}
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scene config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig parses YAML over DefaultConfig and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse scene config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid scene config: %w", err)
	}
	return cfg, nil
}

// Validate checks sizes, the frame interval and the background color.
func (c Config) Validate() error {
	if c.BaseSize.Width <= 0 || c.BaseSize.Height <= 0 {
		return fmt.Errorf("base_size must be positive, got %dx%d", c.BaseSize.Width, c.BaseSize.Height)
	}
	if c.PhysicalSize.Width < 0 || c.PhysicalSize.Height < 0 {
		return fmt.Errorf("physical_size must not be negative, got %dx%d", c.PhysicalSize.Width, c.PhysicalSize.Height)
	}
	if c.FrameInterval < 0 {
		return fmt.Errorf("frame_interval must not be negative, got %v", c.FrameInterval)
	}
	if _, err := ParseColor(c.Background); err != nil {
		return err
	}
	return nil
}

// Base returns the base size as a Size.
func (c Config) Base() Size {
	return Size{W: float64(c.BaseSize.Width), H: float64(c.BaseSize.Height)}
}

// Metrics returns FixedMetrics when physical_size is set, otherwise fallback.
func (c Config) Metrics(fallback ScreenMetrics) ScreenMetrics {
	if c.PhysicalSize.Width > 0 && c.PhysicalSize.Height > 0 {
		return FixedMetrics{Width: c.PhysicalSize.Width, Height: c.PhysicalSize.Height}
	}
	return fallback
}

// Apply copies the background, frame interval, overlay and debug settings to s.
// The config is expected to have passed Validate.
func (c Config) Apply(s *Scene) {
	if bg, err := ParseColor(c.Background); err == nil {
		s.BackgroundColor = bg
	}
	if c.FrameInterval > 0 {
		s.FrameInterval = c.FrameInterval
	}
	if c.Overlay != nil {
		s.ShowOverlay = *c.Overlay
	}
	s.SetDebugMode(c.Debug)
}

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" or an SVG 1.1 color name.
// An empty string is black.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ColorBlack, nil
	}
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return Color{}, fmt.Errorf("unknown color name %q", s)
		}
		return ColorFrom(c), nil
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return Color{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}
