package crashit

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/scenegraph"
)

//go:embed crashit.yaml
var defaultConfigYAML []byte

// Stats tune the player shuttle.
type Stats struct {
	Defense       int           `yaml:"defense"`        // hull points at the start of a round
	Attack        int           `yaml:"attack"`         // damage dealt by one asteroid hit
	ShootInterval time.Duration `yaml:"shoot_interval"` // time between trigger pulls
	FireChance    int           `yaml:"fire_chance"`    // percent of trigger pulls that fire
}

// Config is the demo configuration: the scene settings plus gameplay tuning.
type Config struct {
	AppName       string            `yaml:"app_name"`
	Scene         scenegraph.Config `yaml:"scene"`
	Player        Stats             `yaml:"player"`
	Stars         int               `yaml:"stars"`
	BulletSpeed   float64           `yaml:"bullet_speed"` // base pixels per second
	AsteroidEvery time.Duration     `yaml:"asteroid_every"`
	AsteroidFall  time.Duration     `yaml:"asteroid_fall"`
	Glide         time.Duration     `yaml:"glide"`
}

// DefaultConfig returns the embedded configuration.
func DefaultConfig() Config {
	cfg, err := ParseConfig(defaultConfigYAML)
	if err != nil {
		panic("crashit: embedded config: " + err.Error())
	}
	return cfg
}

// LoadConfig reads path, layered over the embedded defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read crashit config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse crashit config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid crashit config: %w", err)
	}
	return cfg, nil
}

// ParseConfig parses YAML over the scene defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := Config{Scene: scenegraph.DefaultConfig()}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse crashit config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid crashit config: %w", err)
	}
	return cfg, nil
}

// Validate checks the scene section and the gameplay numbers.
func (c Config) Validate() error {
	if err := c.Scene.Validate(); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	if c.AppName == "" {
		return fmt.Errorf("app_name is required")
	}
	if c.Player.Defense <= 0 || c.Player.Attack <= 0 {
		return fmt.Errorf("player defense and attack must be positive")
	}
	if c.Player.ShootInterval <= 0 {
		return fmt.Errorf("player shoot_interval must be positive")
	}
	if c.Player.FireChance < 0 || c.Player.FireChance > 100 {
		return fmt.Errorf("player fire_chance must be within 0..100, got %d", c.Player.FireChance)
	}
	if c.Stars < 0 {
		return fmt.Errorf("stars must not be negative")
	}
	if c.BulletSpeed <= 0 || c.AsteroidEvery <= 0 || c.AsteroidFall <= 0 {
		return fmt.Errorf("bullet_speed, asteroid_every and asteroid_fall must be positive")
	}
	return nil
}
