// Package config loads runtime settings for the desktop build.
//
// Settings come from three layers, later ones winning:
//   - built-in defaults (Default)
//   - an optional YAML file
//   - environment variables, optionally seeded from a .env file
//
// Game rules are constants in the runner package and are not configurable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment overrides.
const (
	EnvSeed   = "BUNNYRUN_SEED"
	EnvDebug  = "BUNNYRUN_DEBUG"
	EnvAssets = "BUNNYRUN_ASSETS"
)

// Config is the full set of runtime settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Assets AssetConfig  `yaml:"assets"`
	Input  InputConfig  `yaml:"input"`
	Audio  AudioConfig  `yaml:"audio"`

	// Debug enables GL error polling and per-event logging.
	Debug bool `yaml:"debug"`

	// Seed drives gap-lane selection. Zero means seed from the clock.
	Seed uint64 `yaml:"seed"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// AssetConfig names the files loaded at startup. Mesh and image names are
// resolved relative to Dir.
type AssetConfig struct {
	Dir          string `yaml:"dir"`
	PlayerMesh   string `yaml:"playerMesh"`
	ObstacleMesh string `yaml:"obstacleMesh"`
	Background   string `yaml:"background"`
}

type InputConfig struct {
	// Pointer maps the cursor's x position onto the lateral range,
	// overriding the move keys whenever the cursor moves.
	Pointer bool `yaml:"pointer"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 800,
			Title:  "Bunny Run",
			VSync:  true,
		},
		Assets: AssetConfig{
			Dir:          "assets",
			PlayerMesh:   "bunny.obj",
			ObstacleMesh: "cube.obj",
			Background:   "sky.jpg",
		},
		Input: InputConfig{Pointer: true},
		Audio: AudioConfig{Enabled: true, Volume: 0.6},
	}
}

// Path joins an asset name onto the asset directory.
func (a AssetConfig) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(a.Dir, name)
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	// .env only fills variables that are not already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDebug, err)
		}
		c.Debug = debug
	}
	if v, ok := lookup(EnvAssets); ok && v != "" {
		c.Assets.Dir = v
	}
	return nil
}

// Validate rejects settings the desktop build cannot start with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio volume %v outside [0, 1]", c.Audio.Volume)
	}
	for name, v := range map[string]string{
		"playerMesh":   c.Assets.PlayerMesh,
		"obstacleMesh": c.Assets.ObstacleMesh,
		"background":   c.Assets.Background,
	} {
		if v == "" {
			return fmt.Errorf("assets.%s must not be empty", name)
		}
	}
	return nil
}
