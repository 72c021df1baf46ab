package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the search locations.
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate reports every setting that cannot be used as-is. Tuning values
// such as peak or segment counts are clamped later and are not checked here.
func (c *Config) Validate() error {
	var err error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("graphics: window size %dx%d must be positive",
			c.Graphics.Width, c.Graphics.Height))
	}
	if c.Terrain.Width <= 0 || c.Terrain.Depth <= 0 {
		err = multierr.Append(err, fmt.Errorf("terrain: extent %gx%g must be positive",
			c.Terrain.Width, c.Terrain.Depth))
	}
	if c.Terrain.Color > 0xFFFFFF {
		err = multierr.Append(err, fmt.Errorf("terrain: color %#x is not 0xRRGGBB", c.Terrain.Color))
	}
	switch c.Noise.Kind {
	case "perlin", "simplex":
	default:
		err = multierr.Append(err, fmt.Errorf("noise: unknown kind %q", c.Noise.Kind))
	}
	if c.Noise.Octaves < 1 {
		err = multierr.Append(err, fmt.Errorf("noise: octaves must be at least 1, got %d", c.Noise.Octaves))
	}
	if c.Scroll.PixelsPerNotch <= 0 {
		err = multierr.Append(err, fmt.Errorf("scroll: pixels_per_notch must be positive, got %g",
			c.Scroll.PixelsPerNotch))
	}
	if c.Scroll.PageHeight < 0 {
		err = multierr.Append(err, fmt.Errorf("scroll: page_height must not be negative, got %g",
			c.Scroll.PageHeight))
	}
	switch c.Screenshot.Format {
	case "png", "bmp":
	default:
		err = multierr.Append(err, fmt.Errorf("screenshot: unknown format %q", c.Screenshot.Format))
	}
	return err
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./backdrop.yaml",
		filepath.Join(ConfigDir(), "backdrop.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "TerrainBackdrop")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "TerrainBackdrop")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "terrain-backdrop")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "terrain-backdrop")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
