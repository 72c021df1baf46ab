// Package config handles backdrop configuration loading and management.
package config

// Config holds all backdrop settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Terrain    TerrainConfig    `yaml:"terrain"`
	Noise      NoiseConfig      `yaml:"noise"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// TerrainConfig holds the starting tuning parameters and the mesh extent.
type TerrainConfig struct {
	Peak      float32 `yaml:"peak"`
	Smooth    float32 `yaml:"smooth"`
	Speed     float32 `yaml:"speed"`
	SegmentsX int     `yaml:"segments_x"`
	SegmentsY int     `yaml:"segments_y"`
	Color     uint32  `yaml:"color"` // 0xRRGGBB
	Width     float32 `yaml:"width"`
	Depth     float32 `yaml:"depth"`
}

// NoiseConfig selects the noise generator.
type NoiseConfig struct {
	Kind    string `yaml:"kind"` // "perlin" or "simplex"
	Seed    int64  `yaml:"seed"`
	Octaves int    `yaml:"octaves"`
}

// ScrollConfig controls how mouse wheel notches map to page scroll offsets.
type ScrollConfig struct {
	PixelsPerNotch float32 `yaml:"pixels_per_notch"`
	PageHeight     float32 `yaml:"page_height"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // "png" or "bmp"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Terrain: TerrainConfig{
			Peak:      15,
			Smooth:    50,
			Speed:     10,
			SegmentsX: 80,
			SegmentsY: 80,
			Color:     0xFF866C,
			Width:     300,
			Depth:     300,
		},
		Noise: NoiseConfig{
			Kind:    "perlin",
			Seed:    1,
			Octaves: 1,
		},
		Scroll: ScrollConfig{
			PixelsPerNotch: 100,
			PageHeight:     4000,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Format: "png",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
