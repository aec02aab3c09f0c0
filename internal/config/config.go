// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Display DisplayConfig `yaml:"display"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// DisplayConfig holds window and rendering settings.
type DisplayConfig struct {
	Width    int  `yaml:"width"`
	Height   int  `yaml:"height"`
	VSync    bool `yaml:"vsync"`
	FPSLimit int  `yaml:"fps_limit"`
}

// ViewerConfig holds model loading and display settings.
type ViewerConfig struct {
	DefaultSlot      string `yaml:"default_slot"`      // texture channel shown after load
	AutoFrame        bool   `yaml:"auto_frame"`        // center and scale the model on load
	SphereResolution int    `yaml:"sphere_resolution"` // grid density of the built-in sphere
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:    1280,
			Height:   720,
			VSync:    true,
			FPSLimit: 0,
		},
		Viewer: ViewerConfig{
			DefaultSlot:      "color",
			AutoFrame:        true,
			SphereResolution: 32,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
