package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .litemon.yaml configuration file.
// All values are fixed for the process lifetime once the dashboard starts.
type Config struct {
	Version int `yaml:"version" mapstructure:"version"`

	// Interval is the metric sampling cadence.
	Interval time.Duration `yaml:"interval" mapstructure:"interval"`

	// RenderInterval is the dashboard redraw cadence. Rendering always uses
	// the most recently published snapshot and never waits for a fresh one.
	RenderInterval time.Duration `yaml:"render_interval" mapstructure:"render_interval"`

	GPU  GPUConfig  `yaml:"gpu" mapstructure:"gpu"`
	Disk DiskConfig `yaml:"disk" mapstructure:"disk"`
	Log  LogConfig  `yaml:"log" mapstructure:"log"`
}

// GPUConfig controls GPU metric collection.
type GPUConfig struct {
	// Enabled toggles the startup GPU probe. When false the GPU section is
	// omitted from every snapshot without probing the driver at all.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
}

// DiskConfig controls disk enumeration.
type DiskConfig struct {
	// ExcludeFstypes are filesystem types skipped during enumeration.
	ExcludeFstypes []string `yaml:"exclude_fstypes" mapstructure:"exclude_fstypes"`
}

// LogConfig controls the diagnostic log file. The dashboard owns the
// terminal, so logs never go to stdout/stderr.
type LogConfig struct {
	// File is the log file path. Empty disables logging entirely.
	File string `yaml:"file" mapstructure:"file"`

	// Level is the zerolog level name: "debug", "info", "warn", "error".
	Level string `yaml:"level" mapstructure:"level"`

	// MaxSizeMB is the rotation threshold for the log file.
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`
}

// DefaultConfig returns a Config populated with defaults.
func DefaultConfig() *Config {
	return &Config{
		Version:        CurrentConfigVersion,
		Interval:       time.Second,
		RenderInterval: 100 * time.Millisecond,
		GPU:            GPUConfig{Enabled: true},
		Disk: DiskConfig{
			ExcludeFstypes: []string{"tmpfs", "devtmpfs", "overlay", "squashfs", "autofs"},
		},
		Log: LogConfig{
			File:      "",
			Level:     "info",
			MaxSizeMB: 10,
		},
	}
}
