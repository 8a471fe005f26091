package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"litemon/internal/errors"
)

const (
	// ConfigFileName is the default config file name.
	ConfigFileName = ".litemon.yaml"
	// GlobalConfigDir is the directory for global config.
	GlobalConfigDir = ".config/litemon"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Minimum cadences. Anything faster burns CPU on OS queries without
// producing a visibly different dashboard.
const (
	MinInterval       = 100 * time.Millisecond
	MinRenderInterval = 50 * time.Millisecond
)

// Load reads config from the specified path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) {
			return nil, errors.WrapWithCode(err, errors.ErrConfig,
				"Config file not found",
				"Run 'litemon init' to create one, or specify a path with --config")
		}
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file",
			"Check the file exists and is valid YAML")
	}

	return parseConfig(v, path)
}

// Find locates the config file using the search order:
// 1. Explicit path (from --config flag)
// 2. .litemon.yaml in current directory
// 3. ~/.config/litemon/config.yaml (global defaults)
//
// Returns the path to the config file, or empty string if not found.
func Find(explicit string) (string, error) {
	// 1. Explicit path takes precedence
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			if os.IsNotExist(err) {
				return "", errors.WrapWithCode(err, errors.ErrConfig,
					"Specified config file not found: "+explicit,
					"Check the path is correct")
			}
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Cannot access config file: "+explicit,
				"Check file permissions")
		}
		return explicit, nil
	}

	// 2. Current directory
	if cwd, err := os.Getwd(); err == nil {
		localConfig := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(localConfig); err == nil {
			return localConfig, nil
		}
	}

	// 3. Global config
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		globalConfig := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(globalConfig); err == nil {
			return globalConfig, nil
		}
	}

	return "", nil
}

// LoadOrDefault loads config from the found path, or returns defaults if
// no config file exists anywhere in the search order.
func LoadOrDefault(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}

	if path == "" {
		return DefaultConfig(), nil
	}

	return Load(path)
}

// parseConfig converts viper config to our Config struct with defaults merged in.
func parseConfig(v *viper.Viper, path string) (*Config, error) {
	cfg := DefaultConfig()

	setDefaults(v, cfg)

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid config format",
			"Check the YAML syntax in "+path)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// setDefaults seeds viper so partial config files inherit the remaining defaults.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("version", cfg.Version)
	v.SetDefault("interval", cfg.Interval)
	v.SetDefault("render_interval", cfg.RenderInterval)
	v.SetDefault("gpu.enabled", cfg.GPU.Enabled)
	v.SetDefault("disk.exclude_fstypes", cfg.Disk.ExcludeFstypes)
	v.SetDefault("log.file", cfg.Log.File)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.max_size_mb", cfg.Log.MaxSizeMB)
}

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but litemon only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Update litemon or lower the version field")
	}

	if cfg.Interval < MinInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Sampling interval %s is too short", cfg.Interval),
			fmt.Sprintf("Use an interval of at least %s", MinInterval))
	}

	if cfg.RenderInterval < MinRenderInterval {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Render interval %s is too short", cfg.RenderInterval),
			fmt.Sprintf("Use a render interval of at least %s", MinRenderInterval))
	}

	switch cfg.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("Unknown log level %q", cfg.Log.Level),
			"Use one of: debug, info, warn, error")
	}

	if cfg.Log.MaxSizeMB <= 0 {
		return errors.New(errors.ErrConfig,
			"log.max_size_mb must be positive",
			"Use a rotation size of at least 1 MB")
	}

	return nil
}
