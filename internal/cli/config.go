package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// appName is the application name used for directories and display.
const appName = "spmat"

// Config holds the user-facing configuration, loaded from a TOML file.
//
// All fields are optional; zero values fall back to the defaults from
// defaultConfig. Example:
//
//	input_dir = "~/matrices"
//	output_dir = "~/matrices/results"
//
//	[serve]
//	addr = ":8080"
//
//	[cache]
//	ttl_hours = 720
type Config struct {
	// InputDir is the directory matrix file names are resolved against
	// when they are not absolute and do not exist as given.
	InputDir string `toml:"input_dir"`

	// OutputDir is where result files are written unless -o overrides it.
	OutputDir string `toml:"output_dir"`

	Serve ServeConfig `toml:"serve"`
	Cache CacheConfig `toml:"cache"`
}

// ServeConfig configures the HTTP API.
type ServeConfig struct {
	// Addr is the listen address for "spmat serve".
	Addr string `toml:"addr"`
}

// CacheConfig configures the result cache.
type CacheConfig struct {
	// TTLHours bounds the lifetime of cached results; 0 means no expiry.
	TTLHours int `toml:"ttl_hours"`

	// Disabled turns the cache off entirely, as if --no-cache were always set.
	Disabled bool `toml:"disabled"`
}

// defaultConfig returns the configuration used when no file is present.
func defaultConfig() Config {
	return Config{
		InputDir:  ".",
		OutputDir: ".",
		Serve:     ServeConfig{Addr: ":8080"},
	}
}

// loadConfig reads the TOML configuration at path. An empty path means the
// default location (see defaultConfigPath); a missing file at the default
// location is not an error and yields the defaults, while an explicitly
// requested file must exist.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return cfg, nil // no home dir; run on defaults
		}
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if cfg.InputDir == "" {
		cfg.InputDir = "."
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.Serve.Addr == "" {
		cfg.Serve.Addr = ":8080"
	}
	return cfg, nil
}

// defaultConfigPath returns the config file location using the XDG standard
// (~/.config/spmat/config.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// cacheDir returns the cache directory using the XDG standard (~/.cache/spmat/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// resolveInput resolves a matrix file argument. Absolute paths and paths
// that exist as given are used directly; anything else is looked up in the
// configured input directory, so bare file names work from anywhere.
func (c *Config) resolveInput(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	if _, err := os.Stat(name); err == nil {
		return name
	}
	return filepath.Join(c.InputDir, name)
}
