package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/tessella/tessella/pkg/errors"
)

// Config holds user defaults loaded from the TOML config file. Flags always
// take precedence; these values fill in whatever the user did not pass.
type Config struct {
	Width   int     `toml:"width"`
	Height  int     `toml:"height"`
	Density float64 `toml:"density"`
	Format  string  `toml:"format"`
	PoemDir string  `toml:"poem_dir"`
}

// defaultConfig matches the engine defaults for a terminal-sized canvas.
func defaultConfig() Config {
	return Config{
		Width:   80,
		Height:  40,
		Density: 1.0,
		Format:  "txt",
	}
}

// defaultConfigPath returns ~/.config/tessella/config.toml, or "" when the
// home directory cannot be resolved.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tessella", "config.toml")
}

// loadConfig reads the config file at path, falling back to the default
// location when path is empty. A missing default config is not an error;
// a missing explicit --config path is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigPath()
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "read config %s", path)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	return cfg, nil
}

const configKey ctxKey = 1

// withConfig returns a new context with the config attached.
func withConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// configFromContext retrieves the config from ctx, falling back to defaults.
func configFromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey).(Config); ok {
		return cfg
	}
	return defaultConfig()
}
