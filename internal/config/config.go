// Package config loads viewer settings from defaults, a YAML file, COLVIEW_*
// environment variables and command-line flags, in increasing precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	envPrefix      = "COLVIEW_"
	configFileName = "config.yaml"
)

// Defaults.
const (
	DefaultTreeWidth   = 28
	DefaultStyle       = "tokyo-night"
	DefaultDialogWidth = 64
)

// Config holds the viewer settings.
type Config struct {
	TreeWidth   int    `koanf:"tree_width"`
	ShowTree    bool   `koanf:"show_tree"`
	Style       string `koanf:"style"`
	DialogWidth int    `koanf:"dialog_width"`
	Watch       bool   `koanf:"watch"`
	Debug       bool   `koanf:"debug"`
	LogDir      string `koanf:"log_dir"`

	fileUsed string
}

// FileUsed returns the config file that was loaded, if any.
func (c *Config) FileUsed() string {
	return c.fileUsed
}

// DefaultPath returns ~/.config/colview/config.yaml, honouring
// XDG_CONFIG_HOME.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "colview", configFileName)
}

// Load builds the configuration. An explicit cfgFile must exist; the default
// location is optional.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"tree_width":   DefaultTreeWidth,
		"show_tree":    true,
		"style":        DefaultStyle,
		"dialog_width": DefaultDialogWidth,
		"watch":        true,
		"debug":        false,
		"log_dir":      "",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := cfgFile
	if path == "" {
		if candidate := DefaultPath(); candidate != "" {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.fileUsed = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.TreeWidth < 0 {
		return fmt.Errorf("tree_width must not be negative, got %d", c.TreeWidth)
	}
	if c.DialogWidth < 0 {
		return fmt.Errorf("dialog_width must not be negative, got %d", c.DialogWidth)
	}
	return nil
}
