package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/evgfitil/ucli/internal/logging"
	"github.com/evgfitil/ucli/internal/prompt"
	"github.com/evgfitil/ucli/internal/render"
	"github.com/evgfitil/ucli/internal/selection"
)

const (
	Dir       = "ucli"
	File      = "config.yaml"
	EnvPrefix = "UCLI"
)

// Config represents the application configuration
type Config struct {
	Theme    ThemeConfig  `mapstructure:"theme"`
	Select   SelectConfig `mapstructure:"select"`
	Prompt   PromptConfig `mapstructure:"prompt"`
	LogLevel string       `mapstructure:"log_level"`
}

// ThemeConfig holds lipgloss colors for the renderer.
type ThemeConfig struct {
	Header    string `mapstructure:"header"`
	Info      string `mapstructure:"info"`
	Highlight string `mapstructure:"highlight"`
}

// SelectConfig holds selection menu settings.
type SelectConfig struct {
	Message string `mapstructure:"message"`
}

// PromptConfig holds line editor settings.
type PromptConfig struct {
	HistoryLimit int `mapstructure:"history_limit"`
}

// ToTheme converts ThemeConfig to a render.Theme.
func (c ThemeConfig) ToTheme() render.Theme {
	return render.Theme{
		HeaderFg:    c.Header,
		InfoFg:      c.Info,
		HighlightFg: c.Highlight,
	}
}

// configPath returns the full path to the config file, honoring
// XDG_CONFIG_HOME.
func configPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, Dir, File), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", Dir, File), nil
}

func setDefaults(v *viper.Viper) {
	theme := render.DefaultTheme()
	v.SetDefault("theme.header", theme.HeaderFg)
	v.SetDefault("theme.info", theme.InfoFg)
	v.SetDefault("theme.highlight", theme.HighlightFg)
	v.SetDefault("select.message", selection.DefaultMessage)
	v.SetDefault("prompt.history_limit", prompt.DefaultHistoryLimit)
	v.SetDefault("log_level", logging.DefaultLevel)
}

// Load reads configuration from the config file and UCLI_* environment
// variables. A missing file is not an error.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := configPath()
	if err != nil {
		return nil, err
	}

	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if readErr := v.ReadInConfig(); readErr != nil {
		if !os.IsNotExist(readErr) {
			return nil, fmt.Errorf("failed to read config file: %w", readErr)
		}
	}

	var cfg Config
	if unmarshalErr := v.Unmarshal(&cfg); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", unmarshalErr)
	}

	if cfg.Select.Message == "" {
		return nil, fmt.Errorf("select.message must not be empty (in %s)", path)
	}
	if cfg.Prompt.HistoryLimit < 1 {
		return nil, fmt.Errorf("prompt.history_limit must be at least 1, got %d (in %s)", cfg.Prompt.HistoryLimit, path)
	}
	if cfg.Theme.Header == "" || cfg.Theme.Info == "" || cfg.Theme.Highlight == "" {
		return nil, fmt.Errorf("theme colors must not be empty (in %s)", path)
	}

	return &cfg, nil
}

// Path returns the path to the config file
func Path() string {
	path, err := configPath()
	if err != nil {
		return filepath.Join("~", ".config", Dir, File)
	}
	return path
}
