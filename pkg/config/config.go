// Package config holds the postdoc settings shared by the CLI commands.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// BaseName is the config file name without extension, as viper looks it up.
const BaseName = ".postdoc"

// FileName is the config file looked up in the working directory.
const FileName = BaseName + ".yaml"

// EnvPrefix prefixes environment variables that override config keys,
// e.g. POSTDOC_OUT.
const EnvPrefix = "POSTDOC"

// Config represents the user's postdoc configuration.
type Config struct {
	Out            string `mapstructure:"out" yaml:"out"`
	Download       bool   `mapstructure:"download" yaml:"download"`
	Title          string `mapstructure:"title" yaml:"title,omitempty"`
	HighlightStyle string `mapstructure:"highlight_style" yaml:"highlight_style"`
	LogLevel       string `mapstructure:"log_level" yaml:"log_level"`
	Force          bool   `mapstructure:"force" yaml:"force"`
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Out:            "./output",
		HighlightStyle: "github",
		LogLevel:       "warn",
	}
}

// Defaults returns Default as a key/value map, for registering with viper.
func Defaults() map[string]any {
	d := Default()
	return map[string]any{
		"out":             d.Out,
		"download":        d.Download,
		"title":           d.Title,
		"highlight_style": d.HighlightStyle,
		"log_level":       d.LogLevel,
		"force":           d.Force,
	}
}

// WriteDefault creates a config file at path holding the defaults. An
// existing file is never overwritten.
func WriteDefault(path string) error {
	data, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	header := "# postdoc configuration\n# Every key can also be set with a POSTDOC_ environment variable.\n"
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("config file %s already exists", path)
		}
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(header + string(data)); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ParseLevel maps a log_level value to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log_level %q", s)
	}
	return level, nil
}

// Logger returns a text logger writing to w at the configured level.
// An invalid level falls back to warn.
func (c Config) Logger(w io.Writer) *slog.Logger {
	level, _ := ParseLevel(c.LogLevel)
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
