package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/andyrewlee/termsync/internal/logging"
	"github.com/andyrewlee/termsync/internal/render"
)

// ErrInvalidConfig is wrapped by errors about malformed settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the application configuration
type Config struct {
	Paths    *Paths         `json:"-"`
	Renderer RendererConfig `json:"renderer"`
	Log      LogConfig      `json:"log"`
}

// RendererConfig selects the terminal modes the renderer sets up.
type RendererConfig struct {
	AlternateScreen    bool   `json:"alternate_screen"`
	MouseTracking      bool   `json:"mouse_tracking"`
	BracketedPaste     bool   `json:"bracketed_paste"`
	DisableLineWrap    bool   `json:"disable_line_wrap"`
	SynchronizedOutput bool   `json:"synchronized_output"`
	Title              string `json:"title"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level   string `json:"level"`
	Enabled bool   `json:"enabled"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return defaultsAt(paths), nil
}

func defaultsAt(paths *Paths) *Config {
	return &Config{
		Paths: paths,
		Renderer: RendererConfig{
			AlternateScreen: true,
			MouseTracking:   true,
			BracketedPaste:  true,
		},
		Log: LogConfig{
			Level:   "info",
			Enabled: true,
		},
	}
}

// Load reads ~/.termsync/config.json if present and applies environment
// overrides.
func Load() (*Config, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}
	return LoadFrom(paths)
}

// LoadFrom reads the config file described by paths. A missing file yields
// the defaults.
func LoadFrom(paths *Paths) (*Config, error) {
	cfg := defaultsAt(paths)

	data, err := os.ReadFile(paths.ConfigPath)
	switch {
	case err == nil:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfig, paths.ConfigPath, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	flags := []struct {
		env string
		dst *bool
	}{
		{"TERMSYNC_ALT_SCREEN", &c.Renderer.AlternateScreen},
		{"TERMSYNC_MOUSE", &c.Renderer.MouseTracking},
		{"TERMSYNC_PASTE", &c.Renderer.BracketedPaste},
		{"TERMSYNC_SYNC_OUTPUT", &c.Renderer.SynchronizedOutput},
	}
	for _, f := range flags {
		raw := strings.TrimSpace(os.Getenv(f.env))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, f.env, raw)
		}
		*f.dst = v
	}
	if raw := strings.TrimSpace(os.Getenv("TERMSYNC_LOG_LEVEL")); raw != "" {
		c.Log.Level = raw
	}
	return nil
}

// Validate reports settings that cannot be used.
func (c *Config) Validate() error {
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	return nil
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() logging.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// RendererOptions maps the renderer settings onto render.Options writing
// to out.
func (c *Config) RendererOptions(out io.Writer) render.Options {
	return render.Options{
		Output:             out,
		AlternateScreen:    c.Renderer.AlternateScreen,
		MouseTracking:      c.Renderer.MouseTracking,
		BracketedPaste:     c.Renderer.BracketedPaste,
		DisableLineWrap:    c.Renderer.DisableLineWrap,
		SynchronizedOutput: c.Renderer.SynchronizedOutput,
		Title:              c.Renderer.Title,
	}
}

// Save writes the config file, creating directories as needed.
func (c *Config) Save() error {
	if err := c.Paths.EnsureDirectories(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	tmp := c.Paths.ConfigPath + ".tmp"
	if err := os.WriteFile(tmp, append(data, '\n'), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, c.Paths.ConfigPath)
}
