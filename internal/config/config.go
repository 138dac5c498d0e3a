// Package config loads jsparse settings from a TOML or YAML file.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/t14raptor/jsparse/outline"
)

// Config holds the complete application configuration
type Config struct {
	Parser   ParserConfig      `toml:"parser" yaml:"parser"`
	Engine   EngineConfig      `toml:"engine" yaml:"engine"`
	Watch    WatchConfig       `toml:"watch" yaml:"watch"`
	Server   ServerConfig      `toml:"server" yaml:"server"`
	Store    StoreConfig       `toml:"store" yaml:"store"`
	Log      LogConfig         `toml:"log" yaml:"log"`
	Patterns []outline.Pattern `toml:"patterns" yaml:"patterns"`
}

type ParserConfig struct {
	Strict bool `toml:"strict" yaml:"strict"`
}

// EngineConfig sizes the worker pool.
type EngineConfig struct {
	Workers int `toml:"workers" yaml:"workers"`
	Queue   int `toml:"queue" yaml:"queue"`
}

type WatchConfig struct {
	Debounce   Duration `toml:"debounce" yaml:"debounce"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
}

type ServerConfig struct {
	Addr string `toml:"addr" yaml:"addr"`
}

type StoreConfig struct {
	Path string `toml:"path" yaml:"path"`
}

type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"` // text or json
}

// Duration wraps time.Duration for text configuration values like "400ms".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Engine: EngineConfig{Workers: 1, Queue: 16},
		Watch: WatchConfig{
			Debounce:   Duration{400 * time.Millisecond},
			Extensions: []string{".js"},
		},
		Server:   ServerConfig{Addr: "127.0.0.1:8765"},
		Store:    StoreConfig{Path: "jsparse.db"},
		Log:      LogConfig{Level: "info", Format: "text"},
		Patterns: outline.DefaultPatterns(),
	}
}

// Load reads the file at path over the defaults. The format follows the
// extension: .toml, .yaml or .yml. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	path = os.ExpandEnv(path)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	cfg.Patterns = nil
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(content)).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
	if err := uniquePatterns(cfg.Patterns); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Patterns = MergePatterns(outline.DefaultPatterns(), cfg.Patterns)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// MergePatterns returns base with each override replacing the pattern of
// the same name in place, and new names appended in order.
func MergePatterns(base, overrides []outline.Pattern) []outline.Pattern {
	merged := slices.Clone(base)
	for _, p := range overrides {
		idx := slices.IndexFunc(merged, func(q outline.Pattern) bool { return q.Name == p.Name })
		if idx >= 0 {
			merged[idx] = p
		} else {
			merged = append(merged, p)
		}
	}
	return merged
}

// Validate checks the values a file may have set wrongly.
func (c *Config) Validate() error {
	if c.Engine.Workers < 1 {
		return fmt.Errorf("engine.workers must be at least 1, got %d", c.Engine.Workers)
	}
	if c.Engine.Queue < 0 {
		return fmt.Errorf("engine.queue must not be negative, got %d", c.Engine.Queue)
	}
	if c.Watch.Debounce.Duration < 0 {
		return fmt.Errorf("watch.debounce must not be negative")
	}
	for _, p := range c.Patterns {
		if p.Name == "" || p.Declaration == "" {
			return fmt.Errorf("pattern %q needs a name and a declaration", p.Name)
		}
	}
	if err := uniquePatterns(c.Patterns); err != nil {
		return err
	}
	if _, err := c.Log.level(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

func uniquePatterns(patterns []outline.Pattern) error {
	seen := make(map[string]bool, len(patterns))
	for _, p := range patterns {
		if seen[p.Name] {
			return fmt.Errorf("duplicate pattern %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

func (l LogConfig) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// NewLogger builds a logger writing to w in the configured format.
func (l LogConfig) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := l.level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
