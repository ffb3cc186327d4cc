// Package config loads the timetable configuration from TOML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	VisibleDays  int    `koanf:"visible_days"`  // days shown side by side (1-14, default: 3)
	Range        string `koanf:"range"`         // "days", "week" or "fixed" (default: "days")
	FirstWeekday string `koanf:"first_weekday"` // week ranges start on this day (default: "monday")
	StartDate    string `koanf:"start_date"`    // YYYY-MM-DD; fixed ranges start here, others open here
	Database     string `koanf:"database"`      // sqlite path, empty for the XDG data dir

	Physics      PhysicsConfig      `koanf:"physics"`
	NowIndicator NowIndicatorConfig `koanf:"now_indicator"`
	Log          LogConfig          `koanf:"log"`
}

// PhysicsConfig tunes the settle animation after a scroll.
type PhysicsConfig struct {
	Drag      float64 `koanf:"drag"`       // velocity decay in 1/s (default: 4)
	Stiffness float64 `koanf:"stiffness"`  // approach rate in 1/s (default: 12)
	DeadZone  float64 `koanf:"dead_zone"`  // snap distance in columns (default: 0.05)
	WheelStep float64 `koanf:"wheel_step"` // columns per wheel or arrow step (default: 4)
}

// NowIndicatorConfig controls the current time marker.
type NowIndicatorConfig struct {
	Enabled           *bool `koanf:"enabled"`            // default: true
	ResolutionSeconds int   `koanf:"resolution_seconds"` // refresh interval (default: 60)
}

// LogConfig configures the debug log file. Logging is off without a file.
type LogConfig struct {
	File       string `koanf:"file"`
	Level      string `koanf:"level"`       // zap level name (default: "info")
	MaxSizeMB  int    `koanf:"max_size_mb"` // rotate after this size (default: 10)
	MaxBackups int    `koanf:"max_backups"` // rotated files kept (default: 3)
}

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order; later files win. Missing files
// are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Range = strings.ToLower(strings.TrimSpace(cfg.Range))
	cfg.FirstWeekday = strings.ToLower(strings.TrimSpace(cfg.FirstWeekday))

	if cfg.Database != "" {
		cfg.Database = expandPath(cfg.Database)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Range {
	case "", "days", "week", "fixed":
	default:
		return fmt.Errorf("range %q: want days, week or fixed", c.Range)
	}
	if c.FirstWeekday != "" {
		if _, ok := weekdays[c.FirstWeekday]; !ok {
			return fmt.Errorf("first_weekday %q: not a weekday", c.FirstWeekday)
		}
	}
	if c.StartDate != "" {
		if _, err := time.Parse(time.DateOnly, c.StartDate); err != nil {
			return fmt.Errorf("start_date: %w", err)
		}
	}
	return nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/timetable/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "timetable", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// GetVisibleDays returns the visible day count with defaults applied.
func (c *Config) GetVisibleDays() int {
	if c.VisibleDays <= 0 || c.VisibleDays > 14 {
		return 3
	}
	return c.VisibleDays
}

// GetRange returns the range kind with defaults applied.
func (c *Config) GetRange() string {
	if c.Range == "" {
		return "days"
	}
	return c.Range
}

// GetFirstWeekday returns the first day of a week, Monday by default.
func (c *Config) GetFirstWeekday() time.Weekday {
	if wd, ok := weekdays[c.FirstWeekday]; ok {
		return wd
	}
	return time.Monday
}

// GetStartDate returns the configured start date, or now.
func (c *Config) GetStartDate(now time.Time) time.Time {
	if c.StartDate == "" {
		return now
	}
	d, err := time.ParseInLocation(time.DateOnly, c.StartDate, now.Location())
	if err != nil {
		return now
	}
	return d
}

// GetPhysicsConfig returns the physics configuration with defaults applied.
func (c *Config) GetPhysicsConfig() PhysicsConfig {
	cfg := c.Physics
	if cfg.Drag <= 0 {
		cfg.Drag = 4
	}
	if cfg.Stiffness <= 0 {
		cfg.Stiffness = 12
	}
	if cfg.DeadZone <= 0 {
		cfg.DeadZone = 0.05
	}
	if cfg.WheelStep <= 0 {
		cfg.WheelStep = 4
	}
	return cfg
}

// NowIndicatorEnabled reports whether the current time marker is drawn.
func (c *Config) NowIndicatorEnabled() bool {
	return c.NowIndicator.Enabled == nil || *c.NowIndicator.Enabled
}

// GetNowIndicatorResolution returns the marker refresh interval.
func (c *Config) GetNowIndicatorResolution() time.Duration {
	if c.NowIndicator.ResolutionSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.NowIndicator.ResolutionSeconds) * time.Second
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log
	if cfg.Level == "" {
		cfg.Level = "info"
	}
	if cfg.MaxSizeMB <= 0 {
		cfg.MaxSizeMB = 10
	}
	if cfg.MaxBackups <= 0 {
		cfg.MaxBackups = 3
	}
	return cfg
}
