// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the variable [Load] reads the scenario
// path from.
const EnvironmentVariable = "FRAMECLOCK_CONFIG"

// MaxFrameRate bounds frame_rate. Above this the frame interval drops
// under one millisecond and sleeping for it stops meaning anything.
const MaxFrameRate = 1000

// StartPolicy says whether a configured timer starts when registered.
type StartPolicy string

const (
	// StartManual registers the timer inactive.
	StartManual StartPolicy = "manual"
	// StartImmediate starts the timer as it is registered.
	StartImmediate StartPolicy = "immediate"
)

// Config is a frame-loop scenario.
type Config struct {
	// FrameRate is the number of frames per second the owner loop
	// targets. Each frame advances the clock once and sweeps once.
	FrameRate int `yaml:"frame_rate"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Timers are registered in order when the loop starts.
	Timers []TimerConfig `yaml:"timers"`
}

// TimerConfig describes one timer to register.
type TimerConfig struct {
	// Name labels the timer in logs, the TUI, and reports. Unique
	// within a scenario.
	Name string `yaml:"name"`

	// Duration is the countdown length.
	Duration time.Duration `yaml:"duration"`

	// Repeat makes the timer re-arm after every fire.
	Repeat bool `yaml:"repeat"`

	// Start is "manual" or "immediate". Default: immediate.
	Start StartPolicy `yaml:"start"`

	// Limit stops a repeating timer after this many fires. Zero means
	// unlimited. Only valid with Repeat.
	Limit uint64 `yaml:"limit"`
}

// Default returns the built-in demo scenario. It is also the base that
// a loaded file is merged over, so a file may omit frame_rate and
// log_level.
func Default() *Config {
	return &Config{
		FrameRate: 60,
		LogLevel:  "info",
		Timers: []TimerConfig{
			{Name: "spawn-wave", Duration: 2 * time.Second, Start: StartImmediate},
			{Name: "heartbeat", Duration: time.Second, Repeat: true, Start: StartImmediate},
			{Name: "regen", Duration: 500 * time.Millisecond, Repeat: true, Start: StartImmediate, Limit: 10},
			{Name: "boss-warning", Duration: 10 * time.Second, Start: StartManual},
		},
	}
}

// Load loads the scenario named by FRAMECLOCK_CONFIG. There is no
// fallback: if the variable is unset, Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of a scenario file, or use --config flag", EnvironmentVariable)
	}
	return LoadFile(configPath)
}

// LoadFile loads and validates the scenario at path. Timers listed in
// the file replace the default timers entirely.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	cfg.Timers = nil

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	cfg.applyTimerDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return cfg, nil
}

// loadFile reads path and decodes it over the current config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scenario: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		data = jsonc.ToJSON(data)
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyTimerDefaults() {
	for index := range c.Timers {
		if c.Timers[index].Start == "" {
			c.Timers[index].Start = StartImmediate
		}
	}
}

// FrameInterval returns the wall time between frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate)
}

// Level parses LogLevel. An empty level is info.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Validate checks the configuration for errors. All problems are
// reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.FrameRate < 1 || c.FrameRate > MaxFrameRate {
		errs = append(errs, fmt.Errorf("frame_rate must be between 1 and %d, got %d", MaxFrameRate, c.FrameRate))
	}

	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}

	seen := make(map[string]bool, len(c.Timers))
	for index, timer := range c.Timers {
		prefix := fmt.Sprintf("timers[%d]", index)
		if timer.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", prefix))
		} else {
			prefix = fmt.Sprintf("timers[%d] (%s)", index, timer.Name)
			if seen[timer.Name] {
				errs = append(errs, fmt.Errorf("%s: duplicate name", prefix))
			}
			seen[timer.Name] = true
		}
		if timer.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s: duration must not be negative, got %v", prefix, timer.Duration))
		}
		if timer.Start != StartManual && timer.Start != StartImmediate {
			errs = append(errs, fmt.Errorf("%s: start must be %q or %q, got %q", prefix, StartManual, StartImmediate, timer.Start))
		}
		if timer.Limit > 0 && !timer.Repeat {
			errs = append(errs, fmt.Errorf("%s: limit requires repeat", prefix))
		}
	}

	return errors.Join(errs...)
}
