package controller

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"ledstrip"
)

// Config has the host-side connection settings and sysload defaults.
type Config struct {
	SerialPort     string        `yaml:"serial_port"`
	BaudRate       int           `yaml:"baud_rate"`
	NoLoadColor    string        `yaml:"no_load_color"`
	FullLoadColor  string        `yaml:"full_load_color"`
	Metrics        []Metric      `yaml:"metrics"`
	UpdateInterval time.Duration `yaml:"update_interval"`
}

// DefaultConfig returns the settings used when no config file is given:
// blue at no load, red at full load, all metrics, 10s between checks.
func DefaultConfig() Config {
	return Config{
		BaudRate:       ledstrip.Baud,
		NoLoadColor:    "0,0,255",
		FullLoadColor:  "255,0,0",
		Metrics:        AllMetrics,
		UpdateInterval: 10 * time.Second,
	}
}

// LoadConfig reads a yaml config file, filling in defaults for anything
// left unset.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("could not parse config file: %w", err)
	}

	if cfg.BaudRate <= 0 {
		cfg.BaudRate = ledstrip.Baud
	}
	if cfg.UpdateInterval <= 0 {
		cfg.UpdateInterval = 10 * time.Second
	}
	if len(cfg.Metrics) == 0 {
		cfg.Metrics = AllMetrics
	}
	if _, err := ledstrip.ParseColor(cfg.NoLoadColor); err != nil {
		return Config{}, fmt.Errorf("no_load_color: %w", err)
	}
	if _, err := ledstrip.ParseColor(cfg.FullLoadColor); err != nil {
		return Config{}, fmt.Errorf("full_load_color: %w", err)
	}

	return cfg, nil
}

// SysloadConfig resolves and validates the sysload settings. Colors can
// arrive from flags as well as the config file, so they are checked here
// too.
func (c Config) SysloadConfig() (SysloadConfig, error) {
	noLoad, err := ledstrip.ParseColor(c.NoLoadColor)
	if err != nil {
		return SysloadConfig{}, fmt.Errorf("no_load_color: %w", err)
	}
	fullLoad, err := ledstrip.ParseColor(c.FullLoadColor)
	if err != nil {
		return SysloadConfig{}, fmt.Errorf("full_load_color: %w", err)
	}
	return SysloadConfig{
		NoLoad:         noLoad,
		FullLoad:       fullLoad,
		Metrics:        c.Metrics,
		UpdateInterval: c.UpdateInterval,
	}, nil
}
