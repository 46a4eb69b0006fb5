package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Options — неизменяемые параметры запуска. Заполняются один раз CLI-слоем
// (флаги поверх значений из файла конфигурации) и дальше передаются во все
// компоненты только для чтения.
type Options struct {
	Passes         int
	Recursive      bool
	Keep           bool
	Verbose        bool
	FollowSymlinks bool
	Secure         bool
	DryRun         bool
	Verify         bool
	Force          bool
	Internal       bool

	// Ограничение скорости записи, 0 = без лимита
	MaxSpeedMBps float64
}

// ShredConfig задаёт значения по умолчанию для параметров затирания
type ShredConfig struct {
	Passes       int     `yaml:"passes"`
	Secure       bool    `yaml:"secure"`
	Verify       bool    `yaml:"verify"`
	MaxSpeedMBps float64 `yaml:"max_speed_mbps"`
}

// LoggingConfig задаёт параметры журнала
type LoggingConfig struct {
	File string `yaml:"file"`
}

// ReportingConfig задаёт параметры JSON-отчётов о запуске
type ReportingConfig struct {
	Enabled   bool   `yaml:"enabled"`
	LocalPath string `yaml:"local_path"`
}

// Config — файловая конфигурация (yaml)
type Config struct {
	Shred     ShredConfig     `yaml:"shred"`
	Logging   LoggingConfig   `yaml:"logging"`
	Reporting ReportingConfig `yaml:"reporting"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Shred: ShredConfig{
			Passes:       3,
			Secure:       false,
			Verify:       true,
			MaxSpeedMBps: 0,
		},
		Logging: LoggingConfig{
			File: "",
		},
		Reporting: ReportingConfig{
			Enabled:   false,
			LocalPath: "./reports",
		},
	}
}

// Load загружает конфигурацию из файла
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate проверяет конфигурацию на валидность
func Validate(cfg *Config) error {
	if cfg.Shred.Passes < 1 {
		return fmt.Errorf("passes must be at least 1, got %d", cfg.Shred.Passes)
	}
	if cfg.Shred.Passes > 100 {
		return fmt.Errorf("passes too high (max 100), got %d", cfg.Shred.Passes)
	}

	if cfg.Shred.MaxSpeedMBps < 0 {
		return fmt.Errorf("max speed cannot be negative, got %f", cfg.Shred.MaxSpeedMBps)
	}
	if cfg.Shred.MaxSpeedMBps > 1000 {
		return fmt.Errorf("max speed too high (max 1000MB/s), got %f", cfg.Shred.MaxSpeedMBps)
	}

	if cfg.Reporting.Enabled && cfg.Reporting.LocalPath == "" {
		return fmt.Errorf("reporting enabled but local_path is empty")
	}

	return nil
}

// Save сохраняет конфигурацию в файл
func Save(cfg *Config, path string) error {
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// NewOptions собирает стартовый набор параметров запуска из файловой
// конфигурации. CLI-флаги применяются поверх уже после.
func NewOptions(cfg *Config) Options {
	return Options{
		Passes:       cfg.Shred.Passes,
		Secure:       cfg.Shred.Secure,
		Verify:       cfg.Shred.Verify,
		MaxSpeedMBps: cfg.Shred.MaxSpeedMBps,
	}
}
