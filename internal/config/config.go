package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"wipefile_enterprise/internal/system"
)

// Enterprise конфигурация
type Config struct {
	Security struct {
		RequireConfirmation bool     `yaml:"require_confirmation"`
		ProtectedPaths      []string `yaml:"protected_paths"`
		AllowProtected      bool     `yaml:"allow_protected"`
	} `yaml:"security"`

	Wipe struct {
		Passes       int     `yaml:"passes"`
		MaxSpeedMBps float64 `yaml:"max_speed_mbps"`
	} `yaml:"wipe"`

	Logging struct {
		Level     string `yaml:"level"`
		File      string `yaml:"file"`
		MaxSizeMB int    `yaml:"max_size_mb"`
		MaxFiles  int    `yaml:"max_files"`
	} `yaml:"logging"`

	Reporting struct {
		Enabled   bool   `yaml:"enabled"`
		LocalPath string `yaml:"local_path"`
		Format    string `yaml:"format"`
	} `yaml:"reporting"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}

	cfg.Security.RequireConfirmation = true
	cfg.Security.ProtectedPaths = system.DefaultProtectedPaths()
	cfg.Security.AllowProtected = false

	cfg.Wipe.Passes = 3
	cfg.Wipe.MaxSpeedMBps = 0 // Без ограничения

	cfg.Logging.Level = "INFO"
	cfg.Logging.File = ""
	cfg.Logging.MaxSizeMB = 100
	cfg.Logging.MaxFiles = 5

	cfg.Reporting.Enabled = false
	cfg.Reporting.LocalPath = "./reports"
	cfg.Reporting.Format = "json"

	return cfg
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

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	// Валидация конфигурации
	if err := Validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Validate проверяет конфигурацию на валидность
func Validate(config *Config) error {
	// Валидация wipe секции
	if config.Wipe.Passes <= 0 || config.Wipe.Passes > 35 {
		return fmt.Errorf("passes must be between 1 and 35, got %d", config.Wipe.Passes)
	}

	if config.Wipe.MaxSpeedMBps < 0 {
		return fmt.Errorf("max speed cannot be negative, got %f", config.Wipe.MaxSpeedMBps)
	}
	if config.Wipe.MaxSpeedMBps > 1000 { // 1GB/s max
		return fmt.Errorf("max speed too high (max 1000MB/s), got %f", config.Wipe.MaxSpeedMBps)
	}

	// Валидация logging секции
	validLevels := map[string]bool{
		"DEBUG": true,
		"INFO":  true,
		"WARN":  true,
		"ERROR": true,
	}
	if !validLevels[config.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	if config.Logging.MaxSizeMB <= 0 || config.Logging.MaxSizeMB > 1000 {
		return fmt.Errorf("log max size must be between 1MB and 1000MB, got %d", config.Logging.MaxSizeMB)
	}

	if config.Logging.MaxFiles <= 0 || config.Logging.MaxFiles > 50 {
		return fmt.Errorf("log max files must be between 1 and 50, got %d", config.Logging.MaxFiles)
	}

	// Валидация reporting секции
	if config.Reporting.Enabled {
		if config.Reporting.Format != "json" {
			return fmt.Errorf("invalid report format: %s", config.Reporting.Format)
		}
		if config.Reporting.LocalPath == "" {
			return fmt.Errorf("reporting enabled but local_path is empty")
		}
	}

	// Валидация защищённых путей
	for _, path := range config.Security.ProtectedPaths {
		if path == "" {
			return fmt.Errorf("empty protected path")
		}

		absPath := filepath.Clean(path)
		if absPath == "" || absPath == "." {
			return fmt.Errorf("invalid protected path: %s", path)
		}
	}

	return nil
}

// Save сохраняет конфигурацию в файл
func Save(config *Config, path string) error {
	// Валидация перед сохранением
	if err := Validate(config); err != nil {
		return fmt.Errorf("cannot save invalid config: %w", err)
	}

	// Создаем директорию если нужно
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
