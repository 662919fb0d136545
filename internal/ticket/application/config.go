package application

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config tunes the export worker pool.
type Config struct {
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// LoadConfig loads exporter settings from env defaults, overlaid by the yaml
// file named in EXPORT_CONFIG when set.
func LoadConfig() (Config, error) {
	cfg := Config{
		Workers:   getenvIntDefault("EXPORT_WORKERS", 4),
		QueueSize: getenvIntDefault("EXPORT_QUEUE_SIZE", 16),
	}

	if path := os.Getenv("EXPORT_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	if cfg.QueueSize < 0 {
		cfg.QueueSize = 0
	}
	return cfg, nil
}

func getenvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
