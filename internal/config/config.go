// Package config handles roomforge configuration loading and management.
package config

import "time"

// Config holds all tool settings.
type Config struct {
	Assets  AssetsConfig  `yaml:"assets"`
	Scene   SceneConfig   `yaml:"scene"`
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
}

// AssetsConfig holds model asset locations.
type AssetsConfig struct {
	Dir string `yaml:"dir"` // Directory holding OBJ models
}

// SceneConfig holds scene building settings.
type SceneConfig struct {
	// CameraSamples is the number of interpolated camera poses emitted
	// alongside the scene description; 0 disables sampling.
	CameraSamples int `yaml:"camera_samples"`
}

// ServerConfig holds HTTP service settings.
type ServerConfig struct {
	Listen       string        `yaml:"listen"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Assets: AssetsConfig{
			Dir: "models",
		},
		Scene: SceneConfig{
			CameraSamples: 0,
		},
		Server: ServerConfig{
			Listen:       ":8420",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
