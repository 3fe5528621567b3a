package main

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"codelab/internal/analysis"
	"codelab/pkg/utils/logger"
)

const (
	defaultHTTPAddr        = "0.0.0.0:8080"
	defaultReadTimeout     = 5 * time.Second
	defaultWriteTimeout    = 30 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultExecTimeout     = 10 * time.Second
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr         string        `yaml:"addr"`
	ReadTimeout  time.Duration `yaml:"readTimeout"`
	WriteTimeout time.Duration `yaml:"writeTimeout"`
	IdleTimeout  time.Duration `yaml:"idleTimeout"`
}

// ExecutorConfig holds execution settings.
type ExecutorConfig struct {
	WorkRoot     string        `yaml:"workRoot"`
	Timeout      time.Duration `yaml:"timeout"`
	MaxCodeBytes int           `yaml:"maxCodeBytes"`
}

// AppConfig is the root configuration.
type AppConfig struct {
	Server   ServerConfig     `yaml:"server"`
	Logger   logger.Config    `yaml:"logger"`
	Executor ExecutorConfig   `yaml:"executor"`
	Scoring  analysis.Weights `yaml:"scoring"`
}

func loadYAML(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, out)
}

func loadAppConfig(path string) (*AppConfig, error) {
	var cfg AppConfig
	if err := loadYAML(path, &cfg); err != nil {
		return nil, err
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = defaultHTTPAddr
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = defaultReadTimeout
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = defaultWriteTimeout
	}
	if cfg.Server.IdleTimeout == 0 {
		cfg.Server.IdleTimeout = defaultIdleTimeout
	}
	if cfg.Executor.Timeout == 0 {
		cfg.Executor.Timeout = defaultExecTimeout
	}
	if cfg.Scoring == (analysis.Weights{}) {
		cfg.Scoring = analysis.DefaultWeights()
	}
	return &cfg, nil
}
