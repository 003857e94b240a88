package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the demo command configuration.
type Config struct {
	Model         string `yaml:"model"`
	BaseURL       string `yaml:"base_url"`
	MaxIterations int    `yaml:"max_iterations"`
	Retries       int    `yaml:"retries"`
	MCPServer     string `yaml:"mcp_server"`
	MetricsAddr   string `yaml:"metrics_addr"`
	SystemPrompt  string `yaml:"system_prompt"`
}

// loadConfig reads a YAML config file, falling back to defaults when the
// file is absent.
func loadConfig(path string) (Config, error) {
	cfg := Config{
		Model:         "gemini-2.5-flash",
		MaxIterations: 10,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = 10
	}
	return cfg, nil
}
