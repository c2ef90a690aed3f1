package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// presetConfig is what gets loaded from ~/.shellcore-demo/config.yaml to
// seed an Interpreter before the REPL starts.
type presetConfig struct {
	PS1         string            `yaml:"ps1,omitempty"`
	HistorySize int               `yaml:"history_size,omitempty"`
	Aliases     map[string]string `yaml:"aliases,omitempty"`
	Variables   map[string]string `yaml:"variables,omitempty"`
}

func loadPresetConfig() (*presetConfig, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return &presetConfig{}, nil
	}

	configDir := filepath.Join(home, ".shellcore-demo")
	configPath := filepath.Join(configDir, "config.yaml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			os.MkdirAll(configDir, 0o755)
			return &presetConfig{}, nil
		}
		return &presetConfig{}, nil
	}

	var cfg presetConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	return &cfg, nil
}
