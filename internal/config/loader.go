package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Source names where a configuration came from, for logging.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// candidateNames are tried in each search directory, in order.
var candidateNames = []string{"flappy.yaml", "flappy.yml", "flappy.toml"}

// LoadFlappy loads the Flappy configuration.
// Search order: customPath -> ~/.arcade/configs/flappy.{yaml,toml} ->
// ./configs/flappy.{yaml,toml} -> embedded default.
// Files only need to set the keys they change; everything else keeps its default.
func LoadFlappy(customPath string) (FlappyConfig, Source, error) {
	// Try custom path first; errors here are fatal
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), nil
	}

	dirs := []string{localConfigDir}
	if userDir := userConfigDir(); userDir != "" {
		dirs = append([]string{userDir}, dirs...)
	}

	for _, dir := range dirs {
		for _, name := range candidateNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			cfg, err := loadFile(path)
			if err != nil {
				return cfg, "", err
			}
			return cfg, Source(path), nil
		}
	}

	// Use embedded default YAML
	cfg := DefaultFlappyConfig()
	if err := yaml.Unmarshal(defaultFlappyYAML, &cfg); err != nil {
		return DefaultFlappyConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// localConfigDir is relative to the working directory.
const localConfigDir = "configs"

// loadFile reads, decodes and validates one config file.
func loadFile(path string) (FlappyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FlappyConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses YAML or TOML (chosen by extension, YAML when unknown) over
// the defaults and validates the result.
func Decode(data []byte, ext string) (FlappyConfig, error) {
	cfg := DefaultFlappyConfig()

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, fmt.Errorf("toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigDir returns ~/.arcade/configs, or empty if home is unavailable.
func userConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs")
}
