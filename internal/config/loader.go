package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadBingo loads the bingo configuration.
// Search order: customPath -> ~/.arcade/configs/bingo.yaml -> ./configs/bingo.yaml -> embedded default.
// Environment overrides (BINGO_*) are applied on top and the result is validated.
func LoadBingo(customPath string) (BingoConfig, error) {
	cfg, err := loadBingoFile(customPath)
	if err != nil {
		return cfg, err
	}
	if err := ApplyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadBingoFile(customPath string) (BingoConfig, error) {
	// A custom path must load; everything after it is best effort.
	if customPath != "" {
		cfg := DefaultBingoConfig()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{filepath.Join("configs", "bingo.yaml")}
	if p := userConfigPath("bingo.yaml"); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg := DefaultBingoConfig()
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	var cfg BingoConfig
	if err := yaml.Unmarshal(defaultBingoYAML, &cfg); err != nil {
		return DefaultBingoConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ApplyEnv overrides fields that have a BINGO_* variable set.
func ApplyEnv(cfg *BingoConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Marshal renders a config as YAML.
func Marshal(cfg BingoConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
