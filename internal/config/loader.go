package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config file checked after the
// user's own.
const LocalConfigPath = "configs/quizbreak.yaml"

// Load returns the game configuration. An explicit path must exist and parse.
// Otherwise the first readable, valid file among ~/.quizbreak/config.yaml and
// LocalConfigPath wins, and the embedded defaults are used when neither is.
// Files overlay the defaults, so a file may set only the keys it changes.
func Load(customPath string) (GameConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := overlay(data)
		if err != nil {
			return DefaultConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{UserPath("config.yaml"), LocalConfigPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := overlay(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := overlay(defaultYAML); err == nil {
		return cfg, nil
	}
	return DefaultConfig(), nil
}

// overlay decodes data on top of a fresh default config.
func overlay(data []byte) (GameConfig, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return GameConfig{}, err
	}
	return cfg, nil
}

// UserPath returns a path inside ~/.quizbreak, or empty if home is unavailable.
func UserPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, ".quizbreak"}, elem...)...)
}

// ExpandHome replaces a leading '~' with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the configured values.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 140
		cfg.Ball.SpeedX, cfg.Ball.SpeedY = 2, -2
		cfg.Ball.MaxDX = 2
	case DifficultyHard:
		cfg.Paddle.Width = 70
		cfg.Ball.SpeedX, cfg.Ball.SpeedY = 4.5, -4.5
		cfg.Ball.MaxDX = 4.5
		cfg.Paddle.Speed = 10
	}
}
