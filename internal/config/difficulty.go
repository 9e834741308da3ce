package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a flag value into a preset. Empty means normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBingoPreset adjusts lives and timer pressure for a preset.
// Normal leaves the loaded values untouched. A bonus or penalty of 0 stays off.
func ApplyBingoPreset(cfg *BingoConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Round.Lives += 2
		cfg.Timer.Seconds += cfg.Timer.Seconds / 2
		if cfg.Timer.Penalty > 0 {
			cfg.Timer.Penalty = max(cfg.Timer.Penalty-2, 1)
		}
	case DifficultyHard:
		cfg.Round.Lives = max(cfg.Round.Lives-1, 1)
		cfg.Timer.Seconds = max(cfg.Timer.Seconds*3/4, 10)
		if cfg.Timer.Bonus > 0 {
			cfg.Timer.Bonus = max(cfg.Timer.Bonus-2, 1)
		}
		cfg.Timer.Penalty *= 2
		cfg.Scoring.WinBonus *= 2
	}
	if cfg.Timer.LastSeconds > cfg.Timer.Seconds {
		cfg.Timer.LastSeconds = cfg.Timer.Seconds
	}
}
