package config

import (
	_ "embed"
)

//go:embed defaults/bingo.yaml
var defaultBingoYAML []byte

// DefaultBingoConfig returns the built-in bingo configuration. It mirrors
// defaults/bingo.yaml and is used when the embedded file cannot be parsed.
func DefaultBingoConfig() BingoConfig {
	return BingoConfig{
		Round: BingoRound{
			Lives: 3,
		},
		Timer: BingoTimer{
			Seconds:     60,
			LastSeconds: 10,
			Bonus:       5,
			Penalty:     5,
			IntervalMS:  1000,
		},
		Scoring: BingoScoring{
			MarkPoints:   10,
			RejectPoints: 2,
			WinBonus:     100,
			LifeBonus:    25,
			SecondBonus:  2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game, or nil.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bingo":
		return defaultBingoYAML
	default:
		return nil
	}
}
