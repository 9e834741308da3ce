// Package config provides YAML-based game configuration loading, environment
// overrides and difficulty presets for the bingo arcade.
package config

import (
	"errors"
	"fmt"
	"time"
)

// BingoConfig contains all tunables for a bingo round.
type BingoConfig struct {
	Round   BingoRound   `yaml:"round"`
	Timer   BingoTimer   `yaml:"timer"`
	Scoring BingoScoring `yaml:"scoring"`
}

// BingoRound holds lives-mode settings.
type BingoRound struct {
	Lives int `yaml:"lives" env:"BINGO_LIVES"`
}

// BingoTimer holds timer-mode settings.
type BingoTimer struct {
	Seconds     int `yaml:"seconds" env:"BINGO_TIMER_SECONDS"`
	LastSeconds int `yaml:"last_seconds" env:"BINGO_TIMER_LAST_SECONDS"`
	Bonus       int `yaml:"bonus" env:"BINGO_TIMER_BONUS"`
	Penalty     int `yaml:"penalty" env:"BINGO_TIMER_PENALTY"`
	IntervalMS  int `yaml:"interval_ms" env:"BINGO_TIMER_INTERVAL_MS"`
}

// BingoScoring holds point values.
type BingoScoring struct {
	MarkPoints   int `yaml:"mark_points"`
	RejectPoints int `yaml:"reject_points"`
	WinBonus     int `yaml:"win_bonus"`
	LifeBonus    int `yaml:"life_bonus"`
	SecondBonus  int `yaml:"second_bonus"`
}

// Interval returns the countdown tick interval.
func (t BingoTimer) Interval() time.Duration {
	return time.Duration(t.IntervalMS) * time.Millisecond
}

// Validate rejects values that would make a round unplayable.
func (c BingoConfig) Validate() error {
	var errs []error
	if c.Round.Lives < 1 {
		errs = append(errs, fmt.Errorf("round.lives must be at least 1, got %d", c.Round.Lives))
	}
	if c.Timer.Seconds < 1 {
		errs = append(errs, fmt.Errorf("timer.seconds must be at least 1, got %d", c.Timer.Seconds))
	}
	if c.Timer.LastSeconds < 0 || c.Timer.LastSeconds > c.Timer.Seconds {
		errs = append(errs, fmt.Errorf("timer.last_seconds must be within 0..%d, got %d", c.Timer.Seconds, c.Timer.LastSeconds))
	}
	if c.Timer.Bonus < 0 || c.Timer.Penalty < 0 {
		errs = append(errs, errors.New("timer.bonus and timer.penalty must not be negative"))
	}
	if c.Timer.IntervalMS < 50 {
		errs = append(errs, fmt.Errorf("timer.interval_ms must be at least 50, got %d", c.Timer.IntervalMS))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid bingo config: %w", err)
	}
	return nil
}
