// Package core provides fundamental types shared by the game packages and the
// terminal platform. It has no external dependencies (especially no Bubble Tea)
// so game logic stays pure and testable.
package core

// RuntimeConfig contains configuration passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second
	Seed     int64 // RNG seed, 0 means the platform picks one from the clock

	// ConfigPath points at a custom game YAML file. Empty uses the search order.
	ConfigPath string
	// Difficulty is a preset name ("easy", "normal", "hard"). Empty keeps the file values.
	Difficulty string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the coarse status a game reports back to the platform.
type GameState struct {
	Score    int
	GameOver bool
	Won      bool
	Paused   bool
}

// StepResult is returned by Game.Step after each platform tick.
type StepResult struct {
	State GameState
}
