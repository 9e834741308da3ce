package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-bingo/internal/core"
	"github.com/vovakirdan/tui-bingo/internal/platform/tui"
	"github.com/vovakirdan/tui-bingo/internal/registry"
	"github.com/vovakirdan/tui-bingo/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a bingo variant",
	Long: `Start playing the specified variant.

Variants:
  bingo        - Lives only: each mistake costs a life
  bingo_timed  - Countdown only: right calls add time, mistakes remove it
  bingo_blitz  - Both lives and countdown

Controls:
  A/Y/Space/Enter  - The number is on my ticket
  X/N              - The number is not on my ticket
  P                - Pause
  R                - Restart (after the round ends)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives and time, smaller time penalty
  normal - Values from the config file
  hard   - Fewer lives and less time, larger time penalty

Examples:
  bingo play bingo
  bingo play bingo_timed --difficulty easy
  bingo play bingo_blitz --seed 42
  bingo play bingo --config ./my-bingo.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

// runtimeConfig builds the config shared by play and menu from the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   flagFPS,
		Seed:       flagSeed,
		ConfigPath: flagConfig,
		Difficulty: flagDifficulty,
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bingo list' to see available variants.")
		os.Exit(1)
	}

	checkGameFlags()

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, logFile := openTUILogger()
	defer logFile.Close()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	logger.Info("starting game", "game", gameID, "difficulty", flagDifficulty, "seed", flagSeed)
	runErr := tui.Run(game, store, runtimeConfig(), logger)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logFile.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
