// bingo is a terminal 90-ball bingo game with single-ticket rounds.
//
// Usage:
//
//	bingo list              - List available variants
//	bingo play <variant>    - Play a variant
//	bingo menu              - Start menu to pick variants interactively
//	bingo serve             - Start SSH server for remote play
//	bingo scores <variant>  - Show high scores and round history
//	bingo ticket            - Print a generated ticket
//	bingo config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.arcade/scores.db)
//	--config <path>       - Use a custom bingo YAML file
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bingo/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-bingo/internal/games/bingo"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bingo",
	Short: "TUI Bingo - 90-ball bingo in your terminal",
	Long: `TUI Bingo deals you a 15-number ticket and calls numbers one at a time.
Say whether each number is on your ticket; complete any row to win.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  serve    - Start SSH server for remote play
  scores   - View high scores and round history
  ticket   - Print a generated ticket
  config   - Print the effective configuration

Examples:
  bingo list
  bingo play bingo
  bingo play bingo_blitz --difficulty hard
  bingo menu
  bingo serve --ssh :2222
  bingo scores bingo_timed`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bingo config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(ticketCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
// An unknown level falls back to info with a warning.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// openTUILogger logs to ~/.arcade/bingo.log so output does not tear the
// alt screen. The returned closer must be called on exit.
func openTUILogger() (*log.Logger, io.Closer) {
	home, err := os.UserHomeDir()
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	dir := filepath.Join(home, ".arcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(filepath.Join(dir, "bingo.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return newLogger(f, "bingo"), f
}

// checkGameFlags exits if --config or --difficulty cannot be used, before any
// alt screen hides the error.
func checkGameFlags() {
	if flagConfig != "" {
		if _, err := config.LoadBingo(flagConfig); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if _, err := config.ParseDifficulty(flagDifficulty); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
