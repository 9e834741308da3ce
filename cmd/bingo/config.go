package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bingo/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective bingo configuration",
	Long: `Print the configuration rounds would use, after the config file search,
BINGO_* environment overrides and the --difficulty preset.

Config search order:
  1. --config <path>
  2. ~/.arcade/configs/bingo.yaml
  3. ./configs/bingo.yaml
  4. Built-in defaults

Examples:
  bingo config
  bingo config --difficulty hard
  bingo config --defaults > ~/.arcade/configs/bingo.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default YAML")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.GetDefaultYAML("bingo"))
		return
	}

	cfg, err := config.LoadBingo(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.ApplyBingoPreset(&cfg, preset)

	out, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding config: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# difficulty: %s\n", preset)
	os.Stdout.Write(out)
}
