package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-bingo/internal/games/bingo"
)

var ticketCmd = &cobra.Command{
	Use:   "ticket",
	Short: "Print a generated ticket",
	Long: `Generate one 3x9 ticket, validate it and print it.
Use --seed to reproduce the ticket a round with the same seed would deal.

Examples:
  bingo ticket
  bingo ticket --seed 42`,
	Args: cobra.NoArgs,
	Run:  runTicket,
}

func runTicket(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	gen := bingo.NewGenerator(rand.New(rand.NewSource(seed)))
	t, err := gen.Generate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating ticket: %v\n", err)
		os.Exit(1)
	}
	if err := t.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Generated ticket is invalid: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Seed: %d\n\n", seed)
	fmt.Println(t.String())
}
