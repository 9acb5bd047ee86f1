package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/generator"
	"svw.info/cadoku/internal/ports"
	"svw.info/cadoku/internal/solver"
)

var (
	numPuzzles int
	hintCount  string
	method     string
	seed       int64
	outputFile string
	timeout    time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Sudoku puzzles",
		Long: `Generate one or more Sudoku puzzles with a target hint count.

Examples:
  cadoku gen --hints 40
  cadoku gen -n 5 --hints 28:32
  cadoku gen --method trivial --hints 35 -o puzzles.json`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&hintCount, "hints", "c", "45", "Hint count 17-81 or range like 28:32")
	genCmd.Flags().StringVarP(&method, "method", "m", "subtractive", "Generation method: subtractive|trivial")
	genCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time-based)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (JSON)")
	genCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// parseHintRange parses a hint count string which can be a single
// number like "32" or a range like "28:32".
func parseHintRange(s string) (lo, hi int, err error) {
	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		v, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid hint count: %w", err)
		}
		return v, v, nil
	case 2:
		lo, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid hint count min: %w", err)
		}
		hi, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid hint count max: %w", err)
		}
		if lo > hi {
			return 0, 0, fmt.Errorf("hint count min (%d) cannot be greater than max (%d)", lo, hi)
		}
		return lo, hi, nil
	}
	return 0, 0, fmt.Errorf("invalid hint count format: %s (use '32' or '28:32')", s)
}

func pickGenerator(name string) (ports.Generator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "subtractive", "":
		return generator.NewSubtractive(solver.NewPropagator()), nil
	case "trivial":
		return generator.NewTrivial(), nil
	}
	return nil, fmt.Errorf("unknown method %q (use subtractive or trivial)", name)
}

func runGen(cmd *cobra.Command, args []string) error {
	lo, hi, err := parseHintRange(hintCount)
	if err != nil {
		return err
	}
	if lo < generator.MinHints || hi > generator.MaxHints {
		return fmt.Errorf("hint count range %d:%d outside [%d,%d]: %w",
			lo, hi, generator.MinHints, generator.MaxHints, generator.ErrHintCount)
	}
	gen, err := pickGenerator(method)
	if err != nil {
		return err
	}

	baseSeed := seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(baseSeed))

	var puzzles []*domain.Puzzle
	for i := 0; i < numPuzzles; i++ {
		hints := lo
		if hi > lo {
			hints = lo + rng.Intn(hi-lo+1)
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		p, st, err := gen.Generate(ctx, rng.Int63(), hints)
		cancel()
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		if outputFile != "" {
			puzzles = append(puzzles, p)
			continue
		}
		fmt.Printf("Puzzle #%d (%s, %d hints, %v):\n", i+1, p.Method, p.Grid.CountCues(), st.Duration.Round(time.Millisecond))
		fmt.Println(p.Grid.String())
		fmt.Println("Solution:")
		fmt.Println(p.Solution.String())
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		enc := json.NewEncoder(f)
		enc.SetIndent("", "  ")
		if err := enc.Encode(puzzles); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		fmt.Printf("Generated %d puzzle(s) in %s\n", numPuzzles, outputFile)
	}
	return nil
}
