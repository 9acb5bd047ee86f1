// Package generator produces (puzzle, solution) pairs with a target
// hint count. Two strategies are available: Subtractive digs cues out
// of a random full solution under a uniqueness oracle, Trivial only
// ever adds cues so the result needs no guessing to solve.
package generator

import (
	"errors"
	"math/rand"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/solver"
	"svw.info/cadoku/internal/topology"
)

// Hint count bounds. 17 is the theoretical minimum for a uniquely
// solvable standard Sudoku.
const (
	MinHints = 17
	MaxHints = 81
)

// ErrHintCount is returned when the requested hint count is outside
// [MinHints, MaxHints].
var ErrHintCount = errors.New("hint count must be between 17 and 81")

func checkHints(hints int) error {
	if hints < MinHints || hints > MaxHints {
		return ErrHintCount
	}
	return nil
}

// randomSolution fills a grid by assigning random digits to random
// cells under propagation, restarting from scratch on contradiction.
// Returns the solved grid and the total elimination count.
func randomSolution(rng *rand.Rand) (*domain.Grid, int) {
	c := solver.NewCells()
	nodes := 0
	for !c.Solved() {
		cell := rng.Intn(topology.CellCount)
		d := c.At(cell).Random(rng)
		if !c.Assign(cell, d) {
			nodes += c.Nodes()
			c.Reset()
		}
	}
	nodes += c.Nodes()
	g, _ := c.Grid()
	return g, nodes
}
