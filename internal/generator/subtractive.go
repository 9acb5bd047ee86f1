package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/ports"
	"svw.info/cadoku/internal/topology"
)

// Subtractive digs cues out of a full random solution in a random
// order, keeping a removal only if the provided oracle still deduces
// exactly the original solution. When a whole pass yields no further
// removable cue, all progress is discarded and the dig restarts with a
// fresh permutation; there is no partial backtracking.
type Subtractive struct {
	Oracle ports.Oracle
}

// NewSubtractive wires a digger that uses the given oracle for
// uniqueness checks.
func NewSubtractive(o ports.Oracle) *Subtractive {
	return &Subtractive{Oracle: o}
}

func (g *Subtractive) Generate(ctx context.Context, seed int64, hints int) (*domain.Puzzle, ports.Stats, error) {
	if err := checkHints(hints); err != nil {
		return nil, ports.Stats{}, err
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solution, nodes := randomSolution(rng)
	puzzle := *solution

	for {
		order := rng.Perm(topology.CellCount)
		for _, cell := range order {
			if puzzle.CountCues() <= hints {
				return g.result(seed, hints, &puzzle, solution),
					ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
			}
			if err := ctx.Err(); err != nil {
				return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
			}
			scratch := puzzle
			scratch[cell] = 0
			sol, st, ok := g.Oracle.Constrain(ctx, &scratch)
			nodes += st.Nodes
			if ok && *sol == *solution {
				puzzle = scratch
			}
			// otherwise the scratch copy is dropped and the next
			// cell in the permutation is tried
		}
		if puzzle.CountCues() <= hints {
			return g.result(seed, hints, &puzzle, solution),
				ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
		}
		// stuck: no remaining single-cell removal preserves
		// uniqueness; reshuffle and dig again from the full solution
		puzzle = *solution
	}
}

func (g *Subtractive) result(seed int64, hints int, puzzle, solution *domain.Grid) *domain.Puzzle {
	return &domain.Puzzle{
		Seed:      seed,
		Hints:     hints,
		Method:    domain.Subtractive,
		Grid:      *puzzle,
		Solution:  *solution,
		CreatedAt: time.Now().UnixNano(),
	}
}
