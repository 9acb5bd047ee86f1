package generator

import (
	"context"
	"math/rand"
	"sort"
	"time"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/ports"
	"svw.info/cadoku/internal/solver"
	"svw.info/cadoku/internal/topology"
)

// Trivial builds a puzzle by only ever adding cues: it repeatedly picks
// the least constrained cell (most candidates left, random tiebreak),
// records a random feasible digit there and propagates. Seeding the
// least constrained cells first keeps deductions easy, so low hint
// counts complete quickly. An attempt succeeds only when every cell has
// collapsed to a single digit with exactly the requested number of cues
// placed; any contradiction or a miscount discards the attempt and a
// fresh one starts with new tiebreaks. By construction the returned
// puzzle is solvable by propagation alone with no guessing.
type Trivial struct{}

func NewTrivial() *Trivial { return &Trivial{} }

func (g *Trivial) Generate(ctx context.Context, seed int64, hints int) (*domain.Puzzle, ports.Stats, error) {
	if err := checkHints(hints); err != nil {
		return nil, ports.Stats{}, err
	}
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	nodes := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, err
		}
		puzzle, solution, n, ok := attempt(rng, hints)
		nodes += n
		if !ok {
			continue
		}
		p := &domain.Puzzle{
			Seed:      seed,
			Hints:     hints,
			Method:    domain.Trivial,
			Grid:      *puzzle,
			Solution:  *solution,
			CreatedAt: time.Now().UnixNano(),
		}
		return p, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
	}
}

// attempt runs one pass of cue placement. It reports failure when the
// live candidate grid hits a contradiction or the cue count does not
// land exactly on hints.
func attempt(rng *rand.Rand, hints int) (*domain.Grid, *domain.Grid, int, bool) {
	type entry struct {
		cell     int
		tiebreak int
		set      solver.Set
	}
	entries := make([]entry, topology.CellCount)
	for i := range entries {
		// one fixed random tiebreak per cell per attempt, so the
		// ranking below is deterministic within the attempt but
		// varies run to run
		entries[i] = entry{cell: i, tiebreak: rng.Int(), set: solver.Full}
	}

	c := solver.NewCells()
	var puzzle domain.Grid
	for !c.Solved() && puzzle.CountCues() < hints {
		// least constrained first: most remaining candidates,
		// tiebroken by the per-attempt random draw
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].set.Count() != entries[j].set.Count() {
				return entries[i].set.Count() > entries[j].set.Count()
			}
			return entries[i].tiebreak > entries[j].tiebreak
		})
		e := entries[0]
		d := e.set.Random(rng)
		digit, _ := d.Digit()
		puzzle.Set(e.cell, digit)
		if !c.Assign(e.cell, d) {
			return nil, nil, c.Nodes(), false
		}
		for i := range entries {
			entries[i].set = c.At(entries[i].cell)
		}
	}
	if !c.Solved() || puzzle.CountCues() != hints {
		return nil, nil, c.Nodes(), false
	}
	solution, _ := c.Grid()
	return &puzzle, solution, c.Nodes(), true
}
