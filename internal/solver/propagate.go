// Package solver implements the constraint-propagation engine: a
// fixed-point assign/eliminate loop over 81 candidate sets, following
// the scheme described in Peter Norvig's "Solving Every Sudoku Puzzle".
// Propagation applies two rules on every elimination: a cell reduced to
// one candidate forces that digit out of all its peers (naked single),
// and a digit left with one feasible cell in a unit is assigned there
// (hidden single). An emptied candidate set is a contradiction and
// aborts the whole propagation.
package solver

import (
	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/topology"
)

// Cells is a working array of candidate sets, one per board cell,
// local to a single propagation run.
type Cells struct {
	sets  [topology.CellCount]Set
	nodes int
}

// NewCells returns a fresh working array with all digits open everywhere.
func NewCells() *Cells {
	c := &Cells{}
	c.Reset()
	return c
}

// Reset reopens all digits in every cell.
func (c *Cells) Reset() {
	for i := range c.sets {
		c.sets[i] = Full
	}
	c.nodes = 0
}

// At returns the candidate set of the given cell.
func (c *Cells) At(cell int) Set {
	return c.sets[cell]
}

// Nodes returns the number of eliminations performed so far, as a
// cheap measure of propagation work.
func (c *Cells) Nodes() int {
	return c.nodes
}

// Solved reports whether every cell has collapsed to a single digit.
func (c *Cells) Solved() bool {
	for _, s := range c.sets {
		if !s.IsSingle() {
			return false
		}
	}
	return true
}

// Grid converts the working array into a value grid. The second return
// is false if any cell is still undecided.
func (c *Cells) Grid() (*domain.Grid, bool) {
	var g domain.Grid
	for i, s := range c.sets {
		d, ok := s.Digit()
		if !ok {
			return nil, false
		}
		g[i] = d
	}
	return &g, true
}

// Assign forces cell to the singleton d by eliminating every other
// candidate digit there. Returns false on contradiction. A cell that
// already equals d is a no-op success.
func (c *Cells) Assign(cell int, d Set) bool {
	if c.sets[cell] == d {
		return true
	}
	for v := uint8(1); v <= 9; v++ {
		sv := Single(v)
		if sv != d && c.sets[cell].Contains(sv) {
			if !c.eliminate(cell, sv) {
				return false
			}
		}
	}
	return true
}

// eliminate removes the single digit d from cell's candidates and
// propagates the consequences. Removing an absent digit succeeds
// trivially; emptying the set is a contradiction and returns false.
func (c *Cells) eliminate(cell int, d Set) bool {
	if c.sets[cell].Excludes(d) {
		return true
	}
	updated := c.sets[cell].Diff(d)
	if updated == 0 {
		return false
	}
	c.sets[cell] = updated
	c.nodes++
	if updated.IsSingle() {
		// naked single: the remaining digit leaves all peers
		for _, p := range topology.Peers[cell] {
			if !c.eliminate(p, updated) {
				return false
			}
		}
	}
	// hidden single: d may now have a unique home in one of the units
	for _, unit := range topology.CellUnits[cell] {
		feasible, last := 0, -1
		for _, u := range unit {
			if c.sets[u].Contains(d) {
				feasible++
				last = u
			}
		}
		if feasible == 0 {
			return false
		}
		if feasible == 1 {
			if !c.Assign(last, d) {
				return false
			}
		}
	}
	return true
}

// Constrain deduces the unique grid forced by the cues of g through
// propagation alone. It returns nil, false if the cues contradict each
// other or leave any cell undecided (search would be required).
func Constrain(g *domain.Grid) (*domain.Grid, bool) {
	c := NewCells()
	for s, v := range g {
		if v != 0 {
			if !c.Assign(s, Single(v)) {
				return nil, false
			}
		}
	}
	return c.Grid()
}
