package domain

import (
	"fmt"
	"strings"

	"svw.info/cadoku/internal/topology"
)

// Grid is a board stored as a flat, row-major array of 81 cells,
// each holding a value 1-9 or zero for an empty cell.
// It serializes as a plain JSON array of 81 small integers.
type Grid [topology.CellCount]uint8

// Set writes val (0-9, zero clears) at the given cell index (0-80,
// row-major). Out-of-range arguments are caller bugs and panic.
func (g *Grid) Set(cell int, val uint8) {
	if cell < 0 || cell >= topology.CellCount {
		panic(fmt.Sprintf("domain: cell index %d out of range", cell))
	}
	if val > 9 {
		panic(fmt.Sprintf("domain: value %d out of range", val))
	}
	g[cell] = val
}

// Get returns the value at the given cell index.
func (g *Grid) Get(cell int) uint8 {
	if cell < 0 || cell >= topology.CellCount {
		panic(fmt.Sprintf("domain: cell index %d out of range", cell))
	}
	return g[cell]
}

// IsZero reports whether the cell at column x, row y is empty.
func (g *Grid) IsZero(x, y int) bool {
	if x < 0 || x >= 9 || y < 0 || y >= 9 {
		panic(fmt.Sprintf("domain: coordinates (%d,%d) out of range", x, y))
	}
	return g[x+y*9] == 0
}

// Filled reports whether no cell is empty. It does not check that the
// values form a valid solution.
func (g *Grid) Filled() bool {
	for _, v := range g {
		if v == 0 {
			return false
		}
	}
	return true
}

// CountCues returns the number of nonzero entries.
func (g *Grid) CountCues() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// CountFilledUnits returns how many of the 27 units (rows, columns,
// boxes) are completely filled. Used by the UI for completion feedback.
func (g *Grid) CountFilledUnits() int {
	count := 0
	for _, unit := range topology.AllUnits {
		filled := true
		for _, s := range unit {
			if g[s] == 0 {
				filled = false
				break
			}
		}
		if filled {
			count++
		}
	}
	return count
}

// String renders the grid for terminal output, with dots for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r == 3 || r == 6 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < 9; c++ {
			if c == 3 || c == 6 {
				sb.WriteString("| ")
			}
			if v := g[r*9+c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
			if c < 8 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint describes a suggested entry for the UI.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
}

// Puzzle is a persisted game: the cue grid, its unique solution and
// generation metadata.
type Puzzle struct {
	ID        string `json:"id,omitempty"`
	Seed      int64  `json:"seed,omitempty"`
	Hints     int    `json:"hints,omitempty"`
	Method    Method `json:"method,omitempty"`
	Grid      Grid   `json:"grid"`
	Solution  Grid   `json:"solution"`
	CreatedAt int64  `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Hints     int    `json:"hints"`
	Method    Method `json:"method"`
	CreatedAt int64  `json:"createdAt"`
}
