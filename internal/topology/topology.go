// Package topology holds the fixed 9x9 board geometry: the three units
// (row, column, box) of every cell and its deduplicated peer list. The
// tables are built once at init and never mutated.
package topology

// CellCount is the number of cells on a standard board.
const CellCount = 81

// CellUnits lists, for each cell, its row, column and box as ordered
// groups of 9 cell indices. The cell itself is included in each unit.
var CellUnits [CellCount][3][9]int

// Peers lists, for each cell, the distinct other cells sharing at least
// one unit with it. Always 20 entries for the standard layout.
var Peers [CellCount][]int

// AllUnits is the flat list of the 27 units of the board:
// 9 rows, then 9 columns, then 9 boxes.
var AllUnits [27][9]int

func init() {
	buildAllUnits()
	buildCellUnits()
	buildPeers()
}

func buildAllUnits() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			AllUnits[r][c] = r*9 + c
		}
	}
	for c := 0; c < 9; c++ {
		for r := 0; r < 9; r++ {
			AllUnits[9+c][r] = r*9 + c
		}
	}
	for b := 0; b < 9; b++ {
		r0, c0 := (b/3)*3, (b%3)*3
		for i := 0; i < 9; i++ {
			AllUnits[18+b][i] = (r0+i/3)*9 + c0 + i%3
		}
	}
}

func buildCellUnits() {
	for s := 0; s < CellCount; s++ {
		r, c := s/9, s%9
		b := (r/3)*3 + c/3
		CellUnits[s][0] = AllUnits[r]
		CellUnits[s][1] = AllUnits[9+c]
		CellUnits[s][2] = AllUnits[18+b]
	}
}

func buildPeers() {
	for s := 0; s < CellCount; s++ {
		seen := make(map[int]bool, 21)
		peers := make([]int, 0, 20)
		for _, unit := range CellUnits[s] {
			for _, p := range unit {
				if p != s && !seen[p] {
					seen[p] = true
					peers = append(peers, p)
				}
			}
		}
		Peers[s] = peers
	}
}
