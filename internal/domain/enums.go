package domain

// Method selects the puzzle generation strategy.
type Method int

const (
	// Subtractive digs cues out of a full solution while the
	// propagation oracle confirms the solution stays unique.
	Subtractive Method = iota
	// Trivial only ever adds cues, so the result is solvable by
	// propagation alone with no guessing.
	Trivial
)

func (m Method) String() string {
	if m == Trivial {
		return "trivial"
	}
	return "subtractive"
}

// Difficulty labels map to a target hint count.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Challenge
)

// Hints returns the number of cues handed out for the difficulty.
func (d Difficulty) Hints() int {
	switch d {
	case Easy:
		return 60
	case Medium:
		return 45
	case Hard:
		return 30
	default:
		return 22 // Challenge
	}
}
