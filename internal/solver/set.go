package solver

import (
	"math/bits"
	"math/rand"
)

// Set is a set of candidate digits 1-9, stored as a 9-bit mask.
// Bit i represents digit i+1. The zero value is the empty set.
type Set uint16

// Full is the set holding all nine digits.
const Full Set = 0x1ff

// Single returns the singleton set {d}. d must be 1-9; anything else
// is a caller bug and panics.
func Single(d uint8) Set {
	if d < 1 || d > 9 {
		panic("solver: digit out of range")
	}
	return 1 << (d - 1)
}

// IsSingle reports whether exactly one digit remains.
func (s Set) IsSingle() bool {
	return s != 0 && s&(s-1) == 0
}

// Digit returns the sole member if the set is a singleton.
func (s Set) Digit() (uint8, bool) {
	if !s.IsSingle() {
		return 0, false
	}
	return uint8(bits.TrailingZeros16(uint16(s))) + 1, true
}

// Count returns the number of digits in the set.
func (s Set) Count() int {
	return bits.OnesCount16(uint16(s))
}

// Contains reports whether every member of o is in s.
func (s Set) Contains(o Set) bool {
	return s&o == o
}

// Excludes reports whether s and o are disjoint.
func (s Set) Excludes(o Set) bool {
	return s&o == 0
}

// Diff returns s with the members of o removed.
func (s Set) Diff(o Set) Set {
	return s &^ o
}

// Random returns a uniformly chosen singleton from the set's members.
// The set must not be empty; selection from an empty set is a caller
// bug and panics.
func (s Set) Random(rng *rand.Rand) Set {
	if s == 0 {
		panic("solver: random selection from empty set")
	}
	n := rng.Intn(s.Count())
	for d := uint8(1); d <= 9; d++ {
		if v := Single(d); s.Contains(v) {
			if n == 0 {
				return v
			}
			n--
		}
	}
	panic("unreachable")
}
