package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fullGrid() Grid {
	var g Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r*9+c] = uint8((r*3+r/3+c)%9) + 1
		}
	}
	return g
}

func TestGridSetAndGet(t *testing.T) {
	var g Grid
	g.Set(0, 5)
	g.Set(80, 9)
	require.Equal(t, uint8(5), g.Get(0))
	require.Equal(t, uint8(9), g.Get(80))
	g.Set(0, 0)
	require.Equal(t, uint8(0), g.Get(0))

	require.Panics(t, func() { g.Set(81, 1) })
	require.Panics(t, func() { g.Set(-1, 1) })
	require.Panics(t, func() { g.Set(0, 10) })
	require.Panics(t, func() { g.Get(81) })
}

func TestGridIsZero(t *testing.T) {
	var g Grid
	require.True(t, g.IsZero(3, 4))
	g.Set(3+4*9, 7)
	require.False(t, g.IsZero(3, 4))
	require.True(t, g.IsZero(4, 3))
	require.Panics(t, func() { g.IsZero(9, 0) })
}

func TestGridFilledAndCues(t *testing.T) {
	var g Grid
	require.False(t, g.Filled())
	require.Equal(t, 0, g.CountCues())

	g = fullGrid()
	require.True(t, g.Filled())
	require.Equal(t, 81, g.CountCues())

	g.Set(40, 0)
	require.False(t, g.Filled())
	require.Equal(t, 80, g.CountCues())
}

func TestCountFilledUnits(t *testing.T) {
	var g Grid
	require.Equal(t, 0, g.CountFilledUnits())

	// fill the top row only: one unit done
	for c := 0; c < 9; c++ {
		g.Set(c, uint8(c+1))
	}
	require.Equal(t, 1, g.CountFilledUnits())

	g = fullGrid()
	require.Equal(t, 27, g.CountFilledUnits())

	// poking a hole breaks a row, a column and a box
	g.Set(0, 0)
	require.Equal(t, 24, g.CountFilledUnits())
}

func TestGridString(t *testing.T) {
	var g Grid
	g.Set(0, 3)
	s := g.String()
	require.True(t, strings.HasPrefix(s, "3 . ."))
	require.Contains(t, s, "------+-------+------")
}

func TestGridJSONIsFlatArray(t *testing.T) {
	g := fullGrid()
	data, err := json.Marshal(&g)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(data), "["))

	var flat []uint8
	require.NoError(t, json.Unmarshal(data, &flat))
	require.Len(t, flat, 81)

	var back Grid
	require.NoError(t, json.Unmarshal(data, &back))
	require.Equal(t, g, back)
}

func TestDifficultyHints(t *testing.T) {
	require.Equal(t, 60, Easy.Hints())
	require.Equal(t, 45, Medium.Hints())
	require.Equal(t, 30, Hard.Hints())
	require.Equal(t, 22, Challenge.Hints())
}

func TestMethodString(t *testing.T) {
	require.Equal(t, "subtractive", Subtractive.String())
	require.Equal(t, "trivial", Trivial.String())
}
