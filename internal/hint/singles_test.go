package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/cadoku/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	var g domain.Grid
	// fill the top row except the last cell; 9 is the only digit left
	for c := 0; c < 8; c++ {
		g.Set(c, uint8(c+1))
	}
	h, ok, err := NewSingles().Hint(context.Background(), &g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, domain.CellCoord{Row: 0, Col: 8}, h.Cell)
	require.Equal(t, uint8(9), h.Value)
	require.Contains(t, h.Message, "9")
}

func TestHintNoneOnEmptyGrid(t *testing.T) {
	var g domain.Grid
	_, ok, err := NewSingles().Hint(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestHintSkipsFilledCells(t *testing.T) {
	var g domain.Grid
	for c := 0; c < 9; c++ {
		g.Set(c, uint8(c+1))
	}
	// the whole row is filled; no empty cell is forced yet
	_, ok, err := NewSingles().Hint(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, ok)
}
