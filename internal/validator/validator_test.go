package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"svw.info/cadoku/internal/domain"
)

func TestValidateCleanGrid(t *testing.T) {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r*9+c] = uint8((r*3+r/3+c)%9) + 1
		}
	}
	ok, conflicts, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateEmptyGrid(t *testing.T) {
	var g domain.Grid
	ok, conflicts, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.True(t, ok)
	require.Empty(t, conflicts)
}

func TestValidateFlagsDuplicates(t *testing.T) {
	var g domain.Grid
	g.Set(0, 5)
	g.Set(8, 5) // same row
	ok, conflicts, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, []domain.CellCoord{{Row: 0, Col: 8}}, conflicts)
}

func TestValidateBoxDuplicate(t *testing.T) {
	var g domain.Grid
	g.Set(0, 2)  // box 0, row 0
	g.Set(10, 2) // box 0, row 1
	ok, conflicts, err := New().Validate(context.Background(), &g)
	require.NoError(t, err)
	require.False(t, ok)
	require.Len(t, conflicts, 1)
	require.Equal(t, domain.CellCoord{Row: 1, Col: 1}, conflicts[0])
}
