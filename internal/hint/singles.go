package hint

import (
	"context"
	"fmt"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/solver"
	"svw.info/cadoku/internal/topology"
)

// Singles suggests naked singles: empty cells whose candidates shrink
// to one digit by direct peer elimination. It deliberately avoids the
// recursive engine, which would deduce the entire grid and make for a
// useless hint.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single found in reading order.
func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	for s := 0; s < topology.CellCount; s++ {
		if g[s] != 0 {
			continue
		}
		set := solver.Full
		for _, p := range topology.Peers[s] {
			if v := g[p]; v != 0 {
				set = set.Diff(solver.Single(v))
			}
		}
		if d, ok := set.Digit(); ok {
			return domain.Hint{
				Message: fmt.Sprintf("Single: only %d fits here", d),
				Cell:    domain.CellCoord{Row: s / 9, Col: s % 9},
				Value:   d,
			}, true, nil
		}
	}
	return domain.Hint{}, false, nil
}
