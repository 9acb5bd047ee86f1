package validator

import (
	"context"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/topology"
)

// FastValidator scans every unit with a bitmask and reports cells that
// repeat a digit already seen in the unit.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	flagged := make(map[int]bool)
	for _, unit := range topology.AllUnits {
		m := 0
		for _, s := range unit {
			val := g[s]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 && !flagged[s] {
				flagged[s] = true
				conf = append(conf, domain.CellCoord{Row: s / 9, Col: s % 9})
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}
