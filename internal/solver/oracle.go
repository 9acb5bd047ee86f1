package solver

import (
	"context"
	"time"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/ports"
)

// Propagator adapts Constrain to the ports.Oracle interface, adding
// timing and node counts for callers that report them.
type Propagator struct{}

func NewPropagator() *Propagator { return &Propagator{} }

func (p *Propagator) Constrain(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, bool) {
	start := time.Now()
	c := NewCells()
	for s, v := range g {
		if v != 0 {
			if !c.Assign(s, Single(v)) {
				return nil, ports.Stats{Nodes: c.Nodes(), Duration: time.Since(start)}, false
			}
		}
	}
	out, ok := c.Grid()
	return out, ports.Stats{Nodes: c.Nodes(), Duration: time.Since(start)}, ok
}
