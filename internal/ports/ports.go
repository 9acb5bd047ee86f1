package ports

import (
	"context"
	"time"

	"svw.info/cadoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Oracle deduces the unique solution forced by a puzzle's cues through
// propagation alone. ok is false when the cues contradict each other or
// when propagation cannot decide every cell; that is a normal outcome,
// not an error.
type Oracle interface {
	Constrain(ctx context.Context, g *domain.Grid) (sol *domain.Grid, st Stats, ok bool)
}

// Generator creates new puzzles with a target hint count.
type Generator interface {
	Generate(ctx context.Context, seed int64, hints int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced entry, if one exists.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
