package usecase

import (
	"context"
	"errors"

	"svw.info/cadoku/internal/domain"
	"svw.info/cadoku/internal/ports"
)

type Service struct {
	Oracle      ports.Oracle
	Subtractive ports.Generator
	Trivial     ports.Generator
	Validator   ports.Validator
	Hinter      ports.Hinter
	Storage     ports.Storage
}

func NewService(o ports.Oracle, sub, triv ports.Generator, v ports.Validator, h ports.Hinter, st ports.Storage) *Service {
	return &Service{Oracle: o, Subtractive: sub, Trivial: triv, Validator: v, Hinter: h, Storage: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Constrain(ctx context.Context, g *domain.Grid) (*domain.Grid, ports.Stats, bool, error) {
	if u.Oracle == nil {
		return nil, ports.Stats{}, false, errNotConfigured
	}
	sol, st, ok := u.Oracle.Constrain(ctx, g)
	return sol, st, ok, nil
}

func (u *Service) Generate(ctx context.Context, m domain.Method, seed int64, hints int) (*domain.Puzzle, ports.Stats, error) {
	var g ports.Generator
	switch m {
	case domain.Trivial:
		g = u.Trivial
	default:
		g = u.Subtractive
	}
	if g == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return g.Generate(ctx, seed, hints)
}

func (u *Service) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Storage == nil {
		return errNotConfigured
	}
	return u.Storage.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.List(ctx)
}
