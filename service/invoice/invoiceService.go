package invoice

import (
	"context"

	invrepo "github.com/Fahadd2/GearUp/repository/invoice"
)

// Row = repository shape
type Row = invrepo.Row

const (
	defaultLimit = 100
	maxLimit     = 200
)

type Repo interface {
	List(ctx context.Context, limit int) ([]Row, error)
}

type Service interface {
	// List returns the newest invoices first, limit clamped to [1,200].
	List(ctx context.Context, limit int) ([]Row, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) List(ctx context.Context, limit int) ([]Row, error) {
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.r.List(ctx, limit)
}
