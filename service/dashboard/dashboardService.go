package dashboard

import (
	"context"
	"time"

	dashrepo "github.com/Fahadd2/GearUp/repository/dashboard"
)

type (
	KPIs    = dashrepo.KPIs
	Revenue = dashrepo.Revenue
)

type Repo interface {
	KPIs(ctx context.Context, today time.Time) (*KPIs, error)
	Revenue(ctx context.Context) (*Revenue, error)
}

type Service interface {
	KPIs(ctx context.Context) (*KPIs, error)
	Revenue(ctx context.Context) (*Revenue, error)
}

type service struct {
	r   Repo
	now func() time.Time
}

func New(r Repo) Service { return &service{r: r, now: time.Now} }

func (s *service) KPIs(ctx context.Context) (*KPIs, error) {
	y, m, d := s.now().UTC().Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return s.r.KPIs(ctx, today)
}

func (s *service) Revenue(ctx context.Context) (*Revenue, error) {
	return s.r.Revenue(ctx)
}
