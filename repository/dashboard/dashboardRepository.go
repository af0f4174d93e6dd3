package dashboard

import (
	"context"
	"time"

	"github.com/Fahadd2/GearUp/util/database"
)

type KPIs struct {
	TodaysPickups  int64 `json:"todays_pickups"`
	TodaysReturns  int64 `json:"todays_returns"`
	ActiveRentals  int64 `json:"active_rentals"`
	UnpaidInvoices int64 `json:"unpaid_invoices"`
}

type Revenue struct {
	TotalRevenue     float64 `json:"total_revenue"`
	PendingRevenue   float64 `json:"pending_revenue"`
	ThisMonthRevenue float64 `json:"this_month_revenue"`
}

type Repo interface {
	KPIs(ctx context.Context, today time.Time) (*KPIs, error)
	Revenue(ctx context.Context) (*Revenue, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

func (r *repo) KPIs(ctx context.Context, today time.Time) (*KPIs, error) {
	const q = `
		SELECT
		  (SELECT COUNT(*) FROM reservations WHERE start_date = $1 AND status = 'Reserved'),
		  (SELECT COUNT(*) FROM reservations WHERE end_date   = $1 AND status = 'Active'),
		  (SELECT COUNT(*) FROM reservations WHERE status = 'Active'),
		  (SELECT COUNT(*) FROM invoices WHERE payment_status IN ('unpaid','partial'))`
	k := &KPIs{}
	err := r.db.Pool.QueryRow(ctx, q, today).Scan(
		&k.TodaysPickups, &k.TodaysReturns, &k.ActiveRentals, &k.UnpaidInvoices)
	if err != nil {
		return nil, err
	}
	return k, nil
}

func (r *repo) Revenue(ctx context.Context) (*Revenue, error) {
	const q = `
		SELECT
		  COALESCE(SUM(CASE WHEN payment_status = 'paid' THEN total_amount ELSE 0 END), 0),
		  COALESCE(SUM(CASE WHEN payment_status IN ('unpaid','partial') THEN total_amount ELSE 0 END), 0),
		  COALESCE(SUM(CASE
		    WHEN payment_status = 'paid'
		     AND EXTRACT(MONTH FROM issue_date) = EXTRACT(MONTH FROM CURRENT_DATE)
		     AND EXTRACT(YEAR  FROM issue_date) = EXTRACT(YEAR  FROM CURRENT_DATE)
		    THEN total_amount ELSE 0 END), 0)
		FROM invoices`
	v := &Revenue{}
	err := r.db.Pool.QueryRow(ctx, q).Scan(
		&v.TotalRevenue, &v.PendingRevenue, &v.ThisMonthRevenue)
	if err != nil {
		return nil, err
	}
	return v, nil
}
