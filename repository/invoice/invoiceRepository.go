package invoice

import (
	"context"
	"time"

	"github.com/Fahadd2/GearUp/model"
	"github.com/Fahadd2/GearUp/util/database"
)

// Row is the GET /invoices listing shape: invoice plus the joined
// reservation fields the staff UI needs.
type Row struct {
	InvID             string              `json:"inv_id"`
	ReservationID     string              `json:"reservation_id"`
	IssueDate         time.Time           `json:"issue_date"`
	TotalAmount       float64             `json:"total_amount"`
	PaymentStatus     model.PaymentStatus `json:"payment_status"`
	CreatedAt         time.Time           `json:"created_at"`
	CustomerLicenseNo string              `json:"customer_license_no"`
	CarID             string              `json:"car_id"`
	StartDate         time.Time           `json:"start_date"`
	EndDate           time.Time           `json:"end_date"`
}

type Repo interface {
	List(ctx context.Context, limit int) ([]Row, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db: db} }

func (r *repo) List(ctx context.Context, limit int) ([]Row, error) {
	const q = `
		SELECT
		  i.inv_id, i.reservation_id, i.issue_date, i.total_amount,
		  i.payment_status, i.created_at,
		  r.customer_license_no, r.car_id, r.start_date, r.end_date
		FROM invoices i
		JOIN reservations r ON r.res_id = i.reservation_id
		ORDER BY i.created_at DESC
		LIMIT $1`
	rows, err := r.db.Pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Row
	for rows.Next() {
		var v Row
		if err := rows.Scan(
			&v.InvID, &v.ReservationID, &v.IssueDate, &v.TotalAmount,
			&v.PaymentStatus, &v.CreatedAt,
			&v.CustomerLicenseNo, &v.CarID, &v.StartDate, &v.EndDate,
		); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
