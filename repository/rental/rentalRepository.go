// repository/rental/rentalRepository.go
package rental

import (
	"context"
	"errors"
	"time"

	"github.com/Fahadd2/GearUp/model"

	"github.com/jackc/pgx/v5"
)

// Locked is the reservation+car snapshot read under FOR UPDATE.
type Locked struct {
	ResID       string
	ResStatus   model.ReservationStatus
	CarID       string
	CarStatus   model.CarStatus
	StartDate   time.Time
	EndDate     time.Time
	PricePerDay float64
}

type Repo interface {
	LockReservationCar(ctx context.Context, tx pgx.Tx, reservationID string) (*Locked, error)
	SetReservationStatus(ctx context.Context, tx pgx.Tx, reservationID string, st model.ReservationStatus) error
	SetCarStatus(ctx context.Context, tx pgx.Tx, carID string, st model.CarStatus) error
	InvoiceIDForReservation(ctx context.Context, tx pgx.Tx, reservationID string) (string, error)
	InsertInvoice(ctx context.Context, tx pgx.Tx, reservationID string, total float64) (string, error)
	FinalizeInvoice(ctx context.Context, tx pgx.Tx, invoiceID string, total float64) error
}

type repo struct{}

func New() Repo { return &repo{} }

// LockReservationCar locks both the reservation row and its car row for the
// duration of the transaction, serializing state transitions per entity.
func (r *repo) LockReservationCar(ctx context.Context, tx pgx.Tx, reservationID string) (*Locked, error) {
	const q = `
		SELECT r.res_id, r.status, r.car_id, r.start_date, r.end_date,
		       c.status, c.price_per_day
		FROM reservations r
		JOIN cars c ON c.car_id = r.car_id
		WHERE r.res_id = $1
		FOR UPDATE`
	l := &Locked{}
	err := tx.QueryRow(ctx, q, reservationID).Scan(
		&l.ResID, &l.ResStatus, &l.CarID, &l.StartDate, &l.EndDate,
		&l.CarStatus, &l.PricePerDay,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *repo) SetReservationStatus(ctx context.Context, tx pgx.Tx, reservationID string, st model.ReservationStatus) error {
	_, err := tx.Exec(ctx,
		`UPDATE reservations SET status = $2 WHERE res_id = $1`,
		reservationID, string(st))
	return err
}

func (r *repo) SetCarStatus(ctx context.Context, tx pgx.Tx, carID string, st model.CarStatus) error {
	_, err := tx.Exec(ctx,
		`UPDATE cars SET status = $2 WHERE car_id = $1`,
		carID, string(st))
	return err
}

// InvoiceIDForReservation returns "" when the reservation has no invoice yet.
func (r *repo) InvoiceIDForReservation(ctx context.Context, tx pgx.Tx, reservationID string) (string, error) {
	var id string
	err := tx.QueryRow(ctx,
		`SELECT inv_id FROM invoices WHERE reservation_id = $1`,
		reservationID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (r *repo) InsertInvoice(ctx context.Context, tx pgx.Tx, reservationID string, total float64) (string, error) {
	const q = `
		INSERT INTO invoices (reservation_id, issue_date, total_amount, payment_status)
		VALUES ($1, CURRENT_DATE, $2, 'unpaid')
		RETURNING inv_id`
	var id string
	if err := tx.QueryRow(ctx, q, reservationID, total).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

// FinalizeInvoice sets the closing total and recomputes the payment status
// against the payments already on record. Close-out only distinguishes
// paid/unpaid; only the payment recorder produces 'partial'.
func (r *repo) FinalizeInvoice(ctx context.Context, tx pgx.Tx, invoiceID string, total float64) error {
	const q = `
		UPDATE invoices
		SET total_amount = $2,
		    payment_status = CASE
		      WHEN $2 <= COALESCE((SELECT SUM(amount) FROM payments WHERE invoice_id = $1), 0)
		        THEN 'paid'
		      ELSE 'unpaid'
		    END
		WHERE inv_id = $1`
	_, err := tx.Exec(ctx, q, invoiceID, total)
	return err
}
