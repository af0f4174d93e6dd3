// repository/booking/bookingRepository.go
package booking

import (
	"context"
	"time"

	"github.com/Fahadd2/GearUp/model"

	"github.com/jackc/pgx/v5"
)

// Repo is the transactional surface of reservation creation. Every method
// runs on the caller's tx so that the car-row lock taken by LockCar covers
// the whole check-then-insert sequence.
type Repo interface {
	LockCar(ctx context.Context, tx pgx.Tx, carID string) (pricePerDay float64, status model.CarStatus, err error)
	HasOverlap(ctx context.Context, tx pgx.Tx, carID string, start, end time.Time) (bool, error)
	InsertReservation(ctx context.Context, tx pgx.Tx, licenseNo, carID string, start, end time.Time) (string, error)
	InsertInvoice(ctx context.Context, tx pgx.Tx, reservationID string, total float64) (string, error)
}

type repo struct{}

func New() Repo { return &repo{} }

func (r *repo) LockCar(ctx context.Context, tx pgx.Tx, carID string) (float64, model.CarStatus, error) {
	const q = `
		SELECT price_per_day, status
		FROM cars
		WHERE car_id = $1
		FOR UPDATE`
	var price float64
	var status model.CarStatus
	err := tx.QueryRow(ctx, q, carID).Scan(&price, &status)
	return price, status, err
}

// HasOverlap applies the closed-interval overlap test: both boundary dates
// count as occupied, so back-to-back bookings sharing a day still clash.
func (r *repo) HasOverlap(ctx context.Context, tx pgx.Tx, carID string, start, end time.Time) (bool, error) {
	const q = `
		SELECT EXISTS (
			SELECT 1
			FROM reservations
			WHERE car_id = $1
			  AND status IN ('Reserved','Active')
			  AND start_date <= $3
			  AND end_date   >= $2
		)`
	var clash bool
	err := tx.QueryRow(ctx, q, carID, start, end).Scan(&clash)
	return clash, err
}

func (r *repo) InsertReservation(ctx context.Context, tx pgx.Tx, licenseNo, carID string, start, end time.Time) (string, error) {
	const q = `
		INSERT INTO reservations (customer_license_no, car_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, 'Reserved')
		RETURNING res_id`
	var id string
	if err := tx.QueryRow(ctx, q, licenseNo, carID, start, end).Scan(&id); err != nil {
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
