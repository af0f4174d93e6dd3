package booking

import (
	"context"
	"errors"
	"time"

	"github.com/Fahadd2/GearUp/model"
	"github.com/Fahadd2/GearUp/util/database"
	"github.com/Fahadd2/GearUp/util/metrics"

	"github.com/jackc/pgx/v5"
)

// errors used by controllers

type ErrCode string

const (
	ErrBadDates    ErrCode = "BAD_DATES"
	ErrCarNotFound ErrCode = "CAR_NOT_FOUND"
	ErrUnavailable ErrCode = "CAR_UNAVAILABLE"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode        { return e.code }
func makeErr(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// dto

type Created struct {
	ReservationID string
	InvoiceID     string
	TotalAmount   float64
}

type Repo interface {
	LockCar(ctx context.Context, tx pgx.Tx, carID string) (pricePerDay float64, status model.CarStatus, err error)
	HasOverlap(ctx context.Context, tx pgx.Tx, carID string, start, end time.Time) (bool, error)
	InsertReservation(ctx context.Context, tx pgx.Tx, licenseNo, carID string, start, end time.Time) (string, error)
	InsertInvoice(ctx context.Context, tx pgx.Tx, reservationID string, total float64) (string, error)
}

type Service interface {
	// Create books the car for [start,end] and raises the quoted invoice.
	Create(ctx context.Context, licenseNo, carID string, start, end time.Time) (*Created, error)
}

// ----- Service implementation -----

type service struct {
	db  database.Beginner
	r   Repo
	now func() time.Time
}

func New(db database.Beginner, r Repo) Service {
	return &service{db: db, r: r, now: time.Now}
}

// Create validates the range, then runs the availability check and both
// inserts under a single transaction holding the car row lock, so two
// concurrent requests for the same car cannot both pass the check.
func (s *service) Create(ctx context.Context, licenseNo, carID string, start, end time.Time) (out *Created, err error) {
	today := s.today()
	if start.Before(today) {
		return nil, makeErr(ErrBadDates, "start_date cannot be in the past")
	}
	if !end.After(start) {
		return nil, makeErr(ErrBadDates, "end_date must be after start_date")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	price, _, err := s.r.LockCar(ctx, tx, carID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrCarNotFound, "car not found")
		}
		return nil, err
	}

	clash, err := s.r.HasOverlap(ctx, tx, carID, start, end)
	if err != nil {
		return nil, err
	}
	if clash {
		metrics.ReservationConflicts.Inc()
		return nil, makeErr(ErrUnavailable, "car not available for selected dates")
	}

	total := float64(model.RentalDays(start, end)) * price

	resID, err := s.r.InsertReservation(ctx, tx, licenseNo, carID, start, end)
	if err != nil {
		return nil, err
	}
	invID, err := s.r.InsertInvoice(ctx, tx, resID, total)
	if err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.ReservationsCreated.Inc()
	return &Created{ReservationID: resID, InvoiceID: invID, TotalAmount: total}, nil
}

func (s *service) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
