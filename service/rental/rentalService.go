package rental

import (
	"context"
	"errors"
	"fmt"

	"github.com/Fahadd2/GearUp/model"
	rrepo "github.com/Fahadd2/GearUp/repository/rental"
	"github.com/Fahadd2/GearUp/util/database"
	"github.com/Fahadd2/GearUp/util/metrics"

	"github.com/jackc/pgx/v5"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound       ErrCode = "NOT_FOUND"
	ErrNotReserved    ErrCode = "NOT_RESERVED"
	ErrNotActive      ErrCode = "NOT_ACTIVE"
	ErrCarUnavailable ErrCode = "CAR_UNAVAILABLE"
	ErrBadFee         ErrCode = "BAD_FEE"
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

// Locked = repository shape
type Locked = rrepo.Locked

type Repo interface {
	LockReservationCar(ctx context.Context, tx pgx.Tx, reservationID string) (*Locked, error)
	SetReservationStatus(ctx context.Context, tx pgx.Tx, reservationID string, st model.ReservationStatus) error
	SetCarStatus(ctx context.Context, tx pgx.Tx, carID string, st model.CarStatus) error
	InvoiceIDForReservation(ctx context.Context, tx pgx.Tx, reservationID string) (string, error)
	InsertInvoice(ctx context.Context, tx pgx.Tx, reservationID string, total float64) (string, error)
	FinalizeInvoice(ctx context.Context, tx pgx.Tx, invoiceID string, total float64) error
}

type Service interface {
	// Start: Reserved -> Active, car -> Rented.
	Start(ctx context.Context, reservationID string) error

	// Close: Active -> Completed, car -> Available; returns the final total.
	Close(ctx context.Context, reservationID string, damageFee, refuelFee float64) (float64, error)
}

// ----- Service implementation -----

type service struct {
	db database.Beginner
	r  Repo
}

func New(db database.Beginner, r Repo) Service {
	return &service{db: db, r: r}
}

func (s *service) Start(ctx context.Context, reservationID string) (err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	l, err := s.r.LockReservationCar(ctx, tx, reservationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrNotFound, "reservation not found")
		}
		return err
	}
	if l.ResStatus != model.ReservationReserved {
		return makeErr(ErrNotReserved, "reservation is not in 'Reserved' state")
	}
	if !l.CarStatus.CanStartRental() {
		return makeErr(ErrCarUnavailable, fmt.Sprintf("car is not available (status=%s)", l.CarStatus))
	}

	if err = s.r.SetReservationStatus(ctx, tx, reservationID, model.ReservationActive); err != nil {
		return err
	}
	if err = s.r.SetCarStatus(ctx, tx, l.CarID, model.CarRented); err != nil {
		return err
	}

	// Invoice should exist from reservation time; create an empty one if not.
	invID, err := s.r.InvoiceIDForReservation(ctx, tx, reservationID)
	if err != nil {
		return err
	}
	if invID == "" {
		if _, err = s.r.InsertInvoice(ctx, tx, reservationID, 0); err != nil {
			return err
		}
	}

	if err = tx.Commit(ctx); err != nil {
		return err
	}
	metrics.RentalsStarted.Inc()
	return nil
}

func (s *service) Close(ctx context.Context, reservationID string, damageFee, refuelFee float64) (total float64, err error) {
	if damageFee < 0 || refuelFee < 0 {
		return 0, makeErr(ErrBadFee, "fees must not be negative")
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	l, err := s.r.LockReservationCar(ctx, tx, reservationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, makeErr(ErrNotFound, "reservation not found")
		}
		return 0, err
	}
	if l.ResStatus != model.ReservationActive {
		return 0, makeErr(ErrNotActive, "reservation is not in 'Active' state")
	}

	days := model.RentalDays(l.StartDate, l.EndDate)
	total = l.PricePerDay*float64(days) + damageFee + refuelFee

	if err = s.r.SetReservationStatus(ctx, tx, reservationID, model.ReservationCompleted); err != nil {
		return 0, err
	}
	if err = s.r.SetCarStatus(ctx, tx, l.CarID, model.CarAvailable); err != nil {
		return 0, err
	}

	invID, err := s.r.InvoiceIDForReservation(ctx, tx, reservationID)
	if err != nil {
		return 0, err
	}
	if invID == "" {
		if _, err = s.r.InsertInvoice(ctx, tx, reservationID, total); err != nil {
			return 0, err
		}
	} else if err = s.r.FinalizeInvoice(ctx, tx, invID, total); err != nil {
		return 0, err
	}

	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	metrics.RentalsClosed.Inc()
	return total, nil
}
