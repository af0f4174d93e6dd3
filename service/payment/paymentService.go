package payment

import (
	"context"
	"errors"

	"github.com/Fahadd2/GearUp/model"
	"github.com/Fahadd2/GearUp/util/database"
	"github.com/Fahadd2/GearUp/util/metrics"

	"github.com/jackc/pgx/v5"
)

// errors used by controllers

type ErrCode string

const (
	ErrInvoiceNotFound ErrCode = "INVOICE_NOT_FOUND"
	ErrBadAmount       ErrCode = "BAD_AMOUNT"
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

type Recorded struct {
	PaymentID string
	PaidTotal float64
	Status    model.PaymentStatus
}

type Repo interface {
	LockInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) (totalAmount float64, err error)
	InsertPayment(ctx context.Context, tx pgx.Tx, invoiceID string, method model.PaymentMethod, amount float64, reference *string) (string, error)
	SumPayments(ctx context.Context, tx pgx.Tx, invoiceID string) (float64, error)
	SetPaymentStatus(ctx context.Context, tx pgx.Tx, invoiceID string, st model.PaymentStatus) error
}

type Service interface {
	// Record appends a payment and recomputes the invoice's payment status.
	// Payments are append-only; the same submission twice makes two rows.
	Record(ctx context.Context, invoiceID string, method model.PaymentMethod, amount float64, reference *string) (*Recorded, error)
}

// ----- Service implementation -----

type service struct {
	db database.Beginner
	r  Repo
}

func New(db database.Beginner, r Repo) Service {
	return &service{db: db, r: r}
}

func (s *service) Record(ctx context.Context, invoiceID string, method model.PaymentMethod, amount float64, reference *string) (out *Recorded, err error) {
	if amount <= 0 {
		return nil, makeErr(ErrBadAmount, "amount must be greater than zero")
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

	total, err := s.r.LockInvoice(ctx, tx, invoiceID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrInvoiceNotFound, "invoice not found")
		}
		return nil, err
	}

	payID, err := s.r.InsertPayment(ctx, tx, invoiceID, method, amount, reference)
	if err != nil {
		return nil, err
	}

	paid, err := s.r.SumPayments(ctx, tx, invoiceID)
	if err != nil {
		return nil, err
	}

	status := model.DerivePaymentStatus(paid, total)
	if err = s.r.SetPaymentStatus(ctx, tx, invoiceID, status); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	metrics.PaymentsRecorded.Inc()
	return &Recorded{PaymentID: payID, PaidTotal: paid, Status: status}, nil
}
