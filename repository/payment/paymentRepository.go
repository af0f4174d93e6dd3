// repository/payment/paymentRepository.go
package payment

import (
	"context"

	"github.com/Fahadd2/GearUp/model"

	"github.com/jackc/pgx/v5"
)

type Repo interface {
	LockInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) (totalAmount float64, err error)
	InsertPayment(ctx context.Context, tx pgx.Tx, invoiceID string, method model.PaymentMethod, amount float64, reference *string) (string, error)
	SumPayments(ctx context.Context, tx pgx.Tx, invoiceID string) (float64, error)
	SetPaymentStatus(ctx context.Context, tx pgx.Tx, invoiceID string, st model.PaymentStatus) error
}

type repo struct{}

func New() Repo { return &repo{} }

// LockInvoice holds the invoice row so concurrent payments against the same
// invoice recompute the status one at a time. pgx.ErrNoRows means no invoice.
func (r *repo) LockInvoice(ctx context.Context, tx pgx.Tx, invoiceID string) (float64, error) {
	const q = `
		SELECT total_amount
		FROM invoices
		WHERE inv_id = $1
		FOR UPDATE`
	var total float64
	err := tx.QueryRow(ctx, q, invoiceID).Scan(&total)
	return total, err
}

func (r *repo) InsertPayment(ctx context.Context, tx pgx.Tx, invoiceID string, method model.PaymentMethod, amount float64, reference *string) (string, error) {
	const q = `
		INSERT INTO payments (invoice_id, method, amount, reference)
		VALUES ($1, $2, $3, $4)
		RETURNING pay_id`
	var id string
	if err := tx.QueryRow(ctx, q, invoiceID, string(method), amount, reference).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func (r *repo) SumPayments(ctx context.Context, tx pgx.Tx, invoiceID string) (float64, error) {
	const q = `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE invoice_id = $1`
	var paid float64
	err := tx.QueryRow(ctx, q, invoiceID).Scan(&paid)
	return paid, err
}

func (r *repo) SetPaymentStatus(ctx context.Context, tx pgx.Tx, invoiceID string, st model.PaymentStatus) error {
	_, err := tx.Exec(ctx,
		`UPDATE invoices SET payment_status = $2 WHERE inv_id = $1`,
		invoiceID, string(st))
	return err
}
