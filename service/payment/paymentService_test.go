package payment

import (
	"context"
	"testing"

	"github.com/Fahadd2/GearUp/model"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type fakeDB struct{ tx *fakeTx }

func (d *fakeDB) Begin(ctx context.Context) (pgx.Tx, error) { return d.tx, nil }

type repoMock struct {
	total   float64
	lockErr error

	paidAfterInsert float64

	inserts   int
	statusSet model.PaymentStatus
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) LockInvoice(ctx context.Context, tx pgx.Tx, invID string) (float64, error) {
	if m.lockErr != nil {
		return 0, m.lockErr
	}
	return m.total, nil
}

func (m *repoMock) InsertPayment(ctx context.Context, tx pgx.Tx, invID string, method model.PaymentMethod, amount float64, ref *string) (string, error) {
	m.inserts++
	return "PAY-1", nil
}

func (m *repoMock) SumPayments(ctx context.Context, tx pgx.Tx, invID string) (float64, error) {
	return m.paidAfterInsert, nil
}

func (m *repoMock) SetPaymentStatus(ctx context.Context, tx pgx.Tx, invID string, st model.PaymentStatus) error {
	m.statusSet = st
	return nil
}

func TestRecord_PartialThenPaid(t *testing.T) {
	m := &repoMock{total: 150, paidAfterInsert: 100}
	s := New(&fakeDB{tx: &fakeTx{}}, m)

	out, err := s.Record(context.Background(), "INV-1", model.PayCash, 100, nil)
	require.NoError(t, err)
	require.Equal(t, model.InvoicePartial, out.Status)
	require.Equal(t, 100.0, out.PaidTotal)
	require.Equal(t, model.InvoicePartial, m.statusSet)

	m.paidAfterInsert = 150
	out, err = s.Record(context.Background(), "INV-1", model.PayCard, 50, nil)
	require.NoError(t, err)
	require.Equal(t, model.InvoicePaid, out.Status)
	require.Equal(t, 150.0, out.PaidTotal)
	require.Equal(t, 2, m.inserts)
}

func TestRecord_OverpaymentReadsPaid(t *testing.T) {
	m := &repoMock{total: 150, paidAfterInsert: 200}
	s := New(&fakeDB{tx: &fakeTx{}}, m)

	out, err := s.Record(context.Background(), "INV-1", model.PayTransfer, 200, nil)
	require.NoError(t, err)
	require.Equal(t, model.InvoicePaid, out.Status)
}

func TestRecord_InvoiceNotFound(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{lockErr: pgx.ErrNoRows}
	s := New(&fakeDB{tx: tx}, m)

	_, err := s.Record(context.Background(), "INV-404", model.PayCash, 10, nil)
	require.Error(t, err)
	require.Equal(t, ErrInvoiceNotFound, Code(err))
	require.Equal(t, 0, m.inserts)
	require.True(t, tx.rolledBack)
}

func TestRecord_AmountMustBePositive(t *testing.T) {
	s := New(&fakeDB{tx: &fakeTx{}}, &repoMock{total: 150})

	_, err := s.Record(context.Background(), "INV-1", model.PayCash, 0, nil)
	require.Error(t, err)
	require.Equal(t, ErrBadAmount, Code(err))

	_, err = s.Record(context.Background(), "INV-1", model.PayCash, -5, nil)
	require.Error(t, err)
	require.Equal(t, ErrBadAmount, Code(err))
}

// Payments carry no dedup key: the same submission twice is two rows.
func TestRecord_NoDeduplication(t *testing.T) {
	m := &repoMock{total: 100, paidAfterInsert: 50}
	s := New(&fakeDB{tx: &fakeTx{}}, m)

	_, err := s.Record(context.Background(), "INV-1", model.PayCash, 50, nil)
	require.NoError(t, err)
	m.paidAfterInsert = 100
	_, err = s.Record(context.Background(), "INV-1", model.PayCash, 50, nil)
	require.NoError(t, err)
	require.Equal(t, 2, m.inserts)
	require.Equal(t, model.InvoicePaid, m.statusSet)
}
