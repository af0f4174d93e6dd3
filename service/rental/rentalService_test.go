package rental

import (
	"context"
	"testing"
	"time"

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
	locked  *Locked
	lockErr error

	invoiceID string

	resStatusSet model.ReservationStatus
	carStatusSet model.CarStatus

	insertedTotal  *float64
	finalizedTotal *float64
	finalizedInv   string
}

var _ Repo = (*repoMock)(nil)

func (m *repoMock) LockReservationCar(ctx context.Context, tx pgx.Tx, resID string) (*Locked, error) {
	if m.lockErr != nil {
		return nil, m.lockErr
	}
	return m.locked, nil
}

func (m *repoMock) SetReservationStatus(ctx context.Context, tx pgx.Tx, resID string, st model.ReservationStatus) error {
	m.resStatusSet = st
	return nil
}

func (m *repoMock) SetCarStatus(ctx context.Context, tx pgx.Tx, carID string, st model.CarStatus) error {
	m.carStatusSet = st
	return nil
}

func (m *repoMock) InvoiceIDForReservation(ctx context.Context, tx pgx.Tx, resID string) (string, error) {
	return m.invoiceID, nil
}

func (m *repoMock) InsertInvoice(ctx context.Context, tx pgx.Tx, resID string, total float64) (string, error) {
	m.insertedTotal = &total
	return "INV-9", nil
}

func (m *repoMock) FinalizeInvoice(ctx context.Context, tx pgx.Tx, invID string, total float64) error {
	m.finalizedInv = invID
	m.finalizedTotal = &total
	return nil
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// --- Start ---

func TestStart_Success(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{
			ResID:     "RES-1",
			ResStatus: model.ReservationReserved,
			CarID:     "CAR-1",
			CarStatus: model.CarAvailable,
		},
		invoiceID: "INV-1",
	}
	s := New(&fakeDB{tx: tx}, m)

	err := s.Start(context.Background(), "RES-1")
	require.NoError(t, err)
	require.Equal(t, model.ReservationActive, m.resStatusSet)
	require.Equal(t, model.CarRented, m.carStatusSet)
	require.Nil(t, m.insertedTotal)
	require.True(t, tx.committed)
}

func TestStart_NotFound(t *testing.T) {
	tx := &fakeTx{}
	s := New(&fakeDB{tx: tx}, &repoMock{lockErr: pgx.ErrNoRows})

	err := s.Start(context.Background(), "RES-404")
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
	require.True(t, tx.rolledBack)
}

func TestStart_AlreadyActive(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{ResStatus: model.ReservationActive, CarStatus: model.CarRented},
	}
	s := New(&fakeDB{tx: tx}, m)

	err := s.Start(context.Background(), "RES-1")
	require.Error(t, err)
	require.Equal(t, ErrNotReserved, Code(err))
	require.True(t, tx.rolledBack)
	require.False(t, tx.committed)
}

func TestStart_CarInWrongState(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{ResStatus: model.ReservationReserved, CarStatus: model.CarMaintenance},
	}
	s := New(&fakeDB{tx: tx}, m)

	err := s.Start(context.Background(), "RES-1")
	require.Error(t, err)
	require.Equal(t, ErrCarUnavailable, Code(err))
	require.Contains(t, err.Error(), "Maintenance")
}

func TestStart_CreatesMissingInvoice(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked:    &Locked{ResStatus: model.ReservationReserved, CarStatus: model.CarReserved, CarID: "CAR-2"},
		invoiceID: "",
	}
	s := New(&fakeDB{tx: tx}, m)

	err := s.Start(context.Background(), "RES-2")
	require.NoError(t, err)
	require.NotNil(t, m.insertedTotal)
	require.Equal(t, 0.0, *m.insertedTotal)
}

// --- Close ---

func TestClose_ComputesTotalWithFees(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{
			ResID:       "RES-1",
			ResStatus:   model.ReservationActive,
			CarID:       "CAR-1",
			CarStatus:   model.CarRented,
			StartDate:   day("2026-03-10"),
			EndDate:     day("2026-03-13"),
			PricePerDay: 50,
		},
		invoiceID: "INV-1",
	}
	s := New(&fakeDB{tx: tx}, m)

	total, err := s.Close(context.Background(), "RES-1", 20, 10)
	require.NoError(t, err)
	require.Equal(t, 180.0, total)
	require.Equal(t, model.ReservationCompleted, m.resStatusSet)
	require.Equal(t, model.CarAvailable, m.carStatusSet)
	require.Equal(t, "INV-1", m.finalizedInv)
	require.Equal(t, 180.0, *m.finalizedTotal)
	require.True(t, tx.committed)
}

func TestClose_MinimumOneDay(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{
			ResStatus:   model.ReservationActive,
			StartDate:   day("2026-03-10"),
			EndDate:     day("2026-03-10"),
			PricePerDay: 40,
		},
		invoiceID: "INV-1",
	}
	s := New(&fakeDB{tx: tx}, m)

	total, err := s.Close(context.Background(), "RES-1", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 40.0, total)
}

func TestClose_NotActive(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{ResStatus: model.ReservationCompleted},
	}
	s := New(&fakeDB{tx: tx}, m)

	_, err := s.Close(context.Background(), "RES-1", 0, 0)
	require.Error(t, err)
	require.Equal(t, ErrNotActive, Code(err))
	require.True(t, tx.rolledBack)
}

func TestClose_NotFound(t *testing.T) {
	tx := &fakeTx{}
	s := New(&fakeDB{tx: tx}, &repoMock{lockErr: pgx.ErrNoRows})

	_, err := s.Close(context.Background(), "RES-404", 0, 0)
	require.Error(t, err)
	require.Equal(t, ErrNotFound, Code(err))
}

func TestClose_NegativeFeeRejected(t *testing.T) {
	s := New(&fakeDB{tx: &fakeTx{}}, &repoMock{})

	_, err := s.Close(context.Background(), "RES-1", -1, 0)
	require.Error(t, err)
	require.Equal(t, ErrBadFee, Code(err))

	_, err = s.Close(context.Background(), "RES-1", 0, -0.5)
	require.Error(t, err)
	require.Equal(t, ErrBadFee, Code(err))
}

func TestClose_CreatesMissingInvoiceWithTotal(t *testing.T) {
	tx := &fakeTx{}
	m := &repoMock{
		locked: &Locked{
			ResStatus:   model.ReservationActive,
			StartDate:   day("2026-03-10"),
			EndDate:     day("2026-03-12"),
			PricePerDay: 60,
		},
		invoiceID: "",
	}
	s := New(&fakeDB{tx: tx}, m)

	total, err := s.Close(context.Background(), "RES-1", 0, 0)
	require.NoError(t, err)
	require.Equal(t, 120.0, total)
	require.NotNil(t, m.insertedTotal)
	require.Equal(t, 120.0, *m.insertedTotal)
	require.Nil(t, m.finalizedTotal)
}
