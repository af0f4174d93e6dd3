// service/invoice/invoiceService_test.go
package invoice_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	invsvc "github.com/Fahadd2/GearUp/service/invoice"
)

type repoMock struct {
	gotLimit int
	rows     []invsvc.Row
}

func (m *repoMock) List(ctx context.Context, limit int) ([]invsvc.Row, error) {
	m.gotLimit = limit
	return m.rows, nil
}

func TestList_LimitClamping(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want int
	}{
		{"zero uses default", 0, 100},
		{"negative clamps to one", -5, 1},
		{"over max clamps to max", 500, 200},
		{"in range passes through", 25, 25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := &repoMock{}
			s := invsvc.New(m)

			_, err := s.List(context.Background(), tc.in)

			require.NoError(t, err)
			require.Equal(t, tc.want, m.gotLimit)
		})
	}
}

func TestList_ReturnsRows(t *testing.T) {
	m := &repoMock{rows: []invsvc.Row{{InvID: "INV-2"}, {InvID: "INV-1"}}}
	s := invsvc.New(m)

	rows, err := s.List(context.Background(), 10)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, "INV-2", rows[0].InvID)
}
