//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"oceanview-backend/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustStay(t *testing.T, checkIn, checkOut time.Time) reservation.StayRange {
	t.Helper()
	stay, err := reservation.NewStayRange(checkIn, checkOut)
	require.NoError(t, err)
	return stay
}

func TestNewStayRange(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		stay, err := reservation.NewStayRange(date(2024, 1, 10), date(2024, 1, 12))
		require.NoError(t, err)
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("check-in equal to check-out is rejected", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2024, 1, 10), date(2024, 1, 10))
		assert.ErrorIs(t, err, reservation.ErrInvalidStayRange)
	})

	t.Run("check-in after check-out is rejected", func(t *testing.T) {
		_, err := reservation.NewStayRange(date(2024, 1, 12), date(2024, 1, 10))
		assert.ErrorIs(t, err, reservation.ErrInvalidStayRange)
	})

	t.Run("time of day is discarded", func(t *testing.T) {
		in := time.Date(2024, 1, 10, 23, 45, 0, 0, time.UTC)
		out := time.Date(2024, 1, 12, 1, 15, 0, 0, time.UTC)
		stay, err := reservation.NewStayRange(in, out)
		require.NoError(t, err)
		assert.Equal(t, date(2024, 1, 10), stay.CheckIn())
		assert.Equal(t, date(2024, 1, 12), stay.CheckOut())
		assert.Equal(t, 2, stay.Nights())
	})

	t.Run("same calendar day with different times is rejected", func(t *testing.T) {
		in := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
		out := time.Date(2024, 1, 10, 22, 0, 0, 0, time.UTC)
		_, err := reservation.NewStayRange(in, out)
		assert.ErrorIs(t, err, reservation.ErrInvalidStayRange)
	})
}

func TestStayRange_Overlaps(t *testing.T) {
	base := mustStay(t, date(2024, 1, 10), date(2024, 1, 12))

	testCases := []struct {
		name     string
		other    reservation.StayRange
		overlaps bool
	}{
		{
			name:     "identical range",
			other:    mustStay(t, date(2024, 1, 10), date(2024, 1, 12)),
			overlaps: true,
		},
		{
			name:     "partial overlap at tail",
			other:    mustStay(t, date(2024, 1, 11), date(2024, 1, 13)),
			overlaps: true,
		},
		{
			name:     "partial overlap at head",
			other:    mustStay(t, date(2024, 1, 9), date(2024, 1, 11)),
			overlaps: true,
		},
		{
			name:     "fully contained",
			other:    mustStay(t, date(2024, 1, 10), date(2024, 1, 11)),
			overlaps: true,
		},
		{
			name:     "fully containing",
			other:    mustStay(t, date(2024, 1, 8), date(2024, 1, 15)),
			overlaps: true,
		},
		{
			name:     "back-to-back after checkout",
			other:    mustStay(t, date(2024, 1, 12), date(2024, 1, 14)),
			overlaps: false,
		},
		{
			name:     "back-to-back before checkin",
			other:    mustStay(t, date(2024, 1, 8), date(2024, 1, 10)),
			overlaps: false,
		},
		{
			name:     "disjoint",
			other:    mustStay(t, date(2024, 2, 1), date(2024, 2, 3)),
			overlaps: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base), "overlap must be symmetric")
		})
	}
}

func TestMoney(t *testing.T) {
	m := reservation.NewMoney(10000)
	assert.Equal(t, int64(10000), m.Cents())
	assert.Equal(t, int64(30000), m.MultiplyBy(3).Cents())
	assert.InDelta(t, 100.0, m.Dollars(), 0.001)
}
