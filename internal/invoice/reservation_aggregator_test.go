package invoice

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReservations(t *testing.T) {
	t.Run("truncates to the shortest column", func(t *testing.T) {
		reservations, total := BuildReservations(
			[]string{"R1", "R2", "R3"},
			[]string{"Hilton", "Swissotel"},
			[]string{"2024-01-01", "2024-01-02", "2024-01-03"},
			[]string{"2024-01-04", "2024-01-05", "2024-01-06"},
			[]string{"100", "200", "300"},
		)

		require.Len(t, reservations, 2)
		assert.Equal(t, "R1", reservations[0].Number)
		assert.Equal(t, "R2", reservations[1].Number)
		assert.Equal(t, int64(300), total)
	})

	t.Run("normalizes blank and invalid fields", func(t *testing.T) {
		reservations, total := BuildReservations(
			[]string{"  "},
			[]string{""},
			[]string{"not-a-date"},
			[]string{""},
			[]string{" "},
		)

		require.Len(t, reservations, 1)
		r := reservations[0]
		assert.Equal(t, Placeholder, r.Number)
		assert.Equal(t, Placeholder, r.Hotel)
		assert.Nil(t, r.CheckIn)
		assert.Nil(t, r.CheckOut)
		assert.Equal(t, int64(0), r.TotalBase)
		assert.Equal(t, int64(0), total)
	})

	t.Run("rounds totals and sums the rounded values", func(t *testing.T) {
		reservations, total := BuildReservations(
			[]string{"A", "B", "C"},
			[]string{"H", "H", "H"},
			[]string{"", "", ""},
			[]string{"", "", ""},
			[]string{"1000.5", "1001.5", "abc"},
		)

		require.Len(t, reservations, 3)
		assert.Equal(t, int64(1000), reservations[0].TotalBase)
		assert.Equal(t, int64(1002), reservations[1].TotalBase)
		assert.Equal(t, int64(0), reservations[2].TotalBase)
		assert.Equal(t, int64(2002), total)
		assert.Equal(t, "1,002", reservations[1].TotalDisplay())
	})

	t.Run("trims and parses dates", func(t *testing.T) {
		reservations, _ := BuildReservations(
			[]string{" R9 "}, []string{" Pullman "},
			[]string{"2024-05-01"}, []string{"03/05/2024"}, []string{"1"},
		)

		require.Len(t, reservations, 1)
		assert.Equal(t, "R9", reservations[0].Number)
		assert.Equal(t, "Pullman", reservations[0].Hotel)
		require.NotNil(t, reservations[0].CheckIn)
		require.NotNil(t, reservations[0].CheckOut)
		assert.Equal(t, 2, reservations[0].CheckOut.Day()-reservations[0].CheckIn.Day())
	})

	t.Run("no input yields empty list", func(t *testing.T) {
		reservations, total := BuildReservations(nil, nil, nil, nil, nil)
		assert.Empty(t, reservations)
		assert.Equal(t, int64(0), total)
	})
}

func TestBuildReservations_OutOfRangeTotals(t *testing.T) {
	type result struct {
		reservations []Reservation
		total        int64
	}
	done := make(chan result, 1)

	go func() {
		reservations, total := BuildReservations(
			[]string{"R1", "R2", "R3", "R4"},
			[]string{"Hilton", "Hilton", "Hilton", "Hilton"},
			[]string{"", "", "", ""},
			[]string{"", "", "", ""},
			[]string{"1e200000000", "1e19", "99999999999999999999", "500"},
		)
		done <- result{reservations: reservations, total: total}
	}()

	select {
	case r := <-done:
		require.Len(t, r.reservations, 4)
		for _, res := range r.reservations[:3] {
			assert.Equal(t, int64(0), res.TotalBase, res.Number)
		}
		assert.Equal(t, int64(500), r.reservations[3].TotalBase)
		assert.Equal(t, int64(500), r.total)
	case <-time.After(5 * time.Second):
		t.Fatal("BuildReservations did not return for an oversized exponent")
	}
}
