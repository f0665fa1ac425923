package invoice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAggregator_Aggregate(t *testing.T) {
	ctx := context.Background()
	aggregator := NewAggregator(zap.NewNop())

	t.Run("single reservation partly paid", func(t *testing.T) {
		in := &FormInput{
			Reservations: ReservationColumns{
				Numbers:   []string{"R1"},
				Hotels:    []string{"Hilton Makkah"},
				CheckIns:  []string{"2024-06-01"},
				CheckOuts: []string{"2024-06-05"},
				Totals:    []string{"1000"},
			},
			Payments: PaymentColumns{
				ReservationNumbers: []string{"R1"},
				Dates:              []string{"2024-05-20"},
				Methods:            []string{"transfer"},
				Amounts:            []string{"400"},
				Currencies:         []string{"SAR"},
				ExchangeRates:      []string{""},
				Notes:              []string{""},
			},
		}

		summary := aggregator.Aggregate(ctx, in)

		require.Len(t, summary.Reservations, 1)
		b := summary.Reservations[0]
		assert.Equal(t, "R1", b.Number)
		assert.Equal(t, int64(400), b.PaidBase)
		assert.Equal(t, int64(600), b.RemainingBase)
		assert.Equal(t, StatusUnpaid, b.Status)
		assert.Equal(t, int64(1000), summary.TotalReservationBase)
		assert.Equal(t, int64(400), summary.TotalPaidBase)
		assert.Equal(t, int64(600), summary.TotalRemainingBase)
		require.Len(t, summary.Payments, 1)
	})

	t.Run("orphan payment counts toward totals only", func(t *testing.T) {
		in := &FormInput{
			Reservations: ReservationColumns{
				Numbers:   []string{"R1", "R2"},
				Hotels:    []string{"A", "B"},
				CheckIns:  []string{"", ""},
				CheckOuts: []string{"", ""},
				Totals:    []string{"1000", "2000"},
			},
			Payments: PaymentColumns{
				ReservationNumbers: []string{"R1", "R9"},
				Dates:              []string{"", ""},
				Methods:            []string{"", ""},
				Amounts:            []string{"1000", "100"},
				Currencies:         []string{"SAR", "USD"},
				ExchangeRates:      []string{"", "3.75"},
				Notes:              []string{"", ""},
			},
		}

		summary := aggregator.Aggregate(ctx, in)

		assert.Equal(t, int64(3000), summary.TotalReservationBase)
		assert.Equal(t, int64(1375), summary.TotalPaidBase)
		assert.Equal(t, int64(1625), summary.TotalRemainingBase)

		var lineSum int64
		for _, b := range summary.Reservations {
			lineSum += b.RemainingBase
		}
		assert.Equal(t, int64(2000), lineSum)
		assert.Equal(t, StatusPaid, summary.Reservations[0].Status)
		assert.Equal(t, StatusUnpaid, summary.Reservations[1].Status)
	})

	t.Run("nil input yields empty summary", func(t *testing.T) {
		summary := aggregator.Aggregate(ctx, nil)

		assert.Empty(t, summary.Reservations)
		assert.Empty(t, summary.Payments)
		assert.Equal(t, int64(0), summary.TotalRemainingBase)
		assert.Equal(t, "0", summary.TotalRemainingDisplay)
	})
}

func TestCountOrphans(t *testing.T) {
	reservations := []Reservation{{Number: "R1"}, {Number: "R2"}}
	payments := []Payment{{ReservationNumber: "R1"}, {ReservationNumber: "X"}, {ReservationNumber: Placeholder}}

	assert.Equal(t, 2, countOrphans(reservations, payments))
}
