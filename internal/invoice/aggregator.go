package invoice

import (
	"context"

	"go.uber.org/zap"
)

// Aggregator runs the whole aggregation pipeline for one submission.
// It holds no per-request state and is safe for concurrent use.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator creates a new Aggregator
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger}
}

// Aggregate builds reservations and payments, reconciles them and returns the summary
func (a *Aggregator) Aggregate(ctx context.Context, in *FormInput) *Summary {
	if in == nil {
		in = &FormInput{}
	}

	rc := in.Reservations
	reservations, totalReservation := BuildReservations(
		rc.Numbers, rc.Hotels, rc.CheckIns, rc.CheckOuts, rc.Totals,
	)

	pc := in.Payments
	payments, totalPaid, paidByNumber := BuildPayments(
		pc.ReservationNumbers, pc.Dates, pc.Methods, pc.Amounts,
		pc.Currencies, pc.ExchangeRates, pc.Notes,
	)

	balances := Reconcile(reservations, paidByNumber)
	summary := BuildSummary(balances, payments, totalReservation, totalPaid)

	a.logger.Debug("Invoice aggregation complete",
		zap.Int("reservation_count", len(reservations)),
		zap.Int("payment_count", len(payments)),
		zap.Int("orphan_payment_count", countOrphans(reservations, payments)),
		zap.Int64("total_reservation_sar", summary.TotalReservationBase),
		zap.Int64("total_paid_sar", summary.TotalPaidBase),
		zap.Int64("total_remaining_sar", summary.TotalRemainingBase))

	return summary
}

// countOrphans counts payments whose reservation number matches no reservation
func countOrphans(reservations []Reservation, payments []Payment) int {
	known := make(map[string]struct{}, len(reservations))
	for _, r := range reservations {
		known[r.Number] = struct{}{}
	}

	orphans := 0
	for _, p := range payments {
		if _, ok := known[p.ReservationNumber]; !ok {
			orphans++
		}
	}
	return orphans
}
