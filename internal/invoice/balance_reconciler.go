package invoice

import "github.com/shopspring/decimal"

// Reconcile computes the remaining balance and status of each reservation,
// keeping the input order. Reservations sharing a number share one paid bucket.
func Reconcile(reservations []Reservation, paidByNumber map[string]int64) []ReservationBalance {
	balances := make([]ReservationBalance, 0, len(reservations))

	for _, r := range reservations {
		paid := paidByNumber[r.Number]
		remaining := subBase(r.TotalBase, paid)

		balances = append(balances, ReservationBalance{
			Reservation:   r,
			PaidBase:      paid,
			RemainingBase: remaining,
			Status:        classify(r.TotalBase, remaining),
		})
	}

	return balances
}

// classify checks settled first, then "more than half outstanding".
// An overpaid reservation (negative remaining) falls through to partial.
func classify(total, remaining int64) Status {
	switch {
	case remaining == 0:
		return StatusPaid
	case decimal.NewFromInt(remaining).Mul(two).GreaterThan(decimal.NewFromInt(total)):
		return StatusUnpaid
	default:
		return StatusPartial
	}
}
