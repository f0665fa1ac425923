package invoice

import "github.com/dustin/go-humanize"

// BuildSummary assembles the renderer input. The outstanding total is taken
// from the grand totals rather than summed from the lines, so orphan payments
// and duplicated reservation numbers are reflected exactly once.
func BuildSummary(balances []ReservationBalance, payments []Payment, totalReservationBase, totalPaidBase int64) *Summary {
	totalRemaining := subBase(totalReservationBase, totalPaidBase)

	return &Summary{
		Reservations:            balances,
		Payments:                payments,
		TotalReservationBase:    totalReservationBase,
		TotalPaidBase:           totalPaidBase,
		TotalRemainingBase:      totalRemaining,
		TotalReservationDisplay: humanize.Comma(totalReservationBase),
		TotalPaidDisplay:        humanize.Comma(totalPaidBase),
		TotalRemainingDisplay:   humanize.Comma(totalRemaining),
	}
}
