package invoice

import "strings"

// BuildReservations zips the reservation columns by position and totals
// them in the base currency. Rows beyond the shortest column are dropped.
func BuildReservations(numbers, hotels, checkIns, checkOuts, totals []string) ([]Reservation, int64) {
	n := shortest(len(numbers), len(hotels), len(checkIns), len(checkOuts), len(totals))

	reservations := make([]Reservation, 0, n)
	var totalBase int64

	for i := 0; i < n; i++ {
		amount := roundToInt(ParseAmount(totals[i], zero))

		reservations = append(reservations, Reservation{
			Number:    orPlaceholder(numbers[i]),
			Hotel:     orPlaceholder(hotels[i]),
			CheckIn:   ParseDate(checkIns[i]),
			CheckOut:  ParseDate(checkOuts[i]),
			TotalBase: amount,
		})
		totalBase = addBase(totalBase, amount)
	}

	return reservations, totalBase
}

// shortest returns the smallest of the given lengths (0 for none)
func shortest(lengths ...int) int {
	if len(lengths) == 0 {
		return 0
	}
	n := lengths[0]
	for _, l := range lengths[1:] {
		if l < n {
			n = l
		}
	}
	return n
}

func orPlaceholder(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return Placeholder
	}
	return s
}
