package invoice

import "strings"

// BuildPayments zips the payment columns by position, converts every payment
// to the base currency and buckets the converted amounts by reservation
// number. Payments whose number matches no reservation still count toward
// the grand total.
func BuildPayments(
	reservationNumbers, dates, methods, amounts, currencies, exchangeRates, notes []string,
) ([]Payment, int64, map[string]int64) {
	n := shortest(
		len(reservationNumbers), len(dates), len(methods), len(amounts),
		len(currencies), len(exchangeRates), len(notes),
	)

	payments := make([]Payment, 0, n)
	paidByNumber := make(map[string]int64)
	var totalPaid int64

	for i := 0; i < n; i++ {
		amount := ParseAmount(amounts[i], zero)
		rate := ParseAmount(exchangeRates[i], one)
		currency := strings.ToUpper(strings.TrimSpace(currencies[i]))
		amountBase := roundToInt(Convert(amount, currency, rate))

		number := orPlaceholder(reservationNumbers[i])
		paidByNumber[number] = addBase(paidByNumber[number], amountBase)
		totalPaid = addBase(totalPaid, amountBase)

		payments = append(payments, Payment{
			ReservationNumber: number,
			Date:              ParseDate(dates[i]),
			Method:            orPlaceholder(methods[i]),
			Amount:            amount,
			Currency:          currency,
			ExchangeRate:      rate,
			AmountBase:        amountBase,
			Note:              orPlaceholder(notes[i]),
		})
	}

	return payments, totalPaid, paidByNumber
}
