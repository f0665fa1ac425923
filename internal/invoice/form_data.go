package invoice

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Placeholder is shown wherever a free-text field was left blank
const Placeholder = "-"

// ReservationColumns holds the reservation rows exactly as submitted:
// one slice per form field, aligned by position.
type ReservationColumns struct {
	Numbers   []string
	Hotels    []string
	CheckIns  []string
	CheckOuts []string
	Totals    []string
}

// PaymentColumns holds the payment rows exactly as submitted.
type PaymentColumns struct {
	ReservationNumbers []string
	Dates              []string
	Methods            []string
	Amounts            []string
	Currencies         []string
	ExchangeRates      []string
	Notes              []string
}

// FormInput is the raw line-item input of one submission
type FormInput struct {
	Reservations ReservationColumns
	Payments     PaymentColumns
}

// Reservation is one hotel booking line, totalled in the base currency
type Reservation struct {
	Number    string     `json:"number"`
	Hotel     string     `json:"hotel"`
	CheckIn   *time.Time `json:"check_in"`
	CheckOut  *time.Time `json:"check_out"`
	TotalBase int64      `json:"total_base"`
}

// TotalDisplay returns the total with thousands separators
func (r Reservation) TotalDisplay() string {
	return humanize.Comma(r.TotalBase)
}

// Payment is one payment line, normalized to the base currency
type Payment struct {
	ReservationNumber string          `json:"reservation_number"`
	Date              *time.Time      `json:"date"`
	Method            string          `json:"method"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	ExchangeRate      decimal.Decimal `json:"exchange_rate"`
	AmountBase        int64           `json:"amount_base"`
	Note              string          `json:"note"`
}

// AmountDisplay returns the submitted amount rounded to a whole unit
func (p Payment) AmountDisplay() string {
	return humanize.Comma(roundToInt(p.Amount))
}

// ExchangeDisplay returns the rate with two decimals, or the placeholder
// for base-currency payments where the rate is not used.
func (p Payment) ExchangeDisplay() string {
	if p.Currency == BaseCurrency {
		return Placeholder
	}
	rate, _ := p.ExchangeRate.Round(2).Float64()
	return humanize.FormatFloat("#,###.##", rate)
}

// AmountBaseDisplay returns the converted amount with thousands separators
func (p Payment) AmountBaseDisplay() string {
	return humanize.Comma(p.AmountBase)
}

// Status classifies how much of a reservation is still owed
type Status string

const (
	StatusPaid    Status = "PAID"
	StatusPartial Status = "PARTIAL"
	StatusUnpaid  Status = "UNPAID"
)

// CSSClass returns the class name the invoice stylesheet uses for the status
func (s Status) CSSClass() string {
	switch s {
	case StatusPaid:
		return "remaining-paid"
	case StatusUnpaid:
		return "remaining-unpaid"
	default:
		return "remaining-partial"
	}
}

// ReservationBalance joins a reservation with what has been paid against it
type ReservationBalance struct {
	Reservation
	PaidBase      int64  `json:"paid_base"`
	RemainingBase int64  `json:"remaining_base"`
	Status        Status `json:"status"`
}

// RemainingDisplay returns the remaining balance with thousands separators
func (b ReservationBalance) RemainingDisplay() string {
	return humanize.Comma(b.RemainingBase)
}

// Summary is the aggregated result handed to the document renderer.
// The integer totals are authoritative; the display strings are derived.
type Summary struct {
	Reservations         []ReservationBalance `json:"reservations"`
	Payments             []Payment            `json:"payments"`
	TotalReservationBase int64                `json:"total_reservation_base"`
	TotalPaidBase        int64                `json:"total_paid_base"`
	TotalRemainingBase   int64                `json:"total_remaining_base"`

	TotalReservationDisplay string `json:"total_reservation_display"`
	TotalPaidDisplay        string `json:"total_paid_display"`
	TotalRemainingDisplay   string `json:"total_remaining_display"`
}
