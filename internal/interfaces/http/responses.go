package http

import (
	"time"

	"github.com/travelops/hotel-invoicer/internal/invoice"
)

// ReservationResponse is one reservation line with its balance
type ReservationResponse struct {
	Number           string `json:"number"`
	Hotel            string `json:"hotel"`
	CheckIn          string `json:"check_in,omitempty"`
	CheckOut         string `json:"check_out,omitempty"`
	Total            int64  `json:"total_sar"`
	TotalDisplay     string `json:"total_display"`
	Paid             int64  `json:"paid_sar"`
	Remaining        int64  `json:"remaining_sar"`
	RemainingDisplay string `json:"remaining_display"`
	Status           string `json:"status"`
	RemainingClass   string `json:"remaining_class"`
}

// PaymentResponse is one payment line
type PaymentResponse struct {
	ReservationNumber string `json:"reservation_no"`
	Date              string `json:"date,omitempty"`
	Method            string `json:"method"`
	Amount            string `json:"amount"`
	Currency          string `json:"currency"`
	Exchange          string `json:"exchange"`
	AmountBase        int64  `json:"amount_sar_int"`
	AmountBaseDisplay string `json:"amount_sar"`
	Note              string `json:"note"`
}

// SummaryResponse is the JSON form of an invoice summary
type SummaryResponse struct {
	Reservations            []ReservationResponse `json:"reservations"`
	Payments                []PaymentResponse     `json:"payments"`
	TotalReservation        int64                 `json:"total_reservation_int"`
	TotalPaid               int64                 `json:"total_paid_int"`
	TotalRemaining          int64                 `json:"remaining_int"`
	TotalReservationDisplay string                `json:"total_reservation_sar"`
	TotalPaidDisplay        string                `json:"total_paid_sar"`
	TotalRemainingDisplay   string                `json:"total_remaining_sar"`
}

func toSummaryResponse(s *invoice.Summary) SummaryResponse {
	resp := SummaryResponse{
		Reservations:            make([]ReservationResponse, 0, len(s.Reservations)),
		Payments:                make([]PaymentResponse, 0, len(s.Payments)),
		TotalReservation:        s.TotalReservationBase,
		TotalPaid:               s.TotalPaidBase,
		TotalRemaining:          s.TotalRemainingBase,
		TotalReservationDisplay: s.TotalReservationDisplay,
		TotalPaidDisplay:        s.TotalPaidDisplay,
		TotalRemainingDisplay:   s.TotalRemainingDisplay,
	}

	for _, b := range s.Reservations {
		resp.Reservations = append(resp.Reservations, ReservationResponse{
			Number:           b.Number,
			Hotel:            b.Hotel,
			CheckIn:          isoDate(b.CheckIn),
			CheckOut:         isoDate(b.CheckOut),
			Total:            b.TotalBase,
			TotalDisplay:     b.TotalDisplay(),
			Paid:             b.PaidBase,
			Remaining:        b.RemainingBase,
			RemainingDisplay: b.RemainingDisplay(),
			Status:           string(b.Status),
			RemainingClass:   b.Status.CSSClass(),
		})
	}

	for _, p := range s.Payments {
		resp.Payments = append(resp.Payments, PaymentResponse{
			ReservationNumber: p.ReservationNumber,
			Date:              isoDate(p.Date),
			Method:            p.Method,
			Amount:            p.AmountDisplay(),
			Currency:          p.Currency,
			Exchange:          p.ExchangeDisplay(),
			AmountBase:        p.AmountBase,
			AmountBaseDisplay: p.AmountBaseDisplay(),
			Note:              p.Note,
		})
	}

	return resp
}

func isoDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}
