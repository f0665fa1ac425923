package utils

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrStayDatesReversed is returned when a reservation checks out before it checks in
var ErrStayDatesReversed = errors.New("check-out date is earlier than check-in date")

var (
	controlChars  = regexp.MustCompile(`[\x00-\x1f\x7f]`)
	filenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)
)

// ValidateStay rejects a stay whose check-out precedes its check-in.
// Missing dates are not validated.
func ValidateStay(reservationNumber string, checkIn, checkOut *time.Time) error {
	if checkIn == nil || checkOut == nil {
		return nil
	}
	if checkOut.Before(*checkIn) {
		return fmt.Errorf("reservation %s: %w (%s < %s)", reservationNumber, ErrStayDatesReversed,
			checkOut.Format("2006-01-02"), checkIn.Format("2006-01-02"))
	}
	return nil
}

// SanitizeString removes control characters from free text
func SanitizeString(s string) string {
	return controlChars.ReplaceAllString(s, "")
}

// SanitizeFilename keeps a filename component safe for a Content-Disposition header
func SanitizeFilename(s string) string {
	s = filenameChars.ReplaceAllString(SanitizeString(s), "_")
	if s == "" || s == "_" {
		return "untitled"
	}
	return s
}
