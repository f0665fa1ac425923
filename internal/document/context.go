package document

import (
	"fmt"
	"time"

	"github.com/travelops/hotel-invoicer/internal/invoice"
	"github.com/travelops/hotel-invoicer/pkg/utils"
)

// Kind selects which document is rendered
type Kind string

const (
	KindInvoice      Kind = "invoice"
	KindConfirmation Kind = "confirmation"
)

// ContentType is the MIME type of every rendered document
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// dateLayout is how dates are printed on documents
const dateLayout = "02/01/2006"

// Header carries the free-text header fields of a submission
type Header struct {
	Number       string // invoice or confirmation number
	CompanyName  string
	CompanyCity  string
	CustomerName string
	IssuedDate   *time.Time
	DueDate      *time.Time
}

// RenderContext is everything a document needs: header, company and summary
type RenderContext struct {
	Kind     Kind
	Company  string // company selector, used in confirmation filenames
	Header   Header
	Summary  *invoice.Summary
	LogoPath string
}

// Filename builds the attachment name for the Content-Disposition header
func Filename(kind Kind, number, company string) (string, error) {
	switch kind {
	case KindInvoice:
		return fmt.Sprintf("invoice_%s.xlsx", utils.SanitizeFilename(number)), nil
	case KindConfirmation:
		return fmt.Sprintf("confirmation_%s_%s.xlsx",
			utils.SanitizeFilename(company), utils.SanitizeFilename(number)), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return invoice.Placeholder
	}
	return t.Format(dateLayout)
}

// nights returns the number of nights between check-in and check-out, if both are known
func nights(r invoice.Reservation) (int, bool) {
	if r.CheckIn == nil || r.CheckOut == nil {
		return 0, false
	}
	return int(r.CheckOut.Sub(*r.CheckIn).Hours() / 24), true
}
