package document

import (
	"context"
	"fmt"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/travelops/hotel-invoicer/internal/invoice"
)

// Config holds renderer settings
type Config struct {
	InvoiceSheet      string
	ConfirmationSheet string
}

// Renderer turns a RenderContext into an XLSX workbook
type Renderer struct {
	config Config
	logger *zap.Logger
}

// NewRenderer creates a new Renderer
func NewRenderer(config Config, logger *zap.Logger) *Renderer {
	if config.InvoiceSheet == "" {
		config.InvoiceSheet = "Invoice"
	}
	if config.ConfirmationSheet == "" {
		config.ConfirmationSheet = "Confirmation"
	}
	return &Renderer{config: config, logger: logger}
}

// Render writes the document selected by rc.Kind to w
func (r *Renderer) Render(ctx context.Context, rc *RenderContext, w io.Writer) error {
	switch rc.Kind {
	case KindInvoice:
		return r.RenderInvoice(ctx, rc, w)
	case KindConfirmation:
		return r.RenderConfirmation(ctx, rc, w)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, rc.Kind)
	}
}

// RenderInvoice writes the invoice workbook: header, reservations with their
// remaining balance, payments and totals.
func (r *Renderer) RenderInvoice(ctx context.Context, rc *RenderContext, w io.Writer) error {
	if rc.Summary == nil {
		return ErrMissingSummary
	}

	return r.render(ctx, rc, r.config.InvoiceSheet, w, func(sw *sheetWriter) {
		row := sw.header(rc, "INVOICE", "Invoice No")
		sw.text(1, row, "Due Date")
		sw.text(2, row, formatDate(rc.Header.DueDate))
		row += 2

		row = sw.reservationTable(row, rc.Summary.Reservations)
		row = sw.paymentTable(row+1, rc.Summary.Payments)
		sw.totals(row+1, rc.Summary)
	})
}

// RenderConfirmation writes the confirmation letter: the stays booked for
// the customer with nights and payment status.
func (r *Renderer) RenderConfirmation(ctx context.Context, rc *RenderContext, w io.Writer) error {
	if rc.Summary == nil {
		return ErrMissingSummary
	}

	return r.render(ctx, rc, r.config.ConfirmationSheet, w, func(sw *sheetWriter) {
		row := sw.header(rc, "CONFIRMATION LETTER", "Confirmation No")
		row++

		sw.text(1, row, "We are pleased to confirm the following reservations for "+orPlaceholder(rc.Header.CustomerName)+".")
		row += 2

		sw.row(row, "No", "Reservation #", "Hotel", "Check-in", "Check-out", "Nights", "Status")
		sw.style(1, row, 7, row, sw.styles.header)
		row++

		for i, b := range rc.Summary.Reservations {
			sw.row(row, i+1, b.Number, b.Hotel, formatDate(b.CheckIn), formatDate(b.CheckOut))
			if n, ok := nights(b.Reservation); ok {
				sw.set(6, row, n)
			} else {
				sw.text(6, row, invoice.Placeholder)
			}
			sw.text(7, row, string(b.Status))
			sw.style(7, row, 7, row, sw.styles.status[b.Status])
			row++
		}

		sw.totals(row+1, rc.Summary)
	})
}

// render creates the workbook, lets fill populate it and streams it to w.
// A cancelled ctx stops it before the workbook is built or written.
func (r *Renderer) render(ctx context.Context, rc *RenderContext, sheet string, w io.Writer, fill func(sw *sheetWriter)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("%w: rename sheet: %v", ErrWorkbookFailed, err)
	}

	sw, err := newSheetWriter(f, sheet)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWorkbookFailed, err)
	}

	fill(sw)
	if sw.err != nil {
		return fmt.Errorf("%w: %v", ErrWorkbookFailed, sw.err)
	}

	if err := f.SetColWidth(sheet, "A", "I", 16); err != nil {
		return fmt.Errorf("%w: column width: %v", ErrWorkbookFailed, err)
	}

	r.addLogo(f, sheet, rc.LogoPath)

	if err := ctx.Err(); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("%w: %v", ErrWorkbookWrite, err)
	}

	r.logger.Debug("Document rendered",
		zap.String("kind", string(rc.Kind)),
		zap.String("number", rc.Header.Number),
		zap.Int("reservation_count", len(rc.Summary.Reservations)),
		zap.Int("payment_count", len(rc.Summary.Payments)))

	return nil
}

// addLogo places the logo in the top-right corner. A missing or unreadable
// logo only degrades the document, it never fails it.
func (r *Renderer) addLogo(f *excelize.File, sheet, logoPath string) {
	if logoPath == "" {
		return
	}
	if _, err := os.Stat(logoPath); err != nil {
		r.logger.Warn("Logo not found, rendering without it",
			zap.String("logo_path", logoPath),
			zap.Error(fmt.Errorf("%w: %v", ErrLogoUnavailable, err)))
		return
	}

	opts := &excelize.GraphicOptions{ScaleX: 0.3, ScaleY: 0.3, LockAspectRatio: true}
	if err := f.AddPicture(sheet, "H1", logoPath, opts); err != nil {
		r.logger.Warn("Failed to embed logo, rendering without it",
			zap.String("logo_path", logoPath),
			zap.Error(err))
	}
}

func orPlaceholder(s string) string {
	if s == "" {
		return invoice.Placeholder
	}
	return s
}
