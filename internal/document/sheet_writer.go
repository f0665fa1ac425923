package document

import (
	"github.com/xuri/excelize/v2"

	"github.com/travelops/hotel-invoicer/internal/invoice"
)

// numFmtThousands is the built-in "#,##0" number format
const numFmtThousands = 3

type sheetStyles struct {
	title  int
	header int
	amount int
	total  int
	status map[invoice.Status]int
}

// sheetWriter writes cells by (column, row) and keeps the first error,
// so table code can stay linear.
type sheetWriter struct {
	f      *excelize.File
	sheet  string
	styles sheetStyles
	err    error
}

func newSheetWriter(f *excelize.File, sheet string) (*sheetWriter, error) {
	sw := &sheetWriter{f: f, sheet: sheet}

	var err error
	if sw.styles.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	}); err != nil {
		return nil, err
	}
	if sw.styles.header, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:   excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1F4E78"}},
		Border: []excelize.Border{{Type: "bottom", Color: "#000000", Style: 1}},
	}); err != nil {
		return nil, err
	}
	if sw.styles.amount, err = f.NewStyle(&excelize.Style{NumFmt: numFmtThousands}); err != nil {
		return nil, err
	}
	if sw.styles.total, err = f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		NumFmt: numFmtThousands,
	}); err != nil {
		return nil, err
	}

	colors := map[invoice.Status]string{
		invoice.StatusPaid:    "#C6EFCE",
		invoice.StatusPartial: "#FFEB9C",
		invoice.StatusUnpaid:  "#FFC7CE",
	}
	sw.styles.status = make(map[invoice.Status]int, len(colors))
	for status, color := range colors {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{color}},
		})
		if err != nil {
			return nil, err
		}
		sw.styles.status[status] = id
	}

	return sw, nil
}

func (sw *sheetWriter) set(col, row int, value interface{}) {
	if sw.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		sw.err = err
		return
	}
	sw.err = sw.f.SetCellValue(sw.sheet, cell, value)
}

func (sw *sheetWriter) text(col, row int, value string) {
	sw.set(col, row, value)
}

// row writes values left to right starting at column A
func (sw *sheetWriter) row(row int, values ...interface{}) {
	for i, v := range values {
		sw.set(i+1, row, v)
	}
}

func (sw *sheetWriter) style(col1, row1, col2, row2, styleID int) {
	if sw.err != nil || styleID == 0 {
		return
	}
	from, err := excelize.CoordinatesToCellName(col1, row1)
	if err != nil {
		sw.err = err
		return
	}
	to, err := excelize.CoordinatesToCellName(col2, row2)
	if err != nil {
		sw.err = err
		return
	}
	sw.err = sw.f.SetCellStyle(sw.sheet, from, to, styleID)
}

// header writes the company block and document title, returning the next free row
func (sw *sheetWriter) header(rc *RenderContext, title, numberLabel string) int {
	sw.text(1, 1, orPlaceholder(rc.Header.CompanyName))
	sw.style(1, 1, 1, 1, sw.styles.title)
	sw.text(1, 2, rc.Header.CompanyCity)
	sw.text(5, 1, title)
	sw.style(5, 1, 5, 1, sw.styles.title)

	sw.row(4, numberLabel, orPlaceholder(rc.Header.Number))
	sw.row(5, "Customer", orPlaceholder(rc.Header.CustomerName))
	sw.row(6, "Issued Date", formatDate(rc.Header.IssuedDate))

	return 7
}

// reservationTable writes the reservations with their balances, returning the next free row
func (sw *sheetWriter) reservationTable(row int, balances []invoice.ReservationBalance) int {
	sw.row(row, "No", "Reservation #", "Hotel", "Check-in", "Check-out", "Total (SAR)", "Remaining (SAR)", "Status")
	sw.style(1, row, 8, row, sw.styles.header)
	row++

	for i, b := range balances {
		sw.row(row, i+1, b.Number, b.Hotel, formatDate(b.CheckIn), formatDate(b.CheckOut), b.TotalBase, b.RemainingBase, string(b.Status))
		sw.style(6, row, 7, row, sw.styles.amount)
		sw.style(8, row, 8, row, sw.styles.status[b.Status])
		row++
	}

	return row
}

// paymentTable writes the payments, returning the next free row
func (sw *sheetWriter) paymentTable(row int, payments []invoice.Payment) int {
	sw.row(row, "No", "Reservation #", "Date", "Method", "Amount", "Currency", "Rate", "Amount (SAR)", "Note")
	sw.style(1, row, 9, row, sw.styles.header)
	row++

	for i, p := range payments {
		sw.row(row, i+1, p.ReservationNumber, formatDate(p.Date), p.Method,
			p.AmountDisplay(), p.Currency, p.ExchangeDisplay(), p.AmountBase, p.Note)
		sw.style(8, row, 8, row, sw.styles.amount)
		row++
	}

	return row
}

// totals writes the three grand totals, returning the next free row
func (sw *sheetWriter) totals(row int, s *invoice.Summary) int {
	lines := []struct {
		label string
		value int64
	}{
		{"Total Reservations (SAR)", s.TotalReservationBase},
		{"Total Paid (SAR)", s.TotalPaidBase},
		{"Remaining (SAR)", s.TotalRemainingBase},
	}

	for _, l := range lines {
		sw.text(1, row, l.label)
		sw.set(2, row, l.value)
		sw.style(2, row, 2, row, sw.styles.total)
		row++
	}

	return row
}
