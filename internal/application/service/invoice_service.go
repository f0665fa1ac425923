package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/travelops/hotel-invoicer/internal/config"
	"github.com/travelops/hotel-invoicer/internal/document"
	"github.com/travelops/hotel-invoicer/internal/invoice"
	"github.com/travelops/hotel-invoicer/pkg/utils"
)

// ErrInvalidForm is returned when a submission fails cross-field validation
var ErrInvalidForm = errors.New("invalid form submission")

// Logger interface for logging operations
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Aggregator builds the financial summary of a submission
type Aggregator interface {
	Aggregate(ctx context.Context, in *invoice.FormInput) *invoice.Summary
}

// Renderer writes a document for a render context
type Renderer interface {
	Render(ctx context.Context, rc *document.RenderContext, w io.Writer) error
}

// CompanyDirectory resolves a company selector to a company profile
type CompanyDirectory interface {
	Company(selector string) (string, config.CompanyConfig)
}

// DocumentRequest is one submitted invoice or confirmation letter form
type DocumentRequest struct {
	Kind         document.Kind
	Number       string
	CompanyName  string // free text; overrides the company profile name when set
	Company      string // company selector
	CustomerName string
	IssuedDate   string
	DueDate      string
	Input        invoice.FormInput
}

// DocumentResult is a rendered document ready to be sent
type DocumentResult struct {
	Filename    string
	ContentType string
	Content     []byte
	Summary     *invoice.Summary
}

// InvoiceService produces summaries and documents from submitted forms
type InvoiceService interface {
	Summarize(ctx context.Context, in *invoice.FormInput) (*invoice.Summary, error)
	Generate(ctx context.Context, req *DocumentRequest) (*DocumentResult, error)
}

type invoiceServiceImpl struct {
	aggregator      Aggregator
	renderer        Renderer
	companies       CompanyDirectory
	defaultLogoPath string
	logger          Logger
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	aggregator Aggregator,
	renderer Renderer,
	companies CompanyDirectory,
	defaultLogoPath string,
	logger Logger,
) InvoiceService {
	return &invoiceServiceImpl{
		aggregator:      aggregator,
		renderer:        renderer,
		companies:       companies,
		defaultLogoPath: defaultLogoPath,
		logger:          logger,
	}
}

// Summarize aggregates the line items and validates the stays
func (s *invoiceServiceImpl) Summarize(ctx context.Context, in *invoice.FormInput) (*invoice.Summary, error) {
	summary := s.aggregator.Aggregate(ctx, in)

	for _, b := range summary.Reservations {
		if err := utils.ValidateStay(b.Number, b.CheckIn, b.CheckOut); err != nil {
			s.logger.Warn("Rejected submission", "reservation_number", b.Number, "error", err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidForm, err)
		}
	}

	s.logger.Info("Invoice summary built",
		"reservations", len(summary.Reservations),
		"payments", len(summary.Payments),
		"total_reservation_sar", summary.TotalReservationBase,
		"total_paid_sar", summary.TotalPaidBase,
		"total_remaining_sar", summary.TotalRemainingBase,
	)

	return summary, nil
}

// Generate summarizes the form and renders the requested document
func (s *invoiceServiceImpl) Generate(ctx context.Context, req *DocumentRequest) (*DocumentResult, error) {
	selector, company := s.companies.Company(req.Company)

	filename, err := document.Filename(req.Kind, req.Number, selector)
	if err != nil {
		return nil, err
	}

	summary, err := s.Summarize(ctx, &req.Input)
	if err != nil {
		return nil, err
	}

	companyName := utils.SanitizeString(req.CompanyName)
	if companyName == "" {
		companyName = company.Name
	}
	logoPath := company.LogoPath
	if logoPath == "" {
		logoPath = s.defaultLogoPath
	}

	rc := &document.RenderContext{
		Kind:    req.Kind,
		Company: selector,
		Header: document.Header{
			Number:       utils.SanitizeString(req.Number),
			CompanyName:  companyName,
			CompanyCity:  company.City,
			CustomerName: utils.SanitizeString(req.CustomerName),
			IssuedDate:   invoice.ParseDate(req.IssuedDate),
			DueDate:      invoice.ParseDate(req.DueDate),
		},
		Summary:  summary,
		LogoPath: logoPath,
	}

	var buf bytes.Buffer
	if err := s.renderer.Render(ctx, rc, &buf); err != nil {
		s.logger.Error("Document rendering failed", "kind", req.Kind, "number", req.Number, "error", err)
		return nil, fmt.Errorf("failed to render %s: %w", req.Kind, err)
	}

	s.logger.Info("Document generated",
		"kind", req.Kind,
		"filename", filename,
		"company", selector,
		"bytes", buf.Len(),
	)

	return &DocumentResult{
		Filename:    filename,
		ContentType: document.ContentType,
		Content:     buf.Bytes(),
		Summary:     summary,
	}, nil
}
