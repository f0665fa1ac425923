package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/travelops/hotel-invoicer/internal/application/service"
	"github.com/travelops/hotel-invoicer/internal/document"
	"github.com/travelops/hotel-invoicer/internal/invoice"
)

// Handlers contains all HTTP request handlers
type Handlers struct {
	invoiceService service.InvoiceService
	logger         Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(invoiceService service.InvoiceService, logger Logger) *Handlers {
	return &Handlers{
		invoiceService: invoiceService,
		logger:         logger,
	}
}

// Response represents a standard JSON response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// InvoiceForm is the submitted invoice / confirmation letter form.
// Line items arrive as repeated fields, one value per row.
type InvoiceForm struct {
	InvoiceNumber      string `form:"invoice_number"`
	ConfirmationNumber string `form:"confirmation_number"`
	CompanyName        string `form:"company_name"`
	Company            string `form:"company"`
	CustomerName       string `form:"customer_name"`
	IssuedDate         string `form:"issued_date"`
	DueDate            string `form:"due_date"`

	ReservationNumbers []string `form:"reservation_number"`
	Hotels             []string `form:"hotel"`
	CheckIns           []string `form:"check_in"`
	CheckOuts          []string `form:"check_out"`
	ReservationTotals  []string `form:"reservation_total"`

	PaymentReservationNos []string `form:"payment_reservation_no"`
	PaymentDates          []string `form:"payment_date"`
	PaymentMethods        []string `form:"payment_method"`
	PaymentAmounts        []string `form:"payment_amount"`
	PaymentCurrencies     []string `form:"payment_currency"`
	PaymentExchanges      []string `form:"payment_exchange"`
	PaymentNotes          []string `form:"payment_note"`
}

// FormInput converts the form into the aggregation input
func (f *InvoiceForm) FormInput() invoice.FormInput {
	return invoice.FormInput{
		Reservations: invoice.ReservationColumns{
			Numbers:   f.ReservationNumbers,
			Hotels:    f.Hotels,
			CheckIns:  f.CheckIns,
			CheckOuts: f.CheckOuts,
			Totals:    f.ReservationTotals,
		},
		Payments: invoice.PaymentColumns{
			ReservationNumbers: f.PaymentReservationNos,
			Dates:              f.PaymentDates,
			Methods:            f.PaymentMethods,
			Amounts:            f.PaymentAmounts,
			Currencies:         f.PaymentCurrencies,
			ExchangeRates:      f.PaymentExchanges,
			Notes:              f.PaymentNotes,
		},
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: HealthResponse{
			Status:    "healthy",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "1.0.0",
		},
	})
}

// Home handles GET / and lists the document endpoints
func (h *Handlers) Home(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data: gin.H{
			"invoice":      "POST /invoices/generate",
			"confirmation": "POST /invoices/cl/generate",
			"summary":      "POST /api/invoices/summary",
		},
	})
}

// GenerateInvoice handles POST /invoices/generate
func (h *Handlers) GenerateInvoice(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	h.generate(c, &service.DocumentRequest{
		Kind:         document.KindInvoice,
		Number:       form.InvoiceNumber,
		CompanyName:  form.CompanyName,
		Company:      form.Company,
		CustomerName: form.CustomerName,
		IssuedDate:   form.IssuedDate,
		DueDate:      form.DueDate,
		Input:        form.FormInput(),
	})
}

// GenerateConfirmation handles POST /invoices/cl/generate
func (h *Handlers) GenerateConfirmation(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	number := form.ConfirmationNumber
	if number == "" {
		number = form.InvoiceNumber
	}

	h.generate(c, &service.DocumentRequest{
		Kind:         document.KindConfirmation,
		Number:       number,
		CompanyName:  form.CompanyName,
		Company:      form.Company,
		CustomerName: form.CustomerName,
		IssuedDate:   form.IssuedDate,
		DueDate:      form.DueDate,
		Input:        form.FormInput(),
	})
}

// Summarize handles POST /api/invoices/summary
func (h *Handlers) Summarize(c *gin.Context) {
	form, ok := h.bindForm(c)
	if !ok {
		return
	}

	in := form.FormInput()
	summary, err := h.invoiceService.Summarize(c.Request.Context(), &in)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    toSummaryResponse(summary),
	})
}

func (h *Handlers) generate(c *gin.Context, req *service.DocumentRequest) {
	result, err := h.invoiceService.Generate(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *Handlers) bindForm(c *gin.Context) (*InvoiceForm, bool) {
	var form InvoiceForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warn("Invalid form submission", "error", err)
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   "invalid form submission",
		})
		return nil, false
	}
	return &form, true
}

func (h *Handlers) writeError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrInvalidForm) {
		c.JSON(http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.logger.Error("Request failed", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, Response{
		Success: false,
		Error:   "document generation failed",
	})
}
