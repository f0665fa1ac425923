package container

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/travelops/hotel-invoicer/internal/application/service"
	"github.com/travelops/hotel-invoicer/internal/config"
	"github.com/travelops/hotel-invoicer/internal/document"
	"github.com/travelops/hotel-invoicer/internal/invoice"
	httpserver "github.com/travelops/hotel-invoicer/internal/interfaces/http"
	"github.com/travelops/hotel-invoicer/pkg/utils"
)

// ProvideAggregator creates the financial aggregation core.
func ProvideAggregator(logger *zap.Logger) *invoice.Aggregator {
	return invoice.NewAggregator(utils.WithComponent(logger, "aggregator"))
}

// ProvideRenderer creates the workbook renderer from document settings.
func ProvideRenderer(cfg *config.DocumentConfig, logger *zap.Logger) *document.Renderer {
	return document.NewRenderer(document.Config{
		InvoiceSheet:      cfg.InvoiceSheet,
		ConfirmationSheet: cfg.ConfirmationSheet,
	}, utils.WithComponent(logger, "renderer"))
}

// ServiceDeps holds dependencies required for creating the invoice service.
type ServiceDeps struct {
	Aggregator service.Aggregator
	Renderer   service.Renderer
	Config     *config.Config
	Logger     *zap.Logger
}

// ProvideInvoiceService creates the invoice service.
func ProvideInvoiceService(deps *ServiceDeps) (service.InvoiceService, error) {
	if deps == nil {
		return nil, fmt.Errorf("service dependencies are required")
	}
	if deps.Aggregator == nil {
		return nil, fmt.Errorf("aggregator is required")
	}
	if deps.Renderer == nil {
		return nil, fmt.Errorf("renderer is required")
	}
	if deps.Config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if deps.Logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return service.NewInvoiceService(
		deps.Aggregator,
		deps.Renderer,
		deps.Config,
		deps.Config.Document.LogoPath,
		&zapLoggerAdapter{logger: utils.WithComponent(deps.Logger, "invoice_service")},
	), nil
}

// ProvideHTTPServer creates the gin HTTP server.
func ProvideHTTPServer(cfg *config.ServerConfig, invoiceService service.InvoiceService, logger *zap.Logger) (*httpserver.Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("server config is required")
	}
	if invoiceService == nil {
		return nil, fmt.Errorf("invoice service is required")
	}

	return httpserver.NewServer(httpserver.ServerConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
		MaxFormMemory:   cfg.MaxFormMemory,
	}, invoiceService, &zapLoggerAdapter{logger: utils.WithComponent(logger, "http")}), nil
}
