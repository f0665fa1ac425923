// Package container wires the invoice service's dependencies and manages
// their lifecycle.
package container

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/travelops/hotel-invoicer/internal/application/service"
	"github.com/travelops/hotel-invoicer/internal/config"
	"github.com/travelops/hotel-invoicer/internal/document"
	"github.com/travelops/hotel-invoicer/internal/invoice"
	httpserver "github.com/travelops/hotel-invoicer/internal/interfaces/http"
)

// Container manages all application dependencies and lifecycle.
// Components are initialized in dependency order on Start.
type Container struct {
	config *config.Config
	logger *zap.Logger

	aggregator     *invoice.Aggregator
	renderer       *document.Renderer
	invoiceService service.InvoiceService
	server         *httpserver.Server

	// Lifecycle
	mu     sync.RWMutex
	ready  atomic.Bool
	closed atomic.Bool
}

// HealthStatus represents the health of all components.
type HealthStatus struct {
	Overall    bool                       `json:"overall"`
	Components map[string]ComponentHealth `json:"components"`
}

// ComponentHealth represents health of a single component.
type ComponentHealth struct {
	Healthy bool   `json:"healthy"`
	Message string `json:"message,omitempty"`
}

// NewContainer creates a new container from configuration.
// It does not initialize components - call Start() to initialize.
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Container{
		config: cfg,
		logger: logger,
	}, nil
}

// Start initializes all components:
// 1. Aggregation core
// 2. Document renderer
// 3. Invoice service
// 4. HTTP server
func (c *Container) Start(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return fmt.Errorf("container has been closed")
	}

	if c.ready.Load() {
		return fmt.Errorf("container already started")
	}

	c.aggregator = ProvideAggregator(c.logger)
	c.renderer = ProvideRenderer(&c.config.Document, c.logger)

	svc, err := ProvideInvoiceService(&ServiceDeps{
		Aggregator: c.aggregator,
		Renderer:   c.renderer,
		Config:     c.config,
		Logger:     c.logger,
	})
	if err != nil {
		return fmt.Errorf("init invoice service: %w", err)
	}
	c.invoiceService = svc

	c.server, err = ProvideHTTPServer(&c.config.Server, c.invoiceService, c.logger)
	if err != nil {
		return fmt.Errorf("init http server: %w", err)
	}

	c.ready.Store(true)
	c.logger.Info("Container started successfully",
		zap.Int("companies", len(c.config.Companies)),
		zap.String("default_company", c.config.Document.DefaultCompany))

	return nil
}

// Close stops the HTTP server and marks the container closed.
func (c *Container) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed.Load() {
		return fmt.Errorf("container already closed")
	}

	c.logger.Info("Closing container")

	var err error
	if c.server != nil {
		if stopErr := c.server.Stop(); stopErr != nil {
			c.logger.Error("Failed to stop HTTP server", zap.Error(stopErr))
			err = fmt.Errorf("stop http server: %w", stopErr)
		}
	}

	c.closed.Store(true)
	c.ready.Store(false)

	if err != nil {
		return err
	}

	c.logger.Info("Container closed successfully")
	return nil
}

// Ready returns true when all components are initialized.
func (c *Container) Ready() bool {
	return c.ready.Load()
}

// Health returns health status of all components.
func (c *Container) Health() *HealthStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := &HealthStatus{
		Overall:    true,
		Components: make(map[string]ComponentHealth),
	}

	check := func(name string, initialized bool) {
		if initialized {
			status.Components[name] = ComponentHealth{Healthy: true}
			return
		}
		status.Components[name] = ComponentHealth{
			Healthy: false,
			Message: "not initialized",
		}
		status.Overall = false
	}

	check("aggregator", c.aggregator != nil)
	check("renderer", c.renderer != nil)
	check("invoice_service", c.invoiceService != nil)
	check("http_server", c.server != nil)

	return status
}

// InvoiceService returns the invoice service.
func (c *Container) InvoiceService() service.InvoiceService {
	return c.invoiceService
}

// Server returns the HTTP server.
func (c *Container) Server() *httpserver.Server {
	return c.server
}

// Logger returns the root logger.
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// Config returns the container configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// zapLoggerAdapter adapts zap.Logger to the keysAndValues Logger interfaces
// used by the service and HTTP layers.
type zapLoggerAdapter struct {
	logger *zap.Logger
}

func (a *zapLoggerAdapter) Info(msg string, keysAndValues ...interface{}) {
	a.logger.Info(msg, convertToZapFields(keysAndValues...)...)
}

func (a *zapLoggerAdapter) Warn(msg string, keysAndValues ...interface{}) {
	a.logger.Warn(msg, convertToZapFields(keysAndValues...)...)
}

func (a *zapLoggerAdapter) Error(msg string, keysAndValues ...interface{}) {
	a.logger.Error(msg, convertToZapFields(keysAndValues...)...)
}

// convertToZapFields converts key-value pairs to zap fields.
func convertToZapFields(keysAndValues ...interface{}) []zap.Field {
	fields := make([]zap.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		if err, isErr := keysAndValues[i+1].(error); isErr {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, keysAndValues[i+1]))
	}
	return fields
}
