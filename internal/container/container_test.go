package container

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/travelops/hotel-invoicer/internal/config"
	"github.com/travelops/hotel-invoicer/internal/invoice"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            18080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: time.Second,
		},
		Logger: config.LoggerConfig{Level: "info", OutputPath: "stdout", Format: "json"},
		Document: config.DocumentConfig{
			InvoiceSheet:      "Invoice",
			ConfirmationSheet: "Confirmation",
			DefaultCompany:    "konoz",
		},
		Companies: map[string]config.CompanyConfig{
			"konoz": {Name: "Konoz United Surabaya", City: "Surabaya"},
		},
	}
}

func TestNewContainer(t *testing.T) {
	t.Run("requires config", func(t *testing.T) {
		_, err := NewContainer(nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("requires logger", func(t *testing.T) {
		_, err := NewContainer(testConfig(), nil)
		assert.Error(t, err)
	})

	t.Run("rejects invalid config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Document.DefaultCompany = "missing"

		_, err := NewContainer(cfg, zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config")
	})
}

func TestContainer_Lifecycle(t *testing.T) {
	c, err := NewContainer(testConfig(), zap.NewNop())
	require.NoError(t, err)

	assert.False(t, c.Ready())
	assert.False(t, c.Health().Overall)

	require.NoError(t, c.Start(context.Background()))
	assert.True(t, c.Ready())
	assert.NotNil(t, c.InvoiceService())
	assert.NotNil(t, c.Server())
	assert.Equal(t, "127.0.0.1:18080", c.Server().Address())

	health := c.Health()
	assert.True(t, health.Overall)
	assert.Len(t, health.Components, 4)

	assert.Error(t, c.Start(context.Background()), "second start")

	require.NoError(t, c.Close())
	assert.False(t, c.Ready())
	assert.Error(t, c.Close(), "second close")
	assert.Error(t, c.Start(context.Background()), "start after close")
}

func TestContainer_ServiceUsesConfiguredCompanies(t *testing.T) {
	c, err := NewContainer(testConfig(), zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, c.Start(context.Background()))
	defer c.Close()

	summary, err := c.InvoiceService().Summarize(context.Background(), &invoice.FormInput{
		Reservations: invoice.ReservationColumns{
			Numbers:   []string{"R1"},
			Hotels:    []string{"Hilton"},
			CheckIns:  []string{""},
			CheckOuts: []string{""},
			Totals:    []string{"1000"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1000), summary.TotalRemainingBase)
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	adapter := &zapLoggerAdapter{logger: zap.New(core)}

	adapter.Info("built", "count", 2, 42, "ignored", "dangling")
	adapter.Warn("rejected", "error", errors.New("boom"))
	adapter.Error("failed")

	entries := logs.All()
	require.Len(t, entries, 3)

	assert.Equal(t, "built", entries[0].Message)
	assert.Equal(t, map[string]interface{}{"count": int64(2)}, entries[0].ContextMap())

	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
}
