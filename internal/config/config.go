package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/subosito/gotenv"

	"github.com/travelops/hotel-invoicer/pkg/utils"
)

// dotEnvFile is read from the working directory before the config file
const dotEnvFile = ".env"

// Config holds all application configuration
type Config struct {
	Server    ServerConfig             `mapstructure:"server"`
	Logger    LoggerConfig             `mapstructure:"logger"`
	Document  DocumentConfig           `mapstructure:"document"`
	Companies map[string]CompanyConfig `mapstructure:"companies"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	MaxFormMemory   int64         `mapstructure:"max_form_memory"`
}

// DocumentConfig holds document rendering configuration
type DocumentConfig struct {
	LogoPath          string `mapstructure:"logo_path"`
	InvoiceSheet      string `mapstructure:"invoice_sheet"`
	ConfirmationSheet string `mapstructure:"confirmation_sheet"`
	DefaultCompany    string `mapstructure:"default_company"`
}

// CompanyConfig describes one issuing company selectable on confirmation letters
type CompanyConfig struct {
	Name     string `mapstructure:"name"`
	City     string `mapstructure:"city"`
	LogoPath string `mapstructure:"logo_path"`
}

// LoggerConfig holds logger configuration
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	OutputPath string `mapstructure:"output_path"`
	Format     string `mapstructure:"format"`
}

// Load loads configuration from file and environment variables.
// A missing config file is not an error; defaults and environment apply.
func Load(configPath string) (*Config, error) {
	if err := loadDotEnv(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	bindEnvVars(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	// viper lower-cases map keys, so the selector must match them
	cfg.Document.DefaultCompany = strings.ToLower(strings.TrimSpace(cfg.Document.DefaultCompany))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadDotEnv populates the environment from a local .env file, if any.
// Variables already set in the environment win.
func loadDotEnv() error {
	if _, err := os.Stat(dotEnvFile); err != nil {
		return nil
	}
	if err := gotenv.Load(dotEnvFile); err != nil {
		return fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.max_form_memory", 8<<20)

	// Document defaults
	v.SetDefault("document.logo_path", "media/logo.jpeg")
	v.SetDefault("document.invoice_sheet", "Invoice")
	v.SetDefault("document.confirmation_sheet", "Confirmation")
	v.SetDefault("document.default_company", "konoz")

	v.SetDefault("companies", map[string]interface{}{
		"konoz": map[string]interface{}{
			"name": "Konoz United Surabaya",
			"city": "Surabaya",
		},
	})

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.format", "json")
}

// bindEnvVars binds environment variables to configuration
func bindEnvVars(v *viper.Viper) {
	v.BindEnv("server.port", "PORT")
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("document.logo_path", "DOCUMENT_LOGO_PATH")
	v.BindEnv("document.default_company", "DEFAULT_COMPANY")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}

	if err := utils.ValidateLogFormat(c.Logger.Format); err != nil {
		return fmt.Errorf("logger.format: %w", err)
	}

	if c.Document.InvoiceSheet == "" {
		return fmt.Errorf("document.invoice_sheet is required")
	}
	if c.Document.ConfirmationSheet == "" {
		return fmt.Errorf("document.confirmation_sheet is required")
	}

	if len(c.Companies) == 0 {
		return fmt.Errorf("at least one company is required")
	}
	if _, ok := c.Companies[c.Document.DefaultCompany]; !ok {
		return fmt.Errorf("document.default_company %q is not a configured company", c.Document.DefaultCompany)
	}

	return nil
}

// Company returns the company profile for the selector, falling back to the default company
func (c *Config) Company(selector string) (string, CompanyConfig) {
	key := strings.ToLower(strings.TrimSpace(selector))
	if company, ok := c.Companies[key]; ok {
		return key, company
	}
	return c.Document.DefaultCompany, c.Companies[c.Document.DefaultCompany]
}
