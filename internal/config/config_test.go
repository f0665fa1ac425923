package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, "Invoice", cfg.Document.InvoiceSheet)
	assert.Equal(t, "Confirmation", cfg.Document.ConfirmationSheet)
	assert.Equal(t, "konoz", cfg.Document.DefaultCompany)
	assert.Equal(t, "Konoz United Surabaya", cfg.Companies["konoz"].Name)
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
  read_timeout: 15s
document:
  default_company: alfa
companies:
  alfa:
    name: Alfa Tours
    city: Jeddah
    logo_path: media/alfa.png
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "alfa", cfg.Document.DefaultCompany)
	assert.Equal(t, "Alfa Tours", cfg.Companies["alfa"].Name)
	assert.Equal(t, "media/alfa.png", cfg.Companies["alfa"].LogoPath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "7070")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "port out of range",
			content: "server:\n  port: 70000\n",
		},
		{
			name:    "unknown log format",
			content: "logger:\n  format: xml\n",
		},
		{
			name:    "default company not configured",
			content: "document:\n  default_company: nowhere\n",
		},
		{
			name:    "malformed yaml",
			content: "server: [\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestConfig_Company(t *testing.T) {
	cfg := &Config{
		Document: DocumentConfig{DefaultCompany: "konoz"},
		Companies: map[string]CompanyConfig{
			"konoz": {Name: "Konoz United Surabaya", City: "Surabaya"},
			"alfa":  {Name: "Alfa Tours", City: "Jeddah"},
		},
	}

	tests := []struct {
		selector string
		wantKey  string
		wantName string
	}{
		{selector: "alfa", wantKey: "alfa", wantName: "Alfa Tours"},
		{selector: "  ALFA ", wantKey: "alfa", wantName: "Alfa Tours"},
		{selector: "", wantKey: "konoz", wantName: "Konoz United Surabaya"},
		{selector: "unknown", wantKey: "konoz", wantName: "Konoz United Surabaya"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			key, company := cfg.Company(tt.selector)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantName, company.Name)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	t.Run("values applied", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("DOCUMENT_LOGO_PATH=media/dotenv.png\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("DOCUMENT_LOGO_PATH") })

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "media/dotenv.png", cfg.Document.LogoPath)
	})

	t.Run("malformed file reported", func(t *testing.T) {
		chdir(t, t.TempDir())
		require.NoError(t, os.WriteFile(".env", []byte("this line is not an assignment\n"), 0644))

		_, err := Load("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), ".env")
	})
}

func TestLoad_DefaultCompanyCaseInsensitive(t *testing.T) {
	t.Setenv("DEFAULT_COMPANY", "Konoz")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "konoz", cfg.Document.DefaultCompany)
	key, company := cfg.Company("")
	assert.Equal(t, "konoz", key)
	assert.Equal(t, "Konoz United Surabaya", company.Name)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
