// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// RateLimitConfig provides the per-IP limit for expensive routes.
type RateLimitConfig interface {
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// LLMConfig provides settings for the text-generation backend.
type LLMConfig interface {
	GetLLMProvider() string
	GetLLMAPIKey() string
	GetLLMModel() string
	GetLLMBaseURL() string
	GetLLMTimeout() time.Duration
	IsLLMEnabled() bool
}

// PricingSource provides the process-wide pricing constants.
type PricingSource interface {
	GetLaborRate() float64
	GetMaterialMarkup() float64
	GetTaxRate() float64
}

// BusinessConfig provides the details printed on quote documents.
type BusinessConfig interface {
	GetBusinessName() string
	GetBusinessAddress() string
	GetBusinessPhone() string
	GetBusinessEmail() string
	GetPhoneRegion() string
}

// CatalogConfig provides the optional catalog override file.
type CatalogConfig interface {
	GetCatalogFile() string
}

// GotenbergConfig provides settings for the Gotenberg HTML-to-PDF service.
type GotenbergConfig interface {
	GetGotenbergURL() string
	GetGotenbergUsername() string
	GetGotenbergPassword() string
	IsGotenbergEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	CORSAllowCreds    bool
	RateLimitRPS      float64
	RateLimitBurst    int
	LLMProvider       string
	LLMAPIKey         string
	LLMModel          string
	LLMBaseURL        string
	LLMTimeout        time.Duration
	LaborRate         float64
	MaterialMarkup    float64
	TaxRate           float64
	BusinessName      string
	BusinessAddress   string
	BusinessPhone     string
	BusinessEmail     string
	PhoneRegion       string
	CatalogFile       string
	GotenbergURL      string
	GotenbergUsername string
	GotenbergPassword string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// RateLimitConfig implementation
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int   { return c.RateLimitBurst }

// LLMConfig implementation
func (c *Config) GetLLMProvider() string       { return c.LLMProvider }
func (c *Config) GetLLMAPIKey() string         { return c.LLMAPIKey }
func (c *Config) GetLLMModel() string          { return c.LLMModel }
func (c *Config) GetLLMBaseURL() string        { return c.LLMBaseURL }
func (c *Config) GetLLMTimeout() time.Duration { return c.LLMTimeout }
func (c *Config) IsLLMEnabled() bool           { return c.LLMAPIKey != "" }

// PricingSource implementation
func (c *Config) GetLaborRate() float64      { return c.LaborRate }
func (c *Config) GetMaterialMarkup() float64 { return c.MaterialMarkup }
func (c *Config) GetTaxRate() float64        { return c.TaxRate }

// BusinessConfig implementation
func (c *Config) GetBusinessName() string    { return c.BusinessName }
func (c *Config) GetBusinessAddress() string { return c.BusinessAddress }
func (c *Config) GetBusinessPhone() string   { return c.BusinessPhone }
func (c *Config) GetBusinessEmail() string   { return c.BusinessEmail }
func (c *Config) GetPhoneRegion() string     { return c.PhoneRegion }

// CatalogConfig implementation
func (c *Config) GetCatalogFile() string { return c.CatalogFile }

// GotenbergConfig implementation
func (c *Config) GetGotenbergURL() string      { return c.GotenbergURL }
func (c *Config) GetGotenbergUsername() string { return c.GotenbergUsername }
func (c *Config) GetGotenbergPassword() string { return c.GotenbergPassword }
func (c *Config) IsGotenbergEnabled() bool     { return c.GotenbergURL != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment
// without reading any .env file.
func FromEnv() (*Config, error) {
	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if len(corsOrigins) == 0 || containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	provider := strings.ToLower(strings.TrimSpace(getEnv("LLM_PROVIDER", ProviderOpenAI)))

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8000"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		CORSAllowCreds:    strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		LLMProvider:       provider,
		LLMAPIKey:         getEnv("LLM_API_KEY", getEnv("OPENAI_API_KEY", "")),
		LLMModel:          getEnv("LLM_MODEL", getEnv("OPENAI_MODEL", defaultModel(provider))),
		LLMBaseURL:        getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
		BusinessName:      getEnv("BUSINESS_NAME", "TapQuote Electrical"),
		BusinessAddress:   getEnv("BUSINESS_ADDRESS", "123 Main Street, Sydney NSW 2000"),
		BusinessPhone:     getEnv("BUSINESS_PHONE", "(02) 9374 4000"),
		BusinessEmail:     getEnv("BUSINESS_EMAIL", "quotes@tapquote.com.au"),
		PhoneRegion:       getEnv("PHONE_REGION", "AU"),
		CatalogFile:       getEnv("CATALOG_FILE", ""),
		GotenbergURL:      strings.TrimRight(getEnv("GOTENBERG_URL", ""), "/"),
		GotenbergUsername: getEnv("GOTENBERG_USERNAME", ""),
		GotenbergPassword: getEnv("GOTENBERG_PASSWORD", ""),
	}

	var err error
	if cfg.LLMTimeout, err = parseDuration("LLM_TIMEOUT", "60s"); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = parseFloat("RATE_LIMIT_RPS", "1"); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = parseInt("RATE_LIMIT_BURST", "5"); err != nil {
		return nil, err
	}
	if cfg.LaborRate, err = parseNonNegative("LABOR_RATE", "85.0"); err != nil {
		return nil, err
	}
	if cfg.MaterialMarkup, err = parseNonNegative("MATERIAL_MARKUP", "20.0"); err != nil {
		return nil, err
	}
	if cfg.TaxRate, err = parseNonNegative("TAX_RATE", "10.0"); err != nil {
		return nil, err
	}

	if cfg.LLMProvider != ProviderOpenAI && cfg.LLMProvider != ProviderGemini {
		return nil, fmt.Errorf("LLM_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, cfg.LLMProvider)
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func defaultModel(provider string) string {
	if provider == ProviderGemini {
		return "gemini-2.0-flash"
	}
	return "gpt-3.5-turbo"
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func parseInt(key, fallback string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(getEnv(key, fallback)))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseFloat(key, fallback string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(getEnv(key, fallback)), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return v, nil
}

func parseNonNegative(key, fallback string) (float64, error) {
	v, err := parseFloat(key, fallback)
	if err != nil {
		return 0, err
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %v", key, v)
	}
	return v, nil
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
