// Package config provides environment-based configuration loading.
package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends.
const (
	StorageS3 = "s3"
	StorageFS = "fs"
)

// Renderer modes.
const (
	RenderVector    = "vector"
	RenderComposite = "composite"
)

// Config holds the full service configuration.
type Config struct {
	// Server
	ServerPort string

	// Employee bulk source
	EmployeesBucket string
	EmployeesFile   string
	CacheTTL        time.Duration

	// Certificate artifacts
	CertBucket     string
	StorageBackend string
	FSRoot         string

	// Renderer
	RenderMode      string
	CertTemplateKey string
	CertFontPath    string
	CertNameX       float64
	CertNameY       float64

	// Ledger
	DatabaseURL  string
	PledgesTable string

	// Logging
	LogLevel  string
	LogFormat string
}

var (
	ErrMissingDatabaseURL  = errors.New("DATABASE_URL is required")
	ErrInvalidStorage      = errors.New("STORAGE_BACKEND must be s3 or fs")
	ErrInvalidRenderMode   = errors.New("CERT_RENDER_MODE must be vector or composite")
	ErrMissingTemplateKey  = errors.New("CERT_TEMPLATE_KEY is required for composite rendering")
	ErrMissingFontPath     = errors.New("CERT_FONT_PATH is required for composite rendering")
	ErrMissingFSRoot       = errors.New("FS_ROOT is required for fs storage")
	ErrMissingCertBucket   = errors.New("CERT_BUCKET is required for s3 storage")
	ErrMissingEmployeeFile = errors.New("EMPLOYEES_FILE is required")
)

// Load reads configuration from the environment, honoring a .env file when
// present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:      getEnvOrDefault("SERVER_PORT", "8080"),
		EmployeesBucket: getEnvOrDefault("EMPLOYEES_BUCKET", "employee-data-bucket"),
		EmployeesFile:   getEnvOrDefault("EMPLOYEES_FILE", "employees.csv"),
		CacheTTL:        time.Duration(getEnvOrDefaultInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		CertBucket:      getEnvOrDefault("CERT_BUCKET", "certificates-bucket"),
		StorageBackend:  getEnvOrDefault("STORAGE_BACKEND", StorageS3),
		FSRoot:          os.Getenv("FS_ROOT"),
		RenderMode:      getEnvOrDefault("CERT_RENDER_MODE", RenderVector),
		CertTemplateKey: os.Getenv("CERT_TEMPLATE_KEY"),
		CertFontPath:    os.Getenv("CERT_FONT_PATH"),
		CertNameX:       getEnvOrDefaultFloat("CERT_NAME_X", 0),
		CertNameY:       getEnvOrDefaultFloat("CERT_NAME_Y", 0),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		PledgesTable:    getEnvOrDefault("PLEDGES_TABLE", "fraud_awareness_pledges"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       getEnvOrDefault("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.DatabaseURL == "" {
		return ErrMissingDatabaseURL
	}
	if c.EmployeesFile == "" {
		return ErrMissingEmployeeFile
	}

	switch c.StorageBackend {
	case StorageS3:
		if c.CertBucket == "" {
			return ErrMissingCertBucket
		}
	case StorageFS:
		if c.FSRoot == "" {
			return ErrMissingFSRoot
		}
	default:
		return ErrInvalidStorage
	}

	switch c.RenderMode {
	case RenderVector:
	case RenderComposite:
		if c.CertTemplateKey == "" {
			return ErrMissingTemplateKey
		}
		if c.CertFontPath == "" {
			return ErrMissingFontPath
		}
	default:
		return ErrInvalidRenderMode
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvOrDefaultInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}

func getEnvOrDefaultFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return defaultValue
		}
		return parsed
	}
	return defaultValue
}
