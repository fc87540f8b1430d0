// Package config provides centralized configuration for the course catalog tool.
// Defaults come from struct tags, command line flags override them, and everything is validated before use.
package config

import (
	"fmt"
	"strings"

	"github.com/gostonefire/coursecatalog/hashfunc"
	"github.com/gostonefire/coursecatalog/internal/hash"
)

// Hash algorithm names accepted by CatalogConfig.Hash
const (
	HashPolynomial = "polynomial"
	HashCRC32      = "crc32"
)

// Config holds all application configuration.
type Config struct {
	Catalog CatalogConfig
	Logging LoggingConfig
	Display DisplayConfig
}

// CatalogConfig holds course file and table settings.
type CatalogConfig struct {
	// File is the course file to validate and load
	File string `default:"./CS 300 ABCU_Advising_Program_Input.csv"`

	// TableSize is the number of buckets, 0 sizes the table to the validated row count (default: 0)
	TableSize int64 `default:"0"`

	// Hash is the bucket selection algorithm: polynomial or crc32 (default: polynomial)
	Hash string `default:"polynomial"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	Level string `default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `default:"text"`
}

// DisplayConfig holds menu and output settings.
type DisplayConfig struct {
	// Plain selects the line driven menu instead of the interactive form (default: false)
	Plain bool `default:"false"`

	// AccentColor is the lipgloss color used for titles and the menu theme (default: 99)
	AccentColor string `default:"99"`
}

// HashAlgorithm returns the configured hash algorithm, nil meaning the table's internal polynomial hash.
func (c *CatalogConfig) HashAlgorithm() hashfunc.HashAlgorithm {
	if strings.ToLower(c.Hash) == HashCRC32 {
		return hash.NewCRC32HashAlgorithm(1)
	}
	return nil
}

// Validate checks all configuration values for consistency.
func (c *Config) Validate() error {
	var errs []string

	if c.Catalog.File == "" {
		errs = append(errs, "catalog file must not be empty")
	}
	if c.Catalog.TableSize < 0 {
		errs = append(errs, fmt.Sprintf("table size must be >= 0, got %d", c.Catalog.TableSize))
	}
	switch strings.ToLower(c.Catalog.Hash) {
	case HashPolynomial, HashCRC32:
	default:
		errs = append(errs, fmt.Sprintf("hash must be %s or %s, got %q", HashPolynomial, HashCRC32, c.Catalog.Hash))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Sprintf("log level must be debug, info, warn or error, got %q", c.Logging.Level))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log format must be text or json, got %q", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}

	return nil
}
