package config

import (
	"fmt"
	"time"
)

// CurrentVersion is the preferences file format version.
const CurrentVersion = 1

// Default preference values
const (
	DefaultPageSize       = 6
	DefaultDebounceMillis = 500
	DefaultView           = "list"
	DefaultLocale         = "en-US"
	DefaultCurrencySymbol = "$"
)

// Preferences is the entire user preferences file.
type Preferences struct {
	Version        int    `yaml:"version"`
	PageSize       int    `yaml:"page_size"`           // Products per page
	DebounceMillis int    `yaml:"debounce_ms"`         // Search debounce window
	DefaultView    string `yaml:"default_view"`        // "list" or "card"
	Locale         string `yaml:"locale"`              // BCP 47 tag used for price grouping
	CurrencySymbol string `yaml:"currency_symbol"`     // Glyph printed before prices
	SeedFile       string `yaml:"seed_file,omitempty"` // Optional dataset replacing the built-in one
}

// NewPreferences returns preferences with default values.
func NewPreferences() *Preferences {
	return &Preferences{
		Version:        CurrentVersion,
		PageSize:       DefaultPageSize,
		DebounceMillis: DefaultDebounceMillis,
		DefaultView:    DefaultView,
		Locale:         DefaultLocale,
		CurrencySymbol: DefaultCurrencySymbol,
	}
}

// DebounceDelay returns the debounce window as a duration.
func (p *Preferences) DebounceDelay() time.Duration {
	return time.Duration(p.DebounceMillis) * time.Millisecond
}

// Validate checks value ranges.
func (p *Preferences) Validate() error {
	if p.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version: %d (expected %d)", p.Version, CurrentVersion)
	}
	if p.PageSize < 1 || p.PageSize > 100 {
		return fmt.Errorf("page_size must be 1-100, got %d", p.PageSize)
	}
	if p.DebounceMillis < 1 || p.DebounceMillis > 10000 {
		return fmt.Errorf("debounce_ms must be 1-10000, got %d", p.DebounceMillis)
	}
	if p.DefaultView != "list" && p.DefaultView != "card" {
		return fmt.Errorf("default_view must be 'list' or 'card', got '%s'", p.DefaultView)
	}
	return nil
}
