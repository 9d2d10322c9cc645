package config

import (
	"time"

	"fyne.io/fyne/v2"
	"golang.org/x/text/language"
)

// Settings keys for Fyne preferences
const (
	KeySearchDebounceMs = "search_debounce_ms"
	KeyPageSize         = "page_size"
	KeyCollationLocale  = "collation_locale"
	KeyVerboseLogging   = "verbose_logging"
)

// Default values
const (
	DefaultSearchDebounceMs = 300
	DefaultPageSize         = 5
	DefaultCollationLocale  = "ru"
	DefaultVerboseLogging   = false
)

// Limits
const (
	MaxSearchDebounceMs = 2000
	MinPageSize         = 1
	MaxPageSize         = 100
)

// Settings manages application configuration. Records themselves are never
// stored here.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetSearchDebounce returns the quiet period before search text is applied
func (s *Settings) GetSearchDebounce() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeySearchDebounceMs, DefaultSearchDebounceMs)
	if ms < 0 || ms > MaxSearchDebounceMs {
		s.SetSearchDebounce(DefaultSearchDebounceMs * time.Millisecond)
		ms = DefaultSearchDebounceMs
	}
	return time.Duration(ms) * time.Millisecond
}

// SetSearchDebounce sets the search debounce window
func (s *Settings) SetSearchDebounce(d time.Duration) {
	ms := int(d / time.Millisecond)
	if ms < 0 {
		ms = 0
	}
	if ms > MaxSearchDebounceMs {
		ms = MaxSearchDebounceMs
	}
	s.app.Preferences().SetInt(KeySearchDebounceMs, ms)
}

// GetPageSize returns the number of rows per table page
func (s *Settings) GetPageSize() int {
	value := s.app.Preferences().Int(KeyPageSize)
	if value <= 0 {
		s.SetPageSize(DefaultPageSize)
		return DefaultPageSize
	}
	return value
}

// SetPageSize sets the number of rows per table page
func (s *Settings) SetPageSize(size int) {
	if size < MinPageSize {
		size = MinPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	s.app.Preferences().SetInt(KeyPageSize, size)
}

// GetCollationLocale returns the locale used to sort names
func (s *Settings) GetCollationLocale() language.Tag {
	value := s.app.Preferences().String(KeyCollationLocale)
	if value == "" {
		s.SetCollationLocale(DefaultCollationLocale)
		value = DefaultCollationLocale
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.MustParse(DefaultCollationLocale)
	}
	return tag
}

// SetCollationLocale sets the BCP 47 locale used to sort names
func (s *Settings) SetCollationLocale(locale string) {
	if locale == "" {
		locale = DefaultCollationLocale
	}
	s.app.Preferences().SetString(KeyCollationLocale, locale)
}

// GetVerboseLogging returns whether debug logging is enabled
func (s *Settings) GetVerboseLogging() bool {
	return s.app.Preferences().BoolWithFallback(KeyVerboseLogging, DefaultVerboseLogging)
}

// SetVerboseLogging enables or disables debug logging
func (s *Settings) SetVerboseLogging(verbose bool) {
	s.app.Preferences().SetBool(KeyVerboseLogging, verbose)
}
