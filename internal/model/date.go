package model

import (
	"strings"
	"time"
)

// Date layouts
const (
	ISODateLayout     = "2006-01-02"
	DisplayDateLayout = "02.01.2006"
)

// ParseISODate parses a stored YYYY-MM-DD date
func ParseISODate(s string) (time.Time, error) {
	return time.Parse(ISODateLayout, strings.TrimSpace(s))
}

// FormatISODate formats a calendar date for storage. Only the year, month and
// day of t are kept.
func FormatISODate(t time.Time) string {
	return t.Format(ISODateLayout)
}

// FormatDisplayDate formats a date the way the table shows it
func FormatDisplayDate(t time.Time) string {
	return t.Format(DisplayDateLayout)
}
