package model

import (
	"strconv"
)

// Fields holds the editable part of a record. Updates replace all of them at once.
type Fields struct {
	Name         string  `yaml:"name"`
	Date         string  `yaml:"date"` // ISO YYYY-MM-DD
	NumericValue float64 `yaml:"numericValue"`
}

// Record represents a single table row
type Record struct {
	Key string `yaml:"key"`
	Fields `yaml:",inline"`
}

// NewRecord builds a record from a key and its fields
func NewRecord(key string, fields Fields) Record {
	return Record{Key: key, Fields: fields}
}

// FormatNumericValue returns the shortest decimal form of v ("42", "1.5").
func FormatNumericValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SearchStrings returns the string forms that a search query is matched against:
// the key, the name, the raw ISO date and the decimal numeric value.
func (r Record) SearchStrings() []string {
	return []string{
		r.Key,
		r.Name,
		r.Date,
		FormatNumericValue(r.NumericValue),
	}
}

// DisplayDate returns the date formatted for the table (DD.MM.YYYY), or the raw
// value if it cannot be parsed.
func (r Record) DisplayDate() string {
	t, err := ParseISODate(r.Date)
	if err != nil {
		return r.Date
	}
	return FormatDisplayDate(t)
}
