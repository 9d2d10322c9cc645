package store

import (
	"golang.org/x/text/language"

	"github.com/ytget/record-table/internal/model"
)

// RecordStore defines the interface the presentation layer uses to read and
// mutate records.
type RecordStore interface {
	SetUpdateCallback(func(Event))
	Add(fields model.Fields) (model.Record, error)
	Update(key string, fields model.Fields) (model.Record, error)
	Delete(key string) error
	Get(key string) (model.Record, bool)
	Records() []model.Record
	Len() int

	// Search filters the canonical records without touching the applied query
	Search(query string) []model.Record

	// SetQuery applies the (already debounced) search text to the view
	SetQuery(query string)
	Query() string

	// SortBy sets the display order of the view; SortNone restores canonical order
	SortBy(column model.Column, direction model.SortDirection)
	Sort() model.Sort
	SetLocale(locale language.Tag)

	View() []model.Record
	Page(number, size int) Page
}

// EventKind names the outcome of a store operation
type EventKind string

const (
	EventAdded        EventKind = "added"
	EventUpdated      EventKind = "updated"
	EventDeleted      EventKind = "deleted"
	EventQueryChanged EventKind = "query"
	EventSortChanged  EventKind = "sort"
)

// Event is delivered to the update callback after an operation completes
type Event struct {
	Kind EventKind
	Key  string
	// Existed is false when Delete was called with a key that was not stored.
	// The deletion is still reported as successful.
	Existed bool
}
