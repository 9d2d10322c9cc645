package store

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"

	"github.com/ytget/record-table/internal/model"
)

// Page is one page of the derived view
type Page struct {
	Records []model.Record
	Number  int // zero-based, clamped to the last page
	Size    int
	Total   int // records in the whole view
	Pages   int // at least 1, even for an empty view
}

// HasPrev returns true if there is a page before this one
func (p Page) HasPrev() bool {
	return p.Number > 0
}

// HasNext returns true if there is a page after this one
func (p Page) HasNext() bool {
	return p.Number < p.Pages-1
}

type viewCache struct {
	valid    bool
	revision uint64
	query    string
	sort     model.Sort
	records  []model.Record
}

func (c *viewCache) matches(revision uint64, query string, sort model.Sort) bool {
	return c.valid && c.revision == revision && c.query == query && c.sort == sort
}

// filterRecords returns a new slice with the records where any search string
// contains query, compared case-insensitively. An empty query keeps everything.
func filterRecords(records []model.Record, query string, folder cases.Caser) []model.Record {
	if query == "" {
		return slices.Clone(records)
	}

	needle := folder.String(query)
	filtered := make([]model.Record, 0, len(records))
	for _, r := range records {
		if matchesQuery(r, needle, folder) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func matchesQuery(r model.Record, needle string, folder cases.Caser) bool {
	for _, value := range r.SearchStrings() {
		if strings.Contains(folder.String(value), needle) {
			return true
		}
	}
	return false
}

// sortRecords orders records in place. Ties keep their canonical order in
// both directions.
func sortRecords(records []model.Record, sort model.Sort, collator *collate.Collator) {
	if !sort.IsActive() {
		return
	}

	compare := columnComparator(sort.Column, collator)
	if sort.Direction == model.SortDescending {
		asc := compare
		compare = func(a, b model.Record) int { return asc(b, a) }
	}
	slices.SortStableFunc(records, compare)
}

func columnComparator(column model.Column, collator *collate.Collator) func(a, b model.Record) int {
	switch column {
	case model.ColumnName:
		return func(a, b model.Record) int {
			return collator.CompareString(a.Name, b.Name)
		}
	case model.ColumnDate:
		return func(a, b model.Record) int {
			return compareDates(a.Date, b.Date)
		}
	default:
		return func(a, b model.Record) int {
			return cmp.Compare(a.NumericValue, b.NumericValue)
		}
	}
}

func compareDates(a, b string) int {
	ta, errA := model.ParseISODate(a)
	tb, errB := model.ParseISODate(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ta.Compare(tb)
}

// paginate cuts page number out of records
func paginate(records []model.Record, number, size int) Page {
	if size < 1 {
		size = 1
	}
	total := len(records)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	number = max(0, min(number, pages-1))

	start := min(number*size, total)
	end := min(start+size, total)
	return Page{
		Records: slices.Clone(records[start:end]),
		Number:  number,
		Size:    size,
		Total:   total,
		Pages:   pages,
	}
}
