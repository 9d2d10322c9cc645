package model

// Column identifies a sortable table column
type Column string

const (
	ColumnName         Column = "name"
	ColumnDate         Column = "date"
	ColumnNumericValue Column = "numericValue"
)

// String returns the string representation of Column
func (c Column) String() string {
	return string(c)
}

// IsValid returns true for the three data columns
func (c Column) IsValid() bool {
	return c == ColumnName || c == ColumnDate || c == ColumnNumericValue
}

// SortDirection is the display order applied to a column
type SortDirection string

const (
	SortNone       SortDirection = ""
	SortAscending  SortDirection = "ascend"
	SortDescending SortDirection = "descend"
)

// String returns the string representation of SortDirection
func (d SortDirection) String() string {
	if d == SortNone {
		return "none"
	}
	return string(d)
}

// Next returns the direction a header click moves to: unsorted, ascending,
// descending, then back to unsorted.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAscending
	case SortAscending:
		return SortDescending
	default:
		return SortNone
	}
}

// Sort pairs a column with a direction. The zero value means canonical order.
type Sort struct {
	Column    Column
	Direction SortDirection
}

// IsActive returns true if the sort reorders the view
func (s Sort) IsActive() bool {
	return s.Column.IsValid() && s.Direction != SortNone
}
