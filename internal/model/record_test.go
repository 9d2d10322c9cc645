package model

import "testing"

func TestFormatNumericValue(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0"},
		{42, "42"},
		{1.5, "1.5"},
		{100000, "100000"},
		{0.25, "0.25"},
	}

	for _, test := range tests {
		result := FormatNumericValue(test.value)
		if result != test.expected {
			t.Errorf("FormatNumericValue(%v) = %s, expected %s", test.value, result, test.expected)
		}
	}
}

func TestRecord_SearchStrings(t *testing.T) {
	record := NewRecord("1", Fields{Name: "Кедич Мирон", Date: "2025-08-21", NumericValue: 42})

	result := record.SearchStrings()
	expected := []string{"1", "Кедич Мирон", "2025-08-21", "42"}

	if len(result) != len(expected) {
		t.Fatalf("Expected %d search strings, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Errorf("Search string %d: expected %q, got %q", i, expected[i], result[i])
		}
	}
}

func TestRecord_DisplayDate(t *testing.T) {
	tests := []struct {
		date     string
		expected string
	}{
		{"2025-08-21", "21.08.2025"},
		{"2024-02-29", "29.02.2024"},
		{"not-a-date", "not-a-date"},
		{"", ""},
	}

	for _, test := range tests {
		record := Record{Fields: Fields{Date: test.date}}
		result := record.DisplayDate()
		if result != test.expected {
			t.Errorf("DisplayDate() with date=%q = %q, expected %q", test.date, result, test.expected)
		}
	}
}
