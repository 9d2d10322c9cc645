package store

import (
	"errors"
	"math"
	"unicode/utf8"

	"github.com/ytget/record-table/internal/model"
)

// MinNameLength is the minimum number of characters in a record name
const MinNameLength = 2

// ValidateName checks the name rules: required, at least MinNameLength characters.
func ValidateName(name string) error {
	if name == "" {
		return errors.New(MsgNameRequired)
	}
	if utf8.RuneCountInString(name) < MinNameLength {
		return errors.New(MsgNameTooShort)
	}
	return nil
}

// ValidateDate checks that date is a resolvable ISO calendar date
func ValidateDate(date string) error {
	if date == "" {
		return errors.New(MsgDateRequired)
	}
	if _, err := model.ParseISODate(date); err != nil {
		return errors.New(MsgDateRequired)
	}
	return nil
}

// ValidateNumericValue checks that v is a finite, non-negative number
func ValidateNumericValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New(MsgNumericValueRequired)
	}
	if v < 0 {
		return errors.New(MsgNumericValueNegative)
	}
	return nil
}

// Validate runs every field rule and collects the violations. It returns nil
// when fields may enter the store.
func Validate(fields model.Fields) *ValidationError {
	verr := &ValidationError{}
	if err := ValidateName(fields.Name); err != nil {
		verr.add(FieldName, err.Error())
	}
	if err := ValidateDate(fields.Date); err != nil {
		verr.add(FieldDate, err.Error())
	}
	if err := ValidateNumericValue(fields.NumericValue); err != nil {
		verr.add(FieldNumericValue, err.Error())
	}
	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}
