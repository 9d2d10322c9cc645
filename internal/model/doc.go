package model

// Package model defines the domain data used across the app: records, their
// editable fields, table columns and sort directions. Dates are kept as ISO
// strings in records and converted to calendar dates only at the form boundary.
