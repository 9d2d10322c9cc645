package store

// Package store implements the in-memory record store backing the table: the
// canonical insertion-ordered record sequence, add/update/delete, search and
// sort, and the memoized derived view the UI renders.
