package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It renders the record table, the toolbar with search, and the create/edit
// form, and forwards user actions to the record store and form session.
