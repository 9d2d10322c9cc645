package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Sort indicators appended to column titles
const (
	IconSortAscending  = " ▲"
	IconSortDescending = " ▼"
	IconSettings       = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Table column indexes
const (
	ColumnIndexName = iota
	ColumnIndexDate
	ColumnIndexNumericValue
	ColumnIndexActions
	ColumnCount
)

// Layout sizing
const (
	NameColumnWidth    float32 = 220
	DateColumnWidth    float32 = 110
	ValueColumnWidth   float32 = 160
	ActionsColumnWidth float32 = 260

	SearchEntryWidth float32 = 300

	FormDialogWidth      float32 = 420
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)

// Notification behavior
const (
	NotificationAutoHide = 3 * time.Second
)
