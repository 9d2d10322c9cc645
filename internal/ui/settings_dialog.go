package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/record-table/internal/config"
)

// Collation locales offered in the settings dialog
var localeOptions = []string{"ru", "en", "de", "fr", "uk"}

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	pageSizeEntry *widget.Entry
	debounceEntry *widget.Entry
	localeSelect  *widget.Select
	verboseCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings have been written.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.pageSizeEntry = widget.NewEntry()
	sd.pageSizeEntry.SetPlaceHolder("1-100")

	sd.debounceEntry = widget.NewEntry()
	sd.debounceEntry.SetPlaceHolder("0-2000")

	sd.localeSelect = widget.NewSelect(localeOptions, nil)

	sd.verboseCheck = widget.NewCheck(LabelVerbose, nil)

	form := container.NewVBox(
		widget.NewLabel(LabelPageSize+":"),
		sd.pageSizeEntry,

		widget.NewLabel(LabelSearchDebounce+":"),
		sd.debounceEntry,

		widget.NewLabel(LabelLocale+":"),
		sd.localeSelect,

		widget.NewSeparator(),
		sd.verboseCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		LabelSettings,
		LabelSave,
		LabelCancel,
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.pageSizeEntry.SetText(strconv.Itoa(sd.settings.GetPageSize()))
	sd.debounceEntry.SetText(strconv.Itoa(int(sd.settings.GetSearchDebounce() / time.Millisecond)))
	sd.localeSelect.SetSelected(sd.settings.GetCollationLocale().String())
	sd.verboseCheck.SetChecked(sd.settings.GetVerboseLogging())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()
}

func (sd *SettingsDialog) save() {
	if pageSize, err := strconv.Atoi(sd.pageSizeEntry.Text); err == nil {
		sd.settings.SetPageSize(pageSize)
	}

	if ms, err := strconv.Atoi(sd.debounceEntry.Text); err == nil {
		sd.settings.SetSearchDebounce(time.Duration(ms) * time.Millisecond)
	}

	if sd.localeSelect.Selected != "" {
		sd.settings.SetCollationLocale(sd.localeSelect.Selected)
	}

	sd.settings.SetVerboseLogging(sd.verboseCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
