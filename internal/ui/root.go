package ui

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/record-table/internal/config"
	"github.com/ytget/record-table/internal/debounce"
	"github.com/ytget/record-table/internal/export"
	"github.com/ytget/record-table/internal/logging"
	"github.com/ytget/record-table/internal/model"
	"github.com/ytget/record-table/internal/session"
	"github.com/ytget/record-table/internal/store"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	app      fyne.App
	store    store.RecordStore
	session  *session.Session
	settings *config.Settings
	logger   *zap.Logger
	logLevel *zap.AtomicLevel

	// Search text reaches the store only after typing pauses
	search *debounce.Debouncer[string]

	addBtn      *widget.Button
	copyBtn     *widget.Button
	settingsBtn *widget.Button
	searchEntry *widget.Entry

	table         *RecordTable
	form          *RecordForm
	notifications *NotificationPanel
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, recordStore store.RecordStore, logger *zap.Logger) *RootUI {
	if logger == nil {
		logger = zap.NewNop()
	}
	settings := config.NewSettings(app)

	ui := &RootUI{
		window:   window,
		app:      app,
		store:    recordStore,
		session:  session.New(recordStore, logger),
		settings: settings,
		logger:   logger,
	}

	ui.search = debounce.New(settings.GetSearchDebounce(), ui.applySearch)

	ui.setupUI()

	// Set up callback for store updates
	ui.store.SetUpdateCallback(ui.onStoreEvent)
	logger.Debug("UI setup completed", zap.Int("records", recordStore.Len()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.addBtn = widget.NewButtonWithIcon(LabelAdd, theme.ContentAddIcon(), ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	ui.searchEntry = widget.NewEntry()
	ui.searchEntry.SetPlaceHolder(LabelSearchPlaceholder)
	ui.searchEntry.ActionItem = widget.NewButtonWithIcon("", theme.ContentClearIcon(), func() {
		ui.searchEntry.SetText("")
	})
	ui.searchEntry.OnChanged = ui.onSearchChanged
	// Enter applies the query without waiting for the debounce window
	ui.searchEntry.OnSubmitted = func(string) { ui.search.Flush() }

	ui.copyBtn = widget.NewButtonWithIcon(LabelCopy, theme.ContentCopyIcon(), ui.onCopyClick)
	ui.copyBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	searchBox := container.NewGridWrap(fyne.NewSize(SearchEntryWidth, ui.searchEntry.MinSize().Height), ui.searchEntry)
	toolbar := container.NewHBox(ui.addBtn, searchBox, layout.NewSpacer(), ui.copyBtn, ui.settingsBtn)

	ui.notifications = NewNotificationPanel(NotificationAutoHide)
	top := container.NewVBox(toolbar, ui.notifications.Container())

	ui.table = NewRecordTable(ui.store, ui.settings.GetPageSize())
	ui.table.SetCallbacks(ui.onEditRecord, ui.onDeleteRecord)

	ui.form = NewRecordForm(ui.window, ui.session, ui.logger)
	ui.form.SetCallbacks(ui.onFormCommitted, ui.onFormFailed)

	content := container.NewBorder(
		top,                   // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		ui.table.Container(), // center
	)
	ui.window.SetContent(container.NewPadded(content))
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(LabelSettings, ui.onShowSettings)
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(LabelFile, settingsItem),
		fyne.NewMenu(LabelEditMenu,
			fyne.NewMenuItem(LabelCopyText, func() { ui.copyAs(export.FormatText) }),
			fyne.NewMenuItem(LabelCopyMarkdown, func() { ui.copyAs(export.FormatMarkdown) }),
			fyne.NewMenuItem(LabelCopyCSV, func() { ui.copyAs(export.FormatCSV) }),
		),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onSearchChanged feeds every keystroke to the debouncer
func (ui *RootUI) onSearchChanged(text string) {
	ui.search.Trigger(text)
}

// applySearch runs when typing has paused; the timer fires off the UI goroutine
func (ui *RootUI) applySearch(query string) {
	fyne.Do(func() {
		ui.store.SetQuery(query)
	})
}

// onAddClick opens an empty form
func (ui *RootUI) onAddClick() {
	if err := ui.session.BeginCreate(); err != nil {
		ui.logger.Debug("Cannot open create form", zap.Error(err))
		ui.notifications.Show(MsgFormOpen, NotificationInfo)
		return
	}
	ui.form.Show()
}

// onEditRecord opens the form pre-filled from a record
func (ui *RootUI) onEditRecord(key string) {
	if err := ui.session.BeginEdit(key); err != nil {
		ui.logger.Warn("Cannot open edit form", zap.String("key", key), zap.Error(err))
		if errors.Is(err, store.ErrNotFound) {
			ui.notifications.Show(MsgRecordNotFound, NotificationError)
		} else {
			ui.notifications.Show(MsgFormOpen, NotificationInfo)
		}
		return
	}
	ui.form.Show()
}

// onDeleteRecord removes a record; the store event shows the notification
func (ui *RootUI) onDeleteRecord(key string) {
	if err := ui.store.Delete(key); err != nil {
		ui.logger.Error("Delete failed", zap.String("key", key), zap.Error(err))
		ui.notifications.Show(err.Error(), NotificationError)
	}
}

// onFormCommitted runs after the form dialog closed with a stored record
func (ui *RootUI) onFormCommitted(mode session.Mode, record model.Record) {
	ui.logger.Debug("Form committed", zap.String("mode", string(mode)), zap.String("key", record.Key))
}

// onFormFailed runs when a commit failed for a reason other than validation
func (ui *RootUI) onFormFailed(err error) {
	if errors.Is(err, store.ErrNotFound) {
		ui.notifications.Show(MsgRecordNotFound, NotificationError)
		return
	}
	ui.notifications.Show(err.Error(), NotificationError)
}

// onStoreEvent refreshes the table and reports outcomes
func (ui *RootUI) onStoreEvent(event store.Event) {
	switch event.Kind {
	case store.EventAdded:
		ui.notifications.Show(MsgRecordAdded, NotificationSuccess)
	case store.EventUpdated:
		ui.notifications.Show(MsgRecordUpdated, NotificationSuccess)
	case store.EventDeleted:
		ui.notifications.Show(MsgRecordDeleted, NotificationSuccess)
	case store.EventQueryChanged, store.EventSortChanged:
		ui.table.ResetPage()
		return
	}
	ui.table.Refresh()
}

// onCopyClick copies the visible records as a text table
func (ui *RootUI) onCopyClick() {
	ui.copyAs(export.FormatText)
}

// copyAs copies the visible records to the clipboard in the given format
func (ui *RootUI) copyAs(format export.Format) {
	text := export.Render(ui.store.View(), format)
	ui.app.Clipboard().SetContent(text)
	ui.logger.Debug("Copied view", zap.String("format", string(format)), zap.Int("bytes", len(text)))
	ui.notifications.Show(MsgCopied, NotificationInfo)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, ui.applySettings).Show()
}

// applySettings pushes saved settings into the running components
func (ui *RootUI) applySettings() {
	ui.search.SetWindow(ui.settings.GetSearchDebounce())
	ui.table.SetPageSize(ui.settings.GetPageSize())
	ui.store.SetLocale(ui.settings.GetCollationLocale())
	if ui.logLevel != nil {
		logging.SetVerbose(*ui.logLevel, ui.settings.GetVerboseLogging())
	}
	ui.notifications.Show(MsgSettingsSaved, NotificationInfo)
}

// SetLogLevel lets saved settings switch logger verbosity at runtime
func (ui *RootUI) SetLogLevel(level zap.AtomicLevel) {
	ui.logLevel = &level
}

// Close stops pending work before the window goes away
func (ui *RootUI) Close() {
	ui.search.Stop()
}
