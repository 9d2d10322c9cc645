package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/language"

	"github.com/ytget/record-table/internal/config"
	"github.com/ytget/record-table/internal/export"
	"github.com/ytget/record-table/internal/logging"
	"github.com/ytget/record-table/internal/model"
	"github.com/ytget/record-table/internal/session"
	"github.com/ytget/record-table/internal/store"
)

func seededStore(t *testing.T, n int) *store.Store {
	t.Helper()
	s := store.NewStore(zap.NewNop(), language.Russian)
	records := make([]model.Record, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, model.NewRecord(fmt.Sprint(i+1), model.Fields{
			Name:         fmt.Sprintf("Запись %02d", i+1),
			Date:         fmt.Sprintf("2025-08-%02d", i+1),
			NumericValue: float64(i + 1),
		}))
	}
	require.NoError(t, s.Seed(records))
	return s
}

func newTestRoot(t *testing.T, s *store.Store) (*RootUI, fyne.App) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)
	config.NewSettings(app).SetSearchDebounce(0)

	w := test.NewWindow(nil)
	t.Cleanup(w.Close)
	ui := NewRootUI(w, app, s, zap.NewNop())
	t.Cleanup(ui.Close)
	return ui, app
}

func TestRootUI_InitialRows(t *testing.T) {
	ui, _ := newTestRoot(t, seededStore(t, 3))

	require.Len(t, ui.table.Rows(), 3)
	assert.Equal(t, "1", ui.table.Rows()[0].Key)
	assert.Empty(t, ui.notifications.Text())
}

func TestRootUI_SearchFiltersRows(t *testing.T) {
	s := seededStore(t, 3)
	ui, _ := newTestRoot(t, s)

	test.Type(ui.searchEntry, "08-02")
	assert.Equal(t, "08-02", s.Query())
	require.Len(t, ui.table.Rows(), 1)
	assert.Equal(t, "2", ui.table.Rows()[0].Key)

	ui.searchEntry.SetText("")
	assert.Len(t, ui.table.Rows(), 3)
}

func TestRootUI_AddRecord(t *testing.T) {
	s := seededStore(t, 1)
	ui, _ := newTestRoot(t, s)

	ui.onAddClick()
	require.True(t, ui.form.Visible())
	assert.Equal(t, session.ModeCreate, ui.session.Mode())
	assert.Equal(t, "0", ui.form.valueEntry.Text)

	ui.form.nameEntry.SetText("Анна")
	date := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.Local)
	ui.form.dateEntry.SetDate(&date)
	ui.form.valueEntry.SetText("12,5")
	ui.form.submit()

	assert.False(t, ui.form.Visible())
	assert.Equal(t, session.StateIdle, ui.session.State())
	require.Equal(t, 2, s.Len())
	added := s.Records()[1]
	assert.Equal(t, "Анна", added.Name)
	assert.Equal(t, "2025-09-01", added.Date)
	assert.Equal(t, 12.5, added.NumericValue)
	assert.Equal(t, MsgRecordAdded, ui.notifications.Text())
	assert.Len(t, ui.table.Rows(), 2)
}

func TestRootUI_AddRecordInvalid(t *testing.T) {
	s := seededStore(t, 1)
	ui, _ := newTestRoot(t, s)

	ui.onAddClick()
	ui.form.nameEntry.SetText("М")
	ui.form.dateEntry.SetDate(nil)
	ui.form.valueEntry.SetText("-1")
	ui.form.submit()

	assert.True(t, ui.form.Visible())
	assert.Equal(t, session.StateComposing, ui.session.State())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, store.MsgNameTooShort, ui.form.nameItem.HintText)
	assert.Equal(t, store.MsgDateRequired, ui.form.dateItem.HintText)
	assert.Equal(t, store.MsgNumericValueNegative, ui.form.valueItem.HintText)
	assert.Empty(t, ui.notifications.Text())

	ui.form.cancel()
	assert.False(t, ui.form.Visible())
	assert.Equal(t, session.StateIdle, ui.session.State())
}

func TestRootUI_EditRecord(t *testing.T) {
	s := seededStore(t, 2)
	ui, _ := newTestRoot(t, s)

	ui.onEditRecord("2")
	require.True(t, ui.form.Visible())
	assert.Equal(t, session.ModeEdit, ui.session.Mode())
	assert.Equal(t, "Запись 02", ui.form.nameEntry.Text)
	require.NotNil(t, ui.form.dateEntry.Date)
	assert.Equal(t, "2025-08-02", model.FormatISODate(*ui.form.dateEntry.Date))
	assert.Equal(t, "2", ui.form.valueEntry.Text)

	ui.form.nameEntry.SetText("Мирон")
	ui.form.submit()

	got, ok := s.Get("2")
	require.True(t, ok)
	assert.Equal(t, "Мирон", got.Name)
	assert.Equal(t, "2025-08-02", got.Date)
	assert.Equal(t, "2", s.Records()[1].Key)
	assert.Equal(t, MsgRecordUpdated, ui.notifications.Text())
}

func TestRootUI_EditMissingRecord(t *testing.T) {
	ui, _ := newTestRoot(t, seededStore(t, 1))

	ui.onEditRecord("missing")
	assert.False(t, ui.form.Visible())
	assert.Equal(t, MsgRecordNotFound, ui.notifications.Text())
}

func TestRootUI_EditDeletedWhileOpen(t *testing.T) {
	s := seededStore(t, 2)
	ui, _ := newTestRoot(t, s)

	ui.onEditRecord("1")
	require.NoError(t, s.Delete("1"))
	ui.form.submit()

	assert.False(t, ui.form.Visible())
	assert.Equal(t, session.StateIdle, ui.session.State())
	assert.Equal(t, MsgRecordNotFound, ui.notifications.Text())
	assert.Equal(t, 1, s.Len())
}

func TestRootUI_SecondFormRejected(t *testing.T) {
	ui, _ := newTestRoot(t, seededStore(t, 1))

	ui.onAddClick()
	ui.onEditRecord("1")
	assert.Equal(t, session.ModeCreate, ui.session.Mode())
	assert.Equal(t, MsgFormOpen, ui.notifications.Text())
}

func TestRootUI_DeleteRecord(t *testing.T) {
	s := seededStore(t, 2)
	ui, _ := newTestRoot(t, s)

	ui.onDeleteRecord("1")
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, MsgRecordDeleted, ui.notifications.Text())
	require.Len(t, ui.table.Rows(), 1)
	assert.Equal(t, "2", ui.table.Rows()[0].Key)
}

func TestRootUI_HeaderSortCycle(t *testing.T) {
	s := seededStore(t, 3)
	ui, _ := newTestRoot(t, s)

	ui.table.onHeaderTapped(ColumnIndexNumericValue)
	assert.Equal(t, model.Sort{Column: model.ColumnNumericValue, Direction: model.SortAscending}, s.Sort())
	assert.Equal(t, "1", ui.table.Rows()[0].Key)

	ui.table.onHeaderTapped(ColumnIndexNumericValue)
	assert.Equal(t, model.SortDescending, s.Sort().Direction)
	assert.Equal(t, "3", ui.table.Rows()[0].Key)

	ui.table.onHeaderTapped(ColumnIndexNumericValue)
	assert.False(t, s.Sort().IsActive())
	assert.Equal(t, "1", ui.table.Rows()[0].Key)

	// Actions column is not sortable
	ui.table.onHeaderTapped(ColumnIndexActions)
	assert.False(t, s.Sort().IsActive())
}

func TestRootUI_PaginationResetsOnSearch(t *testing.T) {
	s := seededStore(t, 7)
	ui, _ := newTestRoot(t, s)

	require.Len(t, ui.table.Rows(), config.DefaultPageSize)
	ui.table.NextPage()
	assert.Equal(t, 1, ui.table.Page().Number)
	assert.Len(t, ui.table.Rows(), 2)

	test.Type(ui.searchEntry, "Запись")
	assert.Equal(t, 0, ui.table.Page().Number)
	assert.Len(t, ui.table.Rows(), config.DefaultPageSize)
}

func TestRootUI_CopyToClipboard(t *testing.T) {
	s := seededStore(t, 2)
	ui, app := newTestRoot(t, s)

	ui.onCopyClick()
	content := app.Clipboard().Content()
	assert.Contains(t, content, "Запись 01")
	assert.Contains(t, content, "01.08.2025")
	assert.Equal(t, MsgCopied, ui.notifications.Text())
}

func TestRootUI_ApplySettings(t *testing.T) {
	s := seededStore(t, 3)
	ui, _ := newTestRoot(t, s)

	ui.settings.SetPageSize(2)
	ui.settings.SetCollationLocale("en")
	ui.applySettings()

	assert.Len(t, ui.table.Rows(), 2)
	assert.Equal(t, 2, ui.table.Page().Pages)
	assert.Equal(t, MsgSettingsSaved, ui.notifications.Text())
}

func TestRootUI_CopyMenuFormats(t *testing.T) {
	s := seededStore(t, 2)
	ui, app := newTestRoot(t, s)

	menu := ui.window.MainMenu()
	require.NotNil(t, menu)
	require.Len(t, menu.Items, 2)
	items := menu.Items[1].Items
	require.Len(t, items, 3)

	items[1].Action()
	assert.True(t, strings.HasPrefix(app.Clipboard().Content(), "| "+export.HeaderName))

	items[2].Action()
	lines := strings.Split(strings.TrimSpace(app.Clipboard().Content()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Запись 01,01.08.2025,1", lines[1])

	items[0].Action()
	assert.Contains(t, app.Clipboard().Content(), "Запись 02")
	assert.Equal(t, MsgCopied, ui.notifications.Text())
}

func TestRootUI_ApplySettingsSwitchesVerbosity(t *testing.T) {
	ui, _ := newTestRoot(t, seededStore(t, 1))
	level := logging.NewLevel(false)
	ui.SetLogLevel(level)

	ui.settings.SetVerboseLogging(true)
	ui.applySettings()
	assert.True(t, level.Enabled(zapcore.DebugLevel))

	ui.settings.SetVerboseLogging(false)
	ui.applySettings()
	assert.False(t, level.Enabled(zapcore.DebugLevel))
}
