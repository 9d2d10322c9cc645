package ui

import (
	"errors"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/ytget/record-table/internal/model"
	"github.com/ytget/record-table/internal/session"
	"github.com/ytget/record-table/internal/store"
)

// RecordForm is the modal create/edit dialog. It reads the form into a draft
// and hands it to the session; the dialog closes only after a commit.
type RecordForm struct {
	window  fyne.Window
	session *session.Session
	logger  *zap.Logger

	nameEntry  *widget.Entry
	dateEntry  *widget.DateEntry
	valueEntry *widget.Entry

	nameItem  *widget.FormItem
	dateItem  *widget.FormItem
	valueItem *widget.FormItem

	form   *widget.Form
	dialog *dialog.CustomDialog

	onCommitted func(mode session.Mode, record model.Record)
	onFailed    func(err error)
}

// NewRecordForm creates the form dialog for window
func NewRecordForm(window fyne.Window, sess *session.Session, logger *zap.Logger) *RecordForm {
	rf := &RecordForm{
		window:  window,
		session: sess,
		logger:  logger,
	}
	rf.createUI()
	return rf
}

// SetCallbacks sets what happens after a commit and after a non-validation failure
func (rf *RecordForm) SetCallbacks(onCommitted func(session.Mode, model.Record), onFailed func(error)) {
	rf.onCommitted = onCommitted
	rf.onFailed = onFailed
}

// Visible reports whether the dialog is showing
func (rf *RecordForm) Visible() bool {
	return rf.dialog != nil
}

// Show opens the dialog for the session's current form
func (rf *RecordForm) Show() {
	draft := rf.session.Draft()

	title, submit := LabelAddTitle, LabelAdd
	if rf.session.Mode() == session.ModeEdit {
		title, submit = LabelEditTitle, LabelUpdate
	}

	rf.nameEntry.SetText(draft.Name)
	rf.dateEntry.SetDate(draft.Date)
	rf.valueEntry.SetText("")
	if draft.NumericValue != nil {
		rf.valueEntry.SetText(model.FormatNumericValue(*draft.NumericValue))
	}
	rf.clearHints()

	rf.form.SubmitText = submit
	rf.form.Refresh()

	rf.dialog = dialog.NewCustomWithoutButtons(title, rf.form, rf.window)
	rf.dialog.SetOnClosed(func() {
		// Closed by any means other than a commit discards the draft
		rf.session.Cancel()
		rf.dialog = nil
	})
	rf.dialog.Resize(fyne.NewSize(FormDialogWidth, rf.dialog.MinSize().Height))
	rf.dialog.Show()
	rf.window.Canvas().Focus(rf.nameEntry)
}

// createUI builds the entries and the form
func (rf *RecordForm) createUI() {
	rf.nameEntry = widget.NewEntry()
	rf.nameEntry.SetPlaceHolder(LabelNamePlaceholder)
	rf.nameEntry.Validator = store.ValidateName

	rf.dateEntry = widget.NewDateEntry()
	rf.dateEntry.SetPlaceHolder(LabelDatePlaceholder)

	rf.valueEntry = widget.NewEntry()
	rf.valueEntry.SetPlaceHolder(LabelValuePlaceholder)
	rf.valueEntry.Validator = validateNumericText

	rf.nameItem = widget.NewFormItem(LabelColumnName, rf.nameEntry)
	rf.dateItem = widget.NewFormItem(LabelColumnDate, rf.dateEntry)
	rf.valueItem = widget.NewFormItem(LabelColumnNumericValue, rf.valueEntry)

	rf.form = &widget.Form{
		Items:      []*widget.FormItem{rf.nameItem, rf.dateItem, rf.valueItem},
		OnSubmit:   rf.submit,
		OnCancel:   rf.cancel,
		SubmitText: LabelAdd,
		CancelText: LabelCancel,
	}
}

// submit hands the form content to the session
func (rf *RecordForm) submit() {
	mode := rf.session.Mode()
	record, err := rf.session.Submit(rf.readDraft())
	if verr, ok := store.AsValidationError(err); ok {
		rf.logger.Debug("Form has invalid fields", zap.Error(verr))
		rf.showHints(verr)
		return
	}

	rf.close()

	if err != nil {
		if rf.onFailed != nil {
			rf.onFailed(err)
		}
		return
	}
	if rf.onCommitted != nil {
		rf.onCommitted(mode, record)
	}
}

// cancel discards the draft
func (rf *RecordForm) cancel() {
	rf.session.Cancel()
	rf.close()
}

func (rf *RecordForm) close() {
	if rf.dialog == nil {
		return
	}
	d := rf.dialog
	rf.dialog = nil
	d.Hide()
}

// readDraft converts the entries into a draft; unset or unparseable fields are left empty
func (rf *RecordForm) readDraft() session.Draft {
	draft := session.Draft{Name: rf.nameEntry.Text}
	if rf.dateEntry.Date != nil {
		date := *rf.dateEntry.Date
		draft.Date = &date
	}
	if v, err := parseNumber(rf.valueEntry.Text); err == nil {
		draft.NumericValue = &v
	}
	return draft
}

func (rf *RecordForm) showHints(verr *store.ValidationError) {
	rf.nameItem.HintText = verr.For(store.FieldName)
	rf.dateItem.HintText = verr.For(store.FieldDate)
	rf.valueItem.HintText = verr.For(store.FieldNumericValue)
	rf.form.Refresh()
}

func (rf *RecordForm) clearHints() {
	rf.nameItem.HintText = ""
	rf.dateItem.HintText = ""
	rf.valueItem.HintText = ""
}

// validateNumericText checks the numeric value entry
func validateNumericText(text string) error {
	v, err := parseNumber(text)
	if err != nil {
		return errors.New(store.MsgNumericValueRequired)
	}
	return store.ValidateNumericValue(v)
}

// parseNumber accepts both "1.5" and "1,5"
func parseNumber(text string) (float64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	if text == "" {
		return 0, errors.New("empty number")
	}
	return strconv.ParseFloat(text, 64)
}
