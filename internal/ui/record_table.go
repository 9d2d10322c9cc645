package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/record-table/internal/model"
	"github.com/ytget/record-table/internal/store"
)

// columnSpec describes one data column of the table
type columnSpec struct {
	title  string
	column model.Column
	width  float32
}

var tableColumns = [ColumnCount]columnSpec{
	ColumnIndexName:         {title: LabelColumnName, column: model.ColumnName, width: NameColumnWidth},
	ColumnIndexDate:         {title: LabelColumnDate, column: model.ColumnDate, width: DateColumnWidth},
	ColumnIndexNumericValue: {title: LabelColumnNumericValue, column: model.ColumnNumericValue, width: ValueColumnWidth},
	ColumnIndexActions:      {title: LabelColumnActions, width: ActionsColumnWidth},
}

// RecordTable renders one page of the store's derived view with sortable
// column headers and per-row edit/delete actions.
type RecordTable struct {
	store    store.RecordStore
	table    *widget.Table
	page     store.Page
	pageSize int
	current  int

	pageLabel *widget.Label
	prevBtn   *widget.Button
	nextBtn   *widget.Button
	container fyne.CanvasObject

	onEdit   func(key string)
	onDelete func(key string)
}

// recordCell is the template used for every body cell. Data columns show the
// label, the actions column shows the buttons.
type recordCell struct {
	widget.BaseWidget

	label     *widget.Label
	editBtn   *widget.Button
	deleteBtn *widget.Button
	actions   *fyne.Container
}

func newRecordCell() *recordCell {
	cell := &recordCell{
		label:     widget.NewLabel(""),
		editBtn:   widget.NewButtonWithIcon(LabelEdit, theme.DocumentCreateIcon(), nil),
		deleteBtn: widget.NewButtonWithIcon(LabelDelete, theme.DeleteIcon(), nil),
	}
	cell.label.Truncation = fyne.TextTruncateEllipsis
	cell.editBtn.Importance = widget.LowImportance
	cell.deleteBtn.Importance = widget.DangerImportance
	cell.actions = container.NewHBox(cell.editBtn, cell.deleteBtn)
	cell.actions.Hide()
	cell.ExtendBaseWidget(cell)
	return cell
}

// CreateRenderer implements fyne.Widget
func (c *recordCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(c.label, c.actions))
}

// showText turns the cell into a data cell
func (c *recordCell) showText(text string) {
	c.actions.Hide()
	c.editBtn.OnTapped = nil
	c.deleteBtn.OnTapped = nil
	c.label.SetText(text)
	c.label.Show()
}

// showActions turns the cell into the actions cell for one row
func (c *recordCell) showActions(onEdit, onDelete func()) {
	c.label.Hide()
	c.editBtn.OnTapped = onEdit
	c.deleteBtn.OnTapped = onDelete
	c.actions.Show()
}

// NewRecordTable creates the table bound to s
func NewRecordTable(s store.RecordStore, pageSize int) *RecordTable {
	rt := &RecordTable{
		store:    s,
		pageSize: pageSize,
	}
	rt.createUI()
	rt.Refresh()
	return rt
}

// SetCallbacks sets the row action callbacks
func (rt *RecordTable) SetCallbacks(onEdit, onDelete func(key string)) {
	rt.onEdit = onEdit
	rt.onDelete = onDelete
}

// Container returns the table with its pagination bar
func (rt *RecordTable) Container() fyne.CanvasObject {
	return rt.container
}

// Rows returns the records on the current page
func (rt *RecordTable) Rows() []model.Record {
	return rt.page.Records
}

// Page returns the current page
func (rt *RecordTable) Page() store.Page {
	return rt.page
}

// SetPageSize changes rows per page and returns to the first page
func (rt *RecordTable) SetPageSize(size int) {
	rt.pageSize = size
	rt.current = 0
	rt.Refresh()
}

// ResetPage moves back to the first page
func (rt *RecordTable) ResetPage() {
	rt.current = 0
	rt.Refresh()
}

// NextPage moves to the following page if there is one
func (rt *RecordTable) NextPage() {
	if rt.page.HasNext() {
		rt.current = rt.page.Number + 1
		rt.Refresh()
	}
}

// PrevPage moves to the preceding page if there is one
func (rt *RecordTable) PrevPage() {
	if rt.page.HasPrev() {
		rt.current = rt.page.Number - 1
		rt.Refresh()
	}
}

// Refresh re-reads the current page from the store
func (rt *RecordTable) Refresh() {
	rt.page = rt.store.Page(rt.current, rt.pageSize)
	rt.current = rt.page.Number

	rt.pageLabel.SetText(fmt.Sprintf(LabelPageFormat, rt.page.Number+1, rt.page.Pages) +
		MiddleDotSeparator + fmt.Sprintf(LabelTotalFormat, rt.page.Total))
	if rt.page.HasPrev() {
		rt.prevBtn.Enable()
	} else {
		rt.prevBtn.Disable()
	}
	if rt.page.HasNext() {
		rt.nextBtn.Enable()
	} else {
		rt.nextBtn.Disable()
	}

	rt.table.Refresh()
}

// createUI builds the table and the pagination bar
func (rt *RecordTable) createUI() {
	rt.table = widget.NewTableWithHeaders(
		func() (int, int) { return len(rt.page.Records), int(ColumnCount) },
		rt.createCell,
		rt.updateCell,
	)
	rt.table.ShowHeaderColumn = false
	rt.table.CreateHeader = func() fyne.CanvasObject {
		btn := widget.NewButton("", nil)
		btn.Importance = widget.LowImportance
		btn.Alignment = widget.ButtonAlignLeading
		return btn
	}
	rt.table.UpdateHeader = rt.updateHeader

	for i, spec := range tableColumns {
		rt.table.SetColumnWidth(i, spec.width)
	}

	rt.pageLabel = widget.NewLabel("")
	rt.prevBtn = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), rt.PrevPage)
	rt.nextBtn = widget.NewButtonWithIcon("", theme.NavigateNextIcon(), rt.NextPage)
	pager := container.NewHBox(rt.prevBtn, rt.pageLabel, rt.nextBtn)

	body := container.NewBorder(nil, container.NewCenter(pager), nil, nil, rt.table)
	rt.container = newSwipePager(body, rt.NextPage, rt.PrevPage)
}

func (rt *RecordTable) createCell() fyne.CanvasObject {
	return newRecordCell()
}

func (rt *RecordTable) updateCell(id widget.TableCellID, obj fyne.CanvasObject) {
	cell, ok := obj.(*recordCell)
	if !ok || id.Row < 0 || id.Row >= len(rt.page.Records) {
		return
	}
	record := rt.page.Records[id.Row]

	if id.Col == ColumnIndexActions {
		key := record.Key
		cell.showActions(func() { rt.edit(key) }, func() { rt.delete(key) })
		return
	}
	cell.showText(cellText(record, id.Col))
}

func (rt *RecordTable) updateHeader(id widget.TableCellID, obj fyne.CanvasObject) {
	btn, ok := obj.(*widget.Button)
	if !ok || id.Col < 0 || id.Col >= int(ColumnCount) {
		return
	}
	spec := tableColumns[id.Col]
	btn.SetText(headerText(spec, rt.store.Sort()))

	if !spec.column.IsValid() {
		btn.OnTapped = nil
		return
	}
	col := id.Col
	btn.OnTapped = func() { rt.onHeaderTapped(col) }
}

// onHeaderTapped cycles the sort of a column: ascending, descending, unsorted
func (rt *RecordTable) onHeaderTapped(col int) {
	spec := tableColumns[col]
	if !spec.column.IsValid() {
		return
	}

	current := rt.store.Sort()
	direction := model.SortNone
	if current.Column == spec.column {
		direction = current.Direction
	}
	rt.store.SortBy(spec.column, direction.Next())
}

func (rt *RecordTable) edit(key string) {
	if rt.onEdit != nil {
		rt.onEdit(key)
	}
}

func (rt *RecordTable) delete(key string) {
	if rt.onDelete != nil {
		rt.onDelete(key)
	}
}

// cellText returns what a data column shows for record
func cellText(record model.Record, col int) string {
	switch col {
	case ColumnIndexName:
		return record.Name
	case ColumnIndexDate:
		return record.DisplayDate()
	case ColumnIndexNumericValue:
		return model.FormatNumericValue(record.NumericValue)
	default:
		return ""
	}
}

// headerText returns a column title with the active sort indicator
func headerText(spec columnSpec, sort model.Sort) string {
	if !sort.IsActive() || sort.Column != spec.column {
		return spec.title
	}
	if sort.Direction == model.SortAscending {
		return spec.title + IconSortAscending
	}
	return spec.title + IconSortDescending
}
