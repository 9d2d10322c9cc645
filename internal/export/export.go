// Package export renders records as plain-text tables for the clipboard.
package export

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ytget/record-table/internal/model"
)

// Format selects the text table flavour
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatCSV      Format = "csv"
)

// Column headers, matching the table on screen
const (
	HeaderName         = "Имя"
	HeaderDate         = "Дата"
	HeaderNumericValue = "Числовое значение"
)

// Render returns records as a table in the given format. Dates are shown the
// way the table displays them.
func Render(records []model.Record, format Format) string {
	style := table.StyleLight
	style.Format.Header = text.FormatDefault

	t := table.NewWriter()
	t.SetStyle(style)
	t.AppendHeader(table.Row{HeaderName, HeaderDate, HeaderNumericValue})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
	})

	for _, r := range records {
		t.AppendRow(table.Row{r.Name, r.DisplayDate(), model.FormatNumericValue(r.NumericValue)})
	}

	switch format {
	case FormatMarkdown:
		return t.RenderMarkdown()
	case FormatCSV:
		return t.RenderCSV()
	default:
		return t.Render()
	}
}
