package components

import (
	"admin-dashboard/internal/types"

	"github.com/rivo/tview"
)

// CreateMainTable creates a read-only data table with a fixed header row
func CreateMainTable() *tview.Table {
	table := tview.NewTable()
	table.SetBorder(true).SetTitle("Data")
	table.SetTitleAlign(tview.AlignLeft)
	table.SetSelectable(true, false)
	table.SetFixed(1, 0)
	return table
}

// StatusColor returns the color tag of a transaction status
func StatusColor(status types.Status) string {
	switch status {
	case types.StatusCompleted:
		return "[#9ccfd8]"
	case types.StatusPending:
		return "[#f6c177]"
	case types.StatusFailed:
		return "[#eb6f92]"
	default:
		return "[#e0def4]"
	}
}

// PopulateTable fills the table with data. colorize may return a color tag
// for a data cell; an empty string keeps the default color.
func PopulateTable(table *tview.Table, data types.TableData, colorize func(row, col int, cell string) string) {
	if table == nil {
		return
	}

	table.Clear()
	table.SetTitle(" " + data.Title + " ")

	if len(data.Rows) == 0 {
		table.SetCell(0, 0, tview.NewTableCell("No data available").
			SetAlign(tview.AlignCenter).
			SetSelectable(false))
		return
	}

	// Add header row if present
	for col, cell := range data.Rows[0] {
		table.SetCell(0, col, tview.NewTableCell("[#f6c177::b]"+cell+"[-:-:-]").
			SetAlign(tview.AlignLeft).
			SetExpansion(1).
			SetSelectable(false))
	}

	for row := 1; row < len(data.Rows); row++ {
		for col, cell := range data.Rows[row] {
			color := "[#e0def4]"
			if colorize != nil {
				if c := colorize(row, col, cell); c != "" {
					color = c
				}
			}
			table.SetCell(row, col, tview.NewTableCell(color+cell+"[-]").
				SetAlign(tview.AlignLeft).
				SetExpansion(1).
				SetSelectable(true))
		}
	}
}
