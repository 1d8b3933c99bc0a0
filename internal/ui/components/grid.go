package components

import "github.com/rivo/tview"

// LayoutCards places cards row by row into grid using the given column
// count. Every row gets rowHeight cells; it returns the total height.
func LayoutCards(grid *tview.Grid, cards []tview.Primitive, columns, rowHeight int) int {
	if columns < 1 {
		columns = 1
	}
	rows := (len(cards) + columns - 1) / columns

	cols := make([]int, columns)
	heights := make([]int, rows)
	for i := range heights {
		heights[i] = rowHeight
	}

	grid.Clear()
	grid.SetColumns(cols...)
	grid.SetRows(heights...)
	grid.SetGap(0, 1)
	for i, card := range cards {
		grid.AddItem(card, i/columns, i%columns, 1, 1, 0, 0, false)
	}
	return rows * rowHeight
}
