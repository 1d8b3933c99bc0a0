package components

import (
	"strings"

	"github.com/rivo/tview"
)

const skeletonBar = "[#393552]"

// CreateSkeletonCard creates a placeholder with the shape of a stat card
func CreateSkeletonCard() *tview.TextView {
	card := tview.NewTextView()
	card.SetDynamicColors(true)
	card.SetBorder(true)
	card.SetText(skeletonBar + "▆▆▆▆▆▆▆▆▆▆▆▆[-]\n" + skeletonBar + "▆▆▆▆▆▆[-]")
	return card
}

// CreateSkeletonChart creates a placeholder with the shape of a chart
func CreateSkeletonChart(title string) *tview.TextView {
	chart := tview.NewTextView()
	chart.SetDynamicColors(true)
	chart.SetBorder(true)
	chart.SetTitle(" " + title + " ")
	chart.SetTitleAlign(tview.AlignLeft)
	chart.SetTextAlign(tview.AlignCenter)
	chart.SetText("\n\n" + skeletonBar + "Loading chart…[-]")
	return chart
}

// CreateSkeletonTable creates a placeholder with the shape of a table
func CreateSkeletonTable(title string, rows int) *tview.TextView {
	table := tview.NewTextView()
	table.SetDynamicColors(true)
	table.SetBorder(true)
	table.SetTitle(" " + title + " ")
	table.SetTitleAlign(tview.AlignLeft)

	var b strings.Builder
	for i := 0; i < rows; i++ {
		b.WriteString(skeletonBar + "▆▆▆▆▆▆▆▆▆▆▆▆  ▆▆▆▆▆▆  ▆▆▆▆▆▆▆▆  ▆▆▆▆▆▆▆▆▆▆[-]\n")
	}
	table.SetText(b.String())
	return table
}
