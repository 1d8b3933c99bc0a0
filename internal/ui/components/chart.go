package components

import (
	"strings"

	"github.com/rivo/tview"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

// CreateChartPlaceholder creates a bordered block drawing a static bar
// series. The series is decorative.
func CreateChartPlaceholder(title string, series []int) *tview.TextView {
	chart := tview.NewTextView()
	chart.SetDynamicColors(true)
	chart.SetBorder(true)
	chart.SetTitle(" " + title + " ")
	chart.SetTitleAlign(tview.AlignLeft)
	chart.SetTextAlign(tview.AlignCenter)
	chart.SetText("\n[#9ccfd8]" + Sparkline(series) + "[-]\n\n[#6e6a86]Chart visualization coming soon[-]")
	return chart
}

// Sparkline maps values onto block characters scaled to the largest value
func Sparkline(series []int) string {
	maxValue := 0
	for _, v := range series {
		if v > maxValue {
			maxValue = v
		}
	}

	var b strings.Builder
	for _, v := range series {
		if maxValue <= 0 || v <= 0 {
			b.WriteRune(sparkLevels[0])
			continue
		}
		idx := v * (len(sparkLevels) - 1) / maxValue
		b.WriteRune(sparkLevels[idx])
	}
	return b.String()
}
