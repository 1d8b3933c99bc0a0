package components

import "github.com/rivo/tview"

// CreateFooter creates the help bar listing the key bindings
func CreateFooter(help string) *tview.TextView {
	footer := tview.NewTextView()
	footer.SetBorder(true)
	footer.SetText(help)
	footer.SetTextAlign(tview.AlignCenter)
	footer.SetDynamicColors(true)
	return footer
}
