package components

import (
	"fmt"

	"github.com/rivo/tview"
)

// CreatePageHeader creates the title block shown at the top of every page
func CreatePageHeader(title, subtitle string) *tview.TextView {
	header := tview.NewTextView()
	header.SetDynamicColors(true)
	header.SetText(fmt.Sprintf("[::b]%s[::-]\n[#908caa]%s[-]", title, subtitle))
	return header
}
