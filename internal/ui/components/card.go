package components

import (
	"fmt"

	"github.com/rivo/tview"
)

// CardHeight is the height of a stat or metric card including its border
const CardHeight = 5

// CreateCard creates a bordered text card
func CreateCard(title, body string) *tview.TextView {
	card := tview.NewTextView()
	card.SetDynamicColors(true)
	card.SetBorder(true)
	card.SetTitle(" " + title + " ")
	card.SetTitleAlign(tview.AlignLeft)
	card.SetText(body)
	return card
}

// StatBody renders a headline value with its change underneath
func StatBody(value, change string, good, up bool) string {
	arrow := "↓"
	if up {
		arrow = "↑"
	}
	color := "[#eb6f92]"
	if good {
		color = "[#9ccfd8]"
	}
	return fmt.Sprintf("[::b]%s[::-]\n%s%s %s[-]", value, color, arrow, change)
}
