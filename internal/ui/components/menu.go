package components

import (
	"admin-dashboard/internal/types"

	"github.com/rivo/tview"
)

// CreateMenu creates the navigation list of the rail. Item texts are set by
// the caller on every layout pass.
func CreateMenu(items []types.NavigationItem, onSelect func(index int)) *tview.List {
	menu := tview.NewList()
	menu.ShowSecondaryText(false)
	menu.SetHighlightFullLine(true)
	menu.SetSelectedFocusOnly(true)

	for _, item := range items {
		menu.AddItem(item.Label, "", 0, nil)
	}

	menu.SetSelectedFunc(func(index int, _, _ string, _ rune) {
		if onSelect != nil {
			onSelect(index)
		}
	})
	return menu
}

// MenuText renders one rail entry. Collapsed entries show the icon only.
func MenuText(item types.NavigationItem, active, collapsed bool) string {
	text := item.Icon
	if !collapsed {
		text += "  " + item.Label
	}
	if active {
		return "[#c4a7e7::b]" + text + "[-:-:-]"
	}
	return "[#908caa]" + text + "[-]"
}
