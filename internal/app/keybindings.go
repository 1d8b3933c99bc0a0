package app

import (
	"admin-dashboard/internal/ui"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// SetupKeyBindings configures keyboard input handling
func SetupKeyBindings(a *App) {
	a.tv.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		focus := a.tv.GetFocus()
		menu := a.shell.Sidebar().Menu()

		if event.Key() == tcell.KeyEscape {
			if a.shell.Dismiss() {
				a.focusContent()
				return nil
			}
			// nothing to close: leave the content for the rail
			if focus != menu {
				a.tv.SetFocus(menu)
				return nil
			}
			return event
		}

		// text fields keep their keys
		if _, typing := focus.(*tview.InputField); typing {
			return event
		}

		if event.Key() == tcell.KeyTab && !inForm(focus) {
			if focus == menu {
				a.focusContent()
			} else {
				a.tv.SetFocus(menu)
			}
			return nil
		}

		switch event.Rune() {
		case ui.KeyQuit:
			a.tv.Stop()
			return nil
		case ui.KeyMenu:
			a.shell.OpenSidebar()
			a.tv.SetFocus(menu)
			return nil
		case ui.KeyProfile:
			a.shell.ToggleProfile()
			if a.shell.Navbar().ProfileOpen() {
				a.tv.SetFocus(a.shell.Navbar().Panel().Menu())
			} else {
				a.focusContent()
			}
			return nil
		case ui.KeyDown:
			// Move down in menu
			if focus == menu {
				if current := menu.GetCurrentItem(); current < menu.GetItemCount()-1 {
					menu.SetCurrentItem(current + 1)
				}
				return nil
			}
		case ui.KeyUp:
			// Move up in menu
			if focus == menu {
				if current := menu.GetCurrentItem(); current > 0 {
					menu.SetCurrentItem(current - 1)
				}
				return nil
			}
		case '1', '2', '3':
			a.shell.Sidebar().Activate(int(event.Rune() - '1'))
			return nil
		}

		return event
	})
}

func (a *App) focusContent() {
	if a.current != nil {
		a.tv.SetFocus(a.current)
	}
}

// inForm reports whether p is a form element that cycles on Tab
func inForm(p tview.Primitive) bool {
	switch p.(type) {
	case *tview.Checkbox, *tview.DropDown, *tview.TextArea, *tview.Button:
		return true
	}
	return false
}
