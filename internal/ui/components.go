package ui

import (
	"fmt"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/types"

	"github.com/rivo/tview"
)

func createBrand() *tview.TextView {
	brand := tview.NewTextView()
	brand.SetDynamicColors(true)
	return brand
}

func brandText(p layout.Presentation) string {
	if p == layout.PresentationCollapsed {
		return "[#232136:#c4a7e7:b]AD[-:-:-]"
	}
	return "[#232136:#c4a7e7:b]AD[-:-:-] [::b]Admin[::-]"
}

func createTitle() *tview.TextView {
	title := tview.NewTextView()
	title.SetDynamicColors(true)
	title.SetText("[#c4a7e7::b]Admin Dashboard[-:-:-]")
	return title
}

func createBell() *tview.TextView {
	bell := tview.NewTextView()
	bell.SetDynamicColors(true)
	bell.SetTextAlign(tview.AlignCenter)
	bell.SetText("🔔[#eb6f92]•[-]")
	return bell
}

// avatarLabel renders the avatar button. Name and role are dropped on mobile.
func avatarLabel(user *types.User, mode layout.Mode, open bool) string {
	chevron := "▾"
	if open {
		chevron = "▴"
	}
	if mode == layout.Mobile {
		return fmt.Sprintf("(%s) %s", user.Initial(), chevron)
	}
	return fmt.Sprintf("(%s) %s · %s %s", user.Initial(), user.DisplayName(), user.DisplayRole(), chevron)
}

func profileHeader(user *types.User) string {
	if user == nil {
		return "[::b]User[::-]\n[#6e6a86]not signed in[-]"
	}
	return fmt.Sprintf("[::b]%s[::-]\n[#6e6a86]%s[-]", user.Name, user.Email)
}
