package ui

import (
	"unicode/utf8"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/types"

	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	navbarHeight   = 3
	menuButtonSize = 5
	bellSize       = 5
	panelWidth     = 32
	panelHeight    = 9
)

// Navbar is the top bar. It owns the profile dropdown flag.
type Navbar struct {
	*tview.Flex
	menuButton *tview.Button
	title      *tview.TextView
	bell       *tview.TextView
	avatar     *tview.Button
	panel      *ProfilePanel
	dropdown   layout.DropdownState

	auth *store.AuthStore
	log  *zap.Logger
}

// NewNavbar builds the top bar. onMenu is the drawer open request.
func NewNavbar(auth *store.AuthStore, onMenu func(), navigate func(types.Route), log *zap.Logger) *Navbar {
	n := &Navbar{
		title: createTitle(),
		bell:  createBell(),
		auth:  auth,
		log:   log,
	}

	n.menuButton = tview.NewButton("☰").SetSelectedFunc(onMenu)
	n.avatar = tview.NewButton("").SetSelectedFunc(n.ToggleProfile)
	n.panel = newProfilePanel(auth, navigate)

	n.Flex = tview.NewFlex().
		AddItem(n.menuButton, menuButtonSize, 0, false).
		AddItem(n.title, 0, 1, false).
		AddItem(n.bell, bellSize, 0, false).
		AddItem(n.avatar, 0, 0, false)
	n.Flex.SetBorder(true)
	return n
}

// Apply renders the bar for the mode of the current layout pass
func (n *Navbar) Apply(mode layout.Mode) {
	menuSize := 0
	if mode == layout.Mobile {
		menuSize = menuButtonSize
	}
	n.Flex.ResizeItem(n.menuButton, menuSize, 0)

	user := n.auth.User()
	label := avatarLabel(user, mode, n.dropdown.IsOpen())
	n.avatar.SetLabel(label)
	n.Flex.ResizeItem(n.avatar, utf8.RuneCountInString(label)+2, 0)

	n.panel.Refresh(user)
}

func (n *Navbar) ProfileOpen() bool { return n.dropdown.IsOpen() }

// ToggleProfile handles a click on the avatar
func (n *Navbar) ToggleProfile() {
	n.dropdown.Toggle()
	n.log.Debug("profile dropdown toggled", zap.Bool("open", n.dropdown.IsOpen()))
}

// CloseProfile handles a click on the backdrop
func (n *Navbar) CloseProfile() {
	n.dropdown.OutsideClick()
	n.log.Debug("profile dropdown closed by outside click")
}

// PanelClick handles a click inside the panel
func (n *Navbar) PanelClick() {
	n.dropdown.InsideClick()
}

// Reset returns the bar to its mount state
func (n *Navbar) Reset() {
	n.dropdown = layout.DropdownState{}
}

func (n *Navbar) Panel() *ProfilePanel { return n.panel }

// Avatar returns the button toggling the dropdown
func (n *Navbar) Avatar() *tview.Button { return n.avatar }

// ProfilePanel is the dropdown under the avatar
type ProfilePanel struct {
	*tview.Flex
	header *tview.TextView
	menu   *tview.List
}

func newProfilePanel(auth *store.AuthStore, navigate func(types.Route)) *ProfilePanel {
	p := &ProfilePanel{header: tview.NewTextView()}
	p.header.SetDynamicColors(true)

	p.menu = tview.NewList().
		ShowSecondaryText(false).
		AddItem("Profile", "", 0, func() { navigate(types.RouteSettings) }).
		AddItem("Settings", "", 0, func() { navigate(types.RouteSettings) }).
		AddItem("[#eb6f92]Logout[-]", "", 0, auth.Logout)

	p.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.header, 3, 0, false).
		AddItem(p.menu, 0, 1, true)
	p.Flex.SetBorder(true)
	return p
}

// Refresh shows the user's name and email, or a placeholder when signed out
func (p *ProfilePanel) Refresh(user *types.User) {
	p.header.SetText(profileHeader(user))
}

// Menu returns the focusable list of actions
func (p *ProfilePanel) Menu() *tview.List { return p.menu }
