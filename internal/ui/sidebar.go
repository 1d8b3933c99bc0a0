package ui

import (
	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/nav"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui/components"

	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Sidebar is the navigation rail. It owns the drawer flag, which only
// matters in mobile mode.
type Sidebar struct {
	*tview.Flex
	brand *tview.TextView
	menu  *tview.List
	items []types.NavigationItem
	state layout.SidebarState

	bp       layout.Breakpoints
	current  func() types.Route
	viewport func() int
	navigate func(types.Route)
	log      *zap.Logger
}

// NewSidebar builds the rail. viewport reports the current width in pixels
// and is read when a link is activated.
func NewSidebar(bp layout.Breakpoints, current func() types.Route, viewport func() int, navigate func(types.Route), log *zap.Logger) *Sidebar {
	s := &Sidebar{
		brand:    createBrand(),
		items:    nav.Items(),
		bp:       bp,
		current:  current,
		viewport: viewport,
		navigate: navigate,
		log:      log,
	}
	s.menu = components.CreateMenu(s.items, s.Activate)

	s.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(s.brand, 2, 0, false).
		AddItem(s.menu, 0, 1, true)
	s.Flex.SetBorder(true)
	return s
}

// Apply renders the rail for the presentation of the current layout pass
func (s *Sidebar) Apply(p layout.Presentation) {
	collapsed := p == layout.PresentationCollapsed
	current := s.current()

	s.brand.SetText(brandText(p))
	for i, item := range s.items {
		s.menu.SetItemText(i, components.MenuText(item, nav.IsActive(item, current), collapsed), "")
	}
}

// Activate follows the link at index. On narrow viewports the drawer closes first.
func (s *Sidebar) Activate(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	item := s.items[index]
	width := s.viewport()
	if s.state.LinkActivated(width, s.bp) {
		s.log.Debug("drawer closed on navigation", zap.String("route", string(item.Route)), zap.Int("width", width))
	}
	s.navigate(item.Route)
}

func (s *Sidebar) IsOpen() bool { return s.state.IsOpen() }

func (s *Sidebar) Open() {
	s.state.Open()
	s.log.Debug("drawer opened")
}

func (s *Sidebar) Close() {
	s.state.Close()
	s.log.Debug("drawer closed")
}

func (s *Sidebar) OverlayClick() {
	s.state.OverlayClick()
	s.log.Debug("drawer closed by overlay click")
}

// Reset returns the rail to its mount state
func (s *Sidebar) Reset() {
	s.state = layout.SidebarState{}
}

// Menu returns the focusable list of links
func (s *Sidebar) Menu() *tview.List { return s.menu }

// ActiveIndex returns the index of the link matching the current route
func (s *Sidebar) ActiveIndex() int {
	return nav.ActiveIndex(s.items, s.current())
}
