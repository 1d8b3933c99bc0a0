package ui

import (
	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui/components"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Responsive content adapts itself to the layout mode before every draw
type Responsive interface {
	Apply(mode layout.Mode)
}

// ShellOptions configures a Shell
type ShellOptions struct {
	Breakpoints   layout.Breakpoints
	PixelsPerCell int
	Auth          *store.AuthStore
	Current       func() types.Route
	Navigate      func(types.Route)
	Logger        *zap.Logger
}

// Shell lays out the navigation rail, the top bar and the page content. The
// layout is measured from the shell's own width on every draw and never stored.
type Shell struct {
	*tview.Box
	sidebar *Sidebar
	navbar  *Navbar
	main    *tview.Flex
	footer  *tview.TextView
	content tview.Primitive

	bp            layout.Breakpoints
	pixelsPerCell int
	log           *zap.Logger
}

// NewShell creates the shell with an empty content region
func NewShell(opts ShellOptions) *Shell {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.PixelsPerCell <= 0 {
		opts.PixelsPerCell = layout.DefaultPixelsPerCell
	}

	s := &Shell{
		Box:           tview.NewBox(),
		main:          tview.NewFlex().SetDirection(tview.FlexRow),
		footer:        components.CreateFooter(HelpText),
		bp:            opts.Breakpoints,
		pixelsPerCell: opts.PixelsPerCell,
		log:           opts.Logger,
	}
	s.sidebar = NewSidebar(opts.Breakpoints, opts.Current, s.ViewportWidth, opts.Navigate, opts.Logger)
	s.navbar = NewNavbar(opts.Auth, s.OpenSidebar, opts.Navigate, opts.Logger)
	s.SetContent(tview.NewBox())
	return s
}

// SetContent replaces the page shown in the content region
func (s *Shell) SetContent(p tview.Primitive) {
	s.content = p
	s.main.Clear().
		AddItem(p, 0, 1, true).
		AddItem(s.footer, 3, 0, false)
}

// Content returns the page shown in the content region
func (s *Shell) Content() tview.Primitive { return s.content }

// Remount drops the visibility state, as a fresh shell would have.
func (s *Shell) Remount() {
	s.sidebar.Reset()
	s.navbar.Reset()
}

func (s *Shell) Sidebar() *Sidebar { return s.sidebar }

func (s *Shell) Navbar() *Navbar { return s.navbar }

// ViewportWidth returns the shell width in pixels
func (s *Shell) ViewportWidth() int {
	_, _, width, _ := s.GetInnerRect()
	return layout.ToPixels(width, s.pixelsPerCell)
}

// Measure computes the layout for the current width
func (s *Shell) Measure() layout.Metrics {
	return s.bp.Measure(s.ViewportWidth(), s.sidebar.IsOpen())
}

// OpenSidebar is the menu request of the top bar
func (s *Shell) OpenSidebar() {
	s.sidebar.Open()
}

// ToggleProfile is the avatar click
func (s *Shell) ToggleProfile() {
	s.navbar.ToggleProfile()
}

// Dismiss closes the topmost open layer: the drawer, then the dropdown.
// It reports whether anything was closed.
func (s *Shell) Dismiss() bool {
	if s.Measure().DrawerVisible {
		s.sidebar.Close()
		return true
	}
	if s.navbar.ProfileOpen() {
		s.navbar.CloseProfile()
		return true
	}
	return false
}

// Draw draws this primitive onto the screen.
func (s *Shell) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)
	x, y, width, height := s.GetInnerRect()
	if width <= 0 || height <= 0 {
		return
	}

	m := s.Measure()
	rail := min(layout.ToCells(m.RailWidth, s.pixelsPerCell), width)

	s.sidebar.Apply(m.Presentation)
	s.navbar.Apply(m.Mode)
	if r, ok := s.content.(Responsive); ok {
		r.Apply(m.Mode)
	}

	contentX, contentWidth := x+rail, width-rail
	s.navbar.SetRect(contentX, y, contentWidth, min(navbarHeight, height))
	s.main.SetRect(contentX, y+navbarHeight, contentWidth, max(0, height-navbarHeight))
	s.navbar.Draw(screen)
	s.main.Draw(screen)

	if m.Presentation != layout.PresentationDrawer {
		s.sidebar.SetRect(x, y, rail, height)
		s.sidebar.Draw(screen)
	}

	if s.navbar.ProfileOpen() {
		pw := min(panelWidth, contentWidth)
		s.navbar.Panel().SetRect(contentX+contentWidth-pw, y+navbarHeight, pw, min(panelHeight, max(0, height-navbarHeight)))
		s.navbar.Panel().Draw(screen)
	}

	if m.DrawerVisible {
		dim(screen, x, y, width, height)
		s.sidebar.SetRect(x, y, min(layout.ToCells(m.DrawerWidth, s.pixelsPerCell), width), height)
		s.sidebar.Draw(screen)
	}
}

// dim repaints a region with the scrim background, keeping its characters
func dim(screen tcell.Screen, x, y, width, height int) {
	style := tcell.StyleDefault.Background(ColorScrim).Foreground(ColorMuted)
	for cy := y; cy < y+height; cy++ {
		for cx := x; cx < x+width; cx++ {
			mainc, combc, _, _ := screen.GetContent(cx, cy)
			screen.SetContent(cx, cy, mainc, combc, style)
		}
	}
}

// Focus is called when this primitive receives focus.
func (s *Shell) Focus(delegate func(p tview.Primitive)) {
	if s.content != nil {
		delegate(s.content)
		return
	}
	delegate(s.sidebar)
}

// HasFocus returns whether or not this primitive has focus.
func (s *Shell) HasFocus() bool {
	return s.sidebar.HasFocus() || s.navbar.HasFocus() || s.main.HasFocus() || s.navbar.Panel().HasFocus()
}

// MouseHandler routes clicks through the layers from the top: the open
// drawer and its overlay, the dropdown panel and its backdrop, then the rail,
// the top bar and the content.
func (s *Shell) MouseHandler() func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
	return s.WrapMouseHandler(func(action tview.MouseAction, event *tcell.EventMouse, setFocus func(p tview.Primitive)) (consumed bool, capture tview.Primitive) {
		if !s.InRect(event.Position()) {
			return false, nil
		}

		m := s.Measure()
		if m.DrawerVisible {
			if s.sidebar.InRect(event.Position()) {
				return s.sidebar.MouseHandler()(action, event, setFocus)
			}
			if action == tview.MouseLeftClick {
				s.sidebar.OverlayClick()
			}
			return true, nil
		}

		if s.navbar.ProfileOpen() {
			panel := s.navbar.Panel()
			if panel.InRect(event.Position()) {
				if action == tview.MouseLeftClick {
					s.navbar.PanelClick()
				}
				return panel.MouseHandler()(action, event, setFocus)
			}
			if action == tview.MouseLeftClick {
				s.navbar.CloseProfile()
			}
			return true, nil
		}

		if m.Presentation != layout.PresentationDrawer && s.sidebar.InRect(event.Position()) {
			return s.sidebar.MouseHandler()(action, event, setFocus)
		}
		if s.navbar.InRect(event.Position()) {
			return s.navbar.MouseHandler()(action, event, setFocus)
		}
		return s.main.MouseHandler()(action, event, setFocus)
	})
}
