package ui

import (
	"strings"
	"testing"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shellFixture struct {
	shell     *Shell
	auth      *store.AuthStore
	route     types.Route
	navigated []types.Route
	screen    tcell.SimulationScreen
}

func newShellFixture(t *testing.T) *shellFixture {
	t.Helper()
	f := &shellFixture{
		auth:  store.NewAuthStore(store.SeedAuth(), nil),
		route: types.RouteDashboard,
	}
	f.shell = NewShell(ShellOptions{
		Breakpoints:   layout.DefaultBreakpoints(),
		PixelsPerCell: 10,
		Auth:          f.auth,
		Current:       func() types.Route { return f.route },
		Navigate: func(r types.Route) {
			f.navigated = append(f.navigated, r)
			f.route = r
		},
	})

	f.screen = tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, f.screen.Init())
	t.Cleanup(f.screen.Fini)
	return f
}

func (f *shellFixture) draw(cols, rows int) {
	f.screen.SetSize(cols, rows)
	f.shell.SetRect(0, 0, cols, rows)
	f.shell.Draw(f.screen)
}

func (f *shellFixture) click(x, y int) bool {
	event := tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
	consumed, _ := f.shell.MouseHandler()(tview.MouseLeftClick, event, func(tview.Primitive) {})
	return consumed
}

func TestShellContentOffsetPerMode(t *testing.T) {
	tests := []struct {
		name   string
		cols   int
		mode   layout.Mode
		offset int
	}{
		{"mobile", 70, layout.Mobile, 0},
		{"tablet", 100, layout.Tablet, 6},
		{"desktop", 150, layout.Desktop, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newShellFixture(t)
			f.draw(tt.cols, 30)

			assert.Equal(t, tt.mode, f.shell.Measure().Mode)
			navX, _, _, _ := f.shell.Navbar().GetRect()
			assert.Equal(t, tt.offset, navX)
			mainX, _, mainW, _ := f.shell.main.GetRect()
			assert.Equal(t, tt.offset, mainX)
			assert.Equal(t, tt.cols-tt.offset, mainW)

			if tt.mode != layout.Mobile {
				_, _, railW, _ := f.shell.Sidebar().GetRect()
				assert.Equal(t, tt.offset, railW, "rail width matches content offset")
			}
		})
	}
}

func TestShellMobileDrawer(t *testing.T) {
	f := newShellFixture(t)
	f.draw(70, 30)
	assert.False(t, f.shell.Sidebar().IsOpen(), "starts closed")

	f.shell.OpenSidebar()
	f.draw(70, 30)
	assert.True(t, f.shell.Measure().DrawerVisible)
	_, _, drawerW, _ := f.shell.Sidebar().GetRect()
	assert.Equal(t, 26, drawerW)
	navX, _, _, _ := f.shell.Navbar().GetRect()
	assert.Zero(t, navX, "drawer overlays the content")

	f.click(5, 10)
	assert.True(t, f.shell.Sidebar().IsOpen())

	assert.True(t, f.click(50, 10), "overlay swallows the click")
	assert.False(t, f.shell.Sidebar().IsOpen())
}

func TestShellDismissClosesDrawer(t *testing.T) {
	f := newShellFixture(t)
	f.draw(70, 30)
	f.shell.OpenSidebar()

	assert.True(t, f.shell.Dismiss())
	assert.False(t, f.shell.Sidebar().IsOpen())
	assert.False(t, f.shell.Dismiss(), "nothing left to close")
}

func TestShellTabletIgnoresDrawerFlag(t *testing.T) {
	f := newShellFixture(t)
	f.shell.OpenSidebar()
	f.draw(100, 30)

	m := f.shell.Measure()
	assert.False(t, m.DrawerVisible)
	navX, _, _, _ := f.shell.Navbar().GetRect()
	assert.Equal(t, 6, navX)
}

func TestSidebarLinkActivation(t *testing.T) {
	f := newShellFixture(t)
	f.draw(70, 30)
	f.shell.OpenSidebar()

	f.shell.Sidebar().Activate(1)
	assert.False(t, f.shell.Sidebar().IsOpen(), "narrow viewport closes the drawer")
	assert.Equal(t, []types.Route{types.RouteAnalytics}, f.navigated)

	f.draw(100, 30)
	f.shell.OpenSidebar()
	f.shell.Sidebar().Activate(2)
	assert.True(t, f.shell.Sidebar().IsOpen(), "tablet width leaves the flag alone")
	assert.Equal(t, types.RouteSettings, f.route)

	f.shell.Sidebar().Activate(7)
	assert.Len(t, f.navigated, 2)
}

func TestSidebarActiveHighlight(t *testing.T) {
	f := newShellFixture(t)
	f.route = types.RouteAnalytics
	f.draw(150, 30)

	for i := 0; i < 3; i++ {
		text, _ := f.shell.Sidebar().Menu().GetItemText(i)
		assert.Equal(t, i == 1, strings.HasPrefix(text, "[#c4a7e7::b]"), "item %d", i)
		assert.Equal(t, i == 1, f.shell.Sidebar().ActiveIndex() == i)
	}

	f.draw(100, 30)
	text, _ := f.shell.Sidebar().Menu().GetItemText(0)
	assert.Equal(t, "[#908caa]⌂[-]", text, "tablet shows icons only")
}

func TestProfileDropdown(t *testing.T) {
	f := newShellFixture(t)
	f.draw(150, 30)

	f.shell.ToggleProfile()
	f.shell.ToggleProfile()
	assert.False(t, f.shell.Navbar().ProfileOpen(), "two clicks return to closed")

	f.shell.ToggleProfile()
	f.draw(150, 30)
	px, py, _, _ := f.shell.Navbar().Panel().GetRect()
	assert.Equal(t, 150-panelWidth, px)
	assert.Equal(t, navbarHeight, py)

	f.click(px+2, py+1)
	assert.True(t, f.shell.Navbar().ProfileOpen(), "inside click keeps it open")

	assert.True(t, f.click(40, 20), "backdrop swallows the first outside click")
	assert.False(t, f.shell.Navbar().ProfileOpen())
}

func TestShellRemountResetsVisibility(t *testing.T) {
	f := newShellFixture(t)
	f.shell.OpenSidebar()
	f.shell.ToggleProfile()

	f.shell.Remount()
	assert.False(t, f.shell.Sidebar().IsOpen())
	assert.False(t, f.shell.Navbar().ProfileOpen())
}

func TestNavbarPlaceholdersWithoutUser(t *testing.T) {
	f := newShellFixture(t)
	f.draw(100, 30)
	assert.Equal(t, "(J) John Doe · admin ▾", f.shell.Navbar().Avatar().GetLabel())

	f.auth.Logout()
	f.draw(100, 30)
	assert.Equal(t, "(U) User · Role ▾", f.shell.Navbar().Avatar().GetLabel())

	f.draw(70, 30)
	assert.Equal(t, "(U) ▾", f.shell.Navbar().Avatar().GetLabel())
}

type recordingPage struct {
	*tview.Box
	modes []layout.Mode
}

func (p *recordingPage) Apply(mode layout.Mode) { p.modes = append(p.modes, mode) }

func TestShellAppliesModeToContent(t *testing.T) {
	f := newShellFixture(t)
	page := &recordingPage{Box: tview.NewBox()}
	f.shell.SetContent(page)

	f.draw(70, 30)
	f.draw(150, 30)
	assert.Equal(t, []layout.Mode{layout.Mobile, layout.Desktop}, page.modes)
	assert.Equal(t, page, f.shell.Content())
}

func TestTransactionsData(t *testing.T) {
	data := TransactionsData(store.SeedDashboard().Transactions)
	require.Len(t, data.Rows, 9)
	assert.Equal(t, "Recent Transactions (8) · $934.99 completed", data.Title)
	assert.Equal(t, []string{"Diana Prince", "$45.00", "failed", "2024-01-14"}, data.Rows[4])
}
