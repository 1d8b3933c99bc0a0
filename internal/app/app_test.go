package app

import (
	"context"
	"testing"
	"time"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/types"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T, route types.Route) *App {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")

	cfg := config.Default()
	cfg.InitialRoute = route
	// the gate never fires, nothing reaches the stopped event loop
	cfg.LoadingDelay = time.Hour

	a, err := CreateApp(context.Background(), Options{Config: cfg, Logger: zap.NewNop(), Screen: screen})
	require.NoError(t, err)
	t.Cleanup(a.unmountPage)
	return a
}

func press(a *App, key tcell.Key, r rune) *tcell.EventKey {
	return a.tv.GetInputCapture()(tcell.NewEventKey(key, r, tcell.ModNone))
}

func TestCreateAppMountsInitialRoute(t *testing.T) {
	a := newTestApp(t, types.RouteRoot)

	assert.Equal(t, types.RouteDashboard, a.Router().Current())
	require.NotNil(t, a.Current())
	assert.Equal(t, types.RouteDashboard, a.Current().Route())
	assert.Equal(t, a.Current(), a.Shell().Content())
}

func TestCreateAppRejectsUnknownRoute(t *testing.T) {
	cfg := config.Default()
	cfg.InitialRoute = "/reports"

	_, err := CreateApp(context.Background(), Options{Config: cfg})
	assert.Error(t, err)
}

func TestNavigateRemountsPage(t *testing.T) {
	a := newTestApp(t, types.RouteDashboard)

	a.Shell().ToggleProfile()
	require.True(t, a.Shell().Navbar().ProfileOpen())

	a.Navigate(types.RouteAnalytics)
	assert.Equal(t, types.RouteAnalytics, a.Current().Route())
	assert.Equal(t, a.Current(), a.Shell().Content())
	assert.False(t, a.Shell().Navbar().ProfileOpen(), "a new page gets a fresh shell")
	assert.True(t, a.Current().HasFocus())

	a.Navigate("/reports")
	assert.Equal(t, types.RouteAnalytics, a.Current().Route(), "unknown routes are ignored")
}

func TestKeyBindings(t *testing.T) {
	a := newTestApp(t, types.RouteDashboard)
	menu := a.Shell().Sidebar().Menu()

	t.Run("number keys follow links", func(t *testing.T) {
		assert.Nil(t, press(a, tcell.KeyRune, '3'))
		assert.Equal(t, types.RouteSettings, a.Current().Route())
		// the settings form takes focus; leave it for the rail
		assert.Nil(t, press(a, tcell.KeyEscape, 0))
		assert.Equal(t, menu, a.tv.GetFocus())
		assert.Nil(t, press(a, tcell.KeyRune, '1'))
		assert.Equal(t, types.RouteDashboard, a.Current().Route())
	})

	t.Run("profile toggles and escape closes", func(t *testing.T) {
		assert.Nil(t, press(a, tcell.KeyRune, 'p'))
		assert.True(t, a.Shell().Navbar().ProfileOpen())
		assert.Equal(t, a.Shell().Navbar().Panel().Menu(), a.tv.GetFocus())

		assert.Nil(t, press(a, tcell.KeyEscape, 0))
		assert.False(t, a.Shell().Navbar().ProfileOpen())
		assert.True(t, a.Current().HasFocus())
	})

	t.Run("menu opens the drawer", func(t *testing.T) {
		assert.Nil(t, press(a, tcell.KeyRune, 'm'))
		assert.True(t, a.Shell().Sidebar().IsOpen())
		assert.Equal(t, menu, a.tv.GetFocus())

		assert.Nil(t, press(a, tcell.KeyEscape, 0))
		assert.False(t, a.Shell().Sidebar().IsOpen())
	})

	t.Run("j and k move in the rail", func(t *testing.T) {
		a.tv.SetFocus(menu)
		menu.SetCurrentItem(0)
		assert.Nil(t, press(a, tcell.KeyRune, 'j'))
		assert.Equal(t, 1, menu.GetCurrentItem())
		assert.Nil(t, press(a, tcell.KeyRune, 'k'))
		assert.Nil(t, press(a, tcell.KeyRune, 'k'))
		assert.Equal(t, 0, menu.GetCurrentItem())
	})

	t.Run("tab switches between rail and content", func(t *testing.T) {
		a.tv.SetFocus(menu)
		assert.Nil(t, press(a, tcell.KeyTab, 0))
		assert.True(t, a.Current().HasFocus())
		assert.Nil(t, press(a, tcell.KeyTab, 0))
		assert.Equal(t, menu, a.tv.GetFocus())
	})
}

func TestKeyBindingsLeaveTextFieldsAlone(t *testing.T) {
	a := newTestApp(t, types.RouteSettings)

	field := tview.NewInputField()
	a.tv.SetFocus(field)

	for _, r := range []rune{'q', 'm', 'p', '2'} {
		ev := press(a, tcell.KeyRune, r)
		require.NotNil(t, ev, string(r))
		assert.Equal(t, r, ev.Rune())
	}
	assert.Equal(t, types.RouteSettings, a.Current().Route())
	assert.False(t, a.Shell().Sidebar().IsOpen())
}
