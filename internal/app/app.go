package app

import (
	"context"
	"fmt"

	"admin-dashboard/internal/config"
	"admin-dashboard/internal/nav"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui"
	"admin-dashboard/internal/ui/pages"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Options configures CreateApp
type Options struct {
	Config config.Config
	Logger *zap.Logger
	// Screen replaces the terminal, for tests.
	Screen tcell.Screen
}

// App wires the stores, the router and the shell into a tview application
type App struct {
	cfg config.Config
	log *zap.Logger

	tv        *tview.Application
	shell     *ui.Shell
	router    *nav.Router
	auth      *store.AuthStore
	dashboard *store.DashboardStore

	pages      map[types.Route]pages.Page
	current    pages.Page
	ctx        context.Context
	cancelPage context.CancelFunc
}

// CreateApp initializes the application and mounts the initial page
func CreateApp(ctx context.Context, opts Options) (*App, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	router, err := nav.NewRouter(opts.Config.InitialRoute)
	if err != nil {
		return nil, fmt.Errorf("create router: %w", err)
	}

	ui.SetupRosePineTheme()

	a := &App{
		cfg:       opts.Config,
		log:       log,
		tv:        tview.NewApplication(),
		router:    router,
		auth:      store.NewAuthStore(store.SeedAuth(), log),
		dashboard: store.NewDashboardStore(store.SeedDashboard(), log),
		ctx:       ctx,
	}
	if opts.Screen != nil {
		a.tv.SetScreen(opts.Screen)
	}

	a.shell = ui.NewShell(ui.ShellOptions{
		Breakpoints:   opts.Config.Breakpoints,
		PixelsPerCell: opts.Config.PixelsPerCell,
		Auth:          a.auth,
		Current:       router.Current,
		Navigate:      a.Navigate,
		Logger:        log,
	})

	a.pages = make(map[types.Route]pages.Page)
	for _, p := range []pages.Page{
		pages.NewOverview(a.dashboard, a.queueUpdate, opts.Config.LoadingDelay, log),
		pages.NewAnalytics(),
		pages.NewSettings(a.auth, log),
	} {
		a.pages[p.Route()] = p
	}

	router.OnChange(func(from, to types.Route) {
		log.Info("route changed", zap.String("from", string(from)), zap.String("to", string(to)))
		a.mountPage(to)
	})

	a.tv.SetRoot(a.shell, true).EnableMouse(opts.Config.Mouse)
	SetupKeyBindings(a)
	a.mountPage(router.Current())

	return a, nil
}

// Run blocks until the user quits or ctx is cancelled
func (a *App) Run() error {
	stop := context.AfterFunc(a.ctx, a.tv.Stop)
	defer stop()
	defer a.unmountPage()

	a.log.Info("dashboard started", zap.String("route", string(a.router.Current())))
	if err := a.tv.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	a.log.Info("dashboard stopped")
	return nil
}

// Navigate follows a link. Unknown routes are logged and ignored.
func (a *App) Navigate(route types.Route) {
	if err := a.router.Navigate(route); err != nil {
		a.log.Warn("navigation rejected", zap.String("route", string(route)), zap.Error(err))
	}
}

// queueUpdate hands fn to the event loop without blocking the caller
func (a *App) queueUpdate(fn func()) {
	go func() {
		a.tv.QueueUpdateDraw(fn)
	}()
}

func (a *App) Shell() *ui.Shell { return a.shell }

func (a *App) Router() *nav.Router { return a.router }

func (a *App) Auth() *store.AuthStore { return a.auth }

func (a *App) Dashboard() *store.DashboardStore { return a.dashboard }

// Current returns the mounted page
func (a *App) Current() pages.Page { return a.current }
