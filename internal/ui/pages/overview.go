package pages

import (
	"context"
	"time"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/loading"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui"
	"admin-dashboard/internal/ui/components"

	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const revenueTrendTitle = "Revenue Trend"

var revenueSeries = []int{12, 15, 14, 18, 22, 21, 25, 28, 27, 31, 35, 38}

// Overview is the /dashboard page. It shows skeletons until its loading
// gate opens, then the stats, the revenue chart and the transactions.
type Overview struct {
	*tview.Flex
	header *tview.TextView
	stats  *tview.Grid
	bottom *tview.Grid

	statCards []tview.Primitive
	panels    []tview.Primitive

	dashboard *store.DashboardStore
	queue     Updater
	delay     time.Duration
	log       *zap.Logger

	gate        *loading.Gate
	unsubscribe func()
	// visit changes on every mount and unmount so queued callbacks from an
	// earlier visit can tell they are stale.
	visit          int
	ready          bool
	contentRenders int
}

// NewOverview creates the overview page
func NewOverview(dashboard *store.DashboardStore, queue Updater, delay time.Duration, log *zap.Logger) *Overview {
	o := &Overview{
		header:    components.CreatePageHeader("Dashboard", "Welcome to your admin dashboard"),
		stats:     tview.NewGrid(),
		bottom:    tview.NewGrid(),
		dashboard: dashboard,
		queue:     queue,
		delay:     delay,
		log:       log,
	}

	o.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(o.header, 3, 0, false).
		AddItem(o.stats, 0, 0, false).
		AddItem(o.bottom, 0, 1, true)
	o.renderSkeleton()
	return o
}

func (o *Overview) Route() types.Route { return types.RouteDashboard }

// Mount shows the skeletons and arms a fresh loading gate
func (o *Overview) Mount(ctx context.Context) {
	o.Unmount()
	o.visit++
	visit := o.visit
	o.ready = false
	o.renderSkeleton()

	o.gate = loading.Start(ctx, o.delay, func() {
		o.queue(func() {
			if o.visit != visit {
				return
			}
			o.ready = true
			o.log.Debug("overview ready", zap.Duration("delay", o.delay))
			o.renderContent(o.dashboard.Snapshot())
		})
	})

	o.unsubscribe = o.dashboard.Subscribe(func(state store.DashboardState) {
		o.queue(func() {
			if o.visit != visit || !o.ready {
				return
			}
			o.renderContent(state)
		})
	})
}

// Unmount stops the gate and the store subscription
func (o *Overview) Unmount() {
	if o.gate != nil {
		o.gate.Stop()
		o.gate = nil
	}
	if o.unsubscribe != nil {
		o.unsubscribe()
		o.unsubscribe = nil
	}
	o.visit++
}

// Apply lays the grids out for the mode
func (o *Overview) Apply(mode layout.Mode) {
	height := components.LayoutCards(o.stats, o.statCards, mode.Columns(1, 2, 4), components.CardHeight)
	o.Flex.ResizeItem(o.stats, height, 0)
	components.LayoutCards(o.bottom, o.panels, mode.Columns(1, 1, 2), 0)
}

// renderSkeleton mirrors the real content: one card per stat, one chart, one table.
func (o *Overview) renderSkeleton() {
	count := len(o.dashboard.Stats())
	o.statCards = make([]tview.Primitive, 0, count)
	for i := 0; i < count; i++ {
		o.statCards = append(o.statCards, components.CreateSkeletonCard())
	}
	o.panels = []tview.Primitive{
		components.CreateSkeletonChart(revenueTrendTitle),
		components.CreateSkeletonTable("Recent Transactions", 6),
	}
}

func (o *Overview) renderContent(state store.DashboardState) {
	o.statCards = make([]tview.Primitive, 0, len(state.Stats))
	for _, stat := range state.Stats {
		up := stat.Trend == types.TrendUp
		o.statCards = append(o.statCards, components.CreateCard(stat.Label, components.StatBody(stat.Value, stat.Change, up, up)))
	}

	table := components.CreateMainTable()
	ui.PopulateTransactions(table, state.Transactions)
	o.panels = []tview.Primitive{
		components.CreateChartPlaceholder(revenueTrendTitle, revenueSeries),
		table,
	}
	o.contentRenders++
}
