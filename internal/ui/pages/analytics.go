package pages

import (
	"context"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/types"
	"admin-dashboard/internal/ui/components"

	"github.com/rivo/tview"
)

type metric struct {
	label  string
	value  string
	change string
	good   bool
}

var analyticsMetrics = []metric{
	{label: "Conversion Rate", value: "3.24%", change: "0.3% from last week", good: true},
	{label: "Bounce Rate", value: "42.3%", change: "2.1% from last week", good: false},
	{label: "Avg. Session", value: "4m 32s", change: "12s from last week", good: true},
}

// Analytics is the /analytics page. Its content is static.
type Analytics struct {
	*tview.Flex
	charts  *tview.Grid
	metrics *tview.Grid

	chartPanels []tview.Primitive
	metricCards []tview.Primitive
}

func NewAnalytics() *Analytics {
	a := &Analytics{
		charts:  tview.NewGrid(),
		metrics: tview.NewGrid(),
		chartPanels: []tview.Primitive{
			components.CreateChartPlaceholder("Revenue Trend", []int{8, 11, 10, 14, 17, 16, 21, 24}),
			components.CreateChartPlaceholder("User Growth", []int{3, 4, 6, 7, 9, 12, 14, 18}),
		},
	}
	for _, m := range analyticsMetrics {
		a.metricCards = append(a.metricCards, components.CreateCard(m.label, components.StatBody(m.value, m.change, m.good, true)))
	}

	a.Flex = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(components.CreatePageHeader("Analytics", "Data insights and performance metrics"), 3, 0, false).
		AddItem(a.charts, 0, 0, false).
		AddItem(components.CreateChartPlaceholder("Performance Metrics", []int{5, 9, 7, 12, 10, 15, 13, 18, 16, 20}), 0, 1, false).
		AddItem(a.metrics, 0, 0, false)
	return a
}

func (a *Analytics) Route() types.Route { return types.RouteAnalytics }

func (a *Analytics) Mount(context.Context) {}

func (a *Analytics) Unmount() {}

func (a *Analytics) Apply(mode layout.Mode) {
	a.Flex.ResizeItem(a.charts, components.LayoutCards(a.charts, a.chartPanels, mode.Columns(1, 1, 2), 8), 0)
	a.Flex.ResizeItem(a.metrics, components.LayoutCards(a.metrics, a.metricCards, mode.Columns(1, 3, 3), components.CardHeight), 0)
}
