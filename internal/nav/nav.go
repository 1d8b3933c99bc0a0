// Package nav holds the navigation descriptors and the in-process router
package nav

import (
	"errors"
	"fmt"

	"admin-dashboard/internal/types"
)

var ErrUnknownRoute = errors.New("unknown route")

var items = []types.NavigationItem{
	{Label: "Dashboard", Route: types.RouteDashboard, Icon: "⌂"},
	{Label: "Analytics", Route: types.RouteAnalytics, Icon: "▤"},
	{Label: "Settings", Route: types.RouteSettings, Icon: "⚙"},
}

// Items returns the ordered navigation list
func Items() []types.NavigationItem {
	out := make([]types.NavigationItem, len(items))
	copy(out, items)
	return out
}

// IsActive reports whether the item points at the current route. Only exact
// matches count, so /dashboard/x does not activate /dashboard.
func IsActive(item types.NavigationItem, current types.Route) bool {
	return item.Route == current
}

// ActiveIndex returns the index of the active item or -1
func ActiveIndex(list []types.NavigationItem, current types.Route) int {
	for i, item := range list {
		if IsActive(item, current) {
			return i
		}
	}
	return -1
}

// Normalize resolves aliases and rejects routes with no page
func Normalize(route types.Route) (types.Route, error) {
	if route == types.RouteRoot || route == "" {
		return types.RouteDashboard, nil
	}
	for _, item := range items {
		if item.Route == route {
			return route, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownRoute, route)
}

// Router tracks the current route and notifies listeners on change.
// It is driven from the UI event loop and is not safe for concurrent use.
type Router struct {
	current   types.Route
	listeners []func(from, to types.Route)
}

// NewRouter creates a router positioned on the initial route
func NewRouter(initial types.Route) (*Router, error) {
	route, err := Normalize(initial)
	if err != nil {
		return nil, err
	}
	return &Router{current: route}, nil
}

func (r *Router) Current() types.Route {
	return r.current
}

// OnChange registers a listener called after every effective navigation
func (r *Router) OnChange(fn func(from, to types.Route)) {
	r.listeners = append(r.listeners, fn)
}

// Navigate moves to the route. Navigating to the current route does nothing.
func (r *Router) Navigate(route types.Route) error {
	to, err := Normalize(route)
	if err != nil {
		return err
	}
	if to == r.current {
		return nil
	}

	from := r.current
	r.current = to
	for _, fn := range r.listeners {
		fn(from, to)
	}
	return nil
}
