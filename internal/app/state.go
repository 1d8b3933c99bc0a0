// state.go - page lifecycle
package app

import (
	"context"

	"admin-dashboard/internal/types"

	"go.uber.org/zap"
)

// mountPage tears the current page down and mounts the page of route in a
// freshly mounted shell.
func (a *App) mountPage(route types.Route) {
	a.unmountPage()

	page, ok := a.pages[route]
	if !ok {
		a.log.Error("no page for route", zap.String("route", string(route)))
		return
	}

	ctx, cancel := context.WithCancel(a.ctx)
	a.cancelPage = cancel
	a.current = page

	a.shell.Remount()
	a.shell.SetContent(page)
	page.Mount(ctx)
	a.tv.SetFocus(page)

	a.log.Debug("page mounted", zap.String("route", string(route)))
}

func (a *App) unmountPage() {
	if a.current != nil {
		a.current.Unmount()
		a.log.Debug("page unmounted", zap.String("route", string(a.current.Route())))
		a.current = nil
	}
	if a.cancelPage != nil {
		a.cancelPage()
		a.cancelPage = nil
	}
}
