// Package pages contains the screens shown inside the shell
package pages

import (
	"context"

	"admin-dashboard/internal/layout"
	"admin-dashboard/internal/types"

	"github.com/rivo/tview"
)

// Page is one routed screen. Mount and Unmount bracket every visit.
type Page interface {
	tview.Primitive
	Route() types.Route
	Mount(ctx context.Context)
	Unmount()
	Apply(mode layout.Mode)
}

// Updater hands a function to the UI event loop. The running application
// passes QueueUpdateDraw; tests run the function inline.
type Updater func(func())
