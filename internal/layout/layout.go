// Package layout maps the viewport width to the shell's responsive layout.
//
// Widths are logical pixels. The terminal front end converts screen cells to
// pixels with a fixed factor so the breakpoints keep their usual values.
// Nothing here stores the current mode: callers measure on every layout pass.
package layout

import "fmt"

const (
	DefaultTabletBreakpoint  = 768
	DefaultDesktopBreakpoint = 1280

	CollapsedRailWidth = 60
	ExpandedRailWidth  = 240
	DrawerWidth        = 256

	DefaultPixelsPerCell = 10
)

// Mode is the layout mode derived from the viewport width
type Mode int

const (
	Mobile Mode = iota
	Tablet
	Desktop
)

func (m Mode) String() string {
	switch m {
	case Mobile:
		return "mobile"
	case Tablet:
		return "tablet"
	case Desktop:
		return "desktop"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Presentation is how the navigation rail is shown in a mode
type Presentation int

const (
	PresentationDrawer Presentation = iota
	PresentationCollapsed
	PresentationExpanded
)

func (p Presentation) String() string {
	switch p {
	case PresentationDrawer:
		return "drawer"
	case PresentationCollapsed:
		return "collapsed"
	case PresentationExpanded:
		return "expanded"
	default:
		return fmt.Sprintf("presentation(%d)", int(p))
	}
}

// Presentation returns the rail presentation for the mode
func (m Mode) Presentation() Presentation {
	switch m {
	case Tablet:
		return PresentationCollapsed
	case Desktop:
		return PresentationExpanded
	default:
		return PresentationDrawer
	}
}

// RailWidth is the layout width the rail occupies. The mobile drawer
// overlays the content and occupies none.
func (m Mode) RailWidth() int {
	switch m {
	case Tablet:
		return CollapsedRailWidth
	case Desktop:
		return ExpandedRailWidth
	default:
		return 0
	}
}

// ContentOffset is the left margin of the content region.
func (m Mode) ContentOffset() int {
	return m.RailWidth()
}

// Breakpoints are the minimum widths of the tablet and desktop modes
type Breakpoints struct {
	Tablet  int `yaml:"tablet" env:"DASHBOARD_TABLET_BREAKPOINT"`
	Desktop int `yaml:"desktop" env:"DASHBOARD_DESKTOP_BREAKPOINT"`
}

// DefaultBreakpoints returns the 768/1280 breakpoints
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Tablet:  DefaultTabletBreakpoint,
		Desktop: DefaultDesktopBreakpoint,
	}
}

// Validate checks that both breakpoints are positive and ordered
func (b Breakpoints) Validate() error {
	if b.Tablet <= 0 {
		return fmt.Errorf("tablet breakpoint must be positive, got %d", b.Tablet)
	}
	if b.Desktop <= b.Tablet {
		return fmt.Errorf("desktop breakpoint %d must be above tablet breakpoint %d", b.Desktop, b.Tablet)
	}
	return nil
}

// Resolve maps a viewport width to its layout mode
func (b Breakpoints) Resolve(width int) Mode {
	switch {
	case width < b.Tablet:
		return Mobile
	case width < b.Desktop:
		return Tablet
	default:
		return Desktop
	}
}

// Narrow reports whether the width is below the tablet breakpoint
func (b Breakpoints) Narrow(width int) bool {
	return width < b.Tablet
}

// Metrics is the measured layout for one layout pass
type Metrics struct {
	Width         int
	Mode          Mode
	Presentation  Presentation
	RailWidth     int
	ContentOffset int
	// DrawerVisible is only ever true in Mobile mode.
	DrawerVisible bool
	DrawerWidth   int
}

// Measure computes the layout for the width. drawerOpen is only consulted in Mobile mode.
func (b Breakpoints) Measure(width int, drawerOpen bool) Metrics {
	mode := b.Resolve(width)
	m := Metrics{
		Width:         width,
		Mode:          mode,
		Presentation:  mode.Presentation(),
		RailWidth:     mode.RailWidth(),
		ContentOffset: mode.ContentOffset(),
	}
	if mode == Mobile && drawerOpen {
		m.DrawerVisible = true
		m.DrawerWidth = DrawerWidth
	}
	return m
}

// Columns picks a grid column count for the mode
func (m Mode) Columns(mobile, tablet, desktop int) int {
	switch m {
	case Tablet:
		return tablet
	case Desktop:
		return desktop
	default:
		return mobile
	}
}

// ToCells converts a pixel width to screen cells, rounding up so a rail never
// ends up narrower than its pixel width.
func ToCells(px, pixelsPerCell int) int {
	if px <= 0 {
		return 0
	}
	if pixelsPerCell <= 0 {
		pixelsPerCell = DefaultPixelsPerCell
	}
	return (px + pixelsPerCell - 1) / pixelsPerCell
}

// ToPixels converts screen cells to a pixel width
func ToPixels(cells, pixelsPerCell int) int {
	if pixelsPerCell <= 0 {
		pixelsPerCell = DefaultPixelsPerCell
	}
	return cells * pixelsPerCell
}
