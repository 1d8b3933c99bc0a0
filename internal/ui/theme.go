package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Rose Pine Moon palette
var (
	ColorBase    = tcell.NewRGBColor(35, 33, 54)    // #232136
	ColorSurface = tcell.NewRGBColor(42, 39, 63)    // #2a273f
	ColorOverlay = tcell.NewRGBColor(57, 53, 82)    // #393552
	ColorMuted   = tcell.NewRGBColor(110, 106, 134) // #6e6a86
	ColorSubtle  = tcell.NewRGBColor(144, 140, 170) // #908caa
	ColorText    = tcell.NewRGBColor(224, 222, 244) // #e0def4
	ColorLove    = tcell.NewRGBColor(235, 111, 146) // #eb6f92
	ColorGold    = tcell.NewRGBColor(246, 193, 119) // #f6c177
	ColorRose    = tcell.NewRGBColor(234, 154, 151) // #ea9a97
	ColorPine    = tcell.NewRGBColor(62, 143, 176)  // #3e8fb0
	ColorFoam    = tcell.NewRGBColor(156, 207, 216) // #9ccfd8
	ColorIris    = tcell.NewRGBColor(196, 167, 231) // #c4a7e7

	// ColorScrim dims whatever sits below the mobile drawer.
	ColorScrim = tcell.NewRGBColor(20, 19, 31)
)

// Color tags for tview dynamic colors
const (
	TagPrimary = "[#c4a7e7::b]"
	TagMuted   = "[#6e6a86]"
	TagSubtle  = "[#908caa]"
	TagSuccess = "[#9ccfd8]"
	TagWarning = "[#f6c177]"
	TagDanger  = "[#eb6f92]"
	TagReset   = "[-:-:-]"
)

// SetupRosePineTheme configures the Rose Pine color theme for the TUI
func SetupRosePineTheme() {
	tview.Styles = tview.Theme{
		PrimitiveBackgroundColor:    ColorBase,
		ContrastBackgroundColor:     ColorSurface,
		MoreContrastBackgroundColor: ColorOverlay,
		BorderColor:                 ColorMuted,
		TitleColor:                  ColorRose,
		GraphicsColor:               ColorFoam,
		PrimaryTextColor:            ColorText,
		SecondaryTextColor:          ColorSubtle,
		TertiaryTextColor:           ColorMuted,
		InverseTextColor:            ColorBase,
		ContrastSecondaryTextColor:  ColorText,
	}
}
