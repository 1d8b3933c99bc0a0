package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	bp := DefaultBreakpoints()
	tests := []struct {
		width int
		want  Mode
	}{
		{0, Mobile},
		{375, Mobile},
		{767, Mobile},
		{768, Tablet},
		{1024, Tablet},
		{1279, Tablet},
		{1280, Desktop},
		{2560, Desktop},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bp.Resolve(tt.width), "width %d", tt.width)
	}
}

func TestMeasureOffsetMatchesRail(t *testing.T) {
	bp := DefaultBreakpoints()
	tests := []struct {
		width        int
		mode         Mode
		presentation Presentation
		offset       int
	}{
		{500, Mobile, PresentationDrawer, 0},
		{900, Tablet, PresentationCollapsed, 60},
		{1440, Desktop, PresentationExpanded, 240},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			for _, open := range []bool{false, true} {
				m := bp.Measure(tt.width, open)
				assert.Equal(t, tt.mode, m.Mode)
				assert.Equal(t, tt.presentation, m.Presentation)
				assert.Equal(t, tt.offset, m.ContentOffset)
				assert.Equal(t, m.RailWidth, m.ContentOffset)
			}
		})
	}
}

func TestMeasureDrawerOnlyInMobile(t *testing.T) {
	bp := DefaultBreakpoints()

	m := bp.Measure(500, true)
	assert.True(t, m.DrawerVisible)
	assert.Equal(t, DrawerWidth, m.DrawerWidth)
	assert.Zero(t, m.ContentOffset, "drawer overlays, content does not move")

	assert.False(t, bp.Measure(500, false).DrawerVisible)
	assert.False(t, bp.Measure(900, true).DrawerVisible)
	assert.False(t, bp.Measure(1440, true).DrawerVisible)
}

func TestBreakpointsValidate(t *testing.T) {
	require.NoError(t, DefaultBreakpoints().Validate())
	assert.Error(t, Breakpoints{Tablet: 0, Desktop: 100}.Validate())
	assert.Error(t, Breakpoints{Tablet: 800, Desktop: 800}.Validate())
}

func TestCellConversion(t *testing.T) {
	assert.Equal(t, 6, ToCells(CollapsedRailWidth, 10))
	assert.Equal(t, 24, ToCells(ExpandedRailWidth, 10))
	assert.Equal(t, 26, ToCells(DrawerWidth, 10))
	assert.Equal(t, 0, ToCells(0, 10))
	assert.Equal(t, 800, ToPixels(80, 10))
	assert.Equal(t, 800, ToPixels(80, 0))
}

func TestColumns(t *testing.T) {
	assert.Equal(t, 1, Mobile.Columns(1, 2, 4))
	assert.Equal(t, 2, Tablet.Columns(1, 2, 4))
	assert.Equal(t, 4, Desktop.Columns(1, 2, 4))
}
