package layout

// SidebarState is the open/closed flag of the mobile drawer. The zero value is closed.
type SidebarState struct {
	open bool
}

func (s *SidebarState) IsOpen() bool { return s.open }

// Open handles a menu request from the top bar.
func (s *SidebarState) Open() { s.open = true }

// Close handles an explicit close request.
func (s *SidebarState) Close() { s.open = false }

// OverlayClick handles a click on the dimmed area outside the drawer.
func (s *SidebarState) OverlayClick() { s.open = false }

// LinkActivated closes the drawer when a link is followed while the viewport
// is narrower than the tablet breakpoint. It reports whether it closed.
func (s *SidebarState) LinkActivated(width int, bp Breakpoints) bool {
	if !bp.Narrow(width) {
		return false
	}
	closed := s.open
	s.open = false
	return closed
}

// DropdownState is the open/closed flag of the profile dropdown. The zero value is closed.
type DropdownState struct {
	open bool
}

func (d *DropdownState) IsOpen() bool { return d.open }

// Toggle handles a click on the avatar button.
func (d *DropdownState) Toggle() { d.open = !d.open }

// OutsideClick handles a click on the backdrop behind the panel.
func (d *DropdownState) OutsideClick() { d.open = false }

// InsideClick handles a click inside the panel, which keeps it open.
func (d *DropdownState) InsideClick() {}
