package ui

// Global keys. They are ignored while a text field has focus.
const (
	KeyQuit    = 'q'
	KeyMenu    = 'm'
	KeyProfile = 'p'
	KeyDown    = 'j'
	KeyUp      = 'k'
)

// HelpText is shown in the footer of every page
const HelpText = "q quit | m menu | p profile | Esc close | Tab rail/content | j/k navigate | 1-3 pages"
