package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements. The palette is wide enough to give
// each spawned enemy one of twenty named colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorGold
	ColorPink
	ColorPurple
	ColorViolet
	ColorLime
	ColorBrown
	ColorMaroon
	ColorBeige
	ColorSkyBlue
	ColorDarkBlue
	ColorDarkGreen
	ColorDarkGray
)
