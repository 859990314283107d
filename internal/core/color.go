package core

// Color is a palette index for a screen cell's foreground.
// The platform decides how each index is drawn.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrown
	ColorSaddleBrown
	ColorSilver
	ColorGreenYellow
	ColorTan
	ColorAqua
	ColorGold

	// NumColors is the palette size.
	NumColors
)
