package core

// Color names the role of a canvas cell. The front-end maps each role to
// terminal foreground and background colors.
type Color uint8

// Panel palette.
const (
	ColorDefault Color = iota
	ColorGlass         // unlit panel area (backlight only)
	ColorPixel         // lit pixel on the glass
	ColorBezel         // frame around the panel
	ColorLabel         // status text
	ColorValue         // status numbers
	ColorAlert         // round over
	ColorLEDOn         // autoplay indicator, lit
	ColorLEDOff        // autoplay indicator, dark
)
