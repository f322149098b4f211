package core

// Color represents a cell color. The platform maps each value to a concrete
// terminal or RGB color.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorOrange
	ColorGray
	ColorSkyDay
	ColorSkyNight
	ColorPipeGreen
	ColorPipeRed
	ColorPipeShade
	ColorGround
	ColorGrass
	ColorCoinGold
	ColorCoinSilver
)

// RGB returns the 8-bit RGB components of the color.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack:
		return 0x00, 0x00, 0x00
	case ColorRed:
		return 0xd8, 0x3a, 0x2c
	case ColorGreen:
		return 0x5e, 0xbe, 0x3c
	case ColorYellow:
		return 0xf8, 0xd8, 0x30
	case ColorBlue:
		return 0x3c, 0x8c, 0xdc
	case ColorWhite:
		return 0xff, 0xff, 0xff
	case ColorOrange:
		return 0xf8, 0x8c, 0x20
	case ColorGray:
		return 0x80, 0x80, 0x80
	case ColorSkyDay:
		return 0x4e, 0xc0, 0xca
	case ColorSkyNight:
		return 0x00, 0x87, 0x93
	case ColorPipeGreen:
		return 0x74, 0xbf, 0x2e
	case ColorPipeRed:
		return 0xc0, 0x40, 0x30
	case ColorPipeShade:
		return 0x54, 0x38, 0x47
	case ColorGround:
		return 0xde, 0xd8, 0x95
	case ColorGrass:
		return 0x5e, 0xe2, 0x70
	case ColorCoinGold:
		return 0xf8, 0xc0, 0x20
	case ColorCoinSilver:
		return 0xc8, 0xcc, 0xd0
	default:
		return 0x00, 0x00, 0x00
	}
}

// ANSI returns the closest ANSI 256-color palette index.
func (c Color) ANSI() int {
	r, g, b := c.RGB()
	if c == ColorDefault {
		return 0
	}
	// 6x6x6 color cube starts at 16.
	q := func(v uint8) int { return (int(v)*5 + 127) / 255 }
	return 16 + 36*q(r) + 6*q(g) + q(b)
}
