package core

import "image/color"

// Color represents a palette entry for canvas drawing and screen cells.
// Terminal platforms map it to ANSI 256-color codes, pixel platforms use RGBA.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorWhite
	ColorGray
	ColorOrange
	ColorSky    // Background fill behind the parallax layers
	ColorForest // Splash panel fill
	ColorAmber  // Splash and score text
	ColorBrown  // Ground layer
	ColorStone  // Far mountains
)

var palette = map[Color]color.RGBA{
	ColorDefault: {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorRed:     {R: 0xd0, G: 0x30, B: 0x30, A: 0xff},
	ColorGreen:   {R: 0x3c, G: 0xa0, B: 0x3c, A: 0xff},
	ColorYellow:  {R: 0xf0, G: 0xd0, B: 0x30, A: 0xff},
	ColorBlue:    {R: 0x30, G: 0x60, B: 0xd0, A: 0xff},
	ColorWhite:   {R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	ColorGray:    {R: 0x8a, G: 0x8a, B: 0x8a, A: 0xff},
	ColorOrange:  {R: 0xff, G: 0x87, B: 0x00, A: 0xff},
	ColorSky:     {R: 0x83, G: 0xc9, B: 0xe4, A: 0xff},
	ColorForest:  {R: 0x17, G: 0x6e, B: 0x3e, A: 0xff},
	ColorAmber:   {R: 0xfa, G: 0xa3, B: 0x00, A: 0xff},
	ColorBrown:   {R: 0x7a, G: 0x4e, B: 0x2a, A: 0xff},
	ColorStone:   {R: 0x6d, G: 0x7b, B: 0x8c, A: 0xff},
}

// RGBA returns the pixel color for this palette entry.
func (c Color) RGBA() color.RGBA {
	if v, ok := palette[c]; ok {
		return v
	}
	return palette[ColorDefault]
}
