package components

import "image/color"

// Shared palette. Square and accent colors follow the trainer's scheme.
var (
	colorPrimary     = color.NRGBA{R: 0x1a, G: 0x36, B: 0x5d, A: 0xff}
	colorSecondary   = color.NRGBA{R: 0x2d, G: 0x37, B: 0x48, A: 0xff}
	colorLightSquare = color.NRGBA{R: 0xf7, G: 0xfa, B: 0xfc, A: 0xff}
	colorDarkSquare  = color.NRGBA{R: 0x4a, G: 0x55, B: 0x68, A: 0xff}
	colorAccent      = color.NRGBA{R: 0x31, G: 0x82, B: 0xce, A: 0xff}
	colorBackground  = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorError       = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	colorWarning     = color.NRGBA{R: 0xf5, G: 0x9e, B: 0x0b, A: 0xff}

	chartBlue  = color.NRGBA{R: 0x31, G: 0x82, B: 0xce, A: 0xff}
	chartGreen = color.NRGBA{R: 0x2f, G: 0x85, B: 0x5a, A: 0xff}
	chartRed   = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
)
