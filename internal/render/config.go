package render

import "image/color"

// Fixture palette. Names follow the X11/CSS colour names the demo fixture
// was originally described with.
var (
	White     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	Blue      = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	LightBlue = color.RGBA{R: 0xAD, G: 0xD8, B: 0xE6, A: 0xFF} // #add8e6
)

// Canvas size of the generated fixture.
const (
	CanvasWidth  = 400
	CanvasHeight = 300
)
