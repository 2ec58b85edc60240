package render

import (
	"image"
	"image/color"
)

// Drawer is the set of primitives a scene needs from a canvas. It keeps
// scenes independent of the raster backend.
type Drawer interface {
	// Size returns the canvas size in pixels.
	Size() (width int, height int)

	FillBackground()

	MeasureText(text string) TextMetrics
	DrawText(text string, x, y int, style TextStyle) TextMetrics

	// StrokeRect outlines rect with a stroke of widthPx drawn inward from
	// its edges.
	StrokeRect(rect image.Rectangle, c color.Color, widthPx int)
	// Ellipse fills the ellipse inscribed in rect and outlines it with a
	// stroke of outlinePx drawn just inside the edge. A nil fill or a zero
	// outlinePx skips that part.
	Ellipse(rect image.Rectangle, fill, outline color.Color, outlinePx int)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text.
// Coordinates for DrawText use a top-left anchor for Y.
// For X, Align controls how x is interpreted.
type TextStyle struct {
	Color color.Color
	Align TextAlign
}

type TextMetrics struct {
	Width      int
	Height     int
	Ascent     int
	Descent    int
	LineHeight int
}
