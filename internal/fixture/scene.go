// Package fixture describes the placeholder image used by the multimodal
// demo. Downstream tests compare pixels against it, so every coordinate,
// colour and string here is fixed.
package fixture

import (
	"image"
	"image/color"

	"github.com/rook-computer/testimage/internal/render"
	"github.com/rook-computer/testimage/internal/render/layout"
	"golang.org/x/image/font"
)

// Filename is the name the fixture is written under.
const Filename = "test-image.png"

// Op is one drawing step of a scene.
type Op interface {
	Apply(d render.Drawer)
}

// Rect outlines the pixels between two inclusive corners.
type Rect struct {
	X0, Y0, X1, Y1 int
	Outline        color.Color
	Width          int
}

func (r Rect) Apply(d render.Drawer) {
	d.StrokeRect(layout.FromCorners(r.X0, r.Y0, r.X1, r.Y1), r.Outline, r.Width)
}

// Ellipse fills the ellipse bounded by two inclusive corners.
type Ellipse struct {
	X0, Y0, X1, Y1 int
	Fill, Outline  color.Color
}

func (e Ellipse) Apply(d render.Drawer) {
	d.Ellipse(layout.FromCorners(e.X0, e.Y0, e.X1, e.Y1), e.Fill, e.Outline, 1)
}

// Text places a label with its top-left corner at (X, Y).
type Text struct {
	X, Y  int
	Label string
	Color color.Color
}

func (t Text) Apply(d render.Drawer) {
	d.DrawText(t.Label, t.X, t.Y, render.TextStyle{Color: t.Color})
}

// Scene returns the drawing steps of the fixture in paint order.
func Scene() []Op {
	return []Op{
		Rect{X0: 50, Y0: 50, X1: 350, Y1: 250, Outline: render.Blue, Width: 3},
		Text{X: 80, Y: 100, Label: "AI Workflow CLI", Color: render.Black},
		Text{X: 80, Y: 140, Label: "Multimodal Support", Color: render.Blue},
		Ellipse{X0: 150, Y0: 180, X1: 250, Y1: 220, Fill: render.LightBlue, Outline: render.Blue},
		Text{X: 165, Y: 190, Label: "Images", Color: render.Black},
	}
}

// Draw paints ops onto d in order.
func Draw(d render.Drawer, ops []Op) {
	for _, op := range ops {
		op.Apply(d)
	}
}

// NewCanvas allocates the fixture's white 400x300 canvas. A nil face
// selects the default bitmap face.
func NewCanvas(face font.Face) *render.Canvas {
	return render.NewCanvas(render.CanvasWidth, render.CanvasHeight, render.White, face)
}

// Render draws the fixture scene onto canvas and returns its raster.
func Render(canvas *render.Canvas) *image.RGBA {
	Draw(canvas, Scene())
	return canvas.Image()
}
