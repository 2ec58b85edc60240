package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/raster"
	"github.com/rook-computer/testimage/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var _ Drawer = (*Canvas)(nil)

// kappa places cubic Bézier control points so four segments approximate a
// quarter ellipse each.
const kappa = 0.5522847498307936

// Canvas is an offscreen RGBA raster with a fixed size and background.
type Canvas struct {
	img        *image.RGBA
	background color.Color
	fontFace   font.Face
	Logger     interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

// NewCanvas allocates a width x height canvas filled with background.
// A nil face selects DefaultFace.
func NewCanvas(width, height int, background color.Color, face font.Face) *Canvas {
	if face == nil {
		face = DefaultFace()
	}
	c := &Canvas{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		fontFace:   face,
	}
	c.FillBackground()
	return c
}

// Image returns the backing raster.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

func (c *Canvas) FillBackground() {
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: c.background}, image.Point{}, draw.Src)
}

func (c *Canvas) StrokeRect(rect image.Rectangle, col color.Color, widthPx int) {
	if widthPx <= 0 {
		return
	}
	src := &image.Uniform{C: col}
	top, bottom, left, right := layout.Border(rect, widthPx)
	for _, band := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(c.img, band, src, image.Point{}, draw.Over)
	}
	if c.Logger != nil {
		c.Logger.Infof("canvas", "stroked rect %v width=%d", rect, widthPx)
	}
}

func (c *Canvas) Ellipse(rect image.Rectangle, fill, outline color.Color, outlinePx int) {
	rect = layout.Normalize(rect)
	if rect.Empty() {
		return
	}
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	rx := float64(rect.Dx()) / 2
	ry := float64(rect.Dy()) / 2

	width, height := c.Size()
	rasterizer := raster.NewRasterizer(width, height)
	rasterizer.UseNonZeroWinding = true
	painter := raster.NewRGBAPainter(c.img)

	if fill != nil {
		rasterizer.AddPath(ellipsePath(cx, cy, rx, ry))
		painter.SetColor(fill)
		rasterizer.Rasterize(painter)
	}
	if outline != nil && outlinePx > 0 {
		half := float64(outlinePx) / 2
		rasterizer.Clear()
		raster.Stroke(rasterizer, ellipsePath(cx, cy, rx-half, ry-half), fixed.I(outlinePx), nil, nil)
		painter.SetColor(outline)
		rasterizer.Rasterize(painter)
	}
	if c.Logger != nil {
		c.Logger.Infof("canvas", "ellipse in %v outline=%d", rect, outlinePx)
	}
}

func (c *Canvas) MeasureText(text string) TextMetrics {
	metrics := c.fontFace.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	return TextMetrics{
		Width:      font.MeasureString(c.fontFace, text).Ceil(),
		Height:     ascent + descent,
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: metrics.Height.Ceil(),
	}
}

// DrawText renders text with the top of its line box at y.
func (c *Canvas) DrawText(text string, x, y int, style TextStyle) TextMetrics {
	m := c.MeasureText(text)
	switch style.Align {
	case TextAlignCenter:
		x -= m.Width / 2
	case TextAlignRight:
		x -= m.Width
	}
	textColor := style.Color
	if textColor == nil {
		textColor = Black
	}
	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: c.fontFace,
		Dot:  fixed.P(x, y+m.Ascent),
	}
	drawer.DrawString(text)
	if c.Logger != nil {
		c.Logger.Infof("canvas", "text %q at (%d,%d) width=%d", text, x, y, m.Width)
	}
	return m
}

func ellipsePath(cx, cy, rx, ry float64) raster.Path {
	var p raster.Path
	p.Start(point(cx+rx, cy))
	p.Add3(point(cx+rx, cy+kappa*ry), point(cx+kappa*rx, cy+ry), point(cx, cy+ry))
	p.Add3(point(cx-kappa*rx, cy+ry), point(cx-rx, cy+kappa*ry), point(cx-rx, cy))
	p.Add3(point(cx-rx, cy-kappa*ry), point(cx-kappa*rx, cy-ry), point(cx, cy-ry))
	p.Add3(point(cx+kappa*rx, cy-ry), point(cx+rx, cy-kappa*ry), point(cx+rx, cy))
	return p
}

func point(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}
