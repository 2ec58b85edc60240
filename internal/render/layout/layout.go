package layout

import "image"

// FromCorners returns the rectangle covering every pixel between two
// inclusive corner points, in either order.
func FromCorners(x0, y0, x1, y1 int) image.Rectangle {
	rect := Normalize(image.Rectangle{Min: image.Pt(x0, y0), Max: image.Pt(x1, y1)})
	rect.Max = rect.Max.Add(image.Pt(1, 1))
	return rect
}

// Inset shrinks rect by paddingPx on all sides.
// The result is empty when the padding consumes either dimension.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	rect = Normalize(rect)
	if paddingPx <= 0 {
		return rect
	}
	if 2*paddingPx >= rect.Dx() || 2*paddingPx >= rect.Dy() {
		return image.Rectangle{}
	}
	return image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitVertical splits rect into left and right parts.
// leftWidthPx is clamped to [0, rect.Dx()].
func SplitVertical(rect image.Rectangle, leftWidthPx int) (left image.Rectangle, right image.Rectangle) {
	rect = Normalize(rect)
	leftWidthPx = clamp(leftWidthPx, rect.Dx())
	left = image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+leftWidthPx, rect.Max.Y)
	right = image.Rect(rect.Min.X+leftWidthPx, rect.Min.Y, rect.Max.X, rect.Max.Y)
	return left, right
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	topHeightPx = clamp(topHeightPx, rect.Dy())
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// Border returns the four bands of rect that lie within widthPx of its
// edges. Top and bottom span the full width; left and right fill the rows
// in between.
func Border(rect image.Rectangle, widthPx int) (top, bottom, left, right image.Rectangle) {
	rect = Normalize(rect)
	if Inset(rect, widthPx).Empty() {
		return rect, image.Rectangle{}, image.Rectangle{}, image.Rectangle{}
	}
	top, rest := SplitHorizontal(rect, widthPx)
	middle, bottom := SplitHorizontal(rest, rest.Dy()-widthPx)
	left, rest = SplitVertical(middle, widthPx)
	_, right = SplitVertical(rest, rest.Dx()-widthPx)
	return top, bottom, left, right
}

func clamp(v, limit int) int {
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
