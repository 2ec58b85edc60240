package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromCorners(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           image.Rectangle
	}{
		{"ordered", 50, 50, 350, 250, image.Rect(50, 50, 351, 251)},
		{"swapped", 350, 250, 50, 50, image.Rect(50, 50, 351, 251)},
		{"single pixel", 3, 4, 3, 4, image.Rect(3, 4, 4, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromCorners(tt.x0, tt.y0, tt.x1, tt.y1))
		})
	}
}

func TestInset(t *testing.T) {
	rect := image.Rect(0, 0, 10, 8)
	assert.Equal(t, rect, Inset(rect, 0))
	assert.Equal(t, image.Rect(2, 2, 8, 6), Inset(rect, 2))
	assert.True(t, Inset(rect, 4).Empty())
	assert.True(t, Inset(rect, 6).Empty())
}

func TestSplitsClamp(t *testing.T) {
	rect := image.Rect(0, 0, 10, 10)

	left, right := SplitVertical(rect, 15)
	assert.Equal(t, rect, left)
	assert.True(t, right.Empty())

	top, bottom := SplitHorizontal(rect, -1)
	assert.True(t, top.Empty())
	assert.Equal(t, rect, bottom)
}

func TestBorder(t *testing.T) {
	top, bottom, left, right := Border(image.Rect(50, 50, 351, 251), 3)

	assert.Equal(t, image.Rect(50, 50, 351, 53), top)
	assert.Equal(t, image.Rect(50, 248, 351, 251), bottom)
	assert.Equal(t, image.Rect(50, 53, 53, 248), left)
	assert.Equal(t, image.Rect(348, 53, 351, 248), right)
}

func TestBorderThickerThanRect(t *testing.T) {
	rect := image.Rect(0, 0, 4, 4)
	top, bottom, left, right := Border(rect, 2)

	assert.Equal(t, rect, top)
	assert.True(t, bottom.Empty())
	assert.True(t, left.Empty())
	assert.True(t, right.Empty())
}
