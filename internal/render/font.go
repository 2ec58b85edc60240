package render

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// ErrFontInit is returned when a font face cannot be created.
var ErrFontInit = errors.New("font init failed")

// DefaultFontSize is the size, in points at 72 DPI, used for loaded fonts
// when no size is given.
const DefaultFontSize = 13

const fontDPI = 72

// DefaultFace returns the built-in 7x13 bitmap face.
func DefaultFace() font.Face { return basicfont.Face7x13 }

// LoadFaceFile reads a TrueType or OpenType font from path.
func LoadFaceFile(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontInit, err)
	}
	return LoadFace(data, size)
}

// LoadFace parses data with the OpenType parser first and falls back to
// freetype's TrueType parser, which tolerates some tables sfnt rejects.
func LoadFace(data []byte, size float64) (font.Face, error) {
	if size <= 0 {
		size = DefaultFontSize
	}
	face, otErr := newOpenTypeFace(data, size)
	if otErr == nil {
		return face, nil
	}
	face, ttErr := newTrueTypeFace(data, size)
	if ttErr == nil {
		return face, nil
	}
	return nil, fmt.Errorf("%w: %w", ErrFontInit, errors.Join(otErr, ttErr))
}

func newOpenTypeFace(data []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("opentype parse: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{Size: size, DPI: fontDPI, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("opentype face: %w", err)
	}
	return face, nil
}

func newTrueTypeFace(data []byte, size float64) (font.Face, error) {
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("truetype parse: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: fontDPI, Hinting: font.HintingFull}), nil
}
