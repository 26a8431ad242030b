// internal/ui/font.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewFontFace builds a face of the given size from the bundled Go Regular
// font, so the binary does not depend on asset files at runtime.
func NewFontFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("create font face: %w", err)
	}
	return face, nil
}

// Fonts groups the faces used by the HUD and the panels.
type Fonts struct {
	Small  font.Face
	Medium font.Face
	Large  font.Face
}

// NewFonts builds the three faces used on screen.
func NewFonts() (*Fonts, error) {
	small, err := NewFontFace(14)
	if err != nil {
		return nil, err
	}
	medium, err := NewFontFace(22)
	if err != nil {
		return nil, err
	}
	large, err := NewFontFace(64)
	if err != nil {
		return nil, err
	}
	return &Fonts{Small: small, Medium: medium, Large: large}, nil
}
