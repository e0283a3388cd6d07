// Package bitmap provides the column-oriented pixel format of the Scroll pHAT HD.
package bitmap

import (
	"image"
	"image/color"
)

const (
	// Width is the number of LED columns on the matrix.
	Width = 17
	// Height is the number of LED rows on the matrix.
	Height = 7
)

// Column is a vertical strip of pixel intensities, one per row, top first.
// The zero value is an empty (all off) column.
type Column [Height]uint8

// Empty reports whether all pixels of the column are off.
func (c Column) Empty() bool {
	return c == Column{}
}

// Image is an 8-bit grayscale image stored as a sequence of Columns.
//
// Its height is always Height. Its width is len(Cols).
type Image struct {
	Cols []Column       // Pixel data, one Column per x
	Rect image.Rectangle // Image bounds, always anchored at (0, 0)
}

// NewImage creates a blank image w columns wide.
func NewImage(w int) *Image {
	if w < 0 {
		w = 0
	}
	return &Image{
		Cols: make([]Column, w),
		Rect: image.Rect(0, 0, w, Height),
	}
}

// Columns returns the pixel data of the image.
func (p *Image) Columns() []Column {
	return p.Cols
}

// ColorModel returns the color model of the image.
func (p *Image) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the image bounds.
func (p *Image) Bounds() image.Rectangle {
	return p.Rect
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (p *Image) At(x, y int) color.Color {
	return color.Gray{Y: p.IntensityAt(x, y)}
}

// IntensityAt returns the intensity of the pixel at (x, y), or 0 when the
// point is outside the image.
func (p *Image) IntensityAt(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return 0
	}
	return p.Cols[x][y]
}

// Set sets the color of the pixel at (x, y), converting it to gray.
func (p *Image) Set(x, y int, c color.Color) {
	p.SetIntensity(x, y, color.GrayModel.Convert(c).(color.Gray).Y)
}

// SetIntensity sets the intensity of the pixel at (x, y).
// Points outside the image are ignored.
func (p *Image) SetIntensity(x, y int, v uint8) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Cols[x][y] = v
}
