// Package bitmap provides the pixel unit of the Scroll pHAT HD LED matrix.
//
// The matrix is 17 columns by 7 rows. Pixels are handled column by column:
// a Column is a vertical strip of 7 intensity values, top row first, where 0
// means off and 255 is full brightness.
//
// Memory layout example for one column:
//
//	Row:    0  1  2  3  4  5  6
//	Value:  0  FF FF 0  0  0  80
//
// This package provides:
//
// - Column: a fixed-height array of intensities
// - Image: an image.Image (and draw.Image) view over a sequence of Columns
//
// Example usage:
//
//	// Create a full-width image
//	img := bitmap.NewImage(bitmap.Width)
//
//	// Light the pixel at column 3, row 2
//	img.SetIntensity(3, 2, 0xFF)
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
//
//	// Hand the columns to a display
//	dev.Show(img.Columns())
package bitmap
