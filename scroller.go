package scrollphathd

import (
	"image"
	"image/color"

	"periph.io/x/devices/v3/scrollphathd/bitmap"
	"periph.io/x/devices/v3/scrollphathd/font"
)

// Scroller is a horizontally growable virtual buffer with a scroll offset
// defining the window of it that is visible on a Display.
//
//	┌─────────────────────────virtual buffer─────────────────────┐
//	┌───────────╔═════════════════╗──────────────────────────────┐
//	│▓▓▓▓▓▓▓▓▓▓▓║░░░░░░░░░░░░░░░░░║▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓│
//	│▓▓▓▓▓▓▓▓▓▓▓║░░░░░░░░░░░░░░░░░║▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓▓│
//	└───────────╚═════════════════╝──────────────────────────────┘
//	└──offset───┴─────window──────┘
//
// A Scroller is not safe for concurrent use.
type Scroller struct {
	d      Display
	buf    []bitmap.Column
	offset int
}

// NewScroller returns an empty Scroller showing its window on d.
//
// d must not be nil; NewScroller panics otherwise.
func NewScroller(d Display) *Scroller {
	if d == nil {
		panic("scrollphathd: nil Display")
	}
	return &Scroller{d: d}
}

// Len returns the width of the virtual buffer in columns.
func (s *Scroller) Len() int {
	return len(s.buf)
}

// Offset returns the first buffer column of the window.
func (s *Scroller) Offset() int {
	return s.offset
}

// SetPixel sets the intensity of the pixel at column x, row y of the virtual
// buffer. The origin is the top left corner.
//
// The buffer is extended with empty columns when x is past its end. Rows
// outside the matrix and negative columns are ignored.
func (s *Scroller) SetPixel(x, y int, v uint8) {
	if y < 0 || y >= bitmap.Height || x < 0 {
		return
	}
	if x >= len(s.buf) {
		s.buf = append(s.buf, make([]bitmap.Column, x+1-len(s.buf))...)
	}
	s.buf[x][y] = v
}

// SetText clears the buffer and lays out text in it.
//
// Every character with a glyph is followed by one empty column. Characters
// the font does not know are skipped, spacing included.
func (s *Scroller) SetText(text string) {
	s.Clear()
	for _, r := range text {
		g, ok := font.Lookup(r)
		if !ok {
			continue
		}
		s.buf = append(s.buf, g...)
		s.buf = append(s.buf, bitmap.Column{})
	}
}

// DrawImage rasterizes the gray levels of src into the buffer with its left
// edge at column x. Rows past the matrix height are clipped.
func (s *Scroller) DrawImage(x int, src image.Image) {
	b := src.Bounds()
	for sy := b.Min.Y; sy < b.Max.Y && sy-b.Min.Y < bitmap.Height; sy++ {
		for sx := b.Min.X; sx < b.Max.X; sx++ {
			g := color.GrayModel.Convert(src.At(sx, sy)).(color.Gray)
			s.SetPixel(x+sx-b.Min.X, sy-b.Min.Y, g.Y)
		}
	}
}

// Clear empties the buffer and rewinds the window to the start.
func (s *Scroller) Clear() {
	s.buf = s.buf[:0]
	s.offset = 0
}

// Scroll moves the window one column to the right. Once it passes the last
// column of the buffer it starts again from the beginning.
func (s *Scroller) Scroll() {
	s.offset++
	if s.offset >= len(s.buf) {
		s.offset = 0
	}
}

// Window returns the bitmap.Width columns starting at the scroll offset.
// Columns past the end of the buffer are empty.
func (s *Scroller) Window() []bitmap.Column {
	w := make([]bitmap.Column, bitmap.Width)
	if s.offset < len(s.buf) {
		copy(w, s.buf[s.offset:])
	}
	return w
}

// Show sends the window to the Display.
func (s *Scroller) Show() error {
	return s.d.Show(s.Window())
}
