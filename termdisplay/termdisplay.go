// Package termdisplay renders Scroll pHAT HD frames on a terminal.
//
// It is meant for development without the hardware: both renderers accept
// the same windows as scrollphathd.Dev and never fail. The caller owns the
// tcell.Screen and is responsible for Init and Fini.
package termdisplay

import (
	"github.com/gdamore/tcell/v2"

	"periph.io/x/devices/v3/scrollphathd/bitmap"
)

// Term draws each pixel as '#' when lit and ' ' when off, with the top left
// pixel in the top left cell of the screen.
type Term struct {
	s tcell.Screen
}

// NewTerm returns a Term drawing on s.
func NewTerm(s tcell.Screen) *Term {
	return &Term{s: s}
}

// Show draws window. It always returns nil.
func (t *Term) Show(window []bitmap.Column) error {
	t.s.Clear()
	for x, col := range window {
		for y, v := range col {
			r := ' '
			if v != 0 {
				r = '#'
			}
			t.s.SetContent(x, y, r, nil, tcell.StyleDefault)
		}
	}
	t.s.Show()
	return nil
}

// Unicode draws the full matrix inside a double line box, using shade
// characters for lit and unlit pixels. Pixel (0, 0) is at cell (1, 1).
type Unicode struct {
	s tcell.Screen
}

// NewUnicode returns a Unicode drawing on s.
func NewUnicode(s tcell.Screen) *Unicode {
	return &Unicode{s: s}
}

const (
	lit   = '▓'
	unlit = '░'
)

// Show draws window. Columns missing from window are drawn unlit. It always
// returns nil.
func (u *Unicode) Show(window []bitmap.Column) error {
	u.s.Clear()

	const right, bottom = bitmap.Width + 1, bitmap.Height + 1
	u.put(0, 0, '╔')
	u.put(right, 0, '╗')
	u.put(0, bottom, '╚')
	u.put(right, bottom, '╝')
	for x := 1; x < right; x++ {
		u.put(x, 0, '═')
		u.put(x, bottom, '═')
	}
	for y := 1; y < bottom; y++ {
		u.put(0, y, '║')
		u.put(right, y, '║')
	}

	for x := 0; x < bitmap.Width; x++ {
		var col bitmap.Column
		if x < len(window) {
			col = window[x]
		}
		for y, v := range col {
			r := unlit
			if v != 0 {
				r = lit
			}
			u.put(x+1, y+1, r)
		}
	}

	u.s.Show()
	return nil
}

func (u *Unicode) put(x, y int, r rune) {
	u.s.SetContent(x, y, r, nil, tcell.StyleDefault)
}
