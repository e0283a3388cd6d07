package scrollphathd

import "periph.io/x/devices/v3/scrollphathd/bitmap"

// Display is a sink capable of showing a window of the matrix.
//
// Implementations receive columns left to right with the origin at the top
// left pixel. Dev is the hardware implementation; package termdisplay
// provides terminal ones for development without hardware.
type Display interface {
	// Show renders window as one frame.
	Show(window []bitmap.Column) error
}
