// Package scrollphathd controls a Pimoroni Scroll pHAT HD LED matrix via I²C.
//
// The Scroll pHAT HD is a 17×7 matrix of white LEDs driven by an IS31FL3731
// charlieplex controller with 8-bit PWM per LED. This driver implements the
// display.Drawer interface from periph.io and a small Display interface shared
// with the terminal renderers of package termdisplay.
//
// # Display Characteristics
//
// - 17 columns by 7 rows, fixed
// - 8-bit intensity per LED (0 is off, 255 full brightness)
// - Two frame banks for tear free double buffering
// - Controller at I²C address 0x74
//
// # Hardware Connection
//
// The board plugs on the Raspberry Pi header:
//
//	Matrix Pin → System Pin
//	GND        → GND
//	VCC        → 5V
//	SDA        → I²C Data (GPIO2)
//	SCL        → I²C Clock (GPIO3)
//
// # Basic Usage
//
// Example of scrolling text:
//
//	package main
//
//	import (
//		"time"
//
//		"periph.io/x/conn/v3/i2c/i2creg"
//		"periph.io/x/devices/v3/scrollphathd"
//		"periph.io/x/host/v3"
//	)
//
//	func main() {
//		// Initialize periph.io
//		host.Init()
//
//		// Open I²C bus
//		b, _ := i2creg.Open("1")
//		defer b.Close()
//
//		// Create device
//		dev, _ := scrollphathd.NewI2C(b, nil)
//		defer dev.Halt()
//
//		s := scrollphathd.NewScroller(dev)
//		s.SetText("HELLO WORLD")
//		for {
//			s.Show()
//			time.Sleep(100 * time.Millisecond)
//			s.Scroll()
//		}
//	}
//
// # Scrolling
//
// A Scroller owns a virtual buffer of columns that grows as text or pixels
// are added. Its window is the Width columns starting at the scroll offset;
// columns past the end of the buffer show blank. Scroll moves the window one
// column to the right and wraps back to the start after the last column.
// Pacing is left to the caller.
//
// # Errors
//
// A failed bus write during Show is returned wrapping ErrTransmission. The
// frame on display is left as it was and the caller may simply retry. A
// failure while resetting the controller makes NewI2C fail with an error
// wrapping ErrInit.
//
// # Without Hardware
//
// Package termdisplay renders the same windows on a terminal through tcell:
//
//	screen, _ := tcell.NewScreen()
//	screen.Init()
//	defer screen.Fini()
//	s := scrollphathd.NewScroller(termdisplay.NewUnicode(screen))
//
// # Datasheet
//
// For detailed register descriptions, see:
// https://www.lumissil.com/assets/pdf/core/IS31FL3731_DS.pdf
//
// # Compatibility with periph.io
//
// This driver implements the display.Drawer interface from periph.io:
// https://pkg.go.dev/periph.io/x/conn/v3/display
package scrollphathd
