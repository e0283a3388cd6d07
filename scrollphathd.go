// Package scrollphathd controls a Scroll pHAT HD 17x7 LED matrix via I²C.
//
// The matrix is driven by an IS31FL3731 charlieplexed LED controller with two
// frame banks used for tear free double buffering.
//
// See the examples for how to use this package.
package scrollphathd

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/devices/v3/scrollphathd/bitmap"
)

// Register map of the IS31FL3731. The whole map is listed for reference; the
// driver only runs the controller in picture mode.
const (
	// Registers of the function (configuration) bank.
	modeRegister      = 0x00
	frameRegister     = 0x01
	autoplay1Register = 0x02
	autoplay2Register = 0x03
	blinkRegister     = 0x05
	audioSyncRegister = 0x06
	breath1Register   = 0x08
	breath2Register   = 0x09
	shutdownRegister  = 0x0A
	gainRegister      = 0x0B
	adcRegister       = 0x0C

	// Bank selection. Any write to a bank relative register must be
	// preceded by a write of the bank number to bankAddress.
	bankAddress = 0xFD
	configBank  = 0x0B

	// Values of modeRegister.
	pictureMode   = 0x00
	autoplayMode  = 0x08
	audioplayMode = 0x18

	// Offsets of the per-LED blocks inside a frame bank.
	enableOffset    = 0x00
	blinkOffset     = 0x12
	intensityOffset = 0x24

	enableLen    = blinkOffset - enableOffset
	blinkLen     = intensityOffset - blinkOffset
	intensityLen = 0xB4 - intensityOffset

	// Every group of 8 LEDs on the Scroll pHAT HD wires only 7 of them.
	enableAll = 0x7F

	// chunkSize is the largest block written in a single bus transaction.
	chunkSize = 32
)

var (
	// ErrTransmission is returned when a bus write fails while pushing a
	// frame. The frame being displayed is left untouched.
	ErrTransmission = errors.New("scrollphathd: transmission failed")
	// ErrInit is returned when the device could not be reset and configured.
	ErrInit = errors.New("scrollphathd: initialization failed")

	errHalted = errors.New("scrollphathd: halted")
)

// Opts is the configuration for the Scroll pHAT HD.
type Opts struct {
	// Addr is the 7-bit I²C address of the controller.
	Addr uint16
	// Rotated rotates the picture by 180°.
	Rotated bool
}

// DefaultOpts is the configuration used when nil is passed to NewI2C.
var DefaultOpts = Opts{
	Addr: 0x74,
}

// Dev is the device handle for the Scroll pHAT HD.
//
// It implements display.Drawer and Display.
type Dev struct {
	c       conn.Conn
	rotated bool

	// frame is the bank currently displayed. Writes always target the other.
	frame byte

	halted bool
}

// NewI2C returns a Dev driving the matrix via the I²C bus b.
//
// The controller is reset and both frames are cleared before returning.
// opts can be nil to use DefaultOpts.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	addr := opts.Addr
	if addr == 0 {
		addr = DefaultOpts.Addr
	}
	d := &Dev{
		c:       &i2c.Dev{Bus: b, Addr: addr},
		rotated: opts.Rotated,
	}
	if err := d.init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInit, err)
	}
	return d, nil
}

// init resets the controller, switches it to picture mode and prepares both
// frames: no blinking, zero intensity, every LED enabled.
func (d *Dev) init() error {
	if err := d.reset(); err != nil {
		return err
	}
	if err := d.writeRegister(configBank, modeRegister, pictureMode); err != nil {
		return err
	}
	if err := d.writeRegister(configBank, audioSyncRegister, 0); err != nil {
		return err
	}

	var (
		blink     [blinkLen]byte
		intensity [intensityLen]byte
		enable    [enableLen]byte
	)
	for i := range enable {
		enable[i] = enableAll
	}
	for frame := byte(0); frame < 2; frame++ {
		if err := d.selectBank(frame); err != nil {
			return err
		}
		if err := d.writeData(blinkOffset, blink[:]); err != nil {
			return err
		}
		if err := d.writeData(intensityOffset, intensity[:]); err != nil {
			return err
		}
		if err := d.writeData(enableOffset, enable[:]); err != nil {
			return err
		}
	}

	// Start on a known live frame.
	if err := d.writeRegister(configBank, frameRegister, 0); err != nil {
		return err
	}
	d.frame = 0
	return nil
}

// reset cycles the controller through software shutdown.
func (d *Dev) reset() error {
	if err := d.sleep(true); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	return d.sleep(false)
}

func (d *Dev) sleep(on bool) error {
	v := byte(1)
	if on {
		v = 0
	}
	return d.writeRegister(configBank, shutdownRegister, v)
}

// selectBank makes bank the target of subsequent bank relative accesses.
func (d *Dev) selectBank(bank byte) error {
	return d.c.Tx([]byte{bankAddress, bank}, nil)
}

// writeRegister selects bank then writes a single register in it.
func (d *Dev) writeRegister(bank, reg, v byte) error {
	if err := d.selectBank(bank); err != nil {
		return err
	}
	return d.c.Tx([]byte{reg, v}, nil)
}

// writeData writes data to consecutive registers starting at reg in the
// currently selected bank, in chunks of at most chunkSize bytes.
func (d *Dev) writeData(reg byte, data []byte) error {
	buf := make([]byte, 1+chunkSize)
	for i := 0; i < len(data); i += chunkSize {
		chunk := data[i:min(i+chunkSize, len(data))]
		buf[0] = reg + byte(i)
		n := copy(buf[1:], chunk)
		if err := d.c.Tx(buf[:1+n], nil); err != nil {
			return err
		}
	}
	return nil
}

// ledOffset returns the position of the pixel (x, y) inside the intensity
// block of a frame.
//
// The matrix is wired as two zig-zag halves meeting at column 8: the right
// half uses the low 7 LEDs of each 16 LED group, the left half the high ones
// in reverse order.
func ledOffset(x, y int) int {
	if x >= 8 {
		return (x-8)*16 + y
	}
	return (8-x)*16 - (y + 2)
}

// Show pushes window to the matrix as one frame.
//
// Column x of window lands on LED column x; columns missing from window are
// turned off and extra columns are ignored. The picture is written to the
// hidden frame bank, which is then made visible. On error the visible frame
// is unchanged and the returned error wraps ErrTransmission.
func (d *Dev) Show(window []bitmap.Column) error {
	if d.halted {
		return errHalted
	}

	var pix [intensityLen]byte
	for x := 0; x < bitmap.Width && x < len(window); x++ {
		for y := 0; y < bitmap.Height; y++ {
			px, py := x, y
			if d.rotated {
				px, py = bitmap.Width-1-x, bitmap.Height-1-y
			}
			pix[ledOffset(px, py)] = window[x][y]
		}
	}

	next := d.frame ^ 1
	if err := d.selectBank(next); err != nil {
		return fmt.Errorf("%w: %w", ErrTransmission, err)
	}
	if err := d.writeData(intensityOffset, pix[:]); err != nil {
		return fmt.Errorf("%w: %w", ErrTransmission, err)
	}
	if err := d.writeRegister(configBank, frameRegister, next); err != nil {
		return fmt.Errorf("%w: %w", ErrTransmission, err)
	}
	d.frame = next
	return nil
}

// Frame returns the frame bank currently displayed, 0 or 1.
func (d *Dev) Frame() int {
	return int(d.frame)
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return color.GrayModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, bitmap.Width, bitmap.Height)
}

// Draw draws src onto the display and pushes the result as a new frame.
//
// The area outside r is turned off: the matrix is small enough that every
// frame is sent in full.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}
	img := bitmap.NewImage(bitmap.Width)
	if r = r.Intersect(d.Bounds()); !r.Empty() {
		draw.Draw(img, r, src, sp, draw.Src)
	}
	return d.Show(img.Columns())
}

// Halt puts the controller into software shutdown and turns all LEDs off.
// After calling Halt, Show and Draw fail until a new Dev is created.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sleep(true)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("scrollphathd.Dev{%dx%d}", bitmap.Width, bitmap.Height)
}
