package ssd1322

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"github.com/flavioheleno/packed/channel"
	"github.com/flavioheleno/packed/image4bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

const (
	ramColumns = 480 // pixels per row of display RAM
	maxRows    = 128
	// One column address covers 4 pixels, i.e. two bytes of nibbles.
	pixelsPerColumn = 4
)

// Command bytes.
const (
	cmdScrollLeft       = 0x26
	cmdScrollRight      = 0x27
	cmdScrollStop       = 0x2E
	cmdScrollStart      = 0x2F
	cmdColumnAddress    = 0x15
	cmdWriteRAM         = 0x5C
	cmdRowAddress       = 0x75
	cmdRemap            = 0xA0
	cmdStartLine        = 0xA1
	cmdDisplayOffset    = 0xA2
	cmdNormal           = 0xA6
	cmdInverse          = 0xA7
	cmdExitPartial      = 0xA9
	cmdFunctionSelect   = 0xAB
	cmdDisplayOff       = 0xAE
	cmdDisplayOn        = 0xAF
	cmdPhaseLength      = 0xB1
	cmdClockDivider     = 0xB3
	cmdVSL              = 0xB4
	cmdSecondPrecharge  = 0xB6
	cmdDefaultGrayTable = 0xB9
	cmdPrechargeVoltage = 0xBB
	cmdVCOMH            = 0xBE
	cmdContrast         = 0xC1
	cmdMasterContrast   = 0xC7
	cmdMuxRatio         = 0xCA
	cmdEnhancement      = 0xD1
	cmdCommandLock      = 0xFD
)

// Bits of the two Set Re-map parameter bytes.
const (
	remapColumnBit  = 1 // A[1]: column address remap
	remapNibbleBit  = 2 // A[2]: nibble remap
	remapCOMScanBit = 4 // A[4]: scan COM[N-1] to COM0
	remapSplitBit   = 5 // A[5]: odd/even COM split
	dualCOMSwapBit  = 1 // B[1]: swap top and bottom halves
	dualCOMModeBit  = 4 // B[4]: dual COM line mode
)

// ErrHalted is returned by every operation on a halted device.
var ErrHalted = errors.New("ssd1322: halted")

// Opts is the configuration for the SSD1322 display.
type Opts struct {
	// Display dimensions in pixels
	W int // Width (multiple of 4, at most 480)
	H int // Height (at most 128)

	Rotated       bool // 180° rotation
	SplitCOM      bool // Odd/even COM pin split
	SwapTopBottom bool // Swap top/bottom display halves

	// SPI clock; 0 selects 10MHz. The controller accepts up to 20MHz.
	Hz physic.Frequency

	// Optional hardware reset pin
	RST gpio.PinIO
}

// DefaultOpts is a 256x64 panel, the most common SSD1322 module.
var DefaultOpts = Opts{W: 256, H: 64}

func (o *Opts) validate() error {
	if o.W <= 0 || o.W%pixelsPerColumn != 0 || o.W > ramColumns {
		return fmt.Errorf("ssd1322: width %d must be a multiple of %d between %d and %d", o.W, pixelsPerColumn, pixelsPerColumn, ramColumns)
	}
	if o.H <= 0 || o.H > maxRows {
		return fmt.Errorf("ssd1322: height %d must be between 1 and %d", o.H, maxRows)
	}
	return nil
}

// Dev is the device handle for the SSD1322 display.
type Dev struct {
	c   conn.Conn
	dc  gpio.PinOut
	rst gpio.PinIO

	rect         image.Rectangle
	columnOffset int // first RAM pixel used, centering the panel in the 480-pixel RAM

	shown *image4bit.HorizontalNibble // what the panel currently displays
	next  *image4bit.HorizontalNibble // frame being composed by Draw

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new SSD1322 device connected via SPI.
//
// The port is configured for Mode0 and 8-bit words. dc is the Data/Command
// pin. opts can be nil to use DefaultOpts.
func NewSPI(p spi.Port, dc gpio.PinOut, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	hz := opts.Hz
	if hz == 0 {
		hz = 10 * physic.MegaHertz
	}
	c, err := p.Connect(hz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("ssd1322: %w", err)
	}

	rect := image.Rect(0, 0, opts.W, opts.H)
	d := &Dev{
		c:            c,
		dc:           dc,
		rst:          opts.RST,
		rect:         rect,
		columnOffset: ((ramColumns - opts.W) / 2) &^ (pixelsPerColumn - 1),
		shown:        image4bit.NewHorizontalNibble(rect),
		next:         image4bit.NewHorizontalNibble(rect),
	}

	if err := d.init(opts); err != nil {
		return nil, err
	}
	Logger().Info("ssd1322: initialized", "width", opts.W, "height", opts.H, "hz", hz)
	return d, nil
}

func (d *Dev) init(opts *Opts) error {
	if d.rst != nil {
		if err := d.rst.Out(gpio.Low); err != nil {
			return fmt.Errorf("ssd1322: failed to pull RST low: %w", err)
		}
		time.Sleep(200 * time.Millisecond)

		if err := d.rst.Out(gpio.High); err != nil {
			return fmt.Errorf("ssd1322: failed to pull RST high: %w", err)
		}
		time.Sleep(200 * time.Millisecond)
	}

	if err := d.sendCommands(initSequence(opts)); err != nil {
		return err
	}

	// Display RAM holds garbage after power up.
	if err := d.writeRect(d.rect, d.shown.Pix); err != nil {
		return err
	}
	return d.sendCommands([]byte{cmdDisplayOn})
}

// initSequence returns the command bytes configuring the panel for opts.
func initSequence(opts *Opts) []byte {
	a, b := remap(opts)
	return []byte{
		cmdCommandLock, 0x12,
		cmdDisplayOff,
		cmdClockDivider, 0xF2,
		cmdMuxRatio, channel.ValueOf[channel.Bits7, uint8](opts.H - 1).Get(),
		cmdDisplayOffset, 0x00,
		cmdStartLine, 0x00,
		cmdRemap, a, b,
		cmdFunctionSelect, 0x01, // internal VDD
		cmdVSL, 0xA0, 0xFD,
		cmdContrast, 0xFF,
		cmdMasterContrast, 0x0F,
		cmdDefaultGrayTable,
		cmdPhaseLength, 0xE2,
		cmdEnhancement, 0x82, 0x20,
		cmdPrechargeVoltage, 0x1F,
		cmdSecondPrecharge, 0x08,
		cmdVCOMH, 0x07,
		cmdNormal,
		cmdExitPartial,
	}
}

// remap builds the two parameter bytes of the Set Re-map command.
func remap(opts *Opts) (a, b byte) {
	set := func(reg *byte, bit uint, on bool) {
		f := channel.Bind[channel.Bits1, uint8](reg, bit)
		if on {
			f.Set(1)
		} else {
			f.Set(0)
		}
	}
	set(&a, remapColumnBit, opts.Rotated)
	set(&a, remapNibbleBit, true)
	set(&a, remapCOMScanBit, !opts.Rotated)
	set(&a, remapSplitBit, opts.SplitCOM)

	b = 0x01 // reserved, reads as 1
	set(&b, dualCOMSwapBit, opts.SwapTopBottom)
	set(&b, dualCOMModeBit, true)
	return a, b
}

func (d *Dev) sendCommands(cmds []byte) error {
	if err := d.dc.Out(gpio.Low); err != nil {
		return err
	}
	return d.c.Tx(cmds, nil)
}

func (d *Dev) sendData(data []byte) error {
	if err := d.dc.Out(gpio.High); err != nil {
		return err
	}
	return d.c.Tx(data, nil)
}

// writeRect writes pixels, packed as HorizontalNibble rows, to r. r must be
// aligned to column addresses.
func (d *Dev) writeRect(r image.Rectangle, pixels []byte) error {
	commands := []byte{
		cmdColumnAddress,
		byte((r.Min.X + d.columnOffset) / pixelsPerColumn),
		byte((r.Max.X - 1 + d.columnOffset) / pixelsPerColumn),
		cmdRowAddress, byte(r.Min.Y), byte(r.Max.Y - 1),
		cmdWriteRAM,
	}
	if err := d.sendCommands(commands); err != nil {
		return err
	}
	return d.sendData(pixels)
}

func (d *Dev) ColorModel() color.Model {
	return image4bit.Gray4Model
}

func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Write writes raw pixel data to the display in HorizontalNibble format.
// The data must be exactly W*H/2 bytes.
func (d *Dev) Write(pixels []byte) (int, error) {
	if d.halted {
		return 0, ErrHalted
	}
	if len(pixels) != len(d.shown.Pix) {
		return 0, errors.New("ssd1322: invalid buffer size")
	}
	if err := d.writeRect(d.rect, pixels); err != nil {
		return 0, err
	}
	copy(d.shown.Pix, pixels)
	copy(d.next.Pix, pixels)
	return len(pixels), nil
}

// Draw draws src onto the display, transferring only the smallest
// column-aligned rectangle that changed.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return ErrHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	if img, ok := src.(*image4bit.HorizontalNibble); ok && dst == d.rect && sp == (image.Point{}) && img.Rect == d.rect {
		_, err := d.Write(img.Pix)
		return err
	}

	draw.Draw(d.next, dst, src, sp, draw.Src)

	r := d.changed()
	if r.Empty() {
		return nil
	}
	pixels := d.region(r)
	Logger().Debug("ssd1322: partial update", "rect", r, "bytes", len(pixels))
	if err := d.writeRect(r, pixels); err != nil {
		return err
	}
	copy(d.shown.Pix, d.next.Pix)
	return nil
}

// changed returns the bounding box of pixels differing between the shown
// and the next frame, widened to column addresses. It is empty when the
// frames match.
func (d *Dev) changed() image.Rectangle {
	stride := d.shown.Stride
	var r image.Rectangle

	for y := 0; y < d.rect.Dy(); y++ {
		row := y * stride
		old, cur := d.shown.Pix[row:row+stride], d.next.Pix[row:row+stride]
		if bytes.Equal(old, cur) {
			continue
		}
		for x := range cur {
			if old[x] != cur[x] {
				// Each byte holds two pixels.
				r = r.Union(image.Rect(2*x, y, 2*x+2, y+1))
			}
		}
	}
	if r.Empty() {
		return r
	}

	r.Min.X -= r.Min.X % pixelsPerColumn
	if rem := r.Max.X % pixelsPerColumn; rem != 0 {
		r.Max.X += pixelsPerColumn - rem
	}
	return r.Intersect(d.rect)
}

// region copies the bytes of the next frame covering r, row by row.
func (d *Dev) region(r image.Rectangle) []byte {
	byteWidth := r.Dx() / 2
	out := make([]byte, 0, byteWidth*r.Dy())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		start := y*d.next.Stride + r.Min.X/2
		out = append(out, d.next.Pix[start:start+byteWidth]...)
	}
	return out
}

// SetContrast sets the display contrast (0-255).
func (d *Dev) SetContrast(contrast byte) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{cmdContrast, contrast})
}

// SetMasterContrast scales all segment currents by (level+1)/16. Only the
// low 4 bits of level are used.
func (d *Dev) SetMasterContrast(level uint8) error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{cmdMasterContrast, channel.NewValue[channel.Bits4, uint8](level).Get()})
}

// Invert inverts the display colors (black becomes white and vice versa).
func (d *Dev) Invert(invert bool) error {
	if d.halted {
		return ErrHalted
	}
	mode := byte(cmdNormal)
	if invert {
		mode = cmdInverse
	}
	return d.sendCommands([]byte{mode})
}

// Halt turns the display off. The device rejects further operations.
func (d *Dev) Halt() error {
	d.halted = true
	Logger().Info("ssd1322: halted")
	return d.sendCommands([]byte{cmdDisplayOff})
}

func (d *Dev) String() string {
	return fmt.Sprintf("ssd1322.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

// ScrollSpeed defines the horizontal scroll frame rate.
type ScrollSpeed byte

const (
	// Scroll frame rates (in display refresh cycles)
	Speed6Frames   ScrollSpeed = 0x00
	Speed10Frames  ScrollSpeed = 0x01
	Speed100Frames ScrollSpeed = 0x02
	Speed200Frames ScrollSpeed = 0x03
)

// ScrollHorizontal starts horizontal scrolling of rows startRow..endRow.
// If right is true, scrolls right; otherwise scrolls left.
func (d *Dev) ScrollHorizontal(startRow, endRow byte, speed ScrollSpeed, right bool) error {
	if d.halted {
		return ErrHalted
	}
	if int(startRow) >= d.rect.Dy() || int(endRow) >= d.rect.Dy() || startRow > endRow {
		return errors.New("ssd1322: scroll row out of range")
	}

	cmd := byte(cmdScrollLeft)
	if right {
		cmd = cmdScrollRight
	}
	return d.sendCommands([]byte{
		cmd,
		0x00, // dummy
		startRow,
		byte(speed),
		endRow,
		0x00, 0x00, // dummy
		cmdScrollStart,
	})
}

// StopScroll stops all scrolling.
func (d *Dev) StopScroll() error {
	if d.halted {
		return ErrHalted
	}
	return d.sendCommands([]byte{cmdScrollStop})
}
