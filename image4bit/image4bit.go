package image4bit

import (
	"image"
	"image/color"

	"github.com/flavioheleno/packed/channel"
)

// Gray4 is a 4-bit grayscale color with 16 intensity levels.
type Gray4 struct {
	Y channel.Value4
}

// NewGray4 returns the gray level y. Only the lower 4 bits of y are kept.
func NewGray4(y uint8) Gray4 {
	return Gray4{Y: channel.NewValue[channel.Bits4, uint8](y)}
}

// RGBA scales the 4-bit level to 16 bits: 0x5 becomes 0x5555.
func (c Gray4) RGBA() (r, g, b, a uint32) {
	y := channel.To16[uint8](c.Y)
	return y, y, y, 0xFFFF
}

// toGray4 converts any color.Color to Gray4.
func toGray4(c color.Color) color.Color {
	if g, ok := c.(Gray4); ok {
		return g
	}
	r, g, b, _ := c.RGBA()
	// 0.299R + 0.587G + 0.114B on the 16-bit samples, then keep the top nibble.
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray4{Y: channel.ValueOf[channel.Bits4, uint8](y >> 12)}
}

// Gray4Model converts colors to Gray4.
var Gray4Model = color.ModelFunc(toGray4)

// HorizontalNibble is a 4-bit grayscale image packing two pixels per byte:
// the high nibble holds the even (left) pixel, the low nibble the odd one.
type HorizontalNibble struct {
	Pix    []byte          // Pixel data (2 pixels per byte)
	Stride int             // Bytes per row
	Rect   image.Rectangle // Image bounds
}

// NewHorizontalNibble creates a new HorizontalNibble image with the specified bounds.
// The width must be even (since 2 pixels per byte).
func NewHorizontalNibble(r image.Rectangle) *HorizontalNibble {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &HorizontalNibble{Rect: r}
	}
	if w%2 != 0 {
		panic("image4bit: width must be even")
	}

	stride := w / 2
	return &HorizontalNibble{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

func (p *HorizontalNibble) ColorModel() color.Model { return Gray4Model }

func (p *HorizontalNibble) Bounds() image.Rectangle { return p.Rect }

// At implements image.Image.
func (p *HorizontalNibble) At(x, y int) color.Color {
	return p.Gray4At(x, y)
}

// Gray4At returns the level of the pixel at (x, y), or black outside the
// bounds.
func (p *HorizontalNibble) Gray4At(x, y int) Gray4 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return Gray4{}
	}
	return Gray4{Y: p.Nibble(x, y).Value()}
}

// Set implements draw.Image, converting c through Gray4Model.
func (p *HorizontalNibble) Set(x, y int, c color.Color) {
	p.SetGray4(x, y, Gray4Model.Convert(c).(Gray4))
}

// SetGray4 sets the pixel at (x, y). Writes outside the bounds are ignored.
func (p *HorizontalNibble) SetGray4(x, y int, c Gray4) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	p.Nibble(x, y).Assign(c.Y)
}

// Nibble returns a reference to the 4 bits holding the pixel at (x, y).
// The point must lie inside the bounds, and the reference is only valid
// while Pix is not reallocated.
func (p *HorizontalNibble) Nibble(x, y int) channel.Ref4[uint8] {
	offset, shift := p.pixOffset(x, y)
	return channel.Bind[channel.Bits4, uint8](&p.Pix[offset], shift)
}

// SubImage returns the part of p visible through r. r is widened to even
// x coordinates so that the result shares whole bytes with p.
func (p *HorizontalNibble) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &HorizontalNibble{}
	}
	if (r.Min.X-p.Rect.Min.X)%2 != 0 {
		r.Min.X--
	}
	if (r.Max.X-p.Rect.Min.X)%2 != 0 {
		r.Max.X++
	}
	offset, _ := p.pixOffset(r.Min.X, r.Min.Y)
	return &HorizontalNibble{
		Pix:    p.Pix[offset:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// pixOffset returns the byte offset and the bit offset of the nibble for
// the pixel at (x, y). Even x (relative to Rect.Min) lives at bit 4, odd x
// at bit 0.
func (p *HorizontalNibble) pixOffset(x, y int) (offset int, shift uint) {
	dx := x - p.Rect.Min.X
	offset = (y-p.Rect.Min.Y)*p.Stride + dx/2
	shift = uint(4 * (1 - (dx & 1)))
	return
}
