// Package image565 provides a 16-bit RGB565 image as used by small TFT panels.
//
// Each pixel is one uint16 word holding three packed channels, bit 0 being
// the least significant bit:
//
//	bit  15      11 10         5 4       0
//	     [ R (5)   ][   G (6)   ][  B (5) ]
//
// Pixels are read and written field by field through channel references, so
// updating one channel never touches the others.
package image565

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/flavioheleno/packed/channel"
)

// Layout is the field layout of an RGB565 word, in R, G, B order.
var Layout = channel.MustLayout[uint16](
	channel.Field{First: 11, Bits: 5},
	channel.Field{First: 5, Bits: 6},
	channel.Field{First: 0, Bits: 5},
)

const (
	red = iota
	green
	blue
)

// RGB565 is an opaque color with 5 bits of red, 6 of green and 5 of blue.
type RGB565 struct {
	R channel.Value5
	G channel.Value6
	B channel.Value5
}

// NewRGB565 returns the color (r, g, b), keeping the low 5, 6 and 5 bits.
func NewRGB565(r, g, b uint8) RGB565 {
	return RGB565{
		R: channel.NewValue[channel.Bits5, uint8](r),
		G: channel.NewValue[channel.Bits6, uint8](g),
		B: channel.NewValue[channel.Bits5, uint8](b),
	}
}

// FromWord unpacks a pixel word.
func FromWord(w uint16) RGB565 {
	return NewRGB565(uint8(Layout.Get(w, red)), uint8(Layout.Get(w, green)), uint8(Layout.Get(w, blue)))
}

// Word packs c into a pixel word.
func (c RGB565) Word() uint16 {
	return Layout.Pack(uint16(c.R.Get()), uint16(c.G.Get()), uint16(c.B.Get()))
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	return channel.To16[uint8](c.R), channel.To16[uint8](c.G), channel.To16[uint8](c.B), 0xFFFF
}

// toRGB565 rescales the 16-bit samples of c to 5, 6 and 5 bits, rounding to
// the nearest level. Alpha is dropped.
func toRGB565(c color.Color) color.Color {
	if v, ok := c.(RGB565); ok {
		return v
	}
	r, g, b, _ := c.RGBA()
	var out RGB565
	channel.Convert[uint8, uint16](&out.R, channel.ValueOf[channel.Bits16, uint16](r))
	channel.Convert[uint8, uint16](&out.G, channel.ValueOf[channel.Bits16, uint16](g))
	channel.Convert[uint8, uint16](&out.B, channel.ValueOf[channel.Bits16, uint16](b))
	return out
}

// Model converts colors to RGB565.
var Model = color.ModelFunc(toRGB565)

// Image is an RGB565 image.
type Image struct {
	Pix    []uint16        // One word per pixel
	Stride int             // Words per row
	Rect   image.Rectangle // Image bounds
}

// New returns an all-black image with the given bounds.
func New(r image.Rectangle) *Image {
	w, h := r.Dx(), r.Dy()
	if w < 0 || h < 0 {
		return &Image{Rect: r}
	}
	return &Image{
		Pix:    make([]uint16, w*h),
		Stride: w,
		Rect:   r,
	}
}

func (p *Image) ColorModel() color.Model { return Model }

func (p *Image) Bounds() image.Rectangle { return p.Rect }

func (p *Image) At(x, y int) color.Color {
	return p.RGB565At(x, y)
}

// RGB565At returns the color at (x, y), or black outside the bounds.
func (p *Image) RGB565At(x, y int) RGB565 {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return RGB565{}
	}
	r, g, b := p.Fields(x, y)
	return RGB565{R: r.Value(), G: g.Value(), B: b.Value()}
}

func (p *Image) Set(x, y int, c color.Color) {
	p.SetRGB565(x, y, Model.Convert(c).(RGB565))
}

// SetRGB565 sets the pixel at (x, y). Writes outside the bounds are ignored.
func (p *Image) SetRGB565(x, y int, c RGB565) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	r, g, b := p.Fields(x, y)
	r.Assign(c.R)
	g.Assign(c.G)
	b.Assign(c.B)
}

// Fields returns references to the three channels of the pixel at (x, y),
// which must lie inside the bounds. They stay valid while Pix is not
// reallocated.
func (p *Image) Fields(x, y int) (r channel.Ref5[uint16], g channel.Ref6[uint16], b channel.Ref5[uint16]) {
	w := &p.Pix[p.PixOffset(x, y)]
	r = channel.Bind[channel.Bits5, uint8](w, Layout[red].First)
	g = channel.Bind[channel.Bits6, uint8](w, Layout[green].First)
	b = channel.Bind[channel.Bits5, uint8](w, Layout[blue].First)
	return
}

// PixOffset returns the index of the word holding (x, y).
func (p *Image) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

// SubImage returns the part of p visible through r, sharing pixels with p.
func (p *Image) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return &Image{}
	}
	return &Image{
		Pix:    p.Pix[p.PixOffset(r.Min.X, r.Min.Y):],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Bytes serialises the visible pixels row by row, two bytes per pixel in
// the given byte order, as expected by a panel's RAM write command.
func (p *Image) Bytes(order binary.AppendByteOrder) []byte {
	w, h := p.Rect.Dx(), p.Rect.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}
	out := make([]byte, 0, 2*w*h)
	for y := 0; y < h; y++ {
		row := p.Pix[y*p.Stride : y*p.Stride+w]
		for _, px := range row {
			out = order.AppendUint16(out, px)
		}
	}
	return out
}
