package image4bit

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestGray4RGBA(t *testing.T) {
	tests := []struct {
		name string
		gray Gray4
		want uint32
	}{
		{"black", NewGray4(0), 0x0000},
		{"dark gray", NewGray4(5), 0x5555},
		{"mid gray", NewGray4(8), 0x8888},
		{"light gray", NewGray4(10), 0xAAAA},
		{"white", NewGray4(15), 0xFFFF},
		{"high nibble dropped", NewGray4(0x5F), 0xFFFF},
		{"zero value", Gray4{}, 0x0000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.gray.RGBA()
			if r != tt.want || g != tt.want || b != tt.want || a != 0xFFFF {
				t.Errorf("RGBA() = (%x, %x, %x, %x), want (%x, %x, %x, ffff)",
					r, g, b, a, tt.want, tt.want, tt.want)
			}
		})
	}
}

func TestGray4ModelConvert(t *testing.T) {
	tests := []struct {
		name  string
		input color.Color
		want  uint8
	}{
		{"gray4 passthrough", NewGray4(7), 7},
		{"black", color.Black, 0},
		{"white", color.White, 15},
		{"gray rgb", color.RGBA{0x88, 0x88, 0x88, 0xFF}, 8},
		{"pure red", color.RGBA{0xFF, 0x00, 0x00, 0xFF}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Gray4Model.Convert(tt.input).(Gray4).Y.Get()
			if got != tt.want {
				t.Errorf("Gray4Model.Convert(%v).Y = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewHorizontalNibble(t *testing.T) {
	tests := []struct {
		name       string
		rect       image.Rectangle
		wantPanic  bool
		wantStride int
		wantPixLen int
	}{
		{"256x64", image.Rect(0, 0, 256, 64), false, 128, 8192},
		{"128x64", image.Rect(0, 0, 128, 64), false, 64, 4096},
		{"2x2", image.Rect(0, 0, 2, 2), false, 1, 2},
		{"offset rect", image.Rect(10, 20, 14, 22), false, 2, 4},
		{"empty", image.Rectangle{}, false, 0, 0},
		{"odd width panics", image.Rect(0, 0, 5, 2), true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); (r != nil) != tt.wantPanic {
					t.Errorf("panic = %v, want panic = %v", r, tt.wantPanic)
				}
			}()

			img := NewHorizontalNibble(tt.rect)
			if img.Rect != tt.rect {
				t.Errorf("Rect = %v, want %v", img.Rect, tt.rect)
			}
			if img.Stride != tt.wantStride {
				t.Errorf("Stride = %d, want %d", img.Stride, tt.wantStride)
			}
			if len(img.Pix) != tt.wantPixLen {
				t.Errorf("len(Pix) = %d, want %d", len(img.Pix), tt.wantPixLen)
			}
		})
	}
}

func TestHorizontalNibblePacking(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 1))
	for x, v := range []uint8{5, 10, 3, 12} {
		img.SetGray4(x, 0, NewGray4(v))
	}

	if img.Pix[0] != 0x5A || img.Pix[1] != 0x3C {
		t.Errorf("Pix = % X, want 5A 3C", img.Pix)
	}

	// Rewriting one pixel leaves its byte neighbour alone.
	img.SetGray4(1, 0, NewGray4(0))
	if img.Pix[0] != 0x50 {
		t.Errorf("Pix[0] = 0x%02X, want 0x50", img.Pix[0])
	}
}

func TestHorizontalNibbleAllLevels(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 16, 2))

	for y := 0; y < 2; y++ {
		for x := 0; x < 16; x++ {
			img.SetGray4(x, y, NewGray4(uint8(x^y)))
		}
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 16; x++ {
			if got := img.Gray4At(x, y).Y.Get(); got != uint8(x^y) {
				t.Errorf("Gray4At(%d, %d) = %d, want %d", x, y, got, x^y)
			}
		}
	}
}

func TestHorizontalNibbleSet(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 2))

	img.Set(0, 0, NewGray4(9))
	if got := img.Gray4At(0, 0).Y.Get(); got != 9 {
		t.Errorf("after Set(Gray4(9)) level = %d, want 9", got)
	}

	img.Set(1, 0, color.White)
	if got := img.Gray4At(1, 0).Y.Get(); got != 15 {
		t.Errorf("after Set(White) level = %d, want 15", got)
	}

	if c, ok := img.At(0, 0).(Gray4); !ok || c.Y.Get() != 9 {
		t.Errorf("At(0, 0) = %#v, want Gray4 9", img.At(0, 0))
	}
}

func TestHorizontalNibbleDraw(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 4))
	draw.Draw(img, image.Rect(2, 1, 6, 3), image.NewUniform(NewGray4(15)), image.Point{}, draw.Src)

	want := []byte{
		0x00, 0x00, 0x00, 0x00,
		0x00, 0xFF, 0xFF, 0x00,
		0x00, 0xFF, 0xFF, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}
	for i := range want {
		if img.Pix[i] != want[i] {
			t.Fatalf("Pix = % X, want % X", img.Pix, want)
		}
	}
}

func TestHorizontalNibbleOutOfBounds(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 4, 4))

	for _, p := range []image.Point{{X: -1}, {Y: -1}, {X: 4}, {Y: 4}} {
		img.SetGray4(p.X, p.Y, NewGray4(15))
		if got := img.Gray4At(p.X, p.Y).Y.Get(); got != 0 {
			t.Errorf("Gray4At(%v) = %d, want 0", p, got)
		}
	}
	for i, b := range img.Pix {
		if b != 0 {
			t.Errorf("Pix[%d] = 0x%02X after out-of-bounds writes", i, b)
		}
	}
}

func TestHorizontalNibbleOffsetRect(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(100, 50, 104, 52))
	img.SetGray4(100, 50, NewGray4(11))
	img.SetGray4(103, 51, NewGray4(2))

	if got := img.Gray4At(100, 50).Y.Get(); got != 11 {
		t.Errorf("Gray4At(100, 50) = %d, want 11", got)
	}
	if img.Pix[0] != 0xB0 || img.Pix[3] != 0x02 {
		t.Errorf("Pix = % X, want B0 00 00 02", img.Pix)
	}
}

func TestHorizontalNibblePixOffset(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 2))

	tests := []struct {
		x, y   int
		offset int
		shift  uint
	}{
		{0, 0, 0, 4},
		{1, 0, 0, 0},
		{2, 0, 1, 4},
		{3, 0, 1, 0},
		{0, 1, 4, 4},
		{7, 1, 7, 0},
	}

	for _, tt := range tests {
		offset, shift := img.pixOffset(tt.x, tt.y)
		if offset != tt.offset || shift != tt.shift {
			t.Errorf("pixOffset(%d, %d) = (%d, %d), want (%d, %d)",
				tt.x, tt.y, offset, shift, tt.offset, tt.shift)
		}
	}
}

func TestHorizontalNibbleNibbleRef(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 2, 1))
	img.Pix[0] = 0xA5

	hi, lo := img.Nibble(0, 0), img.Nibble(1, 0)
	if hi.Get() != 0xA || lo.Get() != 0x5 {
		t.Fatalf("nibbles = %X %X, want A 5", hi.Get(), lo.Get())
	}

	lo.SetUint(0xF3)
	if img.Pix[0] != 0xA3 {
		t.Errorf("Pix[0] = 0x%02X, want 0xA3", img.Pix[0])
	}
}

func TestHorizontalNibbleSubImage(t *testing.T) {
	img := NewHorizontalNibble(image.Rect(0, 0, 8, 4))
	sub := img.SubImage(image.Rect(3, 1, 5, 3)).(*HorizontalNibble)

	if want := image.Rect(2, 1, 6, 3); sub.Rect != want {
		t.Fatalf("SubImage Rect = %v, want %v", sub.Rect, want)
	}

	sub.SetGray4(5, 2, NewGray4(6))
	if got := img.Gray4At(5, 2).Y.Get(); got != 6 {
		t.Errorf("parent Gray4At(5, 2) = %d, want 6 (shared pixels)", got)
	}

	if empty := img.SubImage(image.Rect(20, 20, 30, 30)); !empty.Bounds().Empty() {
		t.Errorf("disjoint SubImage bounds = %v, want empty", empty.Bounds())
	}
}
