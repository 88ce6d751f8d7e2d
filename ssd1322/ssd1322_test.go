package ssd1322

import (
	"bytes"
	"context"
	"errors"
	"image"
	"log/slog"
	"strings"
	"testing"

	"github.com/flavioheleno/packed/image4bit"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/spi/spitest"
)

// init8x2 is initSequence for an 8x2 panel with default options.
var init8x2 = []byte{
	0xFD, 0x12, 0xAE, 0xB3, 0xF2, 0xCA, 0x01, 0xA2, 0x00, 0xA1, 0x00,
	0xA0, 0x14, 0x11, 0xAB, 0x01, 0xB4, 0xA0, 0xFD, 0xC1, 0xFF, 0xC7, 0x0F,
	0xB9, 0xB1, 0xE2, 0xD1, 0x82, 0x20, 0xBB, 0x1F, 0xB6, 0x08, 0xBE, 0x07,
	0xA6, 0xA9,
}

func TestOptsValidation(t *testing.T) {
	tests := []struct {
		name    string
		opts    Opts
		wantErr bool
	}{
		{"default", DefaultOpts, false},
		{"valid 128x64", Opts{W: 128, H: 64}, false},
		{"valid 480x128", Opts{W: 480, H: 128}, false},
		{"minimum", Opts{W: 4, H: 1}, false},
		{"width not column aligned", Opts{W: 254, H: 64}, true},
		{"width zero", Opts{W: 0, H: 64}, true},
		{"width > 480", Opts{W: 512, H: 64}, true},
		{"height zero", Opts{W: 256, H: 0}, true},
		{"height > 128", Opts{W: 256, H: 200}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.validate(); (err != nil) != tt.wantErr {
				t.Errorf("validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewSPIRejectsOpts(t *testing.T) {
	bus := spitest.Playback{Playback: conntest.Playback{DontPanic: true}}
	if _, err := NewSPI(&bus, &gpiotest.Pin{N: "DC"}, &Opts{W: 6, H: 64}); err == nil {
		t.Fatal("NewSPI should reject a width that is not a multiple of 4")
	}
	if err := bus.Close(); err != nil {
		t.Errorf("no bytes should be sent: %v", err)
	}
}

func TestInitSequence(t *testing.T) {
	if got := initSequence(&Opts{W: 8, H: 2}); !bytes.Equal(got, init8x2) {
		t.Errorf("initSequence() = % X, want % X", got, init8x2)
	}

	tests := []struct {
		name string
		opts Opts
		a, b byte
	}{
		{"default", DefaultOpts, 0x14, 0x11},
		{"rotated", Opts{Rotated: true}, 0x06, 0x11},
		{"split COM", Opts{SplitCOM: true}, 0x34, 0x11},
		{"swap halves", Opts{SwapTopBottom: true}, 0x14, 0x13},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if a, b := remap(&tt.opts); a != tt.a || b != tt.b {
				t.Errorf("remap() = (0x%02X, 0x%02X), want (0x%02X, 0x%02X)", a, b, tt.a, tt.b)
			}
		})
	}
}

func TestDevPlayback(t *testing.T) {
	var logs bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	fullWindow := []byte{0x15, 59, 60, 0x75, 0, 1, 0x5C}
	frame := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF}
	bus := spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				// NewSPI
				{W: init8x2},
				{W: fullWindow},
				{W: make([]byte, 8)},
				{W: []byte{0xAF}},
				// Draw: pixels 4..5 of row 1, widened to the column 4..7
				{W: []byte{0x15, 60, 60, 0x75, 1, 1, 0x5C}},
				{W: []byte{0xFF, 0x00}},
				// Write
				{W: fullWindow},
				{W: frame},
				// Settings
				{W: []byte{0xC1, 0x80}},
				{W: []byte{0xC7, 0x0A}},
				{W: []byte{0xA7}},
				{W: []byte{0x26, 0x00, 0x00, 0x01, 0x01, 0x00, 0x00, 0x2F}},
				{W: []byte{0x2E}},
				// Halt
				{W: []byte{0xAE}},
			},
			DontPanic: true,
		},
	}

	dev, err := NewSPI(&bus, &gpiotest.Pin{N: "DC"}, &Opts{W: 8, H: 2})
	if err != nil {
		t.Fatalf("NewSPI() = %v", err)
	}

	white := image.NewUniform(image4bit.NewGray4(15))
	if err := dev.Draw(image.Rect(4, 1, 6, 2), white, image.Point{}); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	// Same content again: nothing to send.
	if err := dev.Draw(image.Rect(4, 1, 6, 2), white, image.Point{}); err != nil {
		t.Fatalf("second Draw() = %v", err)
	}
	// Entirely outside the panel: nothing to send.
	if err := dev.Draw(image.Rect(20, 20, 30, 30), white, image.Point{}); err != nil {
		t.Fatalf("Draw() outside bounds = %v", err)
	}

	if n, err := dev.Write(frame); err != nil || n != len(frame) {
		t.Fatalf("Write() = %d, %v", n, err)
	}
	if err := dev.SetContrast(0x80); err != nil {
		t.Fatal(err)
	}
	if err := dev.SetMasterContrast(0xFA); err != nil {
		t.Fatal(err)
	}
	if err := dev.Invert(true); err != nil {
		t.Fatal(err)
	}
	if err := dev.ScrollHorizontal(0, 1, Speed10Frames, false); err != nil {
		t.Fatal(err)
	}
	if err := dev.StopScroll(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Halt(); err != nil {
		t.Fatal(err)
	}
	if err := dev.Draw(dev.Bounds(), white, image.Point{}); !errors.Is(err, ErrHalted) {
		t.Errorf("Draw() after Halt = %v, want ErrHalted", err)
	}

	if err := bus.Close(); err != nil {
		t.Error(err)
	}

	for _, msg := range []string{"ssd1322: initialized", "ssd1322: partial update", "ssd1322: halted"} {
		if !strings.Contains(logs.String(), msg) {
			t.Errorf("log output lacks %q:\n%s", msg, logs.String())
		}
	}
}

func TestDrawFullFrameFastPath(t *testing.T) {
	img := image4bit.NewHorizontalNibble(image.Rect(0, 0, 8, 2))
	img.SetGray4(0, 0, image4bit.NewGray4(0xC))

	fullWindow := []byte{0x15, 59, 60, 0x75, 0, 1, 0x5C}
	bus := spitest.Playback{
		Playback: conntest.Playback{
			Ops: []conntest.IO{
				{W: init8x2},
				{W: fullWindow},
				{W: make([]byte, 8)},
				{W: []byte{0xAF}},
				{W: fullWindow},
				{W: []byte{0xC0, 0, 0, 0, 0, 0, 0, 0}},
			},
			DontPanic: true,
		},
	}

	dev, err := NewSPI(&bus, &gpiotest.Pin{N: "DC"}, &Opts{W: 8, H: 2})
	if err != nil {
		t.Fatalf("NewSPI() = %v", err)
	}
	if err := dev.Draw(dev.Bounds(), img, image.Point{}); err != nil {
		t.Fatalf("Draw() = %v", err)
	}
	if err := bus.Close(); err != nil {
		t.Error(err)
	}
}

func newTestDev(w, h int) *Dev {
	r := image.Rect(0, 0, w, h)
	return &Dev{
		rect:  r,
		shown: image4bit.NewHorizontalNibble(r),
		next:  image4bit.NewHorizontalNibble(r),
	}
}

func TestChangedNoChanges(t *testing.T) {
	dev := newTestDev(16, 2)
	if r := dev.changed(); !r.Empty() {
		t.Errorf("changed() = %v, want empty", r)
	}
}

func TestChangedAlignsToColumns(t *testing.T) {
	dev := newTestDev(16, 2)

	dev.next.SetGray4(5, 1, image4bit.NewGray4(3))
	if want, got := image.Rect(4, 1, 8, 2), dev.changed(); got != want {
		t.Errorf("changed() = %v, want %v", got, want)
	}

	dev.next.SetGray4(13, 0, image4bit.NewGray4(9))
	if want, got := image.Rect(4, 0, 16, 2), dev.changed(); got != want {
		t.Errorf("changed() = %v, want %v", got, want)
	}
}

func TestRegion(t *testing.T) {
	dev := newTestDev(8, 2)
	copy(dev.next.Pix, []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77})

	got := dev.region(image.Rect(4, 0, 8, 2))
	if want := []byte{0x22, 0x33, 0x66, 0x77}; !bytes.Equal(got, want) {
		t.Errorf("region() = % X, want % X", got, want)
	}
}

func TestDevHalted(t *testing.T) {
	dev := newTestDev(256, 64)
	dev.halted = true

	checks := map[string]error{
		"SetContrast":       dev.SetContrast(100),
		"SetMasterContrast": dev.SetMasterContrast(1),
		"Invert":            dev.Invert(true),
		"Draw":              dev.Draw(dev.Bounds(), image.NewRGBA(dev.Bounds()), image.Point{}),
		"ScrollHorizontal":  dev.ScrollHorizontal(0, 63, Speed10Frames, false),
		"StopScroll":        dev.StopScroll(),
	}
	_, checks["Write"] = dev.Write(make([]byte, 256*64/2))

	for name, err := range checks {
		if !errors.Is(err, ErrHalted) {
			t.Errorf("%s() = %v, want ErrHalted", name, err)
		}
	}
}

func TestWriteInvalidBufferSize(t *testing.T) {
	dev := newTestDev(256, 64)

	for _, n := range []int{0, 100, 256*64/2 - 1, 256*64/2 + 1} {
		_, err := dev.Write(make([]byte, n))
		if err == nil || err.Error() != "ssd1322: invalid buffer size" {
			t.Errorf("Write(%d bytes) = %v, want 'ssd1322: invalid buffer size'", n, err)
		}
	}
}

func TestScrollRowRange(t *testing.T) {
	dev := newTestDev(8, 2)

	if err := dev.ScrollHorizontal(0, 2, Speed6Frames, true); err == nil {
		t.Error("ScrollHorizontal should reject endRow past the panel")
	}
	if err := dev.ScrollHorizontal(1, 0, Speed6Frames, true); err == nil {
		t.Error("ScrollHorizontal should reject startRow > endRow")
	}
}

func TestDevBoundsAndString(t *testing.T) {
	dev := newTestDev(256, 64)
	if got, want := dev.Bounds(), image.Rect(0, 0, 256, 64); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	if got, want := dev.String(), "ssd1322.Dev{256x64}"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if dev.ColorModel() != image4bit.Gray4Model {
		t.Error("ColorModel() did not return Gray4Model")
	}
}

func TestSetLoggerNilIsSilent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	SetLogger(slog.Default())
	if Logger() != slog.Default() {
		t.Error("Logger() did not return the logger set via SetLogger")
	}

	SetLogger(nil)
	if Logger() == nil {
		t.Fatal("SetLogger(nil) should install a silent logger, not nil")
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should produce a disabled logger")
	}
}
