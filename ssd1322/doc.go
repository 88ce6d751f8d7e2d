// Package ssd1322 controls a SSD1322 OLED display via SPI.
//
// The SSD1322 is a 4-bit grayscale OLED controller with a 480×128 pixel
// RAM. Panels are usually 256×64 or 128×64 and are centered in the RAM.
// Dev implements the display.Drawer interface from periph.io.
//
// # Hardware Connection
//
//	Display Pin → System Pin
//	SCL/CLK     → SPI Clock (SCLK)
//	SDA/MOSI    → SPI Data (MOSI)
//	DC          → GPIO (any available pin)
//	CS          → SPI Chip Select (or GND if always selected)
//	RES         → Optional: GPIO for hardware reset
//
// # Basic Usage
//
//	host.Init()
//	bus, _ := spireg.Open("")
//	dev, _ := ssd1322.NewSPI(bus, gpioreg.ByName("GPIO25"), &ssd1322.Opts{W: 256, H: 64})
//	defer dev.Halt()
//
//	img := image4bit.NewHorizontalNibble(dev.Bounds())
//	for x := 0; x < 256; x++ {
//		for y := 0; y < 64; y++ {
//			img.SetGray4(x, y, image4bit.NewGray4(uint8(x/16)))
//		}
//	}
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// When RST is set in Opts the driver pulls it low for 200ms before
// initialization; otherwise it relies on the power-on reset.
//
// # Drawing Modes
//
// Write sends a full frame of packed nibbles as is. Draw composes src into
// an off-screen frame and transfers only the smallest rectangle that
// changed, widened to the controller's 4-pixel column addresses.
//
// # Logging
//
// The driver is silent by default. SetLogger installs a log/slog logger.
//
// # Datasheet
//
// https://www.displayfuture.com/Display/datasheet/controller/SSD1322.pdf
package ssd1322
