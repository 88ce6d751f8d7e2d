// Package image4bit provides a 4-bit grayscale image format for the SSD1322 display controller.
//
// Pixels are 4-bit channels (16 intensity levels) packed two per byte.
// Each pixel is addressed as a channel.Ref4 into its byte, so writing one
// pixel never disturbs its neighbour:
//
//	Pixels: 0  1  2  3
//	Values: 5  10 3  12
//	Bytes:  0x5A     0x3C
//	        (0x5A = high nibble: 5, low nibble: A=10)
//	        (0x3C = high nibble: 3, low nibble: C=12)
//
// Example usage:
//
//	img := image4bit.NewHorizontalNibble(image.Rect(0, 0, 256, 64))
//	img.SetGray4(10, 20, image4bit.NewGray4(8))
//	println(img.Gray4At(10, 20).Y.Get()) // 8
//
//	// Use with standard Go image operations
//	draw.Draw(img, img.Bounds(), image.NewUniform(image4bit.NewGray4(15)), image.Point{}, draw.Src)
package image4bit
