// Package channel represents pixel channel samples of arbitrary bit width,
// such as the 5- and 6-bit fields of an RGB565 pixel or a 4-bit gray level.
//
// A width is named by a marker type, Bits1 through Bits64. Each marker is
// tied to the narrowest unsigned integer able to hold it, so the storage
// type is chosen at compile time:
//
//	Bits1  -> uint8
//	Bits8  -> uint8
//	Bits15 -> uint16
//	Bits33 -> uint64
//
// There are two representations of a sample:
//
//   - Value owns its sample, like a plain integer.
//   - Ref addresses a sub-range of bits inside a larger integer owned by a
//     pixel buffer, leaving the neighbouring bits alone.
//
// Both have read-only forms (ConstValue, ConstRef) without the mutating
// methods, and all four implement Channel, so generic code can query
// NumBits, MinValue and MaxValue and read samples without knowing which one
// it holds.
//
// # Bit numbering
//
// Bit 0 is the least significant bit of the containing integer. A Ref at
// first bit F and width N covers bits F through F+N-1, regardless of the
// byte order of the host.
//
// # Truncation
//
// Storing a value that does not fit in N bits keeps its low N bits, the way
// a fixed-width hardware register would:
//
//	var v channel.Value8
//	v.SetUint(300) // v.Get() == 44
//
// # Example
//
// Addressing the fields of an RGB565 word:
//
//	var px uint16
//	r := channel.Bind[channel.Bits5, uint8](&px, 11)
//	g := channel.Bind[channel.Bits6, uint8](&px, 5)
//	b := channel.Bind[channel.Bits5, uint8](&px, 0)
//	r.Set(31)
//	g.Set(0)
//	b.Set(31) // px == 0xF81F
//
// Refs provide no synchronisation; writers of fields sharing a word must
// coordinate.
package channel
