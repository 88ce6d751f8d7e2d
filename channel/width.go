package channel

import "math/bits"

//go:generate go run ../internal/widthgen -output widths_gen.go -max 64

// Unsigned is the set of native storage integers a channel can live in.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is any integer type accepted by truncating constructors.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Width is implemented by the BitsN marker types. A marker implements
// Width[T] only for the narrowest storage type T holding N bits, so pairing
// a width with any other storage type fails to compile.
//
// The table of markers is closed: widths outside 1..64 have no marker.
type Width[T Unsigned] interface {
	NumBits() uint
	storage() T
}

// StorageBits returns the number of bits in the storage type T.
func StorageBits[T Unsigned]() uint {
	return uint(bits.OnesCount64(uint64(^T(0))))
}

func numBits[W Width[T], T Unsigned]() uint {
	var w W
	return w.NumBits()
}

// lowMask returns 2^N-1 for the width W.
func lowMask[W Width[T], T Unsigned]() T {
	return ^T(0) >> (StorageBits[T]() - numBits[W, T]())
}
