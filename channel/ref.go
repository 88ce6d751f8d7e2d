package channel

import "fmt"

// Ref addresses the N bits [first, first+N) of a containing integer C that
// is owned elsewhere, typically a word of a packed pixel buffer. Reads and
// writes go through mask and shift and never touch bits outside the range.
//
// A Ref borrows its word: the word must outlive the Ref, and moving or
// freeing it (for example by appending to the slice that holds it) leaves
// the Ref dangling. Refs into the same word must address disjoint ranges;
// neither condition is checked.
//
// The zero Ref is not bound. Its width queries work, Get and Set panic.
type Ref[W Width[T], T Unsigned, C Unsigned] struct {
	word  *C
	first uint8
}

// Bind returns a Ref to bits [first, first+N) of *word.
//
// Bind panics when the range does not fit in C. The range is a property of
// the pixel layout, not of the data, so this is a programming error.
func Bind[W Width[T], T Unsigned, C Unsigned](word *C, first uint) Ref[W, T, C] {
	checkRange[W, T, C](first)
	return Ref[W, T, C]{word: word, first: uint8(first)}
}

// BindConst is Bind for read-only access.
func BindConst[W Width[T], T Unsigned, C Unsigned](word *C, first uint) ConstRef[W, T, C] {
	checkRange[W, T, C](first)
	return ConstRef[W, T, C]{word: word, first: uint8(first)}
}

func checkRange[W Width[T], T Unsigned, C Unsigned](first uint) {
	if n, size := numBits[W, T](), StorageBits[C](); first+n > size || first >= size {
		panic(fmt.Sprintf("channel: bits [%d,%d) do not fit in a %d-bit word", first, first+n, size))
	}
}

// Get extracts the addressed bits.
func (r Ref[W, T, C]) Get() T {
	return T((*r.word >> r.first) & C(lowMask[W, T]()))
}

// Set replaces the addressed bits with v modulo 2^N.
func (r Ref[W, T, C]) Set(v T) {
	m := C(lowMask[W, T]()) << r.first
	*r.word = *r.word&^m | C(v)<<r.first&m
}

// SetUint replaces the addressed bits with v modulo 2^N.
func (r Ref[W, T, C]) SetUint(v uint64) { r.Set(T(v)) }

// Assign copies the sample of another channel of the same storage type,
// truncating it to N bits.
func (r Ref[W, T, C]) Assign(src Channel[T]) { r.Set(src.Get()) }

// Value returns an owned copy of the addressed sample.
func (r Ref[W, T, C]) Value() Value[W, T] { return Value[W, T]{v: r.Get()} }

// Const returns a read-only Ref to the same bits.
func (r Ref[W, T, C]) Const() ConstRef[W, T, C] { return ConstRef[W, T, C](r) }

// FirstBit returns the offset of the lowest addressed bit, counted from the
// least significant bit of the word.
func (r Ref[W, T, C]) FirstBit() uint { return uint(r.first) }

// Word returns the containing integer.
func (r Ref[W, T, C]) Word() *C { return r.word }

func (Ref[W, T, C]) NumBits() uint { return numBits[W, T]() }
func (Ref[W, T, C]) MinValue() T   { return 0 }
func (Ref[W, T, C]) MaxValue() T   { return lowMask[W, T]() }

// ConstRef is the read-only form of Ref. It has no Set, so writing through
// a read-only binding does not compile.
type ConstRef[W Width[T], T Unsigned, C Unsigned] struct {
	word  *C
	first uint8
}

// Get extracts the addressed bits.
func (r ConstRef[W, T, C]) Get() T {
	return T((*r.word >> r.first) & C(lowMask[W, T]()))
}

func (r ConstRef[W, T, C]) Value() Value[W, T] { return Value[W, T]{v: r.Get()} }
func (r ConstRef[W, T, C]) FirstBit() uint     { return uint(r.first) }

func (ConstRef[W, T, C]) NumBits() uint { return numBits[W, T]() }
func (ConstRef[W, T, C]) MinValue() T   { return 0 }
func (ConstRef[W, T, C]) MaxValue() T   { return lowMask[W, T]() }
