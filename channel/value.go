package channel

import "cmp"

// Value is an owned N-bit channel sample stored in T, the narrowest native
// unsigned integer holding N bits. Only the low N bits of the storage are
// ever set.
//
// The zero Value is 0. Values are plain scalars and copy bit-exactly; two
// Values of the same width compare equal with == iff their samples are
// equal.
type Value[W Width[T], T Unsigned] struct {
	v T
}

// NewValue returns v reduced modulo 2^N.
func NewValue[W Width[T], T Unsigned](v T) Value[W, T] {
	return Value[W, T]{v: v & lowMask[W, T]()}
}

// ValueOf converts any integer to a Value, keeping its low N bits.
// Negative inputs wrap the same way an unsigned conversion does.
func ValueOf[W Width[T], T Unsigned, I Integer](v I) Value[W, T] {
	return Value[W, T]{v: T(uint64(v)) & lowMask[W, T]()}
}

// Get returns the sample with all bits above N-1 zero.
func (c Value[W, T]) Get() T { return c.v }

// Set stores v modulo 2^N.
func (c *Value[W, T]) Set(v T) { c.v = v & lowMask[W, T]() }

// SetUint stores v modulo 2^N. It accepts inputs wider than T.
func (c *Value[W, T]) SetUint(v uint64) { c.v = T(v) & lowMask[W, T]() }

// Compare orders two samples the way cmp.Compare orders their integers.
func (c Value[W, T]) Compare(o Value[W, T]) int { return cmp.Compare(c.v, o.v) }

// Const returns a read-only copy of c.
func (c Value[W, T]) Const() ConstValue[W, T] { return ConstValue[W, T](c) }

func (Value[W, T]) NumBits() uint { return numBits[W, T]() }

// MinValue is always 0.
func (Value[W, T]) MinValue() T { return 0 }

// MaxValue is 2^N-1.
func (Value[W, T]) MaxValue() T { return lowMask[W, T]() }

// ConstValue is the immutable counterpart of Value: the same sample
// without the mutating methods.
type ConstValue[W Width[T], T Unsigned] struct {
	v T
}

// Get returns the sample.
func (c ConstValue[W, T]) Get() T { return c.v }

func (c ConstValue[W, T]) Compare(o ConstValue[W, T]) int { return cmp.Compare(c.v, o.v) }

// Value returns a mutable copy of c.
func (c ConstValue[W, T]) Value() Value[W, T] { return Value[W, T](c) }

func (ConstValue[W, T]) NumBits() uint { return numBits[W, T]() }
func (ConstValue[W, T]) MinValue() T   { return 0 }
func (ConstValue[W, T]) MaxValue() T   { return lowMask[W, T]() }
