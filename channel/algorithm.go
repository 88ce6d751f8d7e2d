package channel

import "math/bits"

// Scale maps v from the range [0, srcMax] onto [0, dstMax], rounding to the
// nearest integer, so that 0 maps to 0 and srcMax maps to dstMax. Values
// above srcMax are clamped. The intermediate product is 128 bits wide, so
// 64-bit ranges scale exactly.
func Scale(v, srcMax, dstMax uint64) uint64 {
	if srcMax == 0 {
		return 0
	}
	if srcMax == dstMax {
		return min(v, srcMax)
	}
	v = min(v, srcMax)
	hi, lo := bits.Mul64(v, dstMax)
	lo, carry := bits.Add64(lo, srcMax/2, 0)
	q, _ := bits.Div64(hi+carry, lo, srcMax)
	return q
}

// Convert writes src into dst, rescaling between their widths so that the
// minimum and maximum of src land on the minimum and maximum of dst.
func Convert[TD, TS Unsigned](dst Mutable[TD], src Channel[TS]) {
	dst.Set(TD(Scale(uint64(src.Get()), uint64(src.MaxValue()), uint64(dst.MaxValue()))))
}

// To16 rescales a sample to the 16-bit range used by color.Color.
func To16[T Unsigned](c Channel[T]) uint32 {
	return uint32(Scale(uint64(c.Get()), uint64(c.MaxValue()), 0xffff))
}

// Invert replaces the sample v with MaxValue()-v.
func Invert[T Unsigned](c Mutable[T]) {
	c.Set(c.MaxValue() - c.Get())
}

// Equal reports whether two channels hold the same sample, whatever their
// representation.
func Equal[T Unsigned](a, b Channel[T]) bool {
	return a.Get() == b.Get()
}

// Fill sets every channel in dst to v.
func Fill[C Mutable[T], T Unsigned](dst []C, v T) {
	for _, c := range dst {
		c.Set(v)
	}
}
