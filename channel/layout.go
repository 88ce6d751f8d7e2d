package channel

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyField is returned for a field of zero bits.
	ErrEmptyField = errors.New("channel: field has no bits")
	// ErrFieldRange is returned for a field extending past the word.
	ErrFieldRange = errors.New("channel: field does not fit in word")
	// ErrFieldOverlap is returned when two fields share a bit.
	ErrFieldOverlap = errors.New("channel: fields overlap")
)

// Field is a run of Bits bits starting at bit First, counted from the least
// significant bit of the word.
type Field struct {
	First uint
	Bits  uint
}

// Mask returns the bits of the field in place.
func (f Field) Mask() uint64 {
	return (^uint64(0) >> (64 - f.Bits)) << f.First
}

// Layout is an ordered list of disjoint fields of a C word, such as the
// R, G and B fields of an RGB565 pixel. It is the runtime counterpart of a
// set of Refs: widths come from data rather than from types.
type Layout[C Unsigned] []Field

// NewLayout validates fields against the width of C.
func NewLayout[C Unsigned](fields ...Field) (Layout[C], error) {
	size := StorageBits[C]()
	var used uint64
	for i, f := range fields {
		if f.Bits == 0 {
			return nil, fmt.Errorf("channel: field %d: %w", i, ErrEmptyField)
		}
		if f.First >= size || f.Bits > size-f.First {
			return nil, fmt.Errorf("channel: field %d [%d,%d) in %d-bit word: %w", i, f.First, f.First+f.Bits, size, ErrFieldRange)
		}
		if used&f.Mask() != 0 {
			return nil, fmt.Errorf("channel: field %d: %w", i, ErrFieldOverlap)
		}
		used |= f.Mask()
	}
	return Layout[C](fields), nil
}

// MustLayout is like NewLayout but panics on an invalid layout. It is meant
// for package-level pixel formats.
func MustLayout[C Unsigned](fields ...Field) Layout[C] {
	l, err := NewLayout[C](fields...)
	if err != nil {
		panic(err)
	}
	return l
}

// Get extracts field i of word.
func (l Layout[C]) Get(word C, i int) C {
	f := l[i]
	return C(uint64(word) & f.Mask() >> f.First)
}

// Set replaces field i of *word with v, truncated to the field width.
func (l Layout[C]) Set(word *C, i int, v C) {
	m := C(l[i].Mask())
	*word = *word&^m | v<<l[i].First&m
}

// Unpack returns every field of word in layout order.
func (l Layout[C]) Unpack(word C) []C {
	out := make([]C, len(l))
	for i := range l {
		out[i] = l.Get(word, i)
	}
	return out
}

// Pack builds a word from one value per field. Missing values are zero,
// extra values are ignored.
func (l Layout[C]) Pack(values ...C) C {
	var word C
	for i := range min(len(l), len(values)) {
		l.Set(&word, i, values[i])
	}
	return word
}

// Bind returns one FieldRef per field of *word. The word must outlive the
// returned references.
func (l Layout[C]) Bind(word *C) []FieldRef[C] {
	refs := make([]FieldRef[C], len(l))
	for i, f := range l {
		refs[i] = FieldRef[C]{word: word, field: f}
	}
	return refs
}

// FieldRef is a Ref whose width is known only at run time. It satisfies
// Mutable[C]; the type-level trait queries do not apply to it because its
// zero value has no width.
type FieldRef[C Unsigned] struct {
	word  *C
	field Field
}

func (r FieldRef[C]) Get() C {
	return C(uint64(*r.word) & r.field.Mask() >> r.field.First)
}

func (r FieldRef[C]) Set(v C) {
	m := C(r.field.Mask())
	*r.word = *r.word&^m | v<<r.field.First&m
}

func (r FieldRef[C]) Field() Field  { return r.field }
func (r FieldRef[C]) NumBits() uint { return r.field.Bits }
func (r FieldRef[C]) MinValue() C   { return 0 }

func (r FieldRef[C]) MaxValue() C {
	return C(r.field.Mask() >> r.field.First)
}
