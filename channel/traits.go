package channel

// Channel is the read surface shared by every channel representation:
// Value, ConstValue, Ref and ConstRef. Generic pixel code is written
// against Channel and never needs to know whether a sample is owned or
// referenced.
type Channel[T Unsigned] interface {
	NumBits() uint
	MinValue() T
	MaxValue() T
	Get() T
}

// Mutable is a Channel that can be written. *Value and Ref implement it;
// the read-only types do not.
type Mutable[T Unsigned] interface {
	Channel[T]
	Set(v T)
}

// Traits holds the width-derived facts about a channel type.
type Traits[T Unsigned] struct {
	NumBits  uint
	MinValue T
	MaxValue T
	Default  T
}

// TraitsOf returns the traits of the channel type C. They are computed from
// the zero value of C, so no sample or containing word is needed.
//
// The type-level queries take value types (Value, ConstValue, Ref,
// ConstRef); the zero value of *Value is nil and cannot answer them.
func TraitsOf[C Channel[T], T Unsigned]() Traits[T] {
	var c C
	return Traits[T]{
		NumBits:  c.NumBits(),
		MinValue: c.MinValue(),
		MaxValue: c.MaxValue(),
		Default:  Default[C, T](),
	}
}

// NumBits returns the width of the channel type C.
func NumBits[C Channel[T], T Unsigned]() uint {
	var c C
	return c.NumBits()
}

// MinValue returns the smallest sample of the channel type C.
func MinValue[C Channel[T], T Unsigned]() T {
	var c C
	return c.MinValue()
}

// MaxValue returns the largest sample of the channel type C.
func MaxValue[C Channel[T], T Unsigned]() T {
	var c C
	return c.MaxValue()
}

// Default returns the sample a default-constructed channel of type C holds.
func Default[C Channel[T], T Unsigned]() T {
	return 0
}
