package codec

// Codec is a bidirectional, typed mapping between a Go value and its wire
// representation. Like the rest of this package, it is a small named value
// wrapping closures rather than an interface: composing codecs is function
// composition, not type assertion.
type Codec[T any] struct {
	name   string
	encode func(T) (ByteVector, error)
	decode func(ByteVector) (T, ByteVector, error)
}

// New builds a Codec from an encode and a decode function. name is used only
// for diagnostics (Name, and the names combinators build for the codecs they
// compose).
func New[T any](name string, encode func(T) (ByteVector, error), decode func(ByteVector) (T, ByteVector, error)) Codec[T] {
	return Codec[T]{name: name, encode: encode, decode: decode}
}

// Name returns the diagnostic name this codec was built with.
func (c Codec[T]) Name() string { return c.name }

// Encode maps a value to its wire representation.
func (c Codec[T]) Encode(value T) (ByteVector, error) {
	return c.encode(value)
}

// Decode consumes a prefix of input and returns the decoded value together
// with whatever input was not consumed.
func (c Codec[T]) Decode(input ByteVector) (T, ByteVector, error) {
	return c.decode(input)
}

// DecodeValue is a convenience wrapper over Decode that discards the
// remainder, for callers who know the codec consumes the entire input.
func (c Codec[T]) DecodeValue(input ByteVector) (T, error) {
	value, _, err := c.decode(input)
	return value, err
}
