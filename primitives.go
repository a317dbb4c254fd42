package codec

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// uintCodec builds a fixed-width, big-endian codec for any unsigned integer
// type. Uint8/16/32/64 below are thin instantiations of this one generic
// definition, the same way the rest of the package prefers one parametrized
// building block over four hand-duplicated ones.
func uintCodec[T constraints.Unsigned](size int, name string) Codec[T] {
	encode := func(value T) (ByteVector, error) {
		v := uint64(value)
		buf := make([]byte, size)
		for i := size - 1; i >= 0; i-- {
			buf[i] = byte(v)
			v >>= 8
		}
		return FromSlice(buf), nil
	}
	decode := func(input ByteVector) (T, ByteVector, error) {
		var zero T
		if input.Length() < size {
			return zero, ByteVector{}, newInsufficientBitsError(size, input.Length())
		}
		var v uint64
		for i := 0; i < size; i++ {
			b, err := input.Get(i)
			if err != nil {
				return zero, ByteVector{}, err
			}
			v = v<<8 | uint64(b)
		}
		remainder, err := input.Slice(size, input.Length()-size)
		if err != nil {
			return zero, ByteVector{}, err
		}
		return T(v), remainder, nil
	}
	return New(name, encode, decode)
}

// Uint8 reads and writes a single byte.
func Uint8() Codec[uint8] { return uintCodec[uint8](1, "uint8") }

// Uint16 reads and writes a 2-byte big-endian unsigned integer.
func Uint16() Codec[uint16] { return uintCodec[uint16](2, "uint16") }

// Uint32 reads and writes a 4-byte big-endian unsigned integer.
func Uint32() Codec[uint32] { return uintCodec[uint32](4, "uint32") }

// Uint64 reads and writes an 8-byte big-endian unsigned integer.
func Uint64() Codec[uint64] { return uintCodec[uint64](8, "uint64") }

// Bytes builds a codec for a fixed-length raw byte string. Encode fails with
// EncodingError if the supplied ByteVector is not exactly n bytes long.
func Bytes(n int) Codec[ByteVector] {
	encode := func(value ByteVector) (ByteVector, error) {
		if value.Length() != n {
			return ByteVector{}, newEncodingError("bytes(%d): value has length %d", n, value.Length())
		}
		return value, nil
	}
	decode := func(input ByteVector) (ByteVector, ByteVector, error) {
		if input.Length() < n {
			return ByteVector{}, ByteVector{}, newInsufficientBitsError(n, input.Length())
		}
		head, err := input.Slice(0, n)
		if err != nil {
			return ByteVector{}, ByteVector{}, err
		}
		tail, err := input.Slice(n, input.Length()-n)
		if err != nil {
			return ByteVector{}, ByteVector{}, err
		}
		return head, tail, nil
	}
	return New(fmt.Sprintf("bytes(%d)", n), encode, decode)
}

// Constant builds a codec over struct{} that always encodes to the literal
// value, and on decode requires the input to begin with exactly that literal,
// failing with ConstantMismatchError otherwise.
func Constant(value ByteVector) Codec[struct{}] {
	n := value.Length()
	encode := func(struct{}) (ByteVector, error) {
		return value, nil
	}
	decode := func(input ByteVector) (struct{}, ByteVector, error) {
		if input.Length() < n {
			return struct{}{}, ByteVector{}, newInsufficientBitsError(n, input.Length())
		}
		head, err := input.Slice(0, n)
		if err != nil {
			return struct{}{}, ByteVector{}, err
		}
		if !head.Equal(value) {
			return struct{}{}, ByteVector{}, newConstantMismatchError(value, head)
		}
		tail, err := input.Slice(n, input.Length()-n)
		if err != nil {
			return struct{}{}, ByteVector{}, err
		}
		return struct{}{}, tail, nil
	}
	return New(fmt.Sprintf("constant(%s)", value.String()), encode, decode)
}

// Ignore builds a codec over struct{} that encodes to n zero bytes and
// discards n bytes on decode without validating their contents. It is the
// building block for padding.
func Ignore(n int) Codec[struct{}] {
	zeros := Fill(0, n)
	encode := func(struct{}) (ByteVector, error) {
		return zeros, nil
	}
	decode := func(input ByteVector) (struct{}, ByteVector, error) {
		if input.Length() < n {
			return struct{}{}, ByteVector{}, newInsufficientBitsError(n, input.Length())
		}
		tail, err := input.Slice(n, input.Length()-n)
		if err != nil {
			return struct{}{}, ByteVector{}, err
		}
		return struct{}{}, tail, nil
	}
	return New(fmt.Sprintf("ignore(%d)", n), encode, decode)
}

// Eager returns a codec with inner's encode and decode functions unchanged
// and only its name wrapped. Decoding in this package already runs
// immediately, so Eager has no effect on behaviour; it keeps the vocabulary
// of the wider combinator family, typically around Bytes bodies whose length
// FlatPrepend takes from a decoded header.
func Eager[T any](inner Codec[T]) Codec[T] {
	return New("eager("+inner.Name()+")", inner.encode, inner.decode)
}
