package codec

// Prepend sequences headCodec and tailCodec: encode writes the head value
// then the tail list, decode reads a head value then threads the remainder
// into the tail codec. It is the structural building block the Seq2/Seq3/Seq4
// helpers are expressed in terms of.
func Prepend[H any, L HList](headCodec Codec[H], tailCodec Codec[L]) Codec[HCons[H, L]] {
	encode := func(value HCons[H, L]) (ByteVector, error) {
		headBytes, err := headCodec.Encode(value.Head)
		if err != nil {
			return ByteVector{}, err
		}
		tailBytes, err := tailCodec.Encode(value.Tail)
		if err != nil {
			return ByteVector{}, err
		}
		return Append(headBytes, tailBytes), nil
	}
	decode := func(input ByteVector) (HCons[H, L], ByteVector, error) {
		head, headRemainder, err := headCodec.Decode(input)
		if err != nil {
			var zero HCons[H, L]
			return zero, ByteVector{}, err
		}
		tail, tailRemainder, err := tailCodec.Decode(headRemainder)
		if err != nil {
			var zero HCons[H, L]
			return zero, ByteVector{}, err
		}
		return Cons(head, tail), tailRemainder, nil
	}
	return New(headCodec.Name()+" :: "+tailCodec.Name(), encode, decode)
}

// DropLeft runs unitCodec purely for its side effect on the wire (a magic
// number, a fixed tag, padding) and keeps only valueCodec's result. On
// encode it writes unitCodec's fixed output followed by valueCodec's, on
// decode it verifies/skips the unit's bytes and returns valueCodec's value.
func DropLeft[T any](unitCodec Codec[struct{}], valueCodec Codec[T]) Codec[T] {
	encode := func(value T) (ByteVector, error) {
		unitBytes, err := unitCodec.Encode(struct{}{})
		if err != nil {
			return ByteVector{}, err
		}
		valueBytes, err := valueCodec.Encode(value)
		if err != nil {
			return ByteVector{}, err
		}
		return Append(unitBytes, valueBytes), nil
	}
	decode := func(input ByteVector) (T, ByteVector, error) {
		_, unitRemainder, err := unitCodec.Decode(input)
		if err != nil {
			var zero T
			return zero, ByteVector{}, err
		}
		return valueCodec.Decode(unitRemainder)
	}
	return New(unitCodec.Name()+" >> "+valueCodec.Name(), encode, decode)
}

// FlatPrepend sequences headCodec with a tail codec chosen by f from the
// decoded head value. This is how a length or variant tag decoded from the
// head determines the shape of everything that follows: f(head) produces
// the codec for the rest of the record.
//
// Because the tail codec depends on a decoded value, FlatPrepend has no
// general encode-side inverse derivation; instead encode re-derives the tail
// codec by calling f on the head value being encoded, which must be
// consistent with what decode would have produced for the same bytes.
func FlatPrepend[H any, L HList](headCodec Codec[H], f func(H) Codec[L]) Codec[HCons[H, L]] {
	encode := func(value HCons[H, L]) (ByteVector, error) {
		headBytes, err := headCodec.Encode(value.Head)
		if err != nil {
			return ByteVector{}, err
		}
		tailCodec := f(value.Head)
		tailBytes, err := tailCodec.Encode(value.Tail)
		if err != nil {
			return ByteVector{}, err
		}
		return Append(headBytes, tailBytes), nil
	}
	decode := func(input ByteVector) (HCons[H, L], ByteVector, error) {
		head, headRemainder, err := headCodec.Decode(input)
		if err != nil {
			var zero HCons[H, L]
			return zero, ByteVector{}, err
		}
		tailCodec := f(head)
		tail, tailRemainder, err := tailCodec.Decode(headRemainder)
		if err != nil {
			var zero HCons[H, L]
			return zero, ByteVector{}, err
		}
		return Cons(head, tail), tailRemainder, nil
	}
	return New(headCodec.Name()+" >>= f", encode, decode)
}

// Xmap adapts a Codec[A] into a Codec[B] via a total, lossless isomorphism:
// toB must be invertible by toA for every value the codec can actually
// produce. Use Xmap when the mapping cannot fail; use ExMap when it can.
func Xmap[A, B any](inner Codec[A], toB func(A) B, toA func(B) A) Codec[B] {
	encode := func(value B) (ByteVector, error) {
		return inner.Encode(toA(value))
	}
	decode := func(input ByteVector) (B, ByteVector, error) {
		a, remainder, err := inner.Decode(input)
		if err != nil {
			var zero B
			return zero, ByteVector{}, err
		}
		return toB(a), remainder, nil
	}
	return New(inner.Name(), encode, decode)
}

// ExMap is Xmap for mappings that can fail in either direction, such as a
// range-restricted numeric conversion or a validated string format. Either
// function may return a ConversionError (or any other error) to reject the
// value; that error is surfaced directly from Encode/Decode.
func ExMap[A, B any](inner Codec[A], toB func(A) (B, error), toA func(B) (A, error)) Codec[B] {
	encode := func(value B) (ByteVector, error) {
		a, err := toA(value)
		if err != nil {
			return ByteVector{}, err
		}
		return inner.Encode(a)
	}
	decode := func(input ByteVector) (B, ByteVector, error) {
		a, remainder, err := inner.Decode(input)
		if err != nil {
			var zero B
			return zero, ByteVector{}, err
		}
		b, err := toB(a)
		if err != nil {
			var zero B
			return zero, ByteVector{}, err
		}
		return b, remainder, nil
	}
	return New(inner.Name(), encode, decode)
}

// WithContext wraps every error c.Encode/c.Decode can produce in a
// ContextError labeled with label, so a failure deep inside a composed codec
// reports the full field path ("section / header / magic / ...") rather than just
// the innermost error.
func WithContext[T any](label string, c Codec[T]) Codec[T] {
	encode := func(value T) (ByteVector, error) {
		result, err := c.Encode(value)
		if err != nil {
			return ByteVector{}, pushContext(label, err)
		}
		return result, nil
	}
	decode := func(input ByteVector) (T, ByteVector, error) {
		value, remainder, err := c.Decode(input)
		if err != nil {
			var zero T
			return zero, ByteVector{}, pushContext(label, err)
		}
		return value, remainder, nil
	}
	return New(label, encode, decode)
}

// Seq2 builds a codec for a two-element sequence, saving call sites from
// manually nesting Prepend/HNilCodec for the common small-arity case.
func Seq2[A, B any](a Codec[A], b Codec[B]) Codec[HCons[A, HCons[B, HNil]]] {
	return Prepend(a, Prepend(b, HNilCodec()))
}

// Seq3 builds a codec for a three-element sequence.
func Seq3[A, B, C any](a Codec[A], b Codec[B], c Codec[C]) Codec[HCons[A, HCons[B, HCons[C, HNil]]]] {
	return Prepend(a, Prepend(b, Prepend(c, HNilCodec())))
}

// Seq4 builds a codec for a four-element sequence.
func Seq4[A, B, C, D any](a Codec[A], b Codec[B], c Codec[C], d Codec[D]) Codec[HCons[A, HCons[B, HCons[C, HCons[D, HNil]]]]] {
	return Prepend(a, Prepend(b, Prepend(c, Prepend(d, HNilCodec()))))
}
