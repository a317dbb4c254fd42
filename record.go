package codec

// HNilCodec is the identity codec for the empty heterogeneous list: it
// consumes nothing and always decodes to HNil{}. Every Prepend chain
// terminates in HNilCodec the same way every HCons chain terminates in HNil.
func HNilCodec() Codec[HNil] {
	encode := func(HNil) (ByteVector, error) { return Empty(), nil }
	decode := func(input ByteVector) (HNil, ByteVector, error) {
		return HNil{}, input, nil
	}
	return New("hnil", encode, decode)
}

// ToHListFunc converts a record value of type R into its HList
// representation L. It plays the role the original isomorphism trait played,
// as a plain function rather than an interface method, so any existing
// struct can be bound without modification.
type ToHListFunc[R, L any] func(R) L

// FromHListFunc is the inverse of ToHListFunc: it rebuilds a record value of
// type R from its HList representation L.
type FromHListFunc[R, L any] func(L) R

// StructCodec binds a Codec[L] over an HList shape to a Codec[R] over an
// ordinary Go struct, given a pair of conversion functions between the two.
// This is how the heterogeneous-list codecs built from Prepend/FlatPrepend
// are ultimately surfaced to callers as codecs over their own named types.
func StructCodec[R, L any](inner Codec[L], to ToHListFunc[R, L], from FromHListFunc[R, L]) Codec[R] {
	encode := func(value R) (ByteVector, error) {
		return inner.Encode(to(value))
	}
	decode := func(input ByteVector) (R, ByteVector, error) {
		l, remainder, err := inner.Decode(input)
		if err != nil {
			var zero R
			return zero, ByteVector{}, err
		}
		return from(l), remainder, nil
	}
	return New(inner.Name(), encode, decode)
}
