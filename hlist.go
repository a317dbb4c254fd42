package codec

// HList is implemented by HNil and HCons[H, T]. It exists only so combinators
// can constrain a generic type parameter to "some HList shape"; the codec
// algebra never inspects an HList's contents except one cons cell at a time.
type HList interface {
	isHList()
}

// HNil is the empty heterogeneous list, the identity element for HCons chains.
type HNil struct{}

func (HNil) isHList() {}

// HCons prepends a value of type H onto a tail list of type T. It is a plain
// generic struct, playing the role the original's macro-generated hlist! forms
// played: a compile-time-typed tuple whose length and element types are known
// statically.
type HCons[H any, T HList] struct {
	Head H
	Tail T
}

func (HCons[H, T]) isHList() {}

// Cons builds an HCons from a head value and a tail list. It exists mainly for
// readability at call sites that would otherwise spell out the struct literal.
func Cons[H any, T HList](head H, tail T) HCons[H, T] {
	return HCons[H, T]{Head: head, Tail: tail}
}
