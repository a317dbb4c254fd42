/*
Package codec provides combinators for purely functional, declarative binary
encoding and decoding.

# Overview

A user composes small, typed building blocks ("codecs") into larger codecs
that bidirectionally map values of a specific in-memory shape to/from a
compact byte sequence. Primitive codecs cover fixed-width integers, constants,
and raw bytes; combinators cover sequencing, context-dependent decoding,
alignment/padding, and record (struct) binding.

# Core Concepts

ByteVector is an immutable, structurally shared byte sequence:

	bv := codec.Append(codec.FromSlice([]byte{1, 2}), codec.FromSlice([]byte{3, 4}))
	bv.Length() // 4

Codec[T] denotes a bidirectional mapping, built the same way the rest of this
module builds composable values: a small named type wrapping two functions,
not an interface implementation.

	u32 := codec.Uint32()
	encoded, _ := u32.Encode(258)
	value, remainder, _ := u32.Decode(encoded)

Combinators build a tree of codecs that mirrors the wire format's grammar:

	header := codec.DropLeft(codec.Constant(magic), codec.Uint8())

# Available Types

Data model:
  - ByteVector: immutable, structurally shared byte sequence
  - HNil, HCons[H, T]: heterogeneous, compile-time-typed cons-list

Codec algebra:
  - Codec[T]: the bidirectional encode/decode contract
  - Uint8, Uint16, Uint32, Uint64: fixed-width big-endian integers
  - Bytes, Constant, Ignore, Eager: primitive codecs
  - Prepend, DropLeft, FlatPrepend, Xmap, ExMap, WithContext: combinators
  - StructCodec: record binding via a declared isomorphism

Errors:
  - InsufficientBitsError, EncodingError, ConstantMismatchError,
    ConversionError, ContextError

# Package Import

	import codec "github.com/purefunc/codec"
*/
package codec
