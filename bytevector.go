package codec

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// ByteVector is an immutable, structurally shared sequence of bytes. It is a
// tree whose leaves hold owned buffers; Append creates an internal node
// referencing both children without copying, and Slice records an
// offset/length view without copying leaf bytes. Copying a ByteVector value
// is O(1): the struct itself is just a pointer to an immutable node.
type ByteVector struct {
	node bvNode
}

// bvNode is the sum type over storage kinds described in §4.A: empty, a
// direct leaf, an append node, or a slice view.
type bvNode interface {
	length() int
	// copyInto copies exactly n bytes, starting at offset within this node,
	// into dst[:n]. Callers are responsible for bounds checking before calling.
	copyInto(dst []byte, offset, n int)
}

type emptyNode struct{}

func (emptyNode) length() int { return 0 }
func (emptyNode) copyInto([]byte, int, int) {}

type leafNode struct {
	data []byte
}

func (n leafNode) length() int { return len(n.data) }
func (n leafNode) copyInto(dst []byte, offset, count int) {
	copy(dst[:count], n.data[offset:offset+count])
}

type appendNode struct {
	left, right bvNode
	len         int
}

func (n appendNode) length() int { return n.len }
func (n appendNode) copyInto(dst []byte, offset, count int) {
	leftLen := n.left.length()
	if offset+count <= leftLen {
		n.left.copyInto(dst, offset, count)
		return
	}
	if offset >= leftLen {
		n.right.copyInto(dst, offset-leftLen, count)
		return
	}
	leftCount := leftLen - offset
	n.left.copyInto(dst[:leftCount], offset, leftCount)
	n.right.copyInto(dst[leftCount:count], 0, count-leftCount)
}

type sliceNode struct {
	base   bvNode
	offset int
	len    int
}

func (n sliceNode) length() int { return n.len }
func (n sliceNode) copyInto(dst []byte, offset, count int) {
	n.base.copyInto(dst, n.offset+offset, count)
}

// Empty returns the zero-length ByteVector.
func Empty() ByteVector {
	return ByteVector{node: emptyNode{}}
}

// FromSlice returns a ByteVector holding a copy of b. The caller's slice may
// be mutated afterwards without affecting the returned value.
func FromSlice(b []byte) ByteVector {
	if len(b) == 0 {
		return Empty()
	}
	owned := make([]byte, len(b))
	copy(owned, b)
	return ByteVector{node: leafNode{data: owned}}
}

// Fill returns a ByteVector of length count whose every byte equals value.
func Fill(value byte, count int) ByteVector {
	if count == 0 {
		return Empty()
	}
	buf := make([]byte, count)
	for i := range buf {
		buf[i] = value
	}
	return ByteVector{node: leafNode{data: buf}}
}

// Append returns a ByteVector containing the contents of a followed by the
// contents of b. If either side is empty, the other is returned unchanged.
func Append(a, b ByteVector) ByteVector {
	if a.Length() == 0 {
		return b
	}
	if b.Length() == 0 {
		return a
	}
	return ByteVector{node: appendNode{left: a.node, right: b.node, len: a.Length() + b.Length()}}
}

// Length returns the number of bytes in the vector.
func (bv ByteVector) Length() int {
	if bv.node == nil {
		return 0
	}
	return bv.node.length()
}

// Get returns the byte at index i, or InsufficientBitsError if i is out of range.
func (bv ByteVector) Get(i int) (byte, error) {
	if i < 0 || i >= bv.Length() {
		return 0, newInsufficientBitsError(i+1, bv.Length())
	}
	var buf [1]byte
	bv.node.copyInto(buf[:], i, 1)
	return buf[0], nil
}

// Slice returns a new ByteVector containing length bytes starting at start,
// without copying the underlying leaf buffers. It fails with
// InsufficientBitsError if the requested range exceeds the vector's bounds.
func (bv ByteVector) Slice(start, length int) (ByteVector, error) {
	total := bv.Length()
	if start < 0 || length < 0 || start+length > total {
		return ByteVector{}, newInsufficientBitsError(start+length, total)
	}
	if length == 0 {
		return Empty(), nil
	}
	if start == 0 && length == total {
		return bv, nil
	}
	return ByteVector{node: sliceNode{base: bv.node, offset: start, len: length}}, nil
}

// ToSlice materializes the vector into a single contiguous buffer. This is
// the system boundary operation for reading bytes out: it always returns a
// fresh copy, and is O(length).
func (bv ByteVector) ToSlice() []byte {
	n := bv.Length()
	buf := make([]byte, n)
	if n > 0 {
		bv.node.copyInto(buf, 0, n)
	}
	return buf
}

// Equal reports structural equality: two vectors with different internal
// tree shapes but the same bytes compare equal.
func (bv ByteVector) Equal(other ByteVector) bool {
	if bv.Length() != other.Length() {
		return false
	}
	return bytes.Equal(bv.ToSlice(), other.ToSlice())
}

func (bv ByteVector) readUintN(offset, size int) (uint64, error) {
	total := bv.Length()
	if offset < 0 || offset+size > total {
		return 0, newInsufficientBitsError(offset+size, total)
	}
	var buf [8]byte
	bv.node.copyInto(buf[8-size:8], offset, size)
	return binary.BigEndian.Uint64(buf[:]), nil
}

// ReadUint8 reads a single big-endian byte at offset.
func (bv ByteVector) ReadUint8(offset int) (uint8, error) {
	v, err := bv.readUintN(offset, 1)
	return uint8(v), err
}

// ReadUint16 reads a 2-byte big-endian unsigned integer at offset.
func (bv ByteVector) ReadUint16(offset int) (uint16, error) {
	v, err := bv.readUintN(offset, 2)
	return uint16(v), err
}

// ReadUint32 reads a 4-byte big-endian unsigned integer at offset.
func (bv ByteVector) ReadUint32(offset int) (uint32, error) {
	v, err := bv.readUintN(offset, 4)
	return uint32(v), err
}

// ReadUint64 reads an 8-byte big-endian unsigned integer at offset.
func (bv ByteVector) ReadUint64(offset int) (uint64, error) {
	return bv.readUintN(offset, 8)
}

// String renders the vector as a lowercase hex string, for debugging.
func (bv ByteVector) String() string {
	return fmt.Sprintf("%x", bv.ToSlice())
}
