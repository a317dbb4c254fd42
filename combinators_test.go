package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func u32HCons() Codec[HCons[uint32, HCons[uint32, HNil]]] {
	return Prepend(Uint32(), Prepend(Uint32(), HNilCodec()))
}

func TestPrependRoundTrip(t *testing.T) {
	c := Prepend(Uint8(), Prepend(Uint16(), HNilCodec()))
	value := Cons(uint8(1), Cons(uint16(2), HNil{}))
	encoded, err := c.Encode(value)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 0, 2}, encoded.ToSlice())

	decoded, _, err := c.Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, value, decoded)
}

func TestSeq3RoundTrip(t *testing.T) {
	c := Seq3(Uint8(), Uint16(), Uint8())
	value := Cons(uint8(9), Cons(uint16(256), Cons(uint8(1), HNil{})))
	encoded, err := c.Encode(value)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 1, 0, 1}, encoded.ToSlice())

	decoded, err := c.DecodeValue(encoded)
	require.NoError(t, err)
	require.Equal(t, value, decoded)
}

func TestDropLeftSkipsMagicOnDecode(t *testing.T) {
	magic := FromSlice([]byte{0xAB, 0xCD})
	c := DropLeft(Constant(magic), Uint8())
	encoded, err := c.Encode(42)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAB, 0xCD, 42}, encoded.ToSlice())

	value, err := c.DecodeValue(encoded)
	require.NoError(t, err)
	require.Equal(t, uint8(42), value)
}

func TestDropLeftPropagatesMismatch(t *testing.T) {
	magic := FromSlice([]byte{0xAB, 0xCD})
	c := DropLeft(Constant(magic), Uint8())
	_, _, err := c.Decode(FromSlice([]byte{0xAB, 0xCE, 42}))
	require.Error(t, err)
}

func TestXmapAdaptsValueType(t *testing.T) {
	type Flag bool
	c := Xmap(Uint8(), func(v uint8) Flag { return v != 0 }, func(f Flag) uint8 {
		if f {
			return 1
		}
		return 0
	})
	encoded, err := c.Encode(Flag(true))
	require.NoError(t, err)
	require.Equal(t, []byte{1}, encoded.ToSlice())
	value, err := c.DecodeValue(encoded)
	require.NoError(t, err)
	require.Equal(t, Flag(true), value)
}

func TestExMapRejectsInvalidValue(t *testing.T) {
	c := ExMap(Uint8(),
		func(v uint8) (uint8, error) {
			if v > 100 {
				return 0, newConversionError("value %d exceeds maximum of 100", v)
			}
			return v, nil
		},
		func(v uint8) (uint8, error) { return v, nil },
	)
	_, err := c.DecodeValue(FromSlice([]byte{200}))
	require.Error(t, err)
	var conv *ConversionError
	require.ErrorAs(t, err, &conv)
}

func TestWithContextLabelsErrors(t *testing.T) {
	c := WithContext("magic", Constant(FromSlice([]byte{0xAB, 0xCD})))
	_, _, err := c.Decode(FromSlice([]byte{0x00, 0x00}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "magic / ")
}

func TestWithContextNestsAcrossCombinators(t *testing.T) {
	inner := WithContext("magic", Constant(FromSlice([]byte{0xAB, 0xCD})))
	outer := WithContext("header", WithContext("section", DropLeft(inner, Uint8())))
	_, _, err := outer.Decode(FromSlice([]byte{0, 0, 1}))
	require.Error(t, err)
	require.Contains(t, err.Error(), "header / section / magic / ")
}

// --- integration test ---
//
// A file format with a magic-prefixed header describing two sections
// (metadata and data), each with its own padding length and payload length.
// The body's shape is only known once the header has been decoded, which is
// exactly the case FlatPrepend exists for.

type fileVersion struct {
	Major, Minor uint8
}

type fileSection struct {
	PaddingLen uint32
	DataLen    uint32
}

type fileHeader struct {
	Version fileVersion
	Meta    fileSection
	Data    fileSection
}

type fileItem struct {
	Header   fileHeader
	Metadata ByteVector
	Data     ByteVector
}

func fileVersionCodec() Codec[fileVersion] {
	inner := Prepend(Uint8(), Prepend(Uint8(), HNilCodec()))
	to := func(v fileVersion) HCons[uint8, HCons[uint8, HNil]] {
		return Cons(v.Major, Cons(v.Minor, HNil{}))
	}
	from := func(l HCons[uint8, HCons[uint8, HNil]]) fileVersion {
		return fileVersion{Major: l.Head, Minor: l.Tail.Head}
	}
	return StructCodec(inner, to, from)
}

func fileSectionCodec() Codec[fileSection] {
	to := func(s fileSection) HCons[uint32, HCons[uint32, HNil]] {
		return Cons(s.PaddingLen, Cons(s.DataLen, HNil{}))
	}
	from := func(l HCons[uint32, HCons[uint32, HNil]]) fileSection {
		return fileSection{PaddingLen: l.Head, DataLen: l.Tail.Head}
	}
	return StructCodec(u32HCons(), to, from)
}

func fileHeaderCodec(magic ByteVector) Codec[fileHeader] {
	inner := Prepend(fileVersionCodec(), Prepend(fileSectionCodec(), Prepend(fileSectionCodec(), HNilCodec())))
	to := func(h fileHeader) HCons[fileVersion, HCons[fileSection, HCons[fileSection, HNil]]] {
		return Cons(h.Version, Cons(h.Meta, Cons(h.Data, HNil{})))
	}
	from := func(l HCons[fileVersion, HCons[fileSection, HCons[fileSection, HNil]]]) fileHeader {
		return fileHeader{Version: l.Head, Meta: l.Tail.Head, Data: l.Tail.Tail.Head}
	}
	return DropLeft(Constant(magic), StructCodec(inner, to, from))
}

func fileItemCodec(magic ByteVector) Codec[fileItem] {
	headerCodec := fileHeaderCodec(magic)
	bodyFor := func(hdr fileHeader) Codec[HCons[ByteVector, HCons[ByteVector, HNil]]] {
		metaCodec := DropLeft(Ignore(int(hdr.Meta.PaddingLen)), Eager(Bytes(int(hdr.Meta.DataLen))))
		dataCodec := DropLeft(Ignore(int(hdr.Data.PaddingLen)), Eager(Bytes(int(hdr.Data.DataLen))))
		return Prepend(metaCodec, Prepend(dataCodec, HNilCodec()))
	}
	inner := FlatPrepend(headerCodec, bodyFor)
	to := func(item fileItem) HCons[fileHeader, HCons[ByteVector, HCons[ByteVector, HNil]]] {
		return Cons(item.Header, Cons(item.Metadata, Cons(item.Data, HNil{})))
	}
	from := func(l HCons[fileHeader, HCons[ByteVector, HCons[ByteVector, HNil]]]) fileItem {
		return fileItem{Header: l.Head, Metadata: l.Tail.Head, Data: l.Tail.Tail.Head}
	}
	return StructCodec(inner, to, from)
}

func TestComplexCodecRoundTrips(t *testing.T) {
	magic := FromSlice([]byte{0xAB, 0xCD})
	c := fileItemCodec(magic)

	item := fileItem{
		Header: fileHeader{
			Version: fileVersion{Major: 1, Minor: 0},
			Meta:    fileSection{PaddingLen: 1, DataLen: 3},
			Data:    fileSection{PaddingLen: 2, DataLen: 2},
		},
		Metadata: FromSlice([]byte{7, 8, 9}),
		Data:     FromSlice([]byte{11, 12}),
	}

	encoded, err := c.Encode(item)
	require.NoError(t, err)

	want := []byte{
		0xAB, 0xCD, // magic
		1, 0, // version
		0, 0, 0, 1, 0, 0, 0, 3, // meta section: padding=1, len=3
		0, 0, 0, 2, 0, 0, 0, 2, // data section: padding=2, len=2
		0,          // padding before metadata
		7, 8, 9,    // metadata
		0, 0,       // padding before data
		11, 12, // data
	}
	require.Equal(t, want, encoded.ToSlice())

	decoded, err := c.DecodeValue(encoded)
	require.NoError(t, err)
	require.Equal(t, item.Header, decoded.Header)
	require.True(t, decoded.Metadata.Equal(item.Metadata))
	require.True(t, decoded.Data.Equal(item.Data))
}

func TestComplexCodecRejectsBadMagic(t *testing.T) {
	c := fileItemCodec(FromSlice([]byte{0xAB, 0xCD}))
	_, _, err := c.Decode(FromSlice([]byte{0x00, 0x00, 1, 0}))
	require.Error(t, err)
	var mismatch *ConstantMismatchError
	require.ErrorAs(t, err, &mismatch)
}
