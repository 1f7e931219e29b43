package mrform_test

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/openmr-re/mrvault/encoding/mrform"
)

// isKind reports whether err is a *mrform.Error of the given kind.
func isKind(err error, k mrform.Kind) bool {
	return errors.Is(err, mrform.KindError(k))
}

var headerSeparator = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

func u32le(x uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, x)
	return b
}

// buildItem assembles one item's 32-byte header plus payload, the shape
// spec.md §3 defines: key(4) type(4) len(4) separator(20), then payload.
func buildItem(key uint32, typ mrform.TypeCode, payload []byte) []byte {
	out := append([]byte{}, u32le(key)...)
	out = append(out, u32le(uint32(typ))...)
	out = append(out, u32le(uint32(len(payload)))...)
	out = append(out, headerSeparator...)
	out = append(out, payload...)
	return out
}

// buildGroup assembles a group: a leading item-count u32 followed by
// the concatenated item bytes.
func buildGroup(items ...[]byte) []byte {
	var body []byte
	for _, it := range items {
		body = append(body, it...)
	}
	out := u32le(uint32(len(items)))
	return append(out, body...)
}

// buildContainer concatenates a sequence of groups (each already
// carrying its own leading count, from buildGroup) and optionally
// appends the single permitted trailing 0x00 byte.
func buildContainer(trailingZero bool, groups ...[]byte) []byte {
	var out []byte
	for _, g := range groups {
		out = append(out, g...)
	}
	if trailingZero {
		out = append(out, 0x00)
	}
	return out
}

// u32Payload returns the 4-byte little-endian encoding of x, usable as
// the payload of a U32Scalar or similarly u32-shaped item.
func u32Payload(x uint32) []byte { return u32le(x) }

// struct436Payload assembles a valid 436-byte struct-436 payload with
// the given iver/phi/buf4/buf5/modality/val fields, NUL-padding each
// fixed-width region (spec.md §4.3.7).
func struct436Payload(iver, phi, buf4, buf5, modality string, val uint32) []byte {
	out := make([]byte, 436)
	copy(out[4:4+0x45], iver)
	copy(out[0x49:0x49+0x100], phi)
	copy(out[0x149:0x149+65], buf4)
	copy(out[0x18A:0x18A+17], buf5)
	copy(out[0x19B:0x19B+0x15], modality)
	binary.LittleEndian.PutUint32(out[432:436], val)
	return out
}

// isoStringletPayload assembles a tagged ISO-8859-1 stringlet payload
// per spec.md §4.3.1 / §8 scenario S2.
func isoStringletPayload(text string) []byte {
	out := []byte{0xDF, 0xFF, 0x79}
	out = append(out, byte(len(text)+15)) // len - 4 == 15 (fixed header) + len(text)
	out = append(out, 0x01, 0x09, 0x00)
	out = append(out, "ISO8859-1"...)
	out = append(out, 0x02, byte(len(text)), 0x00)
	out = append(out, text...)
	return out
}

// usan48Payload assembles a valid 48-byte USAN blob wrapping a single
// double (spec.md §4.3.4, §8 scenario S4).
func usan48Payload(v float64) []byte {
	out := []byte{0x55, 0x53, 0x41, 0x4E, 0x00, 0x50, 0x03, 0x00}
	out = append(out, make([]byte, 16)...)
	bits := make([]byte, 8)
	binary.LittleEndian.PutUint64(bits, math.Float64bits(v))
	out = append(out, bits...)
	out = append(out, make([]byte, 16)...)
	return out
}

// struct325Payload assembles a valid 325-byte struct-325 payload: five
// back-to-back 65-byte NUL-padded strings (spec.md §4.3.9).
func struct325Payload(strs [5]string) []byte {
	out := make([]byte, 325)
	for i, s := range strs {
		copy(out[i*65:i*65+65], s)
	}
	return out
}

// asciiDateTimePayload pads s with trailing spaces to 19 bytes (a valid
// length for type 0x00000E00, spec.md §4.3 table).
func asciiDateTimePayload(s string) []byte {
	out := []byte(s)
	for len(out) < 19 {
		out = append(out, ' ')
	}
	return out[:19]
}

func f32Vec3Payload(a, b, c float32) []byte {
	out := make([]byte, 12)
	binary.LittleEndian.PutUint32(out[0:4], math.Float32bits(a))
	binary.LittleEndian.PutUint32(out[4:8], math.Float32bits(b))
	binary.LittleEndian.PutUint32(out[8:12], math.Float32bits(c))
	return out
}

func f64Payload(v float64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, math.Float64bits(v))
	return out
}

func i32TriplePayload(a, b, c int32) []byte {
	out := make([]byte, 12)
	binary.LittleEndian.PutUint32(out[0:4], uint32(a))
	binary.LittleEndian.PutUint32(out[4:8], uint32(b))
	binary.LittleEndian.PutUint32(out[8:12], uint32(c))
	return out
}

func u32PairPayload(a, b uint32) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint32(out[0:4], a)
	binary.LittleEndian.PutUint32(out[4:8], b)
	return out
}

func u32BoolPayload(on bool) []byte {
	if on {
		return u32le(1)
	}
	return u32le(0)
}

func u16Payload(x uint16) []byte {
	out := make([]byte, 2)
	binary.LittleEndian.PutUint16(out, x)
	return out
}

// buildGoldenContainer assembles an 8-group, 4-items-per-group container
// exercising every group's PHI key alongside plain fields, and the
// dual-type key 0x17E3 (spec.md §9, Open Question 4). Every group has
// more than 3 items, so none is mistaken for the tail-sentinel count
// (spec.md §3) by the framing layer.
func goldenGroup1() []byte {
	return buildGroup(
		buildItem(0x1000, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x1004, mrform.TypeU32Scalar, u32Payload(2)),
		buildItem(0x1008, mrform.TypeASCIIDateTime, asciiDateTimePayload("2020-01-01T00:00")),
		buildItem(0x100C, mrform.TypeU32Bool4, u32BoolPayload(true)),
	)
}

func goldenGroup2() []byte {
	return buildGroup(
		buildItem(0x5500, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x5504, mrform.TypeASCIIDateTime, asciiDateTimePayload("1980-05-06T00:00")),
		buildItem(0x5508, mrform.TypeU32Bool4, u32BoolPayload(false)),
		buildItem(0x55F2, mrform.TypeISOStringlet, isoStringletPayload("00000000")),
	)
}

func goldenGroup3() []byte {
	return buildGroup(
		buildItem(0x5600, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x5608, mrform.TypeASCIIDateTime, asciiDateTimePayload("2020-01-02T00:00")),
		buildItem(0x5618, mrform.TypeU32Bool2A, u32BoolPayload(false)),
		buildItem(0x560D, mrform.TypeStruct325, struct325Payload([5]string{"Dr. Smith", "note one", "note two", "", ""})),
	)
}

func goldenGroup4() []byte {
	return buildGroup(
		buildItem(0x1700, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x1708, mrform.TypeASCIIDateTime, asciiDateTimePayload("2020-01-02T08:00")),
		buildItem(0x170C, mrform.TypeF32Scalar, f32Payload(2500)),
		buildItem(0x17E3, mrform.TypeI32ArrayAnyFF, u32Payload(7)),
	)
}

func goldenGroup5() []byte {
	return buildGroup(
		buildItem(0x6D00, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x6D04, mrform.TypeASCIIDateTime, asciiDateTimePayload("2010-03-04T00:00")),
		buildItem(0x6D20, mrform.TypeU32Bool4, u32BoolPayload(true)),
		buildItem(0x6D83, mrform.TypeStruct436, struct436Payload("TM_MR_DCM_V1.0", "Doe John", "", "", "MR", 1)),
	)
}

func goldenGroup6() []byte {
	return buildGroup(
		buildItem(0x7000, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x7004, mrform.TypeF32Vec3, f32Vec3Payload(1, 2, 3)),
		buildItem(0x7010, mrform.TypeF32Scalar, f32Payload(5)),
		buildItem(0x703C, mrform.TypeASCIIDateTime, asciiDateTimePayload("2020-01-02T09:00")),
	)
}

func goldenGroup7() []byte {
	return buildGroup(
		buildItem(0x8000, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x8008, mrform.TypeF64Scalar, f64Payload(1.5)),
		buildItem(0x8018, mrform.TypeU32ArraySet, u32Payload(0)),
		buildItem(0x8020, mrform.TypeU16ArrayEven, u16Payload(9)),
	)
}

func goldenGroup8() []byte {
	return buildGroup(
		buildItem(0x9000, mrform.TypeU32Scalar, u32Payload(1)),
		buildItem(0x9004, mrform.TypeU32Pair, u32PairPayload(1, 2)),
		buildItem(0x9008, mrform.TypeI32Triple, i32TriplePayload(1, 2, 3)),
		buildItem(0x903C, mrform.TypeU32Bool4, u32BoolPayload(true)),
	)
}

func buildGoldenContainer(trailingZero bool) []byte {
	return buildContainer(trailingZero,
		goldenGroup1(), goldenGroup2(), goldenGroup3(), goldenGroup4(),
		goldenGroup5(), goldenGroup6(), goldenGroup7(), goldenGroup8())
}

func f32Payload(v float32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, math.Float32bits(v))
	return out
}
