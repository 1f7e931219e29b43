package mrform

import (
	"encoding/binary"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// decodeFn validates payload against a single variant's length contract
// and turns it into a Value. Returning a *Error lets callers distinguish
// BadLength from BadVariantPayload.
type decodeFn func(payload []byte) (Value, error)

var decoders = map[TypeCode]decodeFn{
	TypeU32Scalar:     decodeU32Scalar,
	TypeI32Array36:    lenExact(36, decodeI32Array),
	TypeISOStringlet:  decodeISOStringlet,
	TypeI32ArrayAny:   lenMultiple(4, decodeI32Array),
	TypeF32Vec2:       lenOneOf([]int{8, 40}, decodeF32Array),
	TypeF32Vec3:       lenMultiple(12, decodeF32Array),
	TypeI32Triple:     lenExact(12, decodeI32Triple),
	TypeASCIIDateTime: lenOneOf([]int{19, 20}, decodeASCIIString),
	TypeI32Array156:   lenExact(156, decodeI32Array),
	TypeU32ArrayAny:   lenMultiple(4, decodeU32Array),
	TypeI16Array36:    lenExact(36, decodeI16Array),
	TypeU64ArrayZero:  lenExact(24, decodeU64ArrayZero),
	TypeU32Pair:       lenExact(8, decodeU32Pair),
	TypeU8Array68:     lenExact(68, decodeU8Array),
	TypeStrC1Group:    lenMultiple(6, decodeStrC1Group),
	TypeU16ArrayMod:   lenMultipleOfBoth(11, 6, decodeU16Array),
	TypeStrBC3Group:   lenExact(100, decodeStrBC3Group),
	TypeU32Array24:    lenExact(24, decodeU32Array),
	TypeU16Array12:    lenExact(12, decodeU16Array),
	TypeUSAN48:        lenExact(48, decodeUSAN),
	TypeUSAN60:        lenExact(60, decodeUSAN),
	TypeStr40Record:   lenMultiple(340, decodeStr40Record),
	TypeUID41Record:   lenExact(136, decodeUID41Record),
	TypeStruct436:     lenExact(436, decodeStruct436),
	TypeStruct516:     lenExact(516, decodeStruct516),
	TypeStruct325:     lenExact(325, decodeStruct325),
	TypeU32Bool4:      lenExact(4, decodeU32Bool),
	TypeF32Scalar:     lenExact(4, decodeF32Scalar),
	TypeUSAN68:        lenExact(68, decodeUSAN),
	TypeI32ArraySet:   lenOneOf([]int{16, 20, 24, 28, 88}, decodeI32Array),
	TypeU16ArrayEven:  lenMultiple(2, decodeU16Array),
	TypeCharsetLabel:  decodeCharsetLabel,
	TypeI32ArrayAnyFF: lenMultiple(4, decodeI32Array),
	TypeU32ArraySet:   lenOneOf([]int{4, 512}, decodeU32Array),
	TypeF32ArrayAny:   lenMultiple(4, decodeF32Array),
	TypeF64Scalar:     lenExact(8, decodeF64Scalar),
	TypeU32Bool2A:     lenExact(4, decodeU32Bool),
	TypeSJISString:    decodeSJISString,
	TypeU64ArraySet:   lenOneOf([]int{8, 16}, decodeU64Array),
	TypeU32ArrayModFF: lenMultiple(4, decodeU32Array),
	TypeI32ArrayFFF0:  lenMultiple(4, decodeI32Array),
}

// Decode looks up the variant for typ and decodes payload into a Value,
// enforcing that variant's length contract first.
func Decode(typ TypeCode, payload []byte) (Value, error) {
	fn, ok := decoders[typ]
	if !ok {
		return nil, newErr(TypeMismatch, 0, "unknown type code %#08x", uint32(typ))
	}
	return fn(payload)
}

// --- length-contract combinators -------------------------------------------

func lenExact(n int, inner decodeFn) decodeFn {
	return func(p []byte) (Value, error) {
		if len(p) != n {
			return nil, newErr(BadLength, 0, "want exactly %d bytes, got %d", n, len(p))
		}
		return inner(p)
	}
}

func lenMultiple(m int, inner decodeFn) decodeFn {
	return func(p []byte) (Value, error) {
		if len(p)%m != 0 {
			return nil, newErr(BadLength, 0, "want a multiple of %d bytes, got %d", m, len(p))
		}
		return inner(p)
	}
}

func lenMultipleOfBoth(a, b int, inner decodeFn) decodeFn {
	return func(p []byte) (Value, error) {
		if len(p)%a != 0 || len(p)%b != 0 {
			return nil, newErr(BadLength, 0, "want a multiple of both %d and %d bytes, got %d", a, b, len(p))
		}
		return inner(p)
	}
}

func lenOneOf(allowed []int, inner decodeFn) decodeFn {
	return func(p []byte) (Value, error) {
		for _, n := range allowed {
			if len(p) == n {
				return inner(p)
			}
		}
		return nil, newErr(BadLength, 0, "want one of %v bytes, got %d", allowed, len(p))
	}
}

// --- scalar & array variants -------------------------------------------------

// U32Scalar is a single little-endian uint32.
type U32Scalar uint32

func (v U32Scalar) Render() string    { return fmt.Sprintf("[%d]", uint32(v)) }
func (v U32Scalar) Multiplicity() int { return 1 }

func decodeU32Scalar(p []byte) (Value, error) {
	if len(p) != 4 {
		return nil, newErr(BadLength, 0, "u32 scalar wants 4 bytes, got %d", len(p))
	}
	return U32Scalar(binary.LittleEndian.Uint32(p)), nil
}

// I32Array is a little-endian array of signed 32-bit integers.
type I32Array []int32

func (v I32Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(int(x))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v I32Array) Multiplicity() int { return len(v) }

func decodeI32Array(p []byte) (Value, error) {
	out := make(I32Array, len(p)/4)
	for i := range out {
		out[i] = int32(binary.LittleEndian.Uint32(p[i*4:]))
	}
	return out, nil
}

func decodeI32Triple(p []byte) (Value, error) {
	v, err := decodeI32Array(p)
	if err != nil {
		return nil, err
	}
	return I32Triple(v.(I32Array)), nil
}

// I32Triple is three signed 32-bit integers (type 0x00000B00).
type I32Triple []int32

func (v I32Triple) Render() string    { return I32Array(v).Render() }
func (v I32Triple) Multiplicity() int { return len(v) }

// U32Array is a little-endian array of unsigned 32-bit integers.
type U32Array []uint32

func (v U32Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatUint(uint64(x), 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v U32Array) Multiplicity() int { return len(v) }

func decodeU32Array(p []byte) (Value, error) {
	out := make(U32Array, len(p)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	return out, nil
}

// U32Pair is exactly two unsigned 32-bit integers (type 0x000BBA00).
type U32Pair [2]uint32

func (v U32Pair) Render() string    { return fmt.Sprintf("[%d,%d]", v[0], v[1]) }
func (v U32Pair) Multiplicity() int { return 2 }

func decodeU32Pair(p []byte) (Value, error) {
	return U32Pair{binary.LittleEndian.Uint32(p), binary.LittleEndian.Uint32(p[4:])}, nil
}

// I16Array is a little-endian array of signed 16-bit integers.
type I16Array []int16

func (v I16Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(int(x))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v I16Array) Multiplicity() int { return len(v) }

func decodeI16Array(p []byte) (Value, error) {
	out := make(I16Array, len(p)/2)
	for i := range out {
		out[i] = int16(binary.LittleEndian.Uint16(p[i*2:]))
	}
	return out, nil
}

// U16Array is a little-endian array of unsigned 16-bit integers.
type U16Array []uint16

func (v U16Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatUint(uint64(x), 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v U16Array) Multiplicity() int { return len(v) }

func decodeU16Array(p []byte) (Value, error) {
	out := make(U16Array, len(p)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(p[i*2:])
	}
	return out, nil
}

// U64Array is a little-endian array of unsigned 64-bit integers.
type U64Array []uint64

func (v U64Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatUint(x, 10)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v U64Array) Multiplicity() int { return len(v) }

func decodeU64Array(p []byte) (Value, error) {
	out := make(U64Array, len(p)/8)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(p[i*8:])
	}
	return out, nil
}

// decodeU64ArrayZero decodes type 0x000BB900, which is required to be
// all zero bytes (spec.md §4.3 table: "len=24, zero").
func decodeU64ArrayZero(p []byte) (Value, error) {
	v, err := decodeU64Array(p)
	if err != nil {
		return nil, err
	}
	for _, x := range v.(U64Array) {
		if x != 0 {
			return nil, newErr(BadVariantPayload, 0, "expected all-zero u64 array, got %#x", x)
		}
	}
	return v, nil
}

// U8Array is a raw byte payload rendered as decimal values (type 0x000BBB00).
type U8Array []byte

func (v U8Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.Itoa(int(x))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v U8Array) Multiplicity() int { return len(v) }

func decodeU8Array(p []byte) (Value, error) {
	out := make(U8Array, len(p))
	copy(out, p)
	return out, nil
}

// F32Array is a little-endian array of IEEE-754 single-precision floats.
type F32Array []float32

func (v F32Array) Render() string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(float64(x), 'g', -1, 32)
	}
	return "[" + strings.Join(parts, ",") + "]"
}
func (v F32Array) Multiplicity() int { return len(v) }

func decodeF32Array(p []byte) (Value, error) {
	out := make(F32Array, len(p)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(p[i*4:]))
	}
	return out, nil
}

// F32Scalar is a single IEEE-754 single-precision float.
type F32Scalar float32

func (v F32Scalar) Render() string    { return fmt.Sprintf("[%s]", strconv.FormatFloat(float64(v), 'g', -1, 32)) }
func (v F32Scalar) Multiplicity() int { return 1 }

func decodeF32Scalar(p []byte) (Value, error) {
	return F32Scalar(math.Float32frombits(binary.LittleEndian.Uint32(p))), nil
}

// F64Scalar is a single IEEE-754 double-precision float.
type F64Scalar float64

func (v F64Scalar) Render() string    { return fmt.Sprintf("[%s]", strconv.FormatFloat(float64(v), 'g', -1, 64)) }
func (v F64Scalar) Multiplicity() int { return 1 }

func decodeF64Scalar(p []byte) (Value, error) {
	return F64Scalar(math.Float64frombits(binary.LittleEndian.Uint64(p))), nil
}

// U32Bool is a little-endian uint32 constrained to {0, 1}.
type U32Bool bool

func (v U32Bool) Render() string {
	if v {
		return "[1]"
	}
	return "[0]"
}
func (v U32Bool) Multiplicity() int { return 1 }

func decodeU32Bool(p []byte) (Value, error) {
	x := binary.LittleEndian.Uint32(p)
	if x > 1 {
		return nil, newErr(BadVariantPayload, 0, "bool field must be 0 or 1, got %d", x)
	}
	return U32Bool(x == 1), nil
}

// ASCIIDateTime is a fixed-width printable-ASCII date/time stringlet
// (type 0x00000E00, length 19 or 20).
type ASCIIDateTime string

func (v ASCIIDateTime) Render() string    { return "[" + string(v) + "]" }
func (v ASCIIDateTime) Multiplicity() int { return 1 }

func decodeASCIIString(p []byte) (Value, error) {
	for _, b := range p {
		if b < 0x20 || b > 0x7e {
			return nil, newErr(BadVariantPayload, 0, "datetime stringlet has non-printable byte %#02x", b)
		}
	}
	return ASCIIDateTime(p), nil
}

// CharsetLabel is an opaque byte payload the printer hands to the
// charset collaborator (type 0xFF002300). The core makes no assumption
// about its encoding.
type CharsetLabel []byte

func (v CharsetLabel) Render() string    { return fmt.Sprintf("[%s]", escapeASCII(v)) }
func (v CharsetLabel) Multiplicity() int { return 1 }

func decodeCharsetLabel(p []byte) (Value, error) {
	out := make(CharsetLabel, len(p))
	copy(out, p)
	return out, nil
}

// SJISString is a raw SHIFT-JIS-encoded byte string (type 0xFF002C00).
// The core leaves it undecoded; the printer converts it to UTF-8 via the
// charset collaborator (spec.md §6).
type SJISString []byte

func (v SJISString) Render() string    { return fmt.Sprintf("[%s]", escapeASCII(v)) }
func (v SJISString) Multiplicity() int { return 1 }

func decodeSJISString(p []byte) (Value, error) {
	out := make(SJISString, len(p))
	copy(out, p)
	return out, nil
}

// escapeASCII renders non-printable bytes as \xNN so a fallback,
// charset-naive Render stays on one line. The printer uses these Render
// methods whenever no charset collaborator re-renders the value; see
// package charset.
func escapeASCII(b []byte) string {
	var sb strings.Builder
	for _, c := range b {
		if c >= 0x20 && c < 0x7f {
			sb.WriteByte(c)
		} else {
			fmt.Fprintf(&sb, "\\x%02x", c)
		}
	}
	return sb.String()
}
