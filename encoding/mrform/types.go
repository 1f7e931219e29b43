package mrform

// TypeCode is the 32-bit "type" field of an item's info header. The low
// 8 bits are always zero and the top 8 bits are the sign flag (0x00 or
// 0xFF); TypeCode carries the full 32 bits as read off the wire so that
// dictionary lookups and header validation see exactly what is on disk.
type TypeCode uint32

// Sign returns the display glyph for the type's top byte: a space for
// 0x00, an underscore for 0xFF. Any other top byte is a ReservedBits
// error raised before a TypeCode ever reaches this method.
func (t TypeCode) Sign() byte {
	if t>>24 == 0xFF {
		return '_'
	}
	return ' '
}

// Mid returns the middle 16 bits of the type code -- the part the
// printer renders in hex after the sign glyph (spec.md §4.5).
func (t TypeCode) Mid() uint16 { return uint16((t >> 8) & 0xFFFF) }

// The catalogue of known type codes, spec.md §4.3.
const (
	TypeU32Scalar     TypeCode = 0x00000100
	TypeI32Array36    TypeCode = 0x00000200
	TypeISOStringlet  TypeCode = 0x00000300
	TypeI32ArrayAny   TypeCode = 0x00000400
	TypeF32Vec2       TypeCode = 0x00000500
	TypeF32Vec3       TypeCode = 0x00000600
	TypeI32Triple     TypeCode = 0x00000B00
	TypeASCIIDateTime TypeCode = 0x00000E00
	TypeI32Array156   TypeCode = 0x00000F00
	TypeU32ArrayAny   TypeCode = 0x0007D000
	TypeI16Array36    TypeCode = 0x000BB800
	TypeU64ArrayZero  TypeCode = 0x000BB900
	TypeU32Pair       TypeCode = 0x000BBA00
	TypeU8Array68     TypeCode = 0x000BBB00
	TypeStrC1Group    TypeCode = 0x000BC100
	TypeU16ArrayMod   TypeCode = 0x000BC200
	TypeStrBC3Group   TypeCode = 0x000BC300
	TypeU32Array24    TypeCode = 0x00177000
	TypeU16Array12    TypeCode = 0x00177200
	TypeUSAN48        TypeCode = 0x001B5E00
	TypeUSAN60        TypeCode = 0x001B5F00
	TypeStr40Record   TypeCode = 0x001F4000
	TypeUID41Record   TypeCode = 0x001F4100
	TypeStruct436     TypeCode = 0x001F4300
	TypeStruct516     TypeCode = 0x001F4400
	TypeStruct325     TypeCode = 0x001F4600
	TypeU32Bool4      TypeCode = 0xFF000400
	TypeF32Scalar     TypeCode = 0xFF000800
	TypeUSAN68        TypeCode = 0xFF002000
	TypeI32ArraySet   TypeCode = 0xFF002100
	TypeU16ArrayEven  TypeCode = 0xFF002200
	TypeCharsetLabel  TypeCode = 0xFF002300
	TypeI32ArrayAnyFF TypeCode = 0xFF002400
	TypeU32ArraySet   TypeCode = 0xFF002500
	TypeF32ArrayAny   TypeCode = 0xFF002800
	TypeF64Scalar     TypeCode = 0xFF002900
	TypeU32Bool2A     TypeCode = 0xFF002A00
	TypeSJISString    TypeCode = 0xFF002C00
	TypeU64ArraySet   TypeCode = 0xFF003100
	TypeU32ArrayModFF TypeCode = 0xFF003200
	TypeI32ArrayFFF0  TypeCode = 0xFFF00200
)

// Value is the decoder's sum type (spec.md §9, redesign note 1): one Go
// type per catalogue entry, each able to render itself for the printer
// and report how many logical elements it holds (the printer's
// "multiplicity" column).
type Value interface {
	Render() string
	Multiplicity() int
}
