package mrform

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

func allZero(b []byte) bool {
	for _, x := range b {
		if x != 0 {
			return false
		}
	}
	return true
}

// nulString returns the leading NUL-terminated (or full-length, if no
// NUL appears) portion of a fixed-width character buffer as a string.
func nulString(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return string(b[:i])
	}
	return string(b)
}

// --- ISO-8859-1 stringlet (type 0x00000300, spec.md §4.3.1) ----------------

var isoStringletMagic = []byte{0xDF, 0xFF, 0x79}

// ISOStringlet is the decoded form of the "iso-stringlet" variant. Label
// is empty when the payload doesn't carry the self-describing DF FF 79
// header, in which case Raw is the whole payload interpreted by
// whatever charset is currently active (spec.md §4.3.1).
type ISOStringlet struct {
	Label string
	Raw   []byte
}

func (v ISOStringlet) Multiplicity() int { return 1 }

// Render uses curly braces for a self-describing stringlet (spec.md §8,
// scenario S2: "{ISO8859-1 : 00000000}"), distinct from the square
// brackets every other variant renders with.
func (v ISOStringlet) Render() string {
	if v.Label != "" {
		return fmt.Sprintf("{%s : %s}", v.Label, escapeASCII(v.Raw))
	}
	return fmt.Sprintf("[%s]", escapeASCII(v.Raw))
}

func decodeISOStringlet(p []byte) (Value, error) {
	if len(p) < 3 || !bytes.Equal(p[:3], isoStringletMagic) {
		return ISOStringlet{Raw: p}, nil
	}
	if len(p) < 19 {
		return nil, newErr(BadLength, 0, "iso stringlet too short for tagged header: %d", len(p))
	}
	if int(p[3]) != len(p)-4 {
		return nil, newErr(BadVariantPayload, 0, "iso stringlet length byte %d disagrees with payload len %d", p[3], len(p))
	}
	if p[4] != 0x01 || p[5] != 0x09 || p[6] != 0x00 {
		return nil, newErr(BadVariantPayload, 0, "iso stringlet label-length header malformed")
	}
	label := string(p[7:16])
	if label != "ISO8859-1" {
		return nil, newErr(BadVariantPayload, 0, "iso stringlet label %q, want ISO8859-1", label)
	}
	if p[16] != 0x02 || p[18] != 0x00 {
		return nil, newErr(BadVariantPayload, 0, "iso stringlet text-length header malformed")
	}
	textLen := int(p[17])
	if len(p) != 19+textLen {
		return nil, newErr(BadVariantPayload, 0, "iso stringlet text length %d disagrees with payload len %d", textLen, len(p))
	}
	return ISOStringlet{Label: label, Raw: p[19:]}, nil
}

// --- str-C1 group (type 0x000BC100, spec.md §4.3.2) -------------------------

// StrC1Entry is one triplet of a str-C1 group: a 3-character code, a
// count in [0,5], and a marker byte in {'A','C','E'}.
type StrC1Entry struct {
	Code   [3]byte
	Count  uint8
	Marker byte
}

// StrC1Group is the decoded form of type 0x000BC100.
type StrC1Group []StrC1Entry

func (v StrC1Group) Multiplicity() int { return len(v) }

func (v StrC1Group) Render() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprintf("%s#%d%c", e.Code[:], e.Count, e.Marker)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func isStrMarker(b byte) bool { return b == 0x41 || b == 0x43 || b == 0x45 }

func decodeStrC1Group(p []byte) (Value, error) {
	n := len(p) / 6
	out := make(StrC1Group, n)
	for i := 0; i < n; i++ {
		rec := p[i*6 : i*6+6]
		if rec[3] != 0x00 {
			return nil, newErr(BadVariantPayload, 0, "str-C1 entry %d missing NUL separator", i)
		}
		if rec[4] > 5 {
			return nil, newErr(BadVariantPayload, 0, "str-C1 entry %d count %d > 5", i, rec[4])
		}
		if !isStrMarker(rec[5]) {
			return nil, newErr(BadVariantPayload, 0, "str-C1 entry %d marker %#02x not in {A,C,E}", i, rec[5])
		}
		out[i] = StrC1Entry{Code: [3]byte{rec[0], rec[1], rec[2]}, Count: rec[4], Marker: rec[5]}
	}
	return out, nil
}

// --- str-BC3 group (type 0x000BC300, spec.md §4.3.3) ------------------------

// StrBC3Entry is one 8-byte record of a str-BC3 group.
type StrBC3Entry struct {
	Code   [3]byte
	Marker byte
	Count  uint8
}

// StrBC3Group is the decoded form of type 0x000BC300.
type StrBC3Group []StrBC3Entry

func (v StrBC3Group) Multiplicity() int { return len(v) }

func (v StrBC3Group) Render() string {
	parts := make([]string, len(v))
	for i, e := range v {
		parts[i] = fmt.Sprintf("%s#%c%d", e.Code[:], e.Marker, e.Count)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func decodeStrBC3Group(p []byte) (Value, error) {
	count := int(leUint32(p[:4]))
	if count >= 6 {
		return nil, newErr(BadVariantPayload, 0, "str-BC3 count %d must be < 6", count)
	}
	out := make(StrBC3Group, count)
	for i := 0; i < count; i++ {
		rec := p[4+8*i : 4+8*i+8]
		if rec[3] != 0x00 {
			return nil, newErr(BadVariantPayload, 0, "str-BC3 entry %d missing NUL separator", i)
		}
		if !isStrMarker(rec[4]) {
			return nil, newErr(BadVariantPayload, 0, "str-BC3 entry %d marker %#02x not in {A,C,E}", i, rec[4])
		}
		if rec[5] > 10 {
			return nil, newErr(BadVariantPayload, 0, "str-BC3 entry %d count %d > 10", i, rec[5])
		}
		out[i] = StrBC3Entry{Code: [3]byte{rec[0], rec[1], rec[2]}, Marker: rec[4], Count: rec[5]}
	}
	// The payload is a fixed 100 bytes regardless of count; whatever
	// follows the last populated record is unused and must be zero.
	if !allZero(p[4+8*count:]) {
		return nil, newErr(BadVariantPayload, 0, "str-BC3 unused tail is not zero")
	}
	return out, nil
}

// --- USAN blob (types 0x001B5E00, 0x001B5F00, 0xFF002000, spec.md §4.3.4) ---

var usanPrefix = []byte{0x55, 0x53, 0x41, 0x4E, 0x00, 0x50, 0x03, 0x00}

// USANBlob is the decoded form of all three USAN variants. Tag is the
// embedded 4-character ASCII tag for the 60- and 68-byte variants
// ("NLTL", "NKNU"); it is empty for the 48-byte variant, which carries
// no tag. Exactly one of Doubles or Ints is populated.
type USANBlob struct {
	Size    int
	Tag     string
	Doubles []float64
	Ints    []int32
}

func (v USANBlob) Multiplicity() int { return len(v.Doubles) + len(v.Ints) }

func (v USANBlob) Render() string {
	var parts []string
	for _, d := range v.Doubles {
		parts = append(parts, strconv.FormatFloat(d, 'g', -1, 64))
	}
	for _, x := range v.Ints {
		parts = append(parts, strconv.Itoa(int(x)))
	}
	return "[<?USAN: " + strings.Join(parts, ",") + " FIXME?>]"
}

func decodeUSAN(p []byte) (Value, error) {
	if len(p) < 8 || !bytes.Equal(p[:8], usanPrefix) {
		return nil, newErr(BadVariantPayload, 0, "USAN blob missing USAN\\x00P\\x03\\x00 prefix")
	}
	switch len(p) {
	case 48:
		// Reconstructed from the hexdump embedded in original_source's
		// dump7.c: a 16-byte run of zeros follows the 8-byte prefix, then
		// the single double, then 16 more zero bytes pad out to 48.
		if !allZero(p[8:24]) {
			return nil, newErr(BadVariantPayload, 0, "USAN-48 padding before value is not zero")
		}
		d := math.Float64frombits(leUint64(p[24:32]))
		if !allZero(p[32:48]) {
			return nil, newErr(BadVariantPayload, 0, "USAN-48 trailing padding is not zero")
		}
		return USANBlob{Size: 48, Doubles: []float64{d}}, nil
	case 60:
		ext := []byte{0x01, 0x00, 0x00, 0x00, 0x28, 0x00, 0x00, 0x00}
		if !bytes.Equal(p[8:16], ext) {
			return nil, newErr(BadVariantPayload, 0, "USAN-60 extension header mismatch")
		}
		tag := string(p[16:20])
		if tag != "NLTL" {
			return nil, newErr(BadVariantPayload, 0, "USAN-60 tag %q, want NLTL", tag)
		}
		doubles := make([]float64, 3)
		for i := range doubles {
			doubles[i] = math.Float64frombits(leUint64(p[20+i*8 : 28+i*8]))
		}
		if !allZero(p[44:60]) {
			return nil, newErr(BadVariantPayload, 0, "USAN-60 trailing padding is not zero")
		}
		return USANBlob{Size: 60, Tag: tag, Doubles: doubles}, nil
	case 68:
		ext := []byte{0x01, 0x00, 0x00, 0x00, 0x4E, 0x4B, 0x4E, 0x55}
		if !bytes.Equal(p[8:16], ext) {
			return nil, newErr(BadVariantPayload, 0, "USAN-68 extension header mismatch")
		}
		tag := string(p[12:16])
		// p[16:20] is a 4-byte pad of undetermined meaning (spec.md §9,
		// Open Question 3); not validated here.
		ints := make([]int32, 10)
		for i := range ints {
			ints[i] = int32(leUint32(p[20+i*4 : 24+i*4]))
		}
		// p[60:68] is likewise not fully known and left unvalidated.
		return USANBlob{Size: 68, Tag: tag, Ints: ints}, nil
	default:
		return nil, newErr(BadLength, 0, "USAN blob has unsupported length %d", len(p))
	}
}

func leUint32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func leUint64(b []byte) uint64 {
	var x uint64
	for i := 7; i >= 0; i-- {
		x = x<<8 | uint64(b[i])
	}
	return x
}

// --- str40 record (type 0x001F4000, spec.md §4.3.5) -------------------------

// Str40Sub is one 340-byte sub-record of a str40Record.
type Str40Sub struct {
	Strings [7]string
}

// Str40Record is the decoded form of type 0x001F4000: one or more
// 340-byte sub-records.
type Str40Record []Str40Sub

func (v Str40Record) Multiplicity() int { return len(v) }

func (v Str40Record) Render() string {
	parts := make([]string, len(v))
	for i, sub := range v {
		parts[i] = fmt.Sprintf("0:{%s}", strings.Join(sub.Strings[:], ","))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func decodeStr40Record(p []byte) (Value, error) {
	n := len(p) / 340
	out := make(Str40Record, n)
	for i := 0; i < n; i++ {
		rec := p[i*340 : i*340+340]
		if leUint32(rec[:4]) != 0 {
			return nil, newErr(BadVariantPayload, 0, "str40 sub-record %d leading u32 must be zero", i)
		}
		var sub Str40Sub
		for j := 0; j < 7; j++ {
			sub.Strings[j] = nulString(rec[4+j*0x30 : 4+(j+1)*0x30])
		}
		out[i] = sub
	}
	return out, nil
}

// --- uid41 record (type 0x001F4100, spec.md §4.3.6) -------------------------

// UID41Record is the decoded form of type 0x001F4100.
type UID41Record struct {
	UID1, UID2 string
}

func (v UID41Record) Multiplicity() int { return 1 }

func (v UID41Record) Render() string {
	return fmt.Sprintf("[0,%s,%s]", v.UID1, v.UID2)
}

func decodeUID41Record(p []byte) (Value, error) {
	if leUint32(p[:4]) != 0 {
		return nil, newErr(BadVariantPayload, 0, "uid41 leading u32 must be zero")
	}
	uid1 := p[4:69]
	uid2 := p[69:134]
	if len(nulString(uid1)) > 64 || len(nulString(uid2)) > 64 {
		return nil, newErr(BadVariantPayload, 0, "uid41 UID exceeds 64 bytes")
	}
	if p[134] != 0 || p[135] != 0 {
		return nil, newErr(BadVariantPayload, 0, "uid41 trailing u16 must be zero")
	}
	return UID41Record{UID1: nulString(uid1), UID2: nulString(uid2)}, nil
}

// --- struct-436 (type 0x001F4300, spec.md §4.3.7) ---------------------------

var struct436Versions = map[string]bool{
	"TM_MR_DCM_V1.0":   true,
	"TM_MR_DCM_V2.0":   true,
	"TM_MR_DCM_V1.0_3": true,
	"TM_MR1_DCM_V1.0":  true,
}

// Struct436 is the decoded form of type 0x001F4300. PHI holds the
// redacted-on-scrub free-text field; it is never echoed verbatim by the
// printer beyond what Render shows.
type Struct436 struct {
	IVer     string
	PHI      string
	Buf4     string
	Buf5     string
	Modality string
	Val      uint32
}

func (v Struct436) Multiplicity() int { return 1 }

func (v Struct436) Render() string {
	return fmt.Sprintf("[0,%s,%s,%s,%s,%s,%d]", v.IVer, v.PHI, v.Buf4, v.Buf5, v.Modality, v.Val)
}

// struct436PHIOffset/Len locate the PHI field within the 436-byte
// payload; the scrubber uses these directly so it need not re-run the
// full decoder.
const (
	struct436PHIOffset = 0x49
	struct436PHILen    = 0x100
)

func decodeStruct436(p []byte) (Value, error) {
	if leUint32(p[:4]) != 0 {
		return nil, newErr(BadVariantPayload, 0, "struct-436 leading u32 must be zero")
	}
	iver := nulString(p[4 : 4+0x45])
	if !struct436Versions[iver] {
		return nil, newErr(BadVariantPayload, 0, "struct-436 unknown iver %q", iver)
	}
	phi := nulString(p[struct436PHIOffset : struct436PHIOffset+struct436PHILen])
	buf4 := nulString(p[0x149 : 0x149+65])
	buf5 := nulString(p[0x18A : 0x18A+17])
	modality := nulString(p[0x19B : 0x19B+0x15])
	if modality != "MR" {
		return nil, newErr(BadVariantPayload, 0, "struct-436 modality %q, want MR", modality)
	}
	val := leUint32(p[432:436])
	if val != 1 && val != 3 {
		return nil, newErr(BadVariantPayload, 0, "struct-436 trailing value %d not in {1,3}", val)
	}
	return Struct436{IVer: iver, PHI: phi, Buf4: buf4, Buf5: buf5, Modality: modality, Val: val}, nil
}

// --- struct-516 (type 0x001F4400, spec.md §4.3.8) ---------------------------

// Struct516 is the decoded form of type 0x001F4400.
type Struct516 struct {
	Buf2, PHI, Buf4, Buf5, Buf6 string
	Bools                       [6]uint32
}

func (v Struct516) Multiplicity() int { return 1 }

func (v Struct516) Render() string {
	parts := make([]string, 0, 11)
	parts = append(parts, v.Buf2, v.PHI, v.Buf4, v.Buf5, v.Buf6)
	for _, b := range v.Bools {
		parts = append(parts, strconv.FormatUint(uint64(b), 10))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// struct-516 field offsets. Between Buf6 (ending at 489) and Bools
// (starting at 492) sits a 3-byte gap: original_source/dump7.c's
// offsetof() assertions confirm it is C struct alignment padding ahead
// of the trailing uint32 array, not a field of its own. We read it with
// an explicit offset rather than relying on Go struct layout (spec.md
// §9, redesign note 2).
const (
	struct516Buf2Offset  = 65
	struct516Buf2Len     = 0x15
	struct516PHIOffset   = 86
	struct516PHILen      = 0x100
	struct516Buf4Offset  = 342
	struct516Buf4Len     = 17
	struct516Buf5Offset  = 359
	struct516Buf5Len     = 65
	struct516Buf6Offset  = 424
	struct516Buf6Len     = 65
	struct516BoolsOffset = 492
)

func decodeStruct516(p []byte) (Value, error) {
	if !allZero(p[:65]) {
		return nil, newErr(BadVariantPayload, 0, "struct-516 leading zero field is not zero")
	}
	buf2 := nulString(p[struct516Buf2Offset : struct516Buf2Offset+struct516Buf2Len])
	phi := nulString(p[struct516PHIOffset : struct516PHIOffset+struct516PHILen])
	buf4 := nulString(p[struct516Buf4Offset : struct516Buf4Offset+struct516Buf4Len])
	buf5 := nulString(p[struct516Buf5Offset : struct516Buf5Offset+struct516Buf5Len])
	buf6 := nulString(p[struct516Buf6Offset : struct516Buf6Offset+struct516Buf6Len])
	var bools [6]uint32
	for c := 0; c < 6; c++ {
		bools[c] = leUint32(p[struct516BoolsOffset+c*4 : struct516BoolsOffset+c*4+4])
		if bools[c] != uint32(c%2) {
			return nil, newErr(BadVariantPayload, 0, "struct-516 bools[%d] = %d, want %d", c, bools[c], c%2)
		}
	}
	return Struct516{Buf2: buf2, PHI: phi, Buf4: buf4, Buf5: buf5, Buf6: buf6, Bools: bools}, nil
}

// --- struct-325 (type 0x001F4600, spec.md §4.3.9) ---------------------------

// Struct325 is five back-to-back 65-byte NUL-padded strings. PHI lives
// in some of them; the scrubber redacts all five uniformly (spec.md §4.6).
type Struct325 struct {
	Strings [5]string
}

func (v Struct325) Multiplicity() int { return 5 }

func (v Struct325) Render() string {
	return "[" + strings.Join(v.Strings[:], ",") + "]"
}

func decodeStruct325(p []byte) (Value, error) {
	var s Struct325
	for i := 0; i < 5; i++ {
		s.Strings[i] = nulString(p[i*65 : i*65+65])
	}
	return s, nil
}
