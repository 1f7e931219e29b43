package mrform

import (
	"bytes"
	"encoding/binary"
)

// headerSeparator is the 20-byte constant every item header must carry
// at offset 12 (spec.md §3).
var headerSeparator = []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
}

const (
	headerLen    = 32
	minGroups    = 6
	maxGroups    = 8
	maxSentinel  = 3
)

// ItemHeader is the decoded 32-byte info header preceding every item's
// payload.
type ItemHeader struct {
	Group int
	Key   uint32
	Type  TypeCode
	Len   int
}

// Visitor receives one callback per item as Walk descends the
// container. Returning a non-nil error aborts the walk.
type Visitor interface {
	Item(hdr ItemHeader, payload []byte) error
}

// VisitorFunc adapts a function to the Visitor interface.
type VisitorFunc func(hdr ItemHeader, payload []byte) error

func (f VisitorFunc) Item(hdr ItemHeader, payload []byte) error { return f(hdr, payload) }

// Walk decodes the container's outer group/item framing (spec.md §4.4),
// validating every header against the dictionary and invoking v for
// each item's payload. It does not invoke the typed-value decoders
// itself -- callers needing decoded values call Decode from within their
// Visitor; the scrubber instead uses payload directly against a mirror
// cursor.
func Walk(data []byte, v Visitor) error {
	c := NewCursor(data)
	group := 0
	remaining := 0
	tailSeen := false

	for {
		if !tailSeen && c.Remaining() < 4 {
			// No tail sentinel was seen and no further group count fits:
			// the container ends here, optionally followed by the single
			// padding byte checked below.
			break
		}
		count, err := c.ReadU32LE()
		if err != nil {
			return err
		}
		if !tailSeen && count <= maxSentinel && count >= 1 {
			// Candidate tail sentinel: the real count of the current
			// group follows immediately. The sentinel fires at most
			// once per file (spec.md §3).
			tailSeen = true
			remaining = int(count)
			count, err = c.ReadU32LE()
			if err != nil {
				return err
			}
		}
		group++
		if err := walkGroupBody(c, group, int(count), v); err != nil {
			return err
		}
		if !tailSeen {
			continue
		}
		remaining--
		if remaining == 0 {
			break
		}
	}

	if group < minGroups {
		return newErr(TooFewGroups, c.Pos(), "parsed %d groups, want at least %d", group, minGroups)
	}
	if group > maxGroups {
		return newErr(TooManyGroups, c.Pos(), "parsed %d groups, want at most %d", group, maxGroups)
	}

	switch c.Remaining() {
	case 0:
	case 1:
		b, err := c.ReadExact(1)
		if err != nil {
			return err
		}
		if b[0] != 0x00 {
			return newErr(TrailingGarbage, c.Pos()-1, "single trailing byte is %#02x, want 0x00", b[0])
		}
	default:
		return newErr(TrailingGarbage, c.Pos(), "%d bytes remain after the last group", c.Remaining())
	}
	return nil
}

func walkGroupBody(c *Cursor, group int, count int, v Visitor) error {
	for i := 0; i < count; i++ {
		hdr, err := readItemHeader(c, group)
		if err != nil {
			return err
		}
		payload, err := c.ReadExact(hdr.Len)
		if err != nil {
			return err
		}
		if v != nil {
			if err := v.Item(hdr, payload); err != nil {
				return err
			}
		}
	}
	return nil
}

func readItemHeader(c *Cursor, group int) (ItemHeader, error) {
	start := c.Pos()
	raw, err := c.ReadExact(headerLen)
	if err != nil {
		return ItemHeader{}, err
	}
	key := binary.LittleEndian.Uint32(raw[0:4])
	if key&0xFFF00000 != 0 {
		return ItemHeader{}, newErr(ReservedBits, start, "key %#08x has nonzero upper 12 bits", key)
	}
	rawType := binary.LittleEndian.Uint32(raw[4:8])
	if rawType&0xFF != 0 {
		return ItemHeader{}, newErr(ReservedBits, start+4, "type %#08x has nonzero low 8 bits", rawType)
	}
	if top := rawType >> 24; top != 0x00 && top != 0xFF {
		return ItemHeader{}, newErr(ReservedBits, start+4, "type %#08x has sign byte %#02x, want 0x00 or 0xFF", rawType, top)
	}
	length := binary.LittleEndian.Uint32(raw[8:12])
	if !bytes.Equal(raw[12:32], headerSeparator) {
		return ItemHeader{}, newErr(BadSeparator, start+12, "separator mismatch")
	}

	typ := TypeCode(rawType)
	if !Validate(uint8(group), key, typ) {
		if _, known := Lookup(uint8(group), key); known {
			return ItemHeader{}, newErr(TypeMismatch, start+4, "group %d key %#x: type %#08x not in dictionary", group, key, rawType)
		}
		return ItemHeader{}, newErr(UnknownKey, start, "group %d key %#x not in dictionary", group, key)
	}

	return ItemHeader{Group: group, Key: key, Type: typ, Len: int(length)}, nil
}
