package mrform

import "encoding/binary"

// Scrub rewrites in into out, an identically-sized buffer, mirroring
// every byte except the PHI sub-regions of PHI-keyed items (spec.md
// §4.6). len(out) must equal len(in); callers typically allocate out
// with make([]byte, len(in)).
func Scrub(in, out []byte) error {
	if len(out) != len(in) {
		return newErr(BadLength, 0, "output buffer length %d does not match input length %d", len(out), len(in))
	}
	m := NewMirrorCursor(in, out)
	return walkScrub(m)
}

// walkScrub re-implements Walk's group/item state machine against a
// MirrorCursor instead of a plain Cursor: the scrubber mirrors the
// header and framing bytes too, not just payloads (spec.md §8 property
// 3, header preservation), so it can't reuse Walk's Visitor hook, which
// only sees payload slices.
func walkScrub(m *MirrorCursor) error {
	group := 0
	remaining := 0
	tailSeen := false

	for {
		if !tailSeen && m.Remaining() < 4 {
			break
		}
		count, err := m.MirrorU32LE()
		if err != nil {
			return err
		}
		if !tailSeen && count <= maxSentinel && count >= 1 {
			tailSeen = true
			remaining = int(count)
			count, err = m.MirrorU32LE()
			if err != nil {
				return err
			}
		}
		group++
		if err := scrubGroupBody(m, group, int(count)); err != nil {
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
		return newErr(TooFewGroups, m.Pos(), "parsed %d groups, want at least %d", group, minGroups)
	}
	if group > maxGroups {
		return newErr(TooManyGroups, m.Pos(), "parsed %d groups, want at most %d", group, maxGroups)
	}

	switch m.Remaining() {
	case 0:
	case 1:
		if err := m.Mirror(1); err != nil {
			return err
		}
	default:
		return newErr(TrailingGarbage, m.Pos(), "%d bytes remain after the last group", m.Remaining())
	}
	return nil
}

func scrubGroupBody(m *MirrorCursor, group int, count int) error {
	for i := 0; i < count; i++ {
		hdr, err := readAndMirrorItemHeader(m, group)
		if err != nil {
			return err
		}
		payload, err := m.ReadExact(hdr.Len)
		if err != nil {
			return err
		}
		if IsPHIKey(hdr.Key) {
			if err := scrubPayload(m, hdr, payload); err != nil {
				return err
			}
		} else {
			if err := m.WriteExact(payload); err != nil {
				return err
			}
		}
	}
	return nil
}

// readAndMirrorItemHeader parses one 32-byte header the same way
// readItemHeader does, additionally writing the header bytes verbatim
// to the output (headers are never redacted).
func readAndMirrorItemHeader(m *MirrorCursor, group int) (ItemHeader, error) {
	start := m.Pos()
	raw, err := m.ReadExact(headerLen)
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
	if !bytesEqual(raw[12:32], headerSeparator) {
		return ItemHeader{}, newErr(BadSeparator, start+12, "separator mismatch")
	}

	typ := TypeCode(rawType)
	if !Validate(uint8(group), key, typ) {
		if _, known := Lookup(uint8(group), key); known {
			return ItemHeader{}, newErr(TypeMismatch, start+4, "group %d key %#x: type %#08x not in dictionary", group, key, rawType)
		}
		return ItemHeader{}, newErr(UnknownKey, start, "group %d key %#x not in dictionary", group, key)
	}

	if err := m.WriteExact(raw); err != nil {
		return ItemHeader{}, err
	}
	return ItemHeader{Group: group, Key: key, Type: typ, Len: int(length)}, nil
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scrubPayload redacts a PHI-keyed item's payload according to its
// variant (spec.md §4.6) and writes the result to the output. payload
// has already been read off the input by scrubGroupBody, so this only
// mutates a private copy and writes it -- it must not read from m again,
// or the input and output cursors fall out of lockstep. Any PHI-keyed
// type with no listed rule is a fatal scrub error.
func scrubPayload(m *MirrorCursor, hdr ItemHeader, payload []byte) error {
	var redact func(scratch []byte)
	switch hdr.Type {
	case TypeISOStringlet:
		redact = redactISOStringlet
	case TypeSJISString:
		redact = redactSJISString
	case TypeStruct436:
		redact = redactStruct436
	case TypeStruct516:
		redact = redactStruct516
	case TypeStruct325:
		redact = redactStruct325
	default:
		return newErr(ScrubUnsupported, m.Pos(), "PHI key %#x has no scrub rule for type %#08x", hdr.Key, uint32(hdr.Type))
	}
	scratch := make([]byte, len(payload))
	copy(scratch, payload)
	redact(scratch)
	return m.WriteExact(scratch)
}

// redactSpan overwrites scratch[start:end] with fill, clamping end to
// len(scratch) so a malformed payload never panics mid-scrub.
func redactSpan(scratch []byte, start, end int, fill byte) {
	if end > len(scratch) {
		end = len(scratch)
	}
	for i := start; i < end; i++ {
		scratch[i] = fill
	}
}

// nulSpanEnd returns the offset of the first NUL byte in
// scratch[start:limit], or limit if none is found.
func nulSpanEnd(scratch []byte, start, limit int) int {
	if limit > len(scratch) {
		limit = len(scratch)
	}
	for i := start; i < limit; i++ {
		if scratch[i] == 0 {
			return i
		}
	}
	return limit
}

// redactISOStringlet overwrites the text region of a tagged ISO8859-1
// stringlet with spaces (spec.md §4.6, scenario S2: the final 8 bytes
// of a 27-byte payload become spaces). The region starts right after
// the 3-byte magic, 1-byte length, 3-byte label header, 9-byte label
// and 3-byte text-length header.
func redactISOStringlet(scratch []byte) {
	if len(scratch) < 3 || string(scratch[:3]) != "\xDF\xFF\x79" {
		return
	}
	redactSpan(scratch, 7+9+3, len(scratch), ' ')
}

// redactSJISString overwrites the string up to its NUL (or the whole
// buffer, if unterminated) with spaces.
func redactSJISString(scratch []byte) {
	redactSpan(scratch, 0, nulSpanEnd(scratch, 0, len(scratch)), ' ')
}

func redactStruct436(scratch []byte) {
	limit := struct436PHIOffset + struct436PHILen
	end := nulSpanEnd(scratch, struct436PHIOffset, limit)
	redactSpan(scratch, struct436PHIOffset, end, ' ')
}

func redactStruct516(scratch []byte) {
	limit := struct516PHIOffset + struct516PHILen
	end := nulSpanEnd(scratch, struct516PHIOffset, limit)
	redactSpan(scratch, struct516PHIOffset, end, ' ')
}

func redactStruct325(scratch []byte) {
	for i := 0; i < 5; i++ {
		start := i * 65
		end := nulSpanEnd(scratch, start, start+65)
		redactSpan(scratch, start, end, ' ')
	}
}
