package mrform

import (
	"fmt"
	"io"
)

// Charset converts a raw byte string encoded in a vendor-specific
// charset to UTF-8. The core decoder never interprets SJISString or the
// raw fallback of ISOStringlet itself (spec.md's "iconv-style charset
// conversion" collaborator, out of scope for the core grammar); the
// printer hands SJISString and labeled ISOStringlet text to whatever
// Charset is wired in, falling back to escapeASCII rendering when none
// is configured or it returns an error. See package
// mrform/charset for the concrete x/text-backed implementation.
type Charset interface {
	Decode(label string, raw []byte) (string, error)
}

// PrintOptions configures ParseAndPrint.
type PrintOptions struct {
	// Charset, if non-nil, is consulted for SJISString values and for
	// ISOStringlet values that carry a label. Left nil, those variants
	// render through escapeASCII instead; an unlabeled ISOStringlet
	// always does.
	Charset Charset
	// Offsets, if true, prefixes each line with the item's byte offset
	// within the input (grounded in original_source/dump7.c, which
	// reports this per item). Off by default so output matches the
	// exact line shape of spec.md §4.5 / §8.
	Offsets bool
}

// ParseAndPrint walks data and writes one line per item to w. The line
// shape is taken from spec.md §8 scenario S1's literal rendering
// ("(…) _0024 [7] # 4,1 <name>") rather than §4.5's looser prose, which
// groups the sign/type glyph inside the parens: here the parenthesized
// part carries only (group, key), and sign+type_mid follow immediately
// outside it.
//
//	(group key_hex) sign_glyph+type_mid decoded_value # len,multiplicity name
func ParseAndPrint(w io.Writer, data []byte, opts PrintOptions) error {
	offset := 0
	lastGroup := 0
	tailSeen := false
	return Walk(data, VisitorFunc(func(hdr ItemHeader, payload []byte) error {
		// Step over the count word of every group opened since the
		// previous item, and over the tail sentinel that Walk reads just
		// ahead of one group's real count.
		for ; lastGroup < hdr.Group; lastGroup++ {
			if w := leUint32(data[offset : offset+4]); !tailSeen && w >= 1 && w <= maxSentinel {
				tailSeen = true
				offset += 4
			}
			offset += 4
		}
		itemOffset := offset
		offset += headerLen + hdr.Len

		val, err := Decode(hdr.Type, payload)
		if err != nil {
			return err
		}
		rendered := renderValue(val, hdr, opts.Charset)
		name := Name(uint8(hdr.Group), hdr.Key)
		line := fmt.Sprintf("(%d %04x) %c%04x %s # %d,%d %s",
			hdr.Group, hdr.Key, hdr.Type.Sign(), hdr.Type.Mid(), rendered,
			hdr.Len, val.Multiplicity(), name)
		if opts.Offsets {
			line = fmt.Sprintf("@%d %s", itemOffset, line)
		}
		_, err = fmt.Fprintln(w, line)
		return err
	}))
}

// renderValue is Value.Render, except for the two variants that carry
// raw vendor-charset bytes (spec.md §6): when a Charset collaborator is
// configured, it's given the chance to re-render them as UTF-8 instead
// of the default backslash-escaped ASCII.
func renderValue(val Value, hdr ItemHeader, cs Charset) string {
	if cs == nil {
		return val.Render()
	}
	switch v := val.(type) {
	case SJISString:
		if text, err := cs.Decode("SHIFT-JIS", v); err == nil {
			return fmt.Sprintf("[%s]", text)
		}
	case ISOStringlet:
		if v.Label != "" {
			if text, err := cs.Decode(v.Label, v.Raw); err == nil {
				return fmt.Sprintf("{%s : %s}", v.Label, text)
			}
		}
	}
	return val.Render()
}
