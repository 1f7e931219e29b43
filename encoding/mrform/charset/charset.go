// Package charset adapts golang.org/x/text's encoding tables to the
// mrform.Charset collaborator interface: the printer's "iconv-style
// conversion at print time" dependency that spec.md explicitly keeps
// out of the core grammar.
package charset

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
)

// Default recognizes the two encodings the container actually carries:
// the label "ISO8859-1" (the iso-stringlet variant's embedded label,
// spec.md §4.3.1) and "SHIFT-JIS" (used for mrform.SJISString, spec.md
// §4.3 table). Any other label is reported as an error rather than
// guessed at.
type Default struct{}

func (Default) Decode(label string, raw []byte) (string, error) {
	var enc encoding.Encoding
	switch strings.ToUpper(label) {
	case "ISO8859-1", "ISO-8859-1":
		enc = charmap.ISO8859_1
	case "SHIFT-JIS", "SHIFT_JIS", "SJIS":
		enc = japanese.ShiftJIS
	default:
		return "", &unknownLabelError{label}
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type unknownLabelError struct{ label string }

func (e *unknownLabelError) Error() string { return "charset: unknown label " + e.label }
