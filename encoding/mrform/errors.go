package mrform

import "fmt"

// Kind identifies the class of a format error. The set is closed: every
// failure mode observed while reverse-engineering the container maps to
// exactly one Kind, and none of them are recoverable locally -- the first
// one aborts the walk.
type Kind int

const (
	// Eof means fewer bytes remained than the format required.
	Eof Kind = iota
	// BadSeparator means an item's 20-byte header separator didn't match
	// the constant byte string.
	BadSeparator
	// ReservedBits means a header field used bits the format reserves.
	ReservedBits
	// UnknownKey means (group, key) has no entry in the dictionary.
	UnknownKey
	// TypeMismatch means the dictionary disagrees with the header's type.
	TypeMismatch
	// BadLength means the payload length violates the variant's contract.
	BadLength
	// BadVariantPayload means a variant-internal invariant failed.
	BadVariantPayload
	// TrailingGarbage means more than one unread byte remained at EOF, or
	// the single permitted trailing byte was non-zero.
	TrailingGarbage
	// TooManyGroups means the final group count exceeded 8.
	TooManyGroups
	// TooFewGroups means the final group count was below 6.
	TooFewGroups
	// DictionaryCorrupt means the startup self-check of the dictionary
	// table failed.
	DictionaryCorrupt
	// ScrubUnsupported means a PHI-keyed item's type has no redaction
	// rule. This kind has no counterpart in the parser; it only occurs
	// during Scrub.
	ScrubUnsupported
)

func (k Kind) String() string {
	switch k {
	case Eof:
		return "Eof"
	case BadSeparator:
		return "BadSeparator"
	case ReservedBits:
		return "ReservedBits"
	case UnknownKey:
		return "UnknownKey"
	case TypeMismatch:
		return "TypeMismatch"
	case BadLength:
		return "BadLength"
	case BadVariantPayload:
		return "BadVariantPayload"
	case TrailingGarbage:
		return "TrailingGarbage"
	case TooManyGroups:
		return "TooManyGroups"
	case TooFewGroups:
		return "TooFewGroups"
	case DictionaryCorrupt:
		return "DictionaryCorrupt"
	case ScrubUnsupported:
		return "ScrubUnsupported"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is the error type returned by every exported operation in this
// package. It carries a Kind so callers can branch on failure class
// without string matching, in the shape of github.com/grailbio/base/errors.Error.
type Error struct {
	Kind Kind
	Off  int // byte offset in the input at which the error was detected
	msg  string
	err  error // wrapped cause, if any
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("mrform: %v at offset %d: %s: %v", e.Kind, e.Off, e.msg, e.err)
	}
	return fmt.Sprintf("mrform: %v at offset %d: %s", e.Kind, e.Off, e.msg)
}

func (e *Error) Unwrap() error { return e.err }

// Is lets errors.Is(err, mrform.KindError(SomeKind)) work without
// exposing Off/msg in the comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// KindError builds a sentinel usable with errors.Is to test for a Kind,
// e.g. errors.Is(err, mrform.KindError(mrform.Eof)).
func KindError(k Kind) error { return &Error{Kind: k} }

func newErr(k Kind, off int, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Off: off, msg: fmt.Sprintf(format, args...)}
}

func wrapErr(k Kind, off int, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: k, Off: off, msg: fmt.Sprintf(format, args...), err: cause}
}
