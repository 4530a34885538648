package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies decode failures so callers can branch on intent rather
// than text. Every error surfaced by the decoder wraps one of the sentinels
// below and is therefore matchable with errors.Is.
type ErrKind int

const (
	ErrKindBounds       ErrKind = iota // read or seek beyond the buffer
	ErrKindMagic                       // file or section signature mismatch
	ErrKindUnknownType                 // entry or value tag outside the recognized set
	ErrKindUnsupported                 // recognized tag with no decoder (MUI, ET_DATABASE, ...)
	ErrKindMalformed                   // structurally invalid payload
	ErrKindInconsistent                // tree invariant violated during flattening
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels returned (wrapped) by the decode pipeline. Decoding aborts on the
// first error; there is no partial result.
var (
	// ErrOutOfBounds indicates a read or seek exceeded the buffer bounds.
	ErrOutOfBounds = &Error{Kind: ErrKindBounds, Msg: "read beyond buffer bounds"}
	// ErrBadMagic indicates a file or section magic mismatch.
	ErrBadMagic = &Error{Kind: ErrKindMagic, Msg: "bad magic"}
	// ErrUnknownEntryType indicates an entry type tag outside 0x7..0xe.
	ErrUnknownEntryType = &Error{Kind: ErrKindUnknownType, Msg: "unknown entry type"}
	// ErrUnknownValueType indicates a value type code outside the recognized set.
	ErrUnknownValueType = &Error{Kind: ErrKindUnknownType, Msg: "unknown value type"}
	// ErrNotImplemented indicates a recognized entry or value type that has no
	// decoder (MUI values, ET_DATABASE/ET_RECORD/ET_RECMORE/ET_VOLUME/ET_INDEX).
	ErrNotImplemented = &Error{Kind: ErrKindUnsupported, Msg: "type recognized but not implemented"}
	// ErrMalformedStringList indicates a string-list payload missing its
	// required double-NUL terminator.
	ErrMalformedStringList = &Error{Kind: ErrKindMalformed, Msg: "string list missing double-NUL terminator"}
	// ErrTreeInconsistency indicates a duplicate path or an unexpected node
	// type during flattening; the source data violates a format invariant.
	ErrTreeInconsistency = &Error{Kind: ErrKindInconsistent, Msg: "inconsistent registry tree"}
)
