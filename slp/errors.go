package slp

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the failure kinds a decode can report. Errors
// returned from this package wrap one of these; classify with errors.Is.
var (
	// ErrEmptyPath is returned by NewFromFile for an empty path argument.
	ErrEmptyPath = errors.New("empty path")

	// ErrPathEncoding is returned by NewFromFile when the path is not
	// valid UTF-8.
	ErrPathEncoding = errors.New("path is not valid utf-8")

	// ErrInvalidSLP covers structural violations: unrecognized version
	// tag, malformed frame directory, outline inconsistencies and command
	// streams that do not fill their row exactly.
	ErrInvalidSLP = errors.New("invalid slp")

	// ErrBadLength covers every read past the end of the file, including
	// a header that declares more frames than the file can hold.
	ErrBadLength = errors.New("bad length")

	// ErrDecode is the catch-all for command execution faults that have
	// no more specific category, such as a row overrun or an unsupported
	// extended opcode.
	ErrDecode = errors.New("unknown decode error")
)

// Numeric codes of the legacy C calling convention, one per failure
// kind. New callers should use errors.Is on the sentinels instead.
const (
	CodeOK           = 0
	CodeEmptyPath    = 1
	CodePathEncoding = 2
	CodeInvalidSLP   = -1
	CodeBadLength    = -2
	CodeUnknown      = -32767
)

// Code maps err to its legacy numeric code. A nil error maps to CodeOK;
// any error not produced by this package maps to CodeUnknown.
func Code(err error) int {
	switch {
	case err == nil:
		return CodeOK
	case errors.Is(err, ErrEmptyPath):
		return CodeEmptyPath
	case errors.Is(err, ErrPathEncoding):
		return CodePathEncoding
	case errors.Is(err, ErrInvalidSLP):
		return CodeInvalidSLP
	case errors.Is(err, ErrBadLength):
		return CodeBadLength
	default:
		return CodeUnknown
	}
}
