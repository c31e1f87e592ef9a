package pcf

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors produced by this package.
type ErrorKind int

const (
	// Other is reserved for errors which fit no other kind, e.g. misuse of
	// the API by the client.
	Other ErrorKind = iota
	// UnsupportedFormat marks a recognized but unhandled encoding variant,
	// such as least-significant-byte-first tables.
	UnsupportedFormat
	// CorruptedData marks an internal inconsistency of the font file, such
	// as a count mismatch between tables or a reserved field value.
	CorruptedData
	// NotFound is returned when a code point has no glyph in the font.
	NotFound
	// IO marks a failure of the underlying byte source. Corrupted data may
	// manifest as an IO error, e.g. when a bogus offset points past the end
	// of the file.
	IO
)

// String returns a human-readable representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedFormat:
		return "unsupported format"
	case CorruptedData:
		return "corrupted data"
	case NotFound:
		return "not found"
	case IO:
		return "I/O error"
	}
	return "error"
}

// FontError represents an error encountered while parsing a font or while
// looking up a glyph.
type FontError struct {
	Kind    ErrorKind // classification of the error
	Section string    // table or parsing stage where the error occurred
	Issue   string    // human-readable description of the issue
	err     error     // wrapped cause, usually from the byte source
}

// Error implements the error interface.
func (e *FontError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("PCF %s/%s: %s: %v", e.Section, e.Kind, e.Issue, e.err)
	}
	return fmt.Sprintf("PCF %s/%s: %s", e.Section, e.Kind, e.Issue)
}

// Unwrap returns the wrapped cause, if any.
func (e *FontError) Unwrap() error {
	return e.err
}

// KindOf classifies an error returned by this package. Errors which did not
// originate here are classified as Other.
func KindOf(err error) ErrorKind {
	var ferr *FontError
	if errors.As(err, &ferr) {
		return ferr.Kind
	}
	return Other
}

func errUnsupported(section, issue string) *FontError {
	return &FontError{Kind: UnsupportedFormat, Section: section, Issue: issue}
}

func errCorrupt(section, issue string) *FontError {
	return &FontError{Kind: CorruptedData, Section: section, Issue: issue}
}

func errNotFound(section, issue string) *FontError {
	return &FontError{Kind: NotFound, Section: section, Issue: issue}
}

func errIO(section string, cause error) *FontError {
	return &FontError{Kind: IO, Section: section, Issue: "byte source failure", err: cause}
}
