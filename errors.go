package desktopentry

import (
	"errors"
	"fmt"
)

var (
	// ErrCreateTrashDir indicates a trash info directory could not be created.
	ErrCreateTrashDir = errors.New("failed to create trash info directory")
	// ErrWriteTrashInfo indicates a trash info file could not be written.
	ErrWriteTrashInfo = errors.New("failed to write trash info file")
)

// ParseError is a grammar violation. It carries the byte offset of the
// deepest point the parser reached and the unconsumed remainder from
// there. A ParseError fails the whole parse, there is no partial
// recovery.
type ParseError struct {
	Offset    int
	Remainder string
}

func (e *ParseError) Error() string {
	r := e.Remainder
	if len(r) > 32 {
		r = r[:32] + "..."
	}

	return fmt.Sprintf("parse error at byte %d: unexpected input %q", e.Offset, r)
}

// NotFoundError indicates a Require lookup found no matching group or
// entry. It carries the searched key and is always recoverable, a
// missing key can be treated as an absent optional field.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no match for key %q", e.Key)
}

// NotASCIIError indicates a string rejected by NewASCIIString. It
// carries the first offending character.
type NotASCIIError struct {
	Char rune
}

func (e *NotASCIIError) Error() string {
	return fmt.Sprintf("not a printable ASCII character: %q", e.Char)
}

// DateError wraps a DeletionDate value that does not parse under the
// fixed trash info layout. The underlying time error is surfaced
// opaquely via Unwrap.
type DateError struct {
	Err error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("invalid deletion date: %v", e.Err)
}

func (e *DateError) Unwrap() error {
	return e.Err
}
