package linkheader

import (
	"errors"
	"fmt"
)

// ErrMalformedEntry is wrapped by every *ParseError.
var ErrMalformedEntry = errors.New("malformed link entry")

// ParseError describes a Link header entry that could not be parsed.
type ParseError struct {
	// Zero based position of the entry in the header value.
	Index int
	// The raw entry text.
	Entry  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("link entry %d %q: %s", e.Index, e.Entry, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedEntry
}
