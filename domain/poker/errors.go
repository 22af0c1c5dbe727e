package poker

import "fmt"

// ParseError reports a token that could not be turned into a domain value.
// Kind names the value being parsed ("rank", "suit", "card", "board", ...)
// and Input holds the offending text.
type ParseError struct {
	Kind  string
	Input string
	Err   error
}

// NewParseError returns a ParseError for kind and input with an optional cause.
func NewParseError(kind, input string, cause ...error) *ParseError {
	e := &ParseError{Kind: kind, Input: input}
	if len(cause) > 0 {
		e.Err = cause[0]
	}
	return e
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("error parsing %s from %q: %v", e.Kind, e.Input, e.Err)
	}
	return fmt.Sprintf("error parsing %s from %q", e.Kind, e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
