package transcript

import (
	"errors"
	"fmt"
)

// ErrParse is wrapped by every ParseError.
var ErrParse = errors.New("parse error")

const parseErrorFormat = "line %d: expected %s, found %s"

// ParseError describes the first structural violation found in a transcript.
type ParseError struct {
	Line     int
	Expected string
	Found    Token
}

func (parseError *ParseError) Error() string {
	return fmt.Sprintf(parseErrorFormat, parseError.Line, parseError.Expected, parseError.Found)
}

// Unwrap lets errors.Is match ErrParse.
func (parseError *ParseError) Unwrap() error {
	return ErrParse
}

func newParseError(expected string, found Token) *ParseError {
	return &ParseError{Line: found.Line, Expected: expected, Found: found}
}
