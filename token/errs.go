package token

import (
	"errors"
	"fmt"
)

var ErrLex = errors.New("lex error")

// LexError reports a position where no token rule consumed any input.
type LexError struct {
	Line      int
	Remainder string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%v: no token rule matches at line %d: %q", ErrLex, e.Line, e.Remainder)
}

func (e *LexError) Unwrap() error {
	return ErrLex
}
