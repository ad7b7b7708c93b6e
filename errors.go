package wirth

import (
	"errors"
	"fmt"
)

// Kinds of syntax errors. A *SyntaxError wraps exactly one of these, so
// clients may test for them with errors.Is.
var (
	ErrUnbalancedGroup      = errors.New("unbalanced group")
	ErrUnterminatedTerminal = errors.New("unterminated terminal")
	ErrEmptyTerminal        = errors.New("empty terminal")
	ErrInvalidToken         = errors.New("invalid token")
	ErrMissingTerminator    = errors.New("missing rule terminator '.'")
	ErrNestingTooDeep       = errors.New("groups nested too deeply")
)

// SyntaxError is returned for rules which cannot be turned into an automaton.
type SyntaxError struct {
	Kind   error  // one of the Err… kinds of this package
	Pos    int    // position (in runes) within the rule text
	Detail string // human readable details, may be empty
}

func (e *SyntaxError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("wirth: %v at position %d", e.Kind, e.Pos)
	}
	return fmt.Sprintf("wirth: %v at position %d: %s", e.Kind, e.Pos, e.Detail)
}

// Unwrap returns the kind of the error.
func (e *SyntaxError) Unwrap() error {
	return e.Kind
}
