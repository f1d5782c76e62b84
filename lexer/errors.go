package lexer

import (
	"errors"
	"fmt"
)

// Syntax errors reported by NextStrict and LexAllStrict.
var (
	// ErrUnexpectedEndOfInput is returned when '#' is the
	// last byte of the input.
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")

	// ErrUnterminatedIdentifier is returned when '#' is
	// followed by a byte that cannot start a tag name.
	// Next emits an empty TagName there instead.
	ErrUnterminatedIdentifier = errors.New("unterminated identifier")

	// ErrUnterminatedParameterList is returned when the
	// input ends inside a parameter list, or the list
	// holds a byte that is neither an identifier byte, ','
	// nor ')'.
	ErrUnterminatedParameterList = errors.New(
		"unterminated parameter list",
	)
)

// SyntaxError locates a strict-mode failure in the
// input.
type SyntaxError struct {
	// Offset is the byte offset of the offending
	// construct.
	Offset int

	// State is the lexer state the failure occurred in.
	State State

	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf(
		"lexing: offset %d in %s state: %v",
		e.Offset, e.State, e.Err,
	)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
