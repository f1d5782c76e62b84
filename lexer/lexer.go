package lexer

import (
	"fmt"
	"log/slog"
	"strconv"
)

// State is the scanning mode of a Lexer.
type State uint8

const (
	// StateNormal scans raw text up to the next '#'.
	StateNormal State = iota

	// StateTag follows a tag name and accepts '(' or ':'.
	StateTag

	// StateParameters scans variables, ',' and ')'.
	StateParameters
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateTag:
		return "tag"
	case StateParameters:
		return "parameters"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// Lexer produces tokens from a byte slice. A Lexer is
// single-use and must not be shared between goroutines.
type Lexer struct {
	cur   cursor
	state State
}

// New returns a Lexer reading src from its first byte in
// StateNormal. src must not be modified while lexing;
// Raw tokens alias it.
func New(src []byte) *Lexer {
	return &Lexer{cur: cursor{src: src}}
}

// NewString returns a Lexer over the bytes of s.
func NewString(s string) *Lexer {
	return New([]byte(s))
}

// State returns the current scanning state.
func (l *Lexer) State() State {
	return l.state
}

// Offset returns the byte offset of the cursor.
func (l *Lexer) Offset() int {
	return l.cur.pos
}

// Remaining returns the number of unread bytes.
func (l *Lexer) Remaining() int {
	return l.cur.readable()
}

// Next returns the next token. ok is false at the end of
// input and also when the remaining input cannot form a
// token (a trailing '#', an unterminated or malformed
// parameter list); the two cases are not distinguished.
// A '#' followed by a non-identifier byte yields an empty
// TagName.
func (l *Lexer) Next() (tok Token, ok bool) {
	tok, ok, _ = l.scan(false)

	return tok, ok
}

// NextStrict is Next with malformed input reported as a
// *SyntaxError wrapping one of the Err* sentinels. It
// returns ok false and a nil error only at a clean end
// of input. An empty tag name is rejected with
// ErrUnterminatedIdentifier.
func (l *Lexer) NextStrict() (Token, bool, error) {
	return l.scan(true)
}

// LexAll drains the lexer. A second call on the same
// Lexer returns no tokens.
func (l *Lexer) LexAll() []Token {
	var tokens []Token

	for {
		tok, ok, err := l.scan(false)
		if !ok {
			if err != nil {
				slog.Debug(
					"lexing stopped before end of input",
					"offset", l.cur.pos,
					"state", l.state.String(),
					"remaining", l.cur.readable(),
					"reason", err,
				)
			}

			return tokens
		}

		tokens = append(tokens, tok)
	}
}

// LexAllStrict drains the lexer and stops at the first
// syntax error, returning the tokens produced before it.
func (l *Lexer) LexAllStrict() ([]Token, error) {
	var tokens []Token

	for {
		tok, ok, err := l.scan(true)
		if err != nil {
			return tokens, err
		}

		if !ok {
			return tokens, nil
		}

		tokens = append(tokens, tok)
	}
}

// scan runs the transition table until a token is
// produced. The tag state hands an unmatched byte back
// to the normal state by looping rather than recursing.
func (l *Lexer) scan(strict bool) (Token, bool, error) {
	for {
		b, ok := l.cur.peekByte()
		if !ok {
			if l.state == StateParameters {
				return Token{}, false, l.syntaxError(
					l.cur.pos, ErrUnterminatedParameterList,
				)
			}

			return Token{}, false, nil
		}

		switch l.state {
		case StateNormal:
			return l.scanNormal(b, strict)

		case StateTag:
			if l.cur.advanceIf(ParametersOpen) {
				l.state = StateParameters

				return ParametersStart(), true, nil
			}

			if l.cur.advanceIf(BodyIndicator) {
				l.state = StateNormal

				return TagBodyIndicator(), true, nil
			}

			l.state = StateNormal

		case StateParameters:
			return l.scanParameters(b)

		default:
			return Token{}, false, nil
		}
	}
}

func (l *Lexer) scanNormal(b byte, strict bool) (Token, bool, error) {
	if b == TagStart {
		start := l.cur.pos
		l.cur.advance()

		n, ok := l.cur.matchingRunLength(IsIdentifierByte)
		if !ok {
			return Token{}, false, l.syntaxError(
				start, ErrUnexpectedEndOfInput,
			)
		}

		if n == 0 && strict {
			return Token{}, false, l.syntaxError(
				start, ErrUnterminatedIdentifier,
			)
		}

		name, ok := l.cur.readString(n)
		if !ok {
			return Token{}, false, nil
		}

		l.state = StateTag

		return TagName(name), true, nil
	}

	n, ok := l.cur.matchingRunLength(isNotTagStart)
	if !ok || n == 0 {
		return Token{}, false, nil
	}

	raw, ok := l.cur.readSlice(n)
	if !ok {
		return Token{}, false, nil
	}

	return Raw(raw), true, nil
}

func (l *Lexer) scanParameters(b byte) (Token, bool, error) {
	if l.cur.advanceIf(ParametersClose) {
		// ':' or another '(' may follow.
		l.state = StateTag

		return ParametersEnd(), true, nil
	}

	if l.cur.advanceIf(ParameterSeparator) {
		return ParameterDelimiter(), true, nil
	}

	n, ok := l.cur.matchingRunLength(IsIdentifierByte)
	if !ok {
		return Token{}, false, l.syntaxError(
			l.cur.pos, ErrUnterminatedParameterList,
		)
	}

	if n == 0 {
		return Token{}, false, l.syntaxError(
			l.cur.pos,
			fmt.Errorf(
				"unexpected byte %q: %w",
				b, ErrUnterminatedParameterList,
			),
		)
	}

	name, ok := l.cur.readString(n)
	if !ok {
		return Token{}, false, nil
	}

	return Variable(name), true, nil
}

func (l *Lexer) syntaxError(offset int, err error) *SyntaxError {
	return &SyntaxError{Offset: offset, State: l.state, Err: err}
}
