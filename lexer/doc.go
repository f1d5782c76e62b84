// Package lexer converts template source bytes into an ordered stream of
// tokens. Outside a tag everything up to the next '#' is raw text; '#'
// starts a tag name, which may be followed by a parenthesised,
// comma-separated parameter list and a ':' body indicator.
//
// The Lexer is a three-state machine (normal, tag, parameters) driven by
// a single forward cursor. Next pulls one token at a time and LexAll drains
// the stream. Malformed trailing syntax ends the stream silently; the
// NextStrict and LexAllStrict variants report it as a *SyntaxError
// instead.
package lexer
