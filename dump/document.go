package dump

import (
	"errors"
	"fmt"
	"strings"

	"github.com/byte4ever/leafkit/lexer"
)

// ErrInvalidRecord is returned when a record cannot be
// turned back into a token.
var ErrInvalidRecord = errors.New("invalid record")

// Record is the serializable form of one token.
type Record struct {
	Index  int    `json:"index" yaml:"index"`
	Kind   string `json:"kind" yaml:"kind"`
	Value  string `json:"value,omitempty" yaml:"value,omitempty"`
	Offset int    `json:"offset" yaml:"offset"`
	Length int    `json:"length" yaml:"length"`
}

// Document holds the token records of one source.
// Error is set when strict lexing failed; Records then
// stop at the failure.
type Document struct {
	Source  string   `json:"source" yaml:"source"`
	Records []Record `json:"tokens" yaml:"tokens"`
	Error   string   `json:"error,omitempty" yaml:"error,omitempty"`
}

// NewDocument builds a Document from a token stream.
// Offsets are the running sum of the tokens' source
// lengths.
func NewDocument(
	source string,
	tokens []lexer.Token,
	err error,
) Document {
	doc := Document{Source: source}

	offset := 0

	for idx, tok := range tokens {
		length := len(tok.Source())

		doc.Records = append(doc.Records, Record{
			Index:  idx,
			Kind:   tok.Kind.String(),
			Value:  tokenValue(tok),
			Offset: offset,
			Length: length,
		})

		offset += length
	}

	if err != nil {
		doc.Error = err.Error()
	}

	return doc
}

func tokenValue(tok lexer.Token) string {
	switch tok.Kind {
	case lexer.KindRaw:
		return string(tok.Raw)
	case lexer.KindTagName, lexer.KindVariable:
		return tok.Name
	default:
		return ""
	}
}

// isZero reports an empty document, such as the one
// decoded from a bare "---" separator.
func (d Document) isZero() bool {
	return d.Source == "" && len(d.Records) == 0 && d.Error == ""
}

// Tokens rebuilds the token stream from the records.
func (d Document) Tokens() ([]lexer.Token, error) {
	const errCtx = "rebuilding tokens"

	tokens := make([]lexer.Token, 0, len(d.Records))

	for _, rec := range d.Records {
		tok, err := rec.token()
		if err != nil {
			return nil, fmt.Errorf(
				"%s: record %d: %w",
				errCtx, rec.Index, err,
			)
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func (r Record) token() (lexer.Token, error) {
	kind, err := lexer.ParseKind(r.Kind)
	if err != nil {
		return lexer.Token{}, fmt.Errorf(
			"%w: %w", ErrInvalidRecord, err,
		)
	}

	switch kind {
	case lexer.KindRaw:
		if r.Value == "" ||
			strings.IndexByte(r.Value, lexer.TagStart) >= 0 {
			return lexer.Token{}, fmt.Errorf(
				"%w: raw value %q", ErrInvalidRecord, r.Value,
			)
		}

		return lexer.Raw([]byte(r.Value)), nil

	case lexer.KindTagName, lexer.KindVariable:
		if !isIdentifier(r.Value, kind == lexer.KindTagName) {
			return lexer.Token{}, fmt.Errorf(
				"%w: %s name %q",
				ErrInvalidRecord, kind, r.Value,
			)
		}

		return lexer.Token{Kind: kind, Name: r.Value}, nil

	default:
		if r.Value != "" {
			return lexer.Token{}, fmt.Errorf(
				"%w: %s carries value %q",
				ErrInvalidRecord, kind, r.Value,
			)
		}

		return lexer.Token{Kind: kind}, nil
	}
}

// isIdentifier reports whether s is made of identifier
// bytes. A '#' followed by a non-identifier byte yields
// an empty tag name, so allowEmpty is set for tag names.
func isIdentifier(s string, allowEmpty bool) bool {
	if s == "" {
		return allowEmpty
	}

	for i := 0; i < len(s); i++ {
		if !lexer.IsIdentifierByte(s[i]) {
			return false
		}
	}

	return true
}
