package lexer

import (
	"fmt"
	"strconv"
)

// Kind identifies the variant of a Token.
type Kind uint8

const (
	KindRaw                Kind = iota // literal text outside a tag
	KindTagName                        // identifier after '#'
	KindTagBodyIndicator               // ':'
	KindParametersStart                // '('
	KindParameterDelimiter             // ','
	KindParametersEnd                  // ')'
	KindVariable                       // identifier inside a parameter list
)

var kindNames = [...]string{
	KindRaw:                "Raw",
	KindTagName:            "TagName",
	KindTagBodyIndicator:   "TagBodyIndicator",
	KindParametersStart:    "ParametersStart",
	KindParameterDelimiter: "ParameterDelimiter",
	KindParametersEnd:      "ParametersEnd",
	KindVariable:           "Variable",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind whose String form is name.
func ParseKind(name string) (Kind, error) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("parsing kind: unknown token kind %q", name)
}

// Token is one lexical unit. Raw is set for KindRaw and
// Name for KindTagName and KindVariable; the remaining
// kinds carry no payload.
type Token struct {
	Kind Kind
	Raw  []byte
	Name string
}

// Raw returns a KindRaw token holding b.
func Raw(b []byte) Token {
	return Token{Kind: KindRaw, Raw: b}
}

// TagName returns a KindTagName token.
func TagName(name string) Token {
	return Token{Kind: KindTagName, Name: name}
}

// Variable returns a KindVariable token.
func Variable(name string) Token {
	return Token{Kind: KindVariable, Name: name}
}

// TagBodyIndicator returns the ':' token.
func TagBodyIndicator() Token { return Token{Kind: KindTagBodyIndicator} }

// ParametersStart returns the '(' token.
func ParametersStart() Token { return Token{Kind: KindParametersStart} }

// ParameterDelimiter returns the ',' token.
func ParameterDelimiter() Token { return Token{Kind: KindParameterDelimiter} }

// ParametersEnd returns the ')' token.
func ParametersEnd() Token { return Token{Kind: KindParametersEnd} }

func (t Token) String() string {
	switch t.Kind {
	case KindRaw:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Raw)
	case KindTagName, KindVariable:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Name)
	default:
		return t.Kind.String()
	}
}

// Source returns the bytes the lexer consumed to produce
// t, delimiters included.
func (t Token) Source() []byte {
	switch t.Kind {
	case KindRaw:
		return t.Raw
	case KindTagName:
		return append([]byte{TagStart}, t.Name...)
	case KindVariable:
		return []byte(t.Name)
	case KindTagBodyIndicator:
		return []byte{BodyIndicator}
	case KindParametersStart:
		return []byte{ParametersOpen}
	case KindParameterDelimiter:
		return []byte{ParameterSeparator}
	case KindParametersEnd:
		return []byte{ParametersClose}
	default:
		return nil
	}
}

// Reassemble concatenates the source bytes of tokens in
// order. For a stream that lexed to the end of its input
// the result equals that input.
func Reassemble(tokens []Token) []byte {
	var out []byte

	for _, t := range tokens {
		out = append(out, t.Source()...)
	}

	return out
}
