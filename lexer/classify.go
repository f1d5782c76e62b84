package lexer

// Delimiter bytes of the template grammar.
const (
	TagStart           byte = '#'
	ParametersOpen     byte = '('
	ParametersClose    byte = ')'
	ParameterSeparator byte = ','
	BodyIndicator      byte = ':'
)

// IsIdentifierByte reports whether b may appear in a tag
// name or a variable: ASCII letters, ASCII digits and '_'.
func IsIdentifierByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	default:
		return b == '_'
	}
}

// IsDelimiter reports whether b is one of the five
// delimiter bytes. Only TagStart is significant in raw
// text.
func IsDelimiter(b byte) bool {
	switch b {
	case TagStart,
		ParametersOpen,
		ParametersClose,
		ParameterSeparator,
		BodyIndicator:
		return true
	default:
		return false
	}
}

func isNotTagStart(b byte) bool {
	return b != TagStart
}
