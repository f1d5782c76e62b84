package lexer

// cursor is a forward-only read position over an
// immutable byte slice.
type cursor struct {
	src []byte
	pos int
}

func (c *cursor) readable() int {
	return len(c.src) - c.pos
}

// peekByte returns the byte under the cursor without
// advancing.
func (c *cursor) peekByte() (byte, bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}

	return c.src[c.pos], true
}

// advance moves one byte forward. It is a no-op at end
// of input.
func (c *cursor) advance() {
	if c.pos < len(c.src) {
		c.pos++
	}
}

// advanceIf consumes the next byte only when it equals
// expected.
func (c *cursor) advanceIf(expected byte) bool {
	if b, ok := c.peekByte(); ok && b == expected {
		c.advance()

		return true
	}

	return false
}

// matchingRunLength counts the bytes satisfying match
// from the current position. It works on a copy of the
// cursor, so the real position is left untouched. ok is
// false only when no byte is readable at all.
func (c cursor) matchingRunLength(match func(byte) bool) (int, bool) {
	if c.readable() == 0 {
		return 0, false
	}

	start := c.pos

	for c.pos < len(c.src) && match(c.src[c.pos]) {
		c.pos++
	}

	return c.pos - start, true
}

// readSlice consumes n bytes and returns them without
// copying.
func (c *cursor) readSlice(n int) ([]byte, bool) {
	if n < 0 || n > c.readable() {
		return nil, false
	}

	out := c.src[c.pos : c.pos+n : c.pos+n]
	c.pos += n

	return out, true
}

// readString consumes n bytes and returns them as a
// string.
func (c *cursor) readString(n int) (string, bool) {
	b, ok := c.readSlice(n)
	if !ok {
		return "", false
	}

	return string(b), true
}
