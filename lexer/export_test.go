package lexer

// Exported aliases for testing the cursor from the
// lexer_test package.

// Cursor is an alias for cursor.
type Cursor = cursor

// NewCursorForTest returns a cursor over src positioned
// at pos.
func NewCursorForTest(src []byte, pos int) *Cursor {
	return &cursor{src: src, pos: pos}
}

// Pos exposes the read position.
func (c *cursor) Pos() int { return c.pos }

// PeekByte exposes peekByte.
func (c *cursor) PeekByte() (byte, bool) { return c.peekByte() }

// Advance exposes advance.
func (c *cursor) Advance() { c.advance() }

// AdvanceIf exposes advanceIf.
func (c *cursor) AdvanceIf(b byte) bool { return c.advanceIf(b) }

// MatchingRunLength exposes matchingRunLength.
func (c *cursor) MatchingRunLength(match func(byte) bool) (int, bool) {
	return c.matchingRunLength(match)
}

// ReadSlice exposes readSlice.
func (c *cursor) ReadSlice(n int) ([]byte, bool) { return c.readSlice(n) }

// ReadString exposes readString.
func (c *cursor) ReadString(n int) (string, bool) { return c.readString(n) }
