// internal/word/cursor.go

// Package word locates word boundaries around byte offsets using Unicode
// word segmentation (UAX #29). Segmentation covers the whole text: runs of
// whitespace and punctuation are segments too, so an offset between words
// still resolves to a well-defined span.
package word

import "github.com/rivo/uniseg"

// Cursor is positioned at a byte offset within a text.
type Cursor struct {
	text   []byte
	offset int
}

// NewCursor creates a word cursor over text at offset.
func NewCursor(text []byte, offset int) *Cursor {
	if offset < 0 {
		offset = 0
	}
	return &Cursor{text: text, offset: offset}
}

// SelectWord returns the bounds [start, end) of the word (or inter-word
// span) containing the cursor's offset. An offset at or past the end of the
// text yields an empty span at the end.
func (c *Cursor) SelectWord() (start, end int) {
	n := len(c.text)
	if c.offset >= n {
		return n, n
	}

	pos := 0
	state := -1
	rest := c.text
	for len(rest) > 0 {
		var seg []byte
		seg, rest, state = uniseg.FirstWord(rest, state)
		segEnd := pos + len(seg)
		if c.offset < segEnd {
			return pos, segEnd
		}
		pos = segEnd
	}
	// Unreachable for a valid offset, but keep the cursor total.
	return n, n
}
