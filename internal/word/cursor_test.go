package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marka-dev/marka/internal/word"
)

func TestSelectWord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		offset    int
		wantStart int
		wantEnd   int
	}{
		{"start of word", "hello world", 0, 0, 5},
		{"inside word", "hello world", 2, 0, 5},
		{"last byte of word", "hello world", 4, 0, 5},
		{"between words", "hello world", 5, 5, 6},
		{"second word", "hello world", 6, 6, 11},
		{"offset at end", "hello world", 11, 11, 11},
		{"offset past end", "hello world", 42, 11, 11},
		{"punctuation is its own span", "foo, bar", 3, 3, 4},
		{"across newline", "foo\nbar", 4, 4, 7},
		{"newline span", "foo\nbar", 3, 3, 4},
		{"empty text", "", 0, 0, 0},
		{"multibyte runes", "héllo wörld", 1, 0, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cursor := word.NewCursor([]byte(tt.text), tt.offset)
			start, end := cursor.SelectWord()
			assert.Equal(t, tt.wantStart, start, "start")
			assert.Equal(t, tt.wantEnd, end, "end")
		})
	}
}

func TestSelectWordNegativeOffsetClamps(t *testing.T) {
	cursor := word.NewCursor([]byte("hello"), -3)
	start, end := cursor.SelectWord()
	assert.Equal(t, 0, start)
	assert.Equal(t, 5, end)
}
