// internal/buffer/buffer.go
package buffer

import "github.com/marka-dev/marka/internal/types"

// Buffer defines the read-only interface over a text snapshot.
// All offsets are byte offsets into the snapshot's content.
type Buffer interface {
	// Len returns the total content length in bytes.
	Len() int
	// LineCount returns the number of lines. A trailing newline opens a
	// final empty line, matching what an editor displays.
	LineCount() int
	// LineOfOffset returns the 0-based line containing offset. Offsets are
	// clamped to [0, Len()]; Len() maps to the last line.
	LineOfOffset(offset int) int
	// OffsetOfLine returns the offset of the first byte of line. Lines at or
	// past LineCount() map to Len().
	OffsetOfLine(line int) int
	// Line returns the bytes of a line excluding its trailing newline.
	Line(index int) ([]byte, error)
	// Slice returns content[start:end], clamped to valid bounds.
	Slice(start, end int) []byte
	Bytes() []byte
	Version() int64
	FilePath() string

	// Offset <-> screen position mapping.
	PositionForOffset(offset int) types.Position
	OffsetForPosition(pos types.Position) int
}
