// internal/buffer/snapshot.go
package buffer

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"sync/atomic"

	"github.com/marka-dev/marka/internal/types"
)

// versionCounter hands out a distinct version to every snapshot created in
// this process, so collaborators can tell snapshots apart cheaply.
var versionCounter atomic.Int64

// Snapshot is an immutable text buffer with a precomputed newline index.
// It is safe to share between goroutines without synchronization.
type Snapshot struct {
	content    []byte
	lineStarts []int // offset of the first byte of each line; lineStarts[0] == 0
	version    int64
	filePath   string
}

// NewSnapshot builds a snapshot from raw content.
func NewSnapshot(content []byte) *Snapshot {
	return newSnapshot(content, "")
}

// NewSnapshotString builds a snapshot from a string. Convenient in tests.
func NewSnapshotString(content string) *Snapshot {
	return newSnapshot([]byte(content), "")
}

func newSnapshot(content []byte, filePath string) *Snapshot {
	lineStarts := []int{0}
	for i, b := range content {
		if b == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Snapshot{
		content:    content,
		lineStarts: lineStarts,
		version:    versionCounter.Add(1),
		filePath:   filePath,
	}
}

// Load reads a file into a new snapshot. A missing file yields an empty
// snapshot bound to the path, so a viewer can still open it.
func Load(filePath string) (*Snapshot, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return newSnapshot(nil, filePath), nil
		}
		return nil, fmt.Errorf("failed to read file '%s': %w", filePath, err)
	}
	return newSnapshot(content, filePath), nil
}

// Len returns the content length in bytes.
func (s *Snapshot) Len() int {
	return len(s.content)
}

// LineCount returns the number of lines, counting the empty line a trailing
// newline opens.
func (s *Snapshot) LineCount() int {
	return len(s.lineStarts)
}

// LineOfOffset returns the line containing offset (clamped to [0, Len()]).
func (s *Snapshot) LineOfOffset(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.content) {
		offset = len(s.content)
	}
	// Last index with lineStarts[i] <= offset.
	return sort.SearchInts(s.lineStarts, offset+1) - 1
}

// OffsetOfLine returns the offset of the start of line. Lines past the end
// clamp to Len(), which makes "start of line N+1" a safe way to express
// "end of line N" for the final line.
func (s *Snapshot) OffsetOfLine(line int) int {
	if line < 0 {
		return 0
	}
	if line >= len(s.lineStarts) {
		return len(s.content)
	}
	return s.lineStarts[line]
}

// Line returns the bytes of a line, excluding its trailing newline.
func (s *Snapshot) Line(index int) ([]byte, error) {
	if index < 0 || index >= len(s.lineStarts) {
		return nil, fmt.Errorf("line index %d out of bounds (0-%d)", index, len(s.lineStarts)-1)
	}
	start := s.lineStarts[index]
	end := len(s.content)
	if index+1 < len(s.lineStarts) {
		end = s.lineStarts[index+1] - 1 // drop the '\n'
	}
	return s.content[start:end], nil
}

// Slice returns content[start:end] clamped to valid bounds, with start <= end.
func (s *Snapshot) Slice(start, end int) []byte {
	if start > end {
		start, end = end, start
	}
	if start < 0 {
		start = 0
	}
	if end > len(s.content) {
		end = len(s.content)
	}
	if start >= end {
		return nil
	}
	return s.content[start:end]
}

// Bytes returns the full content. Callers must not modify it.
func (s *Snapshot) Bytes() []byte {
	return s.content
}

// Version returns the snapshot's version stamp.
func (s *Snapshot) Version() int64 {
	return s.version
}

// FilePath returns the path this snapshot was loaded from, if any.
func (s *Snapshot) FilePath() string {
	return s.filePath
}

// PositionForOffset maps a byte offset to a line/column position.
func (s *Snapshot) PositionForOffset(offset int) types.Position {
	line := s.LineOfOffset(offset)
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.content) {
		offset = len(s.content)
	}
	return types.Position{Line: line, Col: offset - s.lineStarts[line]}
}

// OffsetForPosition maps a line/column position to a byte offset. The column
// is clamped to the line's length, so clicks past the end of a line land on
// the line's newline (or EOF on the last line).
func (s *Snapshot) OffsetForPosition(pos types.Position) int {
	if pos.Line < 0 {
		return 0
	}
	if pos.Line >= len(s.lineStarts) {
		return len(s.content)
	}
	lineBytes, _ := s.Line(pos.Line)
	col := pos.Col
	if col < 0 {
		col = 0
	}
	if col > len(lineBytes) {
		col = len(lineBytes)
	}
	return s.lineStarts[pos.Line] + col
}

// Ensure Snapshot satisfies the Buffer interface.
var _ Buffer = (*Snapshot)(nil)
