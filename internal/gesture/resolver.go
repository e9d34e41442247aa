// internal/gesture/resolver.go
package gesture

import (
	"fmt"

	"github.com/marka-dev/marka/internal/buffer"
	"github.com/marka-dev/marka/internal/selection"
	"github.com/marka-dev/marka/internal/word"
)

// RegionForGesture maps an offset to the region a gesture at the given
// granularity selects. The result is always forward (Start <= End).
func RegionForGesture(text buffer.Buffer, offset int, granularity Granularity) selection.Region {
	switch granularity {
	case Point:
		return selection.Caret(offset)
	case Word:
		cursor := word.NewCursor(text.Bytes(), offset)
		start, end := cursor.SelectWord()
		return selection.NewRegion(start, end)
	case Line:
		line := text.LineOfOffset(offset)
		start := text.OffsetOfLine(line)
		end := text.OffsetOfLine(line + 1) // includes the trailing newline
		return selection.NewRegion(start, end)
	default:
		panic(fmt.Sprintf("gesture: unknown granularity %d", granularity))
	}
}

// regionExtendingRegion calculates the region generated by extending (via
// drag, e.g.) an existing anchor region.
//
// Dragging forward takes the far edge of the resolved extension; dragging
// backward takes its near edge, so the selection never overshoots past the
// boundary of the word or line under the pointer. The anchor start stays the
// region's Start either way, which makes a backward result reversed.
func regionExtendingRegion(text buffer.Buffer, anchor selection.Region, offset int, granularity Granularity) selection.Region {
	extension := RegionForGesture(text, offset, granularity)
	if offset >= anchor.Start {
		return selection.NewRegion(anchor.Start, extension.End)
	}
	return selection.NewRegion(anchor.Start, extension.Start)
}
