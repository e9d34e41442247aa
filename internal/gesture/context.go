// internal/gesture/context.go
package gesture

import (
	"fmt"

	"github.com/marka-dev/marka/internal/buffer"
	"github.com/marka-dev/marka/internal/logger"
	"github.com/marka-dev/marka/internal/selection"
)

// Context resolves one gesture against the current selection. It is built
// per event: the text and selection are read-only for the duration of the
// call, and dragState points at the caller's slot, which Select and
// SelectExtend overwrite. The caller installs the returned selection as
// current; neither input is ever mutated in place.
type Context struct {
	text      buffer.Buffer
	sel       *selection.Selection
	dragState **DragState
}

// NewContext creates a gesture context over the caller's state.
func NewContext(text buffer.Buffer, sel *selection.Selection, dragState **DragState) *Context {
	return &Context{text: text, sel: sel, dragState: dragState}
}

// SelectionForGesture resolves a gesture at offset into the new selection.
// Gestures outside the Select/SelectExtend/Drag vocabulary indicate a bug in
// the upstream classifier and panic rather than degrade the selection.
func (c *Context) SelectionForGesture(offset int, g Gesture) *selection.Selection {
	if sel, ok := g.(Select); ok && sel.Granularity == Point && sel.Multi {
		if len(c.sel.RegionsInRange(offset, offset)) > 0 {
			if c.sel.Len() > 1 {
				// Toggle off the region(s) under the pointer. Toggling the
				// last remaining region is not allowed.
				newSel := c.sel.Clone()
				newSel.DeleteRange(offset, offset, true)
				logger.DebugTagf("gesture", "toggle-off at %d -> %v", offset, newSel)
				return newSel
			}
			// Clicking the sole region collapses the selection to a caret.
			g = Select{Granularity: Point, Multi: false}
		}
	}

	switch g := g.(type) {
	case Select:
		newRegion := RegionForGesture(c.text, offset, g.Granularity)
		var newSel *selection.Selection
		if g.Multi {
			newSel = c.sel.Clone()
			newSel.Add(newRegion)
		} else {
			newSel = selection.NewSelection(newRegion)
		}

		*c.dragState = &DragState{
			baseSel:     newSel.Clone(),
			min:         newRegion.Start,
			max:         newRegion.End,
			granularity: g.Granularity,
		}
		return newSel

	case SelectExtend:
		if c.sel.Len() == 0 {
			// No anchor to extend from.
			return c.sel.Clone()
		}
		active, _ := c.sel.Last()
		newRegion := RegionForGesture(c.text, offset, g.Granularity)

		// The merge keeps the active region's anchor and adopts the far
		// edge of whatever the pointer resolved to, so extending toward an
		// earlier word still swallows that whole word. The start-ward
		// branch is unreachable for point/word/line resolution but kept
		// for symmetry with the drag merge.
		var merged selection.Region
		if offset >= newRegion.Start {
			merged = selection.NewRegion(active.Start, newRegion.End)
		} else {
			merged = selection.NewRegion(active.Start, newRegion.Start)
		}

		newSel := c.sel.Clone()
		newSel.Add(merged)
		*c.dragState = &DragState{
			baseSel:     newSel.Clone(),
			min:         newRegion.Start,
			max:         newRegion.End,
			granularity: g.Granularity,
		}
		return newSel

	case Drag:
		ds := *c.dragState
		if ds == nil {
			// A drag with no prior anchor is a no-op; defends against
			// out-of-order events from the classifier.
			return c.sel.Clone()
		}
		anchor := selection.NewRegion(ds.min, ds.max)
		newRegion := regionExtendingRegion(c.text, anchor, offset, ds.granularity)

		// The slot itself stays frozen for the whole drag sequence; only
		// the returned selection changes per event.
		newSel := ds.baseSel.Clone()
		newSel.Add(newRegion.WithHoriz(nil))
		return newSel

	default:
		panic(fmt.Sprintf("gesture: unexpected gesture type %T", g))
	}
}
