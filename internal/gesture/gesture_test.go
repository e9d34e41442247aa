package gesture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marka-dev/marka/internal/buffer"
	"github.com/marka-dev/marka/internal/selection"
)

// Offsets in "hello world\nfoo bar\n":
// "hello" [0,5) "world" [6,11) on line 0 [0,12),
// "foo" [12,15) "bar" [16,19) on line 1 [12,20).
const sample = "hello world\nfoo bar\n"

// harness bundles the state a caller owns: the selection and the drag slot.
type harness struct {
	text buffer.Buffer
	sel  *selection.Selection
	drag *DragState
}

func newHarness(text string) *harness {
	return &harness{
		text: buffer.NewSnapshotString(text),
		sel:  selection.New(),
	}
}

func (h *harness) apply(offset int, g Gesture) {
	ctx := NewContext(h.text, h.sel, &h.drag)
	h.sel = ctx.SelectionForGesture(offset, g)
}

func TestRegionForGesture(t *testing.T) {
	text := buffer.NewSnapshotString(sample)

	tests := []struct {
		name        string
		offset      int
		granularity Granularity
		want        selection.Region
	}{
		{"point is a caret", 3, Point, selection.Caret(3)},
		{"word containing offset", 2, Word, selection.NewRegion(0, 5)},
		{"word at its first byte", 6, Word, selection.NewRegion(6, 11)},
		{"inter-word span", 5, Word, selection.NewRegion(5, 6)},
		{"line includes trailing newline", 14, Line, selection.NewRegion(12, 20)},
		{"first line", 0, Line, selection.NewRegion(0, 12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RegionForGesture(text, tt.offset, tt.granularity)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRegionForGestureUnknownGranularityPanics(t *testing.T) {
	text := buffer.NewSnapshotString(sample)
	assert.Panics(t, func() {
		RegionForGesture(text, 0, Granularity(99))
	})
}

func TestRegionExtendingRegionDirection(t *testing.T) {
	text := buffer.NewSnapshotString("aaaaaaaaaabbbbbbbbbbcccccccccc")
	anchor := selection.NewRegion(10, 20)

	// Extending past the anchor takes the far edge of the extension;
	// extending before it takes the near edge. The anchor start never moves.
	forward := regionExtendingRegion(text, anchor, 25, Point)
	assert.Equal(t, 10, forward.Start)
	assert.Equal(t, 25, forward.End)

	backward := regionExtendingRegion(text, anchor, 5, Point)
	assert.Equal(t, 10, backward.Start)
	assert.Equal(t, 5, backward.End)
}

func TestSelectPointReplacesSelection(t *testing.T) {
	h := newHarness(sample)
	h.apply(3, Select{Granularity: Point})
	assert.Equal(t, []selection.Region{selection.Caret(3)}, h.sel.Regions())

	h.apply(8, Select{Granularity: Point})
	assert.Equal(t, []selection.Region{selection.Caret(8)}, h.sel.Regions())
}

func TestSelectWordSetsDragAnchor(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})

	assert.Equal(t, []selection.Region{selection.NewRegion(0, 5)}, h.sel.Regions())
	require.NotNil(t, h.drag)
	assert.Equal(t, 0, h.drag.Min())
	assert.Equal(t, 5, h.drag.Max())
	assert.Equal(t, Word, h.drag.Granularity())
}

func TestDragExtendsByWord(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(8, Drag{})

	assert.Equal(t, []selection.Region{selection.NewRegion(0, 11)}, h.sel.Regions())
}

func TestDragIsIdempotent(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(8, Drag{})
	first := h.sel.Regions()
	h.apply(8, Drag{})

	assert.Equal(t, first, h.sel.Regions())
}

func TestDragResolvesFromAnchorNotLastPosition(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(8, Drag{})
	// Dragging back to the anchor restores the original word selection.
	h.apply(2, Drag{})

	assert.Equal(t, []selection.Region{selection.NewRegion(0, 5)}, h.sel.Regions())
}

func TestDragBackwardKeepsAnchorRegion(t *testing.T) {
	h := newHarness(sample)
	h.apply(8, Select{Granularity: Word}) // "world" [6,11)
	h.apply(2, Drag{})

	// The extension runs from the anchor start back to the start of the
	// word under the pointer; the anchor word itself stays selected via
	// the base selection.
	got := h.sel.Regions()
	require.Len(t, got, 2)
	assert.Equal(t, selection.NewRegion(6, 0), got[0])
	assert.Equal(t, selection.NewRegion(6, 11), got[1])
}

func TestDragWithoutAnchorIsNoOp(t *testing.T) {
	h := newHarness(sample)
	h.apply(3, Select{Granularity: Point})
	h.drag = nil
	before := h.sel.Regions()
	h.apply(8, Drag{})

	assert.Equal(t, before, h.sel.Regions())
}

func TestDragByLine(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Line})
	assert.Equal(t, []selection.Region{selection.NewRegion(0, 12)}, h.sel.Regions())

	h.apply(14, Drag{})
	assert.Equal(t, []selection.Region{selection.NewRegion(0, 20)}, h.sel.Regions())
}

func TestMultiSelectAddsRegion(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(14, Select{Granularity: Word, Multi: true})

	assert.Equal(t, []selection.Region{
		selection.NewRegion(0, 5),
		selection.NewRegion(12, 15),
	}, h.sel.Regions())
}

func TestMultiDragExtendsOnlyNewRegion(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(14, Select{Granularity: Word, Multi: true})
	h.apply(17, Drag{})

	assert.Equal(t, []selection.Region{
		selection.NewRegion(0, 5),
		selection.NewRegion(12, 19),
	}, h.sel.Regions())
}

func TestMultiPointClickTogglesRegionOff(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(14, Select{Granularity: Word, Multi: true})
	require.Equal(t, 2, h.sel.Len())

	h.apply(2, Select{Granularity: Point, Multi: true})
	assert.Equal(t, []selection.Region{selection.NewRegion(12, 15)}, h.sel.Regions())
}

func TestMultiPointClickOnSoleRegionCollapsesToCaret(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(2, Select{Granularity: Point, Multi: true})

	assert.Equal(t, []selection.Region{selection.Caret(2)}, h.sel.Regions())
}

func TestMultiPointClickOutsideRegionsAddsCaret(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(8, Select{Granularity: Point, Multi: true})

	assert.Equal(t, []selection.Region{
		selection.NewRegion(0, 5),
		selection.Caret(8),
	}, h.sel.Regions())
}

func TestSelectExtendGrowsActiveRegion(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Point})
	h.apply(8, SelectExtend{Granularity: Word})

	assert.Equal(t, []selection.Region{selection.NewRegion(2, 11)}, h.sel.Regions())
}

func TestSelectExtendBackward(t *testing.T) {
	h := newHarness(sample)
	h.apply(14, Select{Granularity: Point})
	h.apply(8, SelectExtend{Granularity: Word})

	// Extending to an earlier word still adopts that word's far edge,
	// yielding a reversed region anchored at the caret.
	got := h.sel.Regions()
	require.Len(t, got, 1)
	assert.Equal(t, 14, got[0].Start)
	assert.Equal(t, 11, got[0].End)
}

func TestSelectExtendOnEmptySelection(t *testing.T) {
	h := newHarness(sample)
	h.apply(8, SelectExtend{Granularity: Word})

	assert.Equal(t, 0, h.sel.Len())
	assert.Nil(t, h.drag)
}

func TestSelectExtendThenDragUsesExtensionAnchor(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Point})
	h.apply(8, SelectExtend{Granularity: Word})
	h.apply(14, Drag{})

	// The drag anchor is the extension's word, so dragging onward grows
	// the merged region from there.
	assert.Equal(t, []selection.Region{selection.NewRegion(2, 15)}, h.sel.Regions())
}

func TestUnknownGestureTypePanics(t *testing.T) {
	h := newHarness(sample)
	ctx := NewContext(h.text, h.sel, &h.drag)
	assert.Panics(t, func() {
		ctx.SelectionForGesture(0, nil)
	})
}

func TestDragClearsHorizHint(t *testing.T) {
	h := newHarness(sample)
	h.apply(2, Select{Granularity: Word})
	h.apply(8, Drag{})

	for _, r := range h.sel.Regions() {
		assert.Nil(t, r.Horiz)
	}
}
