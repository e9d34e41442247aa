package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marka-dev/marka/internal/buffer"
	"github.com/marka-dev/marka/internal/clipboard"
	"github.com/marka-dev/marka/internal/core"
	"github.com/marka-dev/marka/internal/event"
	"github.com/marka-dev/marka/internal/gesture"
	"github.com/marka-dev/marka/internal/selection"
)

const sample = "hello world\nfoo bar\n"

func newEditor(text string) *core.Editor {
	buf := buffer.NewSnapshotString(text)
	return core.NewEditor(buf, clipboard.NewManager(), 3, 4)
}

func TestApplyGestureInstallsSelection(t *testing.T) {
	ed := newEditor(sample)
	ed.ApplyGesture(2, gesture.Select{Granularity: gesture.Word})

	assert.Equal(t, []selection.Region{selection.NewRegion(0, 5)}, ed.Selection().Regions())
}

func TestApplyGestureDispatchesSelectionChanged(t *testing.T) {
	ed := newEditor(sample)
	mgr := event.NewManager()
	ed.SetEventManager(mgr)

	var got event.SelectionChangedData
	mgr.Subscribe(event.TypeSelectionChanged, func(e event.Event) bool {
		got, _ = e.Data.(event.SelectionChangedData)
		return false
	})

	ed.ApplyGesture(14, gesture.Select{Granularity: gesture.Word})
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, selection.NewRegion(12, 15), got.Primary)
}

func TestDragSequenceThroughEditor(t *testing.T) {
	ed := newEditor(sample)
	ed.ApplyGesture(2, gesture.Select{Granularity: gesture.Word})
	ed.ApplyGesture(8, gesture.Drag{})

	assert.Equal(t, []selection.Region{selection.NewRegion(0, 11)}, ed.Selection().Regions())
}

func TestYankSelection(t *testing.T) {
	ed := newEditor(sample)
	ed.ApplyGesture(2, gesture.Select{Granularity: gesture.Word})
	ed.ApplyGesture(14, gesture.Select{Granularity: gesture.Word, Multi: true})

	require.True(t, ed.YankSelection())
}

func TestYankSelectionSkipsCarets(t *testing.T) {
	ed := newEditor(sample)
	ed.ApplyGesture(2, gesture.Select{Granularity: gesture.Point})

	assert.False(t, ed.YankSelection())
}

func TestYankDispatchesEvent(t *testing.T) {
	ed := newEditor(sample)
	mgr := event.NewManager()
	ed.SetEventManager(mgr)

	var got event.SelectionYankedData
	mgr.Subscribe(event.TypeSelectionYanked, func(e event.Event) bool {
		got, _ = e.Data.(event.SelectionYankedData)
		return false
	})

	ed.ApplyGesture(2, gesture.Select{Granularity: gesture.Word})
	ed.ApplyGesture(14, gesture.Select{Granularity: gesture.Word, Multi: true})
	require.True(t, ed.YankSelection())

	assert.Equal(t, 2, got.Regions)
	// "hello" and "foo" joined by a newline.
	assert.Equal(t, 9, got.Bytes)
}

func TestOffsetForCell(t *testing.T) {
	ed := newEditor(sample)
	ed.SetViewSize(80, 24)

	tests := []struct {
		name     string
		row, col int
		want     int
	}{
		{"first line start", 0, 0, 0},
		{"within first line", 0, 3, 3},
		{"second line start", 1, 0, 12},
		{"past end of line clamps", 1, 100, 19},
		{"below last line lands at EOF", 10, 0, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ed.OffsetForCell(tt.row, tt.col))
		})
	}
}

func TestOffsetForCellExpandsTabs(t *testing.T) {
	ed := newEditor("a\tbc\n")
	ed.SetViewSize(80, 24)

	// 'a' occupies column 0, the tab columns 1-3, 'b' column 4.
	assert.Equal(t, 1, ed.OffsetForCell(0, 2), "click inside the tab")
	assert.Equal(t, 2, ed.OffsetForCell(0, 4), "click on b")
}

func TestOffsetForCellRespectsViewport(t *testing.T) {
	ed := newEditor(sample)
	ed.SetViewSize(80, 24)
	ed.ScrollLines(1)

	assert.Equal(t, 12, ed.OffsetForCell(0, 0))
}

func TestScrollClamps(t *testing.T) {
	ed := newEditor(sample)
	ed.SetViewSize(80, 24)

	ed.ScrollLines(-5)
	assert.Equal(t, 0, ed.ViewportY)

	ed.ScrollLines(100)
	assert.Equal(t, 2, ed.ViewportY)

	ed.ScrollToTop()
	assert.Equal(t, 0, ed.ViewportY)

	ed.ScrollToBottom()
	assert.Equal(t, 2, ed.ViewportY)
}

func TestApplyGestureFollowsPrimary(t *testing.T) {
	lines := ""
	for i := 0; i < 100; i++ {
		lines += "line\n"
	}
	ed := newEditor(lines)
	ed.SetViewSize(80, 10)

	// A click far below the viewport pulls it down, keeping the
	// scroll-off margin under the cursor line.
	ed.ApplyGesture(250, gesture.Select{Granularity: gesture.Point}) // line 50
	assert.Equal(t, 44, ed.ViewportY)

	// Clicking back on the first line scrolls to the top.
	ed.ApplyGesture(0, gesture.Select{Granularity: gesture.Point})
	assert.Equal(t, 0, ed.ViewportY)
}

func TestScrollPages(t *testing.T) {
	lines := ""
	for i := 0; i < 100; i++ {
		lines += "line\n"
	}
	ed := newEditor(lines)
	ed.SetViewSize(80, 10)

	ed.ScrollPages(1)
	assert.Equal(t, 10, ed.ViewportY)
	ed.ScrollPages(1)
	assert.Equal(t, 20, ed.ViewportY)
	ed.ScrollPages(-1)
	assert.Equal(t, 10, ed.ViewportY)
}
