// internal/core/editor.go
package core

import (
	"bytes"
	"sync"

	"github.com/marka-dev/marka/internal/buffer"
	"github.com/marka-dev/marka/internal/clipboard"
	"github.com/marka-dev/marka/internal/event"
	"github.com/marka-dev/marka/internal/gesture"
	"github.com/marka-dev/marka/internal/logger"
	"github.com/marka-dev/marka/internal/selection"
)

// Editor owns the document, the selection and the in-flight drag
// state, plus the viewport over the document.
type Editor struct {
	mu sync.Mutex

	buffer    buffer.Buffer
	sel       *selection.Selection
	dragState *gesture.DragState

	ViewportY  int // top visible line index
	viewWidth  int
	viewHeight int // text rows, excluding the status bar
	scrollOff  int
	tabWidth   int

	clipboard    *clipboard.Manager
	eventManager *event.Manager
}

func NewEditor(buf buffer.Buffer, clip *clipboard.Manager, scrollOff, tabWidth int) *Editor {
	return &Editor{
		buffer:    buf,
		sel:       selection.New(),
		scrollOff: scrollOff,
		tabWidth:  tabWidth,
		clipboard: clip,
	}
}

// SetEventManager wires the bus used for selection notifications.
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

func (e *Editor) Buffer() buffer.Buffer {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffer
}

// Selection returns the current selection. Callers must not mutate it.
func (e *Editor) Selection() *selection.Selection {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sel
}

// ApplyGesture resolves a pointer gesture at the given byte offset,
// installs the resulting selection and scrolls the viewport so the
// primary region stays visible.
func (e *Editor) ApplyGesture(offset int, g gesture.Gesture) {
	e.mu.Lock()
	ctx := gesture.NewContext(e.buffer, e.sel, &e.dragState)
	newSel := ctx.SelectionForGesture(offset, g)
	changed := newSel != e.sel
	e.sel = newSel
	e.scrollToPrimaryLocked()
	primary, _ := e.sel.Last()
	count := e.sel.Len()
	e.mu.Unlock()

	if changed && e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeSelectionChanged,
			event.SelectionChangedData{Count: count, Primary: primary})
	}
}

// YankSelection copies all non-caret regions to the clipboard, joined
// by newlines in document order. It reports whether anything was
// yanked.
func (e *Editor) YankSelection() bool {
	e.mu.Lock()
	regions := e.sel.Regions()
	var parts [][]byte
	for _, r := range regions {
		if r.IsCaret() {
			continue
		}
		parts = append(parts, e.buffer.Slice(r.Min(), r.Max()))
	}
	e.mu.Unlock()

	if len(parts) == 0 {
		return false
	}
	content := bytes.Join(parts, []byte("\n"))
	e.clipboard.Write(content)
	logger.Debugf("Editor: yanked %d bytes from %d region(s)", len(content), len(parts))

	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeSelectionYanked,
			event.SelectionYankedData{Bytes: len(content), Regions: len(parts)})
	}
	return true
}
