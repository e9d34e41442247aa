// internal/core/view.go
package core

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// SetViewSize records the text area dimensions reported by the TUI.
func (e *Editor) SetViewSize(width, height int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.viewWidth = width
	e.viewHeight = height
	e.clampViewportLocked()
}

func (e *Editor) TabWidth() int {
	return e.tabWidth
}

// ScrollLines moves the viewport by delta lines (negative is up).
func (e *Editor) ScrollLines(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ViewportY += delta
	e.clampViewportLocked()
}

// ScrollPages moves the viewport by whole text pages.
func (e *Editor) ScrollPages(delta int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	page := e.viewHeight
	if page < 1 {
		page = 1
	}
	e.ViewportY += delta * page
	e.clampViewportLocked()
}

func (e *Editor) ScrollToTop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ViewportY = 0
}

func (e *Editor) ScrollToBottom() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ViewportY = e.buffer.LineCount() - 1
	e.clampViewportLocked()
}

// ScrollToPrimary keeps the active edge of the primary region inside
// the viewport, honoring the scroll-off margin.
func (e *Editor) ScrollToPrimary() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.scrollToPrimaryLocked()
}

func (e *Editor) scrollToPrimaryLocked() {
	primary, ok := e.sel.Last()
	if !ok || e.viewHeight <= 0 {
		return
	}
	line := e.buffer.LineOfOffset(primary.End)

	off := e.scrollOff
	if off*2 >= e.viewHeight {
		off = (e.viewHeight - 1) / 2
	}
	if line < e.ViewportY+off {
		e.ViewportY = line - off
	} else if line >= e.ViewportY+e.viewHeight-off {
		e.ViewportY = line - e.viewHeight + 1 + off
	}
	e.clampViewportLocked()
}

func (e *Editor) clampViewportLocked() {
	maxTop := e.buffer.LineCount() - 1
	if maxTop < 0 {
		maxTop = 0
	}
	if e.ViewportY > maxTop {
		e.ViewportY = maxTop
	}
	if e.ViewportY < 0 {
		e.ViewportY = 0
	}
}

// OffsetForCell maps a text-area cell (row below the viewport top,
// visual column) to a byte offset. Clicks past the end of a line land
// on the line's last valid offset; clicks below the last line land at
// the end of the document.
func (e *Editor) OffsetForCell(row, visualCol int) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	line := e.ViewportY + row
	if line < 0 {
		line = 0
	}
	if line >= e.buffer.LineCount() {
		return e.buffer.Len()
	}
	lineBytes, err := e.buffer.Line(line)
	if err != nil {
		return e.buffer.Len()
	}
	return e.buffer.OffsetOfLine(line) + columnToByteIndex(lineBytes, visualCol, e.tabWidth)
}

// columnToByteIndex walks grapheme clusters, expanding tabs, until the
// visual column is covered. A click inside a wide cluster maps to the
// cluster's start.
func columnToByteIndex(line []byte, visualCol, tabWidth int) int {
	col := 0
	idx := 0
	rest := line
	state := -1
	for len(rest) > 0 {
		var cluster []byte
		cluster, rest, _, state = uniseg.FirstGraphemeCluster(rest, state)

		w := runewidth.StringWidth(string(cluster))
		if cluster[0] == '\t' {
			w = tabWidth - (col % tabWidth)
		}
		if w < 1 {
			w = 1
		}
		if visualCol < col+w {
			return idx
		}
		col += w
		idx += len(cluster)
	}
	return idx
}
