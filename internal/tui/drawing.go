// internal/tui/drawing.go
package tui

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"

	"github.com/marka-dev/marka/internal/core"
	"github.com/marka-dev/marka/internal/logger"
	"github.com/marka-dev/marka/internal/selection"
)

const lineNumberPadding = 1

// GutterWidth returns the width of the line number gutter for a
// document with lineCount lines, or 0 when the screen is too narrow.
func GutterWidth(lineCount, screenWidth int) int {
	if lineCount < 1 {
		lineCount = 1
	}
	maxDigits := int(math.Log10(float64(lineCount))) + 1
	gutterWidth := maxDigits + lineNumberPadding
	if gutterWidth >= screenWidth {
		return 0
	}
	return gutterWidth
}

// offsetSelected reports whether a byte offset falls inside any of the
// given regions. Caret regions select nothing.
func offsetSelected(offset int, regions []selection.Region) bool {
	for _, r := range regions {
		if offset >= r.Min() && offset < r.Max() {
			return true
		}
	}
	return false
}

// offsetAtCaret reports whether a caret region sits exactly at offset.
func offsetAtCaret(offset int, regions []selection.Region) bool {
	for _, r := range regions {
		if r.IsCaret() && r.Start == offset {
			return true
		}
	}
	return false
}

// DrawBuffer draws the visible portion of the document, highlighting
// every selected region.
func DrawBuffer(tuiManager *TUI, editor *core.Editor) {
	styles := tuiManager.styles
	width, height := tuiManager.Size()
	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	if viewHeight <= 0 || width <= 0 {
		return
	}

	buf := editor.Buffer()
	sel := editor.Selection()
	viewY := editor.ViewportY
	tabWidth := editor.TabWidth()
	lineCount := buf.LineCount()

	gutterWidth := GutterWidth(lineCount, width)
	maxDigits := gutterWidth - lineNumberPadding
	textAreaWidth := width - gutterWidth

	primary, hasPrimary := sel.Last()
	primaryLine := -1
	if hasPrimary {
		primaryLine = buf.LineOfOffset(primary.End)
	}

	for screenY := 0; screenY < viewHeight; screenY++ {
		bufferLineIdx := screenY + viewY

		for fillX := 0; fillX < width; fillX++ {
			tuiManager.screen.SetContent(fillX, screenY, ' ', nil, styles.Default)
		}

		if bufferLineIdx < 0 || bufferLineIdx >= lineCount {
			continue
		}

		if gutterWidth > 0 {
			lineNumStyle := styles.LineNumber
			if bufferLineIdx == primaryLine {
				lineNumStyle = lineNumStyle.Bold(true)
			}
			lineNumStr := fmt.Sprintf("%*d", maxDigits, bufferLineIdx+1)
			for i, r := range lineNumStr {
				if i < maxDigits {
					tuiManager.screen.SetContent(i, screenY, r, nil, lineNumStyle)
				}
			}
		}

		lineBytes, err := buf.Line(bufferLineIdx)
		if err != nil {
			logger.Debugf("DrawBuffer: error getting line %d: %v", bufferLineIdx, err)
			continue
		}
		lineStart := buf.OffsetOfLine(bufferLineIdx)
		// Include the newline so a region spanning past the line end
		// still shows up here.
		lineRegions := sel.RegionsInRange(lineStart, lineStart+len(lineBytes)+1)

		gr := uniseg.NewGraphemes(string(lineBytes))
		visualX := 0
		byteIdx := 0
		for gr.Next() {
			clusterRunes := gr.Runes()
			clusterWidth := gr.Width()

			style := styles.Default
			if offsetSelected(lineStart+byteIdx, lineRegions) {
				style = styles.Selection
			}
			// Secondary carets get a block marker; the hardware cursor
			// only covers the primary region.
			if offsetAtCaret(lineStart+byteIdx, lineRegions) {
				style = styles.Caret
			}

			screenX := visualX + gutterWidth
			if clusterRunes[0] == '\t' {
				spaces := tabWidth - (visualX % tabWidth)
				for i := 0; i < spaces && screenX+i < width; i++ {
					tuiManager.screen.SetContent(screenX+i, screenY, ' ', nil, style)
				}
				clusterWidth = spaces
			} else if screenX < width {
				var combining []rune
				if len(clusterRunes) > 1 {
					combining = clusterRunes[1:]
				}
				tuiManager.screen.SetContent(screenX, screenY, clusterRunes[0], combining, style)
				for cw := 1; cw < clusterWidth && screenX+cw < width; cw++ {
					tuiManager.screen.SetContent(screenX+cw, screenY, ' ', nil, style)
				}
			}

			visualX += clusterWidth
			byteIdx += len(string(clusterRunes))
			if visualX >= textAreaWidth {
				break
			}
		}

		// Mark the newline cell when a region extends past the line end,
		// or a caret sits there.
		if visualX < textAreaWidth {
			endOffset := lineStart + len(lineBytes)
			if offsetAtCaret(endOffset, lineRegions) {
				tuiManager.screen.SetContent(visualX+gutterWidth, screenY, ' ', nil, styles.Caret)
			} else if offsetSelected(endOffset, lineRegions) {
				tuiManager.screen.SetContent(visualX+gutterWidth, screenY, ' ', nil, styles.Selection)
			}
		}
	}
}

// DrawCursor positions the terminal cursor at the active edge of the
// primary region.
func DrawCursor(tuiManager *TUI, editor *core.Editor) {
	buf := editor.Buffer()
	primary, ok := editor.Selection().Last()
	if !ok {
		tuiManager.screen.HideCursor()
		return
	}

	line := buf.LineOfOffset(primary.End)
	lineStart := buf.OffsetOfLine(line)
	lineBytes, err := buf.Line(line)
	if err != nil {
		tuiManager.screen.HideCursor()
		return
	}

	width, height := tuiManager.Size()
	gutterWidth := GutterWidth(buf.LineCount(), width)
	visualCol := visualColumnForByte(lineBytes, primary.End-lineStart, editor.TabWidth())

	screenX := visualCol + gutterWidth
	screenY := line - editor.ViewportY

	statusBarHeight := 1
	viewHeight := height - statusBarHeight
	if screenX < gutterWidth || screenX >= width || screenY < 0 || screenY >= viewHeight {
		tuiManager.screen.HideCursor()
		return
	}
	tuiManager.screen.ShowCursor(screenX, screenY)
}

// visualColumnForByte returns the visual column of a byte index within
// a line, expanding tabs.
func visualColumnForByte(line []byte, byteIdx, tabWidth int) int {
	visualX := 0
	idx := 0
	gr := uniseg.NewGraphemes(string(line))
	for gr.Next() {
		if idx >= byteIdx {
			break
		}
		clusterRunes := gr.Runes()
		w := gr.Width()
		if clusterRunes[0] == '\t' {
			w = tabWidth - (visualX % tabWidth)
		}
		visualX += w
		idx += len(string(clusterRunes))
	}
	return visualX
}
