// internal/app/events.go
package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/marka-dev/marka/internal/event"
	"github.com/marka-dev/marka/internal/input"
	"github.com/marka-dev/marka/internal/tui"
)

const wheelScrollLines = 3

// eventLoop handles TUI events until the screen is closed.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false

		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.GetScreen().Sync()
			needsRedraw = true

		case *tcell.EventKey:
			needsRedraw = a.handleKeyEvent(eventData)

		case *tcell.EventMouse:
			needsRedraw = a.handleMouseEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	action := a.inputProcessor.ProcessEvent(ev)
	switch action.Action {
	case input.ActionQuit:
		a.signalQuit()
		return false
	case input.ActionYank:
		if !a.editor.YankSelection() {
			a.statusBar.SetTemporaryMessage("Nothing selected")
		}
		return true
	case input.ActionScrollUp:
		a.editor.ScrollLines(-1)
		return true
	case input.ActionScrollDown:
		a.editor.ScrollLines(1)
		return true
	case input.ActionPageUp:
		a.editor.ScrollPages(-1)
		return true
	case input.ActionPageDown:
		a.editor.ScrollPages(1)
		return true
	case input.ActionScrollTop:
		a.editor.ScrollToTop()
		return true
	case input.ActionScrollBottom:
		a.editor.ScrollToBottom()
		return true
	default:
		return false
	}
}

func (a *App) handleMouseEvent(ev *tcell.EventMouse) bool {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		a.editor.ScrollLines(-wheelScrollLines)
		return true
	case buttons&tcell.WheelDown != 0:
		a.editor.ScrollLines(wheelScrollLines)
		return true
	}

	pe, ok := a.mouseTranslator.Translate(ev)
	if !ok {
		return false
	}
	offset, inTextArea := a.offsetForScreenCell(pe.X, pe.Y)
	if !inTextArea {
		return false
	}
	a.editor.ApplyGesture(offset, pe.Gesture)
	return true
}

// offsetForScreenCell maps a screen cell to a byte offset, accounting
// for the line number gutter. Clicks on the status bar row map to
// nothing.
func (a *App) offsetForScreenCell(x, y int) (int, bool) {
	width, height := a.tuiManager.Size()
	if y >= height-1 {
		return 0, false
	}
	gutterWidth := tui.GutterWidth(a.editor.Buffer().LineCount(), width)
	col := x - gutterWidth
	if col < 0 {
		col = 0
	}
	return a.editor.OffsetForCell(y, col), true
}

// handleSelectionChanged pushes the new primary region to the status
// bar.
func (a *App) handleSelectionChanged(e event.Event) bool {
	data, ok := e.Data.(event.SelectionChangedData)
	if !ok {
		return false
	}
	buf := a.editor.Buffer()
	a.statusBar.SetSelectionInfo(
		buf.PositionForOffset(data.Primary.Start),
		buf.PositionForOffset(data.Primary.End),
		data.Primary.IsCaret(),
		data.Count,
	)
	a.requestRedraw()
	return false
}

func (a *App) handleSelectionYanked(e event.Event) bool {
	if data, ok := e.Data.(event.SelectionYankedData); ok {
		a.statusBar.SetTemporaryMessage("Yanked %d bytes from %d region(s)", data.Bytes, data.Regions)
		a.requestRedraw()
	}
	return false
}
