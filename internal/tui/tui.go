// internal/tui/tui.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Styles groups the tcell styles used when drawing the text area.
type Styles struct {
	Default    tcell.Style
	LineNumber tcell.Style
	Selection  tcell.Style
	Caret      tcell.Style
}

// DefaultStyles returns the built-in color scheme.
func DefaultStyles() Styles {
	return Styles{
		Default:    tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorReset),
		LineNumber: tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorReset),
		Selection:  tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver),
		Caret:      tcell.StyleDefault.Reverse(true),
	}
}

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen tcell.Screen
	styles Styles
}

// New creates and initializes a new TUI instance.
func New(styles Styles) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(styles.Default)
	s.EnableMouse()

	return &TUI{screen: s, styles: styles}, nil
}

// Close finalizes the tcell screen.
func (t *TUI) Close() {
	if t.screen != nil {
		t.screen.Fini()
	}
}

// PollEvent retrieves the next event.
func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

// Clear clears the entire screen.
func (t *TUI) Clear() {
	t.screen.Clear()
}

// Show makes the changes visible.
func (t *TUI) Show() {
	t.screen.Show()
}

// Size returns the width and height of the terminal screen.
func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
