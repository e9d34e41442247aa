// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/marka-dev/marka/internal/config"
	"github.com/marka-dev/marka/internal/types"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleMessage   tcell.Style
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		StyleDefault:   tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue),
		StyleMessage:   tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlue).Bold(true),
		MessageTimeout: config.MessageTimeout,
	}
}

// StatusBar renders the status line: file name, primary selection span
// and region count, or a temporary message.
type StatusBar struct {
	config Config
	mu     sync.Mutex

	filePath     string
	primaryStart types.Position
	primaryEnd   types.Position
	primaryCaret bool
	regionCount  int

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(cfg Config) *StatusBar {
	return &StatusBar{config: cfg}
}

// SetFileInfo updates the file path shown in the status bar.
func (sb *StatusBar) SetFileInfo(path string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.filePath = path
}

// SetSelectionInfo updates the primary region span and region count.
func (sb *StatusBar) SetSelectionInfo(start, end types.Position, caret bool, count int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.primaryStart = start
	sb.primaryEnd = end
	sb.primaryCaret = caret
	sb.regionCount = count
}

// SetTemporaryMessage displays a message for a configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = time.Now()
}

// ResetTemporaryMessage clears any temporary message being displayed.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// getDefaultDisplayText builds the default status line text. Assumes
// the lock is held.
func (sb *StatusBar) getDefaultDisplayText() string {
	fPath := sb.filePath
	if fPath == "" {
		fPath = "[No Name]"
	}

	var span string
	if sb.primaryCaret {
		span = fmt.Sprintf("%d:%d", sb.primaryStart.Line+1, sb.primaryStart.Col+1)
	} else {
		span = fmt.Sprintf("%d:%d..%d:%d",
			sb.primaryStart.Line+1, sb.primaryStart.Col+1,
			sb.primaryEnd.Line+1, sb.primaryEnd.Col+1)
	}

	regions := ""
	if sb.regionCount > 1 {
		regions = fmt.Sprintf(" [%d regions]", sb.regionCount)
	}

	return fmt.Sprintf("%s -- %s%s", fPath, span, regions)
}

// Draw renders the status bar onto the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	isTempMsgActive := !sb.tempMessageTime.IsZero() && time.Since(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !isTempMsgActive {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}

	var style tcell.Style
	var text string
	if isTempMsgActive {
		text = sb.tempMessage
		style = sb.config.StyleMessage
	} else {
		text = sb.getDefaultDisplayText()
		style = sb.config.StyleDefault
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	// Draw text using uniseg for width calculation.
	gr := uniseg.NewGraphemes(text)
	currentX := 0
	for gr.Next() {
		clusterWidth := gr.Width()
		if currentX+clusterWidth > width {
			break
		}
		runes := gr.Runes()
		if len(runes) > 0 {
			var combining []rune
			if len(runes) > 1 {
				combining = runes[1:]
			}
			screen.SetContent(currentX, y, runes[0], combining, style)
		}
		currentX += clusterWidth
	}
}
