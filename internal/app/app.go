// internal/app/app.go
package app

import (
	"fmt"

	"github.com/marka-dev/marka/internal/buffer"
	"github.com/marka-dev/marka/internal/clipboard"
	"github.com/marka-dev/marka/internal/config"
	"github.com/marka-dev/marka/internal/core"
	"github.com/marka-dev/marka/internal/event"
	"github.com/marka-dev/marka/internal/input"
	"github.com/marka-dev/marka/internal/logger"
	"github.com/marka-dev/marka/internal/statusbar"
	"github.com/marka-dev/marka/internal/tui"
)

// App encapsulates the core components and main loop of the viewer.
type App struct {
	tuiManager      *tui.TUI
	editor          *core.Editor
	statusBar       *statusbar.StatusBar
	eventManager    *event.Manager
	inputProcessor  *input.InputProcessor
	mouseTranslator *input.MouseTranslator
	filePath        string

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates and initializes a new application instance.
func NewApp(filePath string) (*App, error) {
	cfg := config.Get()

	tuiManager, err := tui.New(tui.DefaultStyles())
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	buf, err := buffer.Load(filePath)
	if err != nil {
		tuiManager.Close()
		return nil, fmt.Errorf("loading %q: %w", filePath, err)
	}

	clip := clipboard.NewManager()
	editor := core.NewEditor(buf, clip, cfg.Editor.ScrollOff, cfg.Editor.TabWidth)
	statusBar := statusbar.New(statusbar.DefaultConfig())
	eventManager := event.NewManager()
	editor.SetEventManager(eventManager)

	a := &App{
		tuiManager:     tuiManager,
		editor:         editor,
		statusBar:      statusBar,
		eventManager:   eventManager,
		inputProcessor: input.NewInputProcessor(),
		mouseTranslator: input.NewMouseTranslator(
			cfg.Mouse.DoubleClickInterval(),
			cfg.Mouse.ClickRadius,
		),
		filePath:      filePath,
		quit:          make(chan struct{}),
		redrawRequest: make(chan struct{}, 1),
	}

	eventManager.Subscribe(event.TypeSelectionChanged, a.handleSelectionChanged)
	eventManager.Subscribe(event.TypeSelectionYanked, a.handleSelectionYanked)

	width, height := tuiManager.Size()
	a.setViewSize(width, height)

	eventManager.Dispatch(event.TypeBufferLoaded,
		event.BufferLoadedData{FilePath: filePath, Bytes: buf.Len()})

	return a, nil
}

// Run starts the application's main event and drawing loops.
func (a *App) Run() error {
	defer a.tuiManager.Close()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetFileInfo(a.filePath)
	a.statusBar.SetTemporaryMessage("Marka - click/drag to select | y yank | q quit")
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application.")
			return nil
		case <-a.redrawRequest:
			w, h := a.tuiManager.Size()
			a.setViewSize(w, h)
			a.drawEditor()
		}
	}
}

// setViewSize tells the editor how many text rows and columns it has.
func (a *App) setViewSize(width, height int) {
	a.editor.SetViewSize(width, height-config.StatusBarHeight)
}

// drawEditor clears the screen and redraws all components.
func (a *App) drawEditor() {
	screen := a.tuiManager.GetScreen()
	width, height := a.tuiManager.Size()

	a.tuiManager.Clear()
	tui.DrawBuffer(a.tuiManager, a.editor)
	a.statusBar.Draw(screen, width, height)
	tui.DrawCursor(a.tuiManager, a.editor)
	a.tuiManager.Show()
}

// requestRedraw sends a redraw signal non-blockingly.
func (a *App) requestRedraw() {
	select {
	case a.redrawRequest <- struct{}{}:
	default: // a redraw is already pending
	}
}

func (a *App) signalQuit() {
	select {
	case <-a.quit:
	default:
		close(a.quit)
	}
}
