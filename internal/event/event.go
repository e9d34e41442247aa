// internal/event/event.go
package event

import "github.com/marka-dev/marka/internal/selection"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Core Events
	TypeBufferLoaded     // Fired after a buffer snapshot is loaded
	TypeSelectionChanged // Fired when a gesture produces a new selection
	TypeSelectionYanked  // Fired after the selection is copied to the clipboard

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// BufferLoadedData contains info about the loaded buffer.
type BufferLoadedData struct {
	FilePath string
	Bytes    int
}

// SelectionChangedData carries the new selection state.
type SelectionChangedData struct {
	Count   int              // number of regions
	Primary selection.Region // the most recently positioned region
}

// SelectionYankedData reports how much text a yank captured.
type SelectionYankedData struct {
	Bytes   int
	Regions int
}

// AppQuitData could contain exit code or reason later.
type AppQuitData struct{}

// AppReadyData could contain initial config or state later.
type AppReadyData struct{}
