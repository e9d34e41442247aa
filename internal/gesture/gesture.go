// internal/gesture/gesture.go

// Package gesture resolves classified pointer gestures (click, multi-click,
// shift-click, drag) against a text snapshot into concrete multi-region
// selections. It owns no state of its own: the caller holds the authoritative
// selection and a single drag-state slot, and builds a fresh Context per event.
package gesture

import "github.com/marka-dev/marka/internal/selection"

// Granularity determines how a single offset expands into a region.
type Granularity int

const (
	// Point selects a caret at the offset.
	Point Granularity = iota
	// Word selects the word (or inter-word span) containing the offset.
	Word
	// Line selects the whole line containing the offset, trailing newline included.
	Line
)

// String returns a readable name for logs.
func (g Granularity) String() string {
	switch g {
	case Point:
		return "point"
	case Word:
		return "word"
	case Line:
		return "line"
	default:
		return "unknown"
	}
}

// Gesture is the closed vocabulary of pointer gestures this package resolves.
// The upstream classifier is contractually responsible for never presenting
// anything outside Select, SelectExtend and Drag.
type Gesture interface {
	isGesture()
}

// Select starts a new selection (or adds to it when Multi is set) at the
// gesture's granularity. It begins a drag sequence.
type Select struct {
	Granularity Granularity
	Multi       bool
}

// SelectExtend extends the most recent region toward the offset, as a
// shift-click does. It also begins a drag sequence.
type SelectExtend struct {
	Granularity Granularity
}

// Drag continues the drag sequence begun by the last Select or SelectExtend.
type Drag struct{}

func (Select) isGesture()       {}
func (SelectExtend) isGesture() {}
func (Drag) isGesture()         {}

// DragState captures the context needed to resolve every subsequent move
// event of one continuous drag without recomputing from history. It is
// created by Select/SelectExtend, read-only for the whole drag, and disposed
// of by the caller when the pointer is released.
type DragState struct {
	// baseSel is the selection snapshot taken when the drag started.
	baseSel *selection.Selection

	// min, max span the region selected when the drag started (the region
	// is assumed to be forward).
	min int
	max int

	granularity Granularity
}

// Base returns the selection snapshot taken at gesture start.
func (d *DragState) Base() *selection.Selection {
	return d.baseSel
}

// Min returns the start of the anchor span.
func (d *DragState) Min() int {
	return d.min
}

// Max returns the end of the anchor span.
func (d *DragState) Max() int {
	return d.max
}

// Granularity returns the granularity frozen for the duration of the drag.
func (d *DragState) Granularity() Granularity {
	return d.granularity
}
