// internal/input/mouse.go
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/marka-dev/marka/internal/gesture"
	"github.com/marka-dev/marka/internal/logger"
)

// PointerEvent is a classified pointer gesture at a screen cell.
type PointerEvent struct {
	Gesture gesture.Gesture
	X, Y    int
}

// clickTracker counts consecutive clicks that land close together in
// time and space. The count wraps after a triple click so a fourth
// click starts a fresh single click.
type clickTracker struct {
	maxInterval time.Duration
	maxDistance int

	lastX, lastY int
	lastTime     time.Time
	count        int
}

func (t *clickTracker) record(x, y int, when time.Time) int {
	dist := abs(x-t.lastX) + abs(y-t.lastY)
	if t.count > 0 && when.Sub(t.lastTime) <= t.maxInterval && dist <= t.maxDistance {
		t.count++
		if t.count > 3 {
			t.count = 1
		}
	} else {
		t.count = 1
	}
	t.lastX, t.lastY = x, y
	t.lastTime = when
	return t.count
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// MouseTranslator turns tcell mouse events into pointer gestures.
// Wheel events are not its concern; callers inspect the button mask
// for those before translating.
type MouseTranslator struct {
	clicks      clickTracker
	button1Down bool
	dragX       int
	dragY       int
}

func NewMouseTranslator(doubleClickInterval time.Duration, clickRadius int) *MouseTranslator {
	return &MouseTranslator{
		clicks: clickTracker{
			maxInterval: doubleClickInterval,
			maxDistance: clickRadius,
		},
	}
}

func granularityForCount(count int) gesture.Granularity {
	switch count {
	case 2:
		return gesture.Word
	case 3:
		return gesture.Line
	default:
		return gesture.Point
	}
}

// Translate classifies a mouse event. It reports false for events that
// carry no gesture: button releases, motion without the primary button,
// and motion that stays within the same cell.
func (t *MouseTranslator) Translate(ev *tcell.EventMouse) (PointerEvent, bool) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	if !pressed {
		t.button1Down = false
		return PointerEvent{}, false
	}

	if t.button1Down {
		if x == t.dragX && y == t.dragY {
			return PointerEvent{}, false
		}
		t.dragX, t.dragY = x, y
		return PointerEvent{Gesture: gesture.Drag{}, X: x, Y: y}, true
	}

	t.button1Down = true
	t.dragX, t.dragY = x, y
	count := t.clicks.record(x, y, ev.When())
	granularity := granularityForCount(count)
	mod := ev.Modifiers()

	var g gesture.Gesture
	if mod&tcell.ModShift != 0 {
		g = gesture.SelectExtend{Granularity: granularity}
	} else {
		multi := mod&(tcell.ModCtrl|tcell.ModMeta) != 0
		g = gesture.Select{Granularity: granularity, Multi: multi}
	}
	logger.DebugTagf("input", "pointer %T at (%d,%d) clicks=%d", g, x, y, count)
	return PointerEvent{Gesture: g, X: x, Y: y}, true
}
