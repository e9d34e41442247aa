// internal/input/action.go
package input

// Action identifies an editor command produced by a key press.
type Action int

const (
	ActionUnknown Action = iota
	ActionQuit
	ActionYank
	ActionScrollUp
	ActionScrollDown
	ActionPageUp
	ActionPageDown
	ActionScrollTop
	ActionScrollBottom
)

// ActionEvent is a resolved key action.
type ActionEvent struct {
	Action Action
}

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionYank:
		return "yank"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionPageUp:
		return "page-up"
	case ActionPageDown:
		return "page-down"
	case ActionScrollTop:
		return "scroll-top"
	case ActionScrollBottom:
		return "scroll-bottom"
	default:
		return "unknown"
	}
}
