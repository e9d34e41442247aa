// internal/input/keymap.go
package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/marka-dev/marka/internal/logger"
)

// Keymap maps special keys to actions.
type Keymap map[tcell.Key]Action

// RuneKeymap maps printable runes to actions.
type RuneKeymap map[rune]Action

// InputProcessor turns tcell key events into editor actions.
type InputProcessor struct {
	keymap     Keymap
	runeKeymap RuneKeymap
}

func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{
		keymap:     make(Keymap),
		runeKeymap: make(RuneKeymap),
	}
	p.loadDefaultBindings()
	return p
}

func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyEscape] = ActionQuit
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlC] = ActionYank
	p.keymap[tcell.KeyUp] = ActionScrollUp
	p.keymap[tcell.KeyDown] = ActionScrollDown
	p.keymap[tcell.KeyPgUp] = ActionPageUp
	p.keymap[tcell.KeyPgDn] = ActionPageDown
	p.keymap[tcell.KeyHome] = ActionScrollTop
	p.keymap[tcell.KeyEnd] = ActionScrollBottom

	p.runeKeymap['q'] = ActionQuit
	p.runeKeymap['y'] = ActionYank
	p.runeKeymap['k'] = ActionScrollUp
	p.runeKeymap['j'] = ActionScrollDown
	p.runeKeymap['g'] = ActionScrollTop
	p.runeKeymap['G'] = ActionScrollBottom
}

// ProcessEvent resolves a key event to an action, or ActionUnknown when
// the key is unbound.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	if ev.Key() == tcell.KeyRune {
		if action, ok := p.runeKeymap[ev.Rune()]; ok {
			return ActionEvent{Action: action}
		}
		logger.DebugTagf("input", "unbound rune %q", ev.Rune())
		return ActionEvent{Action: ActionUnknown}
	}

	if action, ok := p.keymap[ev.Key()]; ok {
		return ActionEvent{Action: action}
	}
	logger.DebugTagf("input", "unbound key %v", ev.Key())
	return ActionEvent{Action: ActionUnknown}
}
