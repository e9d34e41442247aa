// internal/clipboard/clipboard.go

// Package clipboard writes yanked text to the system clipboard,
// falling back to an internal register when no system clipboard is
// reachable (headless sessions, missing xclip/wl-copy).
package clipboard

import (
	"sync"

	"github.com/atotto/clipboard"

	"github.com/marka-dev/marka/internal/logger"
)

// Manager holds the yank register. All methods are safe for
// concurrent use.
type Manager struct {
	mu         sync.Mutex
	register   []byte
	systemDown bool
}

func NewManager() *Manager {
	return &Manager{}
}

// Write stores content in the register and mirrors it to the system
// clipboard when one is available. The register always succeeds;
// system clipboard failure is logged once and not treated as an error.
func (m *Manager) Write(content []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.register = append([]byte(nil), content...)

	if m.systemDown {
		return
	}
	if err := clipboard.WriteAll(string(content)); err != nil {
		m.systemDown = true
		logger.Warnf("Clipboard: system clipboard unavailable, using internal register: %v", err)
		return
	}
	logger.DebugTagf("clipboard", "wrote %d bytes to system clipboard", len(content))
}

// Read returns the register contents, preferring the system clipboard
// when it is reachable so text copied in other programs can be seen.
func (m *Manager) Read() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.systemDown {
		if s, err := clipboard.ReadAll(); err == nil {
			return []byte(s)
		}
	}
	return append([]byte(nil), m.register...)
}
