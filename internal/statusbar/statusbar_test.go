// internal/statusbar/statusbar_test.go
package statusbar

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marka-dev/marka/internal/config"
)

func TestDefaultConfigUsesSharedTimeout(t *testing.T) {
	assert.Equal(t, config.MessageTimeout, DefaultConfig().MessageTimeout)
}

func TestTemporaryMessageLifecycle(t *testing.T) {
	sb := New(DefaultConfig())
	sb.SetTemporaryMessage("yanked %d bytes", 9)

	sb.mu.Lock()
	assert.Equal(t, "yanked 9 bytes", sb.tempMessage)
	assert.False(t, sb.tempMessageTime.IsZero())
	sb.mu.Unlock()

	sb.ResetTemporaryMessage()
	sb.mu.Lock()
	assert.Empty(t, sb.tempMessage)
	assert.True(t, sb.tempMessageTime.IsZero())
	sb.mu.Unlock()
}
