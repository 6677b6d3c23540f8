package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ombank/teller/internal/domain"
)

func TestSet_ShowsSingleNotification(t *testing.T) {
	n := NewNotifier(DefaultTTL)
	defer n.Close()

	n.Set("Transfer successful!", domain.SeveritySuccess)

	current, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "Transfer successful!", current.Message)
	assert.Equal(t, domain.SeveritySuccess, current.Severity)
	assert.False(t, current.Expiry.IsZero())
}

func TestSet_ReplacesCurrentNotification(t *testing.T) {
	n := NewNotifier(DefaultTTL)
	defer n.Close()

	n.Set("first", domain.SeverityInfo)
	n.Set("second", domain.SeverityDanger)

	current, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "second", current.Message)
	assert.Equal(t, domain.SeverityDanger, current.Severity)
}

func TestAutoClear_ExpiresAfterTTL(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)
	defer n.Close()

	n.Set("gone soon", domain.SeverityInfo)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestSet_ReArmsTimerSoOldTimerCannotClearNewMessage(t *testing.T) {
	n := NewNotifier(100 * time.Millisecond)
	defer n.Close()

	n.Set("first", domain.SeverityInfo)
	time.Sleep(60 * time.Millisecond)
	n.Set("second", domain.SeverityInfo)

	// Past the first message's original expiry: the second must survive,
	// its own timer was re-armed from scratch.
	time.Sleep(60 * time.Millisecond)
	current, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "second", current.Message)

	assert.Eventually(t, func() bool {
		_, ok := n.Current()
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestClear_CancelsPendingTimer(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)

	n.Set("to be cleared", domain.SeverityInfo)
	n.Clear()

	_, ok := n.Current()
	assert.False(t, ok)

	// A message set right after teardown lives its full TTL; the stopped
	// timer from before the Clear cannot cut it short.
	n.Set("fresh", domain.SeveritySuccess)
	time.Sleep(30 * time.Millisecond)

	current, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "fresh", current.Message)
	n.Close()
}
