package resources

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focuscycle/internal/core/timekeeper"
)

func TestIcon_Cached(t *testing.T) {
	first := Icon(IconFocusing)
	assert.Same(t, first, Icon(IconFocusing))
	assert.Equal(t, "focuscycle-focusing.svg", first.Name())
	assert.Contains(t, string(first.Content()), iconColors[IconFocusing])
}

func TestIcon_UnknownFallsBackToIdle(t *testing.T) {
	assert.Same(t, Icon(IconIdle), Icon("nope"))
}

func TestIcon_PausedHasMark(t *testing.T) {
	assert.Contains(t, string(Icon(IconPaused).Content()), "<rect")
	assert.NotContains(t, string(Icon(IconOnBreak).Content()), "<rect")
}

func TestIconName(t *testing.T) {
	focus := &timekeeper.Session{Kind: timekeeper.KindFocusing, Remaining: 10, Total: 60}
	rest := &timekeeper.Session{Kind: timekeeper.KindOnBreak, Remaining: 10, Total: 60}

	tests := []struct {
		name     string
		snapshot timekeeper.Snapshot
		want     string
	}{
		{name: "idle", snapshot: timekeeper.Snapshot{}, want: IconIdle},
		{name: "paused", snapshot: timekeeper.Snapshot{Session: focus}, want: IconPaused},
		{name: "focusing", snapshot: timekeeper.Snapshot{Session: focus, Running: true}, want: IconFocusing},
		{name: "on break", snapshot: timekeeper.Snapshot{Session: rest, Running: true}, want: IconOnBreak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IconName(tt.snapshot))
		})
	}
}
