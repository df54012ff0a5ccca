package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focuscycle/internal/core/model"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.DefaultDurations(), settings.Durations)
	assert.True(t, settings.SoundEnabled)
	assert.True(t, settings.DesktopNotifications)
	assert.Equal(t, settings, settings.Normalize())
}

func TestNormalize(t *testing.T) {
	settings := Settings{
		Durations: model.Durations{FocusMinutes: 120, BreakMinutes: 0},
		Volume:    9,
	}.Normalize()
	assert.Equal(t, model.Durations{FocusMinutes: 60, BreakMinutes: 1}, settings.Durations)
	assert.Equal(t, MaxVolume, settings.Volume)

	settings.Volume = -20
	assert.Equal(t, MinVolume, settings.Normalize().Volume)
}

func TestChimeConfig(t *testing.T) {
	settings := DefaultSettings()
	settings.SoundFile = "/tmp/bell.ogg"
	settings.Volume = -1
	config := settings.ChimeConfig()
	assert.Equal(t, "/tmp/bell.ogg", config.SoundFile)
	assert.Equal(t, -1.0, config.Volume)
}
