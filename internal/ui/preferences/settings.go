package preferences

import (
	"focuscycle/internal/core/model"
	"focuscycle/internal/notify"
)

// Volume bounds, as base-2 gain.
const (
	MinVolume = -4.0
	MaxVolume = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	Durations            model.Durations
	SoundEnabled         bool
	SoundFile            string
	Volume               float64
	DesktopNotifications bool
	LaunchAtLogin        bool
	Language             string
}

// DefaultSettings returns default settings for FocusCycle.
func DefaultSettings() Settings {
	return Settings{
		Durations:            model.DefaultDurations(),
		SoundEnabled:         true,
		Volume:               0,
		DesktopNotifications: true,
	}
}

// Normalize clamps every bounded value into range.
func (settings Settings) Normalize() Settings {
	settings.Durations = settings.Durations.Normalize()
	if settings.Volume < MinVolume {
		settings.Volume = MinVolume
	}
	if settings.Volume > MaxVolume {
		settings.Volume = MaxVolume
	}
	return settings
}

// ChimeConfig converts settings to a notify.ChimeConfig.
func (settings Settings) ChimeConfig() notify.ChimeConfig {
	return notify.ChimeConfig{
		SoundFile: settings.SoundFile,
		Volume:    settings.Volume,
	}
}
