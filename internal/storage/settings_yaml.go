package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"focuscycle/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes         int     `yaml:"focus_minutes"`
	BreakMinutes         int     `yaml:"break_minutes"`
	SoundEnabled         *bool   `yaml:"sound_enabled"`
	SoundFile            string  `yaml:"sound_file,omitempty"`
	Volume               float64 `yaml:"volume"`
	DesktopNotifications *bool   `yaml:"desktop_notifications"`
	LaunchAtLogin        bool    `yaml:"launch_at_login"`
	Language             string  `yaml:"language,omitempty"`
}

// DefaultPath returns the settings file location under the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

// LoadSettings reads user preferences from YAML.
// If the file does not exist, default settings are returned. Out-of-range
// values are clamped.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalize(), nil
}

// SaveSettings writes user preferences to YAML.
func SaveSettings(path string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Normalize()
	fileData := yamlSettings{
		FocusMinutes:         settings.Durations.FocusMinutes,
		BreakMinutes:         settings.Durations.BreakMinutes,
		SoundEnabled:         &settings.SoundEnabled,
		SoundFile:            settings.SoundFile,
		Volume:               settings.Volume,
		DesktopNotifications: &settings.DesktopNotifications,
		LaunchAtLogin:        settings.LaunchAtLogin,
		Language:             settings.Language,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.FocusMinutes != 0 {
		settings.Durations.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.BreakMinutes != 0 {
		settings.Durations.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.SoundEnabled != nil {
		settings.SoundEnabled = *fileData.SoundEnabled
	}
	if fileData.DesktopNotifications != nil {
		settings.DesktopNotifications = *fileData.DesktopNotifications
	}

	settings.LaunchAtLogin = fileData.LaunchAtLogin
	settings.SoundFile = fileData.SoundFile
	settings.Volume = fileData.Volume
	settings.Language = fileData.Language
}
