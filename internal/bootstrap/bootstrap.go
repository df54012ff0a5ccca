// Package bootstrap assembles the session engine, settings and notifiers for
// the desktop and terminal hosts.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"focuscycle/internal/core/model"
	"focuscycle/internal/core/ticker"
	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/i18n"
	"focuscycle/internal/notify"
	"focuscycle/internal/platform"
	"focuscycle/internal/storage"
	"focuscycle/internal/ui/preferences"
)

const (
	// AppName names the config directory and the single-instance lock.
	AppName = "focuscycle"

	eventBuffer = 16
)

// Options are the host-independent command line options.
type Options struct {
	ConfigPath string
	Verbose    bool
	Silent     bool
}

// Env holds the loaded settings and the logger shared by a host.
type Env struct {
	Options Options
	Logger  *slog.Logger
	Path    string

	mu        sync.Mutex
	settings  preferences.Settings
	autostart Autostarter
}

// Autostarter registers the tray host as a login item.
type Autostarter interface {
	Enable() error
	Disable() error
	Enabled() (bool, error)
}

// NewLogger returns a text logger at info level, or debug when verbose.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// ResolvePath returns the explicit config path or the per-user default.
func ResolvePath(options Options) (string, error) {
	if options.ConfigPath != "" {
		return options.ConfigPath, nil
	}
	return storage.DefaultPath(AppName)
}

// Load resolves the settings path, reads the settings and selects the
// interface language.
func Load(options Options, logger *slog.Logger) (*Env, error) {
	path, err := ResolvePath(options)
	if err != nil {
		return nil, err
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return nil, err
	}

	lang := i18n.Init(settings.Language)
	logger.Debug("settings loaded", "path", path, "lang", lang,
		"focus_minutes", settings.Durations.FocusMinutes,
		"break_minutes", settings.Durations.BreakMinutes,
	)

	return &Env{
		Options:  options,
		Logger:   logger,
		Path:     path,
		settings: settings,
	}, nil
}

// Settings returns the current settings.
func (env *Env) Settings() preferences.Settings {
	env.mu.Lock()
	defer env.mu.Unlock()
	return env.settings
}

// SaveDurations stores new durations. Failures are logged; the engine keeps
// the new values either way.
func (env *Env) SaveDurations(durations model.Durations) {
	env.mu.Lock()
	env.settings.Durations = durations
	settings := env.settings
	env.mu.Unlock()
	env.save(settings)
}

// SetDurations validates and stores durations, returning any save error.
func (env *Env) SetDurations(durations model.Durations) error {
	if err := durations.Validate(); err != nil {
		return err
	}
	env.mu.Lock()
	env.settings.Durations = durations
	settings := env.settings
	env.mu.Unlock()
	return storage.SaveSettings(env.Path, settings)
}

// SaveSettings replaces and stores all settings, registering or removing the
// login item when LaunchAtLogin changed.
func (env *Env) SaveSettings(settings preferences.Settings) {
	settings = settings.Normalize()
	env.mu.Lock()
	previous := env.settings
	env.settings = settings
	env.mu.Unlock()
	i18n.Init(settings.Language)
	env.save(settings)

	if previous.LaunchAtLogin != settings.LaunchAtLogin {
		if err := env.SetAutostart(settings.LaunchAtLogin); err != nil {
			env.Logger.Warn("autostart update failed", "enabled", settings.LaunchAtLogin, "error", err)
		}
	}
}

// Autostart returns the login item for this executable's tray host.
func (env *Env) Autostart() (Autostarter, error) {
	env.mu.Lock()
	defer env.mu.Unlock()
	if env.autostart != nil {
		return env.autostart, nil
	}
	executable, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	item, err := platform.NewLoginItem(AppName, executable, "tray")
	if err != nil {
		return nil, err
	}
	env.autostart = item
	return item, nil
}

// SetLaunchAtLogin applies and stores the LaunchAtLogin setting.
func (env *Env) SetLaunchAtLogin(enabled bool) error {
	if err := env.SetAutostart(enabled); err != nil {
		return err
	}
	env.mu.Lock()
	env.settings.LaunchAtLogin = enabled
	settings := env.settings
	env.mu.Unlock()
	return storage.SaveSettings(env.Path, settings)
}

// SetAutostart registers or removes the login item.
func (env *Env) SetAutostart(enabled bool) error {
	autostart, err := env.Autostart()
	if err != nil {
		return err
	}
	if enabled {
		err = autostart.Enable()
	} else {
		err = autostart.Disable()
	}
	if err != nil {
		return err
	}
	env.Logger.Info("autostart updated", "enabled", enabled)
	return nil
}

func (env *Env) save(settings preferences.Settings) {
	if err := storage.SaveSettings(env.Path, settings); err != nil {
		env.Logger.Warn("save settings failed", "path", env.Path, "error", err)
		return
	}
	env.Logger.Debug("settings saved", "path", env.Path)
}

// NewKeeper creates a TimeKeeper driven by a one-second interval.
func (env *Env) NewKeeper(notifier timekeeper.Notifier) *timekeeper.TimeKeeper {
	return timekeeper.New(env.Settings().Durations, ticker.NewInterval(ticker.DefaultPeriod), timekeeper.Config{
		Logger:   env.Logger,
		Notifier: notifier,
	})
}

// Notifiers collects the non-nil notifiers into a Multi.
func Notifiers(notifiers ...timekeeper.Notifier) notify.Multi {
	var multi notify.Multi
	for _, notifier := range notifiers {
		if notifier == nil {
			continue
		}
		multi = append(multi, notifier)
	}
	return multi
}

// when wraps notifier so it only fires while enabled reports true for the
// current settings.
func (env *Env) when(enabled func(preferences.Settings) bool, notifier timekeeper.Notifier) timekeeper.Notifier {
	if notifier == nil {
		return nil
	}
	return notify.Func(func(ctx context.Context, completion timekeeper.Completion) error {
		if !enabled(env.Settings()) {
			return nil
		}
		return notifier.SessionComplete(ctx, completion)
	})
}

// Describe renders settings for `config show`.
func Describe(path string, settings preferences.Settings) string {
	sound := "off"
	if settings.SoundEnabled {
		sound = "on"
		if settings.SoundFile != "" {
			sound = settings.SoundFile
		}
	}
	lang := settings.Language
	if lang == "" {
		lang = "auto"
	}
	return fmt.Sprintf("path: %s\nfocus: %d min\nbreak: %d min\nsound: %s\nvolume: %+.1f\ndesktop notifications: %t\nlaunch at login: %t\nlanguage: %s\n",
		path,
		settings.Durations.FocusMinutes,
		settings.Durations.BreakMinutes,
		sound,
		settings.Volume,
		settings.DesktopNotifications,
		settings.LaunchAtLogin,
		lang,
	)
}
