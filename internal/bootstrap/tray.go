package bootstrap

import (
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"focuscycle/internal/notify"
	"focuscycle/internal/platform"
	"focuscycle/internal/ui/preferences"
	"focuscycle/internal/ui/session"
	"focuscycle/internal/ui/tray"
	"focuscycle/resources"
)

const appID = "io.focuscycle.app"

// ErrTrayUnsupported is returned when the fyne driver has no system tray.
var ErrTrayUnsupported = errors.New("system tray unsupported on this platform")

// RunTray runs the desktop host: a session window plus a tray menu. It blocks
// until the user quits.
func RunTray(env *Env) error {
	lock, err := platform.AcquireInstanceLock(AppName)
	if err != nil {
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	fyneApp := app.NewWithID(appID)
	fyneApp.SetIcon(resources.AppIcon())
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		return ErrTrayUnsupported
	}

	keeper := env.NewKeeper(Notifiers(
		env.Chime(),
		env.when(desktopEnabled, notify.NewDesktop(fyneApp)),
	))
	defer keeper.Close()

	sessionWindow := session.New(fyneApp, keeper, env.SaveDurations)
	var prefsWindow *preferences.Window
	var trayManager *tray.Manager
	prefsWindow = preferences.New(fyneApp, env.Settings(), func(settings preferences.Settings) {
		env.SaveSettings(settings)
		snapshot := keeper.Snapshot()
		prefsWindow.Relabel()
		trayManager.Relabel(snapshot)
		sessionWindow.Render(snapshot)
	})
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnShow:        sessionWindow.Show,
		OnTogglePause: keeper.TogglePause,
		OnStop:        keeper.Reset,
		OnPreferences: prefsWindow.Show,
		OnQuit: func() {
			keeper.Close()
			fyneApp.Quit()
		},
	})

	icon := resources.IconName(keeper.Snapshot())
	desktopApp.SetSystemTrayIcon(resources.Icon(icon))

	events := keeper.Subscribe(eventBuffer)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				sessionWindow.Render(snapshot)
				trayManager.SetSnapshot(snapshot)
				if name := resources.IconName(snapshot); name != icon {
					icon = name
					desktopApp.SetSystemTrayIcon(resources.Icon(name))
				}
			})
		}
	}()

	env.Logger.Info("tray started", "settings", env.Path, "lock", lock.Address())
	sessionWindow.Show()
	fyneApp.Run()
	return nil
}

func desktopEnabled(settings preferences.Settings) bool {
	return settings.DesktopNotifications
}
