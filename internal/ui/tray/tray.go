package tray

import (
	"fyne.io/fyne/v2"

	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/i18n"
	"focuscycle/internal/ui/format"
)

// Tray is the part of desktop.App the manager needs.
type Tray interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnTogglePause func()
	OnStop        func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        Tray
	menu       *fyne.Menu
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	stopItem   *fyne.MenuItem
	prefsItem  *fyne.MenuItem
	quitItem   *fyne.MenuItem
	callbacks  Callbacks
}

// New creates a tray manager with the provided callbacks.
func New(app Tray, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnTogglePause))
	manager.stopItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnStop))
	manager.prefsItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnPreferences))
	manager.quitItem = fyne.NewMenuItem("", invoke(&manager.callbacks.OnQuit))
	manager.quitItem.IsQuit = true

	show := fyne.NewMenuItem("FocusCycle", invoke(&manager.callbacks.OnShow))

	manager.menu = fyne.NewMenu("FocusCycle",
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		show,
		manager.toggleItem,
		manager.stopItem,
		fyne.NewMenuItemSeparator(),
		manager.prefsItem,
		manager.quitItem,
	)
	manager.Relabel(timekeeper.Snapshot{})

	return manager
}

// SetSnapshot updates the status line and the play/pause/stop items.
func (manager *Manager) SetSnapshot(snapshot timekeeper.Snapshot) {
	manager.statusItem.Label = format.Status(snapshot)
	manager.toggleItem.Label = ToggleLabel(snapshot)
	manager.stopItem.Disabled = !snapshot.CanReset()
	manager.refreshMenu()
}

// Relabel translates the fixed items into the current language and redraws
// the menu for snapshot.
func (manager *Manager) Relabel(snapshot timekeeper.Snapshot) {
	manager.stopItem.Label = i18n.T("Stop")
	manager.prefsItem.Label = i18n.T("Preferences")
	manager.quitItem.Label = i18n.T("Quit")
	manager.SetSnapshot(snapshot)
}

// ToggleLabel returns the label of the play/pause item for snapshot.
func ToggleLabel(snapshot timekeeper.Snapshot) string {
	switch {
	case snapshot.Running:
		return i18n.T("Pause")
	case snapshot.Paused():
		return i18n.T("Resume")
	default:
		return i18n.T("Start")
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.menu)
	}
}

func invoke(callback *func()) func() {
	return func() {
		if *callback != nil {
			(*callback)()
		}
	}
}
