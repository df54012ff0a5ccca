// Package session renders the main FocusCycle window: duration controls,
// play/pause and stop, and the current session with its progress.
package session

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"focuscycle/internal/core/model"
	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/ui/format"
)

// Controls is the part of the TimeKeeper the window drives.
type Controls interface {
	TogglePause()
	Reset()
	IncreaseFocus() bool
	DecreaseFocus() bool
	IncreaseBreak() bool
	DecreaseBreak() bool
	Snapshot() timekeeper.Snapshot
}

// Window manages the main session UI.
type Window struct {
	window      fyne.Window
	controls    Controls
	onDurations func(model.Durations)

	focusLabel    *widget.Label
	breakLabel    *widget.Label
	focusDown     *widget.Button
	focusUp       *widget.Button
	breakDown     *widget.Button
	breakUp       *widget.Button
	playButton    *widget.Button
	stopButton    *widget.Button
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	progress      *widget.ProgressBar
	sessionInfo   *fyne.Container
}

// New creates the session window. onDurations is called after every accepted
// duration change.
func New(app fyne.App, controls Controls, onDurations func(model.Durations)) *Window {
	window := app.NewWindow("FocusCycle")

	session := &Window{
		window:        window,
		controls:      controls,
		onDurations:   onDurations,
		focusLabel:    widget.NewLabel(""),
		breakLabel:    widget.NewLabel(""),
		titleLabel:    widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		subtitleLabel: widget.NewLabel(""),
		progress:      widget.NewProgressBar(),
	}
	session.progress.TextFormatter = func() string { return "" }

	session.focusDown = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		session.changeDuration(controls.DecreaseFocus)
	})
	session.focusUp = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		session.changeDuration(controls.IncreaseFocus)
	})
	session.breakDown = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		session.changeDuration(controls.DecreaseBreak)
	})
	session.breakUp = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		session.changeDuration(controls.IncreaseBreak)
	})
	session.playButton = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		controls.TogglePause()
		session.Render(controls.Snapshot())
	})
	session.stopButton = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		controls.Reset()
		session.Render(controls.Snapshot())
	})

	durations := container.NewHBox(
		session.focusLabel, session.focusDown, session.focusUp,
		layout.NewSpacer(),
		session.breakLabel, session.breakDown, session.breakUp,
	)
	buttons := container.NewHBox(session.playButton, session.stopButton)
	session.sessionInfo = container.NewVBox(session.titleLabel, session.subtitleLabel, session.progress)

	window.SetContent(container.NewVBox(durations, buttons, session.sessionInfo))
	window.Resize(fyne.NewSize(520, 220))
	window.SetCloseIntercept(window.Hide)

	session.Render(controls.Snapshot())
	return session
}

// Show displays the window.
func (session *Window) Show() {
	session.window.Show()
	session.window.RequestFocus()
}

// Render refreshes every widget from snapshot. Call on the fyne goroutine.
func (session *Window) Render(snapshot timekeeper.Snapshot) {
	session.focusLabel.SetText(format.FocusDuration(snapshot))
	session.breakLabel.SetText(format.BreakDuration(snapshot))
	setEnabled(snapshot.DurationsEditable(), session.focusDown, session.focusUp, session.breakDown, session.breakUp)
	setEnabled(snapshot.CanReset(), session.stopButton)

	if snapshot.Running {
		session.playButton.SetIcon(theme.MediaPauseIcon())
	} else {
		session.playButton.SetIcon(theme.MediaPlayIcon())
	}

	if snapshot.Idle() {
		session.sessionInfo.Hide()
		return
	}
	session.titleLabel.SetText(format.Title(snapshot))
	session.subtitleLabel.SetText(format.Subtitle(snapshot))
	session.progress.SetValue(snapshot.Progress())
	session.sessionInfo.Show()
}

func (session *Window) changeDuration(change func() bool) {
	if !change() {
		return
	}
	snapshot := session.controls.Snapshot()
	session.Render(snapshot)
	if session.onDurations != nil {
		session.onDurations(snapshot.Durations)
	}
}

func setEnabled(enabled bool, buttons ...*widget.Button) {
	for _, button := range buttons {
		if enabled {
			button.Enable()
		} else {
			button.Disable()
		}
	}
}
