package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focuscycle/internal/i18n"
)

var languageOptions = []string{"auto", "en", "pt", "es"}

// Window handles the preferences UI. Durations are edited on the session
// window; this window holds the alert settings.
type Window struct {
	window       fyne.Window
	settings     Settings
	onSave       func(Settings)
	soundCheck   *widget.Check
	soundFile    *widget.Entry
	volume       *widget.Slider
	volumeLabel  *widget.Label
	desktopCheck *widget.Check
	loginCheck   *widget.Check
	language     *widget.Select
	headings     [3]*widget.Label
	volumeName   *widget.Label
	saveButton   *widget.Button
	cancelButton *widget.Button
}

// labels holds every translated string the window shows.
type labels struct {
	title    string
	sound    string
	desktop  string
	login    string
	headings [3]string
	volume   string
	save     string
	cancel   string
}

func currentLabels() labels {
	return labels{
		title:    "FocusCycle " + i18n.T("Preferences"),
		sound:    i18n.T("Play sound"),
		desktop:  i18n.T("Desktop notifications"),
		login:    i18n.T("Start at login"),
		headings: [3]string{i18n.T("Alerts"), i18n.T("System"), i18n.T("Language")},
		volume:   i18n.T("Volume"),
		save:     i18n.T("Save"),
		cancel:   i18n.T("Cancel"),
	}
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("")

	soundCheck := widget.NewCheck("", nil)
	soundFile := widget.NewEntry()
	soundFile.SetPlaceHolder("/path/to/chime.ogg")
	volumeLabel := widget.NewLabel("")
	volume := widget.NewSlider(MinVolume, MaxVolume)
	volume.Step = 0.5
	volume.OnChanged = func(value float64) {
		volumeLabel.SetText(volumeText(value))
	}
	desktopCheck := widget.NewCheck("", nil)
	loginCheck := widget.NewCheck("", nil)
	language := widget.NewSelect(languageOptions, nil)
	volumeName := widget.NewLabel("")
	var headings [3]*widget.Label
	for i := range headings {
		headings[i] = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	}

	form := container.NewVBox(
		headings[0],
		soundCheck,
		soundFile,
		container.NewBorder(nil, nil, volumeName, volumeLabel, volume),
		desktopCheck,
		headings[1],
		loginCheck,
		headings[2],
		language,
	)

	saveButton := widget.NewButton("", nil)
	cancelButton := widget.NewButton("", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 380))
	window.SetCloseIntercept(window.Hide)

	prefs := &Window{
		window:       window,
		onSave:       onSave,
		soundCheck:   soundCheck,
		soundFile:    soundFile,
		volume:       volume,
		volumeLabel:  volumeLabel,
		desktopCheck: desktopCheck,
		loginCheck:   loginCheck,
		language:     language,
		headings:     headings,
		volumeName:   volumeName,
		saveButton:   saveButton,
		cancelButton: cancelButton,
	}
	prefs.Relabel()
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Relabel redraws every caption in the current language.
func (prefs *Window) Relabel() {
	text := currentLabels()
	prefs.window.SetTitle(text.title)
	prefs.soundCheck.Text = text.sound
	prefs.soundCheck.Refresh()
	prefs.desktopCheck.Text = text.desktop
	prefs.desktopCheck.Refresh()
	prefs.loginCheck.Text = text.login
	prefs.loginCheck.Refresh()
	for i, heading := range prefs.headings {
		heading.SetText(text.headings[i])
	}
	prefs.volumeName.SetText(text.volume)
	prefs.saveButton.SetText(text.save)
	prefs.cancelButton.SetText(text.cancel)
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.soundCheck.SetChecked(settings.SoundEnabled)
	prefs.soundFile.SetText(settings.SoundFile)
	prefs.volume.Value = settings.Volume
	prefs.volume.Refresh()
	prefs.volumeLabel.SetText(volumeText(settings.Volume))
	prefs.desktopCheck.SetChecked(settings.DesktopNotifications)
	prefs.loginCheck.SetChecked(settings.LaunchAtLogin)
	if settings.Language == "" {
		prefs.language.SetSelected("auto")
	} else {
		prefs.language.SetSelected(settings.Language)
	}
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundEnabled = prefs.soundCheck.Checked
	settings.SoundFile = prefs.soundFile.Text
	settings.Volume = prefs.volume.Value
	settings.DesktopNotifications = prefs.desktopCheck.Checked
	settings.LaunchAtLogin = prefs.loginCheck.Checked
	settings.Language = prefs.language.Selected
	if settings.Language == "auto" {
		settings.Language = ""
	}

	prefs.settings = settings.Normalize()
	if prefs.onSave != nil {
		prefs.onSave(prefs.settings)
	}
	prefs.window.Hide()
}

func volumeText(value float64) string {
	return fmt.Sprintf("%+.1f", value)
}
