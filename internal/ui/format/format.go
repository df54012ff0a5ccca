// Package format renders durations and session labels for the hosts.
package format

import (
	"fmt"

	"focuscycle/internal/core/timekeeper"
	"focuscycle/internal/i18n"
)

// Seconds converts a number of seconds into mm:ss.
func Seconds(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}

// Minutes renders a whole number of minutes as mm:00.
func Minutes(minutes int) string {
	return Seconds(minutes * 60)
}

// Kind returns the translated label for a session kind.
func Kind(kind timekeeper.Kind) string {
	return i18n.T(string(kind))
}

// Title renders "Focusing for 25:00 minutes" for the current session, or an
// empty string when idle.
func Title(snapshot timekeeper.Snapshot) string {
	if snapshot.Session == nil {
		return ""
	}
	return fmt.Sprintf("%s %s %s %s",
		Kind(snapshot.Session.Kind),
		i18n.T("for"),
		Seconds(snapshot.Session.Total),
		i18n.T("minutes"),
	)
}

// Subtitle renders "07:17 remaining", with a paused marker when paused.
func Subtitle(snapshot timekeeper.Snapshot) string {
	if snapshot.Session == nil {
		return ""
	}
	subtitle := fmt.Sprintf("%s %s", Seconds(snapshot.Session.Remaining), i18n.T("remaining"))
	if snapshot.Paused() {
		subtitle = fmt.Sprintf("%s (%s)", subtitle, i18n.T("PAUSED"))
	}
	return subtitle
}

// Status renders a one-line summary for menus.
func Status(snapshot timekeeper.Snapshot) string {
	if snapshot.Session == nil {
		return i18n.T("Idle")
	}
	status := fmt.Sprintf("%s %s", Kind(snapshot.Session.Kind), Seconds(snapshot.Session.Remaining))
	if snapshot.Paused() {
		status = fmt.Sprintf("%s (%s)", status, i18n.T("PAUSED"))
	}
	return status
}

// FocusDuration renders the focus duration label.
func FocusDuration(snapshot timekeeper.Snapshot) string {
	return fmt.Sprintf("%s: %s", i18n.T("Focus Duration"), Minutes(snapshot.Durations.FocusMinutes))
}

// BreakDuration renders the break duration label.
func BreakDuration(snapshot timekeeper.Snapshot) string {
	return fmt.Sprintf("%s: %s", i18n.T("Break Duration"), Minutes(snapshot.Durations.BreakMinutes))
}
