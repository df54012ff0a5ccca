// Package resources provides the application and tray icons.
package resources

import (
	"fmt"
	"sync"

	"fyne.io/fyne/v2"

	"focuscycle/internal/core/timekeeper"
)

const iconTemplate = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 64 64">` +
	`<circle cx="32" cy="32" r="28" fill="none" stroke="%[1]s" stroke-width="6"/>` +
	`<path d="M32 14 V32 L44 40" fill="none" stroke="%[1]s" stroke-width="6" stroke-linecap="round"/>` +
	`%[2]s</svg>`

const pausedMark = `<rect x="40" y="40" width="6" height="18" fill="%[1]s"/>` +
	`<rect x="52" y="40" width="6" height="18" fill="%[1]s"/>`

// Icon names.
const (
	IconIdle     = "idle"
	IconFocusing = "focusing"
	IconOnBreak  = "on-break"
	IconPaused   = "paused"
)

var iconColors = map[string]string{
	IconIdle:     "#8A8A8A",
	IconFocusing: "#E4572E",
	IconOnBreak:  "#43BF6D",
	IconPaused:   "#F2A541",
}

var iconCache sync.Map

// Icon returns the named icon. Unknown names fall back to the idle icon.
func Icon(name string) fyne.Resource {
	if _, ok := iconColors[name]; !ok {
		name = IconIdle
	}
	if cached, ok := iconCache.Load(name); ok {
		return cached.(fyne.Resource)
	}

	color := iconColors[name]
	mark := ""
	if name == IconPaused {
		mark = fmt.Sprintf(pausedMark, color)
	}
	data := fmt.Sprintf(iconTemplate, color, mark)
	resource := fyne.NewStaticResource("focuscycle-"+name+".svg", []byte(data))
	actual, _ := iconCache.LoadOrStore(name, resource)
	return actual.(fyne.Resource)
}

// AppIcon returns the application icon.
func AppIcon() fyne.Resource {
	return Icon(IconFocusing)
}

// IconName picks the tray icon name for snapshot.
func IconName(snapshot timekeeper.Snapshot) string {
	switch {
	case snapshot.Session == nil:
		return IconIdle
	case !snapshot.Running:
		return IconPaused
	case snapshot.Session.Kind == timekeeper.KindOnBreak:
		return IconOnBreak
	default:
		return IconFocusing
	}
}
