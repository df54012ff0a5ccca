// Package i18n translates the short labels shown by the hosts.
package i18n

import (
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// EnvLanguage overrides the detected locale when set.
const EnvLanguage = "FOCUSCYCLE_LANG"

var (
	mu   sync.RWMutex
	lang = "en"
)

var translations = map[string]map[string]string{
	"Focusing":              {"pt": "Focando", "es": "Concentrado"},
	"On Break":              {"pt": "Em pausa", "es": "En descanso"},
	"Start":                 {"pt": "Iniciar", "es": "Iniciar"},
	"Pause":                 {"pt": "Pausar", "es": "Pausar"},
	"Resume":                {"pt": "Continuar", "es": "Reanudar"},
	"Stop":                  {"pt": "Parar", "es": "Detener"},
	"Quit":                  {"pt": "Sair", "es": "Salir"},
	"Preferences":           {"pt": "Preferências", "es": "Preferencias"},
	"Focus Duration":        {"pt": "Duração do foco", "es": "Duración del foco"},
	"Break Duration":        {"pt": "Duração da pausa", "es": "Duración del descanso"},
	"remaining":             {"pt": "restantes", "es": "restantes"},
	"minutes":               {"pt": "minutos", "es": "minutos"},
	"for":                   {"pt": "por", "es": "durante"},
	"PAUSED":                {"pt": "PAUSADO", "es": "EN PAUSA"},
	"Idle":                  {"pt": "Parado", "es": "Inactivo"},
	"Session complete":      {"pt": "Sessão concluída", "es": "Sesión completada"},
	"Time for a break":      {"pt": "Hora de uma pausa", "es": "Hora de descansar"},
	"Back to focus":         {"pt": "De volta ao foco", "es": "De vuelta al foco"},
	"Play sound":            {"pt": "Tocar som", "es": "Reproducir sonido"},
	"Desktop notifications": {"pt": "Notificações", "es": "Notificaciones"},
	"Start at login":        {"pt": "Iniciar com o sistema", "es": "Iniciar al arrancar"},
	"Save":                  {"pt": "Salvar", "es": "Guardar"},
	"Cancel":                {"pt": "Cancelar", "es": "Cancelar"},
	"Alerts":                {"pt": "Alertas", "es": "Alertas"},
	"System":                {"pt": "Sistema", "es": "Sistema"},
	"Language":              {"pt": "Idioma", "es": "Idioma"},
	"Volume":                {"pt": "Volume", "es": "Volumen"},
}

// Init selects the language from the override, then the system locale,
// falling back to English.
func Init(override string) string {
	selected := strings.TrimSpace(override)
	if selected == "" {
		selected = strings.TrimSpace(os.Getenv(EnvLanguage))
	}
	if selected == "" {
		if locales, err := locale.GetLocales(); err == nil && len(locales) > 0 {
			selected = locales[0]
		}
	}
	SetLang(selected)
	return GetLang()
}

// SetLang sets the active language from a locale tag such as "pt_BR" or "es".
func SetLang(tag string) {
	mu.Lock()
	defer mu.Unlock()
	lang = normalize(tag)
}

// GetLang returns the active language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

// T returns the translation of key, or key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func normalize(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	switch {
	case strings.HasPrefix(tag, "pt"):
		return "pt"
	case strings.HasPrefix(tag, "es"):
		return "es"
	default:
		return "en"
	}
}
