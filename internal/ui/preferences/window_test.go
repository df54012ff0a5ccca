package preferences

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"focuscycle/internal/i18n"
)

func TestCurrentLabels_FollowLanguage(t *testing.T) {
	t.Cleanup(func() { i18n.SetLang("en") })

	i18n.SetLang("en")
	english := currentLabels()
	assert.Equal(t, "FocusCycle Preferences", english.title)
	assert.Equal(t, [3]string{"Alerts", "System", "Language"}, english.headings)
	assert.Equal(t, "Save", english.save)

	i18n.SetLang("es")
	spanish := currentLabels()
	assert.Equal(t, "FocusCycle Preferencias", spanish.title)
	assert.Equal(t, "Reproducir sonido", spanish.sound)
	assert.Equal(t, "Volumen", spanish.volume)
	assert.Equal(t, "Guardar", spanish.save)
	assert.Equal(t, "Iniciar al arrancar", spanish.login)
}

func TestVolumeText(t *testing.T) {
	assert.Equal(t, "+0.0", volumeText(0))
	assert.Equal(t, "-1.5", volumeText(-1.5))
}
