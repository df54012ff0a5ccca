//go:build linux || freebsd || openbsd || netbsd

package platform

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginItem_DesktopEntryLifecycle(t *testing.T) {
	item, err := NewLoginItem("FocusCycle", "/opt/focus cycle/focuscycle", "tray")
	require.NoError(t, err)
	item.root = t.TempDir()

	enabled, err := item.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)

	require.NoError(t, item.Enable())
	enabled, err = item.Enabled()
	require.NoError(t, err)
	assert.True(t, enabled)

	data, err := os.ReadFile(filepath.Join(item.root, "autostart", "focuscycle.desktop"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Name=FocusCycle\n")
	assert.Contains(t, string(data), "Exec=\"/opt/focus cycle/focuscycle\" tray\n")

	require.NoError(t, item.Disable())
	require.NoError(t, item.Disable())
	enabled, err = item.Enabled()
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestQuoteExecArg(t *testing.T) {
	assert.Equal(t, "/usr/bin/focuscycle", quoteExecArg("/usr/bin/focuscycle"))
	assert.Equal(t, `""`, quoteExecArg(""))
	assert.Equal(t, `"a \$b"`, quoteExecArg("a $b"))
}
