//go:build linux || freebsd || openbsd || netbsd

package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func (item *LoginItem) enable() error {
	path, err := item.desktopFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create autostart dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(item.desktopEntry()), 0o644); err != nil {
		return fmt.Errorf("write desktop entry: %w", err)
	}
	return nil
}

func (item *LoginItem) disable() error {
	path, err := item.desktopFile()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove desktop entry: %w", err)
	}
	return nil
}

func (item *LoginItem) enabled() (bool, error) {
	path, err := item.desktopFile()
	if err != nil {
		return false, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (item *LoginItem) desktopFile() (string, error) {
	configDir := item.root
	if configDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolve config dir: %w", err)
		}
		configDir = dir
	}
	return filepath.Join(configDir, "autostart", slug(item.name)+".desktop"), nil
}

func (item *LoginItem) desktopEntry() string {
	args := make([]string, len(item.command))
	for i, arg := range item.command {
		args[i] = quoteExecArg(arg)
	}
	return fmt.Sprintf(`[Desktop Entry]
Type=Application
Name=%s
Exec=%s
X-GNOME-Autostart-enabled=true
Terminal=false
`, item.name, strings.Join(args, " "))
}

// quoteExecArg follows the freedesktop Exec key rules: arguments with reserved
// characters are double quoted with \ " ` $ escaped.
func quoteExecArg(arg string) string {
	if arg != "" && !strings.ContainsAny(arg, " \t\n\"'\\><~|&;$*?#()`") {
		return arg
	}
	escaper := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "`", "\\`", `$`, `\$`)
	return `"` + escaper.Replace(arg) + `"`
}
