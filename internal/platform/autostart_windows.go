//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"strings"
)

const registryRunKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (item *LoginItem) enable() error {
	return reg("add", registryRunKey, "/v", item.name, "/t", "REG_SZ", "/d", item.commandLine(), "/f")
}

func (item *LoginItem) disable() error {
	enabled, err := item.enabled()
	if err != nil || !enabled {
		return err
	}
	return reg("delete", registryRunKey, "/v", item.name, "/f")
}

func (item *LoginItem) enabled() (bool, error) {
	// reg query exits non-zero when the value is missing.
	err := exec.Command("reg", "query", registryRunKey, "/v", item.name).Run()
	if _, ok := err.(*exec.ExitError); ok {
		return false, nil
	}
	return err == nil, err
}

func (item *LoginItem) commandLine() string {
	args := make([]string, len(item.command))
	for i, arg := range item.command {
		args[i] = `"` + strings.Trim(arg, `"`) + `"`
	}
	return strings.Join(args, " ")
}

func reg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}
