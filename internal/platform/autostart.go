package platform

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAutostartUnsupported is returned on platforms without a login item mechanism.
var ErrAutostartUnsupported = errors.New("autostart unsupported on this platform")

// LoginItem registers a command to run when the user logs in.
type LoginItem struct {
	name    string
	command []string
	// root replaces the user's config or home directory; tests point it at a
	// temp dir.
	root string
}

// NewLoginItem describes a login item named name that runs command.
func NewLoginItem(name string, command ...string) (*LoginItem, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("login item: name is empty")
	}
	if len(command) == 0 || command[0] == "" {
		return nil, errors.New("login item: command is empty")
	}
	return &LoginItem{name: name, command: command}, nil
}

// Enable registers the login item, replacing any previous registration.
func (item *LoginItem) Enable() error {
	if err := item.enable(); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

// Disable removes the login item. Removing a missing item is not an error.
func (item *LoginItem) Disable() error {
	if err := item.disable(); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

// Enabled reports whether the login item is registered.
func (item *LoginItem) Enabled() (bool, error) {
	enabled, err := item.enabled()
	if err != nil {
		return false, fmt.Errorf("query autostart: %w", err)
	}
	return enabled, nil
}

func slug(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, " ", "-")
}
