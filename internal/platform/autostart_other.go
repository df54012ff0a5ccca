//go:build !linux && !freebsd && !openbsd && !netbsd && !darwin && !windows

package platform

func (item *LoginItem) enable() error {
	return ErrAutostartUnsupported
}

func (item *LoginItem) disable() error {
	return ErrAutostartUnsupported
}

func (item *LoginItem) enabled() (bool, error) {
	return false, ErrAutostartUnsupported
}
