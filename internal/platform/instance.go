// Package platform holds host-level helpers for the desktop app.
package platform

import (
	"errors"
	"fmt"
	"hash/fnv"
	"net"
	"os"
	"strconv"
)

const (
	minLockPort = 20000
	maxLockPort = 39999
)

// ErrAlreadyRunning indicates another instance holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

// InstanceLock keeps a loopback listener open for the life of the process.
// The port is derived from the app name and the current user, so two users on
// one machine do not block each other.
type InstanceLock struct {
	listener net.Listener
}

// AcquireInstanceLock claims the lock for appName or returns ErrAlreadyRunning.
func AcquireInstanceLock(appName string) (*InstanceLock, error) {
	address := lockAddress(appName, os.Getuid())
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w (%s): %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceLock{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil lock.
func (lock *InstanceLock) Release() error {
	if lock == nil || lock.listener == nil {
		return nil
	}
	err := lock.listener.Close()
	lock.listener = nil
	return err
}

// Address returns the bound loopback address.
func (lock *InstanceLock) Address() string {
	if lock == nil || lock.listener == nil {
		return ""
	}
	return lock.listener.Addr().String()
}

func lockAddress(appName string, uid int) string {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appName))
	_, _ = hash.Write([]byte{0})
	_, _ = hash.Write([]byte(strconv.Itoa(uid)))
	span := uint32(maxLockPort - minLockPort + 1)
	port := minLockPort + int(hash.Sum32()%span)
	return net.JoinHostPort("127.0.0.1", strconv.Itoa(port))
}
