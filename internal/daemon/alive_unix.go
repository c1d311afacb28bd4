//go:build !windows

package daemon

import (
	"errors"

	"golang.org/x/sys/unix"
)

// pidAlive sends signal 0 to pid. EPERM still means the pid exists.
func pidAlive(pid int) bool {
	err := unix.Kill(pid, 0)
	return err == nil || errors.Is(err, unix.EPERM)
}
