//go:build !windows

package proc

import (
	"errors"

	"golang.org/x/sys/unix"
)

func classifyErrno(err error) error {
	switch {
	case errors.Is(err, unix.ESRCH):
		return ErrNotFound
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES):
		return ErrAccessDenied
	}
	return nil
}
