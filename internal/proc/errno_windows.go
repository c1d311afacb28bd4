//go:build windows

package proc

import (
	"errors"

	"golang.org/x/sys/windows"
)

func classifyErrno(err error) error {
	switch {
	case errors.Is(err, windows.ERROR_INVALID_PARAMETER):
		// OpenProcess on a pid that no longer exists.
		return ErrNotFound
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		return ErrAccessDenied
	}
	return nil
}
