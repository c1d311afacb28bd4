//go:build !windows

package proc

import "syscall"

// detachedProcAttr puts a respawned process in its own process group so
// signals aimed at the controller's terminal do not reach it.
func detachedProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setpgid: true}
}
