package proc

import "errors"

var (
	// ErrInvalidArgument reports malformed input (negative interval/delay, bad filter).
	// It is always returned to the caller before the OS is touched.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned by an Inspector when the pid does not exist (or exited).
	ErrNotFound = errors.New("process not found")

	// ErrAccessDenied is returned by an Inspector when the OS refuses access.
	ErrAccessDenied = errors.New("access denied")

	// ErrTimeout is returned by Process.Wait when the process outlived the timeout.
	ErrTimeout = errors.New("timed out waiting for process exit")

	ErrNotRunning      = errors.New("process is not running")
	ErrTerminateFailed = errors.New("terminate failed")
	ErrRestartFailed   = errors.New("restart failed")
)
