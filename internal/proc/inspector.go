package proc

import (
	"context"
	"time"
)

// Status is the scheduler state of a process, reduced to what the controller cares about.
type Status string

const (
	StatusRunning  Status = "running"
	StatusSleeping Status = "sleeping"
	StatusStopped  Status = "stopped"
	StatusZombie   Status = "zombie"
	StatusOther    Status = "other"
)

// Process is a live reference to an OS process obtained from an Inspector.
// Implementations return errors wrapping ErrNotFound or ErrAccessDenied where
// the OS reports those conditions.
type Process interface {
	PID() int32
	CreateTime(ctx context.Context) (int64, error)
	IsRunning(ctx context.Context) (bool, error)
	Status(ctx context.Context) (Status, error)
	// CPUPercent blocks for interval and returns the usage over that window.
	CPUPercent(ctx context.Context, interval time.Duration) (float64, error)
	MemoryRSS(ctx context.Context) (uint64, error)
	Cmdline(ctx context.Context) ([]string, error)
	Cwd(ctx context.Context) (string, error)
	// Terminate asks the process to exit (SIGTERM on unix).
	Terminate(ctx context.Context) error
	// Kill ends the process unconditionally (SIGKILL on unix).
	Kill(ctx context.Context) error
	// Wait blocks until the process exits or becomes a zombie. It returns
	// ErrTimeout if the process is still alive after timeout.
	Wait(ctx context.Context, timeout time.Duration) error
}

// Inspector is the OS process layer the controller is built on.
type Inspector interface {
	Lookup(ctx context.Context, pid int32) (Process, error)
	// Enumerate captures the attribute set of every visible process, one
	// batched read per process. Processes that exit during enumeration are
	// skipped.
	Enumerate(ctx context.Context) ([]Attributes, error)
	// Spawn starts argv in cwd and returns the new process.
	Spawn(ctx context.Context, argv []string, cwd string) (Process, error)
}
