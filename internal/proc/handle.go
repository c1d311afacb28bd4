package proc

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Handle refers to one process by identity. Every query re-resolves the
// identity against the OS, so a handle never acts on a process that merely
// reuses its pid.
type Handle struct {
	ctrl *Controller

	mu sync.RWMutex
	id Identity
}

// Identity returns the current identity pair. It changes only on Restart.
func (h *Handle) Identity() Identity {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.id
}

func (h *Handle) PID() int32 {
	return h.Identity().PID
}

func (h *Handle) String() string {
	return h.Identity().String()
}

func (h *Handle) logger() *log.Logger {
	return h.ctrl.logger
}

// resolve returns the live process behind the handle, or false when the pid
// is gone, unreadable, or now belongs to a different process.
func (h *Handle) resolve(ctx context.Context) (Process, bool) {
	id := h.Identity()
	p, err := h.ctrl.inspector.Lookup(ctx, id.PID)
	if err != nil {
		h.logLookupError(id, err)
		return nil, false
	}
	ct, err := p.CreateTime(ctx)
	if err != nil {
		h.logLookupError(id, err)
		return nil, false
	}
	if ct != id.CreateTime {
		h.logger().Debug("pid recycled by another process", "pid", id.PID, "want_create_time", id.CreateTime, "got_create_time", ct)
		return nil, false
	}
	return p, true
}

func (h *Handle) logLookupError(id Identity, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
	case errors.Is(err, ErrAccessDenied):
		h.logger().Warn("access denied to process", "pid", id.PID)
	default:
		h.logger().Debug("process lookup failed", "pid", id.PID, "err", err)
	}
}

// IsRunning reports whether the tracked process exists, is running, and is
// not a zombie.
func (h *Handle) IsRunning(ctx context.Context) bool {
	p, ok := h.resolve(ctx)
	if !ok {
		return false
	}
	running, err := p.IsRunning(ctx)
	if err != nil || !running {
		return false
	}
	st, err := p.Status(ctx)
	if err != nil {
		return false
	}
	return st != StatusZombie
}

// Runtime returns the wall time elapsed since the process was created. It
// does not consult the OS and keeps counting after the process exits.
func (h *Handle) Runtime() time.Duration {
	return time.Since(h.Identity().CreatedAt())
}

// CPUPercent samples CPU usage over interval. The boolean is false when the
// process cannot be resolved; zero is a valid measurement.
func (h *Handle) CPUPercent(ctx context.Context, interval time.Duration) (float64, bool, error) {
	if interval < 0 {
		return 0, false, fmt.Errorf("%w: interval must be non-negative, got %s", ErrInvalidArgument, interval)
	}
	p, ok := h.resolve(ctx)
	if !ok {
		return 0, false, nil
	}
	pct, err := p.CPUPercent(ctx, interval)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, false, ctxErr
		}
		h.logger().Debug("cpu sample failed", "pid", p.PID(), "err", err)
		return 0, false, nil
	}
	return pct, true, nil
}

// MemoryMB returns the resident set size in MiB rounded to two decimals.
func (h *Handle) MemoryMB(ctx context.Context) (float64, bool) {
	p, ok := h.resolve(ctx)
	if !ok {
		return 0, false
	}
	rss, err := p.MemoryRSS(ctx)
	if err != nil {
		h.logger().Debug("memory read failed", "pid", p.PID(), "err", err)
		return 0, false
	}
	return bytesToMB(rss), true
}

func bytesToMB(b uint64) float64 {
	return math.Round(float64(b)/(1024*1024)*100) / 100
}

// Command returns the command line and working directory of the tracked
// process, or false when it cannot be resolved or read.
func (h *Handle) Command(ctx context.Context) ([]string, string, bool) {
	p, ok := h.resolve(ctx)
	if !ok {
		return nil, "", false
	}
	argv, err := p.Cmdline(ctx)
	if err != nil {
		h.logger().Debug("command line read failed", "pid", p.PID(), "err", err)
		return nil, "", false
	}
	cwd, err := p.Cwd(ctx)
	if err != nil {
		h.logger().Debug("cwd read failed", "pid", p.PID(), "err", err)
		cwd = ""
	}
	return argv, cwd, true
}
