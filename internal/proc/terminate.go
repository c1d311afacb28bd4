package proc

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Terminate stops the tracked process: SIGTERM, wait up to the terminate
// timeout, then SIGKILL. A process that is already gone counts as
// terminated, and so does one left as a zombie after the kill. It returns
// an error wrapping ErrTerminateFailed when the process survived or the OS
// refused the signal.
func (h *Handle) Terminate(ctx context.Context) error {
	p, ok := h.resolve(ctx)
	if !ok {
		return nil
	}
	logger := h.logger().With("pid", p.PID())

	if err := p.Terminate(ctx); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return h.terminateFailed("send terminate signal", p.PID(), err)
	}

	err := p.Wait(ctx, h.ctrl.terminateTimeout)
	switch {
	case err == nil, errors.Is(err, ErrNotFound):
		return nil
	case !errors.Is(err, ErrTimeout):
		return h.terminateFailed("wait for exit", p.PID(), err)
	}

	logger.Warn("process ignored terminate signal, killing", "timeout", h.ctrl.terminateTimeout)
	if err := p.Kill(ctx); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return h.terminateFailed("send kill signal", p.PID(), err)
	}

	if err := p.Wait(ctx, killSettle); err == nil || errors.Is(err, ErrNotFound) {
		return nil
	}
	st, err := p.Status(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return h.terminateFailed("read status after kill", p.PID(), err)
	case st == StatusZombie:
		return nil
	}
	logger.Error("process survived kill", "status", st)
	return fmt.Errorf("%w: pid %d still %s after kill", ErrTerminateFailed, p.PID(), st)
}

func (h *Handle) terminateFailed(step string, pid int32, err error) error {
	h.logger().Error("terminate failed", "pid", pid, "step", step, "err", err)
	return fmt.Errorf("%w: pid %d: %s: %w", ErrTerminateFailed, pid, step, err)
}

// TerminateAfter calls Terminate once delay has elapsed, on its own
// goroutine, and returns immediately. A background task is detached and
// dies with the program; otherwise the task is joined by Controller.Wait.
// A scheduled termination cannot be cancelled.
func (h *Handle) TerminateAfter(delay time.Duration, background bool) error {
	if delay < 0 {
		return fmt.Errorf("%w: delay must be non-negative, got %s", ErrInvalidArgument, delay)
	}
	run := func() {
		time.Sleep(delay)
		if err := h.Terminate(context.Background()); err != nil {
			h.logger().Warn("delayed terminate failed", "identity", h.Identity(), "err", err)
		}
	}
	if background {
		go run()
		return nil
	}
	h.ctrl.tasks.Add(1)
	go func() {
		defer h.ctrl.tasks.Done()
		run()
	}()
	return nil
}

// Restart terminates the tracked process and starts its command line again
// in the same working directory, then points the handle at the new
// process. It returns ErrNotRunning without side effects when the process
// is not running. On a capture or spawn failure it returns an error
// wrapping ErrRestartFailed and the handle keeps the old identity.
//
// Waiting for the old process to go away is bounded only by ctx.
func (h *Handle) Restart(ctx context.Context) error {
	if !h.IsRunning(ctx) {
		return fmt.Errorf("%w: %s", ErrNotRunning, h.Identity())
	}
	p, ok := h.resolve(ctx)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotRunning, h.Identity())
	}
	old := h.Identity()
	logger := h.logger().With("pid", old.PID)

	argv, err := p.Cmdline(ctx)
	if err == nil && len(argv) == 0 {
		err = errors.New("empty command line")
	}
	if err != nil {
		logger.Error("restart: read command line", "err", err)
		return fmt.Errorf("%w: read command line of pid %d: %w", ErrRestartFailed, old.PID, err)
	}
	cwd, err := p.Cwd(ctx)
	if err != nil {
		logger.Error("restart: read working directory", "err", err)
		return fmt.Errorf("%w: read cwd of pid %d: %w", ErrRestartFailed, old.PID, err)
	}

	if err := h.Terminate(ctx); err != nil {
		logger.Warn("restart: terminate reported failure, waiting for exit anyway", "err", err)
	}
	if err := h.waitStopped(ctx); err != nil {
		return fmt.Errorf("%w: waiting for pid %d to exit: %w", ErrRestartFailed, old.PID, err)
	}

	np, err := h.ctrl.inspector.Spawn(ctx, argv, cwd)
	if err != nil {
		logger.Error("restart: spawn replacement", "argv", argv, "cwd", cwd, "err", err)
		return fmt.Errorf("%w: spawn %q: %w", ErrRestartFailed, argv[0], err)
	}
	ct, err := np.CreateTime(ctx)
	if err != nil {
		logger.Error("restart: read create time of replacement", "new_pid", np.PID(), "err", err)
		return fmt.Errorf("%w: read create time of pid %d: %w", ErrRestartFailed, np.PID(), err)
	}

	h.mu.Lock()
	h.id = Identity{PID: np.PID(), CreateTime: ct}
	h.mu.Unlock()
	logger.Info("process restarted", "new_pid", np.PID())
	return nil
}

func (h *Handle) waitStopped(ctx context.Context) error {
	ticker := time.NewTicker(h.ctrl.restartPoll)
	defer ticker.Stop()
	for h.IsRunning(ctx) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}
