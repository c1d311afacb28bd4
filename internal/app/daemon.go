package app

import (
	"context"
	"errors"
	"time"

	"procctl/internal/daemon"
)

const statusTimeout = time.Second

// DaemonStatus represents current information about the daemon process.
type DaemonStatus struct {
	Running bool
	PID     int
	Uptime  time.Duration
	Socket  string
}

// Status pings the daemon. A daemon that is not running is reported in the
// status, not as an error.
func (a *App) Status() (DaemonStatus, error) {
	st := DaemonStatus{Socket: a.paths.Socket}
	res, err := a.Ping(context.Background(), statusTimeout)
	if errors.Is(err, ErrDaemonNotRunning) {
		return st, nil
	}
	if err != nil {
		return st, err
	}
	st.Running = true
	st.PID = res.DaemonPID
	st.Uptime = res.Uptime
	return st, nil
}

// StopParams configures StopDaemon.
type StopParams struct {
	// Force kills the daemon once Timeout passes.
	Force bool
	// Timeout bounds the wait after SIGTERM. A stopping daemon first runs
	// its pending scheduled terminations. Zero means
	// daemon.DefaultStopTimeout.
	Timeout time.Duration
}

// StopDaemon signals the running daemon and waits for it to exit.
func (a *App) StopDaemon(params StopParams) error {
	return daemon.Stop(a.paths, daemon.StopOptions{Force: params.Force, Timeout: params.Timeout})
}

// DaemonHandle holds a running daemon instance.
type DaemonHandle struct {
	srv *daemon.Server
}

// Close stops the running daemon instance.
func (h *DaemonHandle) Close() error {
	if h == nil || h.srv == nil {
		return nil
	}
	return h.srv.Close()
}

// StartDaemon starts the daemon in this process and returns a handle for
// closing it.
func (a *App) StartDaemon() (*DaemonHandle, error) {
	srv, err := daemon.StartDaemon(a.paths, a.cfgPath)
	if err != nil {
		return nil, err
	}
	return &DaemonHandle{srv: srv}, nil
}
