package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/daemon"
)

// ErrDaemonNotRunning reports that nothing serves the daemon socket.
var ErrDaemonNotRunning = errors.New("daemon is not running")

type dialFunc func(ctx context.Context, paths daemon.Paths) (procctlv1.ProcCtlClient, io.Closer, error)

func dialSocket(ctx context.Context, paths daemon.Paths) (procctlv1.ProcCtlClient, io.Closer, error) {
	if _, err := os.Stat(paths.Socket); err != nil {
		return nil, nil, ErrDaemonNotRunning
	}
	client, conn, err := daemon.Dial(ctx, paths)
	if err != nil {
		if ctx.Err() == nil {
			// the socket outlived its daemon
			return nil, nil, fmt.Errorf("%w (%v)", ErrDaemonNotRunning, err)
		}
		return nil, nil, err
	}
	return client, conn, nil
}

// withDaemon runs fn on a connection that lives for at most timeout.
func (a *App) withDaemon(ctx context.Context, timeout time.Duration, fn func(context.Context, procctlv1.ProcCtlClient) error) error {
	if timeout <= 0 {
		return errors.New("timeout must be greater than 0")
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, conn, err := a.dial(ctx, a.paths)
	switch {
	case errors.Is(err, ErrDaemonNotRunning):
		return err
	case err != nil:
		return fmt.Errorf("connect to daemon: %w", err)
	}
	defer conn.Close()
	return fn(ctx, client)
}
