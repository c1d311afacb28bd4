package app

import (
	"context"
	"fmt"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
)

// PingResult is the daemon's health reply.
type PingResult struct {
	Reply     string
	DaemonPID int
	Uptime    time.Duration
	// RTT covers the Ping RPC only, not the dial.
	RTT time.Duration
}

// Ping contacts the daemon and returns its health response.
func (a *App) Ping(ctx context.Context, timeout time.Duration) (PingResult, error) {
	var res PingResult
	err := a.withDaemon(ctx, timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		start := time.Now()
		resp, err := client.Ping(ctx, &procctlv1.PingRequest{})
		if err != nil {
			return fmt.Errorf("daemon ping RPC failed: %w", err)
		}
		res = PingResult{
			Reply:     resp.GetOk(),
			DaemonPID: int(resp.GetPid()),
			Uptime:    time.Duration(resp.GetUptimeMs()) * time.Millisecond,
			RTT:       time.Since(start),
		}
		return nil
	})
	return res, err
}
