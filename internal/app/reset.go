package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
)

// ResetParams configures the reset command.
type ResetParams struct {
	Timeout   time.Duration
	Confirmed bool
}

// Reset wipes registry state and returns how many entries were dropped.
func (a *App) Reset(ctx context.Context, params ResetParams) (int, error) {
	if !params.Confirmed {
		return 0, errors.New(`destructive command: confirmation required`)
	}

	var removed int
	err := a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		resp, err := client.Reset(ctx, &procctlv1.ResetRequest{})
		if err != nil {
			return fmt.Errorf("daemon reset RPC failed: %w", err)
		}
		removed = int(resp.GetRemoved())
		return nil
	})
	return removed, err
}
