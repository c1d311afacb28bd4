package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procctlv1 "procctl/api/proto/procctl/v1"
)

// RestartParams selects exactly one registry entry to restart.
type RestartParams struct {
	Filters ListFilters
	Timeout time.Duration
}

// RestartResult holds the entry before and after the restart.
type RestartResult struct {
	Before Process
	After  Process
}

// Restart terminates the selected process and starts its command line
// again; the registry entry keeps its id and follows the new process.
func (a *App) Restart(ctx context.Context, params RestartParams) (RestartResult, error) {
	var result RestartResult
	if params.Filters.empty() {
		return result, errors.New("provide a selector (--id/--identity/--pid/--tag/--group/--name/--search)")
	}
	req, err := params.Filters.buildRequest()
	if err != nil {
		return result, err
	}

	err = a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		procs, err := listMatching(ctx, client, req, params.Filters)
		if err != nil {
			return err
		}
		switch n := len(procs); {
		case n == 0:
			return errors.New("no processes match the provided selectors")
		case n > 1:
			return fmt.Errorf("%d processes match (%s). Narrow the selection", n, sampleIdentities(procs))
		}
		result.Before = procs[0]

		resp, err := client.Restart(ctx, &procctlv1.RestartRequest{Id: result.Before.ID})
		if err != nil {
			if st, ok := status.FromError(err); ok && st.Code() == codes.FailedPrecondition {
				return fmt.Errorf("process %s is not running", result.Before.Identity)
			}
			return fmt.Errorf("daemon restart RPC failed: %w", err)
		}
		result.After = procFromProto(resp.GetProc())
		return nil
	})
	return result, err
}
