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

// RemoveParams configures rm command semantics.
type RemoveParams struct {
	Filters         ListFilters
	AllowAll        bool
	Timeout         time.Duration
	RequireSelector bool
}

// RemoveResult reports the registry entries removed.
type RemoveResult struct {
	Removed []Process
	Message string
}

// Remove forgets the registry entries matching the filters. The processes
// themselves are not signalled. Set Filters.DeadOnly to prune entries whose
// process has exited.
func (a *App) Remove(ctx context.Context, params RemoveParams) (RemoveResult, error) {
	var result RemoveResult
	if params.RequireSelector && !params.AllowAll && params.Filters.empty() {
		return result, errors.New("provide at least one selector (--id/--identity/--pid/--tag/--group/--name/--search/--dead)")
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
		if len(procs) == 0 {
			result.Message = "No matching processes registered"
			return nil
		}
		if len(procs) > 1 && !params.AllowAll {
			return fmt.Errorf("%d processes match (%s). Use --all to remove them all or narrow the selection", len(procs), sampleIdentities(procs))
		}
		for _, p := range procs {
			_, err := client.Rm(ctx, &procctlv1.RmRequest{Id: p.ID})
			if status.Code(err) == codes.NotFound {
				// dropped concurrently
				continue
			}
			if err != nil {
				return fmt.Errorf("remove %s failed: %w", p.Identity, err)
			}
			result.Removed = append(result.Removed, p)
		}
		return nil
	})

	return result, err
}
