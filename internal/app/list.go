package app

import (
	"context"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
)

// ListParams defines filters and timeout.
type ListParams struct {
	Filters ListFilters
	Timeout time.Duration
}

// List fetches registry entries matching the provided filters.
func (a *App) List(ctx context.Context, params ListParams) ([]Process, error) {
	req, err := params.Filters.buildRequest()
	if err != nil {
		return nil, err
	}

	var procs []Process
	err = a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		procs, err = listMatching(ctx, client, req, params.Filters)
		return err
	})
	return procs, err
}
