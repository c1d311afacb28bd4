package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
)

// KillParams configures kill command semantics.
type KillParams struct {
	Filters         ListFilters
	AllowAll        bool
	Timeout         time.Duration
	RequireSelector bool
	// After schedules the termination inside the daemon instead of
	// terminating now; scheduled entries stay registered.
	After time.Duration
	// Background detaches the scheduled termination from daemon shutdown.
	Background bool
}

func (p KillParams) scheduled() bool {
	return p.After > 0 || p.Background
}

// KillEvent describes one action taken during kill/remove.
type KillEvent struct {
	Kind string
	Proc Process
	Err  error
}

// KillResult aggregates the command outcome.
type KillResult struct {
	Events       []KillEvent
	Message      string
	TotalMatches int
	TotalAlive   int
	Successes    int
}

// Kill terminates and removes processes that match the filters, or
// schedules their termination when params.After is set.
func (a *App) Kill(ctx context.Context, params KillParams) (KillResult, error) {
	var result KillResult
	if params.After < 0 {
		return result, fmt.Errorf("delay must be non-negative, got %s", params.After)
	}
	if params.Filters.DeadOnly {
		return result, errors.New("exited processes cannot be killed; use rm --dead to drop them")
	}
	if params.RequireSelector && !params.AllowAll && params.Filters.empty() {
		return result, errors.New("provide at least one selector (--id/--identity/--pid/--tag/--group/--name) or pass --all")
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

		result.TotalMatches = len(procs)
		if result.TotalMatches == 0 {
			result.Message = "No processes match the provided selectors"
			return nil
		}

		alive := make([]Process, 0, len(procs))
		for _, p := range procs {
			if p.Alive {
				alive = append(alive, p)
			}
		}
		result.TotalAlive = len(alive)
		if len(alive) == 0 {
			result.Message = "Matching processes exist but none are currently alive"
			return nil
		}

		if len(alive) > 1 && !params.AllowAll {
			return fmt.Errorf("%d alive processes match (%s). Use --all to terminate them all or narrow the selection", len(alive), sampleIdentities(alive))
		}

		for _, proc := range alive {
			if params.scheduled() {
				result.Events = append(result.Events, scheduleKill(ctx, client, proc, params))
				if result.Events[len(result.Events)-1].Err == nil {
					result.Successes++
				}
				continue
			}
			if _, err := client.Kill(ctx, &procctlv1.KillRequest{Target: &procctlv1.KillRequest_Id{Id: proc.ID}}); err != nil {
				result.Events = append(result.Events, KillEvent{
					Kind: "kill_failure",
					Proc: proc,
					Err:  fmt.Errorf("kill RPC failed: %w", err),
				})
				continue
			}
			if _, err := client.Rm(ctx, &procctlv1.RmRequest{Id: proc.ID}); err != nil {
				result.Events = append(result.Events, KillEvent{
					Kind: "remove_failure",
					Proc: proc,
					Err:  fmt.Errorf("remove %s failed: %w", proc.Identity, err),
				})
				continue
			}
			result.Events = append(result.Events, KillEvent{
				Kind: "success",
				Proc: proc,
			})
			result.Successes++
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	switch {
	case result.Successes == result.TotalAlive:
		return result, nil
	case result.Successes == 0 && result.TotalAlive > 0:
		return result, errors.New("no processes were killed (see output above)")
	default:
		return result, fmt.Errorf("partially successful: killed %d/%d processes", result.Successes, result.TotalAlive)
	}
}

func scheduleKill(ctx context.Context, client procctlv1.ProcCtlClient, proc Process, params KillParams) KillEvent {
	_, err := client.KillAfter(ctx, &procctlv1.KillAfterRequest{
		Id:         proc.ID,
		DelayMs:    params.After.Milliseconds(),
		Background: params.Background,
	})
	if err != nil {
		return KillEvent{Kind: "schedule_failure", Proc: proc, Err: fmt.Errorf("kill-after RPC failed: %w", err)}
	}
	return KillEvent{Kind: "scheduled", Proc: proc}
}
