package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"procctl/internal/proc"
)

// RunParams describes a command to launch and track.
type RunParams struct {
	Argv    []string
	Cwd     string
	Tags    []string
	Groups  []string
	Name    string
	Timeout time.Duration
}

// RunResult reports the spawned process and its registry entry.
type RunResult struct {
	Identity proc.Identity
	ID       uint64
}

// Run starts argv detached from the caller and registers it by identity.
// The process is killed again when registration fails.
func (a *App) Run(ctx context.Context, params RunParams) (RunResult, error) {
	var result RunResult
	if len(params.Argv) == 0 {
		return result, errors.New("command must not be empty")
	}
	if _, err := a.Ping(ctx, params.Timeout); err != nil {
		return result, err
	}

	p, err := a.ctrl.Inspector().Spawn(ctx, params.Argv, params.Cwd)
	if err != nil {
		return result, fmt.Errorf("start command: %w", err)
	}
	created, err := p.CreateTime(ctx)
	if err != nil {
		_ = p.Kill(ctx)
		return result, fmt.Errorf("read create time of pid %d: %w", p.PID(), err)
	}
	result.Identity = proc.Identity{PID: p.PID(), CreateTime: created}

	added, err := a.Add(ctx, AddParams{
		PID:        int(p.PID()),
		CreateTime: created,
		Tags:       params.Tags,
		Groups:     params.Groups,
		Name:       params.Name,
		Timeout:    params.Timeout,
	})
	if err == nil && added.AlreadyExists {
		err = errors.New(added.ExistingReason)
	}
	if err != nil {
		_ = p.Kill(ctx)
		return result, err
	}
	result.ID = added.ID
	return result, nil
}
