package app

import (
	"context"
	"fmt"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/proc"
)

// StatsParams selects entries to sample; no selector samples every entry.
type StatsParams struct {
	Filters     ListFilters
	CPUInterval time.Duration
	Timeout     time.Duration
}

// ProcessStats is a resource sample of one registry entry.
type ProcessStats struct {
	ID          uint64
	Identity    proc.Identity
	Name        string
	Running     bool
	CPUPercent  float64
	CPUKnown    bool
	MemoryMB    float64
	MemoryKnown bool
	Runtime     time.Duration
}

// Stats samples CPU, memory and runtime of tracked processes.
func (a *App) Stats(ctx context.Context, params StatsParams) ([]ProcessStats, error) {
	if params.CPUInterval < 0 {
		return nil, fmt.Errorf("cpu interval must be non-negative, got %s", params.CPUInterval)
	}
	req, err := params.Filters.buildRequest()
	if err != nil {
		return nil, err
	}

	var out []ProcessStats
	err = a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		statsReq := &procctlv1.StatsRequest{CpuIntervalMs: params.CPUInterval.Milliseconds()}
		if !params.Filters.empty() || params.Filters.AliveOnly {
			procs, err := listMatching(ctx, client, req, params.Filters)
			if err != nil {
				return err
			}
			if len(procs) == 0 {
				return nil
			}
			for _, p := range procs {
				statsReq.Ids = append(statsReq.Ids, p.ID)
			}
		}
		resp, err := client.Stats(ctx, statsReq)
		if err != nil {
			return fmt.Errorf("daemon stats RPC failed: %w", err)
		}
		out = make([]ProcessStats, 0, len(resp.GetStats()))
		for _, st := range resp.GetStats() {
			out = append(out, ProcessStats{
				ID:          st.GetId(),
				Identity:    proc.Identity{PID: st.GetPid(), CreateTime: st.GetCreateTime()},
				Name:        st.GetName(),
				Running:     st.GetRunning(),
				CPUPercent:  st.GetCpuPercent(),
				CPUKnown:    st.GetCpuAvailable(),
				MemoryMB:    st.GetMemoryMb(),
				MemoryKnown: st.GetMemoryAvailable(),
				Runtime:     time.Duration(st.GetRuntimeSeconds() * float64(time.Second)),
			})
		}
		return nil
	})
	return out, err
}
