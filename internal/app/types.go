package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/proc"
)

// Process mirrors the daemon registry entry.
type Process struct {
	ID       uint64
	Identity proc.Identity
	Cmd      string
	Cwd      string
	Alive    bool
	Tags     []string
	Groups   []string
	Name     string
	AddedAt  time.Time
	LastSeen time.Time
}

// Started is when the tracked process was created.
func (p Process) Started() time.Time {
	return p.Identity.CreatedAt()
}

func procFromProto(p *procctlv1.Proc) Process {
	return Process{
		ID:       p.GetId(),
		Identity: proc.Identity{PID: p.GetPid(), CreateTime: p.GetCreateTime()},
		Cmd:      p.GetCmd(),
		Cwd:      p.GetCwd(),
		Alive:    p.GetAlive(),
		Tags:     append([]string(nil), p.GetTags()...),
		Groups:   append([]string(nil), p.GetGroups()...),
		Name:     p.GetName(),
		AddedAt:  time.Unix(p.GetAddedAtUnix(), 0),
		LastSeen: time.Unix(p.GetLastSeenUnix(), 0),
	}
}

// ListFilters aggregates selectors shared across commands.
type ListFilters struct {
	TagsAny   []string
	TagsAll   []string
	GroupsAny []string
	GroupsAll []string
	Names     []string
	AliveOnly bool
	// DeadOnly keeps entries whose process has exited. It is applied to
	// the List reply.
	DeadOnly   bool
	TextSearch string
	PIDs       []int
	IDs        []int
	// Identities pins exact pid@create_time pairs; a recycled pid does
	// not match.
	Identities []proc.Identity
	// CreatedAfter (inclusive) and CreatedBefore (exclusive) bound the
	// process creation time. Zero leaves that side open.
	CreatedAfter  time.Time
	CreatedBefore time.Time
}

func (f ListFilters) empty() bool {
	return len(f.TagsAny) == 0 &&
		len(f.TagsAll) == 0 &&
		len(f.GroupsAny) == 0 &&
		len(f.GroupsAll) == 0 &&
		len(f.Names) == 0 &&
		len(f.PIDs) == 0 &&
		len(f.IDs) == 0 &&
		len(f.Identities) == 0 &&
		f.CreatedAfter.IsZero() &&
		f.CreatedBefore.IsZero() &&
		!f.DeadOnly &&
		strings.TrimSpace(f.TextSearch) == ""
}

func (f ListFilters) buildRequest() (*procctlv1.ListRequest, error) {
	if f.AliveOnly && f.DeadOnly {
		return nil, errors.New("alive and dead filters are mutually exclusive")
	}
	req := &procctlv1.ListRequest{
		TagsAny:    append([]string(nil), f.TagsAny...),
		TagsAll:    append([]string(nil), f.TagsAll...),
		GroupsAny:  append([]string(nil), f.GroupsAny...),
		GroupsAll:  append([]string(nil), f.GroupsAll...),
		AliveOnly:  f.AliveOnly,
		TextSearch: f.TextSearch,
	}

	if names := f.Names; len(names) > 0 {
		req.Names = make([]string, 0, len(names))
		for _, name := range names {
			clean := strings.TrimSpace(name)
			if clean == "" {
				return nil, errors.New("name filters must not be empty")
			}
			req.Names = append(req.Names, clean)
		}
	}
	if pids := f.PIDs; len(pids) > 0 {
		req.Pids = make([]int32, 0, len(pids))
		for _, pid := range pids {
			if pid <= 0 {
				return nil, fmt.Errorf("invalid pid filter: %d", pid)
			}
			req.Pids = append(req.Pids, int32(pid))
		}
	}
	if ids := f.IDs; len(ids) > 0 {
		req.Ids = make([]uint64, 0, len(ids))
		for _, id := range ids {
			if id <= 0 {
				return nil, fmt.Errorf("invalid id filter: %d", id)
			}
			req.Ids = append(req.Ids, uint64(id))
		}
	}
	for _, id := range f.Identities {
		if id.PID <= 0 || id.CreateTime <= 0 {
			return nil, fmt.Errorf("invalid identity filter: %s", id)
		}
		req.Identities = append(req.Identities, &procctlv1.Identity{Pid: id.PID, CreateTime: id.CreateTime})
	}
	if !f.CreatedAfter.IsZero() && !f.CreatedBefore.IsZero() && !f.CreatedAfter.Before(f.CreatedBefore) {
		return nil, fmt.Errorf("created-after %s is not before created-before %s",
			f.CreatedAfter.Format(time.DateTime), f.CreatedBefore.Format(time.DateTime))
	}
	if !f.CreatedAfter.IsZero() {
		req.CreatedAfter = f.CreatedAfter.UnixMilli()
	}
	if !f.CreatedBefore.IsZero() {
		req.CreatedBefore = f.CreatedBefore.UnixMilli()
	}

	return req, nil
}

// listMatching runs the List RPC and applies the filters the daemon does
// not know about.
func listMatching(ctx context.Context, client procctlv1.ProcCtlClient, req *procctlv1.ListRequest, f ListFilters) ([]Process, error) {
	resp, err := client.List(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("daemon list RPC failed: %w", err)
	}
	procs := make([]Process, 0, len(resp.GetProcs()))
	for _, p := range resp.GetProcs() {
		if f.DeadOnly && p.GetAlive() {
			continue
		}
		procs = append(procs, procFromProto(p))
	}
	return procs, nil
}

// sampleIdentities lists up to five identities for an ambiguity error.
func sampleIdentities(procs []Process) string {
	const limit = 5
	out := make([]string, 0, limit+1)
	for i := 0; i < len(procs) && i < limit; i++ {
		out = append(out, procs[i].Identity.String())
	}
	if len(procs) > limit {
		out = append(out, "...")
	}
	return strings.Join(out, ", ")
}
