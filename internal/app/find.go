package app

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/proc"
)

// FindParams selects processes system-wide. Set fields must all match.
type FindParams struct {
	PID    int
	Name   string
	User   string
	Cwd    string
	Search string // substring of the joined command line
	// Argv matches the command line exactly, argument by argument.
	Argv []string
	// Remote runs the exact-match part of the search inside the daemon.
	Remote bool
	// Track registers every match with the daemon.
	Track   bool
	Tags    []string
	Groups  []string
	Timeout time.Duration
}

func (p FindParams) empty() bool {
	return p.PID == 0 && p.Name == "" && p.User == "" && p.Cwd == "" && len(p.Argv) == 0 && strings.TrimSpace(p.Search) == ""
}

// FoundProcess is one system process that matched a search.
type FoundProcess struct {
	Identity  proc.Identity
	Name      string
	User      string
	Cwd       string
	Cmdline   []string
	TrackedID uint64
	TrackNote string
}

// FindResult aggregates matches and tracking outcome.
type FindResult struct {
	Matches []FoundProcess
	Tracked int
}

// Find searches every visible process. Local searches use a predicate over
// the captured attributes; remote ones send an exact-match filter to the
// daemon.
func (a *App) Find(ctx context.Context, params FindParams) (FindResult, error) {
	var result FindResult
	if params.PID < 0 {
		return result, fmt.Errorf("invalid pid %d", params.PID)
	}
	if params.Track && params.empty() {
		return result, errors.New("provide at least one criterion (--pid/--name/--user/--cwd/--argv/--search) to track matches")
	}
	if params.Remote {
		if strings.TrimSpace(params.Search) != "" {
			return result, errors.New("--search cannot be combined with --remote")
		}
		return a.findRemote(ctx, params)
	}

	attrs, err := a.ctrl.FindAttributes(ctx, localPredicate(params))
	if err != nil {
		return result, fmt.Errorf("find processes: %w", err)
	}
	for _, at := range attrs {
		result.Matches = append(result.Matches, FoundProcess{
			Identity: at.Identity(),
			Name:     at.Name,
			User:     at.Username,
			Cwd:      at.Cwd,
			Cmdline:  at.Cmdline,
		})
	}
	if !params.Track || len(attrs) == 0 {
		return result, nil
	}

	err = a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		for i, at := range attrs {
			resp, err := client.Add(ctx, &procctlv1.AddRequest{
				Pid:        at.PID,
				CreateTime: at.CreateTime,
				Tags:       append([]string(nil), params.Tags...),
				Groups:     append([]string(nil), params.Groups...),
			})
			if err != nil {
				if st, ok := status.FromError(err); ok && (st.Code() == codes.AlreadyExists || st.Code() == codes.NotFound) {
					result.Matches[i].TrackNote = st.Message()
					continue
				}
				return fmt.Errorf("daemon add RPC failed for %s: %w", at.Identity(), err)
			}
			result.Matches[i].TrackedID = resp.GetId()
			result.Tracked++
		}
		return nil
	})
	return result, err
}

func localPredicate(params FindParams) proc.Predicate {
	search := strings.TrimSpace(params.Search)
	return func(a proc.Attributes) bool {
		if params.PID != 0 && int(a.PID) != params.PID {
			return false
		}
		if params.Name != "" && (!a.Available(proc.AttrName) || a.Name != params.Name) {
			return false
		}
		if params.User != "" && (!a.Available(proc.AttrUsername) || a.Username != params.User) {
			return false
		}
		if params.Cwd != "" && (!a.Available(proc.AttrCwd) || a.Cwd != params.Cwd) {
			return false
		}
		if len(params.Argv) > 0 && (!a.Available(proc.AttrCmdline) || !slices.Equal(a.Cmdline, params.Argv)) {
			return false
		}
		if search != "" && (!a.Available(proc.AttrCmdline) || !strings.Contains(strings.Join(a.Cmdline, " "), search)) {
			return false
		}
		return true
	}
}

func (a *App) findRemote(ctx context.Context, params FindParams) (FindResult, error) {
	var result FindResult
	exact := map[string]string{}
	if params.PID != 0 {
		exact[string(proc.AttrPID)] = strconv.Itoa(params.PID)
	}
	if params.Name != "" {
		exact[string(proc.AttrName)] = params.Name
	}
	if params.User != "" {
		exact[string(proc.AttrUsername)] = params.User
	}
	if params.Cwd != "" {
		exact[string(proc.AttrCwd)] = params.Cwd
	}

	err := a.withDaemon(ctx, params.Timeout, func(ctx context.Context, client procctlv1.ProcCtlClient) error {
		resp, err := client.Find(ctx, &procctlv1.FindRequest{
			Exact:   exact,
			Cmdline: append([]string(nil), params.Argv...),
			Track:   params.Track,
			Tags:    append([]string(nil), params.Tags...),
			Groups:  append([]string(nil), params.Groups...),
		})
		if err != nil {
			return fmt.Errorf("daemon find RPC failed: %w", err)
		}
		for _, m := range resp.GetMatches() {
			result.Matches = append(result.Matches, FoundProcess{
				Identity:  proc.Identity{PID: m.GetPid(), CreateTime: m.GetCreateTime()},
				Name:      m.GetName(),
				User:      m.GetUsername(),
				Cwd:       m.GetCwd(),
				Cmdline:   m.GetCmdline(),
				TrackedID: m.GetTrackedId(),
			})
			if m.GetTrackedId() != 0 {
				result.Tracked++
			}
		}
		return nil
	})
	return result, err
}
