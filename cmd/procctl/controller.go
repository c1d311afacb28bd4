package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/caarlos0/ctrlc"
	"github.com/spf13/cobra"

	"procctl/internal/app"
	"procctl/internal/proc"
)

// controllerAPI is the slice of app.App the commands use.
type controllerAPI interface {
	Ping(ctx context.Context, timeout time.Duration) (app.PingResult, error)
	Add(ctx context.Context, params app.AddParams) (app.AddResult, error)
	Run(ctx context.Context, params app.RunParams) (app.RunResult, error)
	List(ctx context.Context, params app.ListParams) ([]app.Process, error)
	Find(ctx context.Context, params app.FindParams) (app.FindResult, error)
	Remove(ctx context.Context, params app.RemoveParams) (app.RemoveResult, error)
	Kill(ctx context.Context, params app.KillParams) (app.KillResult, error)
	Restart(ctx context.Context, params app.RestartParams) (app.RestartResult, error)
	Stats(ctx context.Context, params app.StatsParams) ([]app.ProcessStats, error)
	Label(ctx context.Context, params app.LabelParams) (app.LabelResult, error)
	RenameLabel(ctx context.Context, params app.RenameParams) (app.RenameResult, error)
	Reset(ctx context.Context, params app.ResetParams) (int, error)
	Status() (app.DaemonStatus, error)
	StopDaemon(params app.StopParams) error
	StartDaemon() (*app.DaemonHandle, error)
}

var controllerFactory = func() controllerAPI {
	return app.New(app.Options{ConfigPath: configPath})
}

func controller() controllerAPI {
	return controllerFactory()
}

// interruptible runs task until it returns or the user hits Ctrl-C.
func interruptible(ctx context.Context, task func() error) error {
	return ctrlc.Default.Run(ctx, task)
}

// parseDelay accepts a Go duration string; empty means zero.
func parseDelay(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must be non-negative, got %s", d)
	}
	return d, nil
}

func seconds(n int) (time.Duration, error) {
	if n <= 0 {
		return 0, errors.New("timeout must be greater than 0 seconds")
	}
	return time.Duration(n) * time.Second, nil
}

// parseWhen accepts "2006-01-02 15:04:05" in local time or RFC 3339;
// empty means the zero time.
func parseWhen(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.ParseInLocation(time.DateTime, s, time.Local); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want %q or RFC 3339", s, time.DateTime)
	}
	return t, nil
}

// selectorFlags are the registry selectors shared by list-like commands.
type selectorFlags struct {
	tags          []string
	groups        []string
	names         []string
	pids          []int
	ids           []int
	identities    []string
	search        string
	createdAfter  string
	createdBefore string
}

func (s *selectorFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&s.tags, "tag", nil, "Match processes that have any of these tags")
	cmd.Flags().StringSliceVar(&s.groups, "group", nil, "Match processes that belong to any of these groups")
	cmd.Flags().StringSliceVar(&s.names, "name", nil, "Match processes with these exact names")
	cmd.Flags().IntSliceVar(&s.pids, "pid", nil, "Filter by PID, whichever process holds it (repeatable)")
	cmd.Flags().IntSliceVar(&s.ids, "id", nil, "Filter by registry ID (repeatable)")
	cmd.Flags().StringSliceVar(&s.identities, "identity", nil, "Filter by exact identity pid@create_time_ms (repeatable)")
	cmd.Flags().StringVar(&s.search, "search", "", "Substring to match against process command")
	cmd.Flags().StringVar(&s.createdAfter, "created-after", "", `Only processes started at or after this time ("2006-01-02 15:04:05" or RFC 3339)`)
	cmd.Flags().StringVar(&s.createdBefore, "created-before", "", "Only processes started before this time")
}

func (s *selectorFlags) filters() (app.ListFilters, error) {
	f := app.ListFilters{
		TagsAny:    s.tags,
		GroupsAny:  s.groups,
		Names:      s.names,
		PIDs:       s.pids,
		IDs:        s.ids,
		TextSearch: s.search,
	}
	for _, raw := range s.identities {
		id, err := proc.ParseIdentity(raw)
		if err != nil {
			return f, err
		}
		f.Identities = append(f.Identities, id)
	}
	var err error
	if f.CreatedAfter, err = parseWhen(s.createdAfter); err != nil {
		return f, fmt.Errorf("--created-after: %w", err)
	}
	if f.CreatedBefore, err = parseWhen(s.createdBefore); err != nil {
		return f, fmt.Errorf("--created-before: %w", err)
	}
	return f, nil
}

func printProcess(w io.Writer, p app.Process) {
	fmt.Fprintf(
		w,
		"[id=%d] %s name=%s alive=%t started=%s cmd=%s tags=[%s] groups=[%s]\n",
		p.ID,
		p.Identity,
		dash(p.Name),
		p.Alive,
		p.Started().Format(time.DateTime),
		p.Cmd,
		strings.Join(p.Tags, ","),
		strings.Join(p.Groups, ","),
	)
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
