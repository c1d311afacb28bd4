package app

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc"
	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/proc"
)

func TestAppKillRequiresSelector(t *testing.T) {
	app := New(Options{})
	_, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err == nil || err.Error() != "provide at least one selector (--id/--identity/--pid/--tag/--group/--name) or pass --all" {
		t.Fatalf("expected selector error, got %v", err)
	}
}

func TestAppKillDaemonNotRunning(t *testing.T) {
	app := detach(New(Options{}))
	_, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{1}},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if !errors.Is(err, ErrDaemonNotRunning) {
		t.Fatalf("expected daemon error, got %v", err)
	}
}

func TestAppKillDialError(t *testing.T) {
	app := dialFailing(New(Options{}), errors.New("dial failed"))
	_, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{1}},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err == nil || err.Error() != "connect to daemon: dial failed" {
		t.Fatalf("expected dial error, got %v", err)
	}
}

func TestAppKillNoMatches(t *testing.T) {
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{1}},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "No processes match the provided selectors" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestAppKillNoAlive(t *testing.T) {
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			resp := reply.(*procctlv1.ListResponse)
			resp.Procs = []*procctlv1.Proc{{Id: 1, Alive: false}}
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{1}},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Message != "Matching processes exist but none are currently alive" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
}

func TestAppKillMultiMatchWithoutAll(t *testing.T) {
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			resp := reply.(*procctlv1.ListResponse)
			resp.Procs = []*procctlv1.Proc{
				{Id: 1, Pid: 10, CreateTime: 1000, Alive: true},
				{Id: 2, Pid: 10, CreateTime: 2000, Alive: true},
				{Id: 3, Pid: 30, CreateTime: 3000},
			}
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	_, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{PIDs: []int{10, 30}},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err == nil || err.Error() != "2 alive processes match (10@1000, 10@2000). Use --all to terminate them all or narrow the selection" {
		t.Fatalf("expected multi-match error, got %v", err)
	}
}

func TestAppKillKillFailure(t *testing.T) {
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			switch args.(type) {
			case *procctlv1.ListRequest:
				resp := reply.(*procctlv1.ListResponse)
				resp.Procs = []*procctlv1.Proc{{Id: 5, Alive: true, Name: "proc"}}
				return nil
			case *procctlv1.KillRequest:
				return errors.New("kill failed")
			default:
				t.Fatalf("unexpected args %T", args)
			}
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{5}},
		AllowAll:        true,
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err == nil || err.Error() != "no processes were killed (see output above)" {
		t.Fatalf("expected failure summary, got res=%+v err=%v", res, err)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != "kill_failure" {
		t.Fatalf("unexpected events: %+v", res.Events)
	}
}

func TestAppKillRemoveFailure(t *testing.T) {
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			switch args.(type) {
			case *procctlv1.ListRequest:
				resp := reply.(*procctlv1.ListResponse)
				resp.Procs = []*procctlv1.Proc{{Id: 6, Pid: 60, CreateTime: 6000, Alive: true, Name: "proc"}}
				return nil
			case *procctlv1.KillRequest:
				return nil
			case *procctlv1.RmRequest:
				return errors.New("rm failed")
			default:
				t.Fatalf("unexpected args %T", args)
			}
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{6}},
		AllowAll:        true,
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err == nil || err.Error() != "no processes were killed (see output above)" {
		t.Fatalf("expected failure summary, got %v", err)
	}
	if len(res.Events) != 1 || res.Events[0].Kind != "remove_failure" {
		t.Fatalf("unexpected events: %+v", res.Events)
	}
	if !strings.HasPrefix(res.Events[0].Err.Error(), "remove 60@6000 failed:") {
		t.Fatalf("remove failure must name the identity: %v", res.Events[0].Err)
	}
}

func TestAppKillSuccess(t *testing.T) {
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			switch req := args.(type) {
			case *procctlv1.ListRequest:
				resp := reply.(*procctlv1.ListResponse)
				resp.Procs = []*procctlv1.Proc{{Id: 8, Alive: true, Name: "proc", Pid: 100}}
				if len(req.GetIds()) != 1 || req.GetIds()[0] != 8 {
					t.Fatalf("unexpected filter: %+v", req)
				}
				return nil
			case *procctlv1.KillRequest:
				if req.GetId() != 8 || req.GetPid() != 0 {
					t.Fatalf("expected kill by registry id 8, got %v", req.GetTarget())
				}
				return nil
			case *procctlv1.RmRequest:
				if req.GetId() != 8 {
					t.Fatalf("expected rm id 8, got %d", req.GetId())
				}
				return nil
			default:
				t.Fatalf("unexpected args %T", args)
			}
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{IDs: []int{8}},
		AllowAll:        true,
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Successes != 1 || len(res.Events) != 1 || res.Events[0].Kind != "success" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAppKillScheduled(t *testing.T) {
	var scheduled *procctlv1.KillAfterRequest
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			switch req := args.(type) {
			case *procctlv1.ListRequest:
				resp := reply.(*procctlv1.ListResponse)
				resp.Procs = []*procctlv1.Proc{{Id: 9, Alive: true, Pid: 300}}
				return nil
			case *procctlv1.KillAfterRequest:
				scheduled = req
				return nil
			default:
				t.Fatalf("scheduled kill must not call %T", args)
			}
			return nil
		},
	}

	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:    ListFilters{IDs: []int{9}},
		Timeout:    time.Second,
		After:      1500 * time.Millisecond,
		Background: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Successes != 1 || res.Events[0].Kind != "scheduled" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if scheduled == nil || scheduled.GetId() != 9 || scheduled.GetDelayMs() != 1500 || !scheduled.GetBackground() {
		t.Fatalf("unexpected kill-after request: %+v", scheduled)
	}
}

func TestAppKillNegativeDelay(t *testing.T) {
	app := New(Options{})
	_, err := app.Kill(context.Background(), KillParams{Filters: ListFilters{IDs: []int{1}}, Timeout: time.Second, After: -time.Second})
	if err == nil || err.Error() != "delay must be non-negative, got -1s" {
		t.Fatalf("expected delay error, got %v", err)
	}
}

func TestAppKillRejectsDeadFilter(t *testing.T) {
	app := detach(New(Options{}))
	_, err := app.Kill(context.Background(), KillParams{Filters: ListFilters{DeadOnly: true}, AllowAll: true, Timeout: time.Second})
	if err == nil || err.Error() != "exited processes cannot be killed; use rm --dead to drop them" {
		t.Fatalf("expected dead filter error, got %v", err)
	}
}

func TestAppKillByIdentitySkipsRecycledPID(t *testing.T) {
	var killed []uint64
	conn := &fakeConn{
		invoke: func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
			switch req := args.(type) {
			case *procctlv1.ListRequest:
				ids := req.GetIdentities()
				if len(ids) != 1 || ids[0].GetPid() != 10 || ids[0].GetCreateTime() != 2000 {
					t.Fatalf("identity not sent: %v", ids)
				}
				reply.(*procctlv1.ListResponse).Procs = []*procctlv1.Proc{{Id: 2, Pid: 10, CreateTime: 2000, Alive: true}}
			case *procctlv1.KillRequest:
				killed = append(killed, req.GetId())
			}
			return nil
		},
	}
	app := attach(New(Options{}), conn)
	res, err := app.Kill(context.Background(), KillParams{
		Filters:         ListFilters{Identities: []proc.Identity{{PID: 10, CreateTime: 2000}}},
		Timeout:         time.Second,
		RequireSelector: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(killed) != 1 || killed[0] != 2 || res.Events[0].Proc.Identity.String() != "10@2000" {
		t.Fatalf("unexpected kill: %v %+v", killed, res.Events)
	}
}
