package app

import (
	"context"
	"errors"
	"io"
	"net"
	"slices"
	"sort"
	"sync"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/proto"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/daemon"
)

// fakeConn answers unary calls through invoke.
type fakeConn struct {
	invoke func(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error
}

func (f *fakeConn) Invoke(ctx context.Context, method string, args interface{}, reply interface{}, opts ...grpc.CallOption) error {
	if f.invoke != nil {
		return f.invoke(ctx, method, args, reply, opts...)
	}
	return nil
}

func (f *fakeConn) NewStream(ctx context.Context, desc *grpc.StreamDesc, method string, opts ...grpc.CallOption) (grpc.ClientStream, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeConn) Close() error { return nil }

// attach routes every daemon call of app through conn.
func attach(app *App, conn *fakeConn) *App {
	app.dial = func(context.Context, daemon.Paths) (procctlv1.ProcCtlClient, io.Closer, error) {
		return procctlv1.NewProcCtlClient(conn), conn, nil
	}
	return app
}

// detach makes app behave as if no daemon socket existed.
func detach(app *App) *App {
	app.dial = func(context.Context, daemon.Paths) (procctlv1.ProcCtlClient, io.Closer, error) {
		return nil, nil, ErrDaemonNotRunning
	}
	return app
}

func dialFailing(app *App, err error) *App {
	app.dial = func(context.Context, daemon.Paths) (procctlv1.ProcCtlClient, io.Closer, error) {
		return nil, nil, err
	}
	return app
}

// serve runs srv on an in-memory listener and points a new App at it.
func serve(t *testing.T, srv procctlv1.ProcCtlServer) *App {
	t.Helper()
	return serveTo(t, New(Options{Paths: daemon.Paths{Socket: "bufconn"}}), srv)
}

func serveTo(t *testing.T, app *App, srv procctlv1.ProcCtlServer) *App {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	gs := grpc.NewServer()
	procctlv1.RegisterProcCtlServer(gs, srv)
	go func() { _ = gs.Serve(lis) }()
	t.Cleanup(gs.Stop)

	app.dial = func(ctx context.Context, _ daemon.Paths) (procctlv1.ProcCtlClient, io.Closer, error) {
		conn, err := grpc.NewClient("passthrough:///bufconn",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		return procctlv1.NewProcCtlClient(conn), conn, nil
	}
	return app
}

// fakeRegistry is a daemon holding a fixed set of entries. Its List
// honours the identity, liveness, creation time, id, pid, name and
// all-of label selectors.
type fakeRegistry struct {
	procctlv1.UnimplementedProcCtlServer

	mu      sync.Mutex
	procs   []*procctlv1.Proc
	nextID  uint64
	lists   []*procctlv1.ListRequest
	removed []uint64
	rmErr   error
}

func newFakeRegistry(procs ...*procctlv1.Proc) *fakeRegistry {
	f := &fakeRegistry{nextID: 100}
	for _, p := range procs {
		f.procs = append(f.procs, proto.Clone(p).(*procctlv1.Proc))
	}
	return f
}

func (f *fakeRegistry) listed() []*procctlv1.ListRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return slices.Clone(f.lists)
}

func (f *fakeRegistry) find(id uint64) (int, error) {
	i := slices.IndexFunc(f.procs, func(p *procctlv1.Proc) bool { return p.GetId() == id })
	if i < 0 {
		return -1, status.Errorf(codes.NotFound, "process %d not found", id)
	}
	return i, nil
}

func (f *fakeRegistry) Ping(context.Context, *procctlv1.PingRequest) (*procctlv1.PingResponse, error) {
	return &procctlv1.PingResponse{Ok: "pong", Pid: 4321, UptimeMs: 90_000}, nil
}

func (f *fakeRegistry) Add(_ context.Context, req *procctlv1.AddRequest) (*procctlv1.AddResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	ct := req.GetCreateTime()
	if ct == 0 {
		ct = 1_700_000_000_000 + int64(req.GetPid())
	}
	for _, p := range f.procs {
		if p.GetPid() == req.GetPid() && p.GetCreateTime() == ct {
			return nil, status.Errorf(codes.AlreadyExists, "%d@%d already tracked as id %d", p.GetPid(), ct, p.GetId())
		}
	}
	f.nextID++
	f.procs = append(f.procs, &procctlv1.Proc{
		Id: f.nextID, Pid: req.GetPid(), CreateTime: ct, Name: req.GetName(),
		Tags: req.GetTags(), Groups: req.GetGroups(), Alive: true,
	})
	return &procctlv1.AddResponse{Id: f.nextID, CreateTime: ct}, nil
}

func (f *fakeRegistry) List(_ context.Context, req *procctlv1.ListRequest) (*procctlv1.ListResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, req)
	resp := &procctlv1.ListResponse{}
	for _, p := range f.procs {
		if listMatches(p, req) {
			resp.Procs = append(resp.Procs, proto.Clone(p).(*procctlv1.Proc))
		}
	}
	return resp, nil
}

func listMatches(p *procctlv1.Proc, req *procctlv1.ListRequest) bool {
	if ids := req.GetIds(); len(ids) > 0 && !slices.Contains(ids, p.GetId()) {
		return false
	}
	if pids := req.GetPids(); len(pids) > 0 && !slices.Contains(pids, p.GetPid()) {
		return false
	}
	if idents := req.GetIdentities(); len(idents) > 0 && !slices.ContainsFunc(idents, func(id *procctlv1.Identity) bool {
		return id.GetPid() == p.GetPid() && id.GetCreateTime() == p.GetCreateTime()
	}) {
		return false
	}
	if names := req.GetNames(); len(names) > 0 && !slices.Contains(names, p.GetName()) {
		return false
	}
	if req.GetAliveOnly() && !p.GetAlive() {
		return false
	}
	if after := req.GetCreatedAfter(); after != 0 && p.GetCreateTime() < after {
		return false
	}
	if before := req.GetCreatedBefore(); before != 0 && p.GetCreateTime() >= before {
		return false
	}
	for _, tag := range req.GetTagsAll() {
		if !slices.Contains(p.GetTags(), tag) {
			return false
		}
	}
	for _, group := range req.GetGroupsAll() {
		if !slices.Contains(p.GetGroups(), group) {
			return false
		}
	}
	return true
}

func (f *fakeRegistry) Rm(_ context.Context, req *procctlv1.RmRequest) (*procctlv1.RmResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rmErr != nil {
		return nil, f.rmErr
	}
	i, err := f.find(req.GetId())
	if err != nil {
		return nil, err
	}
	f.procs = slices.Delete(f.procs, i, i+1)
	f.removed = append(f.removed, req.GetId())
	return &procctlv1.RmResponse{}, nil
}

func relabel(current, add, remove []string) []string {
	out := slices.DeleteFunc(slices.Clone(current), func(s string) bool { return slices.Contains(remove, s) })
	for _, s := range add {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func (f *fakeRegistry) SetLabels(_ context.Context, req *procctlv1.SetLabelsRequest) (*procctlv1.SetLabelsResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i, err := f.find(req.GetId())
	if err != nil {
		return nil, err
	}
	p := f.procs[i]
	p.Tags = relabel(p.GetTags(), req.GetAddTags(), req.GetRemoveTags())
	p.Groups = relabel(p.GetGroups(), req.GetAddGroups(), req.GetRemoveGroups())
	return &procctlv1.SetLabelsResponse{Proc: proto.Clone(p).(*procctlv1.Proc)}, nil
}

func renameIn(labels []string, from, to string) bool {
	i := slices.Index(labels, from)
	if i < 0 {
		return false
	}
	labels[i] = to
	return true
}

func (f *fakeRegistry) RenameTag(_ context.Context, req *procctlv1.RenameTagRequest) (*procctlv1.RenameTagResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n uint32
	for _, p := range f.procs {
		if renameIn(p.Tags, req.GetFrom(), req.GetTo()) {
			n++
		}
	}
	return &procctlv1.RenameTagResponse{Updated: n}, nil
}

func (f *fakeRegistry) RenameGroup(_ context.Context, req *procctlv1.RenameGroupRequest) (*procctlv1.RenameGroupResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n uint32
	for _, p := range f.procs {
		if renameIn(p.Groups, req.GetFrom(), req.GetTo()) {
			n++
		}
	}
	return &procctlv1.RenameGroupResponse{Updated: n}, nil
}

func (f *fakeRegistry) Reset(context.Context, *procctlv1.ResetRequest) (*procctlv1.ResetResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := len(f.procs)
	f.procs = nil
	return &procctlv1.ResetResponse{Removed: uint32(n)}, nil
}

// Two entries share pid 4242: the exited original and the process that
// reused its pid.
var (
	apiOld = &procctlv1.Proc{Id: 1, Pid: 4242, CreateTime: 1_700_000_000_000, Name: "api", Tags: []string{"web"}, Groups: []string{"prod"}}
	apiNew = &procctlv1.Proc{Id: 2, Pid: 4242, CreateTime: 1_700_000_600_000, Name: "api-2", Alive: true, Tags: []string{"web"}, Groups: []string{"prod"}}
	worker = &procctlv1.Proc{Id: 3, Pid: 5151, CreateTime: 1_700_000_300_000, Name: "worker", Alive: true, Tags: []string{"batch"}}
)

func fixtureRegistry() *fakeRegistry {
	return newFakeRegistry(apiOld, apiNew, worker)
}
