package daemon

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/config"
	"procctl/internal/proc"
	"procctl/internal/registry"
)

const statsConcurrency = 8

// service implements the ProcCtl gRPC service on top of the registry and
// the process controller.
type service struct {
	procctlv1.UnimplementedProcCtlServer

	reg    *registry.Registry
	ctrl   *proc.Controller
	cfg     config.Config
	logger  *log.Logger
	started time.Time
}

func newService(cfg config.Config, logger *log.Logger, ctrlOpts ...proc.Option) *service {
	opts := append([]proc.Option{
		proc.WithLogger(logger),
		proc.WithTerminateTimeout(cfg.TerminateTimeout),
		proc.WithRestartPollInterval(cfg.RestartPollInterval),
	}, ctrlOpts...)
	return &service{
		reg:     registry.New(cfg.LastSeenUpdateInterval),
		ctrl:    proc.NewController(opts...),
		cfg:     cfg,
		logger:  logger,
		started: time.Now(),
	}
}

func (s *service) Ping(ctx context.Context, _ *procctlv1.PingRequest) (*procctlv1.PingResponse, error) {
	return &procctlv1.PingResponse{
		Ok:       "pong",
		Pid:      int32(os.Getpid()),
		UptimeMs: time.Since(s.started).Milliseconds(),
	}, nil
}

func (s *service) Add(ctx context.Context, req *procctlv1.AddRequest) (*procctlv1.AddResponse, error) {
	pid := req.GetPid()
	if pid <= 0 {
		return nil, status.Error(codes.InvalidArgument, "pid must be positive")
	}

	h, err := s.ctrl.Attach(ctx, pid)
	if err != nil {
		return nil, toStatus(err)
	}
	if ct := req.GetCreateTime(); ct != 0 && ct != h.Identity().CreateTime {
		return nil, status.Errorf(codes.NotFound, "pid %d was recycled by another process", pid)
	}

	id, existed, err := s.track(ctx, h, req.GetName(), req.GetTags(), req.GetGroups())
	if err != nil {
		return nil, registryStatus(err)
	}
	if existed {
		return nil, status.Errorf(codes.AlreadyExists, "%s already tracked as id %d", h.Identity(), id)
	}
	s.logger.Info("tracking process", "id", id, "identity", h.Identity())
	return &procctlv1.AddResponse{Id: uint64(id), CreateTime: h.Identity().CreateTime}, nil
}

func (s *service) track(ctx context.Context, h *proc.Handle, name string, tags, groups []string) (registry.ProcID, bool, error) {
	argv, cwd, _ := h.Command(ctx)
	return s.reg.Add(registry.Entry{
		Identity: h.Identity(),
		Cmd:      strings.Join(argv, " "),
		Cwd:      cwd,
		Name:     name,
		Tags:     tags,
		Groups:   groups,
	})
}

func (s *service) List(ctx context.Context, req *procctlv1.ListRequest) (*procctlv1.ListResponse, error) {
	filter := registry.ListFilter{
		TagsAny:    req.GetTagsAny(),
		TagsAll:    req.GetTagsAll(),
		GroupsAny:  req.GetGroupsAny(),
		GroupsAll:  req.GetGroupsAll(),
		AliveOnly:  req.GetAliveOnly(),
		PIDs:       req.GetPids(),
		Names:      req.GetNames(),
		TextSearch: req.GetTextSearch(),
	}
	for _, id := range req.GetIds() {
		filter.IDs = append(filter.IDs, registry.ProcID(id))
	}
	for _, ident := range req.GetIdentities() {
		filter.Identities = append(filter.Identities, proc.Identity{PID: ident.GetPid(), CreateTime: ident.GetCreateTime()})
	}
	if ms := req.GetCreatedAfter(); ms > 0 {
		filter.CreatedAfter = time.UnixMilli(ms)
	}
	if ms := req.GetCreatedBefore(); ms > 0 {
		filter.CreatedBefore = time.UnixMilli(ms)
	}
	if !filter.CreatedAfter.IsZero() && !filter.CreatedBefore.IsZero() && !filter.CreatedAfter.Before(filter.CreatedBefore) {
		return nil, status.Error(codes.InvalidArgument, "created_after must be earlier than created_before")
	}

	ps := s.reg.List(filter)
	resp := &procctlv1.ListResponse{
		Procs: make([]*procctlv1.Proc, 0, len(ps)),
	}
	for _, p := range ps {
		resp.Procs = append(resp.Procs, toProto(p))
	}
	return resp, nil
}

func (s *service) Find(ctx context.Context, req *procctlv1.FindRequest) (*procctlv1.FindResponse, error) {
	exact, err := exactMatch(req)
	if err != nil {
		return nil, err
	}
	matches, err := s.ctrl.FindAttributes(ctx, exact)
	if err != nil {
		return nil, toStatus(err)
	}

	resp := &procctlv1.FindResponse{Matches: make([]*procctlv1.FoundProcess, 0, len(matches))}
	for _, a := range matches {
		found := &procctlv1.FoundProcess{
			Pid:        a.PID,
			CreateTime: a.CreateTime,
			Name:       a.Name,
			Username:   a.Username,
			Cwd:        a.Cwd,
			Cmdline:    a.Cmdline,
		}
		if req.GetTrack() {
			id, _, err := s.reg.Add(registry.Entry{
				Identity: a.Identity(),
				Cmd:      strings.Join(a.Cmdline, " "),
				Cwd:      a.Cwd,
				Tags:     req.GetTags(),
				Groups:   req.GetGroups(),
			})
			if err != nil {
				return nil, registryStatus(fmt.Errorf("track %s: %w", a.Identity(), err))
			}
			found.TrackedId = uint64(id)
		}
		resp.Matches = append(resp.Matches, found)
	}
	return resp, nil
}

func (s *service) Kill(ctx context.Context, req *procctlv1.KillRequest) (*procctlv1.KillResponse, error) {
	var (
		h   *proc.Handle
		id  registry.ProcID
		err error
	)
	switch t := req.GetTarget().(type) {
	case *procctlv1.KillRequest_Id:
		h, id, err = s.target(ctx, t.Id, 0)
	case *procctlv1.KillRequest_Pid:
		h, id, err = s.target(ctx, 0, t.Pid)
	default:
		err = status.Error(codes.InvalidArgument, "target is required")
	}
	if err != nil {
		return nil, err
	}
	if err := h.Terminate(ctx); err != nil {
		return nil, toStatus(err)
	}
	if id != 0 {
		s.reg.SetAlive(id, false)
	}
	return &procctlv1.KillResponse{}, nil
}

func (s *service) KillAfter(ctx context.Context, req *procctlv1.KillAfterRequest) (*procctlv1.KillAfterResponse, error) {
	h, _, err := s.target(ctx, req.GetId(), 0)
	if err != nil {
		return nil, err
	}
	delay := time.Duration(req.GetDelayMs()) * time.Millisecond
	if err := h.TerminateAfter(delay, req.GetBackground()); err != nil {
		return nil, toStatus(err)
	}
	s.logger.Info("termination scheduled", "id", req.GetId(), "pid", h.PID(), "delay", delay, "background", req.GetBackground())
	return &procctlv1.KillAfterResponse{}, nil
}

func (s *service) Restart(ctx context.Context, req *procctlv1.RestartRequest) (*procctlv1.RestartResponse, error) {
	h, id, err := s.target(ctx, req.GetId(), 0)
	if err != nil {
		return nil, err
	}
	if err := h.Restart(ctx); err != nil {
		return nil, toStatus(err)
	}
	argv, cwd, _ := h.Command(ctx)
	if err := s.reg.UpdateIdentity(id, h.Identity(), strings.Join(argv, " "), cwd); err != nil {
		return nil, status.Error(codes.NotFound, err.Error())
	}
	p, _ := s.reg.Get(id)
	return &procctlv1.RestartResponse{Proc: toProto(p)}, nil
}

func (s *service) Stats(ctx context.Context, req *procctlv1.StatsRequest) (*procctlv1.StatsResponse, error) {
	interval := s.cfg.CPUSampleInterval
	if ms := req.GetCpuIntervalMs(); ms != 0 {
		interval = time.Duration(ms) * time.Millisecond
	}
	if interval < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "cpu interval must be non-negative, got %s", interval)
	}

	filter := registry.ListFilter{}
	for _, id := range req.GetIds() {
		filter.IDs = append(filter.IDs, registry.ProcID(id))
	}
	entries := s.reg.List(filter)

	stats := make([]*procctlv1.ProcStats, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(statsConcurrency)
	for i, p := range entries {
		g.Go(func() error {
			st, err := s.sample(gctx, p, interval)
			if err != nil {
				return err
			}
			stats[i] = st
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, toStatus(err)
	}
	return &procctlv1.StatsResponse{Stats: stats}, nil
}

func (s *service) sample(ctx context.Context, p registry.Proc, interval time.Duration) (*procctlv1.ProcStats, error) {
	h := s.ctrl.Handle(p.Identity)
	st := &procctlv1.ProcStats{
		Id:             uint64(p.ID),
		Pid:            p.PID(),
		CreateTime:     p.Identity.CreateTime,
		Name:           p.Name,
		Running:        h.IsRunning(ctx),
		RuntimeSeconds: h.Runtime().Seconds(),
	}
	cpu, ok, err := h.CPUPercent(ctx, interval)
	if err != nil {
		return nil, err
	}
	st.CpuPercent, st.CpuAvailable = cpu, ok
	st.MemoryMb, st.MemoryAvailable = h.MemoryMB(ctx)
	return st, nil
}

func (s *service) Rm(ctx context.Context, req *procctlv1.RmRequest) (*procctlv1.RmResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id must be provided")
	}
	if ok := s.reg.Remove(registry.ProcID(req.GetId())); !ok {
		return nil, status.Error(codes.NotFound, "id not found")
	}
	return &procctlv1.RmResponse{}, nil
}

func (s *service) SetLabels(ctx context.Context, req *procctlv1.SetLabelsRequest) (*procctlv1.SetLabelsResponse, error) {
	if req.GetId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "id must be provided")
	}
	p, err := s.reg.Relabel(registry.ProcID(req.GetId()), registry.LabelChange{
		AddTags:      req.GetAddTags(),
		RemoveTags:   req.GetRemoveTags(),
		AddGroups:    req.GetAddGroups(),
		RemoveGroups: req.GetRemoveGroups(),
	})
	if err != nil {
		return nil, registryStatus(err)
	}
	return &procctlv1.SetLabelsResponse{Proc: toProto(p)}, nil
}

func (s *service) RenameTag(ctx context.Context, req *procctlv1.RenameTagRequest) (*procctlv1.RenameTagResponse, error) {
	if strings.TrimSpace(req.GetFrom()) == "" || strings.TrimSpace(req.GetTo()) == "" {
		return nil, status.Error(codes.InvalidArgument, "from and to must be provided")
	}
	n, err := s.reg.RenameTag(req.GetFrom(), req.GetTo())
	if err != nil {
		return nil, registryStatus(err)
	}
	return &procctlv1.RenameTagResponse{Updated: uint32(n)}, nil
}

func (s *service) RenameGroup(ctx context.Context, req *procctlv1.RenameGroupRequest) (*procctlv1.RenameGroupResponse, error) {
	if strings.TrimSpace(req.GetFrom()) == "" || strings.TrimSpace(req.GetTo()) == "" {
		return nil, status.Error(codes.InvalidArgument, "from and to must be provided")
	}
	n, err := s.reg.RenameGroup(req.GetFrom(), req.GetTo())
	if err != nil {
		return nil, registryStatus(err)
	}
	return &procctlv1.RenameGroupResponse{Updated: uint32(n)}, nil
}

func (s *service) Reset(ctx context.Context, _ *procctlv1.ResetRequest) (*procctlv1.ResetResponse, error) {
	n := s.reg.Reset()
	s.logger.Info("registry reset", "removed", n)
	return &procctlv1.ResetResponse{Removed: uint32(n)}, nil
}

// target resolves a registry id, or attaches to a raw pid when id is zero.
func (s *service) target(ctx context.Context, id uint64, pid int32) (*proc.Handle, registry.ProcID, error) {
	if id != 0 {
		p, ok := s.reg.Get(registry.ProcID(id))
		if !ok {
			return nil, 0, status.Error(codes.NotFound, "id not found")
		}
		return s.ctrl.Handle(p.Identity), p.ID, nil
	}
	if pid <= 0 {
		return nil, 0, status.Error(codes.InvalidArgument, "target is required")
	}
	h, err := s.ctrl.Attach(ctx, pid)
	if err != nil {
		return nil, 0, toStatus(err)
	}
	return h, 0, nil
}

func toProto(p registry.Proc) *procctlv1.Proc {
	return &procctlv1.Proc{
		Id:           uint64(p.ID),
		Pid:          p.PID(),
		CreateTime:   p.Identity.CreateTime,
		Cmd:          p.Cmd,
		Cwd:          p.Cwd,
		Name:         p.Name,
		Alive:        p.Alive,
		Tags:         p.Meta.Tags,
		Groups:       p.Meta.Groups,
		AddedAtUnix:  p.AddedAt.Unix(),
		LastSeenUnix: p.LastSeen.Unix(),
	}
}

// exactMatch converts the wire form of an exact filter. Numeric attributes
// arrive as decimal strings and are parsed here so that "42" matches pid 42.
func exactMatch(req *procctlv1.FindRequest) (proc.ExactMatch, error) {
	exact := make(proc.ExactMatch, len(req.GetExact())+1)
	for k, v := range req.GetExact() {
		switch attr := proc.Attr(k); attr {
		case proc.AttrPID, proc.AttrCreateTime:
			n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
			if err != nil {
				return nil, status.Errorf(codes.InvalidArgument, "%s must be an integer, got %q", k, v)
			}
			exact[attr] = n
		case proc.AttrCmdline:
			return nil, status.Error(codes.InvalidArgument, "cmdline is matched through the cmdline field")
		default:
			exact[attr] = v
		}
	}
	if argv := req.GetCmdline(); len(argv) > 0 {
		exact[proc.AttrCmdline] = argv
	}
	return exact, nil
}

func registryStatus(err error) error {
	switch {
	case errors.Is(err, registry.ErrNameTaken):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, registry.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	default:
		return status.Error(codes.InvalidArgument, err.Error())
	}
}

// toStatus maps controller errors onto gRPC codes.
func toStatus(err error) error {
	var code codes.Code
	switch {
	case errors.Is(err, proc.ErrInvalidArgument):
		code = codes.InvalidArgument
	case errors.Is(err, proc.ErrNotFound):
		code = codes.NotFound
	case errors.Is(err, proc.ErrAccessDenied):
		code = codes.PermissionDenied
	case errors.Is(err, proc.ErrNotRunning):
		code = codes.FailedPrecondition
	case errors.Is(err, context.DeadlineExceeded):
		code = codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		code = codes.Canceled
	default:
		code = codes.Internal
	}
	return status.Error(code, fmt.Sprint(err))
}
