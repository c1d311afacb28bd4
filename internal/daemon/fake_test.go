package daemon

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"procctl/internal/config"
	"procctl/internal/logging"
	"procctl/internal/proc"
)

type stubProc struct {
	pid  int32
	ct   int64
	argv []string
	cwd  string
	rss  uint64
	gone bool
}

// stubOS is an in-memory process table.
type stubOS struct {
	mu      sync.Mutex
	procs   map[int32]*stubProc
	nextPID int32
}

func newStubOS(procs ...*stubProc) *stubOS {
	s := &stubOS{procs: make(map[int32]*stubProc), nextPID: 9000}
	for _, p := range procs {
		s.procs[p.pid] = p
	}
	return s
}

func (s *stubOS) exit(pid int32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.procs[pid].gone = true
}

func (s *stubOS) alive(pid int32) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.procs[pid]
	return ok && !p.gone
}

func (s *stubOS) Lookup(_ context.Context, pid int32) (proc.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.procs[pid]
	if !ok || p.gone {
		return nil, fmt.Errorf("pid %d: %w", pid, proc.ErrNotFound)
	}
	return &stubHandle{os: s, p: p}, nil
}

func (s *stubOS) Enumerate(context.Context) ([]proc.Attributes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]proc.Attributes, 0, len(s.procs))
	for _, p := range s.procs {
		if p.gone {
			continue
		}
		out = append(out, proc.Attributes{PID: p.pid, CreateTime: p.ct, Name: p.argv[0], Cwd: p.cwd, Username: "tester", Cmdline: p.argv})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out, nil
}

func (s *stubOS) Spawn(_ context.Context, argv []string, cwd string) (proc.Process, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextPID++
	p := &stubProc{pid: s.nextPID, ct: time.Now().UnixMilli(), argv: argv, cwd: cwd}
	s.procs[p.pid] = p
	return &stubHandle{os: s, p: p}, nil
}

type stubHandle struct {
	os *stubOS
	p  *stubProc
}

func (h *stubHandle) locked(fn func(p *stubProc) error) error {
	h.os.mu.Lock()
	defer h.os.mu.Unlock()
	if h.p.gone {
		return fmt.Errorf("pid %d: %w", h.p.pid, proc.ErrNotFound)
	}
	return fn(h.p)
}

func (h *stubHandle) PID() int32 { return h.p.pid }

func (h *stubHandle) CreateTime(context.Context) (int64, error) {
	var ct int64
	err := h.locked(func(p *stubProc) error { ct = p.ct; return nil })
	return ct, err
}

func (h *stubHandle) IsRunning(context.Context) (bool, error) {
	return h.locked(func(*stubProc) error { return nil }) == nil, nil
}

func (h *stubHandle) Status(context.Context) (proc.Status, error) {
	return proc.StatusSleeping, h.locked(func(*stubProc) error { return nil })
}

func (h *stubHandle) CPUPercent(context.Context, time.Duration) (float64, error) {
	return 12.5, h.locked(func(*stubProc) error { return nil })
}

func (h *stubHandle) MemoryRSS(context.Context) (uint64, error) {
	var rss uint64
	err := h.locked(func(p *stubProc) error { rss = p.rss; return nil })
	return rss, err
}

func (h *stubHandle) Cmdline(context.Context) ([]string, error) {
	var argv []string
	err := h.locked(func(p *stubProc) error { argv = p.argv; return nil })
	return argv, err
}

func (h *stubHandle) Cwd(context.Context) (string, error) {
	var cwd string
	err := h.locked(func(p *stubProc) error { cwd = p.cwd; return nil })
	return cwd, err
}

func (h *stubHandle) Terminate(context.Context) error {
	return h.locked(func(p *stubProc) error { p.gone = true; return nil })
}

func (h *stubHandle) Kill(ctx context.Context) error {
	return h.Terminate(ctx)
}

func (h *stubHandle) Wait(context.Context, time.Duration) error {
	return nil
}

func newTestService(sys *stubOS) *service {
	cfg := config.Default()
	cfg.RestartPollInterval = time.Millisecond
	return newService(cfg, logging.Discard(), proc.WithInspector(sys))
}
