package proc

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

type fakeProc struct {
	mu sync.Mutex

	pid     int32
	ct      int64
	gone    bool
	status  Status
	cpu     float64
	rss     uint64
	cmdline []string
	cwd     string

	ignoreTerm   bool
	survivesKill bool
	zombieOnKill bool
	termErr      error
	killErr      error
	cmdlineErr   error

	terms int
	kills int
}

func newFakeProc(pid int32, ct int64) *fakeProc {
	return &fakeProc{pid: pid, ct: ct, status: StatusSleeping, cmdline: []string{"worker", "--serve"}, cwd: "/srv"}
}

func (f *fakeProc) notFound() error {
	return fmt.Errorf("pid %d: %w", f.pid, ErrNotFound)
}

func (f *fakeProc) PID() int32 { return f.pid }

func (f *fakeProc) CreateTime(context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gone {
		return 0, f.notFound()
	}
	return f.ct, nil
}

func (f *fakeProc) IsRunning(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.gone, nil
}

func (f *fakeProc) Status(context.Context) (Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gone {
		return StatusOther, f.notFound()
	}
	return f.status, nil
}

func (f *fakeProc) CPUPercent(ctx context.Context, _ time.Duration) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gone {
		return 0, f.notFound()
	}
	return f.cpu, nil
}

func (f *fakeProc) MemoryRSS(context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gone {
		return 0, f.notFound()
	}
	return f.rss, nil
}

func (f *fakeProc) Cmdline(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cmdlineErr != nil {
		return nil, f.cmdlineErr
	}
	return append([]string(nil), f.cmdline...), nil
}

func (f *fakeProc) Cwd(context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cwd, nil
}

func (f *fakeProc) Terminate(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.terms++
	if f.termErr != nil {
		return f.termErr
	}
	if f.gone {
		return f.notFound()
	}
	if !f.ignoreTerm {
		f.gone = true
	}
	return nil
}

func (f *fakeProc) Kill(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.kills++
	if f.killErr != nil {
		return f.killErr
	}
	switch {
	case f.gone:
		return f.notFound()
	case f.zombieOnKill:
		f.status = StatusZombie
	case !f.survivesKill:
		f.gone = true
	}
	return nil
}

func (f *fakeProc) Wait(context.Context, time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.gone || f.status == StatusZombie {
		return nil
	}
	return ErrTimeout
}

func (f *fakeProc) counts() (terms, kills int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.terms, f.kills
}

type spawnCall struct {
	argv []string
	cwd  string
}

type fakeInspector struct {
	mu       sync.Mutex
	procs    map[int32]*fakeProc
	attrs    []Attributes
	nextPID  int32
	spawnErr error
	spawned  []spawnCall
}

func newFakeInspector(procs ...*fakeProc) *fakeInspector {
	in := &fakeInspector{procs: make(map[int32]*fakeProc), nextPID: 5000}
	for _, p := range procs {
		in.procs[p.pid] = p
	}
	return in
}

// replace simulates the OS handing pid to an unrelated process.
func (in *fakeInspector) replace(p *fakeProc) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.procs[p.pid] = p
}

func (in *fakeInspector) Lookup(_ context.Context, pid int32) (Process, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	p, ok := in.procs[pid]
	if !ok {
		return nil, fmt.Errorf("pid %d: %w", pid, ErrNotFound)
	}
	p.mu.Lock()
	gone := p.gone
	p.mu.Unlock()
	if gone {
		return nil, p.notFound()
	}
	return p, nil
}

func (in *fakeInspector) Enumerate(ctx context.Context) ([]Attributes, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]Attributes(nil), in.attrs...), nil
}

func (in *fakeInspector) Spawn(_ context.Context, argv []string, cwd string) (Process, error) {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.spawned = append(in.spawned, spawnCall{argv: append([]string(nil), argv...), cwd: cwd})
	if in.spawnErr != nil {
		return nil, in.spawnErr
	}
	in.nextPID++
	p := newFakeProc(in.nextPID, time.Now().UnixMilli())
	p.cmdline = append([]string(nil), argv...)
	p.cwd = cwd
	in.procs[p.pid] = p
	return p, nil
}

func (in *fakeInspector) spawnCalls() []spawnCall {
	in.mu.Lock()
	defer in.mu.Unlock()
	return append([]spawnCall(nil), in.spawned...)
}

func newTestController(in Inspector) *Controller {
	return NewController(
		WithInspector(in),
		WithLogger(log.New(io.Discard)),
		WithRestartPollInterval(time.Millisecond),
	)
}
