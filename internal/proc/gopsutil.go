package proc

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

const waitPollInterval = 20 * time.Millisecond

// GopsutilInspector is the default Inspector, built on gopsutil.
type GopsutilInspector struct{}

func NewGopsutilInspector() *GopsutilInspector {
	return &GopsutilInspector{}
}

func (GopsutilInspector) Lookup(ctx context.Context, pid int32) (Process, error) {
	p, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return nil, classify(pid, err)
	}
	return &gopsProcess{p: p}, nil
}

func (GopsutilInspector) Enumerate(ctx context.Context) ([]Attributes, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Attributes, 0, len(procs))
	for _, p := range procs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if attrs, ok := snapshot(ctx, p); ok {
			out = append(out, attrs)
		}
	}
	return out, nil
}

// snapshot reads the attribute set of p. It reports false when p vanished
// or its create time is unreadable (no identity can be formed). A zombie
// answers "not found" for cwd and cmdline while its pid entry survives, so
// such errors only mark the attribute unavailable unless p is really gone.
func snapshot(ctx context.Context, p *process.Process) (Attributes, bool) {
	a := Attributes{PID: p.Pid}
	ct, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return a, false
	}
	a.CreateTime = ct

	missing := false
	record := func(attr Attr, err error) {
		if err == nil {
			return
		}
		if errors.Is(classify(p.Pid, err), ErrNotFound) {
			missing = true
		}
		a.MarkUnavailable(attr)
	}

	a.Name, err = p.NameWithContext(ctx)
	record(AttrName, err)
	a.Cwd, err = p.CwdWithContext(ctx)
	record(AttrCwd, err)
	a.Username, err = p.UsernameWithContext(ctx)
	record(AttrUsername, err)
	a.Cmdline, err = p.CmdlineSliceWithContext(ctx)
	record(AttrCmdline, err)

	if missing && vanished(ctx, p.Pid, ct) {
		return a, false
	}
	return a, true
}

// vanished reports whether pid no longer names the process created at ct.
func vanished(ctx context.Context, pid int32, ct int64) bool {
	fresh, err := process.NewProcessWithContext(ctx, pid)
	if err != nil {
		return true
	}
	now, err := fresh.CreateTimeWithContext(ctx)
	return err != nil || now != ct
}

func (g GopsutilInspector) Spawn(ctx context.Context, argv []string, cwd string) (Process, error) {
	if len(argv) == 0 {
		return nil, fmt.Errorf("%w: empty command line", ErrInvalidArgument)
	}
	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Dir = cwd
	cmd.SysProcAttr = detachedProcAttr()
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	pid := int32(cmd.Process.Pid)

	// Read the create time before the reaper can collect an early exit.
	p, err := process.NewProcessWithContext(ctx, pid)
	if err == nil {
		_, err = p.CreateTimeWithContext(ctx)
	}
	go func() { _ = cmd.Wait() }()
	if err != nil {
		return nil, fmt.Errorf("inspect spawned pid %d: %w", pid, classify(pid, err))
	}
	return &gopsProcess{p: p}, nil
}

type gopsProcess struct {
	p *process.Process
}

func (g *gopsProcess) PID() int32 {
	return g.p.Pid
}

func (g *gopsProcess) CreateTime(ctx context.Context) (int64, error) {
	ct, err := g.p.CreateTimeWithContext(ctx)
	return ct, classify(g.p.Pid, err)
}

func (g *gopsProcess) IsRunning(ctx context.Context) (bool, error) {
	running, err := g.p.IsRunningWithContext(ctx)
	return running, classify(g.p.Pid, err)
}

func (g *gopsProcess) Status(ctx context.Context) (Status, error) {
	states, err := g.p.StatusWithContext(ctx)
	if err != nil {
		return StatusOther, classify(g.p.Pid, err)
	}
	if len(states) == 0 {
		return StatusOther, nil
	}
	switch states[0] {
	case process.Running:
		return StatusRunning, nil
	case process.Sleep, process.Idle, process.Wait, process.Lock:
		return StatusSleeping, nil
	case process.Stop:
		return StatusStopped, nil
	case process.Zombie:
		return StatusZombie, nil
	default:
		return StatusOther, nil
	}
}

func (g *gopsProcess) CPUPercent(ctx context.Context, interval time.Duration) (float64, error) {
	pct, err := g.p.PercentWithContext(ctx, interval)
	return pct, classify(g.p.Pid, err)
}

func (g *gopsProcess) MemoryRSS(ctx context.Context) (uint64, error) {
	mem, err := g.p.MemoryInfoWithContext(ctx)
	if err != nil {
		return 0, classify(g.p.Pid, err)
	}
	return mem.RSS, nil
}

func (g *gopsProcess) Cmdline(ctx context.Context) ([]string, error) {
	argv, err := g.p.CmdlineSliceWithContext(ctx)
	return argv, classify(g.p.Pid, err)
}

func (g *gopsProcess) Cwd(ctx context.Context) (string, error) {
	cwd, err := g.p.CwdWithContext(ctx)
	return cwd, classify(g.p.Pid, err)
}

func (g *gopsProcess) Terminate(ctx context.Context) error {
	return classify(g.p.Pid, g.p.TerminateWithContext(ctx))
}

func (g *gopsProcess) Kill(ctx context.Context) error {
	return classify(g.p.Pid, g.p.KillWithContext(ctx))
}

// Wait polls because the process is generally not our child. A zombie has
// exited as far as the controller is concerned.
func (g *gopsProcess) Wait(ctx context.Context, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()
	ticker := time.NewTicker(waitPollInterval)
	defer ticker.Stop()
	for {
		running, err := g.IsRunning(ctx)
		if err != nil {
			return err
		}
		if !running {
			return nil
		}
		if st, err := g.Status(ctx); errors.Is(err, ErrNotFound) || st == StatusZombie {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return fmt.Errorf("pid %d after %s: %w", g.p.Pid, timeout, ErrTimeout)
		case <-ticker.C:
		}
	}
}

// classify maps OS errors onto ErrNotFound / ErrAccessDenied.
func classify(pid int32, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrAccessDenied):
		return err
	case errors.Is(err, process.ErrorProcessNotRunning),
		errors.Is(err, os.ErrProcessDone),
		errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("pid %d: %w: %w", pid, ErrNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("pid %d: %w: %w", pid, ErrAccessDenied, err)
	}
	if kind := classifyErrno(err); kind != nil {
		return fmt.Errorf("pid %d: %w: %w", pid, kind, err)
	}
	return fmt.Errorf("pid %d: %w", pid, err)
}
