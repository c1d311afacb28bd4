//go:build !windows

package proc

import (
	"context"
	"io"
	"os/exec"
	"syscall"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSleep(t *testing.T) *exec.Cmd {
	t.Helper()
	if testing.Short() {
		t.Skip("spawns real processes")
	}
	cmd := exec.Command("sleep", "30")
	cmd.Dir = t.TempDir()
	require.NoError(t, cmd.Start())
	t.Cleanup(func() {
		_ = cmd.Process.Kill()
		_ = cmd.Wait()
	})
	return cmd
}

func realController() *Controller {
	return NewController(
		WithLogger(log.New(io.Discard)),
		WithTerminateTimeout(2*time.Second),
	)
}

func TestGopsutilTerminateRealProcess(t *testing.T) {
	cmd := startSleep(t)
	ctx := context.Background()
	ctrl := realController()

	h, err := ctrl.Attach(ctx, int32(cmd.Process.Pid))
	require.NoError(t, err)
	require.True(t, h.IsRunning(ctx))

	mb, ok := h.MemoryMB(ctx)
	assert.True(t, ok)
	assert.Greater(t, mb, 0.0)
	_, ok, err = h.CPUPercent(ctx, 20*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, h.Terminate(ctx))
	assert.False(t, h.IsRunning(ctx), "an unreaped child is a zombie and not running")
	require.NoError(t, h.Terminate(ctx))
}

func TestGopsutilFindRealProcess(t *testing.T) {
	cmd := startSleep(t)
	pid := int32(cmd.Process.Pid)

	hs, err := realController().Find(context.Background(), Predicate(func(a Attributes) bool {
		return a.PID == pid
	}))
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.Equal(t, pid, hs[0].PID())

	hs, err = realController().Find(context.Background(), ExactMatch{AttrPID: pid, AttrCmdline: []string{"sleep", "30"}})
	require.NoError(t, err)
	assert.Len(t, hs, 1)
}

func TestGopsutilRestartRealProcess(t *testing.T) {
	cmd := startSleep(t)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	h, err := realController().Attach(ctx, int32(cmd.Process.Pid))
	require.NoError(t, err)
	old := h.Identity()

	require.NoError(t, h.Restart(ctx))
	t.Cleanup(func() { _ = h.Terminate(context.Background()) })

	assert.NotEqual(t, old, h.Identity())
	assert.True(t, h.IsRunning(ctx))
	argv, err := mustLookup(t, h).Cmdline(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"sleep", "30"}, argv)
}

func mustLookup(t *testing.T, h *Handle) Process {
	t.Helper()
	p, ok := h.resolve(context.Background())
	require.True(t, ok)
	return p
}

func TestGopsutilRuntimeRightAfterAttach(t *testing.T) {
	cmd := startSleep(t)
	h, err := realController().Attach(context.Background(), int32(cmd.Process.Pid))
	require.NoError(t, err)

	rt := h.Runtime()
	assert.GreaterOrEqual(t, rt, time.Duration(0))
	assert.LessOrEqual(t, rt, time.Second)
}

func TestGopsutilTerminateAfterRealProcess(t *testing.T) {
	cmd := startSleep(t)
	ctx := context.Background()
	ctrl := realController()
	h, err := ctrl.Attach(ctx, int32(cmd.Process.Pid))
	require.NoError(t, err)

	start := time.Now()
	require.NoError(t, h.TerminateAfter(200*time.Millisecond, false))
	assert.True(t, h.IsRunning(ctx), "termination must wait for the delay")

	ctrl.Wait()
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	assert.False(t, h.IsRunning(ctx))
}

// waitZombie blocks until pid is an unreaped zombie.
func waitZombie(t *testing.T, pid int32) {
	t.Helper()
	p, err := process.NewProcess(pid)
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		states, err := p.Status()
		return err == nil && len(states) > 0 && states[0] == process.Zombie
	}, 5*time.Second, 10*time.Millisecond)
}

func TestGopsutilFindKeepsZombie(t *testing.T) {
	cmd := startSleep(t)
	pid := int32(cmd.Process.Pid)
	require.NoError(t, cmd.Process.Signal(syscall.SIGKILL))
	waitZombie(t, pid)

	ctx := context.Background()
	attrs, err := realController().FindAttributes(ctx, Predicate(func(a Attributes) bool { return a.PID == pid }))
	require.NoError(t, err)
	require.Len(t, attrs, 1)
	assert.NotZero(t, attrs[0].CreateTime)

	hs, err := realController().Find(ctx, ExactMatch{AttrPID: pid})
	require.NoError(t, err)
	require.Len(t, hs, 1)
	assert.False(t, hs[0].IsRunning(ctx), "a zombie is not running")
}

func TestGopsutilFindDropsReapedProcess(t *testing.T) {
	cmd := startSleep(t)
	pid := int32(cmd.Process.Pid)
	require.NoError(t, cmd.Process.Kill())
	_ = cmd.Wait()

	hs, err := realController().Find(context.Background(), ExactMatch{AttrPID: pid})
	require.NoError(t, err)
	assert.Empty(t, hs)
}
