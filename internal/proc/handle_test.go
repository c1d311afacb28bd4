package proc

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachRejectsNonPositivePID(t *testing.T) {
	ctrl := newTestController(newFakeInspector())
	for _, pid := range []int32{0, -1} {
		_, err := ctrl.Attach(context.Background(), pid)
		require.ErrorIs(t, err, ErrInvalidArgument)
	}
}

func TestAttachUnknownPID(t *testing.T) {
	ctrl := newTestController(newFakeInspector())
	_, err := ctrl.Attach(context.Background(), 4242)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFromProcessCapturesIdentity(t *testing.T) {
	p := newFakeProc(10, 1_700_000_000_123)
	ctrl := newTestController(newFakeInspector(p))

	h, err := ctrl.FromProcess(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, Identity{PID: 10, CreateTime: 1_700_000_000_123}, h.Identity())
	assert.Equal(t, "10@1700000000123", h.String())

	_, err = ctrl.FromProcess(context.Background(), nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestHandleIsRunning(t *testing.T) {
	p := newFakeProc(11, 1000)
	ctrl := newTestController(newFakeInspector(p))
	h, err := ctrl.Attach(context.Background(), 11)
	require.NoError(t, err)

	assert.True(t, h.IsRunning(context.Background()))

	p.mu.Lock()
	p.status = StatusZombie
	p.mu.Unlock()
	assert.False(t, h.IsRunning(context.Background()), "zombie must not count as running")

	p.mu.Lock()
	p.gone = true
	p.mu.Unlock()
	assert.False(t, h.IsRunning(context.Background()))
}

func TestHandleRecycledPID(t *testing.T) {
	in := newFakeInspector(newFakeProc(12, 1000))
	ctrl := newTestController(in)
	h, err := ctrl.Attach(context.Background(), 12)
	require.NoError(t, err)

	stranger := newFakeProc(12, 2000)
	stranger.rss = 64 << 20
	in.replace(stranger)

	assert.False(t, h.IsRunning(context.Background()))
	_, ok := h.MemoryMB(context.Background())
	assert.False(t, ok)
	_, ok, err = h.CPUPercent(context.Background(), 0)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, h.Terminate(context.Background()))
	terms, kills := stranger.counts()
	assert.Zero(t, terms, "recycled pid must never be signaled")
	assert.Zero(t, kills)
}

func TestHandleRuntime(t *testing.T) {
	ctrl := newTestController(newFakeInspector())
	created := time.Now().Add(-2 * time.Second)
	h := ctrl.Handle(Identity{PID: 13, CreateTime: created.UnixMilli()})

	rt := h.Runtime()
	assert.GreaterOrEqual(t, rt, 2*time.Second)
	assert.Less(t, rt, time.Minute)
}

func TestHandleCPUPercent(t *testing.T) {
	p := newFakeProc(14, 1000)
	p.cpu = 37.5
	ctrl := newTestController(newFakeInspector(p))
	h := ctrl.Handle(Identity{PID: 14, CreateTime: 1000})

	_, _, err := h.CPUPercent(context.Background(), -time.Millisecond)
	require.ErrorIs(t, err, ErrInvalidArgument)

	pct, ok, err := h.CPUPercent(context.Background(), 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.InDelta(t, 37.5, pct, 1e-9)

	p.mu.Lock()
	p.cpu = 0
	p.mu.Unlock()
	pct, ok, err = h.CPUPercent(context.Background(), 0)
	require.NoError(t, err)
	assert.True(t, ok, "zero is a valid measurement")
	assert.Zero(t, pct)
}

func TestHandleMemoryMB(t *testing.T) {
	p := newFakeProc(15, 1000)
	p.rss = 123456789
	ctrl := newTestController(newFakeInspector(p))
	h := ctrl.Handle(Identity{PID: 15, CreateTime: 1000})

	mb, ok := h.MemoryMB(context.Background())
	require.True(t, ok)
	assert.Equal(t, 117.74, mb)

	missing := ctrl.Handle(Identity{PID: 99, CreateTime: 1})
	_, ok = missing.MemoryMB(context.Background())
	assert.False(t, ok)
}

func TestHandleCommand(t *testing.T) {
	p := newFakeProc(16, 1000)
	ctrl := newTestController(newFakeInspector(p))
	h := ctrl.Handle(Identity{PID: 16, CreateTime: 1000})

	argv, cwd, ok := h.Command(context.Background())
	require.True(t, ok)
	assert.Equal(t, []string{"worker", "--serve"}, argv)
	assert.Equal(t, "/srv", cwd)

	_, _, ok = ctrl.Handle(Identity{PID: 16, CreateTime: 999}).Command(context.Background())
	assert.False(t, ok)
}
