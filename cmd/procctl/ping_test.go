package main

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"procctl/internal/app"
)

type stubController struct {
	pingFunc    func(ctx context.Context, timeout time.Duration) (app.PingResult, error)
	listFunc    func(ctx context.Context, params app.ListParams) ([]app.Process, error)
	removeFunc  func(ctx context.Context, params app.RemoveParams) (app.RemoveResult, error)
	killFunc    func(ctx context.Context, params app.KillParams) (app.KillResult, error)
	findFunc    func(ctx context.Context, params app.FindParams) (app.FindResult, error)
	statsFunc   func(ctx context.Context, params app.StatsParams) ([]app.ProcessStats, error)
	restartFunc func(ctx context.Context, params app.RestartParams) (app.RestartResult, error)
	addFunc     func(ctx context.Context, params app.AddParams) (app.AddResult, error)
	labelFunc   func(ctx context.Context, params app.LabelParams) (app.LabelResult, error)
	renameFunc  func(ctx context.Context, params app.RenameParams) (app.RenameResult, error)
	resetFunc   func(ctx context.Context, params app.ResetParams) (int, error)
	statusFunc  func() (app.DaemonStatus, error)
	stopFunc    func(params app.StopParams) error
}

func (s *stubController) Ping(ctx context.Context, timeout time.Duration) (app.PingResult, error) {
	if s.pingFunc != nil {
		return s.pingFunc(ctx, timeout)
	}
	return app.PingResult{}, errors.New("ping not implemented")
}

func (s *stubController) Add(ctx context.Context, params app.AddParams) (app.AddResult, error) {
	if s.addFunc != nil {
		return s.addFunc(ctx, params)
	}
	panic("Add not implemented")
}

func (s *stubController) Run(ctx context.Context, params app.RunParams) (app.RunResult, error) {
	panic("Run not implemented")
}

func (s *stubController) List(ctx context.Context, params app.ListParams) ([]app.Process, error) {
	if s.listFunc != nil {
		return s.listFunc(ctx, params)
	}
	panic("List not implemented")
}

func (s *stubController) Find(ctx context.Context, params app.FindParams) (app.FindResult, error) {
	if s.findFunc != nil {
		return s.findFunc(ctx, params)
	}
	panic("Find not implemented")
}

func (s *stubController) Remove(ctx context.Context, params app.RemoveParams) (app.RemoveResult, error) {
	if s.removeFunc != nil {
		return s.removeFunc(ctx, params)
	}
	panic("Remove not implemented")
}

func (s *stubController) Kill(ctx context.Context, params app.KillParams) (app.KillResult, error) {
	if s.killFunc != nil {
		return s.killFunc(ctx, params)
	}
	panic("Kill not implemented")
}

func (s *stubController) Restart(ctx context.Context, params app.RestartParams) (app.RestartResult, error) {
	if s.restartFunc != nil {
		return s.restartFunc(ctx, params)
	}
	panic("Restart not implemented")
}

func (s *stubController) Stats(ctx context.Context, params app.StatsParams) ([]app.ProcessStats, error) {
	if s.statsFunc != nil {
		return s.statsFunc(ctx, params)
	}
	panic("Stats not implemented")
}

func (s *stubController) Label(ctx context.Context, params app.LabelParams) (app.LabelResult, error) {
	if s.labelFunc != nil {
		return s.labelFunc(ctx, params)
	}
	panic("Label not implemented")
}

func (s *stubController) RenameLabel(ctx context.Context, params app.RenameParams) (app.RenameResult, error) {
	if s.renameFunc != nil {
		return s.renameFunc(ctx, params)
	}
	panic("RenameLabel not implemented")
}

func (s *stubController) Reset(ctx context.Context, params app.ResetParams) (int, error) {
	if s.resetFunc != nil {
		return s.resetFunc(ctx, params)
	}
	panic("Reset not implemented")
}

func (s *stubController) Status() (app.DaemonStatus, error) {
	if s.statusFunc != nil {
		return s.statusFunc()
	}
	panic("Status not implemented")
}

func (s *stubController) StopDaemon(params app.StopParams) error {
	if s.stopFunc != nil {
		return s.stopFunc(params)
	}
	panic("StopDaemon not implemented")
}

func (s *stubController) StartDaemon() (*app.DaemonHandle, error) {
	panic("StartDaemon not implemented")
}

func withController(t *testing.T, stub controllerAPI) {
	t.Helper()
	origFactory := controllerFactory
	controllerFactory = func() controllerAPI {
		return stub
	}
	t.Cleanup(func() {
		controllerFactory = origFactory
	})
}

func withOutput(t *testing.T, cmd *cobra.Command) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetContext(context.Background())
	t.Cleanup(func() {
		cmd.SetOut(nil)
	})
	return buf
}

func TestPingSuccess(t *testing.T) {
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (app.PingResult, error) {
			if timeout != 2*time.Second {
				t.Fatalf("expected timeout 2s, got %v", timeout)
			}
			return app.PingResult{Reply: "pong", DaemonPID: 4321, Uptime: 90500 * time.Millisecond, RTT: 1200 * time.Microsecond}, nil
		},
	})
	buf := withOutput(t, cmdPing)

	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 2
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	if err := cmdPing.RunE(cmdPing, nil); err != nil {
		t.Fatalf("RunE error: %v", err)
	}
	if got := buf.String(); got != "pong rtt=1.2ms daemon pid=4321 uptime=1m30s\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPingError(t *testing.T) {
	expected := errors.New("daemon down")
	withController(t, &stubController{
		pingFunc: func(ctx context.Context, timeout time.Duration) (app.PingResult, error) {
			return app.PingResult{}, expected
		},
	})
	withOutput(t, cmdPing)
	oldTimeout := pingTimeoutSeconds
	pingTimeoutSeconds = 1
	t.Cleanup(func() { pingTimeoutSeconds = oldTimeout })

	err := cmdPing.RunE(cmdPing, nil)
	if !errors.Is(err, expected) {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}
