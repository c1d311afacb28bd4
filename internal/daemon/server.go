// Package daemon runs the per-user procctl daemon: a gRPC service over a
// UNIX socket backed by the process registry and controller.
package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"google.golang.org/grpc"

	procctlv1 "procctl/api/proto/procctl/v1"
	"procctl/internal/config"
	"procctl/internal/logging"
	"procctl/internal/proc"
)

// Server wraps the UNIX listener, the gRPC server and the background
// workers of one daemon instance.
type Server struct {
	ln      net.Listener
	paths   Paths
	grpc    *grpc.Server
	svc     *service
	metrics *http.Server

	stopWatch context.CancelFunc
	watchDone chan struct{}
}

// Close stops serving, joins pending delayed terminations and unlinks the
// socket and pid file.
func (s *Server) Close() error {
	if s.stopWatch != nil {
		s.stopWatch()
		<-s.watchDone
	}
	if s.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = s.metrics.Shutdown(ctx)
		cancel()
	}
	if s.grpc != nil {
		s.grpc.GracefulStop()
	} else if s.ln != nil {
		_ = s.ln.Close()
	}
	if s.svc != nil {
		s.svc.ctrl.Wait()
	}
	if s.paths.Socket == "" {
		return nil
	}
	if err := removeIfExists(s.paths.Socket); err != nil {
		return err
	}
	return s.paths.removePID()
}

// Paths reports where the server listens.
func (s *Server) Paths() Paths {
	return s.paths
}

// StartDaemon loads the config at cfgPath (optional) and starts serving on
// paths.
func StartDaemon(paths Paths, cfgPath string) (*Server, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Timestamps: true,
	})
	if err != nil {
		return nil, err
	}
	return Start(paths, cfg, logger)
}

// Start binds the UNIX socket at paths and serves the ProcCtl service.
// ctrlOpts are applied to the process controller after the config-derived
// options. A socket left behind by a dead daemon is replaced; a live one is
// an error.
func Start(paths Paths, cfg config.Config, logger *log.Logger, ctrlOpts ...proc.Option) (*Server, error) {
	if err := paths.ensureDir(); err != nil {
		return nil, err
	}
	if _, err := os.Stat(paths.Socket); err == nil {
		if answers(paths) {
			return nil, fmt.Errorf("a daemon is already listening on %s", paths.Socket)
		}
		if err := os.Remove(paths.Socket); err != nil {
			return nil, err
		}
	}

	ln, err := net.Listen("unix", paths.Socket)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(paths.Socket, 0o600); err != nil {
		ln.Close()
		return nil, err
	}

	svc := newService(cfg, logger, ctrlOpts...)
	s := &Server{ln: ln, paths: paths, svc: svc}
	if err := paths.writePID(os.Getpid()); err != nil {
		s.Close()
		return nil, err
	}

	if cfg.MetricsAddr != "" {
		s.metrics, err = startMetrics(cfg.MetricsAddr, svc)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("start metrics on %s: %w", cfg.MetricsAddr, err)
		}
	}

	watchCtx, cancel := context.WithCancel(context.Background())
	s.stopWatch = cancel
	s.watchDone = make(chan struct{})
	go func() {
		defer close(s.watchDone)
		svc.watchLiveness(watchCtx, cfg.LivenessInterval)
	}()

	s.grpc = grpc.NewServer()
	procctlv1.RegisterProcCtlServer(s.grpc, svc)
	go func() {
		if err := s.grpc.Serve(ln); err != nil {
			logger.Error("grpc server stopped", "err", err)
		}
	}()
	logger.Info("daemon listening", "socket", paths.Socket, "pid", os.Getpid())
	return s, nil
}

// DefaultStopTimeout bounds the wait after SIGTERM. A stopping daemon
// first carries out every delayed termination scheduled without the
// background flag, and each of those may itself take the terminate timeout.
const DefaultStopTimeout = 30 * time.Second

// StopOptions tunes Stop.
type StopOptions struct {
	// Force sends SIGKILL once Timeout passes, abandoning pending
	// terminations.
	Force bool
	// Timeout is the wait after SIGTERM; zero means DefaultStopTimeout.
	Timeout time.Duration
}

// Stop signals the daemon at paths and waits for it to exit. The pid comes
// from the pid file, or from the daemon itself when the file is missing.
func Stop(paths Paths, opts StopOptions) error {
	pid, err := daemonPID(paths)
	if err != nil || pid == 0 {
		return err
	}
	if pid == os.Getpid() {
		return errors.New("refusing to stop current process")
	}
	st := stopper{
		signal: signalPID,
		exited: func(pid int) bool { return !answers(paths) && !pidAlive(pid) },
		poll:   100 * time.Millisecond,
	}
	if err := st.stop(pid, opts); err != nil {
		return err
	}
	return paths.removePID()
}

func daemonPID(paths Paths) (int, error) {
	pid, err := paths.ReadPID()
	if err == nil {
		return pid, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return 0, fmt.Errorf("read daemon pid: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	resp, perr := Ping(ctx, paths)
	if perr != nil {
		return 0, nil
	}
	return int(resp.GetPid()), nil
}

type stopper struct {
	signal func(pid int, sig syscall.Signal) error
	exited func(pid int) bool
	poll   time.Duration
}

func (s stopper) stop(pid int, opts StopOptions) error {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultStopTimeout
	}
	if err := s.signal(pid, syscall.SIGTERM); err != nil {
		return err
	}
	if s.wait(pid, timeout) {
		return nil
	}
	if !opts.Force {
		return fmt.Errorf("daemon process %d still running %s after SIGTERM; it may be finishing scheduled terminations, retry with a longer timeout or force", pid, timeout)
	}
	if err := s.signal(pid, syscall.SIGKILL); err != nil {
		return err
	}
	if s.wait(pid, 2*time.Second) {
		return nil
	}
	return fmt.Errorf("daemon process %d did not exit after SIGKILL", pid)
}

func (s stopper) wait(pid int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for !s.exited(pid) {
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(s.poll)
	}
	return true
}

func signalPID(pid int, sig syscall.Signal) error {
	p, err := os.FindProcess(pid)
	if err != nil {
		return err
	}
	if err := p.Signal(sig); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return err
	}
	return nil
}
