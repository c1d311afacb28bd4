package daemon

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

const (
	socketName = "procctl.sock"
	pidName    = "procctl.pid"
)

// Paths locates the files owned by one daemon instance. The pid file lives
// next to the socket.
type Paths struct {
	Socket string
	PID    string
}

// DefaultPaths resolves the per-user locations. PROCCTL_SOCKET names the
// socket outright. Otherwise the directory is PROCCTL_RUNTIME_DIR, then
// XDG_RUNTIME_DIR or /run/user/<uid> on linux. Other systems use a short
// /tmp name to stay under the sun_path limit.
func DefaultPaths() Paths {
	return pathsFor(socketLocation())
}

func pathsFor(socket string) Paths {
	return Paths{Socket: socket, PID: filepath.Join(filepath.Dir(socket), pidName)}
}

func socketLocation() string {
	if s := os.Getenv("PROCCTL_SOCKET"); s != "" {
		return s
	}
	if dir := os.Getenv("PROCCTL_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	uid := "0"
	if u, err := user.Current(); err == nil && u.Uid != "" {
		uid = u.Uid
	}
	if runtime.GOOS != "linux" {
		return filepath.Join(os.TempDir(), "procctl-"+uid+".sock")
	}
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return filepath.Join(dir, socketName)
	}
	return filepath.Join("/run/user", uid, socketName)
}

// Dir is the runtime directory holding the socket.
func (p Paths) Dir() string {
	return filepath.Dir(p.Socket)
}

func (p Paths) ensureDir() error {
	return os.MkdirAll(p.Dir(), 0o700)
}

func (p Paths) writePID(pid int) error {
	if err := p.ensureDir(); err != nil {
		return err
	}
	return os.WriteFile(p.PID, []byte(strconv.Itoa(pid)+"\n"), 0o600)
}

func (p Paths) removePID() error {
	return removeIfExists(p.PID)
}

// ReadPID returns the pid recorded by the running daemon.
func (p Paths) ReadPID() (int, error) {
	data, err := os.ReadFile(p.PID)
	if err != nil {
		return 0, err
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || pid <= 0 {
		return 0, fmt.Errorf("pid file %s is corrupt: %q", p.PID, strings.TrimSpace(string(data)))
	}
	return pid, nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
