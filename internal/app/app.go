package app

import (
	"procctl/internal/daemon"
	"procctl/internal/proc"
)

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to the optional daemon config file.
	ConfigPath string
	// Controller serves local process discovery. Defaults to a
	// gopsutil-backed controller.
	Controller *proc.Controller
	// Paths locates the daemon socket and pid file. The zero value means
	// daemon.DefaultPaths().
	Paths daemon.Paths
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	cfgPath string
	ctrl    *proc.Controller
	paths   daemon.Paths
	dial    dialFunc
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	ctrl := opts.Controller
	if ctrl == nil {
		ctrl = proc.NewController()
	}
	paths := opts.Paths
	if paths.Socket == "" {
		paths = daemon.DefaultPaths()
	}
	return &App{
		cfgPath: opts.ConfigPath,
		ctrl:    ctrl,
		paths:   paths,
		dial:    dialSocket,
	}
}

// ConfigPath returns the configured config file path (if any).
func (a *App) ConfigPath() string {
	return a.cfgPath
}
