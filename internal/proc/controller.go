// Package proc tracks OS processes by a recycle-safe identity and drives
// their termination and restart.
package proc

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

const (
	DefaultTerminateTimeout    = 5 * time.Second
	DefaultRestartPollInterval = 100 * time.Millisecond

	// killSettle bounds how long Terminate waits for the kernel to act on
	// SIGKILL before inspecting the process status.
	killSettle = 250 * time.Millisecond
)

// Controller creates handles and owns the collaborators they share: the OS
// inspector, the logger, timing knobs and the set of joinable delayed
// terminations.
type Controller struct {
	inspector Inspector
	logger    *log.Logger

	terminateTimeout time.Duration
	restartPoll      time.Duration

	tasks sync.WaitGroup
}

// Option configures a Controller.
type Option func(*Controller)

// WithInspector replaces the gopsutil-backed OS layer.
func WithInspector(in Inspector) Option {
	return func(c *Controller) {
		if in != nil {
			c.inspector = in
		}
	}
}

// WithLogger sets the diagnostics sink.
func WithLogger(l *log.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTerminateTimeout sets how long Terminate waits for a graceful exit.
func WithTerminateTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.terminateTimeout = d
		}
	}
}

// WithRestartPollInterval sets how often Restart checks that the old process is gone.
func WithRestartPollInterval(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.restartPoll = d
		}
	}
}

// NewController returns a controller backed by gopsutil unless overridden.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		terminateTimeout: DefaultTerminateTimeout,
		restartPoll:      DefaultRestartPollInterval,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.inspector == nil {
		c.inspector = NewGopsutilInspector()
	}
	if c.logger == nil {
		c.logger = log.NewWithOptions(os.Stderr, log.Options{
			Level:  log.WarnLevel,
			Prefix: "procctl",
		})
	}
	return c
}

// Inspector exposes the OS layer the controller resolves against.
func (c *Controller) Inspector() Inspector {
	return c.inspector
}

// Handle rehydrates a handle for a known identity.
func (c *Controller) Handle(id Identity) *Handle {
	return &Handle{ctrl: c, id: id}
}

// FromProcess wraps an already obtained process reference. Only the
// identity is kept; p is not retained.
func (c *Controller) FromProcess(ctx context.Context, p Process) (*Handle, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil process", ErrInvalidArgument)
	}
	ct, err := p.CreateTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("read create time of pid %d: %w", p.PID(), err)
	}
	return c.Handle(Identity{PID: p.PID(), CreateTime: ct}), nil
}

// Attach looks up pid and captures its identity.
func (c *Controller) Attach(ctx context.Context, pid int32) (*Handle, error) {
	if pid <= 0 {
		return nil, fmt.Errorf("%w: pid must be > 0, got %d", ErrInvalidArgument, pid)
	}
	p, err := c.inspector.Lookup(ctx, pid)
	if err != nil {
		return nil, fmt.Errorf("lookup pid %d: %w", pid, err)
	}
	return c.FromProcess(ctx, p)
}

// Find enumerates every visible process and returns handles for those
// matching f, in enumeration order.
func (c *Controller) Find(ctx context.Context, f Filter) ([]*Handle, error) {
	matches, err := c.FindAttributes(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]*Handle, 0, len(matches))
	for _, attrs := range matches {
		out = append(out, c.Handle(attrs.Identity()))
	}
	return out, nil
}

// FindAttributes is Find returning the matched snapshots instead of handles.
func (c *Controller) FindAttributes(ctx context.Context, f Filter) ([]Attributes, error) {
	match, err := compileFilter(f)
	if err != nil {
		return nil, err
	}
	snapshots, err := c.inspector.Enumerate(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate processes: %w", err)
	}
	out := make([]Attributes, 0)
	for _, attrs := range snapshots {
		if match(attrs) {
			out = append(out, attrs)
		}
	}
	return out, nil
}

// Wait blocks until every joinable TerminateAfter task has fired.
func (c *Controller) Wait() {
	c.tasks.Wait()
}
