package daemon

import (
	"context"
	"time"

	"procctl/internal/registry"
)

// watchLiveness refreshes the alive flag of every entry until ctx ends.
// It only observes; nothing is restarted.
func (s *service) watchLiveness(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		s.refreshLiveness(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *service) refreshLiveness(ctx context.Context) {
	for _, p := range s.reg.List(registry.ListFilter{}) {
		if ctx.Err() != nil {
			return
		}
		alive := s.ctrl.Handle(p.Identity).IsRunning(ctx)
		s.reg.SetAlive(p.ID, alive)
		if p.Alive && !alive {
			s.logger.Info("tracked process exited", "id", p.ID, "pid", p.PID(), "name", p.Name)
		}
	}
}
