package async

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Group runs short fire-and-forget tasks on a bounded pool. The gateway uses
// it for write-behind store updates so the request path never waits on them.
// After Close, new tasks are rejected and callers fall back to doing the work
// inline.
type Group struct {
	eg     *errgroup.Group
	closed atomic.Bool
	log    zerolog.Logger
}

// NewGroup creates a group running at most limit tasks concurrently.
func NewGroup(limit int, log zerolog.Logger) *Group {
	eg := &errgroup.Group{}
	eg.SetLimit(limit)
	return &Group{eg: eg, log: log}
}

// TryGo schedules task on the group. It returns false when the group is
// closed or already running at its limit; the caller must then run the task
// inline if the work cannot be dropped.
func (g *Group) TryGo(task func()) bool {
	if g.closed.Load() {
		return false
	}
	return g.eg.TryGo(func() error {
		defer func() {
			if r := recover(); r != nil {
				g.log.Error().Interface("panic", r).Msg("background task panicked")
			}
		}()
		task()
		return nil
	})
}

// Drain closes the group and waits for in-flight tasks to finish, giving up
// after timeout. Called once during shutdown, after the HTTP server has
// stopped accepting requests.
func (g *Group) Drain(timeout time.Duration) error {
	g.closed.Store(true)

	done := make(chan struct{})
	go func() {
		_ = g.eg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("async group drain timed out after %s", timeout)
	}
}
