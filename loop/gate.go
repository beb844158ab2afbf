package loop

import "context"

// renderGate hands control from the tick context to the render context.
//
// The notify channel holds at most one pending wake: a render context
// that missed several signals must not replay them one by one, only the
// latest simulation state matters. A nil gate (tick-only mode) makes
// signal a no-op.
type renderGate struct {
	notify chan struct{}
}

func newRenderGate() *renderGate {
	return &renderGate{
		notify: make(chan struct{}, 1),
	}
}

// signal wakes the render context. Never blocks: if a wake is already
// pending, the two collapse into one.
func (g *renderGate) signal() {
	if g == nil {
		return
	}

	select {
	case g.notify <- struct{}{}:
	default:
	}
}

// wait blocks until the next signal. The wait is unbounded except for
// cancellation: a stalled tick context stalls rendering too, that is
// intentional backpressure. Returns false when ctx is done.
func (g *renderGate) wait(ctx context.Context) bool {
	select {
	case <-g.notify:
		return true
	case <-ctx.Done():
		return false
	}
}
