// Package loading implements the one-shot delay that swaps skeleton
// placeholders for real content.
package loading

import (
	"context"
	"sync"
	"time"
)

// DefaultDelay is the simulated latency of the overview page
const DefaultDelay = 1500 * time.Millisecond

// Gate moves from loading to ready exactly once, after a delay. It never
// goes back. Cancelling its context or calling Stop before the delay elapses
// keeps it loading forever and the ready callback is never started.
type Gate struct {
	mu      sync.Mutex
	ready   bool
	stopped bool
	stop    context.CancelFunc
	done    chan struct{}
}

// Start arms a gate. onReady runs on the gate's goroutine, so UI callers
// should hand it to their event loop.
func Start(ctx context.Context, delay time.Duration, onReady func()) *Gate {
	ctx, cancel := context.WithCancel(ctx)
	g := &Gate{
		stop: cancel,
		done: make(chan struct{}),
	}

	go func() {
		defer close(g.done)
		defer cancel()

		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			g.mu.Lock()
			g.stopped = true
			g.mu.Unlock()
			return
		case <-timer.C:
		}

		g.mu.Lock()
		if g.stopped {
			g.mu.Unlock()
			return
		}
		g.ready = true
		g.mu.Unlock()

		if onReady != nil {
			onReady()
		}
	}()

	return g
}

// Ready reports whether the delay has elapsed
func (g *Gate) Ready() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.ready
}

// Stop tears the gate down. It is safe to call more than once and after the
// gate became ready.
func (g *Gate) Stop() {
	g.mu.Lock()
	if !g.ready {
		g.stopped = true
	}
	g.mu.Unlock()
	g.stop()
}

// Done is closed once the gate's goroutine has exited
func (g *Gate) Done() <-chan struct{} {
	return g.done
}
