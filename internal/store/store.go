// Package store holds the process-wide mock state of the dashboard.
//
// Each domain owns one container. Reads go through selectors that return
// copies; writes go through the named operations of the domain store, which
// notify subscribers with a snapshot of the new state.
package store

import (
	"sync"

	"go.uber.org/zap"
)

// Listener receives the state after a write
type Listener[S any] func(state S)

type container[S any] struct {
	name      string
	mu        sync.RWMutex
	state     S
	clone     func(S) S
	listeners map[int]Listener[S]
	nextID    int
	log       *zap.Logger
}

func newContainer[S any](name string, seed S, clone func(S) S, log *zap.Logger) *container[S] {
	if log == nil {
		log = zap.NewNop()
	}
	return &container[S]{
		name:      name,
		state:     clone(seed),
		clone:     clone,
		listeners: make(map[int]Listener[S]),
		log:       log.With(zap.String("store", name)),
	}
}

func (c *container[S]) snapshot() S {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clone(c.state)
}

// update applies fn under the write lock. fn reports whether the state
// changed; listeners only hear about effective writes.
func (c *container[S]) update(action string, fn func(state *S) bool) {
	c.mu.Lock()
	changed := fn(&c.state)
	if !changed {
		c.mu.Unlock()
		c.log.Debug("store action left state unchanged", zap.String("action", action))
		return
	}
	snapshot := c.clone(c.state)
	listeners := make([]Listener[S], 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	c.log.Debug("store action applied", zap.String("action", action), zap.Int("listeners", len(listeners)))
	for _, l := range listeners {
		l(snapshot)
	}
}

func (c *container[S]) subscribe(l Listener[S]) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = l
	c.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}
}
