// Package content keeps every render surface supplied with an always-current
// view of one entity collection. A feed starts from seed data, attaches a
// repository watch, and replaces its value wholesale on every snapshot; if
// the backend is unreachable for the whole feed lifetime, consumers keep
// rendering the seed.
package content

import (
	"context"
	"sync"

	"portfolia/pkg/logger"
)

// Watcher opens a snapshot stream for a feed. The channel closes when ctx
// is cancelled or the stream fails.
type Watcher[V any] func(ctx context.Context) (<-chan V, error)

// Publisher receives every accepted snapshot for fan-out to external
// transports (the websocket hub).
type Publisher interface {
	Publish(event string, data interface{})
}

type Feed[V any] struct {
	name  string
	watch Watcher[V]
	pub   Publisher

	mu      sync.RWMutex
	value   V
	loading bool
	subs    map[chan V]struct{}

	cancel context.CancelFunc
	done   chan struct{}
}

// NewFeed builds a feed primed with seedValue. The feed is inert until Start.
func NewFeed[V any](name string, seedValue V, watch Watcher[V], pub Publisher) *Feed[V] {
	return &Feed[V]{
		name:    name,
		watch:   watch,
		pub:     pub,
		value:   seedValue,
		loading: true,
		subs:    make(map[chan V]struct{}),
	}
}

// Start attaches the watch. Calling Start twice is a programming error.
func (f *Feed[V]) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.done = make(chan struct{})

	go f.run(ctx)
}

// Stop tears the subscription down and waits for the loop to exit.
func (f *Feed[V]) Stop() {
	if f.cancel == nil {
		return
	}
	f.cancel()
	<-f.done
}

// Value returns the current snapshot: the seed until the first delivery,
// then always the latest snapshot, surviving stream failures.
func (f *Feed[V]) Value() V {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.value
}

// Loading reports whether the first snapshot is still pending.
func (f *Feed[V]) Loading() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.loading
}

// Subscribe returns a channel receiving each new snapshot and a cancel
// function. Slow subscribers only ever see the latest snapshot: a pending
// undelivered value is replaced, never queued behind.
func (f *Feed[V]) Subscribe() (<-chan V, func()) {
	ch := make(chan V, 1)

	f.mu.Lock()
	f.subs[ch] = struct{}{}
	f.mu.Unlock()

	cancel := func() {
		f.mu.Lock()
		delete(f.subs, ch)
		f.mu.Unlock()
	}

	return ch, cancel
}

func (f *Feed[V]) run(ctx context.Context) {
	defer close(f.done)

	ch, err := f.watch(ctx)
	if err != nil {
		// Never surfaced: the feed keeps serving its seed value.
		logger.Error("Feed %s: failed to open subscription: %v", f.name, err)
		f.setLoading(false)
		return
	}

	for snapshot := range ch {
		f.apply(snapshot)
	}

	// Stream ended (cancellation or backend failure). Last value stays.
	f.setLoading(false)
}

func (f *Feed[V]) apply(snapshot V) {
	f.mu.Lock()
	f.value = snapshot
	f.loading = false
	for ch := range f.subs {
		select {
		case ch <- snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
	f.mu.Unlock()

	if f.pub != nil {
		f.pub.Publish(f.name, snapshot)
	}
}

func (f *Feed[V]) setLoading(loading bool) {
	f.mu.Lock()
	f.loading = loading
	f.mu.Unlock()
}
