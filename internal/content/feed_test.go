package content

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []string
}

func (p *recordingPublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestFeedServesSeedUntilFirstSnapshot(t *testing.T) {
	updates := make(chan []string)
	feed := NewFeed("items", []string{"seed-a", "seed-b"}, func(ctx context.Context) (<-chan []string, error) {
		return updates, nil
	}, nil)

	assert.Equal(t, []string{"seed-a", "seed-b"}, feed.Value())
	assert.True(t, feed.Loading())

	feed.Start(context.Background())
	defer feed.Stop()

	// Still the seed: nothing has been delivered yet.
	assert.Equal(t, []string{"seed-a", "seed-b"}, feed.Value())

	updates <- []string{"live-1"}
	waitFor(t, func() bool { return !feed.Loading() })

	assert.Equal(t, []string{"live-1"}, feed.Value())
	close(updates)
}

func TestFeedReplacesValueWholesale(t *testing.T) {
	updates := make(chan []string)
	feed := NewFeed("items", []string{"seed"}, func(ctx context.Context) (<-chan []string, error) {
		return updates, nil
	}, nil)

	feed.Start(context.Background())
	defer feed.Stop()

	updates <- []string{"a", "b", "c"}
	waitFor(t, func() bool { return len(feed.Value()) == 3 })

	// The next snapshot is smaller; nothing from the previous one survives.
	updates <- []string{"d"}
	waitFor(t, func() bool { return len(feed.Value()) == 1 })
	assert.Equal(t, []string{"d"}, feed.Value())
	close(updates)
}

func TestFeedKeepsSeedWhenWatchFailsToOpen(t *testing.T) {
	feed := NewFeed("items", []string{"seed"}, func(ctx context.Context) (<-chan []string, error) {
		return nil, errors.New("backend unreachable")
	}, nil)

	feed.Start(context.Background())
	feed.Stop()

	assert.Equal(t, []string{"seed"}, feed.Value())
	assert.False(t, feed.Loading())
}

func TestFeedKeepsLastValueAfterStreamEnds(t *testing.T) {
	updates := make(chan []string, 1)
	feed := NewFeed("items", []string{"seed"}, func(ctx context.Context) (<-chan []string, error) {
		return updates, nil
	}, nil)

	feed.Start(context.Background())

	updates <- []string{"live"}
	waitFor(t, func() bool { return !feed.Loading() })

	// Simulate a stream failure; the channel closes and the loop exits.
	close(updates)
	feed.Stop()

	assert.Equal(t, []string{"live"}, feed.Value())
}

func TestFeedSubscriberSeesLatestSnapshotOnly(t *testing.T) {
	updates := make(chan []string)
	feed := NewFeed("items", []string{"seed"}, func(ctx context.Context) (<-chan []string, error) {
		return updates, nil
	}, nil)

	feed.Start(context.Background())
	defer feed.Stop()

	sub, cancel := feed.Subscribe()
	defer cancel()

	// The subscriber never drains, so the stale snapshot is replaced.
	updates <- []string{"first"}
	updates <- []string{"second"}
	waitFor(t, func() bool { return len(feed.Value()) == 1 && feed.Value()[0] == "second" })

	select {
	case got := <-sub:
		assert.Equal(t, []string{"second"}, got)
	case <-time.After(time.Second):
		t.Fatal("subscriber never received a snapshot")
	}
	close(updates)
}

func TestFeedPublishesEverySnapshot(t *testing.T) {
	pub := &recordingPublisher{}
	updates := make(chan []string)
	feed := NewFeed("projects", []string{}, func(ctx context.Context) (<-chan []string, error) {
		return updates, nil
	}, pub)

	feed.Start(context.Background())
	defer feed.Stop()

	updates <- []string{"a"}
	updates <- []string{"b"}
	waitFor(t, func() bool { return pub.count() == 2 })

	pub.mu.Lock()
	defer pub.mu.Unlock()
	require.Len(t, pub.events, 2)
	assert.Equal(t, "projects", pub.events[0])
	close(updates)
}
