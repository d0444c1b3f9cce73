package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nsm-dev/webdemo/pkg/ports"
)

func TestPublishReachesSubscriber(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	received := make(chan ports.Event, 1)
	err := bus.Subscribe(context.Background(), "demo", func(ctx context.Context, event ports.Event) error {
		received <- event
		return nil
	})
	require.NoError(t, err)

	err = bus.Publish(context.Background(), "demo", ports.Event{ID: "e1", Type: "demo.event"})
	require.NoError(t, err)

	select {
	case event := <-received:
		assert.Equal(t, "e1", event.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}
}

func TestPublishOtherTopicNotDelivered(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	received := make(chan ports.Event, 1)
	err := bus.Subscribe(context.Background(), "demo", func(ctx context.Context, event ports.Event) error {
		received <- event
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Publish(context.Background(), "other", ports.Event{ID: "e1"}))

	select {
	case <-received:
		t.Fatal("event delivered to wrong topic")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscriptionRemovedOnCancel(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	received := make(chan ports.Event, 1)
	err := bus.Subscribe(ctx, "demo", func(ctx context.Context, event ports.Event) error {
		received <- event
		return nil
	})
	require.NoError(t, err)

	cancel()

	// Unsubscription runs in a goroutine; wait for the topic to drain
	require.Eventually(t, func() bool {
		bus.mu.RLock()
		defer bus.mu.RUnlock()
		return len(bus.subscribers["demo"]) == 0
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Publish(context.Background(), "demo", ports.Event{ID: "e1"}))

	select {
	case <-received:
		t.Fatal("event delivered after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestCloseClearsSubscribers(t *testing.T) {
	bus := NewEventBus()

	received := make(chan ports.Event, 1)
	err := bus.Subscribe(context.Background(), "demo", func(ctx context.Context, event ports.Event) error {
		received <- event
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Publish(context.Background(), "demo", ports.Event{ID: "e1"}))

	select {
	case <-received:
		t.Fatal("event delivered after close")
	case <-time.After(100 * time.Millisecond):
	}
}
