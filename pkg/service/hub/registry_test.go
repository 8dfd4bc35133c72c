package hub_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/quantum-travel/quantumchat/pkg/service/hub"
)

// mockChannel records sends and signals closure
type mockChannel struct {
	mu      sync.Mutex
	sent    [][]byte
	sendErr error
	closed  chan struct{}
	once    sync.Once
}

func newMockChannel() *mockChannel {
	return &mockChannel{closed: make(chan struct{})}
}

func (c *mockChannel) Send(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, payload)
	return nil
}

func (c *mockChannel) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *mockChannel) sentCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.sent)
}

func (c *mockChannel) waitClosed(t *testing.T) {
	t.Helper()
	select {
	case <-c.closed:
	case <-time.After(time.Second):
		t.Fatal("channel was not closed")
	}
}

func TestRegistry_Connect(t *testing.T) {
	t.Run("registers and counts connections", func(t *testing.T) {
		r := hub.New()
		ctx := context.Background()

		gt.NoError(t, r.Connect(ctx, "client1", newMockChannel())).Required()
		gt.NoError(t, r.Connect(ctx, "client2", newMockChannel())).Required()
		gt.Number(t, r.Count()).Equal(2)
	})

	t.Run("rejects empty client ID", func(t *testing.T) {
		r := hub.New()
		err := r.Connect(context.Background(), "", newMockChannel())
		gt.Error(t, err)
	})

	t.Run("duplicate ID supersedes and closes the old channel", func(t *testing.T) {
		r := hub.New()
		ctx := context.Background()

		old := newMockChannel()
		gt.NoError(t, r.Connect(ctx, "client1", old)).Required()

		replacement := newMockChannel()
		gt.NoError(t, r.Connect(ctx, "client1", replacement)).Required()

		old.waitClosed(t)
		gt.Number(t, r.Count()).Equal(1)

		// Sends reach the replacement, not the superseded channel
		r.SendTo(ctx, "client1", []byte("hi"))
		gt.Number(t, replacement.sentCount()).Equal(1)
		gt.Number(t, old.sentCount()).Equal(0)
	})
}

func TestRegistry_Disconnect(t *testing.T) {
	r := hub.New()
	ctx := context.Background()

	gt.NoError(t, r.Connect(ctx, "client1", newMockChannel())).Required()
	gt.Number(t, r.Count()).Equal(1)

	// Disconnect is idempotent: multiple failure paths may race
	r.Disconnect(ctx, "client1")
	r.Disconnect(ctx, "client1")
	r.Disconnect(ctx, "never-connected")
	gt.Number(t, r.Count()).Equal(0)
}

func TestRegistry_Release(t *testing.T) {
	t.Run("removes and closes the owned channel", func(t *testing.T) {
		r := hub.New()
		ctx := context.Background()

		ch := newMockChannel()
		gt.NoError(t, r.Connect(ctx, "client1", ch)).Required()

		r.Release(ctx, "client1", ch)
		ch.waitClosed(t)
		gt.Number(t, r.Count()).Equal(0)
	})

	t.Run("superseded channel does not evict its replacement", func(t *testing.T) {
		r := hub.New()
		ctx := context.Background()

		old := newMockChannel()
		gt.NoError(t, r.Connect(ctx, "client1", old)).Required()
		replacement := newMockChannel()
		gt.NoError(t, r.Connect(ctx, "client1", replacement)).Required()

		// The old handler tears down after being superseded
		r.Release(ctx, "client1", old)
		gt.Number(t, r.Count()).Equal(1)

		r.SendTo(ctx, "client1", []byte("still here"))
		gt.Number(t, replacement.sentCount()).Equal(1)
	})
}

func TestRegistry_SendTo(t *testing.T) {
	t.Run("delivers to the named client only", func(t *testing.T) {
		r := hub.New()
		ctx := context.Background()

		ch1 := newMockChannel()
		ch2 := newMockChannel()
		gt.NoError(t, r.Connect(ctx, "client1", ch1)).Required()
		gt.NoError(t, r.Connect(ctx, "client2", ch2)).Required()

		r.SendTo(ctx, "client1", []byte("payload"))
		gt.Number(t, ch1.sentCount()).Equal(1)
		gt.Number(t, ch2.sentCount()).Equal(0)
	})

	t.Run("absent client is a silent no-op", func(t *testing.T) {
		r := hub.New()
		r.SendTo(context.Background(), "ghost", []byte("payload"))
	})

	t.Run("send failure drops the connection", func(t *testing.T) {
		r := hub.New()
		ctx := context.Background()

		ch := newMockChannel()
		ch.sendErr = errors.New("broken pipe")
		gt.NoError(t, r.Connect(ctx, "client1", ch)).Required()

		r.SendTo(ctx, "client1", []byte("payload"))
		ch.waitClosed(t)
		gt.Number(t, r.Count()).Equal(0)
	})
}

func TestRegistry_Broadcast(t *testing.T) {
	r := hub.New()
	ctx := context.Background()

	healthy1 := newMockChannel()
	healthy2 := newMockChannel()
	failing := newMockChannel()
	failing.sendErr = errors.New("connection reset")

	gt.NoError(t, r.Connect(ctx, "a", healthy1)).Required()
	gt.NoError(t, r.Connect(ctx, "b", failing)).Required()
	gt.NoError(t, r.Connect(ctx, "c", healthy2)).Required()

	// One failing channel must not abort the remaining sends
	r.Broadcast(ctx, []byte("to everyone"))

	gt.Number(t, healthy1.sentCount()).Equal(1)
	gt.Number(t, healthy2.sentCount()).Equal(1)
	failing.waitClosed(t)
	gt.Number(t, r.Count()).Equal(2)
}
