package realtime

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeConn struct {
	messages []string
	failWith error
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.failWith != nil {
		return f.failWith
	}
	f.messages = append(f.messages, string(data))
	return nil
}

func newTestHub() *Hub {
	return NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	hub := newTestHub()
	a, b := &fakeConn{}, &fakeConn{}
	hub.Register(a)
	hub.Register(b)

	hub.Broadcast("user sent: ping")

	assert.Equal(t, []string{"user sent: ping"}, a.messages)
	assert.Equal(t, []string{"user sent: ping"}, b.messages)
}

func TestBroadcastDropsFailingClients(t *testing.T) {
	hub := newTestHub()
	healthy := &fakeConn{}
	broken := &fakeConn{failWith: errors.New("connection reset")}
	hub.Register(healthy)
	hub.Register(broken)

	hub.Broadcast("one")
	assert.Equal(t, 1, hub.Count())

	hub.Broadcast("two")
	assert.Equal(t, []string{"one", "two"}, healthy.messages)
	assert.Empty(t, broken.messages)
}

func TestUnregisterStopsDelivery(t *testing.T) {
	hub := newTestHub()
	c := &fakeConn{}
	hub.Register(c)
	hub.Unregister(c)

	hub.Broadcast("gone")

	assert.Empty(t, c.messages)
	assert.Equal(t, 0, hub.Count())
}
