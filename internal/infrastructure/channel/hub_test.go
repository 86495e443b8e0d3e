package channel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestClient(userID string) *Client {
	return &Client{
		UserID: userID,
		Group:  UserGroup(userID),
		Send:   make(chan []byte, 8),
	}
}

func TestHubBroadcastReachesGroupMembers(t *testing.T) {
	hub := NewHub()

	a := newTestClient("alice")
	b := newTestClient("alice")
	other := newTestClient("bob")

	hub.Join(a.Group, a)
	hub.Join(b.Group, b)
	hub.Join(other.Group, other)

	hub.Broadcast(UserGroup("alice"), []byte("hello"))

	assert.Equal(t, []byte("hello"), <-a.Send)
	assert.Equal(t, []byte("hello"), <-b.Send)
	assert.Empty(t, other.Send)
}

func TestHubNoDeliveryAfterLeave(t *testing.T) {
	hub := NewHub()

	c := newTestClient("alice")
	hub.Join(c.Group, c)
	hub.Leave(c.Group, c)

	hub.Broadcast(c.Group, []byte("hello"))

	assert.Empty(t, c.Send)
	assert.Equal(t, 0, hub.Members(c.Group))
}

func TestHubJoinIsIdempotent(t *testing.T) {
	hub := NewHub()

	c := newTestClient("alice")
	hub.Join(c.Group, c)
	hub.Join(c.Group, c)

	assert.Equal(t, 1, hub.Members(c.Group))

	hub.Broadcast(c.Group, []byte("once"))
	assert.Len(t, c.Send, 1)
}

func TestHubLeaveUnknownClientIsNoop(t *testing.T) {
	hub := NewHub()

	c := newTestClient("alice")
	hub.Leave(c.Group, c)

	assert.Equal(t, 0, hub.Members(c.Group))
}

func TestHubSlowClientDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()

	slow := &Client{UserID: "alice", Group: UserGroup("alice"), Send: make(chan []byte, 1)}
	fast := newTestClient("alice")

	hub.Join(slow.Group, slow)
	hub.Join(fast.Group, fast)

	// Fill the slow client's buffer, then broadcast again. The second
	// delivery to slow is dropped; fast still gets both.
	hub.Broadcast(slow.Group, []byte("one"))
	hub.Broadcast(slow.Group, []byte("two"))

	assert.Len(t, slow.Send, 1)
	assert.Len(t, fast.Send, 2)
}

func TestHubConcurrentJoinLeaveBroadcast(t *testing.T) {
	hub := NewHub()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := newTestClient("alice")
			hub.Join(c.Group, c)
			hub.Broadcast(c.Group, []byte("x"))
			hub.Leave(c.Group, c)
		}()
	}
	wg.Wait()

	assert.Equal(t, 0, hub.Members(UserGroup("alice")))
}
