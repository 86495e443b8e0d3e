package channel

import (
	"sync"

	"toromarket/pkg/logger"
)

// Broadcaster delivers payloads to every connection joined to a group.
// Groups are logical delivery targets, one per user.
type Broadcaster interface {
	Join(group string, client *Client)
	Leave(group string, client *Client)
	Broadcast(group string, payload []byte)
}

// UserGroup is the group key for a user's connections.
func UserGroup(userID string) string {
	return "user:" + userID
}

// Hub is the in-process Broadcaster. Membership changes and broadcast
// snapshots for a group are serialized under one lock; the lock is never
// held across anything that can block (sends are non-blocking on buffered
// per-client channels).
type Hub struct {
	mu     sync.Mutex
	groups map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		groups: make(map[string]map[*Client]struct{}),
	}
}

// Join registers a client under a group. Idempotent; creates the group on
// first use.
func (h *Hub) Join(group string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		members = make(map[*Client]struct{})
		h.groups[group] = members
	}
	members[client] = struct{}{}
}

// Leave removes a client from a group. No-op when the client was never
// joined. Empty groups are dropped.
func (h *Hub) Leave(group string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	members, ok := h.groups[group]
	if !ok {
		return
	}
	delete(members, client)
	if len(members) == 0 {
		delete(h.groups, group)
	}
}

// Broadcast delivers payload to every client currently joined to group.
// Delivery is best-effort per client: a full send buffer drops that one
// delivery and never affects the others or the caller.
func (h *Hub) Broadcast(group string, payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.groups[group] {
		select {
		case client.Send <- payload:
		default:
			logger.Warn("channel: dropped delivery to slow client %s in group %s", client.UserID, group)
		}
	}
}

// Members returns the current size of a group.
func (h *Hub) Members(group string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.groups[group])
}
