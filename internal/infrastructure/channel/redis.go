package channel

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"toromarket/pkg/logger"
)

const redisChannel = "toromarket:chat"

type envelope struct {
	Group   string          `json:"group"`
	Payload json.RawMessage `json:"payload"`
}

// RedisBroadcaster fans broadcasts out through a Redis pub/sub channel so
// multiple server instances share one logical channel layer. Membership
// stays local: each instance delivers to its own sockets when an envelope
// arrives.
type RedisBroadcaster struct {
	hub *Hub
	rdb *redis.Client
}

func NewRedisBroadcaster(rdb *redis.Client, hub *Hub) *RedisBroadcaster {
	return &RedisBroadcaster{
		hub: hub,
		rdb: rdb,
	}
}

// Start subscribes to the shared channel and delivers incoming envelopes
// to local group members until ctx is canceled.
func (b *RedisBroadcaster) Start(ctx context.Context) {
	pubsub := b.rdb.Subscribe(ctx, redisChannel)
	go func() {
		defer pubsub.Close()
		for {
			select {
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				var env envelope
				if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
					logger.Warn("channel: malformed redis envelope: %v", err)
					continue
				}
				b.hub.Broadcast(env.Group, env.Payload)

			case <-ctx.Done():
				return
			}
		}
	}()
}

func (b *RedisBroadcaster) Join(group string, client *Client) {
	b.hub.Join(group, client)
}

func (b *RedisBroadcaster) Leave(group string, client *Client) {
	b.hub.Leave(group, client)
}

// Broadcast publishes the payload for every instance, this one included.
// A publish failure degrades to local-only delivery rather than surfacing.
func (b *RedisBroadcaster) Broadcast(group string, payload []byte) {
	data, err := json.Marshal(envelope{Group: group, Payload: payload})
	if err != nil {
		b.hub.Broadcast(group, payload)
		return
	}
	if err := b.rdb.Publish(context.Background(), redisChannel, data).Err(); err != nil {
		logger.Warn("channel: redis publish failed, delivering locally: %v", err)
		b.hub.Broadcast(group, payload)
	}
}
