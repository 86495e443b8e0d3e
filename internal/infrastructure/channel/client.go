package channel

import (
	"time"

	"github.com/gorilla/websocket"

	"toromarket/pkg/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
)

// Client is one websocket connection joined to a user's group.
type Client struct {
	UserID string
	Group  string
	Conn   *websocket.Conn
	Send   chan []byte
}

func NewClient(userID string, conn *websocket.Conn) *Client {
	return &Client{
		UserID: userID,
		Group:  UserGroup(userID),
		Conn:   conn,
		Send:   make(chan []byte, 256),
	}
}

// ReadPump reads frames from the connection and hands them to receive.
// On any exit path, including abnormal closes, the client leaves its group
// before the goroutine terminates so later broadcasts cannot reach it.
func (c *Client) ReadPump(b Broadcaster, receive func(raw []byte)) {
	defer func() {
		b.Leave(c.Group, c)
		close(c.Send)
		c.Conn.Close()
	}()

	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("channel: read error for %s: %v", c.UserID, err)
			}
			return
		}
		receive(raw)
	}
}

// WritePump drains the send channel onto the connection and keeps the
// connection alive with pings. Exits when the send channel closes or a
// write fails.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				logger.Warn("channel: write error for %s: %v", c.UserID, err)
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
