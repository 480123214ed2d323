package websocket

import (
	"encoding/json"
	"time"

	"picklrzone/pkg/logger"
)

const (
	EventPing  = "ping"
	EventPong  = "pong"
	EventError = "error"
)

// Event is the envelope of every frame sent over the socket.
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data,omitempty"`
}

// The socket is push-only. Clients may send pings to check liveness; all
// writes go through the REST API.
func (c *Client) handleIncoming(raw []byte) {
	var incoming struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &incoming); err != nil {
		c.reply(Event{Type: EventError, Data: "invalid message format"})
		return
	}

	switch incoming.Type {
	case EventPing:
		c.reply(Event{Type: EventPong, Data: time.Now().UTC().Format(time.RFC3339)})
	default:
		logger.Debug("Ignoring websocket message of type %q from %s", incoming.Type, c.UserID)
	}
}

func (c *Client) reply(event Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	select {
	case c.Send <- payload:
	default:
	}
}
