package session

import (
	"sync"

	"github.com/gorilla/websocket"

	"github.com/rahul0401-coder/intraview-AI-career/internal/models"
)

// Client is one WebSocket subscriber to an interview's live-code feed.
type Client struct {
	Conn *websocket.Conn
	mu   sync.Mutex
	hook func(models.LiveCodeEvent)
}

func NewClient(conn *websocket.Conn) *Client { return &Client{Conn: conn} }

// SetSendHook replaces the default WebSocket sender (used in tests).
func (c *Client) SetSendHook(fn func(models.LiveCodeEvent)) {
	c.mu.Lock()
	c.hook = fn
	c.mu.Unlock()
}

func (c *Client) Send(event models.LiveCodeEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.hook != nil {
		c.hook(event)
		return
	}
	if c.Conn != nil {
		_ = c.Conn.WriteJSON(event)
	}
}
