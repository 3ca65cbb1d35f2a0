package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// Client is the consumer side of the order channel: Send pushes a JSON
// message, On registers a handler and returns its unsubscribe func. Incoming
// frames are delivered raw on the "message" event; a dropped connection
// fires "close" once.
type Client struct {
	conn *websocket.Conn

	writeMu sync.Mutex

	mu       sync.Mutex
	handlers map[string]map[int]func([]byte)
	nextID   int
	closed   bool
}

func Dial(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, err
	}
	c := &Client{
		conn:     conn,
		handlers: make(map[string]map[int]func([]byte)),
	}
	go c.readLoop()
	return c, nil
}

func (c *Client) Send(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(v)
}

// On subscribes to an event ("message", "close"). The returned func removes
// the handler; calling it more than once is harmless.
func (c *Client) On(event string, handler func(data []byte)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.handlers[event] == nil {
		c.handlers[event] = make(map[int]func([]byte))
	}
	id := c.nextID
	c.nextID++
	c.handlers[event][id] = handler

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.handlers[event], id)
	}
}

func (c *Client) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
	return c.conn.Close()
}

func (c *Client) readLoop() {
	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			c.mu.Lock()
			closed := c.closed
			c.mu.Unlock()
			if !closed {
				c.dispatch("close", nil)
			}
			return
		}
		c.dispatch("message", data)
	}
}

func (c *Client) dispatch(event string, data []byte) {
	c.mu.Lock()
	hs := make([]func([]byte), 0, len(c.handlers[event]))
	for _, h := range c.handlers[event] {
		hs = append(hs, h)
	}
	c.mu.Unlock()

	for _, h := range hs {
		h(data)
	}
}
