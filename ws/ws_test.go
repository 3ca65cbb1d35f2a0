package ws

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func newTestServer(t *testing.T) (*Hub, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	hub := NewHub()
	go hub.Run()

	r := gin.New()
	r.GET("/ws/orders", hub.HandleWebSocket)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return hub, "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/orders"
}

func collectUpdates(t *testing.T, c *Client) <-chan StatusUpdate {
	t.Helper()
	updates := make(chan StatusUpdate, 16)
	c.On("message", func(data []byte) {
		var msg StatusUpdate
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
		updates <- msg
	})
	return updates
}

// publishUntil republishes until the subscriber sees the status; the
// subscribe frame travels asynchronously, so the first publish can race it.
func publishUntil(t *testing.T, hub *Hub, updates <-chan StatusUpdate, orderID, status string) StatusUpdate {
	t.Helper()
	deadline := time.After(3 * time.Second)
	for {
		hub.Publish(orderID, status)
		select {
		case msg := <-updates:
			return msg
		case <-deadline:
			t.Fatalf("no %s update for %s", status, orderID)
		case <-time.After(50 * time.Millisecond):
		}
	}
}

func TestHubSubscribeAndPublish(t *testing.T) {
	hub, url := newTestServer(t)

	c, err := Dial(url)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	updates := collectUpdates(t, c)

	if err := c.Send(Frame{Action: "subscribe", Channel: "order", OrderID: "o1"}); err != nil {
		t.Fatalf("send subscribe: %v", err)
	}

	msg := publishUntil(t, hub, updates, "o1", "CONFIRMED")
	if msg.Type != "order_status" || msg.OrderID != "o1" || msg.Status != "CONFIRMED" {
		t.Fatalf("unexpected push: %+v", msg)
	}
}

func TestHubChannelIsolation(t *testing.T) {
	hub, url := newTestServer(t)

	c, err := Dial(url)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	updates := collectUpdates(t, c)
	if err := c.Send(Frame{Action: "subscribe", Channel: "order", OrderID: "o1"}); err != nil {
		t.Fatalf("send subscribe: %v", err)
	}
	publishUntil(t, hub, updates, "o1", "CONFIRMED")

	// Updates for other orders must not reach this subscriber.
	hub.Publish("o2", "DELIVERED")
	hub.Publish("o1", "PREPARING")

	deadline := time.After(3 * time.Second)
	for {
		select {
		case msg := <-updates:
			if msg.OrderID == "o2" {
				t.Fatalf("expected only o1 updates, got %+v", msg)
			}
			if msg.Status == "PREPARING" {
				return
			}
		case <-deadline:
			t.Fatalf("PREPARING update never arrived")
		}
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub, url := newTestServer(t)

	c, err := Dial(url)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	updates := collectUpdates(t, c)
	if err := c.Send(Frame{Action: "subscribe", Channel: "order", OrderID: "o1"}); err != nil {
		t.Fatalf("send subscribe: %v", err)
	}
	publishUntil(t, hub, updates, "o1", "CONFIRMED")

	if err := c.Send(Frame{Action: "unsubscribe", Channel: "order", OrderID: "o1"}); err != nil {
		t.Fatalf("send unsubscribe: %v", err)
	}
	// Let the unsubscribe frame land before publishing again.
	time.Sleep(100 * time.Millisecond)

	hub.Publish("o1", "DELIVERED")
	timeout := time.After(200 * time.Millisecond)
	for {
		select {
		case msg := <-updates:
			// Stale republished CONFIRMED frames may still be buffered.
			if msg.Status == "DELIVERED" {
				t.Fatalf("expected silence after unsubscribe, got %+v", msg)
			}
		case <-timeout:
			return
		}
	}
}

func TestHubIgnoresMalformedFrames(t *testing.T) {
	hub, url := newTestServer(t)

	c, err := Dial(url)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	updates := collectUpdates(t, c)

	// Garbage and off-channel frames must not kill the connection.
	if err := c.Send("not a frame"); err != nil {
		t.Fatalf("send garbage: %v", err)
	}
	if err := c.Send(Frame{Action: "subscribe", Channel: "chat", OrderID: "o1"}); err != nil {
		t.Fatalf("send off-channel: %v", err)
	}
	if err := c.Send(Frame{Action: "subscribe", Channel: "order", OrderID: "o1"}); err != nil {
		t.Fatalf("send subscribe: %v", err)
	}

	msg := publishUntil(t, hub, updates, "o1", "PLACED")
	if msg.Status != "PLACED" {
		t.Fatalf("unexpected push: %+v", msg)
	}
}

func TestClientUnsubscribeHandler(t *testing.T) {
	hub, url := newTestServer(t)

	c, err := Dial(url)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer c.Close()

	seen := make(chan struct{}, 16)
	off := c.On("message", func([]byte) { seen <- struct{}{} })

	updates := collectUpdates(t, c)
	if err := c.Send(Frame{Action: "subscribe", Channel: "order", OrderID: "o1"}); err != nil {
		t.Fatalf("send subscribe: %v", err)
	}
	publishUntil(t, hub, updates, "o1", "CONFIRMED")

	select {
	case <-seen:
	case <-time.After(time.Second):
		t.Fatalf("expected first handler to fire too")
	}

	off()
	drain(seen)
	publishUntil(t, hub, updates, "o1", "PREPARING")

	select {
	case <-seen:
		t.Fatalf("expected removed handler to stay silent")
	case <-time.After(100 * time.Millisecond):
	}
}

func drain(ch chan struct{}) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
