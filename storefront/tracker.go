package storefront

import (
	"context"
	"encoding/json"

	"foodfront/api"
	"foodfront/store"
	"foodfront/ws"
)

// MessageChannel is the push side of the order channel (see ws.Client).
type MessageChannel interface {
	Send(v any) error
	On(event string, handler func(data []byte)) func()
}

// Tracker loads an order over REST and keeps the store's tracker slice in
// sync with push updates. REST and push are unordered writers to the same
// status field; last write wins.
type Tracker struct {
	Store   *store.Store
	API     OrderAPI
	Channel MessageChannel
}

func NewTracker(st *store.Store, orderAPI OrderAPI, channel MessageChannel) *Tracker {
	return &Tracker{Store: st, API: orderAPI, Channel: channel}
}

// Load fetches the order, marks it active and normalizes its status into
// the tracker. Failures surface a toast and leave the tracker untouched.
func (t *Tracker) Load(ctx context.Context, orderID string) (*api.OrderDetail, error) {
	t.Store.SetLoading(true)
	defer t.Store.SetLoading(false)

	detail, err := t.API.GetOrderByID(ctx, orderID)
	if err != nil {
		t.Store.ToastError(userMessage(err, "Failed to load order. Please try again."))
		return nil, err
	}

	t.Store.SetActiveOrder(orderID)
	if detail.Status != "" {
		t.Store.SetOrderStatus(store.NormalizeStatus(detail.Status))
	}
	return detail, nil
}

// Subscribe joins the order's push channel and returns the matching
// unsubscribe func. Malformed payloads and updates for other orders are
// dropped silently.
func (t *Tracker) Subscribe(orderID string) func() {
	off := t.Channel.On("message", func(data []byte) {
		var msg struct {
			Type    string `json:"type"`
			OrderID string `json:"orderId"`
			Status  string `json:"status"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			return
		}
		if msg.Type != "order_status" || msg.OrderID != orderID || msg.Status == "" {
			return
		}
		t.Store.SetOrderStatus(store.NormalizeStatus(msg.Status))
	})

	if err := t.Channel.Send(ws.Frame{Action: "subscribe", Channel: "order", OrderID: orderID}); err == nil {
		t.Store.SetSubscribedToUpdates(true)
	}

	return func() {
		// Best effort: the connection may already be gone.
		_ = t.Channel.Send(ws.Frame{Action: "unsubscribe", Channel: "order", OrderID: orderID})
		off()
		t.Store.SetSubscribedToUpdates(false)
	}
}
