package storefront

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"foodfront/api"
	"foodfront/store"
	"foodfront/ws"
)

// fakeChannel fans sent frames into sends and lets tests inject incoming
// payloads.
type fakeChannel struct {
	sends    []ws.Frame
	handlers []func([]byte)
}

func (f *fakeChannel) Send(v any) error {
	frame, ok := v.(ws.Frame)
	if !ok {
		return errors.New("unexpected send type")
	}
	f.sends = append(f.sends, frame)
	return nil
}

func (f *fakeChannel) On(event string, handler func(data []byte)) func() {
	if event != "message" {
		return func() {}
	}
	f.handlers = append(f.handlers, handler)
	idx := len(f.handlers) - 1
	return func() { f.handlers[idx] = nil }
}

func (f *fakeChannel) push(t *testing.T, v any) {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal push: %v", err)
	}
	for _, h := range f.handlers {
		if h != nil {
			h(data)
		}
	}
}

func (f *fakeChannel) pushRaw(raw string) {
	for _, h := range f.handlers {
		if h != nil {
			h([]byte(raw))
		}
	}
}

func TestTrackerLoad(t *testing.T) {
	t.Run("load tracks and normalizes", func(t *testing.T) {
		s := store.New(store.Options{})
		f := &fakeAPI{getOrderFn: func(id string) (*api.OrderDetail, error) {
			return &api.OrderDetail{Order: api.Order{ID: id, Status: "PREPARING"}}, nil
		}}
		tr := NewTracker(s, f, &fakeChannel{})

		detail, err := tr.Load(context.Background(), "o1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if detail.ID != "o1" {
			t.Fatalf("expected o1, got %s", detail.ID)
		}

		o := s.Order()
		if o.ActiveOrderID != "o1" || o.Status != store.StatusPreparing {
			t.Fatalf("expected o1/preparing, got %+v", o)
		}
		if s.Loading() {
			t.Fatalf("expected loading reset")
		}
	})

	t.Run("load failure toasts and leaves tracker alone", func(t *testing.T) {
		s := store.New(store.Options{})
		f := &fakeAPI{getOrderFn: func(string) (*api.OrderDetail, error) {
			return nil, errors.New("order not found")
		}}
		tr := NewTracker(s, f, &fakeChannel{})

		if _, err := tr.Load(context.Background(), "nope"); err == nil {
			t.Fatalf("expected error")
		}
		if s.HasActiveOrder() {
			t.Fatalf("expected tracker untouched")
		}
		toasts := s.Toasts()
		if len(toasts) != 1 || toasts[0].Message != "order not found" {
			t.Fatalf("expected error toast, got %+v", toasts)
		}
		if s.Loading() {
			t.Fatalf("expected loading reset on failure")
		}
	})
}

func TestTrackerSubscribe(t *testing.T) {
	t.Run("subscription frames and status pushes", func(t *testing.T) {
		s := store.New(store.Options{})
		s.SetActiveOrder("o1")
		ch := &fakeChannel{}
		tr := NewTracker(s, &fakeAPI{}, ch)

		off := tr.Subscribe("o1")
		if len(ch.sends) != 1 || ch.sends[0].Action != "subscribe" || ch.sends[0].Channel != "order" || ch.sends[0].OrderID != "o1" {
			t.Fatalf("unexpected subscribe frame: %+v", ch.sends)
		}
		if !s.Order().SubscribedToUpdates {
			t.Fatalf("expected subscribed flag set")
		}

		ch.push(t, ws.StatusUpdate{Type: "order_status", OrderID: "o1", Status: "OUT_FOR_DELIVERY"})
		if got := s.Order().Status; got != store.StatusOutForDelivery {
			t.Fatalf("expected out_for_delivery, got %s", got)
		}

		off()
		if len(ch.sends) != 2 || ch.sends[1].Action != "unsubscribe" {
			t.Fatalf("expected unsubscribe frame, got %+v", ch.sends)
		}
		if s.Order().SubscribedToUpdates {
			t.Fatalf("expected subscribed flag cleared")
		}

		// After unsubscribing, pushes no longer land.
		ch.push(t, ws.StatusUpdate{Type: "order_status", OrderID: "o1", Status: "DELIVERED"})
		if got := s.Order().Status; got != store.StatusOutForDelivery {
			t.Fatalf("expected status frozen after unsubscribe, got %s", got)
		}
	})

	t.Run("other orders and malformed payloads are ignored", func(t *testing.T) {
		s := store.New(store.Options{})
		s.SetActiveOrder("o1")
		ch := &fakeChannel{}
		tr := NewTracker(s, &fakeAPI{}, ch)
		defer tr.Subscribe("o1")()

		ch.push(t, ws.StatusUpdate{Type: "order_status", OrderID: "o2", Status: "DELIVERED"})
		ch.push(t, map[string]string{"type": "chat", "orderId": "o1"})
		ch.pushRaw(`{not json`)
		ch.pushRaw(`"just a string"`)

		if got := s.Order().Status; got != store.StatusPlaced {
			t.Fatalf("expected status untouched, got %s", got)
		}
	})
}
