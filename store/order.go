package store

import (
	"strings"
	"time"
)

// SetActiveOrder starts tracking an order. A non-empty id moves the tracker
// to placed; an empty id resets it to idle.
func (s *Store) SetActiveOrder(orderID ID) {
	s.set(func(st *State) {
		st.Order.ActiveOrderID = orderID
		if orderID != "" {
			st.Order.Status = StatusPlaced
		} else {
			st.Order.Status = StatusIdle
		}
		st.Order.LastUpdatedAt = time.Now()
	})
}

// SetOrderStatus records whatever status the poll or push source reported.
// Last write wins; the tracker does not sequence or validate transitions.
func (s *Store) SetOrderStatus(status OrderStatus) {
	s.set(func(st *State) {
		st.Order.Status = status
		st.Order.LastUpdatedAt = time.Now()
	})
}

func (s *Store) SetSubscribedToUpdates(subscribed bool) {
	s.set(func(st *State) {
		st.Order.SubscribedToUpdates = subscribed
		st.Order.LastUpdatedAt = time.Now()
	})
}

// ClearOrder fully resets the tracker.
func (s *Store) ClearOrder() {
	s.set(func(st *State) {
		st.Order = OrderState{Status: StatusIdle, LastUpdatedAt: time.Now()}
	})
}

func (s *Store) HasActiveOrder() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Order.ActiveOrderID != ""
}

func (s *Store) Order() OrderState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Order
}

// NormalizeStatus maps a raw backend or push status string onto the tracker
// enum by case-insensitive substring match. The checks run in a fixed
// priority order: confirm/prepar/ready/out-for-delivery must come before the
// bare "deliver" substring, which "delivered" also contains. No match means
// error.
func NormalizeStatus(raw string) OrderStatus {
	v := strings.ToLower(raw)
	switch {
	case strings.Contains(v, "idle"):
		return StatusIdle
	case strings.Contains(v, "creating"):
		return StatusCreating
	case strings.Contains(v, "placed"):
		return StatusPlaced
	case strings.Contains(v, "confirm"):
		return StatusConfirmed
	case strings.Contains(v, "prepar"):
		return StatusPreparing
	case strings.Contains(v, "ready"):
		return StatusReadyForPickup
	case strings.Contains(v, "out_for_delivery"), strings.Contains(v, "out"), strings.Contains(v, "delivery"):
		return StatusOutForDelivery
	case strings.Contains(v, "deliver"):
		return StatusDelivered
	case strings.Contains(v, "cancel"):
		return StatusCancelled
	default:
		return StatusError
	}
}
