package store

import "fmt"

// AddItemInput carries everything needed to add a line to the cart. ID is
// optional; a unique one is generated when absent. Quantity defaults to 1.
type AddItemInput struct {
	ID             ID
	RestaurantID   ID
	RestaurantName string
	MenuItemID     ID
	Name           string
	Price          float64
	Quantity       int
	ImageURL       string
	Options        map[string]any
	Notes          string
}

// ItemUpdate is a partial update for UpdateItem. Nil fields are left alone.
type ItemUpdate struct {
	Quantity *int
	Notes    *string
	Options  map[string]any
}

// AddItem adds a line item, enforcing the single-restaurant constraint.
// Adding from a different restaurant than the cart's current one discards
// the existing items first; the returned flag reports that so callers can
// surface a notification. An add matching an existing line (same menu item,
// same restaurant, equal options) merges by incrementing its quantity.
func (s *Store) AddItem(in AddItemInput) (replaced bool) {
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	incoming := RestaurantInfo{ID: in.RestaurantID, Name: in.RestaurantName}

	s.set(func(st *State) {
		items := append([]CartItem(nil), st.Cart.Items...)

		if st.Cart.Restaurant != nil && st.Cart.Restaurant.ID != incoming.ID {
			// Different restaurant: the old cart is gone, no merge.
			items = items[:0]
			replaced = true
		}

		restaurant := st.Cart.Restaurant
		if restaurant == nil || replaced {
			r := incoming
			restaurant = &r
		}

		idx := -1
		for i, it := range items {
			if it.MenuItemID == in.MenuItemID && it.RestaurantID == in.RestaurantID && sameOptions(it.Options, in.Options) {
				idx = i
				break
			}
		}

		if idx >= 0 {
			items[idx].Quantity += qty
			if in.Notes != "" {
				items[idx].Notes = in.Notes
			}
		} else {
			id := in.ID
			if id == "" {
				s.lineSeq++
				id = fmt.Sprintf("%s-%d", in.MenuItemID, s.lineSeq)
			}
			items = append(items, CartItem{
				ID:             id,
				RestaurantID:   in.RestaurantID,
				RestaurantName: in.RestaurantName,
				MenuItemID:     in.MenuItemID,
				Name:           in.Name,
				Price:          in.Price,
				Quantity:       qty,
				ImageURL:       in.ImageURL,
				Options:        cloneOptions(in.Options),
				Notes:          in.Notes,
			})
		}

		st.Cart = recalculated(items, restaurant)
	})
	return replaced
}

// UpdateItem applies a partial update to one line. Unknown ids are a no-op.
// Quantity is clamped to a minimum of 1; removal is a separate action.
func (s *Store) UpdateItem(id ID, upd ItemUpdate) {
	s.set(func(st *State) {
		idx := -1
		for i, it := range st.Cart.Items {
			if it.ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}

		items := append([]CartItem(nil), st.Cart.Items...)
		if upd.Quantity != nil {
			q := *upd.Quantity
			if q < 1 {
				q = 1
			}
			items[idx].Quantity = q
		}
		if upd.Notes != nil {
			items[idx].Notes = *upd.Notes
		}
		if upd.Options != nil {
			items[idx].Options = cloneOptions(upd.Options)
		}

		st.Cart = recalculated(items, st.Cart.Restaurant)
	})
}

// RemoveItem deletes one line. Emptying the cart clears the restaurant.
func (s *Store) RemoveItem(id ID) {
	s.set(func(st *State) {
		items := make([]CartItem, 0, len(st.Cart.Items))
		for _, it := range st.Cart.Items {
			if it.ID != id {
				items = append(items, it)
			}
		}
		restaurant := st.Cart.Restaurant
		if len(items) == 0 {
			restaurant = nil
		}
		st.Cart = recalculated(items, restaurant)
	})
}

// ClearCart resets to an empty cart with no restaurant.
func (s *Store) ClearCart() {
	s.set(func(st *State) {
		st.Cart = CartState{Items: []CartItem{}}
	})
}

// SetRestaurant points the cart at a restaurant. Switching to a different
// restaurant discards the existing items. Setting nil keeps the items and
// only recomputes totals.
func (s *Store) SetRestaurant(r *RestaurantInfo) {
	s.set(func(st *State) {
		items := st.Cart.Items
		if r != nil && (st.Cart.Restaurant == nil || st.Cart.Restaurant.ID != r.ID) {
			items = []CartItem{}
		}
		var next *RestaurantInfo
		if r != nil {
			c := *r
			next = &c
		}
		st.Cart = recalculated(append([]CartItem(nil), items...), next)
	})
}

// Recalc recomputes the derived totals from the current items. Idempotent;
// used to repair drift after rehydration.
func (s *Store) Recalc() {
	s.set(func(st *State) {
		st.Cart = recalculated(st.Cart.Items, st.Cart.Restaurant)
	})
}

// Cart returns a snapshot of the cart slice.
func (s *Store) Cart() CartState {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.state.Cart
	c.Items = append([]CartItem(nil), s.state.Cart.Items...)
	return c
}

// ItemsByRestaurant returns the lines belonging to one restaurant, or all
// lines when id is empty.
func (s *Store) ItemsByRestaurant(restaurantID ID) []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartItem, 0, len(s.state.Cart.Items))
	for _, it := range s.state.Cart.Items {
		if restaurantID == "" || it.RestaurantID == restaurantID {
			out = append(out, it)
		}
	}
	return out
}

func (s *Store) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cart.Subtotal
}

func (s *Store) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Cart.TotalQuantity
}

func recalculated(items []CartItem, restaurant *RestaurantInfo) CartState {
	subtotal, qty := computeTotals(items)
	return CartState{
		Items:         items,
		Restaurant:    restaurant,
		Subtotal:      subtotal,
		TotalQuantity: qty,
	}
}

// sameOptions compares option maps by value. Options hold scalars, so plain
// equality per key is enough.
func sameOptions(a, b map[string]any) bool {
	if len(a) != len(b) {
		return false
	}
	for k, av := range a {
		bv, ok := b[k]
		if !ok || av != bv {
			return false
		}
	}
	return true
}

func cloneOptions(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
