// Package storefront binds the state engine to its collaborators: the
// checkout flow and the live order tracker that the pages drive.
package storefront

import (
	"context"
	"errors"

	"foodfront/api"
	"foodfront/store"
)

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrMissingAddress = errors.New("delivery address is incomplete")
)

// OrderAPI is the slice of the REST client checkout and tracking need.
type OrderAPI interface {
	CreateOrder(ctx context.Context, in api.CreateOrderInput) (*api.Order, error)
	GetOrderByID(ctx context.Context, id string) (*api.OrderDetail, error)
}

type Checkout struct {
	Store *store.Store
	API   OrderAPI
}

func NewCheckout(st *store.Store, orderAPI OrderAPI) *Checkout {
	return &Checkout{Store: st, API: orderAPI}
}

// PlaceOrder validates the cart and address, creates the order and starts
// tracking it. Validation failures surface a toast and abort before any
// state changes; collaborator failures reset the tracker and the loading
// flag and surface a toast with the error's message, or a generic one.
func (co *Checkout) PlaceOrder(ctx context.Context, address api.Address, notes string) (orderID string, err error) {
	cart := co.Store.Cart()
	if len(cart.Items) == 0 || cart.Restaurant == nil {
		co.Store.ToastError("Your cart is empty.")
		return "", ErrEmptyCart
	}
	if address.Line1 == "" || address.City == "" || address.Postcode == "" {
		co.Store.ToastError("Please fill in your delivery address.")
		return "", ErrMissingAddress
	}

	items := make([]api.OrderItemInput, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, api.OrderItemInput{
			ItemID:   it.MenuItemID,
			Quantity: it.Quantity,
			Notes:    it.Notes,
		})
	}

	co.Store.SetLoading(true)
	defer co.Store.SetLoading(false)
	co.Store.SetOrderStatus(store.StatusCreating)

	order, err := co.API.CreateOrder(ctx, api.CreateOrderInput{
		RestaurantID: cart.Restaurant.ID,
		Items:        items,
		Notes:        notes,
		Address:      address,
	})
	if err != nil {
		co.Store.ClearOrder()
		co.Store.ToastError(userMessage(err, "Could not place your order. Please try again."))
		return "", err
	}

	co.Store.SetActiveOrder(order.ID)
	co.Store.ClearCart()
	co.Store.ToastSuccess("Order placed!")
	return order.ID, nil
}

func userMessage(err error, fallback string) string {
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
