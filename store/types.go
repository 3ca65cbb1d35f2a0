package store

import "time"

type ID = string

type RestaurantInfo struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// CartItem is one line in the cart: a menu item, its quantity and the
// chosen options.
type CartItem struct {
	ID             ID             `json:"id"`
	RestaurantID   ID             `json:"restaurantId"`
	RestaurantName string         `json:"restaurantName"`
	MenuItemID     ID             `json:"menuItemId"`
	Name           string         `json:"name"`
	Price          float64        `json:"price"`
	Quantity       int            `json:"quantity"`
	ImageURL       string         `json:"imageUrl,omitempty"`
	Options        map[string]any `json:"options,omitempty"`
	Notes          string         `json:"notes,omitempty"`
}

// CartState holds the line items plus derived totals. All items in a
// non-empty cart belong to Restaurant; Restaurant is nil iff the cart is
// empty.
type CartState struct {
	Items         []CartItem      `json:"items"`
	Restaurant    *RestaurantInfo `json:"restaurant"`
	Subtotal      float64         `json:"subtotal"`
	TotalQuantity int             `json:"totalQuantity"`
}

type UserProfile struct {
	ID        ID     `json:"id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	AvatarURL string `json:"avatarUrl,omitempty"`
}

type UserState struct {
	Token           string       `json:"token,omitempty"`
	Profile         *UserProfile `json:"profile,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

type OrderStatus string

const (
	StatusIdle           OrderStatus = "idle"
	StatusCreating       OrderStatus = "creating"
	StatusPlaced         OrderStatus = "placed"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
	StatusError          OrderStatus = "error"
)

// OrderState tracks the currently watched order. Never persisted.
type OrderState struct {
	ActiveOrderID       ID          `json:"activeOrderId,omitempty"`
	Status              OrderStatus `json:"status"`
	SubscribedToUpdates bool        `json:"subscribedToUpdates"`
	LastUpdatedAt       time.Time   `json:"lastUpdatedAt,omitzero"`
}

type ToastType string

const (
	ToastTypeSuccess ToastType = "success"
	ToastTypeError   ToastType = "error"
	ToastTypeInfo    ToastType = "info"
	ToastTypeWarning ToastType = "warning"
)

type Toast struct {
	ID       string        `json:"id"`
	Type     ToastType     `json:"type"`
	Title    string        `json:"title,omitempty"`
	Message  string        `json:"message"`
	Duration time.Duration `json:"durationMs"`
}

type UIState struct {
	Loading bool    `json:"loading"`
	Toasts  []Toast `json:"toasts"`
}

// State is the root container composed of the four slices.
type State struct {
	Cart  CartState  `json:"cart"`
	User  UserState  `json:"user"`
	Order OrderState `json:"order"`
	UI    UIState    `json:"ui"`
}
