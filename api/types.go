package api

import "time"

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type Restaurant struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Address     string  `json:"address,omitempty"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Rating      float64 `json:"rating"`
	DeliveryFee float64 `json:"deliveryFee"`
}

type MenuItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"imageUrl,omitempty"`
}

type RestaurantDetail struct {
	Restaurant
	Menu []MenuItem `json:"menu"`
}

type Address struct {
	Line1    string `json:"line1"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
}

type OrderItemInput struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

type CreateOrderInput struct {
	RestaurantID string           `json:"restaurantId"`
	Items        []OrderItemInput `json:"items"`
	Notes        string           `json:"notes,omitempty"`
	Address      Address          `json:"address"`
}

type Order struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Subtotal    float64   `json:"subtotal"`
	DeliveryFee float64   `json:"deliveryFee"`
	Total       float64   `json:"total"`
	CreatedAt   time.Time `json:"createdAt"`
}

type OrderItemDetail struct {
	ItemID   string  `json:"itemId"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Notes    string  `json:"notes,omitempty"`
}

type OrderDetail struct {
	Order
	Restaurant Restaurant        `json:"restaurant"`
	Items      []OrderItemDetail `json:"items"`
	Address    Address           `json:"address"`
	Notes      string            `json:"notes,omitempty"`
}
