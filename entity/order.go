package entity

import (
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	// Code is the public order id handed to clients.
	Code string `gorm:"uniqueIndex;not null" json:"code"`

	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Total       float64 `json:"total"`
	Note        string  `json:"note"`

	AddressLine1 string `json:"addressLine1"`
	AddressCity  string `json:"addressCity"`
	AddressPost  string `json:"addressPost"`

	UserID uint `json:"userId"`
	User   User `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	OrderItems []OrderItem `json:"-"`
}
