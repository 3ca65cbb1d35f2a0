package entity

import (
	"gorm.io/gorm"
)

type Menu struct {
	gorm.Model
	MenuName string  `json:"menuName"`
	Detail   string  `json:"detail"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Picture  string  `json:"picture"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	OrderItems []OrderItem `json:"-"`
}
