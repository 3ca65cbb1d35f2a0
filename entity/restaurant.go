package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Address     string  `json:"address"`
	Picture     string  `json:"picture"`
	Rating      float64 `json:"rating"`
	DeliveryFee float64 `json:"deliveryFee"`

	Menus  []Menu  `json:"-"`
	Orders []Order `json:"-"`
}
