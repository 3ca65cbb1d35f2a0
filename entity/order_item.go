package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Qty       int     `json:"qty"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
	Note      string  `json:"note"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	MenuID uint `json:"menuId"`
	Menu   Menu `json:"-"`
}
