package entity

import (
	"gorm.io/gorm"
)

// OrderStatus is the lifecycle lookup table. Seeded with PLACED, CONFIRMED,
// PREPARING, READY_FOR_PICKUP, OUT_FOR_DELIVERY, DELIVERED, CANCELLED.
type OrderStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`

	Orders []Order `json:"-"`
}
