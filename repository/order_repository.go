package repository

import (
	"foodfront/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) Create(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) FindByCode(code string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("OrderStatus").
		Preload("Restaurant").
		Preload("OrderItems").
		Preload("OrderItems.Menu").
		Where("code = ?", code).
		First(&o).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateStatusGuard flips the status only when the order is still in the
// expected one; returns rows affected so callers can detect lost races.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, fromID, toID uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, fromID).
		Update("order_status_id", toID)
	return res.RowsAffected, res.Error
}

func (r *OrderRepository) GetMenuBasics(id uint) (entity.Menu, error) {
	var m entity.Menu
	err := r.DB.Select("id, menu_name, price, restaurant_id").First(&m, id).Error
	return m, err
}

func (r *OrderRepository) RestaurantExists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Restaurant{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}
