package repository

import (
	"foodfront/entity"

	"gorm.io/gorm"
)

type RestaurantRepository struct {
	DB *gorm.DB
}

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) List() ([]entity.Restaurant, error) {
	var out []entity.Restaurant
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}

func (r *RestaurantRepository) FindWithMenu(id uint) (*entity.Restaurant, error) {
	var rest entity.Restaurant
	if err := r.DB.Preload("Menus").First(&rest, id).Error; err != nil {
		return nil, err
	}
	return &rest, nil
}
