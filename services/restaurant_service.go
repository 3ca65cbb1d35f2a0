package services

import (
	"foodfront/entity"
	"foodfront/repository"
)

type RestaurantService struct {
	repo *repository.RestaurantRepository
}

func NewRestaurantService(repo *repository.RestaurantRepository) *RestaurantService {
	return &RestaurantService{repo: repo}
}

func (s *RestaurantService) List() ([]entity.Restaurant, error) {
	return s.repo.List()
}

func (s *RestaurantService) Detail(id uint) (*entity.Restaurant, error) {
	return s.repo.FindWithMenu(id)
}
