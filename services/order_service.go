package services

import (
	"errors"

	"foodfront/entity"
	"foodfront/repository"
	"foodfront/ws"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusIDs caches the lookup ids for the lifecycle names.
type StatusIDs struct {
	Placed         uint
	Confirmed      uint
	Preparing      uint
	ReadyForPickup uint
	OutForDelivery uint
	Delivered      uint
	Cancelled      uint
}

type OrderService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
	Hub  *ws.Hub

	Status StatusIDs
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, hub *ws.Hub) *OrderService {
	s := &OrderService{DB: db, Repo: repo, Hub: hub}

	if id, err := repo.GetStatusIDByName("PLACED"); err == nil {
		s.Status.Placed = id
	}
	if id, err := repo.GetStatusIDByName("CONFIRMED"); err == nil {
		s.Status.Confirmed = id
	}
	if id, err := repo.GetStatusIDByName("PREPARING"); err == nil {
		s.Status.Preparing = id
	}
	if id, err := repo.GetStatusIDByName("READY_FOR_PICKUP"); err == nil {
		s.Status.ReadyForPickup = id
	}
	if id, err := repo.GetStatusIDByName("OUT_FOR_DELIVERY"); err == nil {
		s.Status.OutForDelivery = id
	}
	if id, err := repo.GetStatusIDByName("DELIVERED"); err == nil {
		s.Status.Delivered = id
	}
	if id, err := repo.GetStatusIDByName("CANCELLED"); err == nil {
		s.Status.Cancelled = id
	}

	return s
}

// ----- DTOs from Controller -----

type OrderItemIn struct {
	MenuID uint   `json:"menuId"`
	Qty    int    `json:"quantity"`
	Note   string `json:"notes"`
}

type CreateOrderReq struct {
	RestaurantID uint
	Items        []OrderItemIn
	Note         string
	AddressLine1 string
	AddressCity  string
	AddressPost  string
}

func (s *OrderService) Create(userID uint, req *CreateOrderReq) (*entity.Order, error) {
	if len(req.Items) == 0 {
		return nil, errors.New("items is required")
	}

	ok, err := s.Repo.RestaurantExists(req.RestaurantID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("restaurant not found")
	}

	var subtotal float64
	rows := make([]struct {
		menu entity.Menu
		qty  int
		note string
	}, 0, len(req.Items))

	for _, it := range req.Items {
		m, err := s.Repo.GetMenuBasics(it.MenuID)
		if err != nil {
			return nil, errors.New("menu not found")
		}
		if m.RestaurantID != req.RestaurantID {
			return nil, errors.New("menu not in this restaurant")
		}
		qty := it.Qty
		if qty < 1 {
			qty = 1
		}
		subtotal += m.Price * float64(qty)
		rows = append(rows, struct {
			menu entity.Menu
			qty  int
			note string
		}{m, qty, it.Note})
	}

	var rest entity.Restaurant
	if err := s.DB.Select("id, delivery_fee").First(&rest, req.RestaurantID).Error; err != nil {
		return nil, errors.New("restaurant not found")
	}

	order := entity.Order{
		Code:          uuid.NewString(),
		Subtotal:      subtotal,
		DeliveryFee:   rest.DeliveryFee,
		Total:         subtotal + rest.DeliveryFee,
		Note:          req.Note,
		AddressLine1:  req.AddressLine1,
		AddressCity:   req.AddressCity,
		AddressPost:   req.AddressPost,
		UserID:        userID,
		RestaurantID:  req.RestaurantID,
		OrderStatusID: s.Status.Placed,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, &order); err != nil {
			return err
		}
		for _, row := range rows {
			oi := entity.OrderItem{
				OrderID:   order.ID,
				MenuID:    row.menu.ID,
				Qty:       row.qty,
				UnitPrice: row.menu.Price,
				Total:     row.menu.Price * float64(row.qty),
				Note:      row.note,
			}
			if err := s.Repo.CreateItem(tx, &oi); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.Publish(order.Code, "PLACED")
	}
	return &order, nil
}

func (s *OrderService) Detail(code string) (*entity.Order, error) {
	return s.Repo.FindByCode(code)
}
