package services

import (
	"testing"

	"foodfront/entity"
	"foodfront/repository"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupOrderService(t *testing.T) (*OrderService, *entity.Restaurant, []entity.Menu) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Menu{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, name := range []string{
		"PLACED", "CONFIRMED", "PREPARING", "READY_FOR_PICKUP",
		"OUT_FOR_DELIVERY", "DELIVERED", "CANCELLED",
	} {
		if err := db.Create(&entity.OrderStatus{StatusName: name}).Error; err != nil {
			t.Fatalf("seed status: %v", err)
		}
	}

	rest := entity.Restaurant{
		Name: "Taqueria Luna", DeliveryFee: 2.5,
		Menus: []entity.Menu{
			{MenuName: "Carnitas Taco", Price: 5},
			{MenuName: "Horchata", Price: 3},
		},
	}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	if err := db.Create(&entity.User{Email: "demo@example.com", Password: "x"}).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := NewOrderService(db, repository.NewOrderRepository(db), nil)
	return svc, &rest, rest.Menus
}

func TestCreateOrder(t *testing.T) {
	svc, rest, menus := setupOrderService(t)

	t.Run("computes totals and starts placed", func(t *testing.T) {
		order, err := svc.Create(1, &CreateOrderReq{
			RestaurantID: rest.ID,
			Items: []OrderItemIn{
				{MenuID: menus[0].ID, Qty: 2, Note: "no onions"},
				{MenuID: menus[1].ID, Qty: 1},
			},
			AddressLine1: "1 Test Lane",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Code == "" {
			t.Fatalf("expected a public order code")
		}
		if order.Subtotal != 13 || order.Total != 15.5 {
			t.Fatalf("expected subtotal 13 / total 15.5, got %v / %v", order.Subtotal, order.Total)
		}

		detail, err := svc.Detail(order.Code)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.OrderStatus.StatusName != "PLACED" {
			t.Fatalf("expected PLACED, got %s", detail.OrderStatus.StatusName)
		}
		if len(detail.OrderItems) != 2 {
			t.Fatalf("expected 2 items, got %d", len(detail.OrderItems))
		}
		if detail.OrderItems[0].Note != "no onions" {
			t.Fatalf("expected line note kept, got %q", detail.OrderItems[0].Note)
		}
	})

	t.Run("empty items rejected", func(t *testing.T) {
		if _, err := svc.Create(1, &CreateOrderReq{RestaurantID: rest.ID}); err == nil {
			t.Fatalf("expected error for empty items")
		}
	})

	t.Run("unknown restaurant rejected", func(t *testing.T) {
		_, err := svc.Create(1, &CreateOrderReq{
			RestaurantID: 9999,
			Items:        []OrderItemIn{{MenuID: menus[0].ID, Qty: 1}},
		})
		if err == nil {
			t.Fatalf("expected error for unknown restaurant")
		}
	})

	t.Run("menu from another restaurant rejected", func(t *testing.T) {
		other := entity.Restaurant{Name: "Noodle Atlas", Menus: []entity.Menu{{MenuName: "Dan Dan", Price: 9.5}}}
		if err := svc.DB.Create(&other).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
		_, err := svc.Create(1, &CreateOrderReq{
			RestaurantID: rest.ID,
			Items:        []OrderItemIn{{MenuID: other.Menus[0].ID, Qty: 1}},
		})
		if err == nil {
			t.Fatalf("expected cross-restaurant menu to be rejected")
		}
	})
}

func TestOrderTransitions(t *testing.T) {
	svc, rest, menus := setupOrderService(t)

	newOrder := func(t *testing.T) *entity.Order {
		t.Helper()
		order, err := svc.Create(1, &CreateOrderReq{
			RestaurantID: rest.ID,
			Items:        []OrderItemIn{{MenuID: menus[0].ID, Qty: 1}},
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		return order
	}

	t.Run("advances through the whole lifecycle", func(t *testing.T) {
		order := newOrder(t)
		want := []string{"CONFIRMED", "PREPARING", "READY_FOR_PICKUP", "OUT_FOR_DELIVERY", "DELIVERED"}
		for _, expect := range want {
			got, err := svc.Advance(order.Code)
			if err != nil {
				t.Fatalf("advance to %s: %v", expect, err)
			}
			if got != expect {
				t.Fatalf("expected %s, got %s", expect, got)
			}
		}

		if _, err := svc.Advance(order.Code); err == nil {
			t.Fatalf("expected terminal order to refuse advancing")
		}
	})

	t.Run("cancel stops a live order", func(t *testing.T) {
		order := newOrder(t)
		if _, err := svc.Advance(order.Code); err != nil {
			t.Fatalf("advance: %v", err)
		}
		if err := svc.Cancel(order.Code); err != nil {
			t.Fatalf("cancel: %v", err)
		}

		detail, err := svc.Detail(order.Code)
		if err != nil {
			t.Fatalf("detail: %v", err)
		}
		if detail.OrderStatus.StatusName != "CANCELLED" {
			t.Fatalf("expected CANCELLED, got %s", detail.OrderStatus.StatusName)
		}

		if err := svc.Cancel(order.Code); err == nil {
			t.Fatalf("expected cancelled order to refuse cancelling again")
		}
	})
}
