package services

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// chain returns the lifecycle in progression order.
func (s *OrderService) chain() []uint {
	return []uint{
		s.Status.Placed, s.Status.Confirmed, s.Status.Preparing,
		s.Status.ReadyForPickup, s.Status.OutForDelivery, s.Status.Delivered,
	}
}

func (s *OrderService) statusName(id uint) string {
	switch id {
	case s.Status.Placed:
		return "PLACED"
	case s.Status.Confirmed:
		return "CONFIRMED"
	case s.Status.Preparing:
		return "PREPARING"
	case s.Status.ReadyForPickup:
		return "READY_FOR_PICKUP"
	case s.Status.OutForDelivery:
		return "OUT_FOR_DELIVERY"
	case s.Status.Delivered:
		return "DELIVERED"
	case s.Status.Cancelled:
		return "CANCELLED"
	default:
		return ""
	}
}

// Advance moves an order one step along the lifecycle and publishes the new
// status. Terminal orders return an error; a lost race against a concurrent
// transition does too.
func (s *OrderService) Advance(code string) (string, error) {
	o, err := s.Repo.FindByCode(code)
	if err != nil {
		return "", err
	}

	chain := s.chain()
	next := uint(0)
	for i, id := range chain[:len(chain)-1] {
		if o.OrderStatusID == id {
			next = chain[i+1]
			break
		}
	}
	if next == 0 {
		return "", errors.New("order is in a terminal status")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, next)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.New("invalid_or_conflict")
		}
		return nil
	})
	if err != nil {
		return "", err
	}

	name := s.statusName(next)
	if s.Hub != nil {
		s.Hub.Publish(code, name)
	}
	return name, nil
}

// Cancel moves a non-terminal order to CANCELLED.
func (s *OrderService) Cancel(code string) error {
	o, err := s.Repo.FindByCode(code)
	if err != nil {
		return err
	}
	if o.OrderStatusID == s.Status.Delivered || o.OrderStatusID == s.Status.Cancelled {
		return errors.New("order is in a terminal status")
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.OrderStatusID, s.Status.Cancelled)
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.New("invalid_or_conflict")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.Hub != nil {
		s.Hub.Publish(code, "CANCELLED")
	}
	return nil
}

// StartAutoAdvance walks an order through the lifecycle on a timer so the
// storefront sees live pushes without anyone operating the kitchen. Stops
// at the first terminal or conflicting step.
func (s *OrderService) StartAutoAdvance(code string, interval time.Duration) {
	if interval <= 0 {
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			if _, err := s.Advance(code); err != nil {
				return
			}
		}
	}()
}
