package configs

import (
	"log"

	"foodfront/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedLookups inserts the order lifecycle names in progression order.
func SeedLookups() error {
	db := DB()

	for _, name := range []string{
		"PLACED", "CONFIRMED", "PREPARING", "READY_FOR_PICKUP",
		"OUT_FOR_DELIVERY", "DELIVERED", "CANCELLED",
	} {
		if err := db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: name}).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedDemoUser creates the default account used by the storefront demo.
func SeedDemoUser() error {
	db := DB()
	email := getEnv("DEMO_EMAIL", "demo@example.com")
	pass := getEnv("DEMO_PASSWORD", "password123")

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	user := entity.User{Email: email, Password: string(hash), Name: "Demo User"}
	return db.Create(&user).Error
}

// SeedRestaurants inserts a small catalog so the storefront has something
// to browse. Skipped when restaurants already exist.
func SeedRestaurants() error {
	db := DB()

	var count int64
	db.Model(&entity.Restaurant{}).Count(&count)
	if count > 0 {
		log.Println("restaurants already seeded")
		return nil
	}

	seed := []entity.Restaurant{
		{
			Name: "Taqueria Luna", Category: "Mexican", Rating: 4.7, DeliveryFee: 2.5,
			Description: "Street tacos and slow-cooked fillings.",
			Address:     "12 Mercado Lane",
			Menus: []entity.Menu{
				{MenuName: "Carnitas Taco", Category: "Tacos", Price: 5},
				{MenuName: "Baja Fish Taco", Category: "Tacos", Price: 6.5},
				{MenuName: "Horchata", Category: "Drinks", Price: 3},
			},
		},
		{
			Name: "Noodle Atlas", Category: "Asian", Rating: 4.4, DeliveryFee: 3,
			Description: "Hand-pulled noodles, broths and stir-fries.",
			Address:     "88 Lantern Street",
			Menus: []entity.Menu{
				{MenuName: "Beef Noodle Soup", Category: "Soup", Price: 11},
				{MenuName: "Dan Dan Noodles", Category: "Noodles", Price: 9.5},
				{MenuName: "Jasmine Tea", Category: "Drinks", Price: 2.5},
			},
		},
		{
			Name: "Crust & Ember", Category: "Pizza", Rating: 4.8, DeliveryFee: 2,
			Description: "Wood-fired pizza, small menu, big ovens.",
			Address:     "3 Forno Court",
			Menus: []entity.Menu{
				{MenuName: "Margherita", Category: "Pizza", Price: 10},
				{MenuName: "Nduja & Honey", Category: "Pizza", Price: 13},
				{MenuName: "Tiramisu", Category: "Dessert", Price: 6},
			},
		},
	}

	for i := range seed {
		if err := db.Create(&seed[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
