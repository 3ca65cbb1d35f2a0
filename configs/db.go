package configs

import (
	"foodfront/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) error {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Restaurant{}, &entity.Menu{},
		&entity.OrderStatus{}, &entity.Order{}, &entity.OrderItem{},
	)
}
