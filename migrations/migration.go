package main

import (
	"gin-tourbooking/infra"
	"gin-tourbooking/models"
)

func main() {
	infra.Initialize()
	db := infra.SetupDB()

	if err := db.AutoMigrate(
		&models.User{},
		&models.Tour{},
		&models.TourImage{},
		&models.TourSchedule{},
		&models.Cart{},
		&models.CartItem{},
	); err != nil {
		panic("Failed to migrate database")
	}
}
