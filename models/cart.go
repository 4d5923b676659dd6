package models

import "gorm.io/gorm"

// Cart is created lazily on first access; one per user.
type Cart struct {
	gorm.Model
	UserID uint `gorm:"not null;uniqueIndex"`
}

// CartItem uses a composite primary key so the database enforces one row
// per (cart, tour). A row must never persist with Quantity <= 0; it is
// deleted instead.
type CartItem struct {
	CartID   uint `gorm:"primaryKey;autoIncrement:false"`
	TourID   uint `gorm:"primaryKey;autoIncrement:false"`
	Quantity int  `gorm:"not null;default:1"`
}
