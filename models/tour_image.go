package models

import "gorm.io/gorm"

type TourImage struct {
	gorm.Model
	TourID    uint   `gorm:"not null;index"`
	ImageURL  string `gorm:"not null"`
	IsPrimary bool
}
