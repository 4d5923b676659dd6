package models

import "gorm.io/gorm"

type Tour struct {
	gorm.Model
	Title            string `gorm:"not null"`
	RegionType       string
	Destination      string  `gorm:"not null"`
	DeparturePlace   string  `gorm:"not null"`
	StartDate        string  `gorm:"not null"`
	Duration         string  `gorm:"not null"`
	Price            float64 `gorm:"not null"`
	PromotionText    string
	PromotionAmount  float64
	ShortDescription string
	IsHot            bool
}
