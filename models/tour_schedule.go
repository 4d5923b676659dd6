package models

import "gorm.io/gorm"

type TourSchedule struct {
	gorm.Model
	TourID      uint   `gorm:"not null;index"`
	DayNumber   int    `gorm:"not null"`
	Title       string `gorm:"not null"`
	Description string
}
