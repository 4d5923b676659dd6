package dto

import "gin-tourbooking/models"

type CreateTourInput struct {
	Title            string   `json:"Title" binding:"required"`
	RegionType       string   `json:"RegionType"`
	Destination      string   `json:"Destination" binding:"required"`
	DeparturePlace   string   `json:"DeparturePlace" binding:"required"`
	StartDate        string   `json:"StartDate" binding:"required"`
	Duration         string   `json:"Duration" binding:"required"`
	Price            *float64 `json:"Price" binding:"required"`
	PromotionText    string   `json:"PromotionText"`
	PromotionAmount  float64  `json:"PromotionAmount"`
	ShortDescription string   `json:"ShortDescription"`
	IsHot            bool     `json:"IsHot"`
}

type UpdateTourInput struct {
	Title            string   `json:"Title" binding:"required"`
	RegionType       string   `json:"RegionType"`
	Destination      string   `json:"Destination" binding:"required"`
	DeparturePlace   string   `json:"DeparturePlace" binding:"required"`
	StartDate        string   `json:"StartDate" binding:"required"`
	Duration         string   `json:"Duration" binding:"required"`
	Price            *float64 `json:"Price" binding:"required"`
	PromotionText    string   `json:"PromotionText"`
	PromotionAmount  float64  `json:"PromotionAmount"`
	ShortDescription string   `json:"ShortDescription"`
	IsHot            bool     `json:"IsHot"`
}

type CreateScheduleInput struct {
	DayNumber   int    `json:"DayNumber" binding:"required"`
	Title       string `json:"Title" binding:"required"`
	Description string `json:"Description"`
}

// TourSummary is a tour plus its primary image, the shape of the listing
// endpoint.
type TourSummary struct {
	models.Tour
	PrimaryImage *string
}
