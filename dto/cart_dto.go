package dto

type AddCartItemInput struct {
	TourID uint `json:"tourId" binding:"required"`
}

// CartLine mirrors the storefront's cart row shape: tour fields keep their
// upper-case keys, quantity stays lower-case.
type CartLine struct {
	ID       uint    `gorm:"column:id" json:"Id"`
	Title    string  `gorm:"column:title" json:"Title"`
	Price    float64 `gorm:"column:price" json:"Price"`
	Quantity int     `gorm:"column:quantity" json:"quantity"`
	Image    *string `gorm:"column:image" json:"Image"`
}
