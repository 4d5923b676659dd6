package repositories

import (
	"errors"
	"gin-tourbooking/dto"
	"gin-tourbooking/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ICartRepository interface {
	FindOrCreateCart(userID uint) (*models.Cart, error)
	FindCart(userID uint) (*models.Cart, error)
	FindLines(cartID uint) (*[]dto.CartLine, error)
	UpsertItem(cartID uint, tourID uint) error
	DecrementOrDeleteItem(cartID uint, tourID uint) error
}

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) ICartRepository {
	return &CartRepository{db: db}
}

// FindOrCreateCart inserts with a do-nothing conflict clause and re-reads,
// so two first-time requests for the same user both land on the single row
// the user_id unique index allows.
func (r *CartRepository) FindOrCreateCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	result := r.db.First(&cart, "user_id = ?", userID)
	if result.Error == nil {
		return &cart, nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	cart = models.Cart{UserID: userID}
	if err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, err
	}
	// A concurrent request may have won the insert; read the surviving row
	if err := r.db.First(&cart, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

// FindCart returns (nil, nil) when the user has no cart yet.
func (r *CartRepository) FindCart(userID uint) (*models.Cart, error) {
	var cart models.Cart
	result := r.db.First(&cart, "user_id = ?", userID)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, result.Error
	}
	return &cart, nil
}

// FindLines joins cart items to their tours and primary image. Lines whose
// tour has been deleted fall out of the join. The slice starts non-nil
// because Scan leaves the destination untouched when no rows match and an
// empty cart must serialize as [], not null.
func (r *CartRepository) FindLines(cartID uint) (*[]dto.CartLine, error) {
	lines := []dto.CartLine{}
	result := r.db.Table("cart_items").
		Select(`tours.id AS id, tours.title AS title, tours.price AS price, cart_items.quantity AS quantity,
			(SELECT tour_images.image_url FROM tour_images
			 WHERE tour_images.tour_id = tours.id AND tour_images.is_primary = ? AND tour_images.deleted_at IS NULL
			 LIMIT 1) AS image`, true).
		Joins("JOIN tours ON tours.id = cart_items.tour_id AND tours.deleted_at IS NULL").
		Where("cart_items.cart_id = ?", cartID).
		Scan(&lines)
	if result.Error != nil {
		return nil, result.Error
	}
	return &lines, nil
}

// UpsertItem inserts the line with quantity 1 or atomically increments the
// committed quantity. The increment happens inside the conflict clause, so
// concurrent adds cannot lose updates or duplicate the row.
func (r *CartRepository) UpsertItem(cartID uint, tourID uint) error {
	item := models.CartItem{CartID: cartID, TourID: tourID, Quantity: 1}
	result := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "tour_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + 1"),
		}),
	}).Create(&item)
	return result.Error
}

// DecrementOrDeleteItem lowers the quantity by one, deleting the row instead
// of leaving it at zero. Both statements share one transaction so a
// zero-quantity row is never visible to a concurrent read. A missing line is
// a no-op.
func (r *CartRepository) DecrementOrDeleteItem(cartID uint, tourID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.CartItem{}).
			Where("cart_id = ? AND tour_id = ? AND quantity > 1", cartID, tourID).
			UpdateColumn("quantity", gorm.Expr("quantity - 1"))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}
		return tx.Where("cart_id = ? AND tour_id = ?", cartID, tourID).
			Delete(&models.CartItem{}).Error
	})
}
