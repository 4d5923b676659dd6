package repositories

import (
	"gin-tourbooking/models"

	"gorm.io/gorm"
)

type ITourRepository interface {
	FindAll(search string) (*[]models.Tour, error)
	FindById(tourID uint) (*models.Tour, error)
	Create(newTour models.Tour) (*models.Tour, error)
	Update(updatedTour models.Tour) (*models.Tour, error)
	Delete(tourID uint) error
	FindImages(tourID uint) (*[]models.TourImage, error)
	FindPrimaryImages(tourIDs []uint) (map[uint]string, error)
	AddImage(newImage models.TourImage) (*models.TourImage, error)
	FindSchedules(tourID uint) (*[]models.TourSchedule, error)
	AddSchedule(newSchedule models.TourSchedule) (*models.TourSchedule, error)
}

type TourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) ITourRepository {
	return &TourRepository{db: db}
}

func (r *TourRepository) FindAll(search string) (*[]models.Tour, error) {
	var tours []models.Tour
	query := r.db.Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("title LIKE ? OR destination LIKE ?", like, like)
	}
	result := query.Find(&tours)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tours, nil
}

func (r *TourRepository) FindById(tourID uint) (*models.Tour, error) {
	var tour models.Tour
	result := r.db.First(&tour, "id = ?", tourID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &tour, nil
}

func (r *TourRepository) Create(newTour models.Tour) (*models.Tour, error) {
	result := r.db.Create(&newTour)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newTour, nil
}

func (r *TourRepository) Update(updatedTour models.Tour) (*models.Tour, error) {
	result := r.db.Save(&updatedTour)
	if result.Error != nil {
		return nil, result.Error
	}
	return &updatedTour, nil
}

func (r *TourRepository) Delete(tourID uint) error {
	result := r.db.Delete(&models.Tour{}, "id = ?", tourID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *TourRepository) FindImages(tourID uint) (*[]models.TourImage, error) {
	var images []models.TourImage
	result := r.db.Where("tour_id = ?", tourID).
		Order("is_primary DESC, id ASC").
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	return &images, nil
}

// FindPrimaryImages maps tour id to its primary image URL for the given
// tours. Tours without a primary image are absent from the map.
func (r *TourRepository) FindPrimaryImages(tourIDs []uint) (map[uint]string, error) {
	primary := make(map[uint]string, len(tourIDs))
	if len(tourIDs) == 0 {
		return primary, nil
	}

	var images []models.TourImage
	result := r.db.Where("tour_id IN ? AND is_primary = ?", tourIDs, true).
		Find(&images)
	if result.Error != nil {
		return nil, result.Error
	}
	for _, image := range images {
		if _, ok := primary[image.TourID]; !ok {
			primary[image.TourID] = image.ImageURL
		}
	}
	return primary, nil
}

// AddImage stores the image and, when it is primary, demotes the tour's
// previous primary in the same transaction.
func (r *TourRepository) AddImage(newImage models.TourImage) (*models.TourImage, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if result := tx.Create(&newImage); result.Error != nil {
			return result.Error
		}
		if newImage.IsPrimary {
			return tx.Model(&models.TourImage{}).
				Where("tour_id = ? AND id <> ?", newImage.TourID, newImage.ID).
				Update("is_primary", false).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &newImage, nil
}

func (r *TourRepository) FindSchedules(tourID uint) (*[]models.TourSchedule, error) {
	var schedules []models.TourSchedule
	result := r.db.Where("tour_id = ?", tourID).
		Order("day_number ASC").
		Find(&schedules)
	if result.Error != nil {
		return nil, result.Error
	}
	return &schedules, nil
}

func (r *TourRepository) AddSchedule(newSchedule models.TourSchedule) (*models.TourSchedule, error) {
	result := r.db.Create(&newSchedule)
	if result.Error != nil {
		return nil, result.Error
	}
	return &newSchedule, nil
}
