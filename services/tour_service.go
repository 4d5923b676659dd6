package services

import (
	"errors"
	"gin-tourbooking/constants"
	"gin-tourbooking/dto"
	"gin-tourbooking/models"
	"gin-tourbooking/repositories"

	"gorm.io/gorm"
)

type ITourService interface {
	FindAll(search string) (*[]dto.TourSummary, error)
	FindById(tourID uint) (*models.Tour, error)
	Create(input dto.CreateTourInput) (*models.Tour, error)
	Update(tourID uint, input dto.UpdateTourInput) (*models.Tour, error)
	Delete(tourID uint) error
	FindImages(tourID uint) (*[]models.TourImage, error)
	AddImage(tourID uint, imageURL string, isPrimary bool) (*models.TourImage, error)
	FindSchedules(tourID uint) (*[]models.TourSchedule, error)
	AddSchedule(tourID uint, input dto.CreateScheduleInput) (*models.TourSchedule, error)
}

type TourService struct {
	repository repositories.ITourRepository
}

func NewTourService(repository repositories.ITourRepository) ITourService {
	return &TourService{repository: repository}
}

func (s *TourService) FindAll(search string) (*[]dto.TourSummary, error) {
	tours, err := s.repository.FindAll(search)
	if err != nil {
		return nil, err
	}

	tourIDs := make([]uint, 0, len(*tours))
	for _, tour := range *tours {
		tourIDs = append(tourIDs, tour.ID)
	}
	primary, err := s.repository.FindPrimaryImages(tourIDs)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.TourSummary, 0, len(*tours))
	for _, tour := range *tours {
		summary := dto.TourSummary{Tour: tour}
		if url, ok := primary[tour.ID]; ok {
			summary.PrimaryImage = &url
		}
		summaries = append(summaries, summary)
	}
	return &summaries, nil
}

func (s *TourService) FindById(tourID uint) (*models.Tour, error) {
	tour, err := s.repository.FindById(tourID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New(constants.ErrTourNotFound)
		}
		return nil, err
	}
	return tour, nil
}

func (s *TourService) Create(input dto.CreateTourInput) (*models.Tour, error) {
	newTour := models.Tour{
		Title:            input.Title,
		RegionType:       input.RegionType,
		Destination:      input.Destination,
		DeparturePlace:   input.DeparturePlace,
		StartDate:        input.StartDate,
		Duration:         input.Duration,
		Price:            *input.Price,
		PromotionText:    input.PromotionText,
		PromotionAmount:  input.PromotionAmount,
		ShortDescription: input.ShortDescription,
		IsHot:            input.IsHot,
	}
	return s.repository.Create(newTour)
}

func (s *TourService) Update(tourID uint, input dto.UpdateTourInput) (*models.Tour, error) {
	targetTour, err := s.FindById(tourID)
	if err != nil {
		return nil, err
	}

	targetTour.Title = input.Title
	targetTour.RegionType = input.RegionType
	targetTour.Destination = input.Destination
	targetTour.DeparturePlace = input.DeparturePlace
	targetTour.StartDate = input.StartDate
	targetTour.Duration = input.Duration
	targetTour.Price = *input.Price
	targetTour.PromotionText = input.PromotionText
	targetTour.PromotionAmount = input.PromotionAmount
	targetTour.ShortDescription = input.ShortDescription
	targetTour.IsHot = input.IsHot
	return s.repository.Update(*targetTour)
}

func (s *TourService) Delete(tourID uint) error {
	err := s.repository.Delete(tourID)
	if err == gorm.ErrRecordNotFound {
		return errors.New(constants.ErrTourNotFound)
	}
	return err
}

func (s *TourService) FindImages(tourID uint) (*[]models.TourImage, error) {
	return s.repository.FindImages(tourID)
}

func (s *TourService) AddImage(tourID uint, imageURL string, isPrimary bool) (*models.TourImage, error) {
	if _, err := s.FindById(tourID); err != nil {
		return nil, err
	}
	newImage := models.TourImage{
		TourID:    tourID,
		ImageURL:  imageURL,
		IsPrimary: isPrimary,
	}
	return s.repository.AddImage(newImage)
}

func (s *TourService) FindSchedules(tourID uint) (*[]models.TourSchedule, error) {
	return s.repository.FindSchedules(tourID)
}

func (s *TourService) AddSchedule(tourID uint, input dto.CreateScheduleInput) (*models.TourSchedule, error) {
	if _, err := s.FindById(tourID); err != nil {
		return nil, err
	}
	newSchedule := models.TourSchedule{
		TourID:      tourID,
		DayNumber:   input.DayNumber,
		Title:       input.Title,
		Description: input.Description,
	}
	return s.repository.AddSchedule(newSchedule)
}
