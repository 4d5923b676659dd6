package services

import (
	"gin-tourbooking/dto"
	"gin-tourbooking/repositories"
)

type ICartService interface {
	GetCart(userID uint) (*[]dto.CartLine, error)
	AddItem(userID uint, tourID uint) error
	RemoveItem(userID uint, tourID uint) (bool, error)
}

type CartService struct {
	repository repositories.ICartRepository
}

func NewCartService(repository repositories.ICartRepository) ICartService {
	return &CartService{repository: repository}
}

func (s *CartService) GetCart(userID uint) (*[]dto.CartLine, error) {
	cart, err := s.repository.FindOrCreateCart(userID)
	if err != nil {
		return nil, err
	}
	return s.repository.FindLines(cart.ID)
}

// AddItem does not validate that the tour exists; a dangling line is simply
// invisible to GetCart until the tour appears.
func (s *CartService) AddItem(userID uint, tourID uint) error {
	cart, err := s.repository.FindOrCreateCart(userID)
	if err != nil {
		return err
	}
	return s.repository.UpsertItem(cart.ID, tourID)
}

// RemoveItem reports whether the user had a cart at all; a missing cart is a
// successful no-op.
func (s *CartService) RemoveItem(userID uint, tourID uint) (bool, error) {
	cart, err := s.repository.FindCart(userID)
	if err != nil {
		return false, err
	}
	if cart == nil {
		return false, nil
	}
	return true, s.repository.DecrementOrDeleteItem(cart.ID, tourID)
}
