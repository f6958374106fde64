package service

import (
	"context"
	"fmt"

	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// cartService implements CartService.
type cartService struct {
	customerRepo repository.CustomerRepository
	foodRepo     repository.FoodRepository
	logger       zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(customerRepo repository.CustomerRepository, foodRepo repository.FoodRepository, logger zerolog.Logger) CartService {
	return &cartService{
		customerRepo: customerRepo,
		foodRepo:     foodRepo,
		logger:       logger.With().Str("service", "cart").Logger(),
	}
}

// AddToCart applies req.Unit as a delta to the food's line. A line that
// drops to zero or below is removed, and one that would exceed
// model.MaxUnit is rejected.
func (s *cartService) AddToCart(ctx context.Context, customerID uuid.UUID, req *model.CartRequest) ([]model.CartItem, error) {
	foods, err := s.foodRepo.GetByIDs(ctx, []uuid.UUID{req.FoodID})
	if err != nil {
		return nil, fmt.Errorf("failed to get food: %w", err)
	}
	if len(foods) == 0 {
		return nil, model.ErrFoodNotFound
	}

	cart, err := s.customerRepo.GetCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	unit := req.Unit
	found := false
	for _, item := range cart {
		if item.Food.ID == req.FoodID {
			unit += item.Unit
			found = true
			break
		}
	}
	if (!found && unit <= 0) || unit > model.MaxUnit {
		return nil, model.ErrInvalidQuantity
	}

	if err := s.customerRepo.SetCartItem(ctx, customerID, req.FoodID, unit); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("customer_id", customerID.String()).
		Str("food_id", req.FoodID.String()).
		Int("unit", unit).
		Msg("cart updated")

	return s.customerRepo.GetCart(ctx, customerID)
}

func (s *cartService) GetCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error) {
	return s.customerRepo.GetCart(ctx, customerID)
}

// ClearCart empties the cart and returns it.
func (s *cartService) ClearCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error) {
	if err := s.customerRepo.ClearCart(ctx, customerID); err != nil {
		return nil, err
	}
	return []model.CartItem{}, nil
}
