package service

import (
	"context"
	"fmt"
	"strings"

	"food-order/internal/cache"
	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	topRestaurantsLimit = 10
	quickReadyTime      = 30
)

func catalogueKey(pincode string) string {
	return "catalogue:" + pincode
}

// shoppingService implements ShoppingService.
type shoppingService struct {
	vendorRepo repository.VendorRepository
	foodRepo   repository.FoodRepository
	offerRepo  repository.OfferRepository
	cache      cache.Cache
	logger     zerolog.Logger
}

// NewShoppingService creates a new shopping service.
func NewShoppingService(
	vendorRepo repository.VendorRepository,
	foodRepo repository.FoodRepository,
	offerRepo repository.OfferRepository,
	c cache.Cache,
	logger zerolog.Logger,
) ShoppingService {
	return &shoppingService{
		vendorRepo: vendorRepo,
		foodRepo:   foodRepo,
		offerRepo:  offerRepo,
		cache:      c,
		logger:     logger.With().Str("service", "shopping").Logger(),
	}
}

// catalogue returns the serving vendors of a pincode with their foods,
// highest rated first.
func (s *shoppingService) catalogue(ctx context.Context, pincode string) ([]model.Vendor, error) {
	var vendors []model.Vendor
	hit, err := s.cache.Get(ctx, catalogueKey(pincode), &vendors)
	if err != nil {
		s.logger.Warn().Err(err).Str("pincode", pincode).Msg("catalogue cache read failed")
	}
	if hit {
		return vendors, nil
	}

	vendors, err = s.vendorRepo.ListAvailableByPincode(ctx, pincode)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	ids := make([]uuid.UUID, len(vendors))
	index := make(map[uuid.UUID]int, len(vendors))
	for i, v := range vendors {
		ids[i] = v.ID
		index[v.ID] = i
		vendors[i].Foods = []model.Food{}
	}

	foods, err := s.foodRepo.ListByVendors(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	for _, f := range foods {
		i := index[f.VendorID]
		vendors[i].Foods = append(vendors[i].Foods, f)
	}

	if err := s.cache.Set(ctx, catalogueKey(pincode), vendors); err != nil {
		s.logger.Warn().Err(err).Str("pincode", pincode).Msg("catalogue cache write failed")
	}
	return vendors, nil
}

func (s *shoppingService) GetFoodAvailability(ctx context.Context, pincode string) ([]model.Vendor, error) {
	vendors, err := s.catalogue(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, model.ErrNoDataFound
	}
	return vendors, nil
}

func (s *shoppingService) GetTopRestaurants(ctx context.Context, pincode string) ([]model.Vendor, error) {
	vendors, err := s.GetFoodAvailability(ctx, pincode)
	if err != nil {
		return nil, err
	}
	if len(vendors) > topRestaurantsLimit {
		vendors = vendors[:topRestaurantsLimit]
	}
	return vendors, nil
}

func (s *shoppingService) GetFoodsIn30Min(ctx context.Context, pincode string) ([]model.Food, error) {
	return s.foods(ctx, pincode, func(f model.Food) bool {
		return f.ReadyTime <= quickReadyTime
	})
}

// SearchFoods matches the query against food names, ignoring case. An empty
// query returns every food.
func (s *shoppingService) SearchFoods(ctx context.Context, pincode, query string) ([]model.Food, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return s.foods(ctx, pincode, func(f model.Food) bool {
		return q == "" || strings.Contains(strings.ToLower(f.Name), q)
	})
}

func (s *shoppingService) foods(ctx context.Context, pincode string, keep func(model.Food) bool) ([]model.Food, error) {
	vendors, err := s.catalogue(ctx, pincode)
	if err != nil {
		return nil, err
	}

	var foods []model.Food
	for _, v := range vendors {
		for _, f := range v.Foods {
			if keep(f) {
				foods = append(foods, f)
			}
		}
	}
	if len(foods) == 0 {
		return nil, model.ErrNoDataFound
	}
	return foods, nil
}

func (s *shoppingService) GetAvailableOffers(ctx context.Context, pincode string) ([]model.Offer, error) {
	offers, err := s.offerRepo.ListActiveByPincode(ctx, pincode)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	if len(offers) == 0 {
		return nil, model.ErrOfferNotFound
	}
	return offers, nil
}

func (s *shoppingService) GetRestaurantByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	if vendor == nil {
		return nil, model.ErrNoDataFound
	}

	vendor.Foods, err = s.foodRepo.ListByVendor(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list foods: %w", err)
	}
	return vendor, nil
}
