package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-order/internal/auth"
	"food-order/internal/cache"
	"food-order/internal/media"
	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// vendorService implements VendorService.
type vendorService struct {
	vendorRepo repository.VendorRepository
	foodRepo   repository.FoodRepository
	images     media.Store
	cache      cache.Cache
	tokens     *auth.TokenManager
	logger     zerolog.Logger
}

// NewVendorService creates a new vendor service.
func NewVendorService(
	vendorRepo repository.VendorRepository,
	foodRepo repository.FoodRepository,
	images media.Store,
	c cache.Cache,
	tokens *auth.TokenManager,
	logger zerolog.Logger,
) VendorService {
	return &vendorService{
		vendorRepo: vendorRepo,
		foodRepo:   foodRepo,
		images:     images,
		cache:      c,
		tokens:     tokens,
		logger:     logger.With().Str("service", "vendor").Logger(),
	}
}

// Login checks the vendor's credentials and issues a signature.
func (s *vendorService) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	vendor, err := s.vendorRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return "", fmt.Errorf("failed to look up vendor: %w", err)
	}
	if vendor == nil {
		return "", model.ErrInvalidCredentials
	}

	ok, err := auth.ComparePassword(vendor.PasswordHash, req.Password)
	if err != nil {
		return "", err
	}
	if !ok {
		s.logger.Warn().Str("vendor_id", vendor.ID.String()).Msg("invalid vendor password")
		return "", model.ErrInvalidCredentials
	}

	return s.tokens.Generate(model.AuthPayload{
		ID:       vendor.ID,
		Email:    vendor.Email,
		Role:     model.RoleVendor,
		Verified: true,
		Name:     vendor.Name,
	})
}

func (s *vendorService) GetProfile(ctx context.Context, vendorID uuid.UUID) (*model.Vendor, error) {
	return s.load(ctx, vendorID)
}

func (s *vendorService) UpdateProfile(ctx context.Context, vendorID uuid.UUID, req *model.EditVendorRequest) (*model.Vendor, error) {
	vendor, err := s.load(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	vendor.Name = req.Name
	vendor.Address = req.Address
	vendor.Phone = req.Phone
	if req.FoodTypes != nil {
		vendor.FoodTypes = req.FoodTypes
	}
	return s.save(ctx, vendor)
}

// UpdateCoverImages uploads the images and appends their URLs.
func (s *vendorService) UpdateCoverImages(ctx context.Context, vendorID uuid.UUID, files []media.File) (*model.Vendor, error) {
	if len(files) == 0 {
		return nil, model.ErrMissingImages
	}

	vendor, err := s.load(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	urls, err := media.SaveAll(ctx, s.images, files)
	if err != nil {
		s.logger.Error().Err(err).Str("vendor_id", vendorID.String()).Msg("failed to store cover images")
		return nil, fmt.Errorf("failed to store images: %w", err)
	}

	vendor.CoverImages = append(vendor.CoverImages, urls...)
	return s.save(ctx, vendor)
}

// UpdateService flips service availability. Coordinates are replaced only
// when both are present.
func (s *vendorService) UpdateService(ctx context.Context, vendorID uuid.UUID, req *model.LocationRequest) (*model.Vendor, error) {
	vendor, err := s.load(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	vendor.ServiceAvailable = !vendor.ServiceAvailable
	if req != nil && req.Lat != nil && req.Lng != nil {
		vendor.Lat = *req.Lat
		vendor.Lng = *req.Lng
	}

	s.logger.Info().
		Str("vendor_id", vendorID.String()).
		Bool("service_available", vendor.ServiceAvailable).
		Msg("vendor service toggled")

	return s.save(ctx, vendor)
}

// AddFood stores the images, creates the food and returns the vendor with its menu.
func (s *vendorService) AddFood(ctx context.Context, vendorID uuid.UUID, req *model.CreateFoodRequest, files []media.File) (*model.Vendor, error) {
	if len(files) == 0 {
		return nil, model.ErrMissingImages
	}

	vendor, err := s.load(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	urls, err := media.SaveAll(ctx, s.images, files)
	if err != nil {
		s.logger.Error().Err(err).Str("vendor_id", vendorID.String()).Msg("failed to store food images")
		return nil, fmt.Errorf("failed to store images: %w", err)
	}

	food := &model.Food{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		FoodType:    req.FoodType,
		ReadyTime:   req.ReadyTime,
		Price:       req.Price,
		Images:      urls,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}
	s.invalidate(ctx, vendor.Pincode)

	s.logger.Info().Str("vendor_id", vendorID.String()).Str("food_id", food.ID.String()).Msg("food added")

	vendor.Foods, err = s.foodRepo.ListByVendor(ctx, vendor.ID)
	if err != nil {
		return nil, err
	}
	return vendor, nil
}

// GetFoods returns the vendor's menu, empty when nothing was added yet.
func (s *vendorService) GetFoods(ctx context.Context, vendorID uuid.UUID) ([]model.Food, error) {
	return s.foodRepo.ListByVendor(ctx, vendorID)
}

func (s *vendorService) load(ctx context.Context, vendorID uuid.UUID) (*model.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	if vendor == nil {
		return nil, model.ErrVendorNotFound
	}
	return vendor, nil
}

func (s *vendorService) save(ctx context.Context, vendor *model.Vendor) (*model.Vendor, error) {
	vendor.UpdatedAt = time.Now().UTC()
	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	s.invalidate(ctx, vendor.Pincode)
	return vendor, nil
}

// invalidate drops the cached catalogue of a pincode. Failures only cost
// freshness until the entry expires.
func (s *vendorService) invalidate(ctx context.Context, pincode string) {
	if err := s.cache.Delete(ctx, catalogueKey(pincode)); err != nil {
		s.logger.Warn().Err(err).Str("pincode", pincode).Msg("failed to invalidate catalogue cache")
	}
}
