package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"food-order/internal/auth"
	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// deliveryService implements DeliveryService.
type deliveryService struct {
	deliveryRepo repository.DeliveryUserRepository
	tokens       *auth.TokenManager
	logger       zerolog.Logger
}

// NewDeliveryService creates a new delivery service.
func NewDeliveryService(deliveryRepo repository.DeliveryUserRepository, tokens *auth.TokenManager, logger zerolog.Logger) DeliveryService {
	return &deliveryService{
		deliveryRepo: deliveryRepo,
		tokens:       tokens,
		logger:       logger.With().Str("service", "delivery").Logger(),
	}
}

// Signup registers a delivery user. Admin verification is required before
// the user can be assigned orders.
func (s *deliveryService) Signup(ctx context.Context, req *model.DeliverySignupRequest) (*model.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.deliveryRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up delivery user: %w", err)
	}
	if existing != nil {
		return nil, model.ErrDeliveryUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &model.DeliveryUser{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		Phone:        req.Phone,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Address:      req.Address,
		Pincode:      req.Pincode,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.deliveryRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("delivery_id", user.ID.String()).Str("pincode", user.Pincode).Msg("delivery user signed up")
	return s.authResponse(user)
}

func (s *deliveryService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	user, err := s.deliveryRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, fmt.Errorf("failed to look up delivery user: %w", err)
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	ok, err := auth.ComparePassword(user.PasswordHash, req.Password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, model.ErrInvalidCredentials
	}
	return s.authResponse(user)
}

func (s *deliveryService) GetProfile(ctx context.Context, id uuid.UUID) (*model.DeliveryUser, error) {
	return s.load(ctx, id)
}

func (s *deliveryService) EditProfile(ctx context.Context, id uuid.UUID, req *model.EditProfileRequest) (*model.DeliveryUser, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	user.FirstName = req.FirstName
	user.LastName = req.LastName
	user.Address = req.Address
	return s.save(ctx, user)
}

// UpdateStatus toggles availability and records the location when given.
func (s *deliveryService) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.LocationRequest) (*model.DeliveryUser, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	user.IsAvailable = !user.IsAvailable
	if req != nil && req.Lat != nil && req.Lng != nil {
		user.Lat = *req.Lat
		user.Lng = *req.Lng
	}

	s.logger.Info().Str("delivery_id", id.String()).Bool("available", user.IsAvailable).Msg("delivery status toggled")
	return s.save(ctx, user)
}

func (s *deliveryService) load(ctx context.Context, id uuid.UUID) (*model.DeliveryUser, error) {
	user, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery user: %w", err)
	}
	if user == nil {
		return nil, model.ErrDeliveryUserNotFound
	}
	return user, nil
}

func (s *deliveryService) save(ctx context.Context, user *model.DeliveryUser) (*model.DeliveryUser, error) {
	user.UpdatedAt = time.Now().UTC()
	if err := s.deliveryRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *deliveryService) authResponse(u *model.DeliveryUser) (*model.AuthResponse, error) {
	signature, err := s.tokens.Generate(model.AuthPayload{
		ID:       u.ID,
		Email:    u.Email,
		Role:     model.RoleDelivery,
		Verified: u.Verified,
		Name:     strings.TrimSpace(u.FirstName + " " + u.LastName),
	})
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{Signature: signature, Verified: u.Verified, Email: u.Email}, nil
}
