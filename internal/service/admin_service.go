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

// adminService implements AdminService.
type adminService struct {
	vendorRepo   repository.VendorRepository
	txnRepo      repository.TransactionRepository
	deliveryRepo repository.DeliveryUserRepository
	logger       zerolog.Logger
}

// NewAdminService creates a new admin service.
func NewAdminService(
	vendorRepo repository.VendorRepository,
	txnRepo repository.TransactionRepository,
	deliveryRepo repository.DeliveryUserRepository,
	logger zerolog.Logger,
) AdminService {
	return &adminService{
		vendorRepo:   vendorRepo,
		txnRepo:      txnRepo,
		deliveryRepo: deliveryRepo,
		logger:       logger.With().Str("service", "admin").Logger(),
	}
}

// CreateVendor onboards a restaurant. New vendors start offline.
func (s *adminService) CreateVendor(ctx context.Context, req *model.CreateVendorRequest) (*model.Vendor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.vendorRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up vendor: %w", err)
	}
	if existing != nil {
		s.logger.Warn().Str("email", email).Msg("vendor already exists")
		return nil, model.ErrVendorExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	vendor := &model.Vendor{
		ID:           uuid.New(),
		Name:         req.Name,
		OwnerName:    req.OwnerName,
		FoodTypes:    req.FoodTypes,
		Pincode:      req.Pincode,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        email,
		PasswordHash: hash,
		CoverImages:  []string{},
		Foods:        []model.Food{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if vendor.FoodTypes == nil {
		vendor.FoodTypes = []string{}
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.logger.Info().Str("vendor_id", vendor.ID.String()).Str("pincode", vendor.Pincode).Msg("vendor created")
	return vendor, nil
}

func (s *adminService) GetVendors(ctx context.Context) ([]model.Vendor, error) {
	vendors, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}
	if len(vendors) == 0 {
		return nil, model.ErrVendorNotFound
	}
	return vendors, nil
}

func (s *adminService) GetVendorByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vendor: %w", err)
	}
	if vendor == nil {
		return nil, model.ErrVendorNotFound
	}
	return vendor, nil
}

func (s *adminService) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	txns, err := s.txnRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if len(txns) == 0 {
		return nil, model.ErrTransactionNotFound
	}
	return txns, nil
}

func (s *adminService) GetTransactionByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn == nil {
		return nil, model.ErrTransactionNotFound
	}
	return txn, nil
}

// VerifyDeliveryUser records the admin's decision on a delivery user.
func (s *adminService) VerifyDeliveryUser(ctx context.Context, req *model.VerifyDeliveryUserRequest) (*model.DeliveryUser, error) {
	user, err := s.deliveryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get delivery user: %w", err)
	}
	if user == nil {
		return nil, model.ErrDeliveryUserNotFound
	}

	user.Verified = req.Status
	user.UpdatedAt = time.Now().UTC()
	if err := s.deliveryRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("delivery_id", user.ID.String()).Bool("verified", user.Verified).Msg("delivery user verification updated")
	return user, nil
}

func (s *adminService) GetDeliveryUsers(ctx context.Context) ([]model.DeliveryUser, error) {
	users, err := s.deliveryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list delivery users: %w", err)
	}
	if len(users) == 0 {
		return nil, model.ErrDeliveryUserNotFound
	}
	return users, nil
}
