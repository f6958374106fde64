package service

import (
	"context"
	"errors"
	"testing"

	"food-order/internal/auth"
	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_CreateVendor(t *testing.T) {
	ctx := context.Background()
	vendors := new(MockVendorRepository)
	svc := NewAdminService(vendors, new(MockTransactionRepository), new(MockDeliveryUserRepository), zerolog.Nop())

	req := &model.CreateVendorRequest{
		Name:      "Curry House",
		OwnerName: "Asha",
		Pincode:   "400001",
		Phone:     "9999999999",
		Email:     "  Owner@Curry.example ",
		Password:  "secret1",
	}

	vendors.On("GetByEmail", ctx, "owner@curry.example").Return(nil, nil)
	vendors.On("Create", ctx, mock.AnythingOfType("*model.Vendor")).Return(nil)

	vendor, err := svc.CreateVendor(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, "owner@curry.example", vendor.Email)
	assert.False(t, vendor.ServiceAvailable)
	assert.Equal(t, []string{}, vendor.FoodTypes)
	assert.Equal(t, []string{}, vendor.CoverImages)
	assert.NotEqual(t, "secret1", vendor.PasswordHash)

	ok, err := auth.ComparePassword(vendor.PasswordHash, "secret1")
	require.NoError(t, err)
	assert.True(t, ok)
	vendors.AssertExpectations(t)
}

func TestAdminService_CreateVendor_Exists(t *testing.T) {
	ctx := context.Background()
	vendors := new(MockVendorRepository)
	svc := NewAdminService(vendors, new(MockTransactionRepository), new(MockDeliveryUserRepository), zerolog.Nop())

	vendors.On("GetByEmail", ctx, "dup@example.com").Return(&model.Vendor{ID: uuid.New()}, nil)

	vendor, err := svc.CreateVendor(ctx, &model.CreateVendorRequest{Email: "dup@example.com", Password: "secret1"})

	assert.Nil(t, vendor)
	assert.Equal(t, model.ErrVendorExists, err)
	vendors.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminService_Lists(t *testing.T) {
	ctx := context.Background()
	vendors := new(MockVendorRepository)
	txns := new(MockTransactionRepository)
	delivery := new(MockDeliveryUserRepository)
	svc := NewAdminService(vendors, txns, delivery, zerolog.Nop())

	vendors.On("List", ctx).Return([]model.Vendor{}, nil)
	txns.On("List", ctx).Return([]model.Transaction{}, nil)
	delivery.On("List", ctx).Return([]model.DeliveryUser{{ID: uuid.New()}}, nil)

	_, err := svc.GetVendors(ctx)
	assert.Equal(t, model.ErrVendorNotFound, err)

	_, err = svc.GetTransactions(ctx)
	assert.Equal(t, model.ErrTransactionNotFound, err)

	users, err := svc.GetDeliveryUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestAdminService_GetByID(t *testing.T) {
	ctx := context.Background()
	vendors := new(MockVendorRepository)
	txns := new(MockTransactionRepository)
	svc := NewAdminService(vendors, txns, new(MockDeliveryUserRepository), zerolog.Nop())

	vendorID := uuid.New()
	txnID := uuid.New()
	vendors.On("GetByID", ctx, vendorID).Return(nil, nil)
	txns.On("GetByID", ctx, txnID).Return(nil, errors.New("connection reset"))

	_, err := svc.GetVendorByID(ctx, vendorID)
	assert.Equal(t, model.ErrVendorNotFound, err)

	_, err = svc.GetTransactionByID(ctx, txnID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestAdminService_VerifyDeliveryUser(t *testing.T) {
	ctx := context.Background()
	delivery := new(MockDeliveryUserRepository)
	svc := NewAdminService(new(MockVendorRepository), new(MockTransactionRepository), delivery, zerolog.Nop())

	user := &model.DeliveryUser{ID: uuid.New()}
	delivery.On("GetByID", ctx, user.ID).Return(user, nil)
	delivery.On("Update", ctx, user).Return(nil)

	got, err := svc.VerifyDeliveryUser(ctx, &model.VerifyDeliveryUserRequest{ID: user.ID, Status: true})

	require.NoError(t, err)
	assert.True(t, got.Verified)

	missing := uuid.New()
	delivery.On("GetByID", ctx, missing).Return(nil, nil)
	_, err = svc.VerifyDeliveryUser(ctx, &model.VerifyDeliveryUserRequest{ID: missing, Status: true})
	assert.Equal(t, model.ErrDeliveryUserNotFound, err)
}
