package repository

import (
	"context"
	"testing"
	"time"

	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func seedVendor(t *testing.T, pool *pgxpool.Pool, mutate func(v *model.Vendor)) *model.Vendor {
	t.Helper()
	now := time.Now().UTC().Truncate(time.Microsecond)
	v := &model.Vendor{
		ID:               uuid.New(),
		Name:             "Spice Hub",
		OwnerName:        "Asha",
		FoodTypes:        []string{"veg"},
		Pincode:          "110001",
		Phone:            "9999999999",
		Email:            uuid.NewString() + "@vendor.test",
		PasswordHash:     "hash",
		ServiceAvailable: true,
		CoverImages:      []string{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if mutate != nil {
		mutate(v)
	}
	require.NoError(t, NewVendorRepository(pool, zerolog.Nop()).Create(context.Background(), v))
	return v
}

func seedFood(t *testing.T, pool *pgxpool.Pool, vendorID uuid.UUID, name string, price float64, readyTime int) *model.Food {
	t.Helper()
	f := &model.Food{
		ID:        uuid.New(),
		VendorID:  vendorID,
		Name:      name,
		Category:  "main",
		FoodType:  "veg",
		ReadyTime: readyTime,
		Price:     price,
		Images:    []string{"/images/" + name + ".png"},
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, NewFoodRepository(pool, zerolog.Nop()).Create(context.Background(), f))
	return f
}

func seedCustomer(t *testing.T, pool *pgxpool.Pool) *model.Customer {
	t.Helper()
	now := time.Now().UTC()
	c := &model.Customer{
		ID:           uuid.New(),
		Email:        uuid.NewString() + "@customer.test",
		PasswordHash: "hash",
		Phone:        "9876543210",
		OTP:          123456,
		OTPExpiry:    now.Add(30 * time.Minute),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, NewCustomerRepository(pool, zerolog.Nop()).Create(context.Background(), c))
	return c
}

func seedTransaction(t *testing.T, pool *pgxpool.Pool, customerID uuid.UUID, value float64) *model.Transaction {
	t.Helper()
	now := time.Now().UTC()
	txn := &model.Transaction{
		ID:              uuid.New(),
		CustomerID:      customerID,
		OrderValue:      value,
		Status:          model.TransactionOpen,
		PaymentMode:     "COD",
		PaymentResponse: model.CashOnDelivery,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	require.NoError(t, NewTransactionRepository(pool, zerolog.Nop()).Create(context.Background(), txn))
	return txn
}
