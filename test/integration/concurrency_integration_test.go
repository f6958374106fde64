package integration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"food-order/internal/model"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcurrentOrders_OneTransactionOneOrder(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	env := SetupTestEnv(t)
	ctx := context.Background()
	logger := zerolog.Nop()
	now := time.Now().UTC()

	vendor := &model.Vendor{
		ID: uuid.New(), Name: "Tandoor", OwnerName: "Dev", Pincode: pincode,
		Phone: "9000000001", Email: "tandoor@example.com", PasswordHash: "x",
		ServiceAvailable: true, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repository.NewVendorRepository(env.Pool, logger).Create(ctx, vendor))

	food := &model.Food{ID: uuid.New(), VendorID: vendor.ID, Name: "Naan", Price: 40, ReadyTime: 10, CreatedAt: now}
	require.NoError(t, repository.NewFoodRepository(env.Pool, logger).Create(ctx, food))

	customer := &model.Customer{
		ID: uuid.New(), Email: "rush@example.com", PasswordHash: "x", Phone: "9000000002",
		OTPExpiry: now, CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repository.NewCustomerRepository(env.Pool, logger).Create(ctx, customer))

	txn := &model.Transaction{
		ID: uuid.New(), CustomerID: customer.ID, OrderValue: 80,
		Status: model.TransactionOpen, PaymentMode: "COD", PaymentResponse: model.CashOnDelivery,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, repository.NewTransactionRepository(env.Pool, logger).Create(ctx, txn))

	const attempts = 8
	req := &model.OrderRequest{TxnID: txn.ID, Amount: 80, Items: []model.OrderItemRequest{{FoodID: food.ID, Unit: 2}}}

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		rejected  int
		other     []error
	)
	for range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := env.Orders.CreateOrder(ctx, customer.ID, req)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, model.ErrInvalidTransaction):
				rejected++
			default:
				other = append(other, err)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)

	var orders int
	require.NoError(t, env.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM orders WHERE transaction_id = $1", txn.ID).Scan(&orders))
	assert.Equal(t, 1, orders)
}
