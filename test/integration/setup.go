package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"food-order/internal/auth"
	"food-order/internal/cache"
	"food-order/internal/database/dbtest"
	"food-order/internal/events"
	"food-order/internal/handler"
	"food-order/internal/media"
	"food-order/internal/notifier"
	"food-order/internal/repository"
	"food-order/internal/router"
	"food-order/internal/service"

	"github.com/alicebob/miniredis/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key"

// TestEnv is a fully wired server over a disposable database.
type TestEnv struct {
	Pool   *pgxpool.Pool
	Server http.Handler
	Orders service.OrderService
	Redis  *miniredis.Miniredis
}

// SetupTestEnv starts PostgreSQL and an in-process Redis and wires every
// service the way cmd/api does, with notifications and events disabled.
func SetupTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	pool := dbtest.New(t)
	logger := zerolog.Nop()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	catalogue := cache.NewRedisCache(client, time.Minute, logger)

	imagesDir := t.TempDir()
	images, err := media.NewFileStore(imagesDir, "/images", logger)
	require.NoError(t, err)

	vendorRepo := repository.NewVendorRepository(pool, logger)
	foodRepo := repository.NewFoodRepository(pool, logger)
	customerRepo := repository.NewCustomerRepository(pool, logger)
	deliveryRepo := repository.NewDeliveryUserRepository(pool, logger)
	offerRepo := repository.NewOfferRepository(pool, logger)
	txnRepo := repository.NewTransactionRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	email := notifier.NewNopEmailSender(logger)
	sms := notifier.NewNopSMSSender(logger)
	tokens := auth.NewTokenManager("integration-secret", time.Hour)

	orderService := service.NewOrderService(service.OrderDeps{
		Orders:       orderRepo,
		Foods:        foodRepo,
		Transactions: txnRepo,
		Vendors:      vendorRepo,
		Customers:    customerRepo,
		Delivery:     deliveryRepo,
		Events:       events.NewNopPublisher(logger),
		Email:        email,
	}, logger)
	t.Cleanup(orderService.Close)

	offerService := service.NewOfferService(offerRepo, logger)

	handlers := router.Handlers{
		Admin: handler.NewAdminHandler(service.NewAdminService(vendorRepo, txnRepo, deliveryRepo, logger), logger),
		Vendor: handler.NewVendorHandler(
			service.NewVendorService(vendorRepo, foodRepo, images, catalogue, tokens, logger),
			orderService, offerService, logger),
		Customer: handler.NewCustomerHandler(
			service.NewCustomerService(customerRepo, tokens, email, sms, logger),
			service.NewCartService(customerRepo, foodRepo, logger),
			offerService,
			service.NewPaymentService(txnRepo, offerRepo, logger),
			orderService, logger),
		Delivery: handler.NewDeliveryHandler(service.NewDeliveryService(deliveryRepo, tokens, logger), logger),
		Shopping: handler.NewShoppingHandler(service.NewShoppingService(vendorRepo, foodRepo, offerRepo, catalogue, logger), logger),
	}

	server := router.New(handlers, tokens, router.Options{
		APIKey:         testAPIKey,
		AllowedOrigins: []string{"*"},
		ImagesDir:      imagesDir,
	}, logger)

	return &TestEnv{Pool: pool, Server: server, Orders: orderService, Redis: mr}
}

// Do sends a JSON request, with token as the bearer signature when set.
func (e *TestEnv) Do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Server.ServeHTTP(w, req)
	return w
}

// Admin sends a JSON request with the admin API key.
func (e *TestEnv) Admin(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", testAPIKey)

	w := httptest.NewRecorder()
	e.Server.ServeHTTP(w, req)
	return w
}

// Upload sends a multipart form with one image.
func (e *TestEnv) Upload(t *testing.T, method, path string, fields map[string]string, token string) *httptest.ResponseRecorder {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("images", "dish.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("jpeg-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	e.Server.ServeHTTP(w, req)
	return w
}

// Decode unmarshals a response body into T.
func Decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

// CustomerOTP reads the pending OTP of a customer.
func CustomerOTP(t *testing.T, pool *pgxpool.Pool, email string) int {
	t.Helper()

	var otp int
	err := pool.QueryRow(context.Background(), "SELECT otp FROM customers WHERE email = $1", email).Scan(&otp)
	require.NoError(t, err)
	return otp
}
