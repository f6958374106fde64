package handler

import (
	"context"

	"food-order/internal/media"
	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// result unpacks a (pointer-or-nil, error) mock return.
func result[T any](args mock.Arguments) (T, error) {
	var zero T
	if args.Get(0) == nil {
		return zero, args.Error(1)
	}
	return args.Get(0).(T), args.Error(1)
}

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) CreateVendor(ctx context.Context, req *model.CreateVendorRequest) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, req))
}

func (m *MockAdminService) GetVendors(ctx context.Context) ([]model.Vendor, error) {
	return result[[]model.Vendor](m.Called(ctx))
}

func (m *MockAdminService) GetVendorByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, id))
}

func (m *MockAdminService) GetTransactions(ctx context.Context) ([]model.Transaction, error) {
	return result[[]model.Transaction](m.Called(ctx))
}

func (m *MockAdminService) GetTransactionByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error) {
	return result[*model.Transaction](m.Called(ctx, id))
}

func (m *MockAdminService) VerifyDeliveryUser(ctx context.Context, req *model.VerifyDeliveryUserRequest) (*model.DeliveryUser, error) {
	return result[*model.DeliveryUser](m.Called(ctx, req))
}

func (m *MockAdminService) GetDeliveryUsers(ctx context.Context) ([]model.DeliveryUser, error) {
	return result[[]model.DeliveryUser](m.Called(ctx))
}

type MockVendorService struct {
	mock.Mock
}

func (m *MockVendorService) Login(ctx context.Context, req *model.LoginRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *MockVendorService) GetProfile(ctx context.Context, vendorID uuid.UUID) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, vendorID))
}

func (m *MockVendorService) UpdateProfile(ctx context.Context, vendorID uuid.UUID, req *model.EditVendorRequest) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, vendorID, req))
}

func (m *MockVendorService) UpdateCoverImages(ctx context.Context, vendorID uuid.UUID, files []media.File) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, vendorID, files))
}

func (m *MockVendorService) UpdateService(ctx context.Context, vendorID uuid.UUID, req *model.LocationRequest) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, vendorID, req))
}

func (m *MockVendorService) AddFood(ctx context.Context, vendorID uuid.UUID, req *model.CreateFoodRequest, files []media.File) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, vendorID, req, files))
}

func (m *MockVendorService) GetFoods(ctx context.Context, vendorID uuid.UUID) ([]model.Food, error) {
	return result[[]model.Food](m.Called(ctx, vendorID))
}

type MockOfferService struct {
	mock.Mock
}

func (m *MockOfferService) GetVendorOffers(ctx context.Context, vendorID uuid.UUID) ([]model.Offer, error) {
	return result[[]model.Offer](m.Called(ctx, vendorID))
}

func (m *MockOfferService) AddOffer(ctx context.Context, vendorID uuid.UUID, req *model.OfferRequest) (*model.Offer, error) {
	return result[*model.Offer](m.Called(ctx, vendorID, req))
}

func (m *MockOfferService) EditOffer(ctx context.Context, vendorID, offerID uuid.UUID, req *model.OfferRequest) (*model.Offer, error) {
	return result[*model.Offer](m.Called(ctx, vendorID, offerID, req))
}

func (m *MockOfferService) VerifyOffer(ctx context.Context, codeOrID string) (*model.Offer, error) {
	return result[*model.Offer](m.Called(ctx, codeOrID))
}

type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) GetFoodAvailability(ctx context.Context, pincode string) ([]model.Vendor, error) {
	return result[[]model.Vendor](m.Called(ctx, pincode))
}

func (m *MockShoppingService) GetTopRestaurants(ctx context.Context, pincode string) ([]model.Vendor, error) {
	return result[[]model.Vendor](m.Called(ctx, pincode))
}

func (m *MockShoppingService) GetFoodsIn30Min(ctx context.Context, pincode string) ([]model.Food, error) {
	return result[[]model.Food](m.Called(ctx, pincode))
}

func (m *MockShoppingService) SearchFoods(ctx context.Context, pincode, query string) ([]model.Food, error) {
	return result[[]model.Food](m.Called(ctx, pincode, query))
}

func (m *MockShoppingService) GetAvailableOffers(ctx context.Context, pincode string) ([]model.Offer, error) {
	return result[[]model.Offer](m.Called(ctx, pincode))
}

func (m *MockShoppingService) GetRestaurantByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	return result[*model.Vendor](m.Called(ctx, id))
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error) {
	return result[*model.AuthResponse](m.Called(ctx, req))
}

func (m *MockCustomerService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return result[*model.AuthResponse](m.Called(ctx, req))
}

func (m *MockCustomerService) Verify(ctx context.Context, customerID uuid.UUID, req *model.VerifyRequest) (*model.AuthResponse, error) {
	return result[*model.AuthResponse](m.Called(ctx, customerID, req))
}

func (m *MockCustomerService) RequestOTP(ctx context.Context, customerID uuid.UUID) error {
	return m.Called(ctx, customerID).Error(0)
}

func (m *MockCustomerService) GetProfile(ctx context.Context, customerID uuid.UUID) (*model.Customer, error) {
	return result[*model.Customer](m.Called(ctx, customerID))
}

func (m *MockCustomerService) EditProfile(ctx context.Context, customerID uuid.UUID, req *model.EditProfileRequest) (*model.Customer, error) {
	return result[*model.Customer](m.Called(ctx, customerID, req))
}

type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) AddToCart(ctx context.Context, customerID uuid.UUID, req *model.CartRequest) ([]model.CartItem, error) {
	return result[[]model.CartItem](m.Called(ctx, customerID, req))
}

func (m *MockCartService) GetCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error) {
	return result[[]model.CartItem](m.Called(ctx, customerID))
}

func (m *MockCartService) ClearCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error) {
	return result[[]model.CartItem](m.Called(ctx, customerID))
}

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, customerID uuid.UUID, req *model.PaymentRequest) (*model.Transaction, error) {
	return result[*model.Transaction](m.Called(ctx, customerID, req))
}

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *model.OrderRequest) (*model.Order, error) {
	return result[*model.Order](m.Called(ctx, customerID, req))
}

func (m *MockOrderService) GetCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	return result[[]model.Order](m.Called(ctx, customerID))
}

func (m *MockOrderService) GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*model.Order, error) {
	return result[*model.Order](m.Called(ctx, customerID, orderID))
}

func (m *MockOrderService) OrderQRCode(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	return result[[]byte](m.Called(ctx, customerID, orderID))
}

func (m *MockOrderService) GetVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]model.Order, error) {
	return result[[]model.Order](m.Called(ctx, vendorID))
}

func (m *MockOrderService) GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*model.Order, error) {
	return result[*model.Order](m.Called(ctx, vendorID, orderID))
}

func (m *MockOrderService) ProcessOrder(ctx context.Context, vendorID, orderID uuid.UUID, req *model.ProcessOrderRequest) (*model.Order, error) {
	return result[*model.Order](m.Called(ctx, vendorID, orderID, req))
}

func (m *MockOrderService) Close() {}

type MockDeliveryService struct {
	mock.Mock
}

func (m *MockDeliveryService) Signup(ctx context.Context, req *model.DeliverySignupRequest) (*model.AuthResponse, error) {
	return result[*model.AuthResponse](m.Called(ctx, req))
}

func (m *MockDeliveryService) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	return result[*model.AuthResponse](m.Called(ctx, req))
}

func (m *MockDeliveryService) GetProfile(ctx context.Context, id uuid.UUID) (*model.DeliveryUser, error) {
	return result[*model.DeliveryUser](m.Called(ctx, id))
}

func (m *MockDeliveryService) EditProfile(ctx context.Context, id uuid.UUID, req *model.EditProfileRequest) (*model.DeliveryUser, error) {
	return result[*model.DeliveryUser](m.Called(ctx, id, req))
}

func (m *MockDeliveryService) UpdateStatus(ctx context.Context, id uuid.UUID, req *model.LocationRequest) (*model.DeliveryUser, error) {
	return result[*model.DeliveryUser](m.Called(ctx, id, req))
}
