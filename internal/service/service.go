package service

import (
	"context"

	"food-order/internal/media"
	"food-order/internal/model"

	"github.com/google/uuid"
)

// AdminService defines back-office operations.
type AdminService interface {
	CreateVendor(ctx context.Context, req *model.CreateVendorRequest) (*model.Vendor, error)
	GetVendors(ctx context.Context) ([]model.Vendor, error)
	GetVendorByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	GetTransactions(ctx context.Context) ([]model.Transaction, error)
	GetTransactionByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	VerifyDeliveryUser(ctx context.Context, req *model.VerifyDeliveryUserRequest) (*model.DeliveryUser, error)
	GetDeliveryUsers(ctx context.Context) ([]model.DeliveryUser, error)
}

// VendorService defines operations a vendor performs on its own restaurant.
type VendorService interface {
	Login(ctx context.Context, req *model.LoginRequest) (string, error)
	GetProfile(ctx context.Context, vendorID uuid.UUID) (*model.Vendor, error)
	UpdateProfile(ctx context.Context, vendorID uuid.UUID, req *model.EditVendorRequest) (*model.Vendor, error)
	UpdateCoverImages(ctx context.Context, vendorID uuid.UUID, files []media.File) (*model.Vendor, error)

	// UpdateService toggles whether the vendor accepts orders.
	UpdateService(ctx context.Context, vendorID uuid.UUID, req *model.LocationRequest) (*model.Vendor, error)
	AddFood(ctx context.Context, vendorID uuid.UUID, req *model.CreateFoodRequest, files []media.File) (*model.Vendor, error)
	GetFoods(ctx context.Context, vendorID uuid.UUID) ([]model.Food, error)
}

// OfferService defines offer management and promo code checks.
type OfferService interface {
	GetVendorOffers(ctx context.Context, vendorID uuid.UUID) ([]model.Offer, error)
	AddOffer(ctx context.Context, vendorID uuid.UUID, req *model.OfferRequest) (*model.Offer, error)
	EditOffer(ctx context.Context, vendorID, offerID uuid.UUID, req *model.OfferRequest) (*model.Offer, error)

	// VerifyOffer accepts either an offer ID or a promo code.
	VerifyOffer(ctx context.Context, codeOrID string) (*model.Offer, error)
}

// ShoppingService defines the public catalogue queries.
type ShoppingService interface {
	GetFoodAvailability(ctx context.Context, pincode string) ([]model.Vendor, error)
	GetTopRestaurants(ctx context.Context, pincode string) ([]model.Vendor, error)
	GetFoodsIn30Min(ctx context.Context, pincode string) ([]model.Food, error)
	SearchFoods(ctx context.Context, pincode, query string) ([]model.Food, error)
	GetAvailableOffers(ctx context.Context, pincode string) ([]model.Offer, error)
	GetRestaurantByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
}

// CustomerService defines customer account operations.
type CustomerService interface {
	Signup(ctx context.Context, req *model.SignupRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	Verify(ctx context.Context, customerID uuid.UUID, req *model.VerifyRequest) (*model.AuthResponse, error)
	RequestOTP(ctx context.Context, customerID uuid.UUID) error
	GetProfile(ctx context.Context, customerID uuid.UUID) (*model.Customer, error)
	EditProfile(ctx context.Context, customerID uuid.UUID, req *model.EditProfileRequest) (*model.Customer, error)
}

// CartService defines cart operations.
type CartService interface {
	AddToCart(ctx context.Context, customerID uuid.UUID, req *model.CartRequest) ([]model.CartItem, error)
	GetCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error)
	ClearCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error)
}

// PaymentService opens payment transactions.
type PaymentService interface {
	CreatePayment(ctx context.Context, customerID uuid.UUID, req *model.PaymentRequest) (*model.Transaction, error)
}

// OrderService defines order placement and fulfilment.
type OrderService interface {
	// CreateOrder places an order against an open transaction.
	CreateOrder(ctx context.Context, customerID uuid.UUID, req *model.OrderRequest) (*model.Order, error)
	GetCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*model.Order, error)

	// OrderQRCode renders the order number as a PNG for hand-off.
	OrderQRCode(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error)

	GetVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]model.Order, error)
	GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*model.Order, error)
	ProcessOrder(ctx context.Context, vendorID, orderID uuid.UUID, req *model.ProcessOrderRequest) (*model.Order, error)

	// Close waits for background work started by the service.
	Close()
}

// DeliveryService defines delivery user operations.
type DeliveryService interface {
	Signup(ctx context.Context, req *model.DeliverySignupRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	GetProfile(ctx context.Context, id uuid.UUID) (*model.DeliveryUser, error)
	EditProfile(ctx context.Context, id uuid.UUID, req *model.EditProfileRequest) (*model.DeliveryUser, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, req *model.LocationRequest) (*model.DeliveryUser, error)
}
