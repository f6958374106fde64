package repository

import (
	"context"
	"errors"

	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Lookups return (nil, nil) when the row does not exist.

// VendorRepository defines data access for vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)

	// Update persists the mutable profile, service and image fields.
	Update(ctx context.Context, vendor *model.Vendor) error

	// ListAvailableByPincode returns vendors serving the pincode ordered by
	// rating, highest first.
	ListAvailableByPincode(ctx context.Context, pincode string) ([]model.Vendor, error)
}

// FoodRepository defines data access for menu items.
type FoodRepository interface {
	Create(ctx context.Context, food *model.Food) error
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Food, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Food, error)
	ListByVendors(ctx context.Context, vendorIDs []uuid.UUID) ([]model.Food, error)
}

// CustomerRepository defines data access for customers and their carts.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.Customer, error)
	Update(ctx context.Context, customer *model.Customer) error

	GetCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error)

	// SetCartItem stores unit for the food, removing the line when unit <= 0.
	SetCartItem(ctx context.Context, customerID, foodID uuid.UUID, unit int) error
	ClearCart(ctx context.Context, customerID uuid.UUID) error
}

// DeliveryUserRepository defines data access for delivery users.
type DeliveryUserRepository interface {
	Create(ctx context.Context, user *model.DeliveryUser) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.DeliveryUser, error)
	GetByEmail(ctx context.Context, email string) (*model.DeliveryUser, error)
	List(ctx context.Context) ([]model.DeliveryUser, error)
	Update(ctx context.Context, user *model.DeliveryUser) error

	// FindAvailable returns the longest-registered verified and available
	// delivery user in the pincode.
	FindAvailable(ctx context.Context, pincode string) (*model.DeliveryUser, error)
}

// OfferRepository defines data access for offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *model.Offer) error
	Update(ctx context.Context, offer *model.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Offer, error)
	GetByPromoCode(ctx context.Context, code string) (*model.Offer, error)

	// ListForVendor returns offers naming the vendor and every generic offer.
	ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Offer, error)
	ListActiveByPincode(ctx context.Context, pincode string) ([]model.Offer, error)
}

// TransactionRepository defines data access for payment transactions.
type TransactionRepository interface {
	Create(ctx context.Context, txn *model.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Transaction, error)
	List(ctx context.Context) ([]model.Transaction, error)
}

// OrderRepository defines data access for orders.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts the order's lines within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.OrderItem) error

	// ClearCart empties the customer's cart within the provided transaction.
	ClearCart(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) error

	// ConfirmTransaction links the payment to the order and marks it confirmed.
	ConfirmTransaction(ctx context.Context, tx pgx.Tx, txnID, vendorID, orderID uuid.UUID) error

	// GetByID retrieves an order with its items and their foods.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Order, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, remarks string, readyTime int) error
	SetDelivery(ctx context.Context, orderID, deliveryID uuid.UUID) error
}

// rowScanner is satisfied by pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
