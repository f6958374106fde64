package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"food-order/internal/events"
	"food-order/internal/model"
	"food-order/internal/notifier"
	"food-order/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/skip2/go-qrcode"
)

// asyncTimeout bounds each side effect started after an order is placed.
const asyncTimeout = 30 * time.Second

// OrderDeps groups the collaborators of the order service.
type OrderDeps struct {
	Orders       repository.OrderRepository
	Foods        repository.FoodRepository
	Transactions repository.TransactionRepository
	Vendors      repository.VendorRepository
	Customers    repository.CustomerRepository
	Delivery     repository.DeliveryUserRepository
	Events       events.Publisher
	Email        notifier.EmailSender
}

// orderService implements OrderService.
type orderService struct {
	OrderDeps
	newOrderNumber func() string
	wg             sync.WaitGroup
	logger         zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(deps OrderDeps, logger zerolog.Logger) OrderService {
	return &orderService{
		OrderDeps:      deps,
		newOrderNumber: randomOrderNumber,
		logger:         logger.With().Str("service", "order").Logger(),
	}
}

func randomOrderNumber() string {
	return strconv.Itoa(10000000 + rand.IntN(90000000))
}

// CreateOrder places an order for the items against an open transaction.
func (s *orderService) CreateOrder(ctx context.Context, customerID uuid.UUID, req *model.OrderRequest) (*model.Order, error) {
	// Validate request
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	customer, err := s.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, model.ErrCustomerNotFound
	}

	txn, err := s.Transactions.GetByID(ctx, req.TxnID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	if txn == nil || txn.CustomerID != customerID || txn.Status != model.TransactionOpen {
		s.logger.Warn().
			Str("customer_id", customerID.String()).
			Str("transaction_id", req.TxnID.String()).
			Msg("transaction not usable for order")
		return nil, model.ErrInvalidTransaction
	}

	// Merge repeated foods into one line
	units := make(map[uuid.UUID]int, len(req.Items))
	foodIDs := make([]uuid.UUID, 0, len(req.Items))
	for _, item := range req.Items {
		if _, seen := units[item.FoodID]; !seen {
			foodIDs = append(foodIDs, item.FoodID)
		}
		units[item.FoodID] += item.Unit
		if units[item.FoodID] > model.MaxUnit {
			return nil, model.ErrInvalidQuantity
		}
	}

	foods, err := s.Foods.GetByIDs(ctx, foodIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get foods: %w", err)
	}
	if len(foods) != len(foodIDs) {
		s.logger.Warn().
			Int("requested", len(foodIDs)).
			Int("found", len(foods)).
			Msg("food validation failed")
		return nil, model.ErrFoodNotFound
	}

	vendorID := foods[0].VendorID
	items := make([]model.OrderItem, 0, len(foods))
	var total float64
	for _, f := range foods {
		if f.VendorID != vendorID {
			return nil, model.ErrMixedVendors
		}
		unit := units[f.ID]
		items = append(items, model.OrderItem{FoodID: f.ID, Name: f.Name, Price: f.Price, Unit: unit})
		total += f.Price * float64(unit)
	}

	now := time.Now().UTC()
	order := &model.Order{
		ID:            uuid.New(),
		OrderNumber:   s.newOrderNumber(),
		CustomerID:    customerID,
		VendorID:      vendorID,
		TransactionID: &txn.ID,
		Items:         items,
		TotalAmount:   total,
		PaidAmount:    txn.OrderValue,
		Status:        model.OrderWaiting,
		ReadyTime:     model.DefaultReadyTime,
		OrderDate:     now,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// Start transaction
	tx, err := s.Orders.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	if err = s.Orders.CreateOrder(ctx, tx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if err = s.Orders.CreateOrderItems(ctx, tx, order.ID, items); err != nil {
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = s.Orders.ClearCart(ctx, tx, customerID); err != nil {
		return nil, err
	}

	if err = s.Orders.ConfirmTransaction(ctx, tx, txn.ID, vendorID, order.ID); err != nil {
		return nil, err
	}

	// Commit transaction
	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("order_id", order.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("order_number", order.OrderNumber).
		Int("item_count", len(items)).
		Float64("total", total).
		Msg("order created successfully")

	placed := *order
	s.goAsync("assign delivery", func(ctx context.Context) error {
		return s.assignDelivery(ctx, &placed)
	})
	s.goAsync("publish order created", func(ctx context.Context) error {
		return s.publish(ctx, events.OrderCreated, &placed)
	})
	s.goAsync("send confirmation", func(ctx context.Context) error {
		return s.Email.SendOrderConfirmation(ctx, customer.Email, placed.OrderNumber, placed.PaidAmount)
	})

	return order, nil
}

// assignDelivery gives the order to the first free verified delivery user in
// the vendor's pincode. No candidate is not an error.
func (s *orderService) assignDelivery(ctx context.Context, order *model.Order) error {
	vendor, err := s.Vendors.GetByID(ctx, order.VendorID)
	if err != nil {
		return err
	}
	if vendor == nil {
		return model.ErrVendorNotFound
	}

	user, err := s.Delivery.FindAvailable(ctx, vendor.Pincode)
	if err != nil {
		return err
	}
	if user == nil {
		s.logger.Info().
			Str("order_id", order.ID.String()).
			Str("pincode", vendor.Pincode).
			Msg("no delivery user available")
		return nil
	}

	if err := s.Orders.SetDelivery(ctx, order.ID, user.ID); err != nil {
		return err
	}
	order.DeliveryID = &user.ID

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("delivery_id", user.ID.String()).
		Msg("delivery assigned")
	return s.publish(ctx, events.DeliveryAssigned, order)
}

func (s *orderService) publish(ctx context.Context, eventType string, order *model.Order) error {
	return s.Events.Publish(ctx, events.Event{
		Type:        eventType,
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		CustomerID:  order.CustomerID,
		VendorID:    order.VendorID,
		Status:      string(order.Status),
		Amount:      order.PaidAmount,
	})
}

// goAsync runs fn detached from the request. Close waits for it.
func (s *orderService) goAsync(name string, fn func(ctx context.Context) error) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.logger.Error().Err(err).Str("task", name).Msg("background task failed")
		}
	}()
}

// Close waits for background tasks to finish.
func (s *orderService) Close() {
	s.wg.Wait()
}

func (s *orderService) GetCustomerOrders(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	orders, err := s.Orders.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// GetCustomerOrder hides orders of other customers behind not found.
func (s *orderService) GetCustomerOrder(ctx context.Context, customerID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil || order.CustomerID != customerID {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

func (s *orderService) OrderQRCode(ctx context.Context, customerID, orderID uuid.UUID) ([]byte, error) {
	order, err := s.GetCustomerOrder(ctx, customerID, orderID)
	if err != nil {
		return nil, err
	}
	png, err := qrcode.Encode(order.OrderNumber, qrcode.Medium, 256)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}
	return png, nil
}

func (s *orderService) GetVendorOrders(ctx context.Context, vendorID uuid.UUID) ([]model.Order, error) {
	orders, err := s.Orders.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) GetVendorOrder(ctx context.Context, vendorID, orderID uuid.UUID) (*model.Order, error) {
	order, err := s.Orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if order == nil || order.VendorID != vendorID {
		return nil, model.ErrOrderNotFound
	}
	return order, nil
}

// ProcessOrder moves the order to the requested status. A positive time
// replaces the ready time estimate.
func (s *orderService) ProcessOrder(ctx context.Context, vendorID, orderID uuid.UUID, req *model.ProcessOrderRequest) (*model.Order, error) {
	if !req.Status.Valid() {
		return nil, model.ErrInvalidOrderStatus
	}

	order, err := s.GetVendorOrder(ctx, vendorID, orderID)
	if err != nil {
		return nil, err
	}

	readyTime := order.ReadyTime
	if req.Time > 0 {
		readyTime = req.Time
	}

	if err := s.Orders.UpdateStatus(ctx, order.ID, req.Status, req.Remarks, readyTime); err != nil {
		return nil, err
	}

	order.Status = req.Status
	order.Remarks = req.Remarks
	order.ReadyTime = readyTime
	order.UpdatedAt = time.Now().UTC()

	s.logger.Info().
		Str("order_id", order.ID.String()).
		Str("status", string(order.Status)).
		Msg("order processed")

	changed := *order
	s.goAsync("publish status change", func(ctx context.Context) error {
		return s.publish(ctx, events.OrderStatusChanged, &changed)
	})

	return order, nil
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil || len(req.Items) == 0 {
		return model.ErrEmptyOrder
	}

	// Validate each item
	for i, item := range req.Items {
		if item.Unit <= 0 || item.Unit > model.MaxUnit {
			s.logger.Warn().
				Int("item_index", i).
				Str("food_id", item.FoodID.String()).
				Int("unit", item.Unit).
				Msg("invalid unit")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
