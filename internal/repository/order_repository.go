package repository

import (
	"context"
	"errors"
	"fmt"

	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const orderColumns = `id, order_number, customer_id, vendor_id, transaction_id, total_amount,
	paid_amount, status, remarks, delivery_id, ready_time, order_date, created_at, updated_at`

// orderRepository implements the OrderRepository interface using PostgreSQL.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *orderRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreateOrder inserts a new order within the provided transaction.
func (r *orderRepository) CreateOrder(ctx context.Context, tx pgx.Tx, o *model.Order) error {
	query := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := tx.Exec(ctx, query, o.ID, o.OrderNumber, o.CustomerID, o.VendorID, o.TransactionID,
		o.TotalAmount, o.PaidAmount, o.Status, o.Remarks, o.DeliveryID, o.ReadyTime, o.OrderDate,
		o.CreatedAt, o.UpdatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("order_id", o.ID.String()).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.logger.Debug().
		Str("order_id", o.ID.String()).
		Str("order_number", o.OrderNumber).
		Msg("order created successfully")

	return nil
}

// CreateOrderItems inserts the order's lines within the provided transaction.
func (r *orderRepository) CreateOrderItems(ctx context.Context, tx pgx.Tx, orderID uuid.UUID, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO order_items (order_id, food_id, name, price, unit)
		VALUES ($1, $2, $3, $4, $5)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, orderID, item.FoodID, item.Name, item.Price, item.Unit)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := 0; i < len(items); i++ {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("order_id", orderID.String()).
				Str("food_id", items[i].FoodID.String()).
				Msg("failed to create order item")
			return fmt.Errorf("failed to create order item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("order items created successfully")

	return nil
}

// ClearCart empties the customer's cart within the provided transaction.
func (r *orderRepository) ClearCart(ctx context.Context, tx pgx.Tx, customerID uuid.UUID) error {
	if err := clearCart(ctx, tx, customerID); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to clear cart")
		return err
	}
	return nil
}

// ConfirmTransaction marks an open transaction as confirmed for the order.
func (r *orderRepository) ConfirmTransaction(ctx context.Context, tx pgx.Tx, txnID, vendorID, orderID uuid.UUID) error {
	query := `
		UPDATE transactions
		SET vendor_id = $2, order_id = $3, status = $4, updated_at = NOW()
		WHERE id = $1 AND status = $5
	`

	tag, err := tx.Exec(ctx, query, txnID, vendorID, orderID, model.TransactionConfirmed, model.TransactionOpen)
	if err != nil {
		r.logger.Error().Err(err).Str("transaction_id", txnID.String()).Msg("failed to confirm transaction")
		return fmt.Errorf("failed to confirm transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrInvalidTransaction
	}
	return nil
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.VendorID, &o.TransactionID,
		&o.TotalAmount, &o.PaidAmount, &o.Status, &o.Remarks, &o.DeliveryID, &o.ReadyTime,
		&o.OrderDate, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetByID retrieves an order by its ID along with its items.
func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("order_id", id.String()).Msg("order not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	orders := []model.Order{*order}
	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return &orders[0], nil
}

// ListByCustomer returns the customer's orders, newest first.
func (r *orderRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE customer_id = $1 ORDER BY order_date DESC`
	return r.list(ctx, query, customerID)
}

// ListByVendor returns the orders placed with the vendor, newest first.
func (r *orderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE vendor_id = $1 ORDER BY order_date DESC`
	return r.list(ctx, query, vendorID)
}

func (r *orderRepository) list(ctx context.Context, query string, arg any) ([]model.Order, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := []model.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}
	rows.Close()

	if err := r.attachItems(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// attachItems loads the items of every order in one query.
func (r *orderRepository) attachItems(ctx context.Context, orders []model.Order) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
		index[o.ID] = i
		orders[i].Items = []model.OrderItem{}
	}

	query := `
		SELECT oi.order_id, oi.food_id, oi.name, oi.price, oi.unit,
			f.id, f.vendor_id, f.name, f.description, f.category, f.food_type, f.ready_time,
			f.price, f.rating, f.images, f.created_at
		FROM order_items oi
		JOIN foods f ON f.id = oi.food_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.name
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query order items")
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			orderID uuid.UUID
			item    model.OrderItem
			f       model.Food
		)
		err := rows.Scan(&orderID, &item.FoodID, &item.Name, &item.Price, &item.Unit,
			&f.ID, &f.VendorID, &f.Name, &f.Description, &f.Category, &f.FoodType, &f.ReadyTime,
			&f.Price, &f.Rating, &f.Images, &f.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order item row")
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		item.Food = &f
		i := index[orderID]
		orders[i].Items = append(orders[i].Items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order item rows")
		return fmt.Errorf("error iterating order items: %w", err)
	}
	return nil
}

// UpdateStatus records a vendor's decision on the order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus, remarks string, readyTime int) error {
	query := `
		UPDATE orders
		SET status = $2, remarks = $3, ready_time = $4, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id, status, remarks, readyTime)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to update order status")
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}

// SetDelivery assigns a delivery user to the order.
func (r *orderRepository) SetDelivery(ctx context.Context, orderID, deliveryID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE orders SET delivery_id = $2, updated_at = NOW() WHERE id = $1`,
		orderID, deliveryID)
	if err != nil {
		r.logger.Error().Err(err).Str("order_id", orderID.String()).Msg("failed to assign delivery")
		return fmt.Errorf("failed to assign delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOrderNotFound
	}
	return nil
}
