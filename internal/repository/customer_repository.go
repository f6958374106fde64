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

const customerColumns = `id, email, password_hash, phone, first_name, last_name, address,
	verified, otp, otp_expiry, lat, lng, created_at, updated_at`

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
		INSERT INTO customers (` + customerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query, c.ID, c.Email, c.PasswordHash, c.Phone, c.FirstName,
		c.LastName, c.Address, c.Verified, c.OTP, c.OTPExpiry, c.Lat, c.Lng, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrCustomerExists
		}
		r.logger.Error().Err(err).Str("customer_id", c.ID.String()).Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().Str("customer_id", c.ID.String()).Msg("customer created")
	return nil
}

// GetByID retrieves a customer by ID.
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	return r.getOne(ctx, "id", id)
}

// GetByEmail retrieves a customer by login email.
func (r *customerRepository) GetByEmail(ctx context.Context, email string) (*model.Customer, error) {
	return r.getOne(ctx, "email", email)
}

func (r *customerRepository) getOne(ctx context.Context, column string, value any) (*model.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE ` + column + ` = $1`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, value).Scan(&c.ID, &c.Email, &c.PasswordHash, &c.Phone,
		&c.FirstName, &c.LastName, &c.Address, &c.Verified, &c.OTP, &c.OTPExpiry, &c.Lat, &c.Lng,
		&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Interface(column, value).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Interface(column, value).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}
	return &c, nil
}

// Update writes back profile, verification and OTP fields.
func (r *customerRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $2, last_name = $3, address = $4, verified = $5, otp = $6,
			otp_expiry = $7, lat = $8, lng = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, c.ID, c.FirstName, c.LastName, c.Address, c.Verified,
		c.OTP, c.OTPExpiry, c.Lat, c.Lng, c.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", c.ID.String()).Msg("failed to update customer")
		return fmt.Errorf("failed to update customer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCustomerNotFound
	}
	return nil
}

// GetCart returns the customer's cart lines with their foods.
func (r *customerRepository) GetCart(ctx context.Context, customerID uuid.UUID) ([]model.CartItem, error) {
	query := `
		SELECT f.id, f.vendor_id, f.name, f.description, f.category, f.food_type, f.ready_time,
			f.price, f.rating, f.images, f.created_at, c.unit
		FROM cart_items c
		JOIN foods f ON f.id = c.food_id
		WHERE c.customer_id = $1
		ORDER BY c.added_at
	`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var item model.CartItem
		f := &item.Food
		err := rows.Scan(&f.ID, &f.VendorID, &f.Name, &f.Description, &f.Category, &f.FoodType,
			&f.ReadyTime, &f.Price, &f.Rating, &f.Images, &f.CreatedAt, &item.Unit)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan cart row")
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating cart rows")
		return nil, fmt.Errorf("error iterating cart: %w", err)
	}

	return items, nil
}

// SetCartItem upserts the line, or deletes it when unit is not positive.
func (r *customerRepository) SetCartItem(ctx context.Context, customerID, foodID uuid.UUID, unit int) error {
	var err error
	if unit <= 0 {
		_, err = r.pool.Exec(ctx, `DELETE FROM cart_items WHERE customer_id = $1 AND food_id = $2`, customerID, foodID)
	} else {
		_, err = r.pool.Exec(ctx, `
			INSERT INTO cart_items (customer_id, food_id, unit)
			VALUES ($1, $2, $3)
			ON CONFLICT (customer_id, food_id) DO UPDATE SET unit = EXCLUDED.unit
		`, customerID, foodID, unit)
	}
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("customer_id", customerID.String()).
			Str("food_id", foodID.String()).
			Int("unit", unit).
			Msg("failed to update cart")
		return fmt.Errorf("failed to update cart: %w", err)
	}
	return nil
}

// ClearCart removes every line of the customer's cart.
func (r *customerRepository) ClearCart(ctx context.Context, customerID uuid.UUID) error {
	if err := clearCart(ctx, r.pool, customerID); err != nil {
		r.logger.Error().Err(err).Str("customer_id", customerID.String()).Msg("failed to clear cart")
		return err
	}
	return nil
}

func clearCart(ctx context.Context, q querier, customerID uuid.UUID) error {
	if _, err := q.Exec(ctx, `DELETE FROM cart_items WHERE customer_id = $1`, customerID); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}
