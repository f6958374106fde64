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

const deliveryColumns = `id, email, password_hash, phone, first_name, last_name, address, pincode,
	verified, is_available, lat, lng, created_at, updated_at`

// deliveryUserRepository implements DeliveryUserRepository using PostgreSQL.
type deliveryUserRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewDeliveryUserRepository creates a new PostgreSQL-backed delivery user repository.
func NewDeliveryUserRepository(pool *pgxpool.Pool, logger zerolog.Logger) DeliveryUserRepository {
	return &deliveryUserRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "delivery").Logger(),
	}
}

func scanDeliveryUser(row rowScanner) (*model.DeliveryUser, error) {
	var d model.DeliveryUser
	err := row.Scan(&d.ID, &d.Email, &d.PasswordHash, &d.Phone, &d.FirstName, &d.LastName,
		&d.Address, &d.Pincode, &d.Verified, &d.IsAvailable, &d.Lat, &d.Lng, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *deliveryUserRepository) Create(ctx context.Context, d *model.DeliveryUser) error {
	query := `
		INSERT INTO delivery_users (` + deliveryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.pool.Exec(ctx, query, d.ID, d.Email, d.PasswordHash, d.Phone, d.FirstName,
		d.LastName, d.Address, d.Pincode, d.Verified, d.IsAvailable, d.Lat, d.Lng, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDeliveryUserExists
		}
		r.logger.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("failed to create delivery user")
		return fmt.Errorf("failed to create delivery user: %w", err)
	}
	return nil
}

func (r *deliveryUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.DeliveryUser, error) {
	return r.getOne(ctx, `SELECT `+deliveryColumns+` FROM delivery_users WHERE id = $1`, id)
}

func (r *deliveryUserRepository) GetByEmail(ctx context.Context, email string) (*model.DeliveryUser, error) {
	return r.getOne(ctx, `SELECT `+deliveryColumns+` FROM delivery_users WHERE email = $1`, email)
}

func (r *deliveryUserRepository) FindAvailable(ctx context.Context, pincode string) (*model.DeliveryUser, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM delivery_users
		WHERE pincode = $1 AND verified = TRUE AND is_available = TRUE
		ORDER BY created_at
		LIMIT 1
	`
	return r.getOne(ctx, query, pincode)
}

func (r *deliveryUserRepository) getOne(ctx context.Context, query string, arg any) (*model.DeliveryUser, error) {
	d, err := scanDeliveryUser(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query delivery user")
		return nil, fmt.Errorf("failed to query delivery user: %w", err)
	}
	return d, nil
}

func (r *deliveryUserRepository) List(ctx context.Context) ([]model.DeliveryUser, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+deliveryColumns+` FROM delivery_users ORDER BY created_at`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query delivery users")
		return nil, fmt.Errorf("failed to query delivery users: %w", err)
	}
	defer rows.Close()

	users := []model.DeliveryUser{}
	for rows.Next() {
		d, err := scanDeliveryUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery user: %w", err)
		}
		users = append(users, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating delivery users: %w", err)
	}
	return users, nil
}

func (r *deliveryUserRepository) Update(ctx context.Context, d *model.DeliveryUser) error {
	query := `
		UPDATE delivery_users
		SET first_name = $2, last_name = $3, address = $4, verified = $5, is_available = $6,
			lat = $7, lng = $8, updated_at = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, d.ID, d.FirstName, d.LastName, d.Address, d.Verified,
		d.IsAvailable, d.Lat, d.Lng, d.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("delivery_id", d.ID.String()).Msg("failed to update delivery user")
		return fmt.Errorf("failed to update delivery user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrDeliveryUserNotFound
	}
	return nil
}
