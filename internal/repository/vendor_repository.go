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

const vendorColumns = `id, name, owner_name, food_types, pincode, address, phone, email,
	password_hash, service_available, cover_images, rating, lat, lng, created_at, updated_at`

// vendorRepository implements the VendorRepository interface using PostgreSQL.
type vendorRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewVendorRepository creates a new PostgreSQL-backed vendor repository.
func NewVendorRepository(pool *pgxpool.Pool, logger zerolog.Logger) VendorRepository {
	return &vendorRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "vendor").Logger(),
	}
}

func scanVendor(row rowScanner) (*model.Vendor, error) {
	var v model.Vendor
	err := row.Scan(
		&v.ID, &v.Name, &v.OwnerName, &v.FoodTypes, &v.Pincode, &v.Address, &v.Phone, &v.Email,
		&v.PasswordHash, &v.ServiceAvailable, &v.CoverImages, &v.Rating, &v.Lat, &v.Lng,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create inserts a new vendor.
func (r *vendorRepository) Create(ctx context.Context, v *model.Vendor) error {
	query := `
		INSERT INTO vendors (` + vendorColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.pool.Exec(ctx, query,
		v.ID, v.Name, v.OwnerName, nonNil(v.FoodTypes), v.Pincode, v.Address, v.Phone, v.Email,
		v.PasswordHash, v.ServiceAvailable, nonNil(v.CoverImages), v.Rating, v.Lat, v.Lng,
		v.CreatedAt, v.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrVendorExists
		}
		r.logger.Error().Err(err).Str("vendor_id", v.ID.String()).Msg("failed to create vendor")
		return fmt.Errorf("failed to create vendor: %w", err)
	}

	r.logger.Debug().Str("vendor_id", v.ID.String()).Msg("vendor created")
	return nil
}

// GetByID retrieves a vendor by its ID.
func (r *vendorRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	return r.getOne(ctx, "id", id)
}

// GetByEmail retrieves a vendor by login email.
func (r *vendorRepository) GetByEmail(ctx context.Context, email string) (*model.Vendor, error) {
	return r.getOne(ctx, "email", email)
}

func (r *vendorRepository) getOne(ctx context.Context, column string, value any) (*model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE ` + column + ` = $1`

	v, err := scanVendor(r.pool.QueryRow(ctx, query, value))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Interface(column, value).Msg("vendor not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Interface(column, value).Msg("failed to query vendor")
		return nil, fmt.Errorf("failed to query vendor: %w", err)
	}
	return v, nil
}

// List returns every vendor, newest first.
func (r *vendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY created_at DESC`
	return r.list(ctx, query)
}

// ListAvailableByPincode returns vendors with service turned on in the pincode.
func (r *vendorRepository) ListAvailableByPincode(ctx context.Context, pincode string) ([]model.Vendor, error) {
	query := `
		SELECT ` + vendorColumns + `
		FROM vendors
		WHERE pincode = $1 AND service_available = TRUE
		ORDER BY rating DESC, name
	`
	return r.list(ctx, query, pincode)
}

func (r *vendorRepository) list(ctx context.Context, query string, args ...any) ([]model.Vendor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query vendors")
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	vendors := []model.Vendor{}
	for rows.Next() {
		v, err := scanVendor(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan vendor row")
			return nil, fmt.Errorf("failed to scan vendor: %w", err)
		}
		vendors = append(vendors, *v)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating vendor rows")
		return nil, fmt.Errorf("error iterating vendors: %w", err)
	}

	return vendors, nil
}

// Update writes back the vendor's mutable fields.
func (r *vendorRepository) Update(ctx context.Context, v *model.Vendor) error {
	query := `
		UPDATE vendors
		SET name = $2, address = $3, phone = $4, food_types = $5, service_available = $6,
			cover_images = $7, lat = $8, lng = $9, updated_at = $10
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		v.ID, v.Name, v.Address, v.Phone, nonNil(v.FoodTypes), v.ServiceAvailable,
		nonNil(v.CoverImages), v.Lat, v.Lng, v.UpdatedAt,
	)
	if err != nil {
		r.logger.Error().Err(err).Str("vendor_id", v.ID.String()).Msg("failed to update vendor")
		return fmt.Errorf("failed to update vendor: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrVendorNotFound
	}
	return nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
