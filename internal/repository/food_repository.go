package repository

import (
	"context"
	"fmt"

	"food-order/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const foodColumns = `id, vendor_id, name, description, category, food_type, ready_time, price, rating, images, created_at`

// foodRepository implements the FoodRepository interface using PostgreSQL.
type foodRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewFoodRepository creates a new PostgreSQL-backed food repository.
func NewFoodRepository(pool *pgxpool.Pool, logger zerolog.Logger) FoodRepository {
	return &foodRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "food").Logger(),
	}
}

func scanFood(row rowScanner) (model.Food, error) {
	var f model.Food
	err := row.Scan(&f.ID, &f.VendorID, &f.Name, &f.Description, &f.Category, &f.FoodType,
		&f.ReadyTime, &f.Price, &f.Rating, &f.Images, &f.CreatedAt)
	return f, err
}

// Create inserts a new food.
func (r *foodRepository) Create(ctx context.Context, f *model.Food) error {
	query := `
		INSERT INTO foods (` + foodColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query, f.ID, f.VendorID, f.Name, f.Description, f.Category,
		f.FoodType, f.ReadyTime, f.Price, f.Rating, nonNil(f.Images), f.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("vendor_id", f.VendorID.String()).Msg("failed to create food")
		return fmt.Errorf("failed to create food: %w", err)
	}

	r.logger.Debug().Str("food_id", f.ID.String()).Msg("food created")
	return nil
}

// GetByIDs retrieves the foods with the given IDs. Missing IDs are skipped.
func (r *foodRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Food, error) {
	if len(ids) == 0 {
		return []model.Food{}, nil
	}
	query := `SELECT ` + foodColumns + ` FROM foods WHERE id = ANY($1) ORDER BY name`
	return r.list(ctx, query, ids)
}

// ListByVendor returns a vendor's menu.
func (r *foodRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Food, error) {
	query := `SELECT ` + foodColumns + ` FROM foods WHERE vendor_id = $1 ORDER BY created_at`
	return r.list(ctx, query, vendorID)
}

// ListByVendors returns the menus of several vendors at once.
func (r *foodRepository) ListByVendors(ctx context.Context, vendorIDs []uuid.UUID) ([]model.Food, error) {
	if len(vendorIDs) == 0 {
		return []model.Food{}, nil
	}
	query := `SELECT ` + foodColumns + ` FROM foods WHERE vendor_id = ANY($1) ORDER BY created_at`
	return r.list(ctx, query, vendorIDs)
}

func (r *foodRepository) list(ctx context.Context, query string, args ...any) ([]model.Food, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query foods")
		return nil, fmt.Errorf("failed to query foods: %w", err)
	}
	defer rows.Close()

	foods := []model.Food{}
	for rows.Next() {
		f, err := scanFood(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan food row")
			return nil, fmt.Errorf("failed to scan food: %w", err)
		}
		foods = append(foods, f)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating food rows")
		return nil, fmt.Errorf("error iterating foods: %w", err)
	}

	return foods, nil
}
