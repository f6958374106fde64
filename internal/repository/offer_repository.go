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

const offerColumns = `id, offer_type, vendor_ids, title, description, min_value, offer_amount,
	start_validity, end_validity, promo_code, promo_type, banks, bins, pincode, is_active,
	created_at, updated_at`

// offerRepository implements the OfferRepository interface using PostgreSQL.
type offerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOfferRepository creates a new PostgreSQL-backed offer repository.
func NewOfferRepository(pool *pgxpool.Pool, logger zerolog.Logger) OfferRepository {
	return &offerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "offer").Logger(),
	}
}

func scanOffer(row rowScanner) (*model.Offer, error) {
	var o model.Offer
	err := row.Scan(&o.ID, &o.OfferType, &o.Vendors, &o.Title, &o.Description, &o.MinValue,
		&o.OfferAmount, &o.StartValidity, &o.EndValidity, &o.PromoCode, &o.PromoType, &o.Banks,
		&o.Bins, &o.Pincode, &o.IsActive, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *offerRepository) Create(ctx context.Context, o *model.Offer) error {
	query := `
		INSERT INTO offers (` + offerColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
	`

	_, err := r.pool.Exec(ctx, query, o.ID, o.OfferType, nonNil(o.Vendors), o.Title, o.Description,
		o.MinValue, o.OfferAmount, o.StartValidity, o.EndValidity, o.PromoCode, o.PromoType,
		nonNil(o.Banks), nonNil(o.Bins), o.Pincode, o.IsActive, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("promo_code", o.PromoCode).Msg("failed to create offer")
		return fmt.Errorf("failed to create offer: %w", err)
	}

	r.logger.Debug().Str("offer_id", o.ID.String()).Msg("offer created")
	return nil
}

// Update rewrites every editable field. The vendor list is left untouched.
func (r *offerRepository) Update(ctx context.Context, o *model.Offer) error {
	query := `
		UPDATE offers
		SET offer_type = $2, title = $3, description = $4, min_value = $5, offer_amount = $6,
			start_validity = $7, end_validity = $8, promo_code = $9, promo_type = $10,
			banks = $11, bins = $12, pincode = $13, is_active = $14, updated_at = $15
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, o.ID, o.OfferType, o.Title, o.Description, o.MinValue,
		o.OfferAmount, o.StartValidity, o.EndValidity, o.PromoCode, o.PromoType, nonNil(o.Banks),
		nonNil(o.Bins), o.Pincode, o.IsActive, o.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("offer_id", o.ID.String()).Msg("failed to update offer")
		return fmt.Errorf("failed to update offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrOfferNotFound
	}
	return nil
}

func (r *offerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Offer, error) {
	return r.getOne(ctx, `SELECT `+offerColumns+` FROM offers WHERE id = $1`, id)
}

// GetByPromoCode returns the offer with the code, preferring an active one
// whose validity window contains the current time. Among equals the most
// recently created wins.
func (r *offerRepository) GetByPromoCode(ctx context.Context, code string) (*model.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE promo_code = $1
		ORDER BY
			is_active DESC,
			((start_validity IS NULL OR start_validity <= NOW())
				AND (end_validity IS NULL OR end_validity >= NOW())) DESC,
			created_at DESC
		LIMIT 1
	`
	return r.getOne(ctx, query, code)
}

func (r *offerRepository) getOne(ctx context.Context, query string, arg any) (*model.Offer, error) {
	o, err := scanOffer(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query offer")
		return nil, fmt.Errorf("failed to query offer: %w", err)
	}
	return o, nil
}

func (r *offerRepository) ListForVendor(ctx context.Context, vendorID uuid.UUID) ([]model.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE $1 = ANY(vendor_ids) OR offer_type = $2
		ORDER BY created_at
	`
	return r.list(ctx, query, vendorID, model.OfferTypeGeneric)
}

func (r *offerRepository) ListActiveByPincode(ctx context.Context, pincode string) ([]model.Offer, error) {
	query := `
		SELECT ` + offerColumns + `
		FROM offers
		WHERE pincode = $1 AND is_active = TRUE
		ORDER BY offer_amount DESC
	`
	return r.list(ctx, query, pincode)
}

func (r *offerRepository) list(ctx context.Context, query string, args ...any) ([]model.Offer, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query offers")
		return nil, fmt.Errorf("failed to query offers: %w", err)
	}
	defer rows.Close()

	offers := []model.Offer{}
	for rows.Next() {
		o, err := scanOffer(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan offer row")
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offers = append(offers, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating offers: %w", err)
	}
	return offers, nil
}
