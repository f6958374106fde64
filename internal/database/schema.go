package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the full DDL of the marketplace. Every statement is idempotent.
const Schema = `
	CREATE TABLE IF NOT EXISTS vendors (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		owner_name TEXT NOT NULL DEFAULT '',
		food_types TEXT[] NOT NULL DEFAULT '{}',
		pincode TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		service_available BOOLEAN NOT NULL DEFAULT FALSE,
		cover_images TEXT[] NOT NULL DEFAULT '{}',
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_vendors_pincode ON vendors(pincode, service_available);

	CREATE TABLE IF NOT EXISTS foods (
		id UUID PRIMARY KEY,
		vendor_id UUID NOT NULL REFERENCES vendors(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL DEFAULT '',
		food_type TEXT NOT NULL DEFAULT '',
		ready_time INTEGER NOT NULL DEFAULT 0,
		price DOUBLE PRECISION NOT NULL CHECK (price >= 0),
		rating DOUBLE PRECISION NOT NULL DEFAULT 0,
		images TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_foods_vendor_id ON foods(vendor_id);

	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		otp INTEGER NOT NULL DEFAULT 0,
		otp_expiry TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		customer_id UUID NOT NULL REFERENCES customers(id) ON DELETE CASCADE,
		food_id UUID NOT NULL REFERENCES foods(id) ON DELETE CASCADE,
		unit INTEGER NOT NULL CHECK (unit > 0),
		added_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (customer_id, food_id)
	);

	CREATE TABLE IF NOT EXISTS delivery_users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		phone TEXT NOT NULL,
		first_name TEXT NOT NULL DEFAULT '',
		last_name TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		pincode TEXT NOT NULL DEFAULT '',
		verified BOOLEAN NOT NULL DEFAULT FALSE,
		is_available BOOLEAN NOT NULL DEFAULT FALSE,
		lat DOUBLE PRECISION NOT NULL DEFAULT 0,
		lng DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_delivery_users_pincode ON delivery_users(pincode);

	CREATE TABLE IF NOT EXISTS offers (
		id UUID PRIMARY KEY,
		offer_type TEXT NOT NULL,
		vendor_ids UUID[] NOT NULL DEFAULT '{}',
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		min_value DOUBLE PRECISION NOT NULL DEFAULT 0,
		offer_amount DOUBLE PRECISION NOT NULL,
		start_validity TIMESTAMPTZ,
		end_validity TIMESTAMPTZ,
		promo_code TEXT NOT NULL,
		promo_type TEXT NOT NULL,
		banks TEXT[] NOT NULL DEFAULT '{}',
		bins BIGINT[] NOT NULL DEFAULT '{}',
		pincode TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_offers_promo_code ON offers(promo_code);
	CREATE INDEX IF NOT EXISTS idx_offers_pincode ON offers(pincode);

	CREATE TABLE IF NOT EXISTS transactions (
		id UUID PRIMARY KEY,
		customer_id UUID NOT NULL REFERENCES customers(id),
		vendor_id UUID,
		order_id UUID,
		order_value DOUBLE PRECISION NOT NULL,
		offer_used UUID,
		status TEXT NOT NULL,
		payment_mode TEXT NOT NULL,
		payment_response TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		order_number TEXT NOT NULL UNIQUE,
		customer_id UUID NOT NULL REFERENCES customers(id),
		vendor_id UUID NOT NULL REFERENCES vendors(id),
		transaction_id UUID REFERENCES transactions(id),
		total_amount DOUBLE PRECISION NOT NULL,
		paid_amount DOUBLE PRECISION NOT NULL,
		status TEXT NOT NULL,
		remarks TEXT NOT NULL DEFAULT '',
		delivery_id UUID REFERENCES delivery_users(id),
		ready_time INTEGER NOT NULL DEFAULT 0,
		order_date TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_orders_customer_id ON orders(customer_id);
	CREATE INDEX IF NOT EXISTS idx_orders_vendor_id ON orders(vendor_id);

	CREATE TABLE IF NOT EXISTS order_items (
		order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		food_id UUID NOT NULL REFERENCES foods(id),
		name TEXT NOT NULL,
		price DOUBLE PRECISION NOT NULL,
		unit INTEGER NOT NULL CHECK (unit > 0),
		PRIMARY KEY (order_id, food_id)
	);
`

// Migrate applies Schema on the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		logger.Error().Err(err).Msg("failed to apply database schema")
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info().Msg("database schema applied")
	return nil
}
