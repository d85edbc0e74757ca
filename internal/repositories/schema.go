package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

const defaultBootstrapTimeout = 15 * time.Second

const schema = `
	CREATE EXTENSION IF NOT EXISTS pgcrypto;

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		session_id VARCHAR(255) UNIQUE NOT NULL,
		name VARCHAR(100),
		email VARCHAR(100),
		phone VARCHAR(20),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS products (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		description TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		category VARCHAR(50) NOT NULL,
		image_url VARCHAR(255),
		is_available BOOLEAN NOT NULL DEFAULT TRUE,
		stock INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS cart_items (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		product_id UUID NOT NULL REFERENCES products(id),
		quantity INTEGER NOT NULL DEFAULT 1 CHECK (quantity >= 1),
		unit_price DECIMAL(10,2) NOT NULL CHECK (unit_price >= 0),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, product_id)
	);

	CREATE TABLE IF NOT EXISTS auth_users (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		username VARCHAR(100) UNIQUE NOT NULL,
		email VARCHAR(255) UNIQUE NOT NULL,
		password_hash VARCHAR(255) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		phone VARCHAR(50),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(100) NOT NULL,
		email VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		phone VARCHAR(20),
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS custom_salads (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name VARCHAR(100) NOT NULL,
		ingredients JSONB NOT NULL DEFAULT '[]'::jsonb,
		total_price DECIMAL(10,2) NOT NULL,
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_cart_items_user_id ON cart_items(user_id);
	CREATE INDEX IF NOT EXISTS idx_custom_salads_user_id ON custom_salads(user_id);
	CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`

// InitSchema creates every table the service needs. It is idempotent and runs
// on each start.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to execute schema creation: %w", err)
	}

	return nil
}
