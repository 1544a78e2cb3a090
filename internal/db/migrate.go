package db

import (
	"context"
	"database/sql"
)

const schemaMigration = `
CREATE TABLE IF NOT EXISTS admins (
    id serial PRIMARY KEY,
    username text NOT NULL UNIQUE,
    password_hash text NOT NULL,
    created_at timestamptz NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS products (
    id bigserial PRIMARY KEY,
    name text NOT NULL,
    price numeric(12,2) NOT NULL CHECK (price > 0),
    description text NOT NULL DEFAULT '',
    image text,
    active boolean NOT NULL DEFAULT true,
    created_at timestamptz NOT NULL DEFAULT NOW(),
    updated_at timestamptz NOT NULL DEFAULT NOW()
);
`

// RunMigration creates the schema if it does not exist yet. Product ids
// come from a bigserial sequence, so an id is never handed out twice even
// after the row is deleted.
func RunMigration(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schemaMigration)
	return err
}
