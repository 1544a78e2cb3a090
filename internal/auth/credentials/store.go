package credentials

import (
	"context"
	"database/sql"

	"github.com/MroGG1/rpl-backend/internal/db"
)

// Store looks up admin credentials. Username matching is case-sensitive;
// uniqueness is enforced by the schema, not here.
type Store interface {
	FindByUsername(ctx context.Context, username string) (*Admin, error)
}

// PostgresStore is the canonical store, reading the seeded admins table.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindByUsername returns (nil, nil) when no row matches, so callers can
// collapse "no such user" and "wrong password" into one error.
func (s *PostgresStore) FindByUsername(
	ctx context.Context,
	username string,
) (*Admin, error) {

	var a Admin

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash
		FROM admins
		WHERE username = $1
	`, username).Scan(&a.ID, &a.Username, &a.PasswordHash)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// EnsureSeed inserts the admin row when the username is absent. It never
// touches an existing row: rotating the seed password does not rotate a
// live credential.
func (s *PostgresStore) EnsureSeed(
	ctx context.Context,
	username string,
	password string,
) error {

	existing, err := s.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := HashPassword(password)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO admins (username, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (username) DO NOTHING
	`, username, hash)

	return err
}
