package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MroGG1/rpl-backend/internal/db"
)

// PostgresStore is the canonical product store, sharing the pool with the
// credential store.
type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, price, COALESCE(description, ''), COALESCE(image, ''), active
		FROM products
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		var p Product
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Price,
			&p.Description,
			&p.ImageRef,
			&p.Active,
		); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return products, nil
}

func (s *PostgresStore) Create(ctx context.Context, p Product) (*Product, error) {
	var image any
	if p.ImageRef != "" {
		image = p.ImageRef
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO products (name, price, description, image, active)
		VALUES ($1, $2, $3, $4, true)
		RETURNING id, active
	`, p.Name, p.Price, p.Description, image).Scan(&p.ID, &p.Active)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &p, nil
}

func (s *PostgresStore) Update(ctx context.Context, p Product) (*Product, error) {
	err := s.db.QueryRowContext(ctx, `
		UPDATE products
		SET name = $2, price = $3, description = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, price, COALESCE(description, ''), COALESCE(image, ''), active
	`, p.ID, p.Name, p.Price, p.Description).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.ImageRef,
		&p.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &p, nil
}

func (s *PostgresStore) UpdatePrice(ctx context.Context, id int64, price float64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET price = $2, updated_at = NOW()
		WHERE id = $1
	`, id, price)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return checkAffected(res)
}

func (s *PostgresStore) SetActive(ctx context.Context, id int64, active bool) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE products
		SET active = $2, updated_at = NOW()
		WHERE id = $1
	`, id, active)

	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return checkAffected(res)
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) (*Product, error) {
	var p Product

	err := s.db.QueryRowContext(ctx, `
		DELETE FROM products
		WHERE id = $1
		RETURNING id, name, price, COALESCE(description, ''), COALESCE(image, ''), active
	`, id).Scan(
		&p.ID,
		&p.Name,
		&p.Price,
		&p.Description,
		&p.ImageRef,
		&p.Active,
	)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	return &p, nil
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
