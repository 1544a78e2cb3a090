package catalog

import "context"

// Store owns product persistence. Every call is a single statement; no
// transaction spans a request, so concurrent mutations to the same row
// race under last-writer-wins.
//
// List returns the full catalog ascending by id. Mutations on a missing
// id return ErrNotFound. Delete returns the removed snapshot.
type Store interface {
	List(ctx context.Context) ([]Product, error)
	Create(ctx context.Context, p Product) (*Product, error)
	Update(ctx context.Context, p Product) (*Product, error)
	UpdatePrice(ctx context.Context, id int64, price float64) error
	SetActive(ctx context.Context, id int64, active bool) error
	Delete(ctx context.Context, id int64) (*Product, error)
}
