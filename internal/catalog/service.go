package catalog

import "context"

// CreateInput carries the caller-supplied fields for a new listing.
// Price is a pointer so "missing" and "zero" stay distinguishable.
type CreateInput struct {
	Name        string
	Price       *float64
	Description string
	ImageRef    string
}

// UpdateInput is a full replace of the three mutable fields.
type UpdateInput struct {
	Name        string
	Price       *float64
	Description string
}

// Service validates inputs before any store call and applies the
// image-requirement policy resolved once at startup.
type Service struct {
	store        Store
	requireImage bool
}

func NewService(store Store, requireImage bool) *Service {
	return &Service{
		store:        store,
		requireImage: requireImage,
	}
}

func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.store.List(ctx)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*Product, error) {
	if err := validateNamePrice(in.Name, in.Price); err != nil {
		return nil, err
	}

	if s.requireImage && in.ImageRef == "" {
		return nil, validationErr("image", "is required")
	}

	return s.store.Create(ctx, Product{
		Name:        in.Name,
		Price:       *in.Price,
		Description: in.Description,
		ImageRef:    in.ImageRef,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*Product, error) {
	if err := validateNamePrice(in.Name, in.Price); err != nil {
		return nil, err
	}

	return s.store.Update(ctx, Product{
		ID:          id,
		Name:        in.Name,
		Price:       *in.Price,
		Description: in.Description,
	})
}

func (s *Service) UpdatePrice(ctx context.Context, id int64, price *float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}

	return s.store.UpdatePrice(ctx, id, *price)
}

func (s *Service) SetActive(ctx context.Context, id int64, active bool) error {
	return s.store.SetActive(ctx, id, active)
}

func (s *Service) Delete(ctx context.Context, id int64) (*Product, error) {
	return s.store.Delete(ctx, id)
}

func validateNamePrice(name string, price *float64) error {
	if name == "" {
		return validationErr("name", "must not be empty")
	}
	return validatePrice(price)
}

func validatePrice(price *float64) error {
	if price == nil {
		return validationErr("price", "is required")
	}
	if *price <= 0 {
		return validationErr("price", "must be greater than zero")
	}
	return nil
}
