package seller

import "context"

// Repository defines the interface for seller account storage.
type Repository interface {
	Create(ctx context.Context, s *Seller) error
	GetByID(ctx context.Context, id string) (*Seller, error)
	GetByEmail(ctx context.Context, email string) (*Seller, error)
	Update(ctx context.Context, s *Seller) error
	Delete(ctx context.Context, id string) error
}
