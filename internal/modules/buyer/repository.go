package buyer

import "context"

// Repository defines the interface for buyer account storage.
type Repository interface {
	Create(ctx context.Context, b *Buyer) error
	GetByID(ctx context.Context, id string) (*Buyer, error)
	GetByEmail(ctx context.Context, email string) (*Buyer, error)
	Update(ctx context.Context, b *Buyer) error
	Delete(ctx context.Context, id string) error
}
