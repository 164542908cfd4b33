package order

import "context"

// Repository defines the interface for order data storage.
type Repository interface {
	// CreateOrder persists the order, its items, and the stock
	// decrements atomically.
	CreateOrder(ctx context.Context, o *Order) error
	GetOrderByID(ctx context.Context, id string) (*Order, error)
	ListOrdersByBuyer(ctx context.Context, buyerID string) ([]*Order, error)
	UpdateStatus(ctx context.Context, id string, status OrderStatus) error

	// GetProductPrice returns the current price and stock of a catalog
	// product.
	GetProductPrice(ctx context.Context, productID string) (price float64, stock int, err error)
}
