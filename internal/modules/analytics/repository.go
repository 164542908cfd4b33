package analytics

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the aggregate queries behind the seller dashboard.
type Repository interface {
	// ProductTotals returns the seller's product count and summed stock.
	ProductTotals(ctx context.Context, sellerID uuid.UUID) (count, stock int, err error)

	// CertifiedCount returns how many of the seller's products are
	// certified.
	CertifiedCount(ctx context.Context, sellerID uuid.UUID) (int, error)

	// SumRevenue sums quantity x unit price over order items joined to
	// the seller's products. Zero when no orders exist.
	SumRevenue(ctx context.Context, sellerID uuid.UUID) (float64, error)
}
