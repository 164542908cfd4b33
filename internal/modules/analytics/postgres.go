package analytics

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL analytics repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) ProductTotals(ctx context.Context, sellerID uuid.UUID) (int, int, error) {
	var count, stock int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(stock_quantity), 0)
		FROM products WHERE seller_id=$1`, sellerID).Scan(&count, &stock)
	return count, stock, err
}

func (r *postgresRepo) CertifiedCount(ctx context.Context, sellerID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM products WHERE seller_id=$1 AND certified`, sellerID).Scan(&count)
	return count, err
}

func (r *postgresRepo) SumRevenue(ctx context.Context, sellerID uuid.UUID) (float64, error) {
	var revenue float64
	err := r.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(oi.quantity * oi.unit_price), 0)
		FROM products p
		JOIN order_items oi ON oi.product_id = p.id
		WHERE p.seller_id=$1`, sellerID).Scan(&revenue)
	return revenue, err
}
