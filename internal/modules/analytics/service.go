package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ecocart/ecocart-backend/internal/modules/catalog"
)

// Service defines the seller dashboard business logic.
type Service interface {
	// SellerStats gathers the dashboard aggregates for a seller. The
	// independent queries run concurrently and are joined before
	// responding; any single failure fails the call.
	SellerStats(ctx context.Context, sellerID string) (*StatsSummary, error)

	// TotalRevenue sums the seller's order revenue; 0 when there are no
	// matching orders.
	TotalRevenue(ctx context.Context, sellerID string) (float64, error)
}

type service struct {
	repo     Repository
	products catalog.Repository
}

// NewService creates an analytics service over the aggregate repository
// and the product catalog.
func NewService(repo Repository, products catalog.Repository) Service {
	return &service{repo: repo, products: products}
}

func (s *service) SellerStats(ctx context.Context, sellerID string) (*StatsSummary, error) {
	uid, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, fmt.Errorf("invalid seller_id: %w", err)
	}

	var (
		count, stock int
		certified    int
		revenue      float64
		products     []*catalog.Product
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, stock, err = s.repo.ProductTotals(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		certified, err = s.repo.CertifiedCount(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		revenue, err = s.repo.SumRevenue(gctx, uid)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.products.ListBySeller(gctx, uid)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("seller stats: %w", err)
	}

	annotated := make([]ProductStats, 0, len(products))
	for _, p := range products {
		annotated = append(annotated, ProductStats{Product: *p, Tags: p.Tags()})
	}

	return &StatsSummary{
		TotalProducts:     count,
		TotalStock:        stock,
		AvgEcoScore:       avgEcoScore(products),
		CertifiedProducts: certified,
		TotalRevenue:      revenue,
		Products:          annotated,
	}, nil
}

// avgEcoScore averages the ordinal eco ratings, formatted to two
// decimals. Products with an unknown rating are excluded from the
// denominator; zero rated products yield "0.00", never NaN.
func avgEcoScore(products []*catalog.Product) string {
	sum, n := 0, 0
	for _, p := range products {
		if ord := p.EcoRating.Ordinal(); ord > 0 {
			sum += ord
			n++
		}
	}
	if n == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", float64(sum)/float64(n))
}

func (s *service) TotalRevenue(ctx context.Context, sellerID string) (float64, error) {
	uid, err := uuid.Parse(sellerID)
	if err != nil {
		return 0, fmt.Errorf("invalid seller_id: %w", err)
	}
	return s.repo.SumRevenue(ctx, uid)
}
