package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ecocart/ecocart-backend/internal/modules/enrichment"
)

// Service defines catalog business logic.
type Service interface {
	// CreateProduct validates the draft, derives its sustainability
	// attributes through the enrichment service, and persists the
	// enriched record.
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)

	GetProduct(ctx context.Context, id string) (*Product, error)
	ListProducts(ctx context.Context) ([]*Product, error)

	// ListBySeller returns the seller's products, most recent first.
	ListBySeller(ctx context.Context, sellerID string) ([]*Product, error)

	// ListEcoFriendly returns products whose eco rating meets the
	// threshold. minRating accepts a rating word ("Moderate") or its
	// ordinal ("2"); empty defaults to Moderate.
	ListEcoFriendly(ctx context.Context, minRating string) ([]*Product, error)

	ListFiltered(ctx context.Context, f Filters) ([]*Product, error)

	// UpdateProduct overwrites the seller-supplied fields; derived
	// attributes are not recomputed.
	UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type service struct {
	repo     Repository
	enricher enrichment.Service
}

// NewService creates a catalog service. The enrichment service is
// injected so tests can substitute a fake generator chain.
func NewService(repo Repository, enricher enrichment.Service) Service {
	return &service{repo: repo, enricher: enricher}
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	sellerID, err := validateDraft(req)
	if err != nil {
		return nil, err
	}

	result, err := s.enricher.Enrich(ctx, req.Name, req.Description)
	if err != nil {
		return nil, err
	}

	p := &Product{
		ID:                   uuid.New(),
		SellerID:             sellerID,
		Name:                 req.Name,
		ShortDescription:     req.ShortDescription,
		Description:          req.Description,
		Price:                req.Price,
		StockQuantity:        req.StockQuantity,
		ImageURLs:            req.ImageURLs,
		EcoRating:            result.Rating,
		CarbonFootprintScore: result.CarbonScore,
		Recyclable:           req.Recyclable,
		Biodegradable:        req.Biodegradable,
		Reusable:             req.Reusable,
		OrganicMaterials:     req.OrganicMaterials,
		PlasticPackaging:     req.PlasticPackaging,
		Certified:            req.Certified,
		CertificationURLs:    req.CertificationURLs,
		Durability:           req.Durability,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// The enrichment is already paid for; hand it back so the
		// caller can retry persistence without new generation calls.
		return nil, &PersistFailedError{Enrichment: result, Err: err}
	}
	return p, nil
}

func validateDraft(req CreateProductRequest) (uuid.UUID, error) {
	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		return uuid.Nil, &ValidationError{Field: "seller_id", Reason: "must be a valid UUID"}
	}
	if strings.TrimSpace(req.Name) == "" {
		return uuid.Nil, &ValidationError{Field: "name", Reason: "is required"}
	}
	if strings.TrimSpace(req.Description) == "" {
		return uuid.Nil, &ValidationError{Field: "description", Reason: "is required"}
	}
	if req.Price <= 0 {
		return uuid.Nil, &ValidationError{Field: "price", Reason: "must be greater than 0"}
	}
	if req.StockQuantity < 0 {
		return uuid.Nil, &ValidationError{Field: "stock_quantity", Reason: "must not be negative"}
	}
	return sellerID, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, &ValidationError{Field: "id", Reason: "must be a valid UUID"}
	}
	return s.repo.GetByID(ctx, uid)
}

func (s *service) ListProducts(ctx context.Context) ([]*Product, error) {
	return s.repo.List(ctx)
}

func (s *service) ListBySeller(ctx context.Context, sellerID string) ([]*Product, error) {
	uid, err := uuid.Parse(sellerID)
	if err != nil {
		return nil, &ValidationError{Field: "seller_id", Reason: "must be a valid UUID"}
	}
	return s.repo.ListBySeller(ctx, uid)
}

func (s *service) ListEcoFriendly(ctx context.Context, minRating string) ([]*Product, error) {
	ordinal, err := parseMinRating(minRating)
	if err != nil {
		return nil, err
	}
	return s.repo.ListFiltered(ctx, Filters{MinEcoRating: ordinal})
}

// parseMinRating resolves a threshold parameter to an ordinal. Both the
// rating word and its ordinal digit are accepted; empty defaults to
// Moderate.
func parseMinRating(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return enrichment.RatingModerate.Ordinal(), nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		if _, ok := enrichment.RatingFromOrdinal(n); !ok {
			return 0, &ValidationError{Field: "min_rating", Reason: "ordinal must be 1, 2, or 3"}
		}
		return n, nil
	}
	rating, err := enrichment.ParseRating(raw)
	if err != nil {
		return 0, &ValidationError{Field: "min_rating", Reason: "must be Low, Moderate, High, or 1-3"}
	}
	return rating.Ordinal(), nil
}

func (s *service) ListFiltered(ctx context.Context, f Filters) ([]*Product, error) {
	return s.repo.ListFiltered(ctx, f)
}

func (s *service) UpdateProduct(ctx context.Context, id string, req CreateProductRequest) (*Product, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, &ValidationError{Field: "id", Reason: "must be a valid UUID"}
	}
	p, err := s.repo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}

	p.Name = req.Name
	p.ShortDescription = req.ShortDescription
	p.Description = req.Description
	p.Price = req.Price
	p.StockQuantity = req.StockQuantity
	p.ImageURLs = req.ImageURLs
	p.Recyclable = req.Recyclable
	p.Biodegradable = req.Biodegradable
	p.Reusable = req.Reusable
	p.OrganicMaterials = req.OrganicMaterials
	p.PlasticPackaging = req.PlasticPackaging
	p.Certified = req.Certified
	p.CertificationURLs = req.CertificationURLs
	p.Durability = req.Durability

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeleteProduct(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return &ValidationError{Field: "id", Reason: "must be a valid UUID"}
	}
	return s.repo.Delete(ctx, uid)
}
