package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/ecocart/ecocart-backend/internal/modules/enrichment"
)

// Product is an enriched catalog entry as persisted. The eco rating and
// carbon footprint score are derived once at creation time and never
// recomputed on reads.
type Product struct {
	ID                   uuid.UUID            `json:"id"`
	SellerID             uuid.UUID            `json:"seller_id"`
	Name                 string               `json:"name"`
	ShortDescription     string               `json:"short_description,omitempty"`
	Description          string               `json:"description"`
	Price                float64              `json:"price"`
	StockQuantity        int                  `json:"stock_quantity"`
	ImageURLs            []string             `json:"image_urls"`
	EcoRating            enrichment.EcoRating `json:"eco_rating"`
	CarbonFootprintScore float64              `json:"carbon_footprint_score"`
	Recyclable           bool                 `json:"recyclable"`
	Biodegradable        bool                 `json:"biodegradable"`
	Reusable             bool                 `json:"reusable"`
	OrganicMaterials     bool                 `json:"organic_materials"`
	PlasticPackaging     bool                 `json:"plastic_packaging"`
	Certified            bool                 `json:"certified"`
	CertificationURLs    []string             `json:"certification_urls"`
	Durability           string               `json:"durability,omitempty"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

// Tags derives the human-readable sustainability labels for a product.
// The order is fixed: Recyclable, Biodegradable, Reusable, Organic
// Materials.
func (p *Product) Tags() []string {
	tags := []string{}
	if p.Recyclable {
		tags = append(tags, "Recyclable")
	}
	if p.Biodegradable {
		tags = append(tags, "Biodegradable")
	}
	if p.Reusable {
		tags = append(tags, "Reusable")
	}
	if p.OrganicMaterials {
		tags = append(tags, "Organic Materials")
	}
	return tags
}

// CreateProductRequest is the seller-submitted product draft, before
// enrichment.
type CreateProductRequest struct {
	SellerID          string   `json:"seller_id"`
	Name              string   `json:"name"`
	ShortDescription  string   `json:"short_description"`
	Description       string   `json:"description"`
	Price             float64  `json:"price"`
	StockQuantity     int      `json:"stock_quantity"`
	ImageURLs         []string `json:"image_urls"`
	Recyclable        bool     `json:"recyclable"`
	Biodegradable     bool     `json:"biodegradable"`
	Reusable          bool     `json:"reusable"`
	OrganicMaterials  bool     `json:"organic_materials"`
	PlasticPackaging  bool     `json:"plastic_packaging"`
	Certified         bool     `json:"certified"`
	CertificationURLs []string `json:"certification_urls"`
	Durability        string   `json:"durability"`
}

// Filters describes the optional predicates of a filtered catalog
// query. Nil pointer fields impose no constraint; all supplied
// predicates are ANDed together.
type Filters struct {
	Recyclable       *bool
	Biodegradable    *bool
	Reusable         *bool
	OrganicMaterials *bool
	Certified        *bool
	// MinEcoRating is an ordinal threshold on the canonical scale
	// (Low=1, Moderate=2, High=3); 0 means no constraint.
	MinEcoRating int
	// MaxPrice is an inclusive upper bound.
	MaxPrice *float64
}

// Matches reports whether a product satisfies every supplied predicate.
func (f Filters) Matches(p *Product) bool {
	if f.Recyclable != nil && p.Recyclable != *f.Recyclable {
		return false
	}
	if f.Biodegradable != nil && p.Biodegradable != *f.Biodegradable {
		return false
	}
	if f.Reusable != nil && p.Reusable != *f.Reusable {
		return false
	}
	if f.OrganicMaterials != nil && p.OrganicMaterials != *f.OrganicMaterials {
		return false
	}
	if f.Certified != nil && p.Certified != *f.Certified {
		return false
	}
	if f.MinEcoRating > 0 && p.EcoRating.Ordinal() < f.MinEcoRating {
		return false
	}
	if f.MaxPrice != nil && p.Price > *f.MaxPrice {
		return false
	}
	return true
}
