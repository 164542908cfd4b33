package analytics

import "github.com/ecocart/ecocart-backend/internal/modules/catalog"

// StatsSummary is the seller dashboard payload: aggregate figures plus
// the full product list annotated with derived tags.
type StatsSummary struct {
	TotalProducts     int            `json:"total_products"`
	TotalStock        int            `json:"total_stock"`
	AvgEcoScore       string         `json:"avg_eco_score"`
	CertifiedProducts int            `json:"certified_products"`
	TotalRevenue      float64        `json:"total_revenue"`
	Products          []ProductStats `json:"products"`
}

// ProductStats is a catalog product with its sustainability tag labels.
type ProductStats struct {
	catalog.Product
	Tags []string `json:"tags"`
}
