package analytics

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes the seller dashboard endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Get("/api/v1/sellers/{id}/stats", h.sellerStats)
	router.Get("/api/v1/sellers/{id}/revenue", h.totalRevenue)
}

func (h *Handler) sellerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.SellerStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

func (h *Handler) totalRevenue(w http.ResponseWriter, r *http.Request) {
	revenue, err := h.service.TotalRevenue(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]float64{"total_revenue": revenue})
}
