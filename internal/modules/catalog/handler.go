package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ecocart/ecocart-backend/internal/modules/enrichment"
)

// Handler exposes catalog HTTP endpoints.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(router *chi.Mux) {
	router.Route("/api/v1/products", func(r chi.Router) {
		r.Post("/", h.createProduct)
		r.Get("/", h.listProducts)
		r.Get("/eco-friendly", h.listEcoFriendly)
		r.Get("/filter", h.listFiltered)
		r.Get("/seller/{sellerID}", h.listBySeller)
		r.Get("/{id}", h.getProduct)
		r.Put("/{id}", h.updateProduct)
		r.Delete("/{id}", h.deleteProduct)
	})
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, p)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listBySeller(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListBySeller(r.Context(), chi.URLParam(r, "sellerID"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listEcoFriendly(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListEcoFriendly(r.Context(), r.URL.Query().Get("min_rating"))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) listFiltered(w http.ResponseWriter, r *http.Request) {
	f, err := filtersFromQuery(r)
	if err != nil {
		respondError(w, err)
		return
	}
	products, err := h.service.ListFiltered(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, products)
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	p, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, p)
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func filtersFromQuery(r *http.Request) (Filters, error) {
	q := r.URL.Query()
	f := Filters{}

	boolParam := func(name string) (*bool, error) {
		raw := q.Get(name)
		if raw == "" {
			return nil, nil
		}
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, &ValidationError{Field: name, Reason: "must be true or false"}
		}
		return &v, nil
	}

	var err error
	if f.Recyclable, err = boolParam("recyclable"); err != nil {
		return f, err
	}
	if f.Biodegradable, err = boolParam("biodegradable"); err != nil {
		return f, err
	}
	if f.Reusable, err = boolParam("reusable"); err != nil {
		return f, err
	}
	if f.OrganicMaterials, err = boolParam("organic_materials"); err != nil {
		return f, err
	}
	if f.Certified, err = boolParam("certified"); err != nil {
		return f, err
	}

	if raw := q.Get("min_rating"); raw != "" {
		f.MinEcoRating, err = parseMinRating(raw)
		if err != nil {
			return f, err
		}
	}
	if raw := q.Get("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return f, &ValidationError{Field: "max_price", Reason: "must be a number"}
		}
		f.MaxPrice = &v
	}
	return f, nil
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps the error taxonomy onto HTTP statuses: bad drafts
// are the client's fault, generation outages are the upstream vendor's,
// unusable model output is neither.
func respondError(w http.ResponseWriter, err error) {
	var validation *ValidationError
	var badRating *enrichment.InvalidRatingError
	var badScore *enrichment.InvalidScoreError

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validation) || errors.Is(err, enrichment.ErrEmptyDraft):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, enrichment.ErrUnavailable):
		status = http.StatusBadGateway
	case errors.As(err, &badRating) || errors.As(err, &badScore):
		status = http.StatusUnprocessableEntity
	}
	http.Error(w, err.Error(), status)
}
