package catalog

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecocart/ecocart-backend/internal/modules/enrichment"
)

// fakeRepo is an in-memory Repository with the same ordering semantics
// as the postgres implementation.
type fakeRepo struct {
	products  []*Product
	createErr error
	clock     time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clock: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *fakeRepo) Create(_ context.Context, p *Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.clock = f.clock.Add(time.Second)
	stored := *p
	stored.CreatedAt = f.clock
	stored.UpdatedAt = f.clock
	f.products = append(f.products, &stored)
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]*Product, error) {
	out := append([]*Product{}, f.products...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) ListBySeller(_ context.Context, sellerID uuid.UUID) ([]*Product, error) {
	out := []*Product{}
	for _, p := range f.products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeRepo) ListFiltered(_ context.Context, filters Filters) ([]*Product, error) {
	out := []*Product{}
	for _, p := range f.products {
		if filters.Matches(p) {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.EcoRating.Ordinal() != b.EcoRating.Ordinal() {
			return a.EcoRating.Ordinal() > b.EcoRating.Ordinal()
		}
		return a.ID.String() < b.ID.String()
	})
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p *Product) error {
	for i, existing := range f.products {
		if existing.ID == p.ID {
			cp := *p
			f.products[i] = &cp
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, p := range f.products {
		if p.ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// fakeEnricher returns a canned result or error.
type fakeEnricher struct {
	result *enrichment.Result
	err    error
	calls  int
}

func (f *fakeEnricher) Enrich(_ context.Context, _, _ string) (*enrichment.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func draft(sellerID uuid.UUID) CreateProductRequest {
	return CreateProductRequest{
		SellerID:          sellerID.String(),
		Name:              "Bamboo Brush",
		ShortDescription:  "Compostable toothbrush",
		Description:       "100% bamboo, compostable handle",
		Price:             99,
		StockQuantity:     50,
		ImageURLs:         []string{"img/front.jpg", "img/back.jpg"},
		Recyclable:        true,
		Biodegradable:     true,
		CertificationURLs: []string{"certs/fsc.pdf"},
		Durability:        "2 years",
	}
}

func TestCreateProduct_EnrichesAndPersists(t *testing.T) {
	repo := newFakeRepo()
	enricher := &fakeEnricher{result: &enrichment.Result{Rating: enrichment.RatingHigh, CarbonScore: 2.0}}
	svc := NewService(repo, enricher)
	seller := uuid.New()

	p, err := svc.CreateProduct(context.Background(), draft(seller))
	require.NoError(t, err)
	assert.Equal(t, enrichment.RatingHigh, p.EcoRating)
	assert.Equal(t, 2.0, p.CarbonFootprintScore)
	assert.Equal(t, seller, p.SellerID)
	assert.NotEqual(t, uuid.Nil, p.ID)
}

// Persisting then fetching by seller must round-trip every field,
// including list ordering.
func TestCreateProduct_RoundTrip(t *testing.T) {
	repo := newFakeRepo()
	enricher := &fakeEnricher{result: &enrichment.Result{Rating: enrichment.RatingModerate, CarbonScore: 5.5}}
	svc := NewService(repo, enricher)
	seller := uuid.New()

	created, err := svc.CreateProduct(context.Background(), draft(seller))
	require.NoError(t, err)

	listed, err := svc.ListBySeller(context.Background(), seller.String())
	require.NoError(t, err)
	require.Len(t, listed, 1)

	got := listed[0]
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, []string{"img/front.jpg", "img/back.jpg"}, got.ImageURLs)
	assert.Equal(t, []string{"certs/fsc.pdf"}, got.CertificationURLs)
	assert.Equal(t, created.EcoRating, got.EcoRating)
	assert.Equal(t, created.CarbonFootprintScore, got.CarbonFootprintScore)
	assert.Equal(t, created.Durability, got.Durability)
}

func TestCreateProduct_ValidationBeforeEnrichment(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*CreateProductRequest)
		field  string
	}{
		{"missing name", func(r *CreateProductRequest) { r.Name = " " }, "name"},
		{"missing description", func(r *CreateProductRequest) { r.Description = "" }, "description"},
		{"bad seller id", func(r *CreateProductRequest) { r.SellerID = "not-a-uuid" }, "seller_id"},
		{"zero price", func(r *CreateProductRequest) { r.Price = 0 }, "price"},
		{"negative stock", func(r *CreateProductRequest) { r.StockQuantity = -1 }, "stock_quantity"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			enricher := &fakeEnricher{result: &enrichment.Result{Rating: enrichment.RatingLow, CarbonScore: 5}}
			svc := NewService(newFakeRepo(), enricher)

			req := draft(uuid.New())
			tc.mutate(&req)

			_, err := svc.CreateProduct(context.Background(), req)
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tc.field, validation.Field)
			assert.Zero(t, enricher.calls, "enrichment must not run for invalid drafts")
		})
	}
}

func TestCreateProduct_PersistFailureKeepsEnrichment(t *testing.T) {
	repo := newFakeRepo()
	repo.createErr = errors.New("connection reset")
	result := &enrichment.Result{Rating: enrichment.RatingHigh, CarbonScore: 3}
	svc := NewService(repo, &fakeEnricher{result: result})

	_, err := svc.CreateProduct(context.Background(), draft(uuid.New()))
	var persist *PersistFailedError
	require.ErrorAs(t, err, &persist)
	assert.Equal(t, result, persist.Enrichment)
}

func TestListBySeller_EmptyStore(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeEnricher{})

	products, err := svc.ListBySeller(context.Background(), uuid.New().String())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestListBySeller_NewestFirst(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeEnricher{result: &enrichment.Result{Rating: enrichment.RatingLow, CarbonScore: 5}})
	seller := uuid.New()

	first := draft(seller)
	first.Name = "First"
	second := draft(seller)
	second.Name = "Second"

	_, err := svc.CreateProduct(context.Background(), first)
	require.NoError(t, err)
	_, err = svc.CreateProduct(context.Background(), second)
	require.NoError(t, err)

	listed, err := svc.ListBySeller(context.Background(), seller.String())
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Second", listed[0].Name)
	assert.Equal(t, "First", listed[1].Name)
}

func TestListEcoFriendly_ThresholdForms(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	seller := uuid.New()
	for _, rating := range []enrichment.EcoRating{enrichment.RatingLow, enrichment.RatingModerate, enrichment.RatingHigh} {
		require.NoError(t, repo.Create(context.Background(), &Product{
			ID: uuid.New(), SellerID: seller, Name: string(rating), EcoRating: rating,
		}))
	}

	// Default threshold is Moderate.
	products, err := svc.ListEcoFriendly(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, enrichment.RatingHigh, products[0].EcoRating)
	assert.Equal(t, enrichment.RatingModerate, products[1].EcoRating)

	// Word and ordinal forms are equivalent.
	byWord, err := svc.ListEcoFriendly(context.Background(), "high")
	require.NoError(t, err)
	byOrdinal, err := svc.ListEcoFriendly(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, byWord, byOrdinal)
	require.Len(t, byWord, 1)

	_, err = svc.ListEcoFriendly(context.Background(), "medium")
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestListFiltered_SubsetSemantics(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, nil)
	seller := uuid.New()

	add := func(name string, recyclable bool, price float64) {
		require.NoError(t, repo.Create(context.Background(), &Product{
			ID: uuid.New(), SellerID: seller, Name: name,
			Recyclable: recyclable, Price: price, EcoRating: enrichment.RatingModerate,
		}))
	}
	add("cheap recyclable", true, 50)
	add("pricey recyclable", true, 150)
	add("cheap landfill", false, 10)

	yes := true
	max := 100.0

	recyclableOnly, err := svc.ListFiltered(context.Background(), Filters{Recyclable: &yes})
	require.NoError(t, err)
	require.Len(t, recyclableOnly, 2)

	both, err := svc.ListFiltered(context.Background(), Filters{Recyclable: &yes, MaxPrice: &max})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "cheap recyclable", both[0].Name)
	assert.True(t, both[0].Recyclable)
	assert.LessOrEqual(t, both[0].Price, max)

	// The conjunction is a subset of the single-predicate result.
	ids := map[uuid.UUID]bool{}
	for _, p := range recyclableOnly {
		ids[p.ID] = true
	}
	for _, p := range both {
		assert.True(t, ids[p.ID])
	}
}

func TestUpdateProduct_KeepsDerivedAttributes(t *testing.T) {
	repo := newFakeRepo()
	enricher := &fakeEnricher{result: &enrichment.Result{Rating: enrichment.RatingHigh, CarbonScore: 2}}
	svc := NewService(repo, enricher)

	created, err := svc.CreateProduct(context.Background(), draft(uuid.New()))
	require.NoError(t, err)

	req := draft(created.SellerID)
	req.Price = 120
	updated, err := svc.UpdateProduct(context.Background(), created.ID.String(), req)
	require.NoError(t, err)
	assert.Equal(t, 120.0, updated.Price)
	assert.Equal(t, enrichment.RatingHigh, updated.EcoRating)
	assert.Equal(t, 1, enricher.calls, "update must not re-enrich")
}

func TestGetProduct_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nil)

	_, err := svc.GetProduct(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetProduct(context.Background(), "garbage")
	var validation *ValidationError
	assert.ErrorAs(t, err, &validation)
}
