package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a new PostgreSQL product repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, seller_id, name, short_description, description, price, stock_quantity,
	image_urls, eco_rating, carbon_footprint_score,
	recyclable, biodegradable, reusable, organic_materials, plastic_packaging,
	certified, certification_urls, durability, created_at, updated_at`

// ecoOrdinalExpr maps the stored categorical rating onto the canonical
// ordinal scale inside the query, so thresholding and ordering are
// always number-vs-number.
const ecoOrdinalExpr = `CASE eco_rating WHEN 'High' THEN 3 WHEN 'Moderate' THEN 2 WHEN 'Low' THEN 1 ELSE 0 END`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, seller_id, name, short_description, description, price, stock_quantity,
		   image_urls, eco_rating, carbon_footprint_score,
		   recyclable, biodegradable, reusable, organic_materials, plastic_packaging,
		   certified, certification_urls, durability)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`,
		p.ID, p.SellerID, p.Name, p.ShortDescription, p.Description, p.Price, p.StockQuantity,
		pq.Array(p.ImageURLs), string(p.EcoRating), p.CarbonFootprintScore,
		p.Recyclable, p.Biodegradable, p.Reusable, p.OrganicMaterials, p.PlasticPackaging,
		p.Certified, pq.Array(p.CertificationURLs), p.Durability)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var images, certs pq.StringArray
	err := scan(&p.ID, &p.SellerID, &p.Name, &p.ShortDescription, &p.Description,
		&p.Price, &p.StockQuantity, &images, &p.EcoRating, &p.CarbonFootprintScore,
		&p.Recyclable, &p.Biodegradable, &p.Reusable, &p.OrganicMaterials, &p.PlasticPackaging,
		&p.Certified, &certs, &p.Durability, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.ImageURLs = []string(images)
	p.CertificationURLs = []string(certs)
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1`, id)
	p, err := scanProduct(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *postgresRepo) List(ctx context.Context) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
}

func (r *postgresRepo) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*Product, error) {
	return r.queryProducts(ctx,
		`SELECT `+productColumns+` FROM products WHERE seller_id=$1 ORDER BY created_at DESC`,
		sellerID)
}

func (r *postgresRepo) ListFiltered(ctx context.Context, f Filters) ([]*Product, error) {
	query, args := buildFilterQuery(f)
	return r.queryProducts(ctx, query, args...)
}

// buildFilterQuery composes the WHERE clause from the supplied
// predicates. Results are ordered by eco rating descending with id as a
// stable tiebreak.
func buildFilterQuery(f Filters) (string, []interface{}) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	n := 1

	boolFilter := func(column string, v *bool) {
		if v == nil {
			return
		}
		query += fmt.Sprintf(` AND %s=$%d`, column, n)
		args = append(args, *v)
		n++
	}
	boolFilter("recyclable", f.Recyclable)
	boolFilter("biodegradable", f.Biodegradable)
	boolFilter("reusable", f.Reusable)
	boolFilter("organic_materials", f.OrganicMaterials)
	boolFilter("certified", f.Certified)

	if f.MinEcoRating > 0 {
		query += fmt.Sprintf(` AND %s >= $%d`, ecoOrdinalExpr, n)
		args = append(args, f.MinEcoRating)
		n++
	}
	if f.MaxPrice != nil {
		query += fmt.Sprintf(` AND price <= $%d`, n)
		args = append(args, *f.MaxPrice)
		n++
	}

	query += ` ORDER BY ` + ecoOrdinalExpr + ` DESC, id`
	return query, args
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, short_description=$2, description=$3, price=$4, stock_quantity=$5,
		    image_urls=$6, recyclable=$7, biodegradable=$8, reusable=$9,
		    organic_materials=$10, plastic_packaging=$11, certified=$12,
		    certification_urls=$13, durability=$14, updated_at=NOW()
		WHERE id=$15`,
		p.Name, p.ShortDescription, p.Description, p.Price, p.StockQuantity,
		pq.Array(p.ImageURLs), p.Recyclable, p.Biodegradable, p.Reusable,
		p.OrganicMaterials, p.PlasticPackaging, p.Certified,
		pq.Array(p.CertificationURLs), p.Durability, p.ID)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *postgresRepo) queryProducts(ctx context.Context, query string, args ...interface{}) ([]*Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}
