package seller

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL seller repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const sellerColumns = `id, name, email, password_hash, phone_number, store_name, address, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, s *Seller) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sellers (id, name, email, password_hash, phone_number, store_name, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.Name, s.Email, s.PasswordHash, s.PhoneNumber, s.StoreName, s.Address)
	return err
}

func (r *postgresRepository) scan(row *sql.Row) (*Seller, error) {
	s := &Seller{}
	err := row.Scan(&s.ID, &s.Name, &s.Email, &s.PasswordHash,
		&s.PhoneNumber, &s.StoreName, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Seller, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.scan(r.db.QueryRowContext(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE id = $1`, parsedID))
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*Seller, error) {
	return r.scan(r.db.QueryRowContext(ctx,
		`SELECT `+sellerColumns+` FROM sellers WHERE email = $1`, email))
}

func (r *postgresRepository) Update(ctx context.Context, s *Seller) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE sellers
		SET name=$1, phone_number=$2, store_name=$3, address=$4, updated_at=NOW()
		WHERE id=$5`,
		s.Name, s.PhoneNumber, s.StoreName, s.Address, s.ID)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sellers WHERE id=$1`, id)
	return err
}
