package buyer

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL buyer repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

const buyerColumns = `id, name, email, password_hash, phone_number, address, pincode, created_at, updated_at`

func (r *postgresRepository) Create(ctx context.Context, b *Buyer) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO buyers (id, name, email, password_hash, phone_number, address, pincode)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		b.ID, b.Name, b.Email, b.PasswordHash, b.PhoneNumber, b.Address, b.Pincode)
	return err
}

func (r *postgresRepository) scan(row *sql.Row) (*Buyer, error) {
	b := &Buyer{}
	err := row.Scan(&b.ID, &b.Name, &b.Email, &b.PasswordHash,
		&b.PhoneNumber, &b.Address, &b.Pincode, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id string) (*Buyer, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}
	return r.scan(r.db.QueryRowContext(ctx,
		`SELECT `+buyerColumns+` FROM buyers WHERE id = $1`, parsedID))
}

func (r *postgresRepository) GetByEmail(ctx context.Context, email string) (*Buyer, error) {
	return r.scan(r.db.QueryRowContext(ctx,
		`SELECT `+buyerColumns+` FROM buyers WHERE email = $1`, email))
}

func (r *postgresRepository) Update(ctx context.Context, b *Buyer) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE buyers
		SET name=$1, phone_number=$2, address=$3, pincode=$4, updated_at=NOW()
		WHERE id=$5`,
		b.Name, b.PhoneNumber, b.Address, b.Pincode, b.ID)
	return err
}

func (r *postgresRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM buyers WHERE id=$1`, id)
	return err
}
