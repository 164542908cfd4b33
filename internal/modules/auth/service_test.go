package auth

import (
	"context"
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecocart/ecocart-backend/internal/modules/buyer"
	"github.com/ecocart/ecocart-backend/internal/modules/seller"
)

type fakeBuyers struct{ byEmail map[string]*buyer.Buyer }

func (f *fakeBuyers) Create(context.Context, *buyer.Buyer) error { return nil }
func (f *fakeBuyers) GetByID(context.Context, string) (*buyer.Buyer, error) {
	return nil, assert.AnError
}
func (f *fakeBuyers) GetByEmail(_ context.Context, email string) (*buyer.Buyer, error) {
	if b, ok := f.byEmail[email]; ok {
		return b, nil
	}
	return nil, assert.AnError
}
func (f *fakeBuyers) Update(context.Context, *buyer.Buyer) error { return nil }
func (f *fakeBuyers) Delete(context.Context, string) error       { return nil }

type fakeSellers struct{}

func (fakeSellers) Create(context.Context, *seller.Seller) error { return nil }
func (fakeSellers) GetByID(context.Context, string) (*seller.Seller, error) {
	return nil, assert.AnError
}
func (fakeSellers) GetByEmail(context.Context, string) (*seller.Seller, error) {
	return nil, assert.AnError
}
func (fakeSellers) Update(context.Context, *seller.Seller) error { return nil }
func (fakeSellers) Delete(context.Context, string) error         { return nil }

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	id := uuid.New()
	buyers := &fakeBuyers{byEmail: map[string]*buyer.Buyer{
		"jo@example.com": {ID: id, Email: "jo@example.com", PasswordHash: string(hash)},
	}}
	svc := NewService(buyers, fakeSellers{}, "test-secret")

	token, err := svc.Login(context.Background(), "jo@example.com", "hunter2", RoleBuyer)
	require.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, id.String(), claims.Subject)
	assert.Equal(t, RoleBuyer, claims.Role)

	_, err = svc.Login(context.Background(), "jo@example.com", "wrong", RoleBuyer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "nobody@example.com", "hunter2", RoleBuyer)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "jo@example.com", "hunter2", Role("admin"))
	assert.Error(t, err)
}
