package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecocart/ecocart-backend/internal/modules/buyer"
	"github.com/ecocart/ecocart-backend/internal/modules/seller"
)

// ErrInvalidCredentials is returned for unknown emails and wrong
// passwords alike, so the response does not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Claims carries the account id and role inside the token.
type Claims struct {
	Role Role `json:"role"`
	jwt.StandardClaims
}

type service struct {
	buyers  buyer.Repository
	sellers seller.Repository
	secret  []byte
}

// NewService creates a new auth service. The signing secret comes from
// configuration, never from source.
func NewService(buyers buyer.Repository, sellers seller.Repository, secret string) Service {
	return &service{buyers: buyers, sellers: sellers, secret: []byte(secret)}
}

func (s *service) Login(ctx context.Context, email, password string, role Role) (string, error) {
	var id, hash string

	switch role {
	case RoleBuyer:
		b, err := s.buyers.GetByEmail(ctx, email)
		if err != nil {
			return "", ErrInvalidCredentials
		}
		id, hash = b.ID.String(), b.PasswordHash
	case RoleSeller:
		sl, err := s.sellers.GetByEmail(ctx, email)
		if err != nil {
			return "", ErrInvalidCredentials
		}
		id, hash = sl.ID.String(), sl.PasswordHash
	default:
		return "", errors.New("role must be buyer or seller")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	claims := &Claims{
		Role: role,
		StandardClaims: jwt.StandardClaims{
			Subject:   id,
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
